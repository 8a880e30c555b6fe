package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auditvox/auditvox/cmd/server/internal/summary"
)

// HandleSummarize turns a transcription into a structured audit record.
// POST /summarize?language=fr
func HandleSummarize(svc *summary.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		language := c.DefaultQuery("language", "fr")

		var req struct {
			Transcription string `json:"transcription"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequestResponse(c, "invalid request body")
			return
		}
		if req.Transcription == "" {
			badRequestResponse(c, "Transcription is required")
			return
		}

		result, err := svc.Summarize(c.Request.Context(), req.Transcription, language)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
