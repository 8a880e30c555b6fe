package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auditvox/auditvox/cmd/server/internal/chat"
)

// HandleChat answers one question about the audit.
// POST /chat
func HandleChat(svc *chat.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Question    string       `json:"question"`
			Context     chat.Context `json:"context"`
			ChatHistory []string     `json:"chat_history"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequestResponse(c, "invalid request body")
			return
		}
		if req.Question == "" {
			badRequestResponse(c, "Question is required")
			return
		}

		answer, err := svc.Answer(c.Request.Context(), req.Question, req.Context, req.ChatHistory)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"response": answer})
	}
}
