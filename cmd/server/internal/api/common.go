package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auditvox/auditvox/cmd/server/internal/auditerr"
)

// respondError maps a service error to its HTTP status and JSON body.
func respondError(c *gin.Context, err error) {
	var ae *auditerr.AuditError
	if errors.As(err, &ae) {
		body := gin.H{"error": ae.Message}
		if ae.Cause != nil {
			body["detail"] = ae.Cause.Error()
		}
		c.JSON(auditerr.HTTPStatus(err), body)
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func badRequestResponse(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
