package api

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/auditvox/auditvox/cmd/server/internal/metrics"
	"github.com/auditvox/auditvox/cmd/server/internal/report"
	"github.com/auditvox/auditvox/cmd/server/internal/summary"
)

// HandleGenerateReport renders the structured record to a PDF and streams it
// back as an attachment.
// POST /generate_report
func HandleGenerateReport(recordingsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Language string `json:"language"`
			summary.AuditRecord
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequestResponse(c, "invalid request body")
			return
		}
		if req.Language == "" {
			req.Language = "fr"
		}

		outputPath := filepath.Join(recordingsDir, fmt.Sprintf("report_%s.pdf", time.Now().Format("150405")))
		if err := report.NewGenerator(req.Language).Create(outputPath, &req.AuditRecord); err != nil {
			metrics.RecordReport(req.Language, false)
			respondError(c, err)
			return
		}
		metrics.RecordReport(req.Language, true)

		c.FileAttachment(outputPath, "audit_report.pdf")
	}
}
