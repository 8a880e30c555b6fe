package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auditvox/auditvox/cmd/server/internal/history"
)

// HandleGetHistory returns every transcribed file of the process lifetime.
// GET /history
func HandleGetHistory(store *history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries := store.All()
		if entries == nil {
			entries = []history.Entry{}
		}
		c.JSON(http.StatusOK, gin.H{"history": entries})
	}
}

// HandleGetTranscription looks up a past transcription by audio path.
// GET /transcription/*audio_path
func HandleGetTranscription(store *history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param("audio_path")
		entry, err := store.ByPath(trimAudioPath(raw))
		if err != nil {
			// absolute paths keep their leading slash in the wildcard
			entry, err = store.ByPath(raw)
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"transcription": entry.Transcription})
	}
}
