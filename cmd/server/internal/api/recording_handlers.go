package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/auditvox/auditvox/cmd/server/internal/recording"
)

// HandleStartRecording starts a capture session.
// POST /start_recording?language=fr
func HandleStartRecording(svc *recording.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		language := c.DefaultQuery("language", "fr")
		if err := svc.Start(language); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Recording started"})
	}
}

// HandleStopRecording ends the session and returns the whole-file
// transcription.
// POST /stop_recording
func HandleStopRecording(svc *recording.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := svc.Stop(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"audio_path":    result.AudioPath,
			"transcription": result.Transcription,
		})
	}
}

// HandleUploadAudio saves an uploaded audio file and transcribes it.
// POST /upload_audio?language=fr
func HandleUploadAudio(svc *recording.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		language := c.DefaultQuery("language", "fr")
		if err := svc.SetLanguage(language); err != nil {
			respondError(c, err)
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			badRequestResponse(c, "file is required")
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			respondError(c, err)
			return
		}
		defer file.Close()

		audioPath, err := svc.SaveUploadedFile(fileHeader.Filename, file)
		if err != nil {
			respondError(c, err)
			return
		}

		transcription, err := svc.TranscribeFile(c.Request.Context(), audioPath)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"audio_path":    audioPath,
			"transcription": transcription,
			"filename":      fileHeader.Filename,
			"language":      language,
		})
	}
}

// HandleRealTimeTranscription returns the live per-segment transcriptions of
// the active session.
// GET /real_time_transcription
func HandleRealTimeTranscription(svc *recording.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"transcriptions": svc.LiveTranscriptions()})
	}
}

// HandleSetLanguage sets the transcription language.
// POST /set_transcription_language
func HandleSetLanguage(svc *recording.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Language string `json:"language"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequestResponse(c, "invalid request body")
			return
		}
		if req.Language == "" {
			req.Language = "fr"
		}
		if err := svc.SetLanguage(req.Language); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Transcription language set to " + req.Language})
	}
}

// trimAudioPath strips the leading slash a gin wildcard parameter carries.
func trimAudioPath(param string) string {
	return strings.TrimPrefix(param, "/")
}
