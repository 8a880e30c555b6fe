// Package api exposes the HTTP surface of the audit backend.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/auditvox/auditvox/cmd/server/internal/chat"
	"github.com/auditvox/auditvox/cmd/server/internal/history"
	"github.com/auditvox/auditvox/cmd/server/internal/recording"
	"github.com/auditvox/auditvox/cmd/server/internal/summary"
)

// Deps bundles the services the route handlers need.
type Deps struct {
	Recording     *recording.Service
	History       *history.Store
	Summary       *summary.Service
	Chat          *chat.Service
	RecordingsDir string
}

// RegisterRoutes wires every operation onto the engine. Recorded audio and
// generated reports are also served statically under /recordings.
func RegisterRoutes(r *gin.Engine, d Deps) {
	r.POST("/start_recording", HandleStartRecording(d.Recording))
	r.POST("/stop_recording", HandleStopRecording(d.Recording))
	r.POST("/upload_audio", HandleUploadAudio(d.Recording))
	r.GET("/transcription/*audio_path", HandleGetTranscription(d.History))
	r.GET("/history", HandleGetHistory(d.History))
	r.GET("/real_time_transcription", HandleRealTimeTranscription(d.Recording))
	r.POST("/set_transcription_language", HandleSetLanguage(d.Recording))
	r.POST("/summarize", HandleSummarize(d.Summary))
	r.POST("/generate_report", HandleGenerateReport(d.RecordingsDir))
	r.POST("/chat", HandleChat(d.Chat))

	r.Static("/recordings", d.RecordingsDir)
}
