package main

import (
	// Standard library
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	// External dependencies
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	// Internal packages
	"github.com/auditvox/auditvox/cmd/server/internal/api"
	"github.com/auditvox/auditvox/cmd/server/internal/chat"
	"github.com/auditvox/auditvox/cmd/server/internal/config"
	"github.com/auditvox/auditvox/cmd/server/internal/history"
	"github.com/auditvox/auditvox/cmd/server/internal/llm"
	"github.com/auditvox/auditvox/cmd/server/internal/middleware"
	"github.com/auditvox/auditvox/cmd/server/internal/recording"
	"github.com/auditvox/auditvox/cmd/server/internal/speech"
	"github.com/auditvox/auditvox/cmd/server/internal/summary"
	"github.com/auditvox/auditvox/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logEnv := "dev"
	if cfg.Log.Format == "json" || cfg.IsProduction() {
		logEnv = "prod"
	}
	logInstance, err := logger.Init(logger.Config{
		Level:       cfg.Log.Level,
		Environment: logEnv,
		WithSource:  !cfg.IsProduction(),
		File:        cfg.Log.File,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	appLogger := logInstance.With("component", "web-server")

	appLogger.Info("configuration loaded", "env", cfg.Server.Env, "port", cfg.Server.Port)
	for _, line := range strings.Split(cfg.PrintConfig(), "\n") {
		appLogger.Debug(line)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize services
	transcriber := speech.NewGroqTranscriber(cfg.Groq.BaseURL, cfg.Groq.APIKey, cfg.Groq.TranscriptionModel)
	generator := llm.NewGroqGenerator(cfg.Groq.BaseURL, cfg.Groq.APIKey, cfg.Groq.ChatModel)
	historyStore := history.NewStore()

	recordingSvc, err := recording.NewService(
		recording.NewMicDevice(cfg.Audio.SampleRate),
		transcriber,
		historyStore,
		recording.Options{
			RecordingsDir:   cfg.Data.RecordingsDir,
			SampleRate:      cfg.Audio.SampleRate,
			SegmentSeconds:  cfg.Audio.SegmentSeconds,
			DefaultLanguage: cfg.Audio.DefaultLanguage,
		},
	)
	if err != nil {
		appLogger.Error("recording service init failed", "error", err)
		os.Exit(1)
	}
	appLogger.Info("recording service ready", "recordings_dir", cfg.Data.RecordingsDir)

	summarySvc := summary.NewService(generator)
	chatSvc := chat.NewService(generator)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))

	startTime := time.Now()
	r.GET("/health", healthCheckHandler(cfg, startTime))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api.RegisterRoutes(r, api.Deps{
		Recording:     recordingSvc,
		History:       historyStore,
		Summary:       summarySvc,
		Chat:          chatSvc,
		RecordingsDir: cfg.Data.RecordingsDir,
	})

	// Create HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:    cfg.GetServerAddr(),
		Handler: r,
	}

	go func() {
		appLogger.Info("server starting", "addr", srv.Addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	<-quit
	appLogger.Info("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	appLogger.Info("server shutdown complete")
}

// HealthCheckResponse represents the response from the health check endpoint
type HealthCheckResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
	Env       string    `json:"env"`
}

// healthCheckHandler returns the liveness probe handler
func healthCheckHandler(cfg *config.Config, startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthCheckResponse{
			Status:    "healthy",
			Service:   "auditvox-server",
			Version:   "1.0.0",
			Uptime:    time.Since(startTime).String(),
			Timestamp: time.Now(),
			Env:       cfg.Server.Env,
		})
	}
}
