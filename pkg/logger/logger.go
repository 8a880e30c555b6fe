// Package logger wraps log/slog with a process-wide singleton and a small
// amount of configuration: level parsing, JSON output in production and
// optional rotating file output.
package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls logger initialization.
// Level accepts debug/info/warn/error, Environment switches the handler
// format (prod -> JSON, anything else -> text). WithSource records the
// source location of each record. File, when set, mirrors output to a
// size-rotated log file.
type Config struct {
	Level       string
	Environment string
	WithSource  bool
	File        string
}

var (
	global *slog.Logger
	once   sync.Once
)

func levelFromString(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.New("invalid log level: " + level)
	}
}

// New creates a logger from cfg without touching the global instance.
func New(cfg Config) (*slog.Logger, error) {
	lvl, err := levelFromString(cfg.Level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stdout
	if cfg.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    100, // MB
			MaxBackups: 10,
			MaxAge:     30, // days
			Compress:   true,
		})
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl, AddSource: cfg.WithSource}
	var handler slog.Handler
	if strings.ToLower(cfg.Environment) == "prod" {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	return slog.New(handler), nil
}

// Init initializes the global logger; repeated calls return the logger
// created by the first call.
func Init(cfg Config) (*slog.Logger, error) {
	var initErr error
	once.Do(func() {
		global, initErr = New(cfg)
	})
	return global, initErr
}

// L returns the initialized global logger, or slog.Default when Init has
// not run.
func L() *slog.Logger {
	if global == nil {
		return slog.Default()
	}
	return global
}

// LogRemoteCall emits a structured record for one remote service call.
// service: transcription/summarization/chat, action: start/success/error.
func LogRemoteCall(logger *slog.Logger, service, action string, durationMs int64, errMsg string) {
	attrs := []slog.Attr{
		slog.String("service", service),
		slog.String("action", action),
		slog.Int64("duration_ms", durationMs),
	}

	if errMsg != "" {
		attrs = append(attrs, slog.String("error", errMsg))
		logger.LogAttrs(context.Background(), slog.LevelError, "remote call failed", attrs...)
	} else {
		logger.LogAttrs(context.Background(), slog.LevelInfo, "remote call", attrs...)
	}
}
