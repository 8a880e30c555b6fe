// Package config loads server configuration from environment variables with
// an optional YAML file overlay, and validates it before the server starts.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the unified server configuration.
type Config struct {
	Server Server `yaml:"server"`
	Log    Log    `yaml:"log"`
	Data   Data   `yaml:"data"`
	Groq   Groq   `yaml:"groq"`
	Audio  Audio  `yaml:"audio"`
}

// Server holds listen and environment settings.
type Server struct {
	Env                string   `yaml:"env"`  // dev, staging, production
	Port               string   `yaml:"port"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// Log holds logging settings.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
	File   string `yaml:"file"`   // optional rotating log file
}

// Data holds on-disk layout settings.
type Data struct {
	RecordingsDir string `yaml:"recordings_dir"`
}

// Groq holds the remote speech/LLM provider settings.
type Groq struct {
	APIKey             string `yaml:"api_key"`
	BaseURL            string `yaml:"base_url"`
	TranscriptionModel string `yaml:"transcription_model"`
	ChatModel          string `yaml:"chat_model"`
}

// Audio holds capture and segmentation settings.
type Audio struct {
	SampleRate      int    `yaml:"sample_rate"`
	SegmentSeconds  int    `yaml:"segment_seconds"`
	DefaultLanguage string `yaml:"default_language"`
}

// LoadConfig builds the configuration from environment variables. When
// CONFIG_FILE points at a YAML file it is loaded first and env vars override
// its values.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Server: Server{
			Env:                "dev",
			Port:               "8000",
			CORSAllowedOrigins: []string{"*"},
		},
		Log: Log{
			Level:  "info",
			Format: "console",
		},
		Data: Data{
			RecordingsDir: "recordings",
		},
		Groq: Groq{
			BaseURL:            "https://api.groq.com",
			TranscriptionModel: "whisper-large-v3",
			ChatModel:          "llama3-70b-8192",
		},
		Audio: Audio{
			SampleRate:      16000,
			SegmentSeconds:  10,
			DefaultLanguage: "fr",
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Env = getEnv("ENV", cfg.Server.Env)
	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.Server.CORSAllowedOrigins = parseStringList(v)
	}
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)
	cfg.Log.File = getEnv("LOG_FILE", cfg.Log.File)
	cfg.Data.RecordingsDir = getEnv("RECORDINGS_DIR", cfg.Data.RecordingsDir)
	cfg.Groq.APIKey = getEnv("GROQ_API_KEY", cfg.Groq.APIKey)
	cfg.Groq.BaseURL = getEnv("GROQ_BASE_URL", cfg.Groq.BaseURL)
	cfg.Groq.TranscriptionModel = getEnv("TRANSCRIPTION_MODEL", cfg.Groq.TranscriptionModel)
	cfg.Groq.ChatModel = getEnv("CHAT_MODEL", cfg.Groq.ChatModel)
	cfg.Audio.SampleRate = getEnvAsInt("SAMPLE_RATE", cfg.Audio.SampleRate)
	cfg.Audio.SegmentSeconds = getEnvAsInt("SEGMENT_SECONDS", cfg.Audio.SegmentSeconds)
	cfg.Audio.DefaultLanguage = getEnv("DEFAULT_LANGUAGE", cfg.Audio.DefaultLanguage)
}

// ValidateConfig checks the loaded configuration and reports every problem
// at once.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Server.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid PORT value: %s (must be 1-65535)", cfg.Server.Port))
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[cfg.Log.Level] {
		errs = append(errs, fmt.Sprintf("invalid LOG_LEVEL: %s (must be: debug, info, warn, error)", cfg.Log.Level))
	}

	validLogFormats := map[string]bool{"console": true, "json": true}
	if !validLogFormats[cfg.Log.Format] {
		errs = append(errs, fmt.Sprintf("invalid LOG_FORMAT: %s (must be: console, json)", cfg.Log.Format))
	}

	validEnvs := map[string]bool{"dev": true, "development": true, "staging": true, "production": true}
	if !validEnvs[cfg.Server.Env] {
		errs = append(errs, fmt.Sprintf("invalid ENV: %s (must be: dev, development, staging, production)", cfg.Server.Env))
	}

	if cfg.Server.Env == "production" && cfg.Groq.APIKey == "" {
		errs = append(errs, "GROQ_API_KEY is required in production environment")
	}

	if cfg.Groq.BaseURL == "" {
		errs = append(errs, "GROQ_BASE_URL cannot be empty")
	}

	if cfg.Audio.SampleRate < 8000 || cfg.Audio.SampleRate > 48000 {
		errs = append(errs, fmt.Sprintf("invalid SAMPLE_RATE: %d (must be 8000-48000)", cfg.Audio.SampleRate))
	}

	if cfg.Audio.SegmentSeconds < 1 || cfg.Audio.SegmentSeconds > 300 {
		errs = append(errs, fmt.Sprintf("invalid SEGMENT_SECONDS: %d (must be 1-300)", cfg.Audio.SegmentSeconds))
	}

	if cfg.Audio.DefaultLanguage != "fr" && cfg.Audio.DefaultLanguage != "en" {
		errs = append(errs, fmt.Sprintf("invalid DEFAULT_LANGUAGE: %s (must be: fr, en)", cfg.Audio.DefaultLanguage))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// GetServerAddr returns the listen address.
func (c *Config) GetServerAddr() string {
	return ":" + c.Server.Port
}

// PrintConfig renders the configuration with secrets masked.
func (c *Config) PrintConfig() string {
	return fmt.Sprintf(`Configuration Loaded:
  Environment: %s
  Server Port: %s
  Recordings Dir: %s
  Logging:
    - Level: %s
    - Format: %s
  Groq:
    - Base URL: %s
    - API Key: %s
    - Transcription Model: %s
    - Chat Model: %s
  Audio:
    - Sample Rate: %d
    - Segment Seconds: %d
    - Default Language: %s`,
		c.Server.Env,
		c.Server.Port,
		c.Data.RecordingsDir,
		c.Log.Level,
		c.Log.Format,
		c.Groq.BaseURL,
		maskSecret(c.Groq.APIKey),
		c.Groq.TranscriptionModel,
		c.Groq.ChatModel,
		c.Audio.SampleRate,
		c.Audio.SegmentSeconds,
		c.Audio.DefaultLanguage,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func parseStringList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func maskSecret(secret string) string {
	if secret == "" {
		return "<not set>"
	}
	if len(secret) <= 8 {
		return "***"
	}
	return secret[:4] + "***" + secret[len(secret)-4:]
}
