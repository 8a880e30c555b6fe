package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/auditvox/auditvox/cmd/server/internal/auditerr"
)

// GroqTranscriber implements Transcriber against the Groq speech API
// (OpenAI-compatible audio/transcriptions endpoint) using multipart
// form-data requests with verbose_json output for segment timestamps.
type GroqTranscriber struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGroqTranscriber builds a client for the given base URL (e.g.
// "https://api.groq.com") and model (e.g. "whisper-large-v3").
//
// The HTTP client carries a 10-minute timeout: transcription time is roughly
// proportional to audio duration and whole-session files can run long.
func NewGroqTranscriber(baseURL, apiKey, model string) *GroqTranscriber {
	return &GroqTranscriber{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 10 * time.Minute,
		},
	}
}

// Transcribe sends the audio file and language hint to the remote service
// and returns its time-stamped segments.
func (g *GroqTranscriber) Transcribe(ctx context.Context, audioPath, language string) (*Result, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return nil, auditerr.NewTranscriptionError(fmt.Errorf("failed to open audio file: %w", err))
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return nil, auditerr.NewTranscriptionError(fmt.Errorf("failed to create form file: %w", err))
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, auditerr.NewTranscriptionError(fmt.Errorf("failed to copy file data: %w", err))
	}

	if err := writer.WriteField("model", g.model); err != nil {
		return nil, auditerr.NewTranscriptionError(fmt.Errorf("failed to write model field: %w", err))
	}
	// verbose_json is required for segment-level timestamps
	if err := writer.WriteField("response_format", "verbose_json"); err != nil {
		return nil, auditerr.NewTranscriptionError(fmt.Errorf("failed to write response_format field: %w", err))
	}
	if language != "" {
		if err := writer.WriteField("language", language); err != nil {
			return nil, auditerr.NewTranscriptionError(fmt.Errorf("failed to write language field: %w", err))
		}
	}

	if err := writer.Close(); err != nil {
		return nil, auditerr.NewTranscriptionError(fmt.Errorf("failed to close multipart writer: %w", err))
	}

	endpoint := fmt.Sprintf("%s/openai/v1/audio/transcriptions", g.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, auditerr.NewTranscriptionError(fmt.Errorf("failed to create HTTP request: %w", err))
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, auditerr.NewTranscriptionError(fmt.Errorf("HTTP request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, auditerr.NewTranscriptionError(fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(bodyBytes)))
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, auditerr.NewTranscriptionError(fmt.Errorf("failed to parse JSON response: %w", err))
	}

	return &result, nil
}
