// Package recording manages microphone capture sessions: fixed-duration
// live segmentation with per-segment transcription, whole-session WAV
// persistence and uploaded-file handling.
package recording

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/auditvox/auditvox/cmd/server/internal/auditerr"
	"github.com/auditvox/auditvox/cmd/server/internal/history"
	"github.com/auditvox/auditvox/cmd/server/internal/metrics"
	"github.com/auditvox/auditvox/cmd/server/internal/speech"
	"github.com/auditvox/auditvox/pkg/logger"
)

// LiveTranscription is the transcription of one fixed-duration segment of the
// active session.
type LiveTranscription struct {
	Segment       int    `json:"segment"`
	Transcription string `json:"transcription"`
	Timestamp     string `json:"timestamp"`
}

// StopResult is the outcome of ending a session.
type StopResult struct {
	AudioPath     string `json:"audio_path"`
	Transcription string `json:"transcription"`
}

// Options configures a Service.
type Options struct {
	RecordingsDir   string
	SampleRate      int
	SegmentSeconds  int
	DefaultLanguage string
}

// Service owns the single capture session the process can run at a time.
// Sample batches arrive on the device's capture thread; all mutable session
// state is guarded by mu.
type Service struct {
	device      Device
	transcriber speech.Transcriber
	history     *history.Store

	recordingsDir  string
	sampleRate     int
	segmentSeconds int
	tempDir        string

	mu             sync.Mutex
	recording      bool
	language       string
	sessionDir     string
	fullAudio      []float32
	segmentAudio   []float32
	segmentCounter int
	live           []LiveTranscription
}

func NewService(device Device, transcriber speech.Transcriber, hist *history.Store, opts Options) (*Service, error) {
	tempDir, err := os.MkdirTemp("", "auditvox-segments-")
	if err != nil {
		return nil, fmt.Errorf("failed to create segment temp dir: %w", err)
	}
	if err := os.MkdirAll(opts.RecordingsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create recordings dir: %w", err)
	}

	return &Service{
		device:         device,
		transcriber:    transcriber,
		history:        hist,
		recordingsDir:  opts.RecordingsDir,
		sampleRate:     opts.SampleRate,
		segmentSeconds: opts.SegmentSeconds,
		tempDir:        tempDir,
		language:       opts.DefaultLanguage,
	}, nil
}

// SetLanguage sets the transcription language for subsequent operations.
func (s *Service) SetLanguage(language string) error {
	if language != "en" && language != "fr" {
		return auditerr.NewValidationError("Language must be 'en' or 'fr'")
	}
	s.mu.Lock()
	s.language = language
	s.mu.Unlock()
	return nil
}

// Language returns the current transcription language.
func (s *Service) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// Start begins a capture session. The language, when non-empty, replaces the
// current transcription language for the session. Session state is reset
// atomically before the device starts so no stale samples or segment ordinals
// leak across sessions.
func (s *Service) Start(language string) error {
	s.mu.Lock()
	if s.recording {
		s.mu.Unlock()
		return auditerr.NewAlreadyRecording()
	}
	if language != "" {
		if language != "en" && language != "fr" {
			s.mu.Unlock()
			return auditerr.NewValidationError("Language must be 'en' or 'fr'")
		}
		s.language = language
	}
	s.recording = true
	s.fullAudio = nil
	s.segmentAudio = nil
	s.segmentCounter = 0
	s.live = nil
	s.sessionDir = ""
	if err := s.ensureSessionDirLocked(); err != nil {
		s.recording = false
		s.mu.Unlock()
		return auditerr.NewCaptureError(err)
	}
	sessionDir := s.sessionDir
	s.mu.Unlock()

	if err := s.device.Start(s.onSamples); err != nil {
		s.mu.Lock()
		s.recording = false
		s.mu.Unlock()
		return auditerr.NewCaptureError(err)
	}

	metrics.SetRecordingActive(true)
	logger.L().Info("recording started", "session_dir", sessionDir)
	return nil
}

// onSamples accumulates capture data and flushes a segment each time the
// per-segment buffer crosses the segment boundary.
func (s *Service) onSamples(samples []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.recording {
		return
	}

	s.fullAudio = append(s.fullAudio, samples...)
	s.segmentAudio = append(s.segmentAudio, samples...)

	if len(s.segmentAudio) >= s.sampleRate*s.segmentSeconds {
		s.flushSegmentLocked(context.Background())
	}
}

// flushSegmentLocked writes the per-segment buffer to a temp file,
// transcribes it and records the live transcription. The buffer is cleared
// before the remote call so capture keeps accumulating into a fresh segment.
func (s *Service) flushSegmentLocked(ctx context.Context) {
	if len(s.segmentAudio) == 0 {
		return
	}
	segment := s.segmentAudio
	s.segmentAudio = nil
	s.segmentCounter++
	ordinal := s.segmentCounter

	tempPath := filepath.Join(s.tempDir, fmt.Sprintf("segment_%d.wav", ordinal))
	if err := writeWAV(tempPath, segment, s.sampleRate); err != nil {
		logger.L().Error("failed to write segment", "segment", ordinal, "error", err)
		metrics.RecordSegment(false)
		return
	}
	defer os.Remove(tempPath)

	result, err := s.transcriber.Transcribe(ctx, tempPath, s.language)
	if err != nil {
		logger.L().Error("segment transcription failed", "segment", ordinal, "error", err)
		metrics.RecordSegment(false)
		return
	}

	s.live = append(s.live, LiveTranscription{
		Segment:       ordinal,
		Transcription: result.Lines(),
		Timestamp:     time.Now().Format("2006-01-02 15:04:05"),
	})
	metrics.RecordSegment(true)
}

// Stop ends the session: the partial segment is flushed, the accumulated
// samples are saved as one WAV file, and the whole file is transcribed and
// appended to the history.
func (s *Service) Stop(ctx context.Context) (*StopResult, error) {
	s.mu.Lock()
	if !s.recording {
		s.mu.Unlock()
		return nil, auditerr.NewNotRecording()
	}
	// flip first so in-flight callbacks drop out before the device joins
	// its capture thread
	s.recording = false
	s.mu.Unlock()

	stopErr := s.device.Stop()
	metrics.SetRecordingActive(false)

	s.mu.Lock()
	s.flushSegmentLocked(ctx)
	samples := s.fullAudio
	sessionDir := s.sessionDir
	s.mu.Unlock()

	if stopErr != nil {
		return nil, auditerr.NewCaptureError(stopErr)
	}
	if len(samples) == 0 {
		return nil, auditerr.NewValidationError("No audio recorded")
	}

	audioPath := filepath.Join(sessionDir, fmt.Sprintf("recording_%s.wav", time.Now().Format("150405")))
	if err := writeWAV(audioPath, samples, s.sampleRate); err != nil {
		return nil, auditerr.NewCaptureError(err)
	}

	// the accumulated buffer survives until it has been flushed to disk
	s.mu.Lock()
	s.fullAudio = nil
	s.mu.Unlock()

	transcription, err := s.transcribeAndRecord(ctx, audioPath)
	if err != nil {
		return nil, err
	}

	logger.L().Info("recording stopped", "audio_path", audioPath)
	return &StopResult{AudioPath: audioPath, Transcription: transcription}, nil
}

// LiveTranscriptions returns a copy of the current session's per-segment
// transcriptions.
func (s *Service) LiveTranscriptions() []LiveTranscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LiveTranscription, len(s.live))
	copy(out, s.live)
	return out
}

// SaveUploadedFile stores an uploaded audio file in the session directory and
// returns its path.
func (s *Service) SaveUploadedFile(filename string, r io.Reader) (string, error) {
	s.mu.Lock()
	if err := s.ensureSessionDirLocked(); err != nil {
		s.mu.Unlock()
		return "", fmt.Errorf("failed to create session dir: %w", err)
	}
	sessionDir := s.sessionDir
	s.mu.Unlock()

	if filename == "" {
		filename = fmt.Sprintf("uploaded_%s.wav", time.Now().Format("150405"))
	}
	audioPath := filepath.Join(sessionDir, filepath.Base(filename))

	f, err := os.Create(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}

	logger.L().Debug("saved uploaded file", "audio_path", audioPath)
	return audioPath, nil
}

// TranscribeFile transcribes an existing audio file with the current
// language and appends the result to the history.
func (s *Service) TranscribeFile(ctx context.Context, audioPath string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return "", auditerr.NewNotFound("audio file")
	}
	return s.transcribeAndRecord(ctx, audioPath)
}

func (s *Service) transcribeAndRecord(ctx context.Context, audioPath string) (string, error) {
	start := time.Now()
	result, err := s.transcriber.Transcribe(ctx, audioPath, s.Language())
	elapsed := time.Since(start)
	metrics.RecordRemoteCall("transcription", err == nil, elapsed.Seconds())

	if err != nil {
		logger.LogRemoteCall(logger.L(), "transcription", "transcribe", elapsed.Milliseconds(), err.Error())
		return "", err
	}
	logger.LogRemoteCall(logger.L(), "transcription", "transcribe", elapsed.Milliseconds(), "")

	transcription := result.Lines()
	s.history.Append(filepath.Base(audioPath), audioPath, transcription)
	return transcription, nil
}

func (s *Service) ensureSessionDirLocked() error {
	if s.sessionDir != "" {
		return nil
	}
	dir := filepath.Join(s.recordingsDir, time.Now().Format("20060102_150405"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	s.sessionDir = dir
	return nil
}
