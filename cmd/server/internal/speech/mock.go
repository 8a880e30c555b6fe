package speech

import (
	"context"
	"sync"
)

// MockTranscriber implements Transcriber for tests and degraded operation.
// It records every call and returns canned segments without touching the
// network; it never returns an error unless Err is set.
type MockTranscriber struct {
	mu sync.Mutex

	// Segments returned on every call. When empty a single zero-length
	// segment with Text "mock transcription" is returned.
	Segments []Segment

	// Err, when non-nil, is returned by every Transcribe call.
	Err error

	// Calls records the (audioPath, language) of each invocation.
	Calls []MockCall
}

// MockCall is one recorded Transcribe invocation.
type MockCall struct {
	AudioPath string
	Language  string
}

func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

func (m *MockTranscriber) Transcribe(ctx context.Context, audioPath, language string) (*Result, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{AudioPath: audioPath, Language: language})
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	segs := m.Segments
	if len(segs) == 0 {
		segs = []Segment{{ID: 0, Start: 0, End: 0, Text: "mock transcription"}}
	}

	text := ""
	for _, s := range segs {
		text += s.Text
	}
	return &Result{Segments: segs, Text: text, Language: language}, nil
}

// CallCount returns the number of recorded invocations.
func (m *MockTranscriber) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
