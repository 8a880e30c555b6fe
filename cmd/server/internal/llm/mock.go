package llm

import (
	"context"
	"sync"
)

// MockGenerator implements Generator for tests. It records every request and
// replays canned responses in order, repeating the last one when exhausted.
type MockGenerator struct {
	mu sync.Mutex

	// Responses are returned in call order. When empty "mock response" is
	// returned.
	Responses []string

	// Err, when non-nil, is returned by every Generate call.
	Err error

	// Requests records each invocation.
	Requests []Request

	calls int
}

func NewMockGenerator(responses ...string) *MockGenerator {
	return &MockGenerator{Responses: responses}
}

func (m *MockGenerator) Generate(ctx context.Context, req Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, req)
	m.calls++

	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "mock response", nil
	}
	idx := m.calls - 1
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	return m.Responses[idx], nil
}

// CallCount returns the number of recorded invocations.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
