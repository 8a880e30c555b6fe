// Package llm provides the remote chat-completion client shared by the
// summarization and conversational Q&A flows.
package llm

import "context"

// Request is one chat-completion turn: a system message framing the task and
// a user message carrying the content.
type Request struct {
	System string
	User   string

	// MaxTokens caps the completion length. Zero leaves the provider default.
	MaxTokens int
}

// Generator produces a completion for a prompt pair.
//
// Implementations must respect context cancellation and return transport or
// service errors unwrapped so callers can attach their own failure domain.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}
