package summary

import (
	"context"
	"time"

	"github.com/auditvox/auditvox/cmd/server/internal/auditerr"
	"github.com/auditvox/auditvox/cmd/server/internal/llm"
	"github.com/auditvox/auditvox/cmd/server/internal/metrics"
	"github.com/auditvox/auditvox/pkg/logger"
)

// summaryMaxTokens leaves room for long section lists in the templated reply.
const summaryMaxTokens = 8000

// Service orchestrates summarization: prompt the generation service with the
// language-specific template, then parse the reply into an AuditRecord.
type Service struct {
	generator llm.Generator
}

func NewService(generator llm.Generator) *Service {
	return &Service{generator: generator}
}

// Summarize produces the structured record for a raw transcription.
// Languages other than "en" fall back to French, matching the prompt
// templates. The remote call is the only failure mode; parsing always
// succeeds via placeholder degradation.
func (s *Service) Summarize(ctx context.Context, transcription, language string) (*Result, error) {
	prompt := frenchPrompt
	system := frenchSystemMessage
	if language == "en" {
		prompt = englishPrompt
		system = englishSystemMessage
	}

	start := time.Now()
	reply, err := s.generator.Generate(ctx, llm.Request{
		System:    system,
		User:      prompt + "\n\nTranscription:\n" + transcription,
		MaxTokens: summaryMaxTokens,
	})
	elapsed := time.Since(start)
	metrics.RecordRemoteCall("summarization", err == nil, elapsed.Seconds())

	if err != nil {
		logger.LogRemoteCall(logger.L(), "summarization", "generate", elapsed.Milliseconds(), err.Error())
		return nil, auditerr.NewSummarizationError(err)
	}
	logger.LogRemoteCall(logger.L(), "summarization", "generate", elapsed.Milliseconds(), "")

	return &Result{
		Summary: reply,
		Record:  parseRecord(reply, language),
	}, nil
}
