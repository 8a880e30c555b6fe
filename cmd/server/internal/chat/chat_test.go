package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditvox/auditvox/cmd/server/internal/auditerr"
	"github.com/auditvox/auditvox/cmd/server/internal/llm"
)

func TestAnswerFillsSystemPrompt(t *testing.T) {
	gen := llm.NewMockGenerator("Trois non-conformités majeures ont été relevées.")
	svc := NewService(gen)

	out, err := svc.Answer(context.Background(),
		"Quelles sont les non-conformités principales ?",
		Context{
			Transcription:   "[00:00.000 → 00:04.000] Bonjour",
			Summary:         "Audit de Acme",
			NonConformities: "3",
			Processes:       "Achats, Production",
		},
		[]string{"Q: état général ?", "R: conforme"},
	)
	require.NoError(t, err)
	assert.Equal(t, "Trois non-conformités majeures ont été relevées.", out)

	require.Len(t, gen.Requests, 1)
	req := gen.Requests[0]
	assert.Equal(t, "Quelles sont les non-conformités principales ?", req.User)
	assert.Zero(t, req.MaxTokens)
	assert.Contains(t, req.System, "Transcription : [00:00.000 → 00:04.000] Bonjour")
	assert.Contains(t, req.System, "Résumé : Audit de Acme")
	assert.Contains(t, req.System, "Non-conformités : 3")
	assert.Contains(t, req.System, "Processus : Achats, Production")
	assert.Contains(t, req.System, "Q: état général ?\nR: conforme")
}

func TestAnswerEmptyHistory(t *testing.T) {
	gen := llm.NewMockGenerator("réponse")
	svc := NewService(gen)

	_, err := svc.Answer(context.Background(), "question", Context{}, nil)
	require.NoError(t, err)
	assert.Contains(t, gen.Requests[0].System, "Historique de la conversation : \n")
}

func TestAnswerWrapsGeneratorError(t *testing.T) {
	gen := llm.NewMockGenerator()
	gen.Err = errors.New("service down")
	svc := NewService(gen)

	_, err := svc.Answer(context.Background(), "question", Context{}, nil)
	require.Error(t, err)
	assert.Equal(t, auditerr.CHAT_FAILED, auditerr.CodeOf(err))
}
