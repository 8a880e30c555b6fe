// Package chat answers follow-up questions about an audit using the session's
// transcription, summary and conversation history as grounding context.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/auditvox/auditvox/cmd/server/internal/auditerr"
	"github.com/auditvox/auditvox/cmd/server/internal/llm"
	"github.com/auditvox/auditvox/cmd/server/internal/metrics"
	"github.com/auditvox/auditvox/pkg/logger"
)

// systemPromptTemplate frames the assistant role and carries the grounding
// context. Placeholders are filled in order: transcription, summary,
// non-conformities, processes, conversation history.
const systemPromptTemplate = `
Vous êtes un expert en audit spécialisé dans tous les types d'audits (qualité, sécurité, environnement, financier, etc.).
Votre rôle est de fournir des réponses précises et professionnelles, basées sur les informations d'audit fournies et l'historique de la conversation.

Règles à suivre :
1. Utilisez un langage clair et professionnel adapté aux audits.
2. Tenez compte de l'historique de la conversation pour fournir des réponses cohérentes.
3. Si une question nécessite des informations manquantes, demandez des précisions.
4. Basez vos réponses sur les informations d'audit suivantes :
   - Transcription : %s
   - Résumé : %s
   - Non-conformités : %s
   - Processus : %s
   - Historique de la conversation : %s
5.repondre avec la language de la derniere question posée.
6. Si la question est hors sujet ou ne peut pas être traitée, indiquez "Je ne sais pas répondre à cette question."

Exemples de questions que vous pouvez traiter :
- "Quelles sont les non-conformités principales ?"
- "Expliquez les exigences de la norme ISO 14001."
- "Résumez les points positifs de l'audit."
- "Quels sont les risques identifiés lors de l'audit financier ?"
- "Quelles sont les recommandations pour améliorer la conformité ?"
`

// Context is the audit knowledge a question is answered against.
type Context struct {
	Transcription   string `json:"transcription"`
	Summary         string `json:"summary"`
	NonConformities string `json:"non_conformities"`
	Processes       string `json:"processes"`
}

// Service answers questions through the generation service.
type Service struct {
	generator llm.Generator
}

func NewService(generator llm.Generator) *Service {
	return &Service{generator: generator}
}

// Answer sends one question with its grounding context and prior exchanges.
func (s *Service) Answer(ctx context.Context, question string, auditCtx Context, chatHistory []string) (string, error) {
	system := fmt.Sprintf(systemPromptTemplate,
		auditCtx.Transcription,
		auditCtx.Summary,
		auditCtx.NonConformities,
		auditCtx.Processes,
		strings.Join(chatHistory, "\n"),
	)

	start := time.Now()
	reply, err := s.generator.Generate(ctx, llm.Request{
		System: system,
		User:   question,
	})
	elapsed := time.Since(start)
	metrics.RecordRemoteCall("chat", err == nil, elapsed.Seconds())

	if err != nil {
		logger.LogRemoteCall(logger.L(), "chat", "generate", elapsed.Milliseconds(), err.Error())
		return "", auditerr.NewChatError(err)
	}
	logger.LogRemoteCall(logger.L(), "chat", "generate", elapsed.Milliseconds(), "")

	return reply, nil
}
