package summary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditvox/auditvox/cmd/server/internal/auditerr"
	"github.com/auditvox/auditvox/cmd/server/internal/llm"
)

const frenchReply = `Audit de Acme Industrie (12 rue des Forges, Lyon) mené du 3 mars 2025 au 5 mars 2025 selon la norme ISO 9001:2015.

Type d'audit: Audit interne

Auditeur Principal: Claire Dubois

Responsable de l'audit: Marc Petit

Équipe d'audit: Claire Dubois, Jean Martin

Système de gestion: qualité

Non-conformités détectées: 3

Détails des non-conformités :
- Achats (8.4.1): Fournisseurs non évalués depuis 2023 (Évaluation: majeure)
- Production (8.5.1): Instructions de travail obsolètes (Évaluation: mineure)
- Maintenance: Registre incomplet

Documents de référence :
- Manuel qualité v4
- Procédure achats PA-02

Activité auditée: Fabrication de pièces mécaniques

Processus audités :
- Achats
- Production

Points positifs :
- Forte implication de la direction

Recommandations générales :
- Mettre à jour les instructions de travail

Résumé : Le système de management est globalement conforme malgré trois écarts.`

func TestParseFrenchReply(t *testing.T) {
	rec := parseRecord(frenchReply, "fr")

	assert.Equal(t, "Acme Industrie", rec.ClientName)
	assert.Equal(t, "12 rue des Forges, Lyon", rec.ClientAddress)
	assert.Equal(t, "3 mars 2025 - 5 mars 2025", rec.AuditPeriod)
	assert.Equal(t, "ISO 9001:2015", rec.ReferenceStandard)
	assert.Equal(t, "Audit interne", rec.AuditType)
	assert.Equal(t, "Claire Dubois", rec.AuditorName)
	assert.Equal(t, "Marc Petit", rec.AuditManager)
	assert.Equal(t, "Claire Dubois, Jean Martin", rec.AuditTeamMembers)
	assert.Equal(t, "qualité", rec.ManagementSystem)
	assert.Equal(t, "3", rec.NonConformitiesCount)

	require.Len(t, rec.ComplianceItems, 3)
	assert.Equal(t, ComplianceItem{
		Process:     "Achats",
		Requirement: "8.4.1",
		Comment:     "Fournisseurs non évalués depuis 2023",
		Rating:      "majeure",
	}, rec.ComplianceItems[0])
	// bullet without requirement or rating keeps the raw pieces
	assert.Equal(t, ComplianceItem{
		Process:     "Maintenance",
		Requirement: "Non spécifié",
		Comment:     "Registre incomplet",
		Rating:      "Non spécifié",
	}, rec.ComplianceItems[2])

	assert.Equal(t, []string{"Manuel qualité v4", "Procédure achats PA-02"}, rec.ReferenceDocuments)
	assert.Equal(t, "Fabrication de pièces mécaniques", rec.ActivityDescription)
	assert.Equal(t, []string{"Achats", "Production"}, rec.ProcessesList)
	assert.Equal(t, []string{"Forte implication de la direction"}, rec.PositivePoints)
	assert.Equal(t, []string{"Mettre à jour les instructions de travail"}, rec.Recommendations)
	assert.Equal(t, "Le système de management est globalement conforme malgré trois écarts.", rec.Resume)
}

func TestParseFrenchReplyCurlyApostrophe(t *testing.T) {
	rec := parseRecord("Équipe d’audit: Anne Roy", "fr")
	assert.Equal(t, "Anne Roy", rec.AuditTeamMembers)
}

const englishReply = `Audit of Northwind Ltd (5 Dock Road, Leeds) conducted from 1 June 2025 to 2 June 2025 according to the ISO 14001:2015.

Audit Type: Internal Audit

Lead Auditor: Sam Carter

Audit Manager: Priya Shah

Audit Team: Sam Carter, Lee Wong

Management System: environment

Non-conformities detected: 1

Details of non-conformities:
- Waste handling (8.1): Segregation not enforced on site (Rating: minor)

Reference Documents:
- Environmental manual v2

Audited Activity: Warehousing and distribution

Audited Processes:
- Waste handling

Positive Points:
- Clear environmental objectives

General Recommendations:
- Reinforce segregation training

Summary: The management system is effective with one minor deviation.`

func TestParseEnglishReply(t *testing.T) {
	rec := parseRecord(englishReply, "en")

	assert.Equal(t, "Northwind Ltd", rec.ClientName)
	assert.Equal(t, "5 Dock Road, Leeds", rec.ClientAddress)
	assert.Equal(t, "1 June 2025 - 2 June 2025", rec.AuditPeriod)
	assert.Equal(t, "ISO 14001:2015", rec.ReferenceStandard)
	assert.Equal(t, "Internal Audit", rec.AuditType)
	assert.Equal(t, "1", rec.NonConformitiesCount)

	require.Len(t, rec.ComplianceItems, 1)
	assert.Equal(t, "Waste handling", rec.ComplianceItems[0].Process)
	assert.Equal(t, "8.1", rec.ComplianceItems[0].Requirement)
	assert.Equal(t, "minor", rec.ComplianceItems[0].Rating)

	assert.Equal(t, "The management system is effective with one minor deviation.", rec.Resume)
}

func TestParseEmptyReplyDegradesToPlaceholders(t *testing.T) {
	rec := parseRecord("", "fr")

	assert.Equal(t, "Non spécifié", rec.ClientName)
	assert.Equal(t, "Non spécifié - Non spécifié", rec.AuditPeriod)
	assert.Equal(t, "0", rec.NonConformitiesCount)
	assert.Equal(t, []string{"Non spécifié"}, rec.ReferenceDocuments)
	assert.Equal(t, []string{"Non spécifié"}, rec.ProcessesList)
	assert.Equal(t, []string{"Aucun point positif mentionné"}, rec.PositivePoints)
	assert.Equal(t, []string{"Aucune recommandation fournie"}, rec.Recommendations)
	assert.Equal(t, "Aucun résumé fourni", rec.Resume)
	require.Len(t, rec.ComplianceItems, 1)
	assert.Equal(t, ComplianceItem{
		Process:     "Non spécifié",
		Requirement: "N/A",
		Comment:     "Aucune information",
		Rating:      "N/A",
	}, rec.ComplianceItems[0])
}

func TestParseEmptyReplyEnglishPlaceholders(t *testing.T) {
	rec := parseRecord("", "en")

	assert.Equal(t, "Not specified", rec.ClientName)
	assert.Equal(t, []string{"No positive points mentioned"}, rec.PositivePoints)
	assert.Equal(t, []string{"No recommendations provided"}, rec.Recommendations)
	assert.Equal(t, "No summary provided", rec.Resume)
}

func TestParseIsIdempotent(t *testing.T) {
	first := parseRecord(frenchReply, "fr")
	second := parseRecord(frenchReply, "fr")
	assert.Equal(t, first, second)
}

func TestSummarizeUsesLanguageTemplate(t *testing.T) {
	gen := llm.NewMockGenerator(englishReply)
	svc := NewService(gen)

	res, err := svc.Summarize(context.Background(), "raw meeting audio text", "en")
	require.NoError(t, err)

	assert.Equal(t, englishReply, res.Summary)
	assert.Equal(t, "Northwind Ltd", res.Record.ClientName)

	require.Len(t, gen.Requests, 1)
	req := gen.Requests[0]
	assert.Equal(t, englishSystemMessage, req.System)
	assert.Contains(t, req.User, "Structure to follow:")
	assert.Contains(t, req.User, "Transcription:\nraw meeting audio text")
	assert.Equal(t, summaryMaxTokens, req.MaxTokens)
}

func TestSummarizeDefaultsToFrench(t *testing.T) {
	gen := llm.NewMockGenerator(frenchReply)
	svc := NewService(gen)

	_, err := svc.Summarize(context.Background(), "texte brut", "fr")
	require.NoError(t, err)

	req := gen.Requests[0]
	assert.Equal(t, frenchSystemMessage, req.System)
	assert.Contains(t, req.User, "Structure à suivre :")
}

func TestSummarizeWrapsGeneratorError(t *testing.T) {
	gen := llm.NewMockGenerator()
	gen.Err = errors.New("service down")
	svc := NewService(gen)

	_, err := svc.Summarize(context.Background(), "texte", "fr")
	require.Error(t, err)
	assert.Equal(t, auditerr.SUMMARIZATION_FAILED, auditerr.CodeOf(err))
}
