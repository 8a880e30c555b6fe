package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditvox/auditvox/cmd/server/internal/auditerr"
	"github.com/auditvox/auditvox/cmd/server/internal/summary"
)

func sampleRecord() *summary.AuditRecord {
	return &summary.AuditRecord{
		ClientName:           "Acme Industrie",
		ClientAddress:        "12 rue des Forges, Lyon",
		AuditPeriod:          "3 mars 2025 - 5 mars 2025",
		ReferenceStandard:    "ISO 9001:2015",
		AuditType:            "Audit interne",
		AuditorName:          "Claire Dubois",
		AuditManager:         "Marc Petit",
		AuditTeamMembers:     "Claire Dubois, Jean Martin",
		ManagementSystem:     "qualité",
		NonConformitiesCount: "3",
		ComplianceItems: []summary.ComplianceItem{
			{Process: "Achats", Requirement: "8.4.1", Comment: "Fournisseurs non évalués depuis 2023", Rating: "majeure"},
			{Process: "Production", Requirement: "8.5.1", Comment: "Instructions de travail obsolètes", Rating: "mineure"},
		},
		ReferenceDocuments:  []string{"Manuel qualité v4", "Procédure achats PA-02"},
		ActivityDescription: "Fabrication de pièces mécaniques",
		ProcessesList:       []string{"Achats", "Production"},
		PositivePoints:      []string{"Forte implication de la direction"},
		Recommendations:     []string{"Mettre à jour les instructions de travail"},
		Resume:              "Le système de management est globalement conforme malgré trois écarts.",
	}
}

func TestCreateFrenchReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "rapport.pdf")

	require.NoError(t, NewGenerator("fr").Create(out, sampleRecord()))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(1000))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestCreateEnglishReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.pdf")

	rec := sampleRecord()
	rec.ManagementSystem = "quality"
	require.NoError(t, NewGenerator("en").Create(out, rec))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(1000))
}

func TestCreateCreatesOutputDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "dir", "rapport.pdf")
	require.NoError(t, NewGenerator("fr").Create(out, sampleRecord()))

	_, err := os.Stat(out)
	require.NoError(t, err)
}

func TestCreateLongComplianceTablePaginates(t *testing.T) {
	rec := sampleRecord()
	rec.ComplianceItems = nil
	for i := 0; i < 60; i++ {
		rec.ComplianceItems = append(rec.ComplianceItems, summary.ComplianceItem{
			Process:     "Production",
			Requirement: "8.5.1",
			Comment:     "Un commentaire suffisamment long pour forcer le retour à la ligne dans la colonne commentaire du tableau de conformité.",
			Rating:      "mineure",
		})
	}

	out := filepath.Join(t.TempDir(), "long.pdf")
	require.NoError(t, NewGenerator("fr").Create(out, rec))
}

func TestCreateWrapsAccentedComplianceCells(t *testing.T) {
	rec := sampleRecord()
	rec.ComplianceItems = []summary.ComplianceItem{{
		Process:     "Qualité",
		Requirement: "7.5.3",
		Comment:     "Les enregistrements de maîtrise documentaire sont incomplets et les responsabilités associées à leur mise à jour ne sont pas définies.",
		Rating:      "majeure",
	}}

	out := filepath.Join(t.TempDir(), "accents.pdf")
	require.NoError(t, NewGenerator("fr").Create(out, rec))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestCreateDefaultsBlankFields(t *testing.T) {
	g := NewGenerator("fr")
	assert.Equal(t, "Non spécifié", g.orNotSpecified("  "))
	assert.Equal(t, "Acme", g.orNotSpecified("Acme"))
	assert.Equal(t, "Not specified", NewGenerator("en").orNotSpecified(""))

	out := filepath.Join(t.TempDir(), "blank.pdf")
	require.NoError(t, g.Create(out, &summary.AuditRecord{}))
}

func TestCheckTableWidth(t *testing.T) {
	assert.NoError(t, checkTableWidth(170, 170))
	err := checkTableWidth(171, 170)
	require.Error(t, err)
	assert.Equal(t, auditerr.REPORT_GENERATION_FAILED, auditerr.CodeOf(err))
}
