// Package report renders a structured audit record into a fixed seven-section
// paginated PDF document.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/auditvox/auditvox/cmd/server/internal/auditerr"
	"github.com/auditvox/auditvox/cmd/server/internal/summary"
)

// Page geometry in millimeters.
const (
	pageWidth    = 210.0
	marginLeft   = 20.0
	marginRight  = 20.0
	marginTop    = 40.0
	marginBottom = 30.0

	lineHeight = 6.0
)

// complianceColWidths are the fixed column widths of the compliance table.
var complianceColWidths = [4]float64{25, 25, 90, 30}

// checkTableWidth rejects a table wider than the printable area.
func checkTableWidth(total, available float64) error {
	if total > available {
		return auditerr.NewReportError(fmt.Errorf(
			"compliance table width (%.1fmm) exceeds available space (%.1fmm)", total, available))
	}
	return nil
}

// Generator renders audit reports in one language.
type Generator struct {
	strs stringsTable
}

func NewGenerator(language string) *Generator {
	return &Generator{strs: stringsFor(language)}
}

// Create renders the record to outputPath.
func (g *Generator) Create(outputPath string, rec *summary.AuditRecord) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return auditerr.NewReportError(err)
	}

	available := pageWidth - marginLeft - marginRight
	total := 0.0
	for _, w := range complianceColWidths {
		total += w
	}
	if err := checkTableWidth(total, available); err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AliasNbPages("")

	pdf.SetHeaderFunc(func() {
		g.drawHeader(pdf, tr)
	})
	pdf.SetFooterFunc(func() {
		g.drawFooter(pdf, tr, rec)
	})

	g.coverPage(pdf, tr, rec)
	g.tocPage(pdf, tr)
	g.summarySection(pdf, tr, rec)
	g.scopeSection(pdf, tr, rec)
	g.approachAndComplianceSections(pdf, tr, rec)
	g.positiveAndConclusionSections(pdf, tr, rec)
	g.remarksSection(pdf, tr, rec)

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return auditerr.NewReportError(err)
	}
	return nil
}

func (g *Generator) drawHeader(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFillColor(243, 243, 243)
	pdf.Rect(0, 0, pageWidth, 18, "F")

	setAccentColor(pdf)
	pdf.SetLineWidth(1)
	pdf.Line(marginLeft, 18, pageWidth-marginRight, 18)

	pdf.SetFont("Helvetica", "B", 10)
	setPrimaryTextColor(pdf)
	pdf.Text(marginLeft, 12, tr(g.strs.headerTitle))

	pdf.SetFont("Helvetica", "", 9)
	pageText := tr(fmt.Sprintf(g.strs.pageOf, pdf.PageNo()))
	pdf.SetXY(pageWidth-marginRight-60, 8)
	pdf.CellFormat(60, 6, pageText, "", 0, "R", false, 0, "")
}

func (g *Generator) drawFooter(pdf *gofpdf.Fpdf, tr func(string) string, rec *summary.AuditRecord) {
	_, pageHeight := pdf.GetPageSize()

	pdf.SetDrawColor(226, 232, 240)
	pdf.SetLineWidth(0.3)
	pdf.Line(marginLeft, pageHeight-22, pageWidth-marginRight, pageHeight-22)

	pdf.SetFont("Helvetica", "", 8)
	setBodyTextColor(pdf)
	revision := fmt.Sprintf(g.strs.revision, time.Now().Format("2006-01"))
	pdf.Text(marginLeft, pageHeight-16, tr(revision))

	pdf.SetXY(pageWidth-marginRight-80, pageHeight-20)
	pdf.CellFormat(80, 6, tr(rec.ClientName), "", 0, "R", false, 0, "")
}

func (g *Generator) coverPage(pdf *gofpdf.Fpdf, tr func(string) string, rec *summary.AuditRecord) {
	pdf.AddPage()
	pdf.Ln(15)

	pdf.SetFont("Helvetica", "B", 20)
	setPrimaryTextColor(pdf)
	pdf.CellFormat(0, 12, tr(g.strs.coverTitle), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 16)
	setSecondaryTextColor(pdf)
	pdf.CellFormat(0, 10, tr(g.strs.coverSubtitle), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 10, tr(strings.ToUpper(rec.ManagementSystem)), "", 1, "C", false, 0, "")
	pdf.Ln(15)

	g.labelValueTable(pdf, tr, [][2]string{
		{g.strs.coverClient, rec.ClientName},
		{g.strs.coverAddress, rec.ClientAddress},
		{g.strs.coverPeriod, rec.AuditPeriod},
		{g.strs.coverStandard, rec.ReferenceStandard},
	}, 40, 100)
	pdf.Ln(20)

	pdf.SetFont("Helvetica", "B", 14)
	setSecondaryTextColor(pdf)
	pdf.CellFormat(0, 8, tr(g.strs.reportTypeHead), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	setBodyTextColor(pdf)
	pdf.CellFormat(0, 8, tr(g.strs.reportTypeItem), "", 1, "L", false, 0, "")
	pdf.Ln(20)

	pdf.SetFont("Helvetica", "", 11)
	dateText := fmt.Sprintf(g.strs.reportDate, time.Now().Format("02.01.2006"))
	pdf.CellFormat(0, 7, tr(dateText), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(50, 7, tr(g.strs.auditManager), "", 0, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr(rec.AuditManager), "", 1, "L", false, 0, "")
}

func (g *Generator) tocPage(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.AddPage()
	g.sectionHeader(pdf, tr, g.strs.tocTitle)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 12)
	setBodyTextColor(pdf)
	for _, entry := range g.strs.tocEntries {
		pdf.CellFormat(0, 8, tr(entry), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}
}

func (g *Generator) summarySection(pdf *gofpdf.Fpdf, tr func(string) string, rec *summary.AuditRecord) {
	pdf.AddPage()
	g.sectionHeader(pdf, tr, g.strs.section1)
	pdf.Ln(4)

	g.labelValueTable(pdf, tr, [][2]string{
		{g.strs.labelClient, rec.ClientName},
		{g.strs.labelSite, rec.ClientAddress},
		{g.strs.labelAuditor, rec.AuditorName},
		{g.strs.labelStandard, rec.ReferenceStandard},
		{g.strs.labelType, rec.AuditType},
		{g.strs.labelPeriod, rec.AuditPeriod},
		{g.strs.labelManager, rec.AuditManager},
		{g.strs.labelTeam, rec.AuditTeamMembers},
	}, 50, 120)
	pdf.Ln(6)

	g.bodyParagraph(pdf, tr, fmt.Sprintf(g.strs.summaryText, rec.ClientName, rec.ClientAddress, rec.ManagementSystem))
	pdf.Ln(4)

	g.highlightedBox(pdf, tr, fmt.Sprintf(g.strs.nonConfText, rec.NonConformitiesCount))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	setBodyTextColor(pdf)
	pdf.CellFormat(30, 6, time.Now().Format("02.01.2006"), "T", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(rec.AuditManager), "T", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(30, 6, tr(g.strs.signatureDate), "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(g.strs.signatureRole), "", 1, "R", false, 0, "")
}

func (g *Generator) scopeSection(pdf *gofpdf.Fpdf, tr func(string) string, rec *summary.AuditRecord) {
	pdf.AddPage()
	g.sectionHeader(pdf, tr, g.strs.section2)
	pdf.Ln(4)

	g.bodyParagraph(pdf, tr, fmt.Sprintf(g.strs.objectiveText, rec.ManagementSystem))
	pdf.Ln(4)

	g.bodyParagraph(pdf, tr, g.strs.docsIntro)
	g.bulletList(pdf, tr, rec.ReferenceDocuments)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	setSecondaryTextColor(pdf)
	pdf.CellFormat(0, 8, tr(g.strs.domainHead), "", 1, "L", false, 0, "")
	g.bodyParagraph(pdf, tr, fmt.Sprintf(g.strs.domainText, rec.ClientAddress, rec.ActivityDescription))
	pdf.Ln(3)

	g.bodyParagraph(pdf, tr, g.strs.processIntro)
	g.bulletList(pdf, tr, rec.ProcessesList)
}

func (g *Generator) approachAndComplianceSections(pdf *gofpdf.Fpdf, tr func(string) string, rec *summary.AuditRecord) {
	pdf.AddPage()
	g.sectionHeader(pdf, tr, g.strs.section3)
	pdf.Ln(4)
	g.highlightedBox(pdf, tr, g.strs.approachText)
	pdf.Ln(8)

	g.sectionHeader(pdf, tr, g.strs.section4)
	pdf.Ln(4)
	g.complianceTable(pdf, tr, rec.ComplianceItems)
}

func (g *Generator) complianceTable(pdf *gofpdf.Fpdf, tr func(string) string, items []summary.ComplianceItem) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(26, 54, 93)
	pdf.SetTextColor(255, 255, 255)
	for i, head := range g.strs.complianceHeader {
		pdf.CellFormat(complianceColWidths[i], 8, tr(head), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	setBodyTextColor(pdf)
	for idx, item := range items {
		if idx%2 == 1 {
			pdf.SetFillColor(226, 232, 240)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		g.complianceRow(pdf, tr, item)
	}
}

// complianceRow draws one table row tall enough for its longest wrapped cell.
func (g *Generator) complianceRow(pdf *gofpdf.Fpdf, tr func(string) string, item summary.ComplianceItem) {
	cells := [4]string{item.Process, item.Requirement, item.Comment, item.Rating}

	// SplitText wants UTF-8 input; translated cp1252 bytes would decode as
	// U+FFFD and overflow the core font width table
	rowLines := 1
	for i, cell := range cells {
		n := len(pdf.SplitText(cell, complianceColWidths[i]-2))
		if n > rowLines {
			rowLines = n
		}
	}
	rowHeight := float64(rowLines) * lineHeight

	// break the page manually so the row's border stays in one piece
	_, pageHeight := pdf.GetPageSize()
	if pdf.GetY()+rowHeight > pageHeight-marginBottom {
		pdf.AddPage()
	}

	x := marginLeft
	y := pdf.GetY()
	for i, cell := range cells {
		pdf.Rect(x, y, complianceColWidths[i], rowHeight, "FD")
		pdf.SetXY(x+1, y)
		align := "L"
		if i == 3 {
			align = "C"
		}
		pdf.MultiCell(complianceColWidths[i]-2, lineHeight, tr(cell), "", align, false)
		x += complianceColWidths[i]
	}
	pdf.SetXY(marginLeft, y+rowHeight)
}

func (g *Generator) positiveAndConclusionSections(pdf *gofpdf.Fpdf, tr func(string) string, rec *summary.AuditRecord) {
	pdf.AddPage()
	g.sectionHeader(pdf, tr, g.strs.section5)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	setSecondaryTextColor(pdf)
	pdf.CellFormat(0, 8, tr(g.strs.positiveHead), "", 1, "L", false, 0, "")
	g.bulletList(pdf, tr, rec.PositivePoints)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	setSecondaryTextColor(pdf)
	pdf.CellFormat(0, 8, tr(g.strs.improvementHead), "", 1, "L", false, 0, "")
	g.bulletList(pdf, tr, rec.Recommendations)
	pdf.Ln(8)

	g.sectionHeader(pdf, tr, g.strs.section6)
	pdf.Ln(4)
	g.bodyParagraph(pdf, tr, g.strs.conclusionParas[0])
	pdf.Ln(3)
	g.bodyParagraph(pdf, tr, g.strs.conclusionParas[1])
	pdf.Ln(3)
	g.bodyParagraph(pdf, tr, fmt.Sprintf(g.strs.conclusionParas[2], rec.NonConformitiesCount))
	pdf.Ln(3)
	g.bodyParagraph(pdf, tr, fmt.Sprintf(g.strs.conclusionParas[3], rec.ReferenceStandard))
}

func (g *Generator) remarksSection(pdf *gofpdf.Fpdf, tr func(string) string, rec *summary.AuditRecord) {
	pdf.AddPage()
	g.sectionHeader(pdf, tr, g.strs.section7)
	pdf.Ln(4)
	g.bodyParagraph(pdf, tr, rec.Resume)
	pdf.Ln(10)
	g.bodyParagraph(pdf, tr, g.strs.endOfText)
}

func (g *Generator) sectionHeader(pdf *gofpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Helvetica", "B", 16)
	setPrimaryTextColor(pdf)
	pdf.CellFormat(0, 10, tr(text), "", 1, "L", false, 0, "")
}

func (g *Generator) bodyParagraph(pdf *gofpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Helvetica", "", 11)
	setBodyTextColor(pdf)
	pdf.MultiCell(0, lineHeight, tr(text), "", "L", false)
}

func (g *Generator) bulletList(pdf *gofpdf.Fpdf, tr func(string) string, items []string) {
	pdf.SetFont("Helvetica", "", 11)
	setBodyTextColor(pdf)
	for _, item := range items {
		pdf.SetX(marginLeft + 5)
		pdf.MultiCell(0, lineHeight, tr("- "+item), "", "L", false)
	}
}

func (g *Generator) labelValueTable(pdf *gofpdf.Fpdf, tr func(string) string, rows [][2]string, labelW, valueW float64) {
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(226, 232, 240)
		setPrimaryTextColor(pdf)
		pdf.CellFormat(labelW, 9, tr(row[0]), "1", 0, "R", true, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		setBodyTextColor(pdf)
		pdf.CellFormat(valueW, 9, tr(g.orNotSpecified(row[1])), "1", 1, "L", false, 0, "")
	}
}

// orNotSpecified substitutes the language's placeholder for blank values so
// records posted directly to the report endpoint never render empty cells.
func (g *Generator) orNotSpecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return g.strs.notSpecified
	}
	return value
}

func (g *Generator) highlightedBox(pdf *gofpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(226, 232, 240)
	setAccentColor(pdf)
	pdf.SetLineWidth(0.4)
	setBodyTextColor(pdf)
	pdf.MultiCell(0, 8, tr(text), "1", "L", true)
}

func setPrimaryTextColor(pdf *gofpdf.Fpdf)   { pdf.SetTextColor(26, 54, 93) }
func setSecondaryTextColor(pdf *gofpdf.Fpdf) { pdf.SetTextColor(44, 82, 130) }
func setBodyTextColor(pdf *gofpdf.Fpdf)      { pdf.SetTextColor(45, 55, 72) }
func setAccentColor(pdf *gofpdf.Fpdf)        { pdf.SetDrawColor(49, 130, 206) }
