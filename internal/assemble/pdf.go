package assemble

import (
	"bytes"
	"fmt"
	"io"

	gofpdf "github.com/go-pdf/fpdf"

	"github.com/raznan-ahamed/nessreport/internal/models"
)

const (
	pageMargin     = 15.0
	chartWidth     = 130.0 // mm; height follows the image aspect ratio
	remediationHex = "9ACD32"
)

// writeContent renders every content page of the report into w. The
// layout is: statistics page (overall chart), executive summary
// placeholder, then one section per severity level with per-host
// subsections and finding detail tables.
func (a *Assembler) writeContent(w io.Writer, sections []models.Section) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, 22)

	footer := "nessreport"
	if a.opts.RunID != "" {
		footer = fmt.Sprintf("nessreport run %s", a.opts.RunID)
	}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 6, fmt.Sprintf("%s - page %d", footer, pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	a.addStatisticsPage(pdf, sections)
	a.addExecutiveSummaryPage(pdf)
	a.addFindingSections(pdf, sections)

	if pdf.Err() {
		return pdf.Error()
	}
	return pdf.Output(w)
}

// addStatisticsPage renders "1. Statistics" with the shared overall
// chart. When charts were skipped (empty dataset) the page states so
// instead of embedding an empty image.
func (a *Assembler) addStatisticsPage(pdf *gofpdf.Fpdf, sections []models.Section) {
	pdf.AddPage()
	a.addChapterHeading(pdf, a.opts.Title)
	pdf.Ln(2)
	a.addChapterHeading(pdf, "1. Statistics")
	pdf.Ln(4)

	overall := overallChart(sections)
	if overall == nil {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetTextColor(128, 128, 128)
		pdf.MultiCell(0, 6, "No findings in this scan. Chart generation was skipped.", "", "L", false)
		return
	}
	a.addChart(pdf, "chart-overall", overall)
}

// addExecutiveSummaryPage renders the "2. Executive Summary"
// placeholder page. The summary text is written by the analyst after
// generation, like the Impact cells.
func (a *Assembler) addExecutiveSummaryPage(pdf *gofpdf.Fpdf) {
	pdf.AddPage()
	a.addChapterHeading(pdf, "2. Executive Summary")
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(80, 80, 80)
	pdf.MultiCell(0, 6, "Add executive summary here...", "", "L", false)
}

// addFindingSections renders "3. Vulnerabilities and Remediations":
// each severity section on its own page, heading colored per the
// severity table, then host subsections with chart and detail tables.
func (a *Assembler) addFindingSections(pdf *gofpdf.Fpdf, sections []models.Section) {
	pdf.AddPage()
	a.addChapterHeading(pdf, "3. Vulnerabilities and Remediations")

	for si, section := range sections {
		if si > 0 {
			pdf.AddPage()
		} else {
			pdf.Ln(4)
		}

		r, g, b := section.Severity.RGB()
		pdf.SetFont("Helvetica", "B", 13)
		pdf.SetTextColor(r, g, b)
		pdf.CellFormat(0, 9, section.Heading, "", 1, "L", false, 0, "")

		if section.NoFindings {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(128, 128, 128)
			pdf.CellFormat(0, 7, "No findings", "", 1, "L", false, 0, "")
			continue
		}

		if section.OverallPNG != nil {
			a.addChart(pdf, "chart-overall", section.OverallPNG)
			pdf.Ln(2)
		}

		for _, entry := range section.HostEntries {
			a.addHostEntry(pdf, entry)
		}
	}
}

// addHostEntry renders one host subsection: heading, host chart, and
// one detail table per finding.
func (a *Assembler) addHostEntry(pdf *gofpdf.Fpdf, entry models.HostEntry) {
	a.ensureRoom(pdf, 30)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(0, 8, entry.Heading, "", 1, "L", false, 0, "")

	if entry.ChartPNG != nil {
		a.addChart(pdf, "chart-"+entry.Heading, entry.ChartPNG)
		pdf.Ln(2)
	}

	for _, row := range entry.Rows {
		a.addFindingTable(pdf, row)
	}
}

// addFindingTable renders the per-finding detail table: title banner
// in the severity color, risk line, description, blank impact for
// manual fill, and remediation on the fixed green banner.
func (a *Assembler) addFindingTable(pdf *gofpdf.Fpdf, row models.TableRow) {
	a.ensureRoom(pdf, 46)

	r, g, b := row.Severity.RGB()

	// Title banner.
	pdf.SetFillColor(r, g, b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.MultiCell(0, 8, row.Title, "1", "L", true)

	// Risk line.
	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 7, "Risk: "+row.Severity.Label(), "LR", 1, "L", false, 0, "")

	// Description.
	pdf.CellFormat(0, 7, "Description:", "LR", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5.5, row.Description, "LR", "L", false)

	// Impact: intentionally blank for manual fill.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 7, "Impact:", "LR", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5.5, row.Impact, "LR", "L", false)

	// Remediation banner.
	gr, gg, gb := hexRGB(remediationHex)
	pdf.SetFillColor(gr, gg, gb)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 7, "Remediation:", "LR", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5.5, row.Remediation, "LRB", "L", false)

	pdf.Ln(4)
}

// addChart embeds a PNG chart inline at the current position, scaled
// to the standard chart width. Images are registered by name so a
// chart reused across sections is stored once in the output.
func (a *Assembler) addChart(pdf *gofpdf.Fpdf, name string, png []byte) {
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	info := pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	if pdf.Err() {
		return
	}

	h := chartWidth * info.Height() / info.Width()
	a.ensureRoom(pdf, h)
	pageW, _ := pdf.GetPageSize()
	x := (pageW - chartWidth) / 2
	pdf.ImageOptions(name, x, pdf.GetY(), chartWidth, h, true, opts, 0, "")
}

// addChapterHeading renders a top-level heading.
func (a *Assembler) addChapterHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 15)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(0, 10, text, "", 1, "L", false, 0, "")
}

// ensureRoom starts a new page when fewer than need millimeters remain
// above the footer area.
func (a *Assembler) ensureRoom(pdf *gofpdf.Fpdf, need float64) {
	_, pageH := pdf.GetPageSize()
	if pdf.GetY()+need > pageH-24 {
		pdf.AddPage()
	}
}

// overallChart returns the shared overall chart, or nil when charts
// were skipped.
func overallChart(sections []models.Section) []byte {
	for _, s := range sections {
		if s.OverallPNG != nil {
			return s.OverallPNG
		}
	}
	return nil
}

func hexRGB(hex string) (int, int, int) {
	var r, g, b int
	_, _ = fmt.Sscanf(hex, "%02X%02X%02X", &r, &g, &b)
	return r, g, b
}
