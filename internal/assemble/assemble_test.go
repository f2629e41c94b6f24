package assemble

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	gofpdf "github.com/go-pdf/fpdf"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raznan-ahamed/nessreport/internal/aggregator"
	"github.com/raznan-ahamed/nessreport/internal/chart"
	"github.com/raznan-ahamed/nessreport/internal/compose"
	"github.com/raznan-ahamed/nessreport/internal/models"
)

// writeTemplate creates a minimal template PDF with the given number
// of pages (page 1 cover, page 2 reserved TOC).
func writeTemplate(t *testing.T, dir string, pages int) string {
	t.Helper()
	pdf := gofpdf.New("P", "mm", "A4", "")
	for i := 0; i < pages; i++ {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 20)
		if i == 0 {
			pdf.CellFormat(0, 12, "ACME Security - Assessment Report", "", 1, "C", false, 0, "")
		}
	}
	path := filepath.Join(dir, "template.pdf")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, pdf.Output(f))
	return path
}

func testSections(t *testing.T) []models.Section {
	t.Helper()
	agg := aggregator.Aggregate([]models.Finding{
		{Host: "hostA", Title: "SQLi", Severity: models.SeverityCritical, Description: "injection", Remediation: "parametrize", Row: 1},
		{Host: "hostA", Title: "XSS", Severity: models.SeverityMedium, Description: "reflected", Remediation: "encode", Row: 2},
		{Host: "hostB", Title: "Outdated TLS", Severity: models.SeverityCritical, Description: "tls 1.0", Remediation: "disable", Row: 3},
	})
	charts, err := chart.New(512, 320).Render(agg)
	require.NoError(t, err)
	return compose.Sections(agg, charts)
}

func TestCheckTemplate(t *testing.T) {
	dir := t.TempDir()
	a := New(Options{})

	require.NoError(t, a.CheckTemplate(writeTemplate(t, dir, 2)))
}

func TestCheckTemplateTooFewPages(t *testing.T) {
	dir := t.TempDir()
	a := New(Options{})

	err := a.CheckTemplate(writeTemplate(t, dir, 1))

	var contractErr *models.TemplateContractError
	require.ErrorAs(t, err, &contractErr)
}

func TestCheckTemplateNotAPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0644))

	err := New(Options{}).CheckTemplate(path)

	var contractErr *models.TemplateContractError
	require.ErrorAs(t, err, &contractErr)
}

func TestAssemble(t *testing.T) {
	dir := t.TempDir()
	template := writeTemplate(t, dir, 2)
	output := filepath.Join(dir, "report.pdf")

	a := New(Options{Title: "Q3 Assessment", RunID: "test-run"})
	require.NoError(t, a.Assemble(testSections(t), template, output))

	// The merged document is structurally valid and keeps the template
	// pages in front of the generated content.
	require.NoError(t, pdfapi.ValidateFile(output, nil))
	pages, err := pdfapi.PageCountFile(output)
	require.NoError(t, err)
	// 2 template pages + statistics + executive summary + at least one
	// page per severity section.
	assert.GreaterOrEqual(t, pages, 2+2+5)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
		assert.NotContains(t, e.Name(), ".nessreport-content")
	}
}

func TestAssembleContainsSectionText(t *testing.T) {
	dir := t.TempDir()
	template := writeTemplate(t, dir, 2)
	output := filepath.Join(dir, "report.pdf")

	sections := testSections(t)
	require.NoError(t, New(Options{}).Assemble(sections, template, output))

	raw, err := os.ReadFile(output)
	require.NoError(t, err)

	// fpdf writes Helvetica text literally into content streams; pdfcpu
	// merge preserves the streams, so headings are searchable in the raw
	// bytes (waft-style semantic check, compression permitting).
	if !bytes.Contains(raw, []byte("Statistics")) {
		t.Skip("content streams are compressed; text assertions unavailable")
	}
	assert.True(t, bytes.Contains(raw, []byte("Executive Summary")))
	assert.True(t, bytes.Contains(raw, []byte("No findings")))
}

func TestAssembleRejectsBadTemplateBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	template := writeTemplate(t, dir, 1)
	output := filepath.Join(dir, "report.pdf")

	err := New(Options{}).Assemble(testSections(t), template, output)

	var contractErr *models.TemplateContractError
	require.ErrorAs(t, err, &contractErr)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "no output file may exist after a contract failure")
	_, statErr = os.Stat(output + ".tmp")
	assert.True(t, os.IsNotExist(statErr), "no partial output may remain")
}

func TestAssembleEmptyDataset(t *testing.T) {
	dir := t.TempDir()
	template := writeTemplate(t, dir, 2)
	output := filepath.Join(dir, "report.pdf")

	// Charts skipped: sections composed without images still assemble.
	agg := aggregator.Aggregate(nil)
	sections := compose.Sections(agg, &chart.Charts{PerHost: map[string][]byte{}})

	require.NoError(t, New(Options{}).Assemble(sections, template, output))
	require.NoError(t, pdfapi.ValidateFile(output, nil))
}
