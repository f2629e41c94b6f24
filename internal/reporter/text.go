package reporter

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/raznan-ahamed/nessreport/internal/models"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true)
	styleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true)
)

// severityStyle returns the lipgloss style for a severity level,
// colored from the frozen severity table.
func severityStyle(s models.Severity) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("#" + s.Hex()))
	if s == models.SeverityCritical || s == models.SeverityHigh {
		style = style.Bold(true)
	}
	return style
}

// TextReporter generates the human-readable run summary.
type TextReporter struct {
	writer io.Writer
	styled bool
}

// NewTextReporter creates a text reporter. styled enables color output
// and should be true only when the writer is a terminal.
func NewTextReporter(writer io.Writer, styled bool) *TextReporter {
	return &TextReporter{writer: writer, styled: styled}
}

// Generate writes the run summary.
func (r *TextReporter) Generate(s *Summary) error {
	r.printf("%s\n", r.render(styleTitle, "nessreport run "+s.RunID))
	r.printf("%s\n\n", r.render(styleMuted, "input: "+s.Input))

	r.printf("Rows:      %d data rows (%d skipped, blank severity)\n", s.TotalRows, s.SkippedRows)
	r.printf("Findings:  %d across %d host(s)\n", s.Findings, s.Hosts)

	if len(s.BySeverity) > 0 {
		r.printf("\nFindings by severity:\n")
		for _, sev := range models.Severities() {
			label := fmt.Sprintf("%-8s", sev.Label())
			r.printf("  %s %d\n", r.render(severityStyle(sev), label), s.BySeverity[sev])
		}
	}

	if s.Charts > 0 {
		r.printf("\nCharts rendered: %d\n", s.Charts)
	}

	for _, w := range s.Warnings {
		r.printf("\n%s %s\n", r.render(styleWarn, "warning:"), w)
	}

	if s.CheckOnly {
		r.printf("\n%s\n", r.render(styleMuted, "check only - no report written"))
		return nil
	}
	if s.Output != "" {
		r.printf("\nReport written to %s\n", s.Output)
	}
	return nil
}

func (r *TextReporter) render(style lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return style.Render(text)
}

func (r *TextReporter) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.writer, format, args...)
}
