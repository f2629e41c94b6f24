package tui

import (
	"fmt"
	"strings"

	"github.com/raznan-ahamed/nessreport/internal/models"
)

// detailHeight is the fixed number of lines for the detail panel.
const detailHeight = 5

// renderDetail produces the detail view for a selected finding.
func renderDetail(f *models.Finding, width int) string {
	if f == nil {
		return styleDetailPanel.Width(width).Render("No finding selected")
	}

	var b strings.Builder

	sevStyled := severityStyle(f.Severity).Render(f.Severity.Label())
	b.WriteString(fmt.Sprintf("%s  %s\n", sevStyled, f.Title))
	b.WriteString(fmt.Sprintf("Host: %s\n", f.Host))

	if f.Description != "" {
		b.WriteString(fmt.Sprintf("Description: %s\n", firstLine(f.Description, width-15)))
	}
	if f.Remediation != "" {
		b.WriteString(fmt.Sprintf("Remediation: %s", firstLine(f.Remediation, width-15)))
	}

	return styleDetailPanel.Width(width).Render(b.String())
}

// firstLine clips text to its first line, truncated to maxLen runes.
func firstLine(s string, maxLen int) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	if maxLen < 8 {
		maxLen = 8
	}
	return truncate(s, maxLen)
}
