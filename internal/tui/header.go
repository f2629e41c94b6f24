package tui

import (
	"fmt"
	"strings"

	"github.com/raznan-ahamed/nessreport/internal/models"
)

// headerHeight is the number of terminal lines the header occupies.
const headerHeight = 4

// renderHeader produces the header string from aggregate summary data.
func renderHeader(input string, agg *models.Aggregate, width int) string {
	var b strings.Builder

	// Line 1: title and source file
	b.WriteString(fmt.Sprintf("nessreport  %s", input))
	b.WriteString("\n")

	// Line 2: hosts and total findings
	b.WriteString(fmt.Sprintf("Hosts: %d  Findings: %d",
		len(agg.Hosts), agg.Stats.Total))
	b.WriteString("\n")

	// Line 3: severity breakdown
	sevParts := make([]string, 0, len(models.Severities()))
	for _, sev := range models.Severities() {
		if count := agg.Stats.Overall[sev]; count > 0 {
			label := fmt.Sprintf("%s:%d", strings.ToUpper(string(sev)[:1]), count)
			sevParts = append(sevParts, severityStyle(sev).Render(label))
		}
	}
	if len(sevParts) > 0 {
		b.WriteString(strings.Join(sevParts, "  "))
	} else {
		b.WriteString("No findings")
	}

	return styleHeader.Width(width).Render(b.String())
}
