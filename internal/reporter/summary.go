// Package reporter prints the end-of-run summary: what was loaded,
// how it was grouped, which warnings occurred, and where the report
// landed. Text output is styled when attached to a terminal; JSON is
// available for scripting.
package reporter

import (
	"github.com/raznan-ahamed/nessreport/internal/models"
)

// Summary describes one pipeline run for the caller.
type Summary struct {
	RunID       string                  `json:"run_id"`
	Input       string                  `json:"input"`
	Template    string                  `json:"template,omitempty"`
	Output      string                  `json:"output,omitempty"`
	TotalRows   int                     `json:"total_rows"`
	SkippedRows int                     `json:"skipped_rows"`
	Findings    int                     `json:"findings"`
	Hosts       int                     `json:"hosts"`
	BySeverity  map[models.Severity]int `json:"by_severity"`
	Charts      int                     `json:"charts"`
	Warnings    []string                `json:"warnings,omitempty"`
	CheckOnly   bool                    `json:"check_only,omitempty"`
}

// FromAggregate fills the grouping counters from an aggregation
// result.
func (s *Summary) FromAggregate(agg *models.Aggregate) {
	s.Findings = agg.Stats.Total
	s.Hosts = len(agg.Hosts)
	s.BySeverity = agg.Stats.Overall
}
