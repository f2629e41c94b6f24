// Package compose builds the ordered, color-coded report sections from
// aggregated findings and rendered charts. It owns the section layout
// and numbering; the assembler just draws what it is handed.
package compose

import (
	"fmt"
	"strings"

	"github.com/raznan-ahamed/nessreport/internal/chart"
	"github.com/raznan-ahamed/nessreport/internal/models"
)

// vulnChapter is the chapter number of the findings part of the
// report; chapters 1 and 2 are the statistics and executive summary
// pages the assembler emits.
const vulnChapter = 3

// Sections produces one section per severity level in fixed rank
// order. Levels with no findings become heading-only "No findings"
// sections. Non-empty sections reference the shared overall chart and
// carry one subsection per affected host, in aggregate host order,
// each with the host's chart and its finding table rows.
func Sections(agg *models.Aggregate, charts *chart.Charts) []models.Section {
	sections := make([]models.Section, 0, len(agg.Buckets))

	for i, bucket := range agg.Buckets {
		section := models.Section{
			Severity: bucket.Severity,
			Heading:  fmt.Sprintf("%d.%d %s Vulnerabilities", vulnChapter, i+1, titleCase(bucket.Severity)),
		}

		if bucket.Total == 0 {
			section.NoFindings = true
			sections = append(sections, section)
			continue
		}

		section.OverallPNG = charts.Overall

		for _, g := range agg.Hosts {
			rows := hostRows(g, bucket.Severity)
			if len(rows) == 0 {
				continue
			}
			section.HostEntries = append(section.HostEntries, models.HostEntry{
				Heading:  fmt.Sprintf("%d.%d.%d %s", vulnChapter, i+1, len(section.HostEntries)+1, g.Display),
				Host:     g.Display,
				ChartPNG: charts.PerHost[g.Key],
				Rows:     rows,
			})
		}

		sections = append(sections, section)
	}

	return sections
}

// hostRows extracts the table rows for one host at one severity level,
// preserving the aggregate finding order. Impact is always blank; the
// analyst fills it in manually.
func hostRows(g models.HostGroup, severity models.Severity) []models.TableRow {
	var rows []models.TableRow
	for _, f := range g.Findings {
		if f.Severity != severity {
			continue
		}
		rows = append(rows, models.TableRow{
			Title:       f.Title,
			Severity:    f.Severity,
			Description: f.Description,
			Impact:      "",
			Remediation: f.Remediation,
		})
	}
	return rows
}

// titleCase renders a severity as a heading word, e.g. "Critical".
func titleCase(s models.Severity) string {
	label := s.Label()
	if len(label) <= 1 {
		return label
	}
	return label[:1] + strings.ToLower(label[1:])
}
