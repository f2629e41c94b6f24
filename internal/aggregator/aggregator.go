// Package aggregator groups loaded findings by host and by severity
// and computes the summary counts that drive chart generation. The
// pass is deterministic: identical input always yields identical
// grouping, ordering, and counts.
package aggregator

import (
	"sort"

	"github.com/raznan-ahamed/nessreport/internal/models"
)

// Aggregate builds both orthogonal groupings and the summary stats in
// a single pass over the findings.
//
// Ordering policy:
//   - hosts: descending total finding count, ascending host key as
//     tie-break;
//   - findings within a host: severity rank descending, then title
//     ascending;
//   - severity buckets: fixed rank order, always all five, empties
//     included;
//   - findings within a bucket: host order, then the per-host order.
func Aggregate(findings []models.Finding) *models.Aggregate {
	stats := models.SummaryStats{
		Overall: make(map[models.Severity]int),
		PerHost: make(map[string]map[models.Severity]int),
		Total:   len(findings),
	}
	for _, s := range models.Severities() {
		stats.Overall[s] = 0
	}

	// Group by normalized host, keeping first-seen spelling for display.
	groups := make(map[string]*models.HostGroup)
	var order []string
	for _, f := range findings {
		key := f.HostKey()
		g, ok := groups[key]
		if !ok {
			g = &models.HostGroup{
				Key:        key,
				Display:    f.Host,
				BySeverity: make(map[models.Severity]int),
			}
			groups[key] = g
			order = append(order, key)
			stats.PerHost[key] = make(map[models.Severity]int)
		}
		g.Findings = append(g.Findings, f)
		g.BySeverity[f.Severity]++
		g.Total++

		stats.Overall[f.Severity]++
		stats.PerHost[key][f.Severity]++
	}

	// Host order: desc total, asc key.
	sort.Slice(order, func(i, j int) bool {
		a, b := groups[order[i]], groups[order[j]]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.Key < b.Key
	})
	stats.HostKeys = order

	hosts := make([]models.HostGroup, 0, len(order))
	for _, key := range order {
		g := groups[key]
		sortFindings(g.Findings)
		hosts = append(hosts, *g)
	}

	// Severity buckets in fixed rank order, filled in host order so the
	// bucket-internal ordering is deterministic too.
	buckets := make([]models.SeverityBucket, 0, len(models.Severities()))
	for _, s := range models.Severities() {
		bucket := models.SeverityBucket{Severity: s}
		for _, g := range hosts {
			for _, f := range g.Findings {
				if f.Severity == s {
					bucket.Findings = append(bucket.Findings, f)
				}
			}
		}
		bucket.Total = len(bucket.Findings)
		buckets = append(buckets, bucket)
	}

	return &models.Aggregate{
		Hosts:   hosts,
		Buckets: buckets,
		Stats:   stats,
	}
}

// sortFindings orders findings by severity rank descending, then title
// ascending. Row number breaks exact title ties so duplicate plugin
// names keep their input order.
func sortFindings(findings []models.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Severity.Rank() != findings[j].Severity.Rank() {
			return findings[i].Severity.Rank() > findings[j].Severity.Rank()
		}
		if findings[i].Title != findings[j].Title {
			return findings[i].Title < findings[j].Title
		}
		return findings[i].Row < findings[j].Row
	})
}
