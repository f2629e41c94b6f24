package tui

import (
	"sort"
	"strings"

	"github.com/raznan-ahamed/nessreport/internal/models"
)

// filterState holds current active filters.
type filterState struct {
	Host       string
	Severity   models.Severity
	SearchText string
}

// sortField enumerates columns that can be sorted.
type sortField int

const (
	sortBySeverity sortField = iota
	sortByHost
	sortByTitle
)

// sortFieldCount is the total number of sortable columns.
const sortFieldCount = 3

// applyFilters returns findings matching all active filters.
func applyFilters(findings []models.Finding, f filterState) []models.Finding {
	result := make([]models.Finding, 0, len(findings))
	searchLower := strings.ToLower(f.SearchText)

	for _, fd := range findings {
		if f.Host != "" && fd.HostKey() != f.Host {
			continue
		}
		if f.Severity != "" && fd.Severity != f.Severity {
			continue
		}
		if searchLower != "" && !matchesSearch(fd, searchLower) {
			continue
		}
		result = append(result, fd)
	}
	return result
}

func matchesSearch(f models.Finding, searchLower string) bool {
	return strings.Contains(strings.ToLower(f.Host), searchLower) ||
		strings.Contains(strings.ToLower(f.Title), searchLower) ||
		strings.Contains(strings.ToLower(string(f.Severity)), searchLower) ||
		strings.Contains(strings.ToLower(f.Description), searchLower) ||
		strings.Contains(strings.ToLower(f.Remediation), searchLower)
}

// sortFindings sorts a slice of findings in place by the given field.
// Severity sorting puts critical first; ties fall back to title.
func sortFindings(findings []models.Finding, field sortField) {
	sort.SliceStable(findings, func(i, j int) bool {
		switch field {
		case sortBySeverity:
			if findings[i].Severity.Rank() != findings[j].Severity.Rank() {
				return findings[i].Severity.Rank() > findings[j].Severity.Rank()
			}
			return findings[i].Title < findings[j].Title
		case sortByHost:
			return findings[i].HostKey() < findings[j].HostKey()
		case sortByTitle:
			return findings[i].Title < findings[j].Title
		default:
			return false
		}
	})
}

// uniqueHosts returns deduplicated, sorted host keys from findings.
func uniqueHosts(findings []models.Finding) []string {
	seen := make(map[string]bool)
	var hosts []string
	for _, f := range findings {
		key := f.HostKey()
		if !seen[key] {
			seen[key] = true
			hosts = append(hosts, key)
		}
	}
	sort.Strings(hosts)
	return hosts
}

// nextSeverityFilter cycles through off -> critical -> ... -> info -> off.
func nextSeverityFilter(current models.Severity) models.Severity {
	order := models.Severities()
	if current == "" {
		return order[0]
	}
	for i, s := range order {
		if s == current {
			if i == len(order)-1 {
				return ""
			}
			return order[i+1]
		}
	}
	return ""
}

// sortFieldName returns a human-readable name for the sort field.
func sortFieldName(f sortField) string {
	switch f {
	case sortBySeverity:
		return "severity"
	case sortByHost:
		return "host"
	case sortByTitle:
		return "title"
	default:
		return "unknown"
	}
}
