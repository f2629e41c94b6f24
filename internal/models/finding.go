package models

import "strings"

// NormalizeHost folds a host identifier into its grouping key.
// Scanners are inconsistent about hostname casing between plugins, so
// grouping is case-insensitive; the first-seen spelling is kept for
// display.
func NormalizeHost(host string) string {
	return strings.ToLower(strings.TrimSpace(host))
}

// Finding is the atomic unit of the report: one vulnerability record
// tied to one host, as exported by the scanner. Findings are values;
// nothing mutates them after the loader produces them.
//
// Impact is deliberately absent — the generated report leaves the
// Impact cell blank for manual fill by the analyst.
type Finding struct {
	Host        string   `json:"host"`        // first-seen spelling, used for display
	Title       string   `json:"title"`       // plugin / vulnerability name
	Severity    Severity `json:"severity"`    // normalized severity level
	Description string   `json:"description"` // scanner description text
	Remediation string   `json:"remediation"` // scanner solution text
	Row         int      `json:"row"`         // 1-based data row in the source file, for error reporting
}

// HostKey returns the grouping key for the finding's host. Host
// matching is case-insensitive: "HostA" and "hosta" are the same host.
func (f Finding) HostKey() string {
	return NormalizeHost(f.Host)
}

// HostGroup is one host plus the ordered findings affecting it.
// Derived entirely from the finding list and rebuilt every run.
type HostGroup struct {
	Key        string           `json:"key"`      // normalized host identifier
	Display    string           `json:"host"`     // first-seen spelling
	Findings   []Finding        `json:"findings"` // severity rank desc, then title asc
	BySeverity map[Severity]int `json:"by_severity"`
	Total      int              `json:"total"`
}

// SeverityBucket groups all findings of one severity level across all
// hosts. All five buckets always exist, empty ones included, so the
// report shows every severity section even when it has no findings.
type SeverityBucket struct {
	Severity Severity  `json:"severity"`
	Findings []Finding `json:"findings"` // host order, then per-host finding order
	Total    int       `json:"total"`
}

// SummaryStats carries the aggregate counts that drive chart
// generation: overall per-severity counts plus per-host breakdowns.
type SummaryStats struct {
	Overall  map[Severity]int            `json:"overall"`
	PerHost  map[string]map[Severity]int `json:"per_host"` // keyed by normalized host
	Total    int                         `json:"total"`
	HostKeys []string                    `json:"host_keys"` // aggregate host order
}

// Empty reports whether the dataset contains no findings at all.
func (s SummaryStats) Empty() bool {
	return s.Total == 0
}

// Aggregate is the full output of the aggregation pass: both
// orthogonal groupings plus the summary counts. Every finding appears
// in exactly one HostGroup and exactly one SeverityBucket.
type Aggregate struct {
	Hosts   []HostGroup      `json:"hosts"`   // desc total, then asc host key
	Buckets []SeverityBucket `json:"buckets"` // fixed rank order, empties included
	Stats   SummaryStats     `json:"stats"`
}

// Bucket returns the bucket for a severity level. The aggregator
// always materializes all five, so lookups never miss for valid input.
func (a *Aggregate) Bucket(s Severity) *SeverityBucket {
	for i := range a.Buckets {
		if a.Buckets[i].Severity == s {
			return &a.Buckets[i]
		}
	}
	return nil
}

// Host returns the host group for a normalized host key, or nil.
func (a *Aggregate) Host(key string) *HostGroup {
	for i := range a.Hosts {
		if a.Hosts[i].Key == key {
			return &a.Hosts[i]
		}
	}
	return nil
}
