package models

import "strings"

// Severity represents the normalized severity level of a finding.
// Values are lowercase strings so they read naturally in JSON output
// and log lines; display forms come from Label().
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// severityInfo is one row of the frozen severity lookup table. Rank
// drives ordering everywhere (sections, charts, sorting), the colors
// drive section headings, table banners, and chart bars. This table is
// the single source of truth; nothing else may hardcode a severity
// order or color.
type severityInfo struct {
	Rank  int    // critical=5 ... info=1
	Label string // display form
	Hex   string // RRGGBB, no leading #
}

var severityTable = map[Severity]severityInfo{
	SeverityCritical: {Rank: 5, Label: "CRITICAL", Hex: "FF0000"},
	SeverityHigh:     {Rank: 4, Label: "HIGH", Hex: "FF8800"},
	SeverityMedium:   {Rank: 3, Label: "MEDIUM", Hex: "FFA500"},
	SeverityLow:      {Rank: 2, Label: "LOW", Hex: "FFFF00"},
	SeverityInfo:     {Rank: 1, Label: "INFO", Hex: "D3D3D3"},
}

// severityAliases maps scanner-specific severity spellings onto the
// normalized enum. Nessus exports "None" for informational plugins.
var severityAliases = map[string]Severity{
	"none":          SeverityInfo,
	"informational": SeverityInfo,
	"moderate":      SeverityMedium,
}

// Severities lists all severity levels in fixed rank order, highest
// first. Report sections and chart bars always follow this order,
// including levels with zero findings.
func Severities() []Severity {
	return []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow, SeverityInfo}
}

// ParseSeverity normalizes a raw scanner severity string. The match is
// case-insensitive and tolerates the alias spellings above. ok is
// false when the value maps to no known level.
func ParseSeverity(raw string) (Severity, bool) {
	s := Severity(strings.ToLower(strings.TrimSpace(raw)))
	if s.IsValid() {
		return s, true
	}
	if alias, found := severityAliases[string(s)]; found {
		return alias, true
	}
	return "", false
}

// IsValid reports whether s is a recognized severity level.
func (s Severity) IsValid() bool {
	_, ok := severityTable[s]
	return ok
}

// Rank returns the sort rank: critical=5, high=4, medium=3, low=2,
// info=1, unknown=0. Higher ranks sort first.
func (s Severity) Rank() int {
	return severityTable[s].Rank
}

// Label returns the upper-case display form, e.g. "CRITICAL".
func (s Severity) Label() string {
	if info, ok := severityTable[s]; ok {
		return info.Label
	}
	return strings.ToUpper(string(s))
}

// Hex returns the display color as an RRGGBB hex string.
func (s Severity) Hex() string {
	if info, ok := severityTable[s]; ok {
		return info.Hex
	}
	return "808080"
}

// RGB returns the display color as 0-255 components for PDF rendering.
func (s Severity) RGB() (r, g, b int) {
	hex := s.Hex()
	return hexByte(hex[0:2]), hexByte(hex[2:4]), hexByte(hex[4:6])
}

func (s Severity) String() string {
	return string(s)
}

func hexByte(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n *= 16
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			n += int(c - '0')
		case c >= 'a' && c <= 'f':
			n += int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			n += int(c-'A') + 10
		}
	}
	return n
}
