package models

// Section is one top-level severity section of the report document,
// produced by the composer and consumed by the assembler. Sections
// arrive in fixed severity rank order and carry everything the
// assembler needs; the assembler adds no ordering or grouping of its
// own.
type Section struct {
	Severity    Severity
	Heading     string      // e.g. "3.1 Critical Vulnerabilities"
	NoFindings  bool        // heading-only section, no table, no chart
	OverallPNG  []byte      // shared overall chart, nil for empty sections
	HostEntries []HostEntry // hosts with at least one finding of this severity
}

// HostEntry is one host subsection inside a severity section.
type HostEntry struct {
	Heading  string // e.g. "3.1.1 web01.example.com"
	Host     string // display spelling
	ChartPNG []byte // per-host severity chart, nil when charts were skipped
	Rows     []TableRow
}

// TableRow is one finding rendered as a detail table. Impact is always
// blank in generated output; the column exists for manual fill.
type TableRow struct {
	Title       string
	Severity    Severity
	Description string
	Impact      string // always ""
	Remediation string
}
