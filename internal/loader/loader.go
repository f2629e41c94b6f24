// Package loader parses a vulnerability-scanner CSV export into typed
// findings. It tolerates the column-name spellings different scanner
// versions use, ignores columns it does not know, and fails fast when
// a required column is missing or a severity value is unrecognized.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/raznan-ahamed/nessreport/internal/models"
)

// columnAliases maps each required logical column to the header
// spellings accepted for it, in match-preference order. Matching is
// case-insensitive. The table is fixed: unknown headers are ignored,
// never guessed at.
var columnAliases = map[string][]string{
	"host":        {"host", "hostname", "ip", "asset"},
	"title":       {"name", "title", "plugin name"},
	"severity":    {"risk", "severity"},
	"description": {"description", "synopsis"},
	"remediation": {"solution", "remediation", "fix"},
}

// requiredColumns fixes the order in which missing columns are
// reported, so the first error is always the same for the same input.
var requiredColumns = []string{"host", "title", "severity", "description", "remediation"}

// Result is the loader output: the findings plus bookkeeping about
// rows that were intentionally skipped.
type Result struct {
	Findings    []models.Finding
	SkippedRows int // rows with an empty severity cell (informational plugin chatter)
	TotalRows   int // data rows seen in the input
}

// Load reads and parses the CSV file at path.
func Load(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &models.ParseError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	res, err := Parse(f)
	if err != nil {
		if _, ok := err.(*models.MissingColumnError); ok {
			return nil, err
		}
		if _, ok := err.(*models.UnknownSeverityError); ok {
			return nil, err
		}
		return nil, &models.ParseError{Path: path, Err: err}
	}
	return res, nil
}

// Parse parses CSV data from r. The first record is the header; every
// later record is one finding. Rows with an empty severity cell are
// counted and skipped, any other unrecognized severity is fatal.
func Parse(r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // scanners pad trailing columns inconsistently

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input is empty")
	}
	if err != nil {
		return nil, err
	}

	idx, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		res.TotalRows++

		rawSeverity := field(record, idx["severity"])
		if strings.TrimSpace(rawSeverity) == "" {
			res.SkippedRows++
			continue
		}

		severity, ok := models.ParseSeverity(rawSeverity)
		if !ok {
			return nil, &models.UnknownSeverityError{Row: row, Value: rawSeverity}
		}

		res.Findings = append(res.Findings, models.Finding{
			Host:        strings.TrimSpace(field(record, idx["host"])),
			Title:       strings.TrimSpace(field(record, idx["title"])),
			Severity:    severity,
			Description: strings.TrimSpace(field(record, idx["description"])),
			Remediation: strings.TrimSpace(field(record, idx["remediation"])),
			Row:         row,
		})
	}

	return res, nil
}

// mapColumns resolves the header into column indexes using the alias
// table. Earlier alias spellings win when a header carries several
// matching columns.
func mapColumns(header []string) (map[string]int, error) {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))
	}

	idx := make(map[string]int, len(requiredColumns))
	for _, col := range requiredColumns {
		pos := -1
	aliases:
		for _, alias := range columnAliases[col] {
			for i, h := range normalized {
				if h == alias {
					pos = i
					break aliases
				}
			}
		}
		if pos < 0 {
			return nil, &models.MissingColumnError{Column: col}
		}
		idx[col] = pos
	}
	return idx, nil
}

// field returns record[i], tolerating short rows.
func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}
