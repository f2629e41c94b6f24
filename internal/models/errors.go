package models

import "fmt"

// The loader and assembler fail with typed errors so the CLI can map
// them to exit codes: input errors exit 2, runtime errors exit 3.

// ParseError wraps a failure to read or tokenize the input file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingColumnError indicates a required column is absent from the
// input header. No findings can be trusted without it.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("input is missing required column %q", e.Column)
}

// UnknownSeverityError indicates a severity value that maps to no
// known level. Row is the 1-based data row of the offending record.
type UnknownSeverityError struct {
	Row   int
	Value string
}

func (e *UnknownSeverityError) Error() string {
	return fmt.Sprintf("row %d: unknown severity %q", e.Row, e.Value)
}

// TemplateContractError indicates the supplied template document does
// not expose the minimum page structure the assembler relies on
// (cover page plus reserved TOC page).
type TemplateContractError struct {
	Path   string
	Reason string
}

func (e *TemplateContractError) Error() string {
	return fmt.Sprintf("template %s violates the template contract: %s", e.Path, e.Reason)
}

// EmptyDatasetWarning is the non-fatal condition raised by the chart
// renderer when there are no findings at all. The report is still
// produced; charts are omitted.
type EmptyDatasetWarning struct{}

func (e *EmptyDatasetWarning) Error() string {
	return "no findings in dataset: chart generation skipped"
}
