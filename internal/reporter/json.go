package reporter

import (
	"encoding/json"
	"io"
)

// JSONReporter generates the machine-readable run summary.
type JSONReporter struct {
	writer io.Writer
	pretty bool
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(writer io.Writer, pretty bool) *JSONReporter {
	return &JSONReporter{writer: writer, pretty: pretty}
}

// Generate writes the run summary as JSON.
func (r *JSONReporter) Generate(s *Summary) error {
	var data []byte
	var err error

	if r.pretty {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = json.Marshal(s)
	}
	if err != nil {
		return err
	}

	if _, err := r.writer.Write(data); err != nil {
		return err
	}

	// Trailing newline for terminal output.
	_, err = r.writer.Write([]byte("\n"))
	return err
}
