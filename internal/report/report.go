package report

import (
	"encoding/json" // For encoding the report file
	"fmt"
	"os" // For writing the report file

	"ember/internal/logger" // Custom logger package for debug info
)

// Entry records one declaration written during a run.
type Entry struct {
	Identifier string `json:"identifier"` // Declared variable name, prefix included
	Source     string `json:"source"`     // Input path, "-" for stdin, or "archive:member"
	Bytes      int64  `json:"bytes"`      // Payload bytes read; 0 for header declarations
	Encoding   string `json:"encoding"`   // "binary" or "ascii"
	Format     string `json:"format"`     // "source" or "header"
}

// Report holds every declaration of a run in output order.
type Report struct {
	Output       string  `json:"output"` // Output path, "-" for stdout
	Declarations []Entry `json:"declarations"`
}

// New returns an empty report for the given output path.
func New(output string) *Report {
	return &Report{Output: output, Declarations: []Entry{}}
}

// Add appends one declaration.
func (r *Report) Add(e Entry) {
	r.Declarations = append(r.Declarations, e)
}

// Save writes the report to path as indented JSON.
func (r *Report) Save(path string) error {
	// Marshal the Report struct into indented JSON bytes
	file, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	logger.Debug("[DEBUG] Writing report to %s:\n%s\n", path, string(file))

	// Write the JSON bytes to the file with mode 0644 (read/write owner, read others)
	if err := os.WriteFile(path, append(file, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write report file %s: %w", path, err)
	}
	return nil
}
