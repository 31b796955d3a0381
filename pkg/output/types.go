// Package output provides formatting of query results for display.
package output

import (
	"time"

	"github.com/dfir-tools/tvlog/pkg/connection"
	"github.com/dfir-tools/tvlog/pkg/eventlog"
)

// Report is the complete output of one operation. Exactly one of
// Connections or Events is populated, depending on the operation.
type Report struct {
	// Operation describes what produced the report (e.g. "incoming").
	Operation string `json:"operation"`

	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Connections holds connection-log query results.
	Connections []connection.Record `json:"connections,omitempty"`

	// Events holds program-log scan results.
	Events []eventlog.Result `json:"events,omitempty"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// LinesParsed is the number of input lines examined.
	LinesParsed int `json:"lines_parsed"`

	// RecordsReturned is the number of records in the report.
	RecordsReturned int `json:"records_returned"`
}

// Metadata provides context about the run.
type Metadata struct {
	// Sources lists the files that contributed records.
	Sources []string `json:"sources,omitempty"`

	// GeneratedAt is when the report was produced.
	GeneratedAt time.Time `json:"generated_at"`
}

// NewConnectionReport builds a report from connection-log query results.
func NewConnectionReport(operation string, linesParsed int, records []connection.Record) *Report {
	return &Report{
		Operation:   operation,
		Connections: records,
		Summary: Summary{
			LinesParsed:     linesParsed,
			RecordsReturned: len(records),
		},
		Metadata: Metadata{
			Sources:     connectionSources(records),
			GeneratedAt: time.Now(),
		},
	}
}

// NewEventReport builds a report from program-log scan results.
func NewEventReport(operation string, results []eventlog.Result) *Report {
	return &Report{
		Operation: operation,
		Events:    results,
		Summary: Summary{
			RecordsReturned: len(results),
		},
		Metadata: Metadata{
			Sources:     eventSources(results),
			GeneratedAt: time.Now(),
		},
	}
}

// Empty returns true when the report carries no records.
func (r *Report) Empty() bool {
	return r.Summary.RecordsReturned == 0
}

func connectionSources(records []connection.Record) []string {
	seen := make(map[string]bool)
	var sources []string
	for _, rec := range records {
		if rec.Source != "" && !seen[rec.Source] {
			seen[rec.Source] = true
			sources = append(sources, rec.Source)
		}
	}
	return sources
}

func eventSources(results []eventlog.Result) []string {
	seen := make(map[string]bool)
	var sources []string
	for _, res := range results {
		if res.Start.Source != "" && !seen[res.Start.Source] {
			seen[res.Start.Source] = true
			sources = append(sources, res.Start.Source)
		}
	}
	return sources
}
