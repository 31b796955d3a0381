package output

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dfir-tools/tvlog/pkg/connection"
	"github.com/dfir-tools/tvlog/pkg/eventlog"
)

const displayTimeLayout = "02-01-2006 15:04:05"

// TextFormatter formats reports as human-readable tables.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "tvlog %s: %d record(s)\n", report.Operation, report.Summary.RecordsReturned)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "=== tvlog %s ===\n\n", report.Operation)

	if report.Connections != nil {
		f.formatConnections(report.Connections, w)
	}
	if report.Events != nil {
		f.formatEvents(report.Events, w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d record(s)\n", report.Summary.RecordsReturned)

	if f.opts.Verbose {
		if report.Summary.LinesParsed > 0 {
			fmt.Fprintf(w, "Lines parsed: %d\n", report.Summary.LinesParsed)
		}
		if len(report.Metadata.Sources) > 0 {
			fmt.Fprintf(w, "Sources: %s\n", strings.Join(report.Metadata.Sources, ", "))
		}
	}

	return nil
}

func (f *TextFormatter) formatConnections(records []connection.Record, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records")
		fmt.Fprintln(w)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTART\tEND\tDURATION\tUSER\tTYPE\tCONNECTION")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			orDash(rec.ID),
			orDash(rec.DisplayName),
			formatTime(rec.Start),
			formatTime(rec.End),
			rec.Duration,
			orDash(rec.User),
			orDash(rec.ConnectionType),
			orDash(rec.ConnectionID))
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatEvents(results []eventlog.Result, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No events")
		fmt.Fprintln(w)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tTIME\tVALUE\tEND TIME\tEND VALUE\tSOURCE")
	for _, res := range results {
		endTime, endValue := eventlog.Sentinel, eventlog.Sentinel
		if res.End != nil {
			endTime = formatTime(res.End.Time)
			endValue = strings.Join(res.End.Values, " ")
		}

		source := res.Start.Source
		if f.opts.Verbose {
			source = fmt.Sprintf("%s:%d", res.Start.Source, res.Start.Line)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			res.Kind,
			formatTime(res.Start.Time),
			strings.Join(res.Start.Values, " "),
			endTime,
			endValue,
			source)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return eventlog.Sentinel
	}
	return t.Format(displayTimeLayout)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
