package output

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dfir-tools/tvlog/pkg/connection"
	"github.com/dfir-tools/tvlog/pkg/eventlog"
)

func sampleRecords() []connection.Record {
	start := time.Date(2020, 12, 25, 14, 30, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)
	return []connection.Record{
		{
			ID:       "123456789",
			Start:    &start,
			End:      &end,
			Duration: "00d.00h:30m:00s",
			User:     "alice",
			Source:   "Connections.txt",
			Line:     1,
		},
		{
			ID:       "987654321",
			Duration: "--",
			Source:   "Connections.txt",
			Line:     2,
		},
	}
}

func TestTextFormatter_Connections(t *testing.T) {
	report := NewConnectionReport("outgoing", 2, sampleRecords())

	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{})
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"=== tvlog outgoing ===",
		"123456789",
		"25-12-2020 14:30:00",
		"00d.00h:30m:00s",
		"alice",
		"Summary: 2 record(s)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTextFormatter_Quiet(t *testing.T) {
	report := NewConnectionReport("outgoing", 2, sampleRecords())

	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{Quiet: true})
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Errorf("quiet output has %d lines, want 1:\n%s", got, buf.String())
	}
}

func TestTextFormatter_Verbose(t *testing.T) {
	report := NewConnectionReport("outgoing", 2, sampleRecords())

	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{Verbose: true})
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Lines parsed: 2") {
		t.Errorf("verbose output missing line count:\n%s", out)
	}
	if !strings.Contains(out, "Connections.txt") {
		t.Errorf("verbose output missing sources:\n%s", out)
	}
}

func TestTextFormatter_Events(t *testing.T) {
	ts := time.Date(2020, 12, 25, 14, 29, 59, 0, time.UTC)
	results := []eventlog.Result{
		{
			Kind: eventlog.KindIPs,
			Start: eventlog.Event{
				Kind:   eventlog.KindIPs,
				Time:   &ts,
				Values: []string{"203.0.113.5", "5938"},
				Source: "Logfile.log",
				Line:   12,
			},
		},
	}
	report := NewEventReport("events (ips)", results)

	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{})
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"ips", "203.0.113.5 5938", "25-12-2020 14:29:59", "Logfile.log"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTextFormatter_EmptyReport(t *testing.T) {
	report := NewConnectionReport("incoming", 0, []connection.Record{})

	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{})
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No records") {
		t.Errorf("empty report output:\n%s", buf.String())
	}
	if !report.Empty() {
		t.Error("Empty() = false for empty report")
	}
}
