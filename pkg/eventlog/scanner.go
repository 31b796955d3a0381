package eventlog

import (
	"context"
	"fmt"
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/dfir-tools/tvlog/pkg/scan"
)

// Scanner extracts events of the requested kinds from program log files.
type Scanner struct {
	kinds []Kind
}

// NewScanner creates a scanner for the given kinds; with none given it
// scans all of them.
func NewScanner(kinds ...Kind) (*Scanner, error) {
	if len(kinds) == 0 {
		kinds = AllKinds
	}
	for _, k := range kinds {
		if _, ok := markerSpecs[k]; !ok {
			return nil, fmt.Errorf("unknown event kind %q", k)
		}
	}
	return &Scanner{kinds: kinds}, nil
}

// ScanDirectory scans every program log file in dir matching the glob
// pattern. A missing or unreadable directory is a diagnostic, not an
// error: it logs a warning and returns an empty result, matching the
// non-fatal contract of directory scans.
func (s *Scanner) ScanDirectory(ctx context.Context, dir, pattern string) ([]Result, error) {
	files, err := Discover(dir, pattern)
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("skipping log directory")
		return []Result{}, nil
	}

	if len(files) == 0 {
		log.Debug().Str("dir", dir).Str("pattern", pattern).Msg("no log files matched")
	}

	return s.ScanFiles(ctx, files)
}

// ScanFiles scans the given files sequentially, in order. Event pairing
// never crosses a file boundary; each file's matched-line sequence is
// independent. A file that cannot be read fails the whole call.
func (s *Scanner) ScanFiles(ctx context.Context, files []string) ([]Result, error) {
	results := make([]Result, 0)

	for _, file := range files {
		source := scan.NewFileSource([]string{file})
		lines, err := source.ReadAll(ctx)
		source.Close()
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", file, err)
		}

		for _, kind := range s.kinds {
			results = append(results, scanFile(markerSpecs[kind], lines)...)
		}
	}

	return results, nil
}

// matched is one line that hit a kind's start or end pattern.
type matched struct {
	event   Event
	isStart bool
}

// scanFile runs one marker spec over one file's lines.
//
// Single-event kinds emit one result per match. Paired kinds collect the
// matched-line sequence and pair each start with the immediately next
// matched line if and only if that line is an end match; a start whose
// next match is anything else pairs with nothing.
func scanFile(spec markerSpec, lines []scan.Line) []Result {
	if spec.end == nil {
		return scanSingle(spec, lines)
	}

	// Collect the matched-line sequence for this kind, in file order.
	seq := make([]matched, 0)
	for _, line := range lines {
		switch {
		case spec.start.MatchString(line.Text):
			seq = append(seq, matched{makeEvent(spec.kind, spec.start, line), true})
		case spec.end.MatchString(line.Text):
			seq = append(seq, matched{makeEvent(spec.kind, spec.end, line), false})
		}
	}

	results := make([]Result, 0, len(seq)/2)
	for i := 0; i < len(seq); i++ {
		if !seq[i].isStart {
			// A lone end pairs with nothing.
			continue
		}
		if i+1 < len(seq) && !seq[i+1].isStart {
			end := seq[i+1].event
			results = append(results, Result{Kind: spec.kind, Start: seq[i].event, End: &end})
			i++ // the end is consumed
			continue
		}
		if spec.emitUnpaired {
			results = append(results, Result{Kind: spec.kind, Start: seq[i].event})
		}
	}
	return results
}

func scanSingle(spec markerSpec, lines []scan.Line) []Result {
	results := make([]Result, 0)
	for _, line := range lines {
		if !spec.start.MatchString(line.Text) {
			continue
		}
		results = append(results, Result{
			Kind:  spec.kind,
			Start: makeEvent(spec.kind, spec.start, line),
		})
	}
	return results
}

func makeEvent(kind Kind, pattern *regexp.Regexp, line scan.Line) Event {
	return Event{
		Kind:   kind,
		Time:   extractTimestamp(line.Text),
		Values: extractValues(pattern, line.Text),
		Source: line.Source,
		Line:   line.Num,
		Raw:    line.Text,
	}
}
