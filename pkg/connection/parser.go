package connection

import (
	"context"
	"strings"
	"time"

	"github.com/dfir-tools/tvlog/pkg/scan"
)

// DefaultTimestampLayout is the fixed day-month-year format TeamViewer
// writes in connection logs, e.g. "25-12-2020 14:30:00".
const DefaultTimestampLayout = "02-01-2006 15:04:05"

// Parser turns raw connection-log lines into Records for one layout.
type Parser struct {
	layout   Layout
	tsLayout string
}

// Option configures the Parser.
type Option func(*Parser)

// WithTimestampLayout overrides the timestamp layout.
func WithTimestampLayout(layout string) Option {
	return func(p *Parser) {
		if layout != "" {
			p.tsLayout = layout
		}
	}
}

// NewParser creates a parser for the given layout.
func NewParser(layout Layout, opts ...Option) *Parser {
	p := &Parser{
		layout:   layout,
		tsLayout: DefaultTimestampLayout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Layout returns the layout the parser was built with.
func (p *Parser) Layout() Layout {
	return p.layout
}

// ParseLine parses one raw line into a Record. It never fails: fields
// that cannot be parsed are left absent and the duration degrades to the
// layout's sentinel.
func (p *Parser) ParseLine(raw string) Record {
	tokens := p.tokenize(raw)

	rec := Record{
		ID:             token(tokens, p.layout.IDPos),
		DisplayName:    token(tokens, p.layout.DisplayNamePos),
		User:           token(tokens, p.layout.UserPos),
		ConnectionType: token(tokens, p.layout.TypePos),
		ConnectionID:   token(tokens, p.layout.ConnIDPos),
		Raw:            raw,
	}

	rec.Start = p.parseTimestamp(tokens, p.layout.StartPos)
	rec.End = p.parseTimestamp(tokens, p.layout.EndPos)

	if rec.Start != nil && rec.End != nil {
		rec.Elapsed = rec.End.Sub(*rec.Start)
		rec.HasElapsed = true
		rec.Duration = FormatElapsed(rec.Elapsed)
	} else {
		rec.Duration = p.layout.DurationSentinel
	}

	return rec
}

// ParseLines parses a sequence of lines 1:1 and order-preserving.
// Empty or malformed lines still produce a record.
func (p *Parser) ParseLines(lines []scan.Line) []Record {
	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		rec := p.ParseLine(line.Text)
		rec.Source = line.Source
		rec.Line = line.Num
		records = append(records, rec)
	}
	return records
}

// ParseFile reads a single connection log and parses every line.
// Unlike directory scans, a missing or unreadable file is a fatal error.
func (p *Parser) ParseFile(ctx context.Context, path string) ([]Record, error) {
	source := scan.NewFileSource([]string{path})
	defer source.Close()

	lines, err := source.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	return p.ParseLines(lines), nil
}

// tokenize splits a line on runs of whitespace. For layouts with a
// compound display name, spaces inside the name would fragment it into
// surplus tokens; those are folded back into position 1 so the fixed
// positions line up again.
func (p *Parser) tokenize(raw string) []string {
	tokens := strings.Fields(raw)
	if !p.layout.HasDisplayName {
		return tokens
	}

	surplus := len(tokens) - p.layout.TokenCount
	if surplus <= 0 {
		return tokens
	}

	namePos := p.layout.DisplayNamePos
	if namePos >= len(tokens) {
		return tokens
	}

	nameEnd := namePos + 1 + surplus
	name := strings.Join(tokens[namePos:nameEnd], " ")

	merged := make([]string, 0, p.layout.TokenCount)
	merged = append(merged, tokens[:namePos]...)
	merged = append(merged, name)
	merged = append(merged, tokens[nameEnd:]...)
	return merged
}

// parseTimestamp joins the date and time tokens at pos and pos+1 and
// parses them with the fixed layout. Returns nil on any failure.
func (p *Parser) parseTimestamp(tokens []string, pos int) *time.Time {
	if pos < 0 || pos+1 >= len(tokens) {
		return nil
	}

	t, err := time.Parse(p.tsLayout, tokens[pos]+" "+tokens[pos+1])
	if err != nil {
		return nil
	}
	return &t
}

// token returns the token at pos, or "" when pos is absent or out of range.
func token(tokens []string, pos int) string {
	if pos < 0 || pos >= len(tokens) {
		return ""
	}
	return tokens[pos]
}
