// Package connection parses TeamViewer connection logs into typed session records.
package connection

// Layout describes one connection-log column layout.
//
// Lines are whitespace-separated tokens. Timestamps span two tokens
// (date then time), so positions index tokens, not logical fields.
// A position of -1 means the layout does not carry that field.
type Layout struct {
	// Name identifies the layout (incoming, connections).
	Name string

	// TokenCount is the expected number of tokens per line after
	// compound-field normalization.
	TokenCount int

	// HasDisplayName is true when position 1 holds a display name that
	// may contain spaces.
	HasDisplayName bool

	// DurationSentinel is emitted as the duration when either timestamp
	// failed to parse. The two layouts historically use different
	// sentinels; the asymmetry is kept as part of each layout's output
	// contract.
	DurationSentinel string

	IDPos          int
	DisplayNamePos int
	StartPos       int
	EndPos         int
	UserPos        int
	TypePos        int
	ConnIDPos      int
}

// LayoutIncoming is the Connections_incoming.txt layout: 7 tokens with a
// display name at position 1.
var LayoutIncoming = Layout{
	Name:             "incoming",
	TokenCount:       7,
	HasDisplayName:   true,
	DurationSentinel: "Invalid Duration",
	IDPos:            0,
	DisplayNamePos:   1,
	StartPos:         2,
	EndPos:           4,
	UserPos:          6,
	TypePos:          -1,
	ConnIDPos:        -1,
}

// LayoutConnections is the Connections.txt layout: 8 tokens, no display
// name, with connection type and connection ID trailing.
var LayoutConnections = Layout{
	Name:             "connections",
	TokenCount:       8,
	HasDisplayName:   false,
	DurationSentinel: "--",
	IDPos:            0,
	DisplayNamePos:   -1,
	StartPos:         1,
	EndPos:           3,
	UserPos:          5,
	TypePos:          6,
	ConnIDPos:        7,
}

// WithSentinel returns a copy of the layout with the duration sentinel
// replaced. Used when configuration overrides the historical defaults.
func (l Layout) WithSentinel(s string) Layout {
	if s == "" {
		return l
	}
	l.DurationSentinel = s
	return l
}
