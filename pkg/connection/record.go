package connection

import "time"

// Record is one parsed connection-log line.
//
// Fields that failed to parse or that the source layout lacks are zero
// values; timestamps are nil when unparsable. A record always exists for
// every input line, malformed or not.
type Record struct {
	// ID is the remote session identifier.
	ID string `json:"id"`

	// DisplayName is the remote display name (incoming layout only).
	DisplayName string `json:"display_name,omitempty"`

	// Start and End are the session timestamps; nil when unparsable.
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`

	// Duration is the formatted elapsed time (DDd.HHh:MMm:SSs), or the
	// layout's sentinel when either timestamp is absent.
	Duration string `json:"duration"`

	// Elapsed is the underlying elapsed time; valid only when HasElapsed.
	Elapsed    time.Duration `json:"-"`
	HasElapsed bool          `json:"-"`

	// User is the locally logged-on user.
	User string `json:"user,omitempty"`

	// ConnectionType is the session mode (connections layout only).
	ConnectionType string `json:"connection_type,omitempty"`

	// ConnectionID is the per-connection GUID (connections layout only).
	ConnectionID string `json:"connection_id,omitempty"`

	// Source is the file the line came from; Line is its 1-based number.
	Source string `json:"source,omitempty"`
	Line   int    `json:"line,omitempty"`

	// Raw is the original line text.
	Raw string `json:"-"`
}
