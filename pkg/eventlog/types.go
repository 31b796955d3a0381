// Package eventlog scans TeamViewer program log files for session,
// authentication, network and process events, pairing start/end markers
// within a single file.
package eventlog

import "time"

// Kind identifies one class of program-log event.
type Kind string

const (
	// KindSessions pairs participant-added with participant-removed markers.
	KindSessions Kind = "sessions"

	// KindLogons pairs account logon with account logout markers.
	KindLogons Kind = "logons"

	// KindIPs matches standalone punch-received markers (remote IP and port).
	KindIPs Kind = "ips"

	// KindPIDs matches standalone desktop-process start markers.
	KindPIDs Kind = "pids"

	// KindKeyboards matches standalone keyboard-layout change markers.
	KindKeyboards Kind = "keyboards"
)

// AllKinds lists every event kind in scan order.
var AllKinds = []Kind{KindSessions, KindLogons, KindIPs, KindPIDs, KindKeyboards}

// Sentinel marks a value that could not be extracted or a timestamp
// that could not be parsed.
const Sentinel = "--"

// Event is a single pattern-matched program-log line.
type Event struct {
	// Kind is the event class the line matched.
	Kind Kind `json:"kind"`

	// Time is the line's leading timestamp; nil when unparsable.
	Time *time.Time `json:"time,omitempty"`

	// Values holds the extracted fields in marker order (session ID,
	// account, IP then port, PID, layout ID). Failed extractions hold
	// the sentinel.
	Values []string `json:"values"`

	// Source is the file the line came from; Line is its 1-based number.
	Source string `json:"source"`
	Line   int    `json:"line"`

	// Raw is the original line text.
	Raw string `json:"-"`
}

// Result is one derived output row: a paired start/end interval, or a
// standalone event for the single-event kinds (End is nil then, and for
// logon starts whose logout never followed).
type Result struct {
	Kind  Kind   `json:"kind"`
	Start Event  `json:"start"`
	End   *Event `json:"end,omitempty"`
}
