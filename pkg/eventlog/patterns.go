package eventlog

import "regexp"

// markerSpec describes how one event kind is recognized and extracted.
// Capture groups hold the values to extract. end is nil for the
// single-event kinds, which emit one result per start match.
type markerSpec struct {
	kind  Kind
	start *regexp.Regexp
	end   *regexp.Regexp

	// emitUnpaired emits a start whose immediately next matched line is
	// not an end, with a nil End half. Sessions stay silent instead.
	emitUnpaired bool
}

// Markers as TeamViewer writes them into its rotated Logfile pair.
var (
	sessionStartPattern = regexp.MustCompile(`CPersistentParticipantManager::AddParticipant: \[(\d+),`)
	sessionEndPattern   = regexp.MustCompile(`CPersistentParticipantManager::RemoveParticipant: \[(\d+),`)

	logonStartPattern = regexp.MustCompile(`CLoginHandler::LoginSuccess: account (\S+)`)
	logonEndPattern   = regexp.MustCompile(`CLoginHandler::Logout: account (\S+)`)

	ipPattern       = regexp.MustCompile(`punch received a=(\d{1,3}(?:\.\d{1,3}){3}):(\d+)`)
	pidPattern      = regexp.MustCompile(`CDesktopProcess::Start: PID (\d+)`)
	keyboardPattern = regexp.MustCompile(`Changing keyboard layout to (\S+)`)
)

var markerSpecs = map[Kind]markerSpec{
	KindSessions: {
		kind:  KindSessions,
		start: sessionStartPattern,
		end:   sessionEndPattern,
	},
	KindLogons: {
		kind:         KindLogons,
		start:        logonStartPattern,
		end:          logonEndPattern,
		emitUnpaired: true,
	},
	KindIPs: {
		kind:  KindIPs,
		start: ipPattern,
	},
	KindPIDs: {
		kind:  KindPIDs,
		start: pidPattern,
	},
	KindKeyboards: {
		kind:  KindKeyboards,
		start: keyboardPattern,
	},
}

// extractValues pulls the capture groups out of a matched line. Groups
// that did not capture degrade to the sentinel; a line with no groups at
// all yields a single sentinel value.
func extractValues(pattern *regexp.Regexp, line string) []string {
	matches := pattern.FindStringSubmatch(line)
	if len(matches) < 2 {
		return []string{Sentinel}
	}

	values := make([]string, 0, len(matches)-1)
	for _, m := range matches[1:] {
		if m == "" {
			m = Sentinel
		}
		values = append(values, m)
	}
	return values
}
