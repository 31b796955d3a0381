package eventlog

import (
	"regexp"
	"time"
)

// Program log lines lead with "YYYY/MM/DD HH:MM:SS.mmm"; older builds
// omit the milliseconds.
var leadingTimestampPattern = regexp.MustCompile(`^(\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2})(?:\.\d{3})?\s`)

const logfileTimestampLayout = "2006/01/02 15:04:05"

// extractTimestamp parses the leading date+time token pair of a log
// line. Returns nil when the head does not carry a parsable timestamp;
// the event is still emitted with a nil time.
func extractTimestamp(line string) *time.Time {
	matches := leadingTimestampPattern.FindStringSubmatch(line)
	if len(matches) < 2 {
		return nil
	}

	t, err := time.Parse(logfileTimestampLayout, matches[1])
	if err != nil {
		return nil
	}
	return &t
}
