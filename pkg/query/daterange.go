// Package query provides filtering, ranking and projection over parsed
// connection records.
package query

import (
	"time"

	"github.com/dfir-tools/tvlog/pkg/connection"
)

// DateRange keeps records whose start timestamp lies strictly inside the
// given bounds. Either bound may be nil to leave that side open; with
// both nil the input is returned untouched. Records without a parsed
// start timestamp never match a bounded query: a comparison against an
// absent value is false.
func DateRange(records []connection.Record, after, before *time.Time) []connection.Record {
	if after == nil && before == nil {
		return records
	}

	out := make([]connection.Record, 0, len(records))
	for _, rec := range records {
		if rec.Start == nil {
			continue
		}
		if after != nil && !rec.Start.After(*after) {
			continue
		}
		if before != nil && !rec.Start.Before(*before) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
