package query

import (
	"sort"

	"github.com/dfir-tools/tvlog/pkg/connection"
)

// Order selects the ranking direction.
type Order int

const (
	// Shortest ranks ascending by elapsed time.
	Shortest Order = iota
	// Longest ranks descending by elapsed time.
	Longest
)

// DefaultTopN is the number of records a ranking returns.
const DefaultTopN = 10

// RankByDuration sorts records by their elapsed session time and returns
// the first n (DefaultTopN when n <= 0). Records without a valid
// duration are excluded: a sentinel string has no place on a time axis.
//
// The sort key is the underlying elapsed time, not the formatted
// duration string; sorting the strings would order "10d..." before
// "2d...". The sort is stable, so ties keep input order.
func RankByDuration(records []connection.Record, order Order, n int) []connection.Record {
	if n <= 0 {
		n = DefaultTopN
	}

	ranked := make([]connection.Record, 0, len(records))
	for _, rec := range records {
		if rec.HasElapsed {
			ranked = append(ranked, rec)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if order == Longest {
			return ranked[i].Elapsed > ranked[j].Elapsed
		}
		return ranked[i].Elapsed < ranked[j].Elapsed
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
