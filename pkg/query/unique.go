package query

import (
	"fmt"
	"sort"

	"github.com/dfir-tools/tvlog/pkg/connection"
)

// Field designates which record field a unique projection runs over.
type Field string

const (
	FieldID          Field = "id"
	FieldDisplayName Field = "name"
	FieldUser        Field = "user"
)

// ParseField maps a CLI selector to a Field.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldID, FieldDisplayName, FieldUser:
		return Field(s), nil
	default:
		return "", fmt.Errorf("unknown field %q (use id, name or user)", s)
	}
}

// value extracts the projected field from a record.
func (f Field) value(rec connection.Record) string {
	switch f {
	case FieldDisplayName:
		return rec.DisplayName
	case FieldUser:
		return rec.User
	default:
		return rec.ID
	}
}

// Unique returns one representative record per distinct value of the
// designated field, ordered by the field's natural sort order. The
// representative is the first record in sorted order (stable sort, then
// dedupe). Records where the field is empty are dropped: an absent value
// is not a value.
func Unique(records []connection.Record, field Field) []connection.Record {
	candidates := make([]connection.Record, 0, len(records))
	for _, rec := range records {
		if field.value(rec) != "" {
			candidates = append(candidates, rec)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return field.value(candidates[i]) < field.value(candidates[j])
	})

	out := make([]connection.Record, 0, len(candidates))
	seen := ""
	for i, rec := range candidates {
		v := field.value(rec)
		if i == 0 || v != seen {
			out = append(out, rec)
			seen = v
		}
	}
	return out
}
