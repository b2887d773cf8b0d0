package vcard

import (
	"sort"
	"strings"
)

// SortByName returns the records ordered by their display name, compared
// case-insensitively with a locale-independent ordinal comparison. The sort
// is stable: ties keep their original input order. The input slice is not
// modified.
func SortByName(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(DisplayName(out[i])) < strings.ToLower(DisplayName(out[j]))
	})
	return out
}
