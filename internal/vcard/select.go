package vcard

// DecisionFunc decides the fate of one record during interactive selection.
// It receives the 1-based record index and the record's display name and
// returns true to delete the record. The frontend resolves ambiguous user
// input to a boolean before the core ever sees it.
type DecisionFunc func(index int, displayName string) bool

// Select iterates records in original order, invoking decide exactly once
// per record, strictly sequentially. It returns the kept and deleted
// subsets, both preserving original relative order and all field content.
// No transform is applied; this is a pure filter.
func Select(records []Record, decide DecisionFunc) (kept, deleted []Record) {
	for i, r := range records {
		if decide(i+1, DisplayName(r)) {
			deleted = append(deleted, r)
		} else {
			kept = append(kept, r)
		}
	}
	return kept, deleted
}
