package vcard

import "testing"

func rec(lines ...string) Record {
	var r Record
	for _, l := range lines {
		r.Fields = append(r.Fields, ParseField(l))
	}
	return r
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		r    Record
		want string
	}{
		{
			name: "fn wins",
			r:    rec("FN:John Smith", "N:Doe;Jane;;;"),
			want: "John Smith",
		},
		{
			name: "blank fn falls through to n",
			r:    rec("FN: ", "N:Smith;John;;;"),
			want: "John Smith",
		},
		{
			name: "n with additional name",
			r:    rec("N:Smith;John;Quincy;;"),
			want: "John Quincy Smith",
		},
		{
			name: "family only",
			r:    rec("N:Smith;;;;"),
			want: "Smith",
		},
		{
			name: "given only",
			r:    rec("N:;John;;;"),
			want: "John",
		},
		{
			name: "short n value",
			r:    rec("N:Smith"),
			want: "Smith",
		},
		{
			name: "no name fields",
			r:    rec("TEL:123"),
			want: "",
		},
		{
			name: "empty n",
			r:    rec("N:;;;;"),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.r); got != tt.want {
				t.Errorf("DisplayName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSortByName(t *testing.T) {
	records := []Record{
		rec("FN:charlie", "TEL:1"),
		rec("FN:Alice"),
		rec("FN:Bob"),
		rec("FN:alice", "TEL:2"),
	}

	sorted := SortByName(records)

	got := make([]string, len(sorted))
	for i, r := range sorted {
		got[i] = DisplayName(r)
	}
	want := []string{"Alice", "alice", "Bob", "charlie"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %q, want %q", got, want)
		}
	}

	// Stability: the two alice records keep input order.
	if sorted[0].Field("TEL") != nil {
		t.Error("sort is not stable for equal keys")
	}

	// Input must not be reordered.
	if DisplayName(records[0]) != "charlie" {
		t.Error("SortByName modified its input slice")
	}

	// Sorting twice gives the same order.
	again := SortByName(sorted)
	for i := range again {
		if DisplayName(again[i]) != DisplayName(sorted[i]) {
			t.Error("SortByName is not idempotent")
		}
	}
}

func TestSelect(t *testing.T) {
	records := []Record{
		rec("FN:Alice"),
		rec("FN:Bob"),
		rec("FN:Carol"),
	}

	var seen []int
	kept, deleted := Select(records, func(index int, name string) bool {
		seen = append(seen, index)
		return name == "Bob"
	})

	if len(seen) != 3 || seen[0] != 1 || seen[2] != 3 {
		t.Errorf("decision indices = %v, want [1 2 3]", seen)
	}
	if len(kept) != 2 || len(deleted) != 1 {
		t.Fatalf("kept %d, deleted %d, want 2 and 1", len(kept), len(deleted))
	}
	if DisplayName(kept[0]) != "Alice" || DisplayName(kept[1]) != "Carol" {
		t.Error("kept records lost their relative order")
	}
	if DisplayName(deleted[0]) != "Bob" {
		t.Errorf("deleted[0] = %q, want Bob", DisplayName(deleted[0]))
	}
}
