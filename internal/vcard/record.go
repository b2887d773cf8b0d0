package vcard

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedDocument indicates a structural parse failure: an END:VCARD
// with no matching BEGIN:VCARD, a nested BEGIN:VCARD, or end of input inside
// an open record. Processing of the whole document aborts; no partial output
// is produced.
var ErrMalformedDocument = errors.New("malformed vcard document")

// Record is an ordered sequence of fields bounded by implicit BEGIN/END
// markers. A record has no identity beyond its field contents.
type Record struct {
	Fields []Field
}

// Field returns a pointer to the first field with the given name
// (case-insensitive), or nil when the record has none.
func (r *Record) Field(name string) *Field {
	for i := range r.Fields {
		if r.Fields[i].Is(name) {
			return &r.Fields[i]
		}
	}
	return nil
}

// Version returns the trimmed value of the VERSION field, or "" when absent.
func (r *Record) Version() string {
	if f := r.Field("VERSION"); f != nil {
		return strings.TrimSpace(f.Value)
	}
	return ""
}

// Clone returns a deep copy of the record. Transforms that rebuild a record
// use this to avoid aliasing the caller's field slices.
func (r Record) Clone() Record {
	fields := make([]Field, len(r.Fields))
	copy(fields, r.Fields)
	for i := range fields {
		if len(fields[i].Params) > 0 {
			params := make([]Param, len(fields[i].Params))
			copy(params, fields[i].Params)
			fields[i].Params = params
		}
	}
	return Record{Fields: fields}
}

// Split partitions logical lines into records delimited by BEGIN:VCARD and
// END:VCARD. Lines outside any record span are dropped as stray noise.
func Split(logical []string) ([]Record, error) {
	var records []Record
	var cur Record
	open := false

	for i, line := range logical {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.EqualFold(trimmed, "BEGIN:VCARD"):
			if open {
				return nil, fmt.Errorf("%w: line %d: BEGIN:VCARD inside an open record", ErrMalformedDocument, i+1)
			}
			open = true
			cur = Record{}
		case strings.EqualFold(trimmed, "END:VCARD"):
			if !open {
				return nil, fmt.Errorf("%w: line %d: END:VCARD without matching BEGIN:VCARD", ErrMalformedDocument, i+1)
			}
			records = append(records, cur)
			open = false
		case open && trimmed != "":
			cur.Fields = append(cur.Fields, ParseField(line))
		}
	}

	if open {
		return nil, fmt.Errorf("%w: unterminated record at end of input", ErrMalformedDocument)
	}
	return records, nil
}

// LoadRecords parses a full VCF document (UTF-8 text, CRLF or LF endings)
// into records.
func LoadRecords(text string) ([]Record, error) {
	return Split(Unfold(SplitLines(text)))
}

// RenderRecords serializes records back to text, one logical field per
// physical line, with one blank line between consecutive records for
// readability.
func RenderRecords(records []Record) string {
	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("BEGIN:VCARD\n")
		for _, f := range r.Fields {
			b.WriteString(f.String())
			b.WriteByte('\n')
		}
		b.WriteString("END:VCARD\n")
	}
	return b.String()
}
