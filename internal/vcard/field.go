// Package vcard provides the record model for vCard (VCF) documents:
// unfolding physical lines into logical field lines, splitting a line
// stream into contact records, parsing and serializing individual fields,
// and the derived display-name key used for sorting and selection.
//
// The package has no UI or I/O dependencies beyond io.Reader wrappers and
// can be used by any frontend.
package vcard

import "strings"

// Param is a single field parameter. Value is empty for bare vCard 2.1
// tokens such as HOME or QUOTED-PRINTABLE that carry no key.
type Param struct {
	Name  string
	Value string
}

// String serializes the parameter. Bare tokens serialize as the name alone.
func (p Param) String() string {
	if p.Value == "" {
		return p.Name
	}
	return p.Name + "=" + p.Value
}

// Field is one named property of a contact record: a case-insensitive name,
// an ordered parameter list, and the raw value payload. A field parsed from
// a logical line re-serializes to that same line.
type Field struct {
	Name   string
	Params []Param
	Value  string

	// bare marks a logical line that contained no ':' separator. Such a
	// line round-trips verbatim as its name with no value.
	bare bool
}

// ParseField parses one logical line into a Field. The line is split on the
// first unescaped ':' into the name+parameter segment and the value; the
// name segment is split on ';' into the field name and its parameters.
func ParseField(line string) Field {
	sep := indexUnescaped(line, ':')
	if sep < 0 {
		return Field{Name: line, bare: true}
	}

	head := line[:sep]
	value := line[sep+1:]

	segs := SplitUnescaped(head, ';')
	f := Field{Name: segs[0], Value: value}
	for _, seg := range segs[1:] {
		if eq := strings.IndexByte(seg, '='); eq >= 0 {
			f.Params = append(f.Params, Param{Name: seg[:eq], Value: seg[eq+1:]})
		} else {
			f.Params = append(f.Params, Param{Name: seg})
		}
	}
	return f
}

// String serializes the field as NAME;PARAM=VAL;...:VALUE, omitting the
// parameter list when empty and preserving parameter insertion order.
func (f Field) String() string {
	if f.bare {
		return f.Name
	}

	var b strings.Builder
	b.WriteString(f.Name)
	for _, p := range f.Params {
		b.WriteByte(';')
		b.WriteString(p.String())
	}
	b.WriteByte(':')
	b.WriteString(f.Value)
	return b.String()
}

// Is reports whether the field has the given name, ignoring case.
func (f Field) Is(name string) bool {
	return strings.EqualFold(f.Name, name)
}

// Param returns the value of the first parameter with the given name
// (case-insensitive) and whether such a parameter exists.
func (f Field) Param(name string) (string, bool) {
	for _, p := range f.Params {
		if strings.EqualFold(p.Name, name) {
			return p.Value, true
		}
	}
	return "", false
}

// HasParam reports whether any parameter with the given name exists.
func (f Field) HasParam(name string) bool {
	_, ok := f.Param(name)
	return ok
}

// AddParam appends a parameter, preserving existing order.
func (f *Field) AddParam(name, value string) {
	f.Params = append(f.Params, Param{Name: name, Value: value})
}

// RemoveParam deletes every parameter with the given name (case-insensitive).
func (f *Field) RemoveParam(name string) {
	kept := f.Params[:0]
	for _, p := range f.Params {
		if !strings.EqualFold(p.Name, name) {
			kept = append(kept, p)
		}
	}
	f.Params = kept
}

// SplitUnescaped splits s on every separator byte that is not preceded by a
// backslash. Escaped separators (\; and friends) stay inside their segment.
func SplitUnescaped(s string, sep byte) []string {
	var parts []string
	start := 0
	escaped := false
	for i := 0; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == sep:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// indexUnescaped returns the index of the first unescaped occurrence of sep,
// or -1 if none exists.
func indexUnescaped(s string, sep byte) int {
	escaped := false
	for i := 0; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == sep:
			return i
		}
	}
	return -1
}
