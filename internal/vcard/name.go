package vcard

import "strings"

// DisplayName derives the contact name key used by sorting and interactive
// selection. It prefers a non-empty FN field; otherwise it synthesizes a
// human-presentable name from the structured N field
// (family;given;additional;prefix;suffix) as "given additional family",
// skipping empty components. Returns "" when neither field yields a name.
//
// The derived key is never written back into the record; only the
// Format-Names transform creates FN fields.
func DisplayName(r Record) string {
	for _, f := range r.Fields {
		if f.Is("FN") {
			if name := strings.TrimSpace(f.Value); name != "" {
				return name
			}
		}
	}

	if f := r.Field("N"); f != nil {
		return nameFromN(f.Value)
	}
	return ""
}

// nameFromN joins the display-relevant components of an N value in natural
// reading order.
func nameFromN(value string) string {
	parts := SplitUnescaped(value, ';')
	component := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}

	// N is family;given;additional;prefix;suffix.
	ordered := []string{component(1), component(2), component(0)}
	joined := make([]string, 0, len(ordered))
	for _, p := range ordered {
		if p != "" {
			joined = append(joined, p)
		}
	}
	return strings.Join(joined, " ")
}
