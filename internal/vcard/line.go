package vcard

// line.go handles the physical-to-logical line mapping.
//
// vCard files continue a logical line across physical lines two ways:
//
//   - Folding: a physical line starting with a space or tab continues the
//     previous line; the single leading whitespace byte is stripped.
//   - Quoted-printable soft breaks: a trailing '=' on a field whose
//     parameters declare ENCODING=QUOTED-PRINTABLE joins the next physical
//     line with the marker removed.
//
// Output is written one logical field per physical line, so folding on
// output is not required for correctness.

import "strings"

// Unfold reassembles logically continued physical lines into logical field
// lines. A file with no continuations passes through unchanged.
func Unfold(raw []string) []string {
	out := make([]string, 0, len(raw))
	var cur string
	have := false

	flush := func() {
		if have {
			out = append(out, cur)
		}
		cur = ""
		have = false
	}

	for _, line := range raw {
		switch {
		case have && strings.HasSuffix(cur, "=") && quotedPrintableActive(cur):
			// Soft break: drop the marker, join the continuation.
			cur = cur[:len(cur)-1] + line
		case have && len(line) > 0 && (line[0] == ' ' || line[0] == '\t'):
			cur += line[1:]
		default:
			flush()
			cur = line
			have = true
		}
	}
	flush()
	return out
}

// quotedPrintableActive reports whether the partial logical line declares
// quoted-printable encoding in its parameter segment. vCard 2.1 allows both
// ENCODING=QUOTED-PRINTABLE and the bare QUOTED-PRINTABLE token.
func quotedPrintableActive(partial string) bool {
	head := partial
	if i := strings.IndexByte(partial, ':'); i >= 0 {
		head = partial[:i]
	}
	return strings.Contains(strings.ToUpper(head), "QUOTED-PRINTABLE")
}

// SplitLines breaks raw text into physical lines, accepting both CRLF and
// LF terminators.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	// A trailing terminator produces one empty tail element; drop it so a
	// load/render cycle does not grow the document.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
