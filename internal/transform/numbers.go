package transform

import (
	"strings"

	"github.com/jmvcosta/vcfkit/internal/vcard"
)

func init() {
	Register(Definition{
		Key:   "format-numbers",
		Label: "Strip the +351 prefix and group 9-digit numbers",
		Order: 40,
		Apply: FormatNumbers,
	})
}

// countryPrefix is the national dialing prefix stripped from TEL values.
// The grouping below matches the Portuguese 9-digit numbering plan.
const countryPrefix = "+351"

// numberSeparators are the characters tolerated between digits when
// deciding whether a value is a plain phone number.
const numberSeparators = " -./\\"

// FormatNumbers normalizes every TEL value: a literal +351 prefix is
// stripped, and when the remaining digit sequence is exactly 9 digits the
// number is regrouped as XXX XXX XXX. Values that do not match the 9-digit
// pattern after prefix removal are left as-is.
func FormatNumbers(r vcard.Record) vcard.Record {
	out := r.Clone()
	for i := range out.Fields {
		if out.Fields[i].Is("TEL") {
			out.Fields[i].Value = formatNumber(out.Fields[i].Value)
		}
	}
	return out
}

func formatNumber(value string) string {
	number := value
	if trimmed := strings.TrimSpace(value); strings.HasPrefix(trimmed, countryPrefix) {
		number = strings.TrimLeft(trimmed[len(countryPrefix):], numberSeparators)
	}

	digits, plain := digitsOf(number)
	if plain && len(digits) == 9 {
		return digits[0:3] + " " + digits[3:6] + " " + digits[6:9]
	}
	return number
}

// digitsOf extracts the digit sequence of value and reports whether the
// value consists solely of digits and tolerated separators. Values carrying
// anything else (extensions, letters, a leading +) are not regrouped.
func digitsOf(value string) (string, bool) {
	var b strings.Builder
	for _, c := range value {
		switch {
		case c >= '0' && c <= '9':
			b.WriteRune(c)
		case strings.ContainsRune(numberSeparators, c):
		default:
			return b.String(), false
		}
	}
	return b.String(), true
}
