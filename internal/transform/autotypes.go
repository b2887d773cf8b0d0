package transform

import (
	"strings"

	"github.com/jmvcosta/vcfkit/internal/vcard"
)

func init() {
	Register(Definition{
		Key:   "auto-set-types",
		Label: "Infer TYPE for TEL fields from the number prefix",
		Order: 60,
		Apply: AutoSetTypes,
	})
}

// AutoSetTypes classifies every TEL field that lacks an explicit TYPE
// parameter. The classification follows the Portuguese numbering plan:
// numbers starting with 2 are landlines (HOME), numbers starting with 9 are
// mobiles (CELL), anything else falls back to VOICE. Numbers may arrive raw
// or already space-grouped; separators are ignored for inspection. A TEL
// field with an existing TYPE parameter is left untouched.
func AutoSetTypes(r vcard.Record) vcard.Record {
	out := r.Clone()
	for i := range out.Fields {
		f := &out.Fields[i]
		if !f.Is("TEL") || f.HasParam("TYPE") {
			continue
		}
		if t := classifyNumber(f.Value); t != "" {
			f.AddParam("TYPE", t)
		}
	}
	return out
}

// classifyNumber inspects the leading digit after separators and the
// national prefix are stripped. Returns "" when nothing remains to inspect.
func classifyNumber(value string) string {
	n := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(value))
	// Only the literal +351 prefix is recognized; a bare 351 classifies
	// by its leading digit like any other number.
	if strings.HasPrefix(n, "+351") {
		n = n[4:]
	}

	switch {
	case n == "":
		return ""
	case n[0] == '2':
		return "HOME"
	case n[0] == '9':
		return "CELL"
	case n[0] == '+':
		// Foreign number: assume mobile.
		return "CELL"
	default:
		return "VOICE"
	}
}
