package transform

import (
	"strings"

	"github.com/jmvcosta/vcfkit/internal/vcard"
)

func init() {
	Register(Definition{
		Key:   "format-names",
		Label: "Synthesize a missing FN field from the N field",
		Order: 50,
		Apply: FormatNames,
	})
}

// FormatNames ensures a record with a structured N field also carries a
// display FN field. A present, non-empty FN is left unchanged. When FN is
// absent the synthesized field is inserted immediately before N; when an
// empty FN exists its value is filled in place. Records where neither FN
// nor N yields a usable name are left without FN.
func FormatNames(r vcard.Record) vcard.Record {
	emptyFN := -1
	for i, f := range r.Fields {
		if f.Is("FN") {
			if strings.TrimSpace(f.Value) != "" {
				return r
			}
			if emptyFN < 0 {
				emptyFN = i
			}
		}
	}

	// FN absent or empty: DisplayName falls through to the N synthesis.
	name := vcard.DisplayName(r)
	if name == "" {
		return r
	}

	out := r.Clone()
	if emptyFN >= 0 {
		out.Fields[emptyFN].Value = name
		return out
	}

	for i, f := range out.Fields {
		if f.Is("N") {
			fn := vcard.Field{Name: "FN", Value: name}
			out.Fields = append(out.Fields[:i], append([]vcard.Field{fn}, out.Fields[i:]...)...)
			break
		}
	}
	return out
}
