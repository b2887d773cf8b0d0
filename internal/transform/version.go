package transform

import (
	"strings"

	"github.com/jmvcosta/vcfkit/internal/vcard"
)

func init() {
	Register(Definition{
		Key:   "update-version",
		Label: "Upgrade vCard 2.1 records to 3.0",
		Order: 70,
		Apply: UpgradeVersion,
	})
}

// valueEscaper applies vCard 3.0 escaping to characters that required no
// escaping under 2.1.
var valueEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\n", `\n`,
)

// UpgradeVersion rewrites a vCard 2.1 record as 3.0: the VERSION value
// becomes 3.0, field values gain 3.0 escaping (component-wise for the
// structured N field), and 2.1-style bare parameter tokens on TEL and EMAIL
// fields are folded into a single TYPE=a,b parameter. Records at any other
// version, or without a VERSION field, pass through unchanged. The upgrade
// is monotonic: a record already at 3.0 is never re-escaped.
func UpgradeVersion(r vcard.Record) vcard.Record {
	if r.Version() != "2.1" {
		return r
	}

	out := r.Clone()
	for i := range out.Fields {
		f := &out.Fields[i]
		switch {
		case f.Is("VERSION"):
			f.Value = "3.0"
		case f.Is("N"):
			parts := vcard.SplitUnescaped(f.Value, ';')
			for j, p := range parts {
				parts[j] = valueEscaper.Replace(p)
			}
			f.Value = strings.Join(parts, ";")
		case f.Is("TEL") || f.Is("EMAIL"):
			normalizeTypeParams(f)
		case f.HasParam("ENCODING") || f.HasParam("QUOTED-PRINTABLE"):
			// Encoded payloads are governed by their encoding, not by
			// 3.0 text escaping.
		default:
			f.Value = valueEscaper.Replace(f.Value)
		}
	}
	return out
}

// normalizeTypeParams folds every type designation on a TEL or EMAIL field
// into one TYPE parameter with lower-cased, comma-joined values: explicit
// TYPE parameters (possibly multi-valued) and bare 2.1 tokens such as HOME
// or WORK all contribute. Parameters with unrelated keys keep their place.
// A field with no type designation at all is left alone.
func normalizeTypeParams(f *vcard.Field) {
	var tokens []string
	rebuilt := make([]vcard.Param, 0, len(f.Params))
	slot := -1

	for _, p := range f.Params {
		isType := strings.EqualFold(p.Name, "TYPE") || p.Value == ""
		if !isType {
			rebuilt = append(rebuilt, p)
			continue
		}
		if slot < 0 {
			slot = len(rebuilt)
			rebuilt = append(rebuilt, vcard.Param{}) // placeholder
		}
		raw := p.Value
		if raw == "" {
			raw = p.Name
		}
		for _, t := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' }) {
			if t != "" {
				tokens = append(tokens, strings.ToLower(t))
			}
		}
	}

	if slot < 0 {
		return
	}
	if len(tokens) == 0 {
		// Only empty designations (TYPE=): drop them.
		f.Params = append(rebuilt[:slot], rebuilt[slot+1:]...)
		return
	}
	rebuilt[slot] = vcard.Param{Name: "TYPE", Value: strings.Join(tokens, ",")}
	f.Params = rebuilt
}
