package transform

import "github.com/jmvcosta/vcfkit/internal/vcard"

func init() {
	Register(Definition{
		Key:   "remove-types",
		Label: "Strip TYPE parameters from TEL fields",
		Order: 30,
		Apply: RemoveTypes,
	})
}

// RemoveTypes strips every TYPE parameter from TEL fields, leaving the
// number untouched. Useful before Auto-Set-Types when existing type labels
// are known to be wrong.
func RemoveTypes(r vcard.Record) vcard.Record {
	out := r.Clone()
	for i := range out.Fields {
		if out.Fields[i].Is("TEL") {
			out.Fields[i].RemoveParam("TYPE")
		}
	}
	return out
}
