package transform

import "github.com/jmvcosta/vcfkit/internal/vcard"

func init() {
	Register(Definition{
		Key:   "remove-pictures",
		Label: "Remove PHOTO fields, including continuation data",
		Order: 20,
		Apply: RemovePictures,
	})
}

// RemovePictures deletes every PHOTO field entirely. The field's value
// already contains all continuation-derived content after unfolding, so
// dropping the field drops the whole picture payload.
func RemovePictures(r vcard.Record) vcard.Record {
	kept := make([]vcard.Field, 0, len(r.Fields))
	for _, f := range r.Fields {
		if f.Is("PHOTO") {
			continue
		}
		kept = append(kept, f)
	}
	return vcard.Record{Fields: kept}
}
