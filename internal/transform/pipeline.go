package transform

import "github.com/jmvcosta/vcfkit/internal/vcard"

// Options is the pipeline flag set: which operations a run applies. Each
// transform is independent; all are idempotent except the version upgrade,
// which is monotonic (2.1 to 3.0 only).
type Options struct {
	Readable       bool
	RemovePictures bool
	RemoveTypes    bool
	FormatNumbers  bool
	FormatNames    bool
	AutoSetTypes   bool
	UpgradeVersion bool

	// Sort orders the output records by display name. Not a transform;
	// applied after the pipeline.
	Sort bool
}

// keyEnabled maps registry keys to their option flag.
func (o Options) keyEnabled(key string) bool {
	switch key {
	case "readable":
		return o.Readable
	case "remove-pictures":
		return o.RemovePictures
	case "remove-types":
		return o.RemoveTypes
	case "format-numbers":
		return o.FormatNumbers
	case "format-names":
		return o.FormatNames
	case "auto-set-types":
		return o.AutoSetTypes
	case "update-version":
		return o.UpgradeVersion
	}
	return false
}

// Any reports whether at least one operation (transform or sort) was
// requested.
func (o Options) Any() bool {
	for _, def := range All() {
		if o.keyEnabled(def.Key) {
			return true
		}
	}
	return o.Sort
}

// Plan returns the enabled transforms in canonical pipeline order. The
// canonical order keeps Format-Numbers ahead of Auto-Set-Types; the
// transforms tolerate either order, this one just reads sanely.
func Plan(o Options) []Definition {
	var plan []Definition
	for _, def := range All() {
		if o.keyEnabled(def.Key) {
			plan = append(plan, def)
		}
	}
	return plan
}

// Apply runs each transform in the plan over every record, in order, and
// returns the transformed records. The input slice is not modified.
func Apply(records []vcard.Record, plan []Definition) []vcard.Record {
	out := make([]vcard.Record, len(records))
	copy(out, records)
	for _, def := range plan {
		for i := range out {
			out[i] = def.Apply(out[i])
		}
	}
	return out
}
