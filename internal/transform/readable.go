package transform

import (
	"io"
	"mime/quotedprintable"
	"strings"

	"github.com/jmvcosta/vcfkit/internal/vcard"
)

func init() {
	Register(Definition{
		Key:   "readable",
		Label: "Decode quoted-printable values to readable UTF-8",
		Order: 10,
		Apply: DecodeReadable,
	})
}

// DecodeReadable decodes the value of every field carrying quoted-printable
// encoding (ENCODING=QUOTED-PRINTABLE or the bare 2.1 QUOTED-PRINTABLE
// token) and drops the ENCODING and CHARSET parameters. Fields declaring an
// unrecognized ENCODING, and fields whose value fails to decode, pass
// through unmodified; correctness of untouched fields must not regress.
func DecodeReadable(r vcard.Record) vcard.Record {
	out := r.Clone()
	for i := range out.Fields {
		f := &out.Fields[i]

		enc, declared := f.Param("ENCODING")
		bareToken := !declared && f.HasParam("QUOTED-PRINTABLE")
		if !declared && !bareToken {
			continue
		}
		if declared && !strings.EqualFold(enc, "QUOTED-PRINTABLE") {
			// Unsupported encoding: recoverable, local pass-through.
			continue
		}

		decoded, err := decodeQuotedPrintable(f.Value)
		if err != nil {
			continue
		}

		f.Value = decoded
		f.RemoveParam("ENCODING")
		f.RemoveParam("CHARSET")
		f.RemoveParam("QUOTED-PRINTABLE")
	}
	return out
}

// decodeQuotedPrintable expands =XX hex escapes into the corresponding
// bytes, interpreted as UTF-8. Soft line breaks were already removed during
// unfolding, so the input is a single logical value.
func decodeQuotedPrintable(value string) (string, error) {
	decoded, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(value)))
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
