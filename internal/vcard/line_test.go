package vcard

import (
	"reflect"
	"testing"
)

func TestUnfold(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{
			name: "no continuations pass through",
			raw:  []string{"BEGIN:VCARD", "FN:John", "END:VCARD"},
			want: []string{"BEGIN:VCARD", "FN:John", "END:VCARD"},
		},
		{
			name: "space folding strips one byte",
			raw:  []string{"NOTE:first part", " second part"},
			want: []string{"NOTE:first partsecond part"},
		},
		{
			name: "tab folding strips one byte",
			raw:  []string{"NOTE:first", "\tsecond"},
			want: []string{"NOTE:firstsecond"},
		},
		{
			name: "multiple folded continuations",
			raw:  []string{"NOTE:a", " b", " c"},
			want: []string{"NOTE:abc"},
		},
		{
			name: "qp soft break joins without leading whitespace",
			raw: []string{
				"NOTE;ENCODING=QUOTED-PRINTABLE:ol=C3=",
				"=A1 mundo",
			},
			want: []string{"NOTE;ENCODING=QUOTED-PRINTABLE:ol=C3=A1 mundo"},
		},
		{
			name: "bare QUOTED-PRINTABLE token also activates soft breaks",
			raw: []string{
				"NOTE;QUOTED-PRINTABLE:line one=",
				"line two",
			},
			want: []string{"NOTE;QUOTED-PRINTABLE:line oneline two"},
		},
		{
			name: "trailing equals without qp encoding is not a soft break",
			raw:  []string{"NOTE:ends with =", "FN:John"},
			want: []string{"NOTE:ends with =", "FN:John"},
		},
		{
			name: "qp marker only applies in the parameter segment",
			raw:  []string{"NOTE:mentions QUOTED-PRINTABLE here =", "FN:John"},
			want: []string{"NOTE:mentions QUOTED-PRINTABLE here =", "FN:John"},
		},
		{
			name: "empty input",
			raw:  nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unfold(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unfold(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lf endings",
			text: "a\nb\n",
			want: []string{"a", "b"},
		},
		{
			name: "crlf endings",
			text: "a\r\nb\r\n",
			want: []string{"a", "b"},
		},
		{
			name: "mixed endings",
			text: "a\r\nb\nc",
			want: []string{"a", "b", "c"},
		},
		{
			name: "no trailing newline",
			text: "a\nb",
			want: []string{"a", "b"},
		},
		{
			name: "blank interior line preserved",
			text: "a\n\nb\n",
			want: []string{"a", "", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
