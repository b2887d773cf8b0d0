package transform

import (
	"testing"

	"github.com/jmvcosta/vcfkit/internal/vcard"
)

func TestRegistry(t *testing.T) {
	all := All()
	if len(all) != 7 {
		t.Fatalf("registered %d transforms, want 7", len(all))
	}

	// All() returns canonical pipeline order.
	wantOrder := []string{
		"readable",
		"remove-pictures",
		"remove-types",
		"format-numbers",
		"format-names",
		"auto-set-types",
		"update-version",
	}
	for i, def := range all {
		if def.Key != wantOrder[i] {
			t.Errorf("All()[%d].Key = %q, want %q", i, def.Key, wantOrder[i])
		}
		if def.Label == "" || def.Apply == nil {
			t.Errorf("definition %q is incomplete", def.Key)
		}
	}

	if _, ok := Get("format-numbers"); !ok {
		t.Error("Get(format-numbers) not found")
	}
	if _, ok := Get("no-such-key"); ok {
		t.Error("Get returned a definition for an unknown key")
	}
}

func TestOptionsAnyAndPlan(t *testing.T) {
	if (Options{}).Any() {
		t.Error("zero Options reports Any")
	}
	if !(Options{Sort: true}).Any() {
		t.Error("sort-only Options must report Any")
	}
	if !(Options{Readable: true}).Any() {
		t.Error("single transform must report Any")
	}

	plan := Plan(Options{AutoSetTypes: true, FormatNumbers: true, Readable: true})
	wantKeys := []string{"readable", "format-numbers", "auto-set-types"}
	if len(plan) != len(wantKeys) {
		t.Fatalf("plan has %d steps, want %d", len(plan), len(wantKeys))
	}
	for i, def := range plan {
		if def.Key != wantKeys[i] {
			t.Errorf("plan[%d] = %q, want %q", i, def.Key, wantKeys[i])
		}
	}
}

func TestApplyPipeline(t *testing.T) {
	records := []vcard.Record{
		telRecord("VERSION:2.1", "N:Smith;John;;;", "TEL:+351912345678"),
	}

	out := Apply(records, Plan(Options{
		FormatNumbers:  true,
		FormatNames:    true,
		AutoSetTypes:   true,
		UpgradeVersion: true,
	}))

	if len(out) != 1 {
		t.Fatalf("got %d records, want 1", len(out))
	}

	want := []string{
		"VERSION:3.0",
		"FN:John Smith",
		"N:Smith;John;;;",
		// The version upgrade folds the inferred TYPE to lower case.
		"TEL;TYPE=cell:912 345 678",
	}
	r := out[0]
	if len(r.Fields) != len(want) {
		t.Fatalf("got %d fields, want %d: %v", len(r.Fields), len(want), r.Fields)
	}
	for i, w := range want {
		if got := r.Fields[i].String(); got != w {
			t.Errorf("field %d = %q, want %q", i, got, w)
		}
	}

	// Input preserved.
	if records[0].Fields[2].Value != "+351912345678" {
		t.Error("Apply modified its input records")
	}
}

func TestApplyPipelineKeepsExplicitType(t *testing.T) {
	records := []vcard.Record{
		telRecord("TEL;TYPE=HOME:+351212345678"),
	}

	out := Apply(records, Plan(Options{FormatNumbers: true, AutoSetTypes: true}))

	if got := out[0].Fields[0].String(); got != "TEL;TYPE=HOME:212 345 678" {
		t.Errorf("field = %q, want TEL;TYPE=HOME:212 345 678", got)
	}
}
