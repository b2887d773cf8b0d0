package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmvcosta/vcfkit/internal/vcard"
)

func contacts(names ...string) []vcard.Record {
	records := make([]vcard.Record, len(names))
	for i, n := range names {
		records[i] = vcard.Record{Fields: []vcard.Field{
			vcard.ParseField("FN:" + n),
		}}
	}
	return records
}

func key(r rune) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// drive feeds key messages into the model and returns the final state.
func drive(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	var next tea.Model = m
	for _, msg := range msgs {
		next, _ = next.Update(msg)
	}
	final, ok := next.(model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return final
}

func TestModelReviewFlow(t *testing.T) {
	m := newModel(contacts("Alice", "Bob", "Carol"))

	// Keep Alice, delete Bob, keep Carol via enter.
	final := drive(t, m, key('n'), key('y'), tea.KeyMsg{Type: tea.KeyEnter})

	if !final.done || final.aborted {
		t.Fatalf("done = %v, aborted = %v", final.done, final.aborted)
	}

	res := final.result()
	if len(res.Kept) != 2 || len(res.Deleted) != 1 {
		t.Fatalf("kept %d, deleted %d", len(res.Kept), len(res.Deleted))
	}
	if vcard.DisplayName(res.Deleted[0]) != "Bob" {
		t.Errorf("deleted = %q, want Bob", vcard.DisplayName(res.Deleted[0]))
	}
	if vcard.DisplayName(res.Kept[0]) != "Alice" || vcard.DisplayName(res.Kept[1]) != "Carol" {
		t.Error("kept records lost their order")
	}
}

func TestModelDeleteKeyAliases(t *testing.T) {
	// d behaves exactly like y.
	final := drive(t, newModel(contacts("Alice", "Bob")), key('d'), key('n'))

	if !final.done {
		t.Fatal("review did not complete")
	}
	res := final.result()
	if len(res.Deleted) != 1 || vcard.DisplayName(res.Deleted[0]) != "Alice" {
		t.Errorf("deleted = %v, want Alice", res.Deleted)
	}
}

func TestModelAbort(t *testing.T) {
	m := newModel(contacts("Alice", "Bob"))

	final := drive(t, m, key('y'), key('q'))

	if !final.aborted {
		t.Fatal("q must abort the session")
	}
	if final.done {
		t.Error("aborted session must not count as done")
	}
}

func TestModelAbortCtrlC(t *testing.T) {
	m := newModel(contacts("Alice"))

	final := drive(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !final.aborted {
		t.Error("ctrl+c must abort the session")
	}
}

func TestModelView(t *testing.T) {
	m := newModel(contacts("Alice", "Bob"))

	view := m.View()
	if !strings.Contains(view, "Contact 1/2: Alice") {
		t.Errorf("view missing prompt:\n%s", view)
	}
	if !strings.Contains(view, "Delete? [y/N]") {
		t.Errorf("view missing choices:\n%s", view)
	}

	final := drive(t, m, key('y'), key('n'))
	if got := final.View(); !strings.Contains(got, "2 contacts, 1 marked") {
		t.Errorf("summary view = %q", got)
	}
}

func TestModelUnnamedContact(t *testing.T) {
	m := newModel([]vcard.Record{{Fields: []vcard.Field{
		vcard.ParseField("TEL:123"),
	}}})

	if !strings.Contains(m.View(), "(unnamed contact)") {
		t.Errorf("view = %q", m.View())
	}
}

func TestRunEmptyInput(t *testing.T) {
	res, err := Run(nil)
	if err != nil {
		t.Fatalf("Run(nil) failed: %v", err)
	}
	if len(res.Kept) != 0 || len(res.Deleted) != 0 {
		t.Errorf("empty input produced records: %+v", res)
	}
}
