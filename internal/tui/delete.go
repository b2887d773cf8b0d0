// Package tui implements the interactive contact deletion flow. Each
// contact is presented in turn and the user decides whether to keep or
// delete it; the whole session is all-or-nothing, so aborting discards
// every decision made so far.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmvcosta/vcfkit/internal/vcard"
)

// ErrAborted is returned by Run when the user quits before reviewing
// every contact. No output should be written in that case.
var ErrAborted = errors.New("selection aborted")

// Result carries the outcome of a completed review session.
type Result struct {
	Kept    []vcard.Record
	Deleted []vcard.Record
}

type model struct {
	records []vcard.Record
	names   []string

	index   int
	deleted map[int]bool
	done    bool
	aborted bool
}

func newModel(records []vcard.Record) model {
	names := make([]string, len(records))
	for i, r := range records {
		name := vcard.DisplayName(r)
		if name == "" {
			name = "(unnamed contact)"
		}
		names[i] = name
	}

	return model{
		records: records,
		names:   names,
		deleted: make(map[int]bool),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.aborted = true
		return m, tea.Quit

	case "y", "Y", "d", "D":
		m.deleted[m.index] = true
		return m.advance()

	case "n", "N", "enter":
		return m.advance()
	}

	return m, nil
}

// advance moves to the next contact, quitting once every contact has
// been reviewed.
func (m model) advance() (tea.Model, tea.Cmd) {
	m.index++
	if m.index >= len(m.records) {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.aborted {
		return "Aborted. No changes written.\n"
	}

	if m.done {
		return fmt.Sprintf("Reviewed %d contacts, %d marked for deletion.\n",
			len(m.records), len(m.deleted))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Contact %d/%d: %s\n", m.index+1, len(m.records), m.names[m.index])
	b.WriteString("Delete? [y/N]  (q aborts)\n")

	if len(m.deleted) > 0 {
		fmt.Fprintf(&b, "\n%d marked for deletion so far\n", len(m.deleted))
	}

	return b.String()
}

// result partitions the records per the recorded decisions, preserving
// input order within each group.
func (m model) result() Result {
	res := Result{
		Kept:    make([]vcard.Record, 0, len(m.records)-len(m.deleted)),
		Deleted: make([]vcard.Record, 0, len(m.deleted)),
	}
	for i, r := range m.records {
		if m.deleted[i] {
			res.Deleted = append(res.Deleted, r)
		} else {
			res.Kept = append(res.Kept, r)
		}
	}
	return res
}

// Run walks the user through every record and returns the partition.
// It returns ErrAborted if the user quits mid-review.
func Run(records []vcard.Record, opts ...tea.ProgramOption) (Result, error) {
	if len(records) == 0 {
		return Result{}, nil
	}

	p := tea.NewProgram(newModel(records), opts...)
	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("interactive selection: %w", err)
	}

	m, ok := final.(model)
	if !ok {
		return Result{}, errors.New("interactive selection: unexpected model type")
	}
	if m.aborted {
		return Result{}, ErrAborted
	}

	return m.result(), nil
}
