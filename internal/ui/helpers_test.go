package ui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/cardsearch/internal/records"
	"github.com/five82/cardsearch/internal/state"
)

func stripANSI(s string) string {
	return ansi.Strip(s)
}

func sampleRecords() []records.Record {
	return []records.Record{
		{ID: "U1", Name: "Alice", Address: "1 Main St", Pincode: "10001", Items: []string{"pen", "book"}},
		{ID: "U2", Name: "Bob", Address: "2 Oak Ave", Pincode: "20002", Items: []string{"cup"}},
	}
}

// newTestModel returns a sized model that has already received snap.
func newTestModel(t *testing.T, width, height int, snap state.Snapshot) Model {
	t.Helper()
	m := New(Options{
		Load:      func(context.Context) state.Snapshot { return snap },
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		Mouse:     true,
	})
	m = update(t, m, tea.WindowSizeMsg{Width: width, Height: height})
	return update(t, m, loadedMsg(snap))
}

func loadedSnapshot() state.Snapshot {
	return state.Snapshot{Records: sampleRecords(), Loaded: true}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func pressKey(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: k})
}

func selected(m Model) int {
	if i, ok := m.nav.Selected(); ok {
		return i
	}
	return -1
}
