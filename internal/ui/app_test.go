package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cardsearch/internal/prefs"
	"github.com/five82/cardsearch/internal/state"
)

func TestModel_ViewBeforeResize(t *testing.T) {
	m := New(Options{})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View = %q, want Loading...", got)
	}
}

func TestModel_LoadCmdDeliversSnapshot(t *testing.T) {
	calls := 0
	load := func(context.Context) state.Snapshot {
		calls++
		return loadedSnapshot()
	}
	msg := loadCmd(context.Background(), load)()
	snap, ok := msg.(loadedMsg)
	if !ok {
		t.Fatalf("loadCmd returned %T, want loadedMsg", msg)
	}
	if calls != 1 || len(snap.Records) != 2 {
		t.Fatalf("calls=%d records=%d, want 1 and 2", calls, len(snap.Records))
	}
}

func TestModel_Scenario(t *testing.T) {
	m := newTestModel(t, 80, 30, loadedSnapshot())

	out := stripANSI(m.View())
	if strings.Contains(out, "No card found") || strings.Contains(out, "U1") {
		t.Fatalf("inactive view shows results:\n%s", out)
	}

	m = typeText(t, m, "pen")
	out = stripANSI(m.View())
	if !strings.Contains(out, "U1") || strings.Contains(out, "U2") {
		t.Fatalf("query pen should show only U1:\n%s", out)
	}
	if !strings.Contains(out, "pen found in items") {
		t.Fatalf("query pen should annotate the item match:\n%s", out)
	}

	m = pressKey(t, m, tea.KeyEsc)
	m = typeText(t, m, "bob")
	out = stripANSI(m.View())
	if !strings.Contains(out, "Bob") || strings.Contains(out, "U1") {
		t.Fatalf("query bob should show only U2:\n%s", out)
	}
	if strings.Contains(out, "found in items") {
		t.Fatalf("scalar match should not be annotated:\n%s", out)
	}

	m = pressKey(t, m, tea.KeyEsc)
	m = typeText(t, m, "zzz")
	if out = stripANSI(m.View()); !strings.Contains(out, "No card found") {
		t.Fatalf("query zzz should show not-found message:\n%s", out)
	}

	m = pressKey(t, m, tea.KeyEsc)
	if m.input.Value() != "" {
		t.Fatalf("esc left query %q", m.input.Value())
	}
	out = stripANSI(m.View())
	if strings.Contains(out, "No card found") || strings.Contains(out, "U2") {
		t.Fatalf("cleared query shows results:\n%s", out)
	}
}

func TestModel_DirectionalKeysWrap(t *testing.T) {
	m := newTestModel(t, 80, 30, loadedSnapshot())
	m = typeText(t, m, "o")
	if m.view.Len() != 2 {
		t.Fatalf("query o matched %d cards, want 2", m.view.Len())
	}

	steps := []struct {
		key  tea.KeyType
		want int
	}{
		{tea.KeyDown, 0},
		{tea.KeyDown, 1},
		{tea.KeyDown, 0},
		{tea.KeyUp, 1},
		{tea.KeyCtrlP, 0},
		{tea.KeyCtrlN, 1},
	}
	for i, step := range steps {
		m = pressKey(t, m, step.key)
		if got := selected(m); got != step.want {
			t.Fatalf("step %d: selected = %d, want %d", i, got, step.want)
		}
	}
	if m.input.Value() != "o" {
		t.Fatalf("directional keys edited the query: %q", m.input.Value())
	}
}

func TestModel_PrevFromUnselectedPicksLast(t *testing.T) {
	m := newTestModel(t, 80, 30, loadedSnapshot())
	m = typeText(t, m, "o")
	m = pressKey(t, m, tea.KeyUp)
	if got := selected(m); got != 1 {
		t.Fatalf("selected = %d, want 1", got)
	}
}

func TestModel_DirectionalKeysOnEmptyView(t *testing.T) {
	m := newTestModel(t, 80, 30, loadedSnapshot())
	m = typeText(t, m, "zzz")
	m = pressKey(t, m, tea.KeyDown)
	m = pressKey(t, m, tea.KeyUp)
	if got := selected(m); got != -1 {
		t.Fatalf("selected = %d, want none", got)
	}
	if m.input.Value() != "zzz" {
		t.Fatalf("query = %q, want zzz", m.input.Value())
	}
}

func TestModel_QueryChangeClearsSelection(t *testing.T) {
	m := newTestModel(t, 80, 30, loadedSnapshot())
	m = typeText(t, m, "o")
	m = pressKey(t, m, tea.KeyDown)
	if selected(m) != 0 {
		t.Fatalf("expected first card selected")
	}
	m = pressKey(t, m, tea.KeyBackspace)
	m = typeText(t, m, "b")
	if got := selected(m); got != -1 {
		t.Fatalf("selected = %d after query change, want none", got)
	}
}

func TestModel_MouseHoverAndClick(t *testing.T) {
	m := newTestModel(t, 80, 30, loadedSnapshot())
	m = typeText(t, m, "o")

	// First card starts right below the header.
	m = update(t, m, tea.MouseMsg{X: 5, Y: headerHeight + 1, Action: tea.MouseActionMotion})
	if got := selected(m); got != 0 {
		t.Fatalf("hover selected = %d, want 0", got)
	}

	m = update(t, m, tea.MouseMsg{X: 5, Y: 0, Action: tea.MouseActionMotion})
	if got := selected(m); got != -1 {
		t.Fatalf("leave selected = %d, want none", got)
	}

	second := headerHeight + m.layout.tops[1] + 1
	m = update(t, m, tea.MouseMsg{X: 5, Y: second, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := selected(m); got != 1 {
		t.Fatalf("click selected = %d, want 1", got)
	}
}

func TestModel_LeaveOtherCardKeepsSelection(t *testing.T) {
	m := newTestModel(t, 80, 30, loadedSnapshot())
	m = typeText(t, m, "o")

	m = update(t, m, tea.MouseMsg{X: 5, Y: headerHeight + 1, Action: tea.MouseActionMotion})
	m = pressKey(t, m, tea.KeyDown)
	if selected(m) != 1 {
		t.Fatalf("expected keyboard to move selection to 1")
	}
	// Leaving card 0 does not clear the keyboard selection on card 1.
	m = update(t, m, tea.MouseMsg{X: 5, Y: 0, Action: tea.MouseActionMotion})
	if got := selected(m); got != 1 {
		t.Fatalf("selected = %d, want 1", got)
	}
}

func TestModel_ScrollAnimationCentersSelection(t *testing.T) {
	m := newTestModel(t, 80, 12, loadedSnapshot())
	m = typeText(t, m, "o")
	m = pressKey(t, m, tea.KeyDown)

	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if cmd == nil {
		t.Fatalf("expected scroll animation to start")
	}
	want := m.layout.centerOffset(1, m.list.Height)
	if want == 0 {
		t.Fatalf("test layout does not scroll")
	}

	for i := 0; cmd != nil && i < 50; i++ {
		m, cmd = updateCmd(t, m, scrollTickMsg{gen: m.scroll.gen})
	}
	if cmd != nil {
		t.Fatalf("scroll animation did not finish")
	}
	if m.list.YOffset != want {
		t.Fatalf("YOffset = %d, want %d", m.list.YOffset, want)
	}
}

func TestModel_WheelCancelsAnimation(t *testing.T) {
	m := newTestModel(t, 80, 12, loadedSnapshot())
	m = typeText(t, m, "o")
	m = pressKey(t, m, tea.KeyUp)
	if !m.scroll.animating {
		t.Fatalf("expected animation to start")
	}
	m = update(t, m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if m.scroll.animating {
		t.Fatalf("wheel should stop the animation")
	}
}

func TestModel_StaleScrollTickIgnored(t *testing.T) {
	m := newTestModel(t, 80, 12, loadedSnapshot())
	m = typeText(t, m, "o")
	m = pressKey(t, m, tea.KeyUp)
	if !m.scroll.animating {
		t.Fatalf("expected animation to start")
	}
	stale := m.scroll.gen

	// Wheel cancels the first animation; navigating starts another while the
	// first one's tick is still scheduled.
	m = update(t, m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	m = pressKey(t, m, tea.KeyDown)
	if !m.scroll.animating || m.scroll.gen == stale {
		t.Fatalf("expected a new animation, gen=%d stale=%d", m.scroll.gen, stale)
	}

	before := m.list.YOffset
	m, cmd := updateCmd(t, m, scrollTickMsg{gen: stale})
	if cmd != nil || m.list.YOffset != before {
		t.Fatalf("stale tick moved the list: offset %d -> %d", before, m.list.YOffset)
	}

	m, cmd = updateCmd(t, m, scrollTickMsg{gen: m.scroll.gen})
	if cmd == nil && m.scroll.animating {
		t.Fatalf("current tick should keep the animation going")
	}
	if got, want := m.list.YOffset, easeStep(before, m.scroll.target); got != want {
		t.Fatalf("YOffset = %d, want one step to %d", got, want)
	}
}

func TestModel_NarrowHeaderStaysOneRow(t *testing.T) {
	snaps := map[string]state.Snapshot{
		"loaded": {Records: sampleRecords(), Loaded: true, LoadedAt: time.Now()},
		"failed": {Loaded: true, LastError: errors.New("dial tcp 10.0.0.1:443: connection refused")},
	}
	for name, snap := range snaps {
		for _, width := range []int{8, 12, 20, 30} {
			m := newTestModel(t, width, 30, snap)
			if h := lipgloss.Height(m.renderHeader()); h != 1 {
				t.Fatalf("%s width %d: header is %d rows", name, width, h)
			}
			lines := strings.Split(m.View(), "\n")
			if len(lines) != m.height {
				t.Fatalf("%s width %d: view is %d rows, want %d", name, width, len(lines), m.height)
			}
		}
	}
}

func TestModel_NarrowMouseRowsMatchCards(t *testing.T) {
	m := newTestModel(t, 20, 30, loadedSnapshot())
	m = typeText(t, m, "pen")

	// Card U1: top border on the first list row, id on the next.
	lines := strings.Split(stripANSI(m.View()), "\n")
	if !strings.Contains(lines[headerHeight+1], "U1") {
		t.Fatalf("row %d = %q, want card U1 id", headerHeight+1, lines[headerHeight+1])
	}
	m = update(t, m, tea.MouseMsg{X: 5, Y: headerHeight + 1, Action: tea.MouseActionMotion})
	if got := selected(m); got != 0 {
		t.Fatalf("hover selected = %d, want 0", got)
	}
	if h := lipgloss.Height(m.renderSummary()); h != 1 {
		t.Fatalf("summary is %d rows with a selection", h)
	}
}

func TestModel_RecordCountShowsLoadTime(t *testing.T) {
	snap := loadedSnapshot()
	snap.LoadedAt = time.Date(2026, 3, 4, 12, 3, 0, 0, time.Local)
	m := newTestModel(t, 80, 20, snap)
	if out := stripANSI(m.renderHeader()); !strings.Contains(out, "2 records  loaded 12:03") {
		t.Fatalf("header = %q, want record count and load time", out)
	}
}

func TestModel_FailedLoadShowsStatus(t *testing.T) {
	snap := state.Snapshot{Loaded: true, LastError: errors.New("source returned status 500")}
	m := newTestModel(t, 100, 20, snap)

	out := stripANSI(m.View())
	if !strings.Contains(out, "Load failed: source returned status 500") {
		t.Fatalf("status line missing failure:\n%s", out)
	}

	m = typeText(t, m, "a")
	if out = stripANSI(m.View()); !strings.Contains(out, "No card found") {
		t.Fatalf("empty set should report no card:\n%s", out)
	}
}

func TestModel_LoadingStatus(t *testing.T) {
	m := New(Options{
		Load:   func(context.Context) state.Snapshot { return state.Snapshot{} },
		Source: "https://example.test/users",
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 20})
	if out := stripANSI(m.View()); !strings.Contains(out, "Loading records from https://example.test/users") {
		t.Fatalf("missing loading status:\n%s", out)
	}
}

func TestModel_RecordCount(t *testing.T) {
	m := newTestModel(t, 80, 20, loadedSnapshot())
	if out := stripANSI(m.View()); !strings.Contains(out, "2 records") {
		t.Fatalf("missing record count:\n%s", out)
	}
	m = typeText(t, m, "o")
	if out := stripANSI(m.View()); !strings.Contains(out, "2 of 2 cards") {
		t.Fatalf("missing match summary:\n%s", out)
	}
}

func TestModel_HelpOverlaySwallowsKey(t *testing.T) {
	m := newTestModel(t, 80, 30, loadedSnapshot())
	m = pressKey(t, m, tea.KeyF1)
	if !m.showHelp {
		t.Fatalf("f1 should open help")
	}
	if out := stripANSI(m.View()); !strings.Contains(out, "Keyboard Shortcuts") {
		t.Fatalf("help overlay not rendered:\n%s", out)
	}
	m = typeText(t, m, "x")
	if m.showHelp || m.input.Value() != "" {
		t.Fatalf("closing key leaked: showHelp=%v query=%q", m.showHelp, m.input.Value())
	}
}

func TestModel_CycleThemeSavesPrefs(t *testing.T) {
	m := newTestModel(t, 80, 30, loadedSnapshot())
	start := m.theme.Name

	m = pressKey(t, m, tea.KeyCtrlT)
	if m.theme.Name != NextTheme(start) {
		t.Fatalf("theme = %q, want %q", m.theme.Name, NextTheme(start))
	}

	p, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if p.Theme != m.theme.Name {
		t.Fatalf("saved theme = %q, want %q", p.Theme, m.theme.Name)
	}
	if !p.Mouse {
		t.Fatalf("saving theme should keep mouse enabled")
	}
}

func TestModel_DiagnosticsShowsLogTail(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "cardsearch.log")
	content := "level=INFO msg=starting\nlevel=ERROR msg=\"record load failed\"\n"
	if err := os.WriteFile(logPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	m := New(Options{LogPath: logPath, PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyF2})
	if !m.showDiagnostics || cmd == nil {
		t.Fatalf("f2 should open diagnostics and read the log")
	}
	m = update(t, m, cmd())
	if len(m.diagnostics) != 2 || m.diagnostics[1].Level != "ERROR" {
		t.Fatalf("diagnostics = %+v", m.diagnostics)
	}
	if out := stripANSI(m.View()); !strings.Contains(out, "record load failed") {
		t.Fatalf("diagnostics overlay missing log line:\n%s", out)
	}

	m = pressKey(t, m, tea.KeyEsc)
	if m.showDiagnostics {
		t.Fatalf("esc should close diagnostics")
	}
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(t, 80, 30, loadedSnapshot())
	_, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c cmd did not return QuitMsg")
	}
}
