package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cardsearch/internal/logtail"
	"github.com/five82/cardsearch/internal/prefs"
	"github.com/five82/cardsearch/internal/search"
	"github.com/five82/cardsearch/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Load      func(context.Context) state.Snapshot
	Logger    *slog.Logger
	LogPath   string
	Source    string
	ThemeName string
	Mouse     bool
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	load      func(context.Context) state.Snapshot
	logger    *slog.Logger
	logPath   string
	source    string
	prefsPath string
	mouse     bool

	// UI state
	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int
	ready  bool

	// Query and results
	input    textinput.Model
	list     viewport.Model
	snapshot state.Snapshot
	loading  bool
	view     search.View
	nav      search.Navigator
	layout   cardLayout
	scroll   scrollState
	hovered  int

	// Overlays
	showHelp        bool
	showDiagnostics bool
	diagnostics     []logtail.Entry
	diagnosticsErr  error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "Search cards"
	input.CharLimit = queryCharLimit
	input.Focus()

	m := Model{
		ctx:       ctx,
		load:      opts.Load,
		logger:    logger,
		logPath:   opts.LogPath,
		source:    opts.Source,
		prefsPath: prefsPath,
		mouse:     opts.Mouse,
		theme:     GetTheme(opts.ThemeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     input,
		loading:   opts.Load != nil,
		nav:       search.NewNavigator(0),
		hovered:   -1,
	}
	m.applyInputTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.load != nil {
		cmds = append(cmds, loadCmd(m.ctx, m.load))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case loadedMsg:
		m.snapshot = state.Snapshot(msg)
		m.loading = false
		m.applyQuery()
		return m, nil

	case scrollTickMsg:
		return m, m.stepScroll(msg)

	case diagnosticsMsg:
		m.diagnostics = msg.entries
		m.diagnosticsErr = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.showDiagnostics {
		return m.renderDiagnostics()
	}

	return m.renderMain()
}

// handleKey processes keyboard input. Bound keys are handled here; anything
// else edits the query.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.showDiagnostics {
		if key.Matches(msg, m.keys.Diagnostics, m.keys.Clear) {
			m.showDiagnostics = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Diagnostics):
		m.showDiagnostics = true
		return m, readDiagnosticsCmd(m.logPath)

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		cmd, _ := m.navigate(search.Next{})
		return m, cmd

	case key.Matches(msg, m.keys.Prev):
		cmd, _ := m.navigate(search.Prev{})
		return m, cmd

	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-max(m.list.Height-1, 1))
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(max(m.list.Height-1, 1))
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		if m.input.Value() != "" {
			m.input.SetValue("")
			m.applyQuery()
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.applyQuery()
	}
	return m, cmd
}

// applyQuery refilters the full record set against the input and resets the
// selection.
func (m *Model) applyQuery() {
	m.view = search.Filter(m.snapshot.Records, search.NewQuery(m.input.Value()))
	m.nav, _ = m.nav.Apply(search.QueryChanged{Len: m.view.Len()})
	m.hovered = -1
	m.stopScroll()
	m.list.GotoTop()
	m.refreshList()
	m.logger.Debug("query applied", "query", m.view.Query.Raw, "matches", m.view.Len())
}

// navigate feeds ev to the navigator and redraws. It reports whether the
// event was consumed and returns the scroll animation when one is needed.
func (m *Model) navigate(ev search.Event) (tea.Cmd, bool) {
	var eff search.Effect
	m.nav, eff = m.nav.Apply(ev)
	m.refreshList()
	if eff.Scroll {
		return m.scrollTo(eff.ScrollTo), eff.Consumed
	}
	return nil, eff.Consumed
}

// refreshList re-renders the cards into the list viewport.
func (m *Model) refreshList() {
	if !m.ready {
		return
	}
	content, layout := m.renderCards(m.width)
	m.layout = layout
	offset := m.list.YOffset
	m.list.SetContent(content)
	m.list.SetYOffset(offset)
}

// resize lays the screen out for a new terminal size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	listHeight := max(height-headerHeight-footerHeight, 1)
	if !m.ready {
		m.list = viewport.New(width, listHeight)
		m.list.MouseWheelEnabled = false
		m.ready = true
	} else {
		m.list.Width = width
		m.list.Height = listHeight
	}
	m.input.Width = max(width-lipgloss.Width(m.input.Prompt)-2, 1)
	m.help.Width = max(width-2, 1) // footer padding
	m.refreshList()
}

// cycleTheme switches to the next theme and remembers it.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyInputTheme()
	m.refreshList()
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Mouse: m.mouse}); err != nil {
		m.logger.Warn("save prefs", "path", m.prefsPath, "err", err)
	}
}

// applyInputTheme restyles the query input for the current theme.
func (m *Model) applyInputTheme() {
	bg := lipgloss.Color(m.theme.FocusBg)
	m.input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent)).Background(bg)
	m.input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text)).Background(bg)
	m.input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint)).Background(bg)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Mouse hit-testing relies on these rows being exactly headerHeight.
	row := lipgloss.NewStyle().MaxHeight(1)
	b.WriteString(row.Render(m.renderHeader()))
	b.WriteString("\n")
	b.WriteString(row.Render(m.renderInput()))
	b.WriteString("\n")
	b.WriteString(row.Render(m.renderSummary()))
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// Messages

type loadedMsg state.Snapshot

// Commands

func loadCmd(ctx context.Context, load func(context.Context) state.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg(load(ctx))
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	opts.Context = ctx
	m := New(opts)

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	if ctx.Err() != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled)) {
		return nil
	}
	return err
}
