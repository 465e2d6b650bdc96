package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cardsearch/internal/logtail"
)

type diagnosticsMsg struct {
	entries []logtail.Entry
	err     error
}

func readDiagnosticsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return diagnosticsMsg{}
		}
		entries, err := logtail.Read(path, diagnosticsLines)
		return diagnosticsMsg{entries: entries, err: err}
	}
}

// renderDiagnostics renders the tail of the log file as an overlay. This is
// where a failed record load becomes visible in detail.
func (m Model) renderDiagnostics() string {
	styles := m.theme.Styles()
	width := min(m.width-4, overlayMaxWidth)
	inner := max(width-6, 10) // border and padding
	rows := max(m.height-8, 1)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Log"))
	if m.logPath != "" {
		b.WriteString(" ")
		b.WriteString(styles.FaintText.Render(truncate(m.logPath, inner-4)))
	}
	b.WriteString("\n")
	b.WriteString(styles.Rule.Render(strings.Repeat("─", inner)))
	b.WriteString("\n")

	switch {
	case m.diagnosticsErr != nil:
		b.WriteString(styles.DangerText.Render(truncate(firstLine(m.diagnosticsErr.Error()), inner)))
	case m.logPath == "":
		b.WriteString(styles.MutedText.Render("Logging is disabled"))
	case len(m.diagnostics) == 0:
		b.WriteString(styles.MutedText.Render("Nothing logged yet"))
	default:
		entries := m.diagnostics
		if len(entries) > rows {
			entries = entries[len(entries)-rows:]
		}
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, styles.LevelStyle(e.Level).Render(truncate(e.Line, inner)))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("f2/esc to close"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(width - 2)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
