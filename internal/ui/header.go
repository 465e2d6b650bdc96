package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the title bar: logo plus load status. It always
// fits on one row; the list below starts at headerHeight.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	inner := max(m.width-2, 1) // horizontal padding

	line := bg.Render(truncate("cardsearch", inner), styles.Logo)
	if limit := inner - lipgloss.Width(line) - 2; limit > 0 {
		line += bg.Space() + bg.Space() + m.renderLoadStatus(bg, limit)
	}
	return styles.Header.Width(m.width).Render(line)
}

// renderLoadStatus describes the record set in at most limit columns:
// loading, failed, or its size and load time.
func (m Model) renderLoadStatus(bg BgStyle, limit int) string {
	styles := m.theme.Styles()
	switch {
	case m.loading:
		return bg.Render(truncate("Loading records from "+m.source, limit), styles.WarningText)
	case m.snapshot.Failed():
		const hint = "  (f2 for log)"
		msg := "Load failed: " + firstLine(m.snapshot.LastError.Error())
		if limit < len(hint)+10 {
			return bg.Render(truncate(msg, limit), styles.DangerText)
		}
		return bg.Render(truncate(msg, limit-len(hint)), styles.DangerText) + bg.Render(hint, styles.FaintText)
	default:
		count := pluralize(len(m.snapshot.Records), "record", "records")
		if len(count) > limit {
			return bg.Render(truncate(count, limit), styles.SuccessText)
		}
		out := bg.Render(count, styles.SuccessText)
		if !m.snapshot.LoadedAt.IsZero() {
			loaded := "  loaded " + m.snapshot.LoadedAt.Format("15:04")
			if len(count)+len(loaded) <= limit {
				out += bg.Render(loaded, styles.MutedText)
			}
		}
		return out
	}
}

// renderInput renders the query input bar.
func (m Model) renderInput() string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.FocusBg)).
		Width(m.width).
		Render(m.input.View())
}

// renderSummary renders the line under the input: match count and selection.
func (m Model) renderSummary() string {
	styles := m.theme.Styles()
	inner := max(m.width-2, 1)
	line := ""
	if m.view.Active() && m.view.Len() > 0 {
		count := fmt.Sprintf("%d of %s", m.view.Len(), pluralize(len(m.snapshot.Records), "card", "cards"))
		line = styles.MutedText.Render(truncate(count, inner))
		if i, ok := m.nav.Selected(); ok {
			pos := fmt.Sprintf("  ·  card %d", i+1)
			if lipgloss.Width(count+pos) <= inner {
				line += styles.FaintText.Render(pos)
			}
		}
	}
	return lipgloss.NewStyle().Padding(0, 1).Width(m.width).Render(line)
}

// renderFooter renders the short key hints.
func (m Model) renderFooter() string {
	return m.theme.Styles().Footer.Width(m.width).Render(m.help.View(m.keys))
}

// renderContent renders the list area: nothing useful without a query, a
// not-found message for an empty result, otherwise the cards.
func (m Model) renderContent() string {
	styles := m.theme.Styles()
	switch {
	case !m.view.Active():
		hint := styles.FaintText.Render(truncate("Type to search by id, name, address, pincode or item", m.width))
		return lipgloss.Place(m.width, m.list.Height, lipgloss.Center, lipgloss.Center, hint)
	case m.view.NotFound():
		msg := styles.MutedText.Render(truncate("No card found", m.width))
		return lipgloss.Place(m.width, m.list.Height, lipgloss.Center, lipgloss.Center, msg)
	default:
		return m.list.View()
	}
}
