package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/cardsearch/internal/search"
)

// handleMouse turns terminal mouse reports into pointer events. Motion onto a
// card is an enter, motion off the last hovered card is a leave, and a left
// press is a click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.ready || m.showHelp || m.showDiagnostics {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-wheelLines)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(wheelLines)
		return m, nil
	}

	idx := m.cardAt(msg.X, msg.Y)
	if idx != m.hovered {
		if m.hovered >= 0 {
			m.navigate(search.PointerLeave{Index: m.hovered})
		}
		if idx >= 0 {
			m.navigate(search.PointerEnter{Index: idx})
		}
		m.hovered = idx
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && idx >= 0 {
		cmd, _ := m.navigate(search.PointerClick{Index: idx})
		return m, cmd
	}
	return m, nil
}

// cardAt maps a screen position to a card index, or -1.
func (m Model) cardAt(x, y int) int {
	if y < headerHeight || y >= headerHeight+m.list.Height {
		return -1
	}
	if !m.view.Active() || m.view.Len() == 0 {
		return -1
	}
	return m.layout.hit(x, y-headerHeight+m.list.YOffset)
}

// scrollBy moves the list by delta rows.
func (m *Model) scrollBy(delta int) {
	m.stopScroll()
	m.list.SetYOffset(m.list.YOffset + delta)
}
