package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cardsearch/internal/search"
)

// cardLayout records where each card sits in the list content so mouse
// events and scroll targets can be mapped back to card indexes.
type cardLayout struct {
	tops    []int
	heights []int
	width   int
	total   int
}

// hit returns the card index covering content position (x, y), or -1.
func (l cardLayout) hit(x, y int) int {
	if x < 0 || x >= l.width || y < 0 {
		return -1
	}
	for i, top := range l.tops {
		if y >= top && y < top+l.heights[i] {
			return i
		}
	}
	return -1
}

// centerOffset returns the list offset that puts card i in the middle of a
// view viewHeight rows tall, clamped to the scrollable range.
func (l cardLayout) centerOffset(i, viewHeight int) int {
	if i < 0 || i >= len(l.tops) {
		return 0
	}
	target := l.tops[i] + l.heights[i]/2 - viewHeight/2
	maxOffset := max(l.total-viewHeight, 0)
	return min(max(target, 0), maxOffset)
}

// renderCards renders every match in the current view as a bordered card.
func (m Model) renderCards(width int) (string, cardLayout) {
	layout := cardLayout{width: width}
	if m.view.Len() == 0 || width < 6 {
		return "", layout
	}

	cards := make([]string, 0, m.view.Len())
	y := 0
	for i, match := range m.view.Matches {
		card := m.renderCard(match, width, m.nav.IsSelected(i))
		h := lipgloss.Height(card)
		layout.tops = append(layout.tops, y)
		layout.heights = append(layout.heights, h)
		y += h
		cards = append(cards, card)
	}
	layout.total = y
	return strings.Join(cards, "\n"), layout
}

// renderCard renders one card. Every field passes through the highlighter so
// query occurrences stand out wherever they appear.
func (m Model) renderCard(match search.Match, width int, selected bool) string {
	styles := m.theme.Styles()
	q := m.view.Query
	inner := width - 4 // border and horizontal padding

	bgColor := m.theme.SurfaceAlt
	borderColor := m.theme.Border
	idStyle := styles.AccentText.Bold(true)
	textStyle := styles.Text
	mutedStyle := styles.MutedText
	if selected {
		bgColor = m.theme.SelectionBg
		borderColor = m.theme.BorderFocus
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		idStyle = selText.Bold(true)
		textStyle = selText
		mutedStyle = selText
	}
	bg := NewBgStyle(bgColor)
	mark := NewBgStyle(m.theme.Highlight)

	field := func(value string, style lipgloss.Style) string {
		value = truncate(value, inner)
		return bg.Highlighted(search.Highlight(value, q), style, styles.Match, mark)
	}

	lines := []string{
		field(match.Record.ID, idStyle),
		field(match.Record.Name, textStyle),
	}
	if match.FoundItem != "" {
		const suffix = " found in items"
		found := truncate(match.FoundItem, max(inner-len(suffix), 1))
		lines = append(lines,
			bg.Highlighted(search.Highlight(found, q), mutedStyle, styles.Match, mark)+
				bg.Render(suffix, mutedStyle.Italic(true)))
	}
	lines = append(lines,
		field(match.Record.Address, textStyle),
		field(match.Record.Pincode, mutedStyle),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		BorderBackground(lipgloss.Color(m.theme.Background)).
		Background(lipgloss.Color(bgColor)).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}
