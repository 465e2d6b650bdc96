package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// scrollState drives the animated scroll toward a selected card. Each
// animation gets a new generation so ticks left over from a cancelled one
// are ignored.
type scrollState struct {
	target    int
	animating bool
	gen       int
}

type scrollTickMsg struct {
	gen int
}

func scrollTickCmd(gen int) tea.Cmd {
	return tea.Tick(scrollFrame, func(time.Time) tea.Msg {
		return scrollTickMsg{gen: gen}
	})
}

// scrollTo starts, or retargets, an animated scroll that centers card i.
func (m *Model) scrollTo(i int) tea.Cmd {
	m.scroll.target = m.layout.centerOffset(i, m.list.Height)
	if m.list.YOffset == m.scroll.target {
		m.stopScroll()
		return nil
	}
	if m.scroll.animating {
		// A tick is already pending; it picks up the new target.
		return nil
	}
	m.scroll.gen++
	m.scroll.animating = true
	return scrollTickCmd(m.scroll.gen)
}

// stepScroll advances the animation by one frame.
func (m *Model) stepScroll(msg scrollTickMsg) tea.Cmd {
	if !m.scroll.animating || msg.gen != m.scroll.gen {
		return nil
	}
	cur := m.list.YOffset
	m.list.SetYOffset(easeStep(cur, m.scroll.target))
	if m.list.YOffset == m.scroll.target || m.list.YOffset == cur {
		m.scroll.animating = false
		return nil
	}
	return scrollTickCmd(m.scroll.gen)
}

// stopScroll cancels any running animation. Manual scrolling wins over it.
func (m *Model) stopScroll() {
	m.scroll.animating = false
	m.scroll.gen++
}

// easeStep moves cur a fraction of the way to target, at least one row.
func easeStep(cur, target int) int {
	diff := target - cur
	if diff == 0 {
		return cur
	}
	step := diff / scrollEase
	if step == 0 {
		if diff > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	return cur + step
}
