package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selected(t *testing.T, nv Navigator) int {
	t.Helper()
	i, ok := nv.Selected()
	require.True(t, ok, "expected a selection")
	return i
}

func TestNavigator_InitialUnselected(t *testing.T) {
	var nv Navigator
	_, ok := nv.Selected()
	assert.False(t, ok)

	nv = NewNavigator(3)
	_, ok = nv.Selected()
	assert.False(t, ok)
	assert.Equal(t, 3, nv.Len())
	assert.Equal(t, 0, NewNavigator(-2).Len())
}

func TestNavigator_NextWraps(t *testing.T) {
	nv := NewNavigator(3)
	var eff Effect

	nv, eff = nv.Apply(Next{})
	assert.Equal(t, 0, selected(t, nv))
	assert.Equal(t, Effect{Consumed: true, Scroll: true, ScrollTo: 0}, eff)

	nv, _ = nv.Apply(Next{})
	nv, _ = nv.Apply(Next{})
	assert.Equal(t, 2, selected(t, nv))

	nv, eff = nv.Apply(Next{})
	assert.Equal(t, 0, selected(t, nv))
	assert.Equal(t, 0, eff.ScrollTo)
}

func TestNavigator_PrevWraps(t *testing.T) {
	nv := NewNavigator(3)
	var eff Effect

	nv, eff = nv.Apply(Prev{})
	assert.Equal(t, 2, selected(t, nv))
	assert.True(t, eff.Scroll)
	assert.Equal(t, 2, eff.ScrollTo)

	nv, _ = nv.Apply(Prev{})
	nv, _ = nv.Apply(Prev{})
	assert.Equal(t, 0, selected(t, nv))

	nv, _ = nv.Apply(Prev{})
	assert.Equal(t, 2, selected(t, nv))
}

func TestNavigator_SingleCard(t *testing.T) {
	nv := NewNavigator(1)
	nv, _ = nv.Apply(Next{})
	nv, _ = nv.Apply(Next{})
	assert.Equal(t, 0, selected(t, nv))
	nv, _ = nv.Apply(Prev{})
	assert.Equal(t, 0, selected(t, nv))
}

func TestNavigator_EmptyViewIgnoresDirection(t *testing.T) {
	nv := NewNavigator(0)
	for _, ev := range []Event{Next{}, Prev{}} {
		next, eff := nv.Apply(ev)
		_, ok := next.Selected()
		assert.False(t, ok)
		assert.True(t, eff.Consumed, "directional keys are consumed even when ignored")
		assert.False(t, eff.Scroll)
	}
}

func TestNavigator_QueryChangedResets(t *testing.T) {
	nv := NewNavigator(4)
	nv, _ = nv.Apply(PointerClick{Index: 3})
	require.Equal(t, 3, selected(t, nv))

	nv, eff := nv.Apply(QueryChanged{Len: 2})
	_, ok := nv.Selected()
	assert.False(t, ok)
	assert.Equal(t, 2, nv.Len())
	assert.Equal(t, Effect{}, eff)

	// Same length, still resets.
	nv, _ = nv.Apply(Next{})
	nv, _ = nv.Apply(QueryChanged{Len: 2})
	_, ok = nv.Selected()
	assert.False(t, ok)
}

func TestNavigator_Pointer(t *testing.T) {
	nv := NewNavigator(3)

	nv, eff := nv.Apply(PointerEnter{Index: 1})
	assert.Equal(t, 1, selected(t, nv))
	assert.Equal(t, Effect{}, eff)

	// Leaving a card that is not selected changes nothing.
	nv, _ = nv.Apply(PointerLeave{Index: 2})
	assert.Equal(t, 1, selected(t, nv))

	nv, _ = nv.Apply(PointerLeave{Index: 1})
	_, ok := nv.Selected()
	assert.False(t, ok)

	nv, eff = nv.Apply(PointerClick{Index: 2})
	assert.Equal(t, 2, selected(t, nv))
	assert.Equal(t, Effect{Scroll: true, ScrollTo: 2}, eff)

	// Out of range pointer events are ignored.
	nv, eff = nv.Apply(PointerEnter{Index: 5})
	assert.Equal(t, 2, selected(t, nv))
	nv, eff = nv.Apply(PointerClick{Index: -1})
	assert.Equal(t, 2, selected(t, nv))
	assert.False(t, eff.Scroll)
}

// The selection index always stays inside the bound view, whatever the
// sequence of events.
func TestNavigator_SelectionAlwaysInRange(t *testing.T) {
	events := []Event{
		Next{}, Next{}, Prev{}, PointerEnter{Index: 7}, PointerClick{Index: 4},
		QueryChanged{Len: 2}, Prev{}, Prev{}, Prev{}, PointerLeave{Index: 0},
		QueryChanged{Len: 0}, Next{}, QueryChanged{Len: 5}, PointerEnter{Index: 4}, Next{},
	}
	nv := NewNavigator(5)
	for step, ev := range events {
		nv, _ = nv.Apply(ev)
		if i, ok := nv.Selected(); ok {
			assert.GreaterOrEqual(t, i, 0, "step %d", step)
			assert.Less(t, i, nv.Len(), "step %d", step)
		}
	}
}
