package search

// Event is an input the Navigator reacts to.
type Event interface {
	isEvent()
}

// QueryChanged is sent after every query edit with the new view length.
type QueryChanged struct{ Len int }

// PointerEnter is sent when the pointer moves onto the card at Index.
type PointerEnter struct{ Index int }

// PointerLeave is sent when the pointer moves off the card at Index.
type PointerLeave struct{ Index int }

// PointerClick is sent when the card at Index is clicked.
type PointerClick struct{ Index int }

// Next selects the following card, wrapping to the first.
type Next struct{}

// Prev selects the preceding card, wrapping to the last.
type Prev struct{}

func (QueryChanged) isEvent() {}
func (PointerEnter) isEvent() {}
func (PointerLeave) isEvent() {}
func (PointerClick) isEvent() {}
func (Next) isEvent()         {}
func (Prev) isEvent()         {}

// Effect describes what the caller must do after a transition.
type Effect struct {
	// Consumed is set for directional input, which must not reach any other
	// key handler.
	Consumed bool

	// Scroll asks the caller to bring card ScrollTo into the middle of the
	// visible area.
	Scroll   bool
	ScrollTo int
}

// Navigator tracks which card, if any, is selected within a view of length n.
// The zero value is unselected over an empty view.
type Navigator struct {
	n        int
	index    int
	selected bool
}

// NewNavigator returns an unselected Navigator over n cards.
func NewNavigator(n int) Navigator {
	return Navigator{n: max(n, 0)}
}

// Selected returns the selected index, if any.
func (nv Navigator) Selected() (int, bool) {
	return nv.index, nv.selected
}

// IsSelected reports whether card i is the selected one.
func (nv Navigator) IsSelected(i int) bool {
	return nv.selected && nv.index == i
}

// Len returns the view length the Navigator is bound to.
func (nv Navigator) Len() int {
	return nv.n
}

// Apply returns the state after ev along with any side effect.
func (nv Navigator) Apply(ev Event) (Navigator, Effect) {
	switch ev := ev.(type) {
	case QueryChanged:
		return NewNavigator(ev.Len), Effect{}
	case PointerEnter:
		if nv.inRange(ev.Index) {
			return nv.selectAt(ev.Index), Effect{}
		}
	case PointerLeave:
		if nv.IsSelected(ev.Index) {
			return nv.clear(), Effect{}
		}
	case PointerClick:
		if nv.inRange(ev.Index) {
			return nv.selectAt(ev.Index), Effect{Scroll: true, ScrollTo: ev.Index}
		}
	case Next:
		return nv.step(1)
	case Prev:
		return nv.step(-1)
	}
	return nv, Effect{}
}

func (nv Navigator) step(dir int) (Navigator, Effect) {
	if nv.n == 0 {
		return nv, Effect{Consumed: true}
	}
	last := nv.n - 1
	next := -1
	if nv.selected {
		next = nv.index
	}
	next += dir
	switch {
	case next < 0:
		next = last
	case next > last:
		next = 0
	}
	return nv.selectAt(next), Effect{Consumed: true, Scroll: true, ScrollTo: next}
}

func (nv Navigator) inRange(i int) bool {
	return i >= 0 && i < nv.n
}

func (nv Navigator) selectAt(i int) Navigator {
	nv.index = i
	nv.selected = true
	return nv
}

func (nv Navigator) clear() Navigator {
	nv.index = 0
	nv.selected = false
	return nv
}
