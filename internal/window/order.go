package window

import "sort"

// zEntry is one slot in the derived z-buffer: a window id, its plane,
// and whether it currently holds focus.
type zEntry struct {
	id      int
	zorder  ZOrder
	focused bool
}

// Order tracks focus recency (a deque, front = most recently focused)
// and derives a paint/hit-test order from it each frame. Ported from the
// original's WindowOrder: a focus_order deque plus a zbuffer rebuilt by a
// stable sort on zorder whenever Rezbuffer is called.
type Order struct {
	focusOrder []int
	zbuffer    []zEntry
}

func NewOrder() *Order {
	return &Order{}
}

// Add inserts id into the focus order: front/normal windows are pushed
// to the front (freshly opened windows start focused), back windows are
// pushed to the rear (never steal focus on creation).
func (o *Order) Add(id int, zorder ZOrder) {
	switch zorder {
	case Front, Normal:
		o.focusOrder = append([]int{id}, o.focusOrder...)
	case Back:
		o.focusOrder = append(o.focusOrder, id)
	}
}

// Remove drops id from the focus order.
func (o *Order) Remove(id int) {
	out := o.focusOrder[:0]
	for _, e := range o.focusOrder {
		if e != id {
			out = append(out, e)
		}
	}
	o.focusOrder = out
}

// MakeFocused moves id to the front of the focus order. Panics if id is
// not present, matching the original's unwrap — a caller asking to focus
// an unknown window is a programming error, not a recoverable one.
func (o *Order) MakeFocused(id int) {
	idx := indexOf(o.focusOrder, id)
	if idx < 0 {
		panic("window: MakeFocused on unknown id")
	}
	o.focusOrder = append(o.focusOrder[:idx], o.focusOrder[idx+1:]...)
	o.focusOrder = append([]int{id}, o.focusOrder...)
}

// Rezbuffer rebuilds the z-buffer from the current focus order, calling
// zorderOf to fetch each window's plane, then stable-sorting descending
// by plane (Front first) so that within a plane, focus recency is
// preserved.
func (o *Order) Rezbuffer(zorderOf func(id int) ZOrder) {
	o.zbuffer = o.zbuffer[:0]
	for i, id := range o.focusOrder {
		o.zbuffer = append(o.zbuffer, zEntry{id: id, zorder: zorderOf(id), focused: i == 0})
	}
	sort.SliceStable(o.zbuffer, func(i, j int) bool {
		return o.zbuffer[i].zorder > o.zbuffer[j].zorder
	})
}

// Focused returns the id at the front of the focus order, if any.
func (o *Order) Focused() (int, bool) {
	if len(o.focusOrder) == 0 {
		return 0, false
	}
	return o.focusOrder[0], true
}

// FocusOrder returns the focus order front-to-back.
func (o *Order) FocusOrder() []int {
	out := make([]int, len(o.focusOrder))
	copy(out, o.focusOrder)
	return out
}

// IterFrontToBack walks the z-buffer front (topmost) to back, the
// hit-testing order used by mouse/button handling.
func (o *Order) IterFrontToBack() []int {
	out := make([]int, len(o.zbuffer))
	for i, e := range o.zbuffer {
		out[i] = e.id
	}
	return out
}

// IterBackToFront walks the z-buffer back to front, the paint order used
// by redraw, alongside each entry's focused flag.
func (o *Order) IterBackToFront() []struct {
	ID      int
	Focused bool
} {
	out := make([]struct {
		ID      int
		Focused bool
	}, len(o.zbuffer))
	for i := range o.zbuffer {
		e := o.zbuffer[len(o.zbuffer)-1-i]
		out[i] = struct {
			ID      int
			Focused bool
		}{e.id, e.focused}
	}
	return out
}

func indexOf(s []int, v int) int {
	for i, e := range s {
		if e == v {
			return i
		}
	}
	return -1
}
