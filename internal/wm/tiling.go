package wm

import (
	"github.com/redox-os/orbital/internal/geom"
	"github.com/redox-os/orbital/internal/window"
)

type tileKind int

const (
	tileFull tileKind = iota
	tileLeftHalf
	tileRightHalf
	tileTopHalf
	tileBottomHalf
)

// getDisplayIndex returns the display with the greatest intersection
// area against r, the same max-overlap heuristic the original uses to
// decide which display a tile command targets.
func (m *Manager) getDisplayIndex(r geom.Rect) (int, bool) {
	best := -1
	bestArea := int64(-1)
	for i, d := range m.displays {
		area := d.ScreenRect().Intersect(r).Area()
		if area > bestArea {
			bestArea = area
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// tileFrontWindow tiles the focused window against whichever display it
// most overlaps, saving its pre-tile geometry in Restore. On a
// subsequent call while a Restore is already pinned, it restores that
// geometry and clears it instead of tiling again — the same shortcut
// toggles a window between tiled and its previous rect (§4.H
// tile_window).
func (m *Manager) tileFrontWindow(kind tileKind) {
	id, ok := m.order.Focused()
	if !ok {
		return
	}
	w, ok := m.windows[id]
	if !ok {
		return
	}
	if w.Restore != nil {
		m.doRestore(w)
		return
	}
	idx, ok := m.getDisplayIndex(w.Rect())
	if !ok {
		return
	}
	screen := m.displays[idx].ScreenRect()

	r := geom.New(w.X, w.Y, w.W, w.H)
	w.Restore = &r

	switch kind {
	case tileFull:
		w.X, w.Y, w.W, w.H = screen.X, screen.Y, screen.W, screen.H
		w.SetFlag(window.FlagMaximized, true)
	case tileLeftHalf:
		w.X, w.Y, w.W, w.H = screen.X, screen.Y, screen.W/2, screen.H
	case tileRightHalf:
		w.X, w.Y, w.W, w.H = screen.X+screen.W/2, screen.Y, screen.W/2, screen.H
	case tileTopHalf:
		w.X, w.Y, w.W, w.H = screen.X, screen.Y, screen.W, screen.H/2
	case tileBottomHalf:
		w.X, w.Y, w.W, w.H = screen.X, screen.Y+screen.H/2, screen.W, screen.H/2
	}
	w.PushEvent(screenEvent(w.W, w.H))
	m.damageWindow(w)
}

func (m *Manager) doRestore(w *window.Window) {
	r := *w.Restore
	w.X, w.Y, w.W, w.H = r.X, r.Y, r.W, r.H
	w.Restore = nil
	w.SetFlag(window.FlagMaximized, false)
	w.PushEvent(screenEvent(w.W, w.H))
	m.damageWindow(w)
}

// moveFrontWindow nudges the focused window by (dx, dy) grid units,
// snapping to a 16px grid and clamping to stay within its display
// (§4.H move_front_window, GRID_SIZE=16).
const gridSize = 16

func (m *Manager) moveFrontWindow(dx, dy int) {
	id, ok := m.order.Focused()
	if !ok {
		return
	}
	w, ok := m.windows[id]
	if !ok {
		return
	}
	idx, ok := m.getDisplayIndex(w.Rect())
	if !ok {
		return
	}
	screen := m.displays[idx].ScreenRect()

	newX := ((w.X+dx*gridSize)/gridSize)*gridSize
	newY := ((w.Y+dy*gridSize)/gridSize)*gridSize

	if newX < screen.X {
		newX = screen.X
	}
	if newY < screen.Y {
		newY = screen.Y
	}
	if newX+w.W > screen.Right() {
		newX = screen.Right() - w.W
	}
	if newY+w.H > screen.Bottom() {
		newY = screen.Bottom() - w.H
	}

	w.X, w.Y = newX, newY
	m.damageWindow(w)
}
