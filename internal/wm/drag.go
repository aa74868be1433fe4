package wm

import "github.com/redox-os/orbital/internal/window"

// DragMode identifies which decoration element is being dragged.
type DragMode int

const (
	DragNone DragMode = iota
	DragTitle
	DragLeftBorder
	DragRightBorder
	DragBottomBorder
	DragBottomLeftBorder
	DragBottomRightBorder
)

// Drag is the in-progress pointer-drag state machine for moving and
// resizing windows via their decoration (§4.H). OffsetX/Y capture the
// pointer's position relative to the window's origin (for Title) or
// relative to the dragged edge (for the border modes) at drag start, so
// subsequent mouse-move deltas can be applied without drift.
type Drag struct {
	Active   bool
	Mode     DragMode
	WindowID int
	OffsetX  int
	OffsetY  int
}

// Begin starts a drag of kind mode on w, capturing the offsets needed to
// keep the dragged edge under the pointer for the rest of the gesture.
func (d *Drag) Begin(w *window.Window, mode DragMode, pointerX, pointerY int) {
	d.Active = true
	d.Mode = mode
	d.WindowID = w.ID
	switch mode {
	case DragTitle:
		d.OffsetX = pointerX - w.X
		d.OffsetY = pointerY - w.Y
	case DragLeftBorder:
		d.OffsetX = pointerX - w.X
	case DragRightBorder:
		d.OffsetX = pointerX - (w.X + w.W)
	case DragBottomBorder:
		d.OffsetY = pointerY - (w.Y + w.H)
	case DragBottomLeftBorder:
		d.OffsetX = pointerX - w.X
		d.OffsetY = pointerY - (w.Y + w.H)
	case DragBottomRightBorder:
		d.OffsetX = pointerX - (w.X + w.W)
		d.OffsetY = pointerY - (w.Y + w.H)
	}
}

func (d *Drag) End() {
	*d = Drag{}
}

// Apply advances the active drag given the pointer's new absolute
// position, mutating w's geometry in place. Left/top-edge drags update
// w.X/w.Y immediately regardless of whether the client ever acknowledges
// the resulting Resize event (§ Open Questions: edge-resize server
// state on a client-ignored Resize); width/height changes are only
// committed once the client writes back an S,<w>,<h> command, handled by
// onResize below when that arrives mid-drag.
func (d *Drag) Apply(w *window.Window, pointerX, pointerY int) {
	if !d.Active || d.WindowID != w.ID {
		return
	}
	switch d.Mode {
	case DragTitle:
		w.X = pointerX - d.OffsetX
		w.Y = pointerY - d.OffsetY
	case DragLeftBorder:
		newX := pointerX - d.OffsetX
		w.W += w.X - newX
		w.X = newX
	case DragRightBorder:
		w.W = pointerX - d.OffsetX - w.X
	case DragBottomBorder:
		w.H = pointerY - d.OffsetY - w.Y
	case DragBottomLeftBorder:
		newX := pointerX - d.OffsetX
		w.W += w.X - newX
		w.X = newX
		w.H = pointerY - d.OffsetY - w.Y
	case DragBottomRightBorder:
		w.W = pointerX - d.OffsetX - w.X
		w.H = pointerY - d.OffsetY - w.Y
	}
	if w.W < 1 {
		w.W = 1
	}
	if w.H < 1 {
		w.H = 1
	}
}

// onResize is called when the dragged window's client sends an S,<w>,<h>
// write mid-drag (a "resize races reposition", SUPPLEMENTED FEATURES):
// the drag continues uninterrupted from the new size rather than being
// canceled.
func (d *Drag) onResize(w *window.Window) {
	// w.W/w.H were already updated by the S,<w>,<h> handler; nothing
	// else to reconcile since Apply always recomputes from the current
	// pointer position and captured offsets, not from a cached size.
}
