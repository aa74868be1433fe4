// Package wm implements the window-manager policy layer sitting between
// the scheme protocol and the compositor: window lifecycle, focus and
// z-order, drag/resize gestures, modifier tracking, and the Super-key
// shortcut table (§4.H).
package wm

import (
	"github.com/sirupsen/logrus"

	"github.com/redox-os/orbital/internal/clipboard"
	"github.com/redox-os/orbital/internal/compositor"
	"github.com/redox-os/orbital/internal/geom"
	"github.com/redox-os/orbital/internal/scheme"
	"github.com/redox-os/orbital/internal/window"
)

// Display is the subset of display geometry the manager needs for
// auto-centering and tile-target selection, kept narrow to avoid an
// import of internal/display (which would create an import cycle with
// internal/compositor, which wm also depends on).
type Display interface {
	ScreenRect() geom.Rect
}

// Manager owns every live window, the focus/z-order, drag/modifier
// state, and the clipboard buffer. It implements scheme.WindowManager.
type Manager struct {
	windows  map[int]*window.Window
	order    *window.Order
	nextID   int
	displays []Display
	clip     *clipboard.Buffer
	comp     *compositor.Compositor
	log      *logrus.Entry

	drag Drag

	modifiers    ModMask
	superHeld    bool
	overlay      overlayState
	legacyScript LegacyHandler

	volumePercent int
	muted         bool
	overlayGen    int
}

// LegacyHandler services the "unbound Super-key" fallback (§4.H,
// SUPPLEMENTED FEATURES): a user-scriptable hook invoked with the raw
// key code plus the current lowest-numbered window id.
type LegacyHandler interface {
	HandleUnboundSuperKey(code int64, lowestWindowID int) error
}

type overlayState int

const (
	overlayNone overlayState = iota
	overlayWindowList
	overlayVolume
	overlayShortcuts
)

func NewManager(displays []Display, comp *compositor.Compositor, clip *clipboard.Buffer, legacy LegacyHandler, log *logrus.Entry) *Manager {
	return &Manager{
		windows:       make(map[int]*window.Window),
		order:         window.NewOrder(),
		nextID:        1,
		displays:      displays,
		clip:          clip,
		comp:          comp,
		legacyScript:  legacy,
		log:           log,
		volumePercent: 50,
	}
}

// NewWindow creates a window from spec, auto-centering on the first
// display if either coordinate is negative (spec.AutoCenter), and re-derives the z-buffer
// immediately so hit-testing sees it right away (§4.G window_new).
func (m *Manager) NewWindow(spec scheme.OpenSpec) (int, error) {
	x, y := spec.X, spec.Y
	if spec.AutoCenter && len(m.displays) > 0 {
		r := m.displays[0].ScreenRect()
		x = r.X + (r.W-spec.W)/2
		y = r.Y + (r.H-spec.H)/2
	}

	id := m.allocID()
	zorder := window.Normal
	w := window.New(id, x, y, spec.W, spec.H, spec.Title, zorder, spec.Flags)
	m.windows[id] = w
	m.order.Add(id, zorder)
	m.rezbuffer()
	m.damageWindow(w)
	return id, nil
}

// allocID assigns the next window id, wrapping back to 1 rather than
// going negative, matching the original's next_id overflow handling. No
// liveness check is performed on wraparound collision (§ Open Questions).
func (m *Manager) allocID() int {
	id := m.nextID
	m.nextID++
	if m.nextID < 0 {
		m.nextID = 1
	}
	return id
}

func (m *Manager) Window(id int) (*window.Window, bool) {
	w, ok := m.windows[id]
	return w, ok
}

func (m *Manager) CloseWindow(id int) {
	w, ok := m.windows[id]
	if !ok {
		return
	}
	if w.HasFlag(window.FlagUnclosable) {
		return
	}
	delete(m.windows, id)
	m.order.Remove(id)
	m.clip.Forget(id)
	m.rezbuffer()
	m.damageWindow(w)
}

// ApplyWrite dispatches one write-command string to window id, per the
// wire grammar: "T,<title>" retitle, "S,<w>,<h>" resize,
// "P,<x>,<y>" move, "F,<flag>,<0|1>" flag toggle.
func (m *Manager) ApplyWrite(id int, cmd string) error {
	w, ok := m.windows[id]
	if !ok {
		return scheme.ErrBadDescriptor("wm: write to closed window")
	}
	return applyWriteCommand(w, cmd, m)
}

func (m *Manager) RequestRedraw() {
	m.rezbuffer()
	// Redraw itself is pumped by the event loop; this just guarantees
	// any pending geometry change is reflected in the next PaintOrder.
}

func (m *Manager) ClipboardRead(id int, _ int) (string, error) {
	return m.clip.Read(id), nil
}

func (m *Manager) ClipboardWrite(id int, data string) error {
	m.clip.Write(id, data)
	return nil
}

// WindowInfo is one row of the admin window listing (cmd/orbitalctl).
type WindowInfo struct {
	ID    int
	Title string
}

// ListWindows returns every open window in focus order, for
// administrative tooling.
func (m *Manager) ListWindows() []WindowInfo {
	out := make([]WindowInfo, 0, len(m.windows))
	for _, id := range m.order.FocusOrder() {
		if w, ok := m.windows[id]; ok {
			out = append(out, WindowInfo{ID: id, Title: w.Title})
		}
	}
	return out
}

// ForceTile tiles windowID to the full extent of its most-overlapped
// display regardless of current focus, the administrative equivalent of
// Super-M/Super-Enter (toggle maximize) on that specific window. Like the
// keyboard shortcut, a call while a Restore is already pinned restores
// instead of re-tiling.
func (m *Manager) ForceTile(windowID int) error {
	w, ok := m.windows[windowID]
	if !ok {
		return scheme.ErrBadDescriptor("wm: force-tile on unknown window")
	}
	if w.Restore != nil {
		m.doRestore(w)
		return nil
	}
	idx, ok := m.getDisplayIndex(w.Rect())
	if !ok {
		return scheme.ErrInvalidArgument("wm: no display to tile against")
	}
	screen := m.displays[idx].ScreenRect()
	r := geom.New(w.X, w.Y, w.W, w.H)
	w.Restore = &r
	w.X, w.Y, w.W, w.H = screen.X, screen.Y, screen.W, screen.H
	w.SetFlag(window.FlagMaximized, true)
	w.PushEvent(screenEvent(w.W, w.H))
	m.damageWindow(w)
	return nil
}

// PaintOrder implements compositor.WindowSource.
func (m *Manager) PaintOrder() []struct {
	ID      int
	Focused bool
} {
	return m.order.IterBackToFront()
}

func (m *Manager) rezbuffer() {
	m.order.Rezbuffer(func(id int) window.ZOrder {
		if w, ok := m.windows[id]; ok {
			return w.ZOrder
		}
		return window.Normal
	})
}

func (m *Manager) damageWindow(w *window.Window) {
	if m.comp != nil {
		m.comp.Damage(w.Rect())
	}
}

// lowestWindowID returns the smallest window id currently open, the
// target of the legacy unbound-Super-key fallback (§4.H); it is the
// literal lowest id, not the z-order-front window.
func (m *Manager) lowestWindowID() (int, bool) {
	best := 0
	found := false
	for id := range m.windows {
		if !found || id < best {
			best = id
			found = true
		}
	}
	return best, found
}
