package wm

import (
	"github.com/redox-os/orbital/internal/geom"
	"github.com/redox-os/orbital/internal/protocol"
	"github.com/redox-os/orbital/internal/window"
)

// ModMask tracks currently-held modifier keys as a bitmask.
type ModMask int

const (
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Key codes relevant to shortcut dispatch; display/input backends
// translate raw scancodes into these before calling KeyEvent.
const (
	KeyShift  int64 = 1
	KeyCtrl   int64 = 2
	KeyAlt    int64 = 3
	KeySuper  int64 = 4
	KeyTab    int64 = 5
	KeyUp     int64 = 6
	KeyDown   int64 = 7
	KeyLeft   int64 = 8
	KeyRight  int64 = 9
	KeyQ      int64 = 10
	KeyEscape int64 = 11

	// Volume shortcuts (Super-{ / Super-} / Super-\, §4.H shortcut table).
	// orbital has no audio subsystem of its own; these track a WM-local
	// percentage and drive the volume OSD only, the same way a window
	// manager's volume indicator doesn't itself own the mixer.
	KeyVolumeDown int64 = 12
	KeyVolumeUp   int64 = 13
	KeyVolumeMute int64 = 14

	// Maximize (Super-M / Super-Enter) and clipboard (Super-C/X/V),
	// §4.H shortcut table.
	KeyM     int64 = 15
	KeyEnter int64 = 16
	KeyC     int64 = 17
	KeyX     int64 = 18
	KeyV     int64 = 19
)

func screenEvent(w, h int) protocol.Event {
	return protocol.Event{Code: protocol.KindScreen, A: int64(w), B: int64(h)}
}

// TrackModifierState updates the held-modifier bitmask and the dedicated
// superHeld bool (kept separate from ModMask per SUPPLEMENTED FEATURES,
// matching the original's independent bookkeeping). The shortcuts OSD is
// switched directly in the KeySuper case below; superHeld itself is not
// read anywhere.
func (m *Manager) TrackModifierState(code int64, pressed bool) {
	var bit ModMask
	switch code {
	case KeyShift:
		bit = ModShift
	case KeyCtrl:
		bit = ModCtrl
	case KeyAlt:
		bit = ModAlt
	case KeySuper:
		bit = ModSuper
		m.superHeld = pressed
		if pressed {
			m.overlay = overlayShortcuts
		} else if m.overlay == overlayShortcuts || m.overlay == overlayVolume {
			m.overlay = overlayNone
		}
		m.syncOSD()
	}
	if bit != 0 {
		if pressed {
			m.modifiers |= bit
		} else {
			m.modifiers &^= bit
		}
	}
}

// KeyEvent dispatches a key press to either a Super-chord shortcut or,
// if unrecognized while Super is held, the legacy unbound-Super-key
// fallback that targets the lowest-numbered window (§4.H, § Open
// Questions).
func (m *Manager) KeyEvent(code int64, pressed bool) {
	m.TrackModifierState(code, pressed)
	if !pressed || m.modifiers&ModSuper == 0 {
		m.forwardKeyToFocused(code, pressed)
		return
	}
	if code != KeySuper && m.overlay == overlayShortcuts {
		m.overlay = overlayNone
		m.syncOSD()
	}
	shift := m.modifiers&ModShift != 0
	switch code {
	case KeyTab:
		m.superTab(shift)
	case KeyM, KeyEnter:
		m.tileFrontWindow(tileFull)
	case KeyUp:
		if shift {
			m.tileFrontWindow(tileTopHalf)
		} else {
			m.moveFrontWindow(0, -1)
		}
	case KeyDown:
		if shift {
			m.tileFrontWindow(tileBottomHalf)
		} else {
			m.moveFrontWindow(0, 1)
		}
	case KeyLeft:
		if shift {
			m.tileFrontWindow(tileLeftHalf)
		} else {
			m.moveFrontWindow(-1, 0)
		}
	case KeyRight:
		if shift {
			m.tileFrontWindow(tileRightHalf)
		} else {
			m.moveFrontWindow(1, 0)
		}
	case KeyVolumeDown:
		m.adjustVolume(-5)
	case KeyVolumeUp:
		m.adjustVolume(5)
	case KeyVolumeMute:
		m.toggleMute()
	case KeyC:
		m.emitClipboard(protocol.ClipboardCopy)
	case KeyX:
		m.emitClipboard(protocol.ClipboardCut)
	case KeyV:
		m.emitClipboard(protocol.ClipboardPaste)
	case KeyQ:
		m.quitFrontWindow()
	case KeyEscape:
		m.closeOverlays()
	default:
		id, ok := m.lowestWindowID()
		if !ok {
			return
		}
		if m.legacyScript != nil {
			_ = m.legacyScript.HandleUnboundSuperKey(code, id)
		} else if code != KeySuper {
			m.windows[id].PushEvent(protocol.Event{Code: protocol.KindKey, A: code + 0x1000_0000, B: 1})
		}
	}
}

func (m *Manager) forwardKeyToFocused(code int64, pressed bool) {
	id, ok := m.order.Focused()
	if !ok {
		return
	}
	w, ok := m.windows[id]
	if !ok {
		return
	}
	a := int64(0)
	if pressed {
		a = 1
	}
	w.PushEvent(protocol.Event{Code: protocol.KindKey, A: code, B: a})
}

func pt(x, y int) geom.Point {
	return geom.Point{X: x, Y: y}
}

// MouseEvent processes absolute pointer motion: if a drag is active it
// is applied; otherwise it does nothing. Press/release is handled by
// ButtonEvent.
func (m *Manager) MouseEvent(x, y int) {
	if m.drag.Active {
		if w, ok := m.windows[m.drag.WindowID]; ok {
			m.drag.Apply(w, x, y)
			m.damageWindow(w)
		}
		return
	}
}

// ButtonEvent handles press/release on the window under (x, y).
// Front/Normal windows steal focus on press; Back windows never do
// (§ Open Questions / §4.H, confirmed against the original's
// button_event: Back windows are reinserted at the same focus-order
// index with no focus transfer).
func (m *Manager) ButtonEvent(x, y int, pressed bool) {
	if !pressed {
		m.drag.End()
		return
	}
	id, found := m.hitWindowID(x, y)
	if !found {
		return
	}
	w, ok := m.windows[id]
	if !ok {
		return
	}
	switch w.ZOrder {
	case window.Back:
		// no focus transfer; z-order/focus-order position unchanged.
	default:
		m.order.MakeFocused(id)
		m.rezbuffer()
	}
	m.beginDragIfOnDecoration(w, x, y)
}

func (m *Manager) hitWindowID(x, y int) (int, bool) {
	for _, id := range m.order.IterFrontToBack() {
		w, ok := m.windows[id]
		if ok && w.Rect().Contains(pt(x, y)) {
			return id, true
		}
	}
	return 0, false
}

func (m *Manager) beginDragIfOnDecoration(w *window.Window, x, y int) {
	p := pt(x, y)
	switch {
	case w.TitleRect().Contains(p):
		m.drag.Begin(w, DragTitle, x, y)
	case w.BottomLeftCornerRect().Contains(p):
		m.drag.Begin(w, DragBottomLeftBorder, x, y)
	case w.BottomRightCornerRect().Contains(p):
		m.drag.Begin(w, DragBottomRightBorder, x, y)
	case w.LeftBorderRect().Contains(p):
		m.drag.Begin(w, DragLeftBorder, x, y)
	case w.RightBorderRect().Contains(p):
		m.drag.Begin(w, DragRightBorder, x, y)
	case w.BottomBorderRect().Contains(p):
		m.drag.Begin(w, DragBottomBorder, x, y)
	}
}

// ScrollEvent routes a scroll delta only to the frontmost z-buffer
// entry, matching the original (scroll is not hit-tested, it always
// targets whatever is currently on top).
func (m *Manager) ScrollEvent(dx, dy int64) {
	order := m.order.IterFrontToBack()
	if len(order) == 0 {
		return
	}
	if w, ok := m.windows[order[0]]; ok {
		w.PushEvent(protocol.Event{Code: protocol.KindScroll, A: dx, B: dy})
	}
}

// ResizeEvent broadcasts a display resize to every window (the original
// broadcasts resize_event to all windows unconditionally, regardless of
// which display actually changed).
func (m *Manager) ResizeEvent(width, height int) {
	for _, w := range m.windows {
		w.PushEvent(screenEvent(width, height))
	}
	if m.comp != nil {
		m.comp.DamageAll()
	}
}

// syncOSD damages the whole frame so the next Redraw reflects the overlay
// change; the actual OSD content is built lazily by the caller (see
// OverlayKind/WindowTitles/VolumePercent) and handed to
// compositor.Compositor.SetOSD, not precomputed here.
func (m *Manager) syncOSD() {
	m.overlayGen++
	if m.comp == nil {
		return
	}
	m.comp.DamageAll()
}

// OverlayGeneration increments on every change relevant to the current
// overlay's content (a new Super+Tab target, a volume adjustment), so a
// caller rebuilding the OSD can tell a same-kind overlay apart from a
// stale one without re-rendering on every redraw tick.
func (m *Manager) OverlayGeneration() int { return m.overlayGen }

func (m *Manager) closeOverlays() {
	m.overlay = overlayNone
	m.syncOSD()
}

// emitClipboard delivers a Clipboard{kind} event to the focused window
// (§4.H Super-C/X/V). The front window decides what copy/cut/paste means
// for its own content; orbital only signals the request.
func (m *Manager) emitClipboard(kind int64) {
	id, ok := m.order.Focused()
	if !ok {
		return
	}
	if w, ok := m.windows[id]; ok {
		w.PushEvent(protocol.Event{Code: protocol.KindClipboard, A: kind})
	}
}

func (m *Manager) quitFrontWindow() {
	id, ok := m.order.Focused()
	if !ok {
		return
	}
	if w, ok := m.windows[id]; ok {
		w.PushEvent(protocol.Event{Code: protocol.KindQuit})
	}
}
