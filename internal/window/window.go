// Package window models a single client window: its framebuffer,
// decoration geometry, flags, and per-window event/clipboard state
// (§4.E, §4.F).
package window

import (
	"github.com/redox-os/orbital/internal/geom"
	"github.com/redox-os/orbital/internal/protocol"
	"github.com/redox-os/orbital/internal/rimage"
)

// ZOrder is a window's compositing plane. Within a plane, recency of
// focus breaks ties (see order.go's rezbuffer).
type ZOrder int

const (
	Back ZOrder = iota
	Normal
	Front
)

// Flag is a window flag bitmask (§4.F).
type Flag uint32

// Flag bits. Letters in parens are the wire-grammar chars
// ParseOpenPath/FormatFpath/applyFlagCommand use for each (§4.E, §6).
const (
	FlagAsync       Flag = 1 << iota // (a) read() on an empty event queue returns 0 instead of delaying
	FlagBorderless                   // (l)
	FlagResizable                    // (r)
	FlagTransparent                  // (t) composited with alpha blend instead of an opaque blit
	FlagUnclosable                   // (u)
	FlagMaximized                    // (m) set/cleared alongside a full tile/restore
)

const titleBarHeight = 20
const borderWidth = 4

// Window is one client's on-screen surface plus the server-side state
// needed to composite, hit-test, and drive its event queue.
type Window struct {
	ID    int
	X, Y  int
	W, H  int
	Title string

	Image *rimage.Image

	ZOrder ZOrder
	Flags  Flag

	Events []protocol.Event

	// NotifiedRead records whether an FEVENT_READ notification is
	// outstanding for the current non-empty queue. scheme.Server's Read,
	// RetryDelayed and Fevent clear it (scheme/server.go); nothing in this
	// repository sets it.
	NotifiedRead bool

	MouseCursor   bool
	MouseGrab     bool
	MouseRelative bool

	// ClipboardSeek is not read or written by the server: each window's
	// read offset into the process-wide clipboard buffer is tracked in
	// clipboard.Buffer (§ clipboard).
	ClipboardSeek int

	// Restore holds the pre-tile geometry; repeating a tile shortcut (or
	// Manager.ForceTile) while it is set restores that geometry.
	Restore *geom.Rect
}

// New constructs a window at the given geometry with a freshly allocated
// framebuffer.
func New(id, x, y, w, h int, title string, zorder ZOrder, flags Flag) *Window {
	return &Window{
		ID:     id,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		Title:  title,
		Image:  rimage.New(w, h),
		ZOrder: zorder,
		Flags:  flags,
	}
}

func (w *Window) HasFlag(f Flag) bool { return w.Flags&f != 0 }

func (w *Window) SetFlag(f Flag, on bool) {
	if on {
		w.Flags |= f
	} else {
		w.Flags &^= f
	}
}

// Rect is the window's full on-screen extent, decoration included.
func (w *Window) Rect() geom.Rect {
	if w.HasFlag(FlagBorderless) {
		return geom.New(w.X, w.Y, w.W, w.H)
	}
	return geom.New(w.X-borderWidth, w.Y-titleBarHeight, w.W+2*borderWidth, w.H+titleBarHeight+borderWidth)
}

// BodyRect is the client framebuffer's on-screen rectangle (decoration
// excluded).
func (w *Window) BodyRect() geom.Rect {
	return geom.New(w.X, w.Y, w.W, w.H)
}

// TitleRect is the draggable title bar, empty when borderless.
func (w *Window) TitleRect() geom.Rect {
	if w.HasFlag(FlagBorderless) {
		return geom.Rect{}
	}
	return geom.New(w.X-borderWidth, w.Y-titleBarHeight, w.W+2*borderWidth, titleBarHeight)
}

func (w *Window) LeftBorderRect() geom.Rect {
	if w.HasFlag(FlagBorderless) {
		return geom.Rect{}
	}
	return geom.New(w.X-borderWidth, w.Y, borderWidth, w.H)
}

func (w *Window) RightBorderRect() geom.Rect {
	if w.HasFlag(FlagBorderless) {
		return geom.Rect{}
	}
	return geom.New(w.X+w.W, w.Y, borderWidth, w.H)
}

func (w *Window) BottomBorderRect() geom.Rect {
	if w.HasFlag(FlagBorderless) {
		return geom.Rect{}
	}
	return geom.New(w.X-borderWidth, w.Y+w.H, w.W+2*borderWidth, borderWidth)
}

func (w *Window) BottomLeftCornerRect() geom.Rect {
	if w.HasFlag(FlagBorderless) {
		return geom.Rect{}
	}
	return geom.New(w.X-borderWidth, w.Y+w.H, borderWidth*2, borderWidth*2)
}

func (w *Window) BottomRightCornerRect() geom.Rect {
	if w.HasFlag(FlagBorderless) {
		return geom.Rect{}
	}
	return geom.New(w.X+w.W-borderWidth, w.Y+w.H, borderWidth*2, borderWidth*2)
}

// Retitle replaces the title. Nothing else is recomputed: the title bar
// is fixed-height and no decoration geometry depends on the title text.
func (w *Window) Retitle(title string) {
	w.Title = title
}

// Resize reallocates the framebuffer to the new body size, discarding
// old pixel contents (the client is expected to repaint after a resize
// acknowledgement).
func (w *Window) Resize(width, height int) {
	w.W = width
	w.H = height
	w.Image = rimage.New(width, height)
}

// PushEvent appends ev to this window's queue.
func (w *Window) PushEvent(ev protocol.Event) {
	w.Events = append(w.Events, ev)
}

// PopEvents drains and returns up to max queued events.
func (w *Window) PopEvents(max int) []protocol.Event {
	if max <= 0 || max > len(w.Events) {
		max = len(w.Events)
	}
	out := w.Events[:max]
	w.Events = w.Events[max:]
	return out
}
