// Package compositor implements the redraw pipeline: dirty-rectangle
// scheduling, back-to-front window painting, cursor composition, and the
// on-screen-display overlays (§4.D).
package compositor

import (
	"github.com/sirupsen/logrus"

	"github.com/redox-os/orbital/internal/display"
	"github.com/redox-os/orbital/internal/geom"
	"github.com/redox-os/orbital/internal/rimage"
	"github.com/redox-os/orbital/internal/window"
)

// WindowSource is the slice of window-manager state the compositor needs
// to render a frame, kept narrow so the compositor package doesn't
// depend on internal/wm.
type WindowSource interface {
	Window(id int) (*window.Window, bool)
	PaintOrder() []struct {
		ID      int
		Focused bool
	}
}

// Cursor is the current pointer's desktop-space position and appearance.
type Cursor struct {
	Pos          geom.Point
	Image        *rimage.Image
	Hotspot      geom.Point
	HardwareHint bool // true when a hardware cursor plane is in use and software compositing should skip drawing it
}

// Compositor owns the dirty-rectangle queue and drives redraws across
// one or more displays.
type Compositor struct {
	Displays   []*display.Display
	Background rimage.Color

	dirty  []geom.Rect
	osd    OSD
	fpsOSD OSD

	log *logrus.Entry
}

func New(displays []*display.Display, background rimage.Color, log *logrus.Entry) *Compositor {
	return &Compositor{Displays: displays, Background: background, log: log}
}

// Damage marks r (desktop space) for repaint on the next Redraw.
func (c *Compositor) Damage(r geom.Rect) {
	c.dirty = Schedule(c.dirty, r)
}

// DamageAll marks every display's full extent dirty, used on resize and
// on startup.
func (c *Compositor) DamageAll() {
	for _, d := range c.Displays {
		c.Damage(d.ScreenRect())
	}
}

// Sync pairs a display with the local-space rectangle that changed on
// it, for the caller to write back as a protocol.SyncRect.
type Sync struct {
	Display *display.Display
	Rect    geom.Rect
}

// Redraw paints every dirty rectangle: background fill, back-to-front
// window bodies and decorations, cursor, then OSD overlays, returning
// the set of (display, local rect) pairs that changed so the caller can
// write a SyncRect per display, and clearing the dirty queue.
func (c *Compositor) Redraw(src WindowSource, cursor Cursor) []Sync {
	if len(c.dirty) == 0 {
		return nil
	}
	var syncs []Sync
	order := src.PaintOrder()
	for _, rect := range c.dirty {
		for _, d := range c.Displays {
			clipped := rect.Intersect(d.ScreenRect())
			if clipped.IsEmpty() {
				continue
			}
			c.paintRect(d, clipped, src, order, cursor)
			syncs = append(syncs, Sync{Display: d, Rect: clipped.Offset(-d.X, -d.Y)})
		}
	}
	c.dirty = c.dirty[:0]
	return syncs
}

func (c *Compositor) paintRect(d *display.Display, rect geom.Rect, src WindowSource, order []struct {
	ID      int
	Focused bool
}, cursor Cursor) {
	d.Rect(rect, c.Background)

	for _, entry := range order {
		w, ok := src.Window(entry.ID)
		if !ok {
			continue
		}
		winRect := w.BodyRect().Intersect(rect)
		if !winRect.IsEmpty() {
			body := w.Image.Roi(winRect.Offset(-w.X, -w.Y))
			if w.HasFlag(window.FlagTransparent) {
				d.Roi(winRect).Blend(body)
			} else {
				d.Roi(winRect).Blit(body)
			}
		}
		c.paintDecoration(d, w, rect)
	}

	if !cursor.HardwareHint && cursor.Image != nil {
		cursorRect := geom.New(cursor.Pos.X-cursor.Hotspot.X, cursor.Pos.Y-cursor.Hotspot.Y,
			cursor.Image.Width(), cursor.Image.Height()).Intersect(rect)
		if !cursorRect.IsEmpty() {
			local := cursorRect.Offset(-(cursor.Pos.X - cursor.Hotspot.X), -(cursor.Pos.Y - cursor.Hotspot.Y))
			d.Roi(cursorRect).Blend(cursor.Image.Roi(local))
		}
	}

	if c.osd != nil {
		c.osd.Draw(d, rect)
	}
	if c.fpsOSD != nil {
		c.fpsOSD.Draw(d, rect)
	}
}

func (c *Compositor) paintDecoration(d *display.Display, w *window.Window, clip geom.Rect) {
	if w.HasFlag(window.FlagBorderless) {
		return
	}
	titleColor := rimage.RGBA(64, 64, 64, 255)
	borderColor := rimage.RGBA(48, 48, 48, 255)
	for _, r := range []geom.Rect{w.TitleRect(), w.LeftBorderRect(), w.RightBorderRect(), w.BottomBorderRect()} {
		painted := r.Intersect(clip)
		if !painted.IsEmpty() {
			c := titleColor
			if r != w.TitleRect() {
				c = borderColor
			}
			d.Rect(painted, c)
		}
	}
}

// SetOSD replaces the menu-style overlay content (window list, volume
// bar, shortcuts help); passing nil clears it.
func (c *Compositor) SetOSD(o OSD) {
	c.osd = o
	c.DamageAll()
}

// SetFPSOSD replaces the fps/perf readout, independent of SetOSD so the
// two can be on screen together (§4.D "augmenting total"). Unlike
// SetOSD this is expected to be called on every redraw tick while the
// fps_osd flag is set, so it damages only the corner panel occupies
// rather than the whole frame.
func (c *Compositor) SetFPSOSD(o OSD) {
	c.fpsOSD = o
	if len(c.Displays) == 0 {
		return
	}
	d := c.Displays[0]
	panel, ok := o.(rectOSD)
	if !ok {
		c.DamageAll()
		return
	}
	c.Damage(panel.panelRect(d))
}
