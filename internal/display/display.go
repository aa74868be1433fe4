// Package display maps the kernel-provided display file into a pixel
// buffer the compositor paints into, and tracks the desktop-space
// position/scale of each physical display (§4.C).
package display

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/redox-os/orbital/internal/geom"
	"github.com/redox-os/orbital/internal/rimage"
)

// Backend maps and unmaps a display file descriptor's framebuffer.
// The production backend (mmap.go) uses golang.org/x/sys/unix; the
// "dev" build tag swaps in display_ebiten.go, a windowed backend for
// development without a redox kernel.
type Backend interface {
	Map(file *os.File, width, height int) (*rimage.Image, error)
	Unmap(img *rimage.Image)
}

// Display is one physical output: its desktop-space origin, its derived
// UI scale, and the mapped framebuffer image.
type Display struct {
	X, Y  int
	Scale int
	file  *os.File
	image *rimage.Image

	backend Backend
	log     *logrus.Entry
}

// New opens display at desktop position (x, y), mapping a width x height
// framebuffer through file. Scale follows the original heuristic: one
// logical unit per 1600 physical rows, minimum 1.
func New(x, y, width, height int, file *os.File, backend Backend, log *logrus.Entry) (*Display, error) {
	img, err := backend.Map(file, width, height)
	if err != nil {
		return nil, errors.Wrap(err, "map display")
	}
	return &Display{
		X:       x,
		Y:       y,
		Scale:   height/1600 + 1,
		file:    file,
		image:   img,
		backend: backend,
		log:     log,
	}, nil
}

func (d *Display) Image() *rimage.Image { return d.image }

// Rect fills r (already clipped to this display by the caller) with c.
func (d *Display) Rect(r geom.Rect, c rimage.Color) {
	d.image.FillRect(r.Offset(-d.X, -d.Y), c)
}

// Resize remaps the framebuffer to the new dimensions, logging and
// keeping the old mapping on failure (matches the original: a failed
// resize leaves the display showing its previous size rather than
// crashing the server).
func (d *Display) Resize(width, height int) {
	img, err := d.backend.Map(d.file, width, height)
	if err != nil {
		d.log.WithError(err).WithFields(logrus.Fields{
			"width": width, "height": height,
		}).Error("failed to resize display")
		return
	}
	d.backend.Unmap(d.image)
	d.image = img
	d.Scale = height/1600 + 1
}

// Roi returns a view of r translated from desktop space into this
// display's local framebuffer space.
func (d *Display) Roi(r geom.Rect) *rimage.Roi {
	return d.image.Roi(r.Offset(-d.X, -d.Y))
}

// ScreenRect returns this display's full extent in desktop space.
func (d *Display) ScreenRect() geom.Rect {
	return geom.New(d.X, d.Y, d.image.Width(), d.image.Height())
}

// Close unmaps the framebuffer. Go has no destructors, so callers must
// call this explicitly when tearing down a display (the original relies
// on Rust's Drop for the equivalent cleanup).
func (d *Display) Close() error {
	d.backend.Unmap(d.image)
	return d.file.Close()
}
