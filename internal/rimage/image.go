package rimage

import (
	stdimage "image"

	"github.com/redox-os/orbital/internal/geom"
)

// Image is an owning width*height pixel buffer, row-major, no padding.
type Image struct {
	w, h int
	data []Color
}

// New allocates a zeroed (fully transparent black) image.
func New(w, h int) *Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Image{w: w, h: h, data: make([]Color, w*h)}
}

// FromData wraps an existing row-major buffer without copying. Used by
// display.go to view an mmap'd framebuffer as an Image.
func FromData(w, h int, data []Color) *Image {
	return &Image{w: w, h: h, data: data}
}

func (img *Image) Width() int     { return img.w }
func (img *Image) Height() int    { return img.h }
func (img *Image) Data() []Color  { return img.data }
func (img *Image) Rect() geom.Rect { return geom.New(0, 0, img.w, img.h) }

// Row returns the pixel slice for row y, or nil if y is out of bounds.
func (img *Image) Row(y int) []Color {
	if y < 0 || y >= img.h {
		return nil
	}
	start := y * img.w
	return img.data[start : start+img.w]
}

// Set writes a single pixel; a write outside the bounds is silently
// dropped (matches the original's rect-fill which clips rather than panics).
func (img *Image) Set(x, y int, c Color) {
	if x < 0 || x >= img.w || y < 0 || y >= img.h {
		return
	}
	img.data[y*img.w+x] = c
}

// At reads a single pixel, returning zero-value (transparent black) out
// of bounds.
func (img *Image) At(x, y int) Color {
	if x < 0 || x >= img.w || y < 0 || y >= img.h {
		return 0
	}
	return img.data[y*img.w+x]
}

// FillRect paints a solid color into rect, clipped to the image bounds.
func (img *Image) FillRect(r geom.Rect, c Color) {
	clipped := r.Intersect(img.Rect())
	for y := clipped.Top(); y < clipped.Bottom(); y++ {
		row := img.Row(y)
		for x := clipped.Left(); x < clipped.Right(); x++ {
			row[x] = c
		}
	}
}

// Roi returns a lazily-iterated view over the given rect, clipped to the
// image bounds.
func (img *Image) Roi(r geom.Rect) *Roi {
	clipped := r.Intersect(img.Rect())
	return &Roi{img: img, rect: clipped}
}

// FromStdImage converts a decoded stdlib/x/image image (cursor or icon
// artwork loaded via config.DecodeCursor) into an Image, the boundary
// between the PNG/BMP decoders and the compositor's own pixel format.
func FromStdImage(src stdimage.Image) *Image {
	bounds := src.Bounds()
	out := New(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := src.At(x, y).RGBA()
			out.Set(x-bounds.Min.X, y-bounds.Min.Y, RGBA(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)))
		}
	}
	return out
}
