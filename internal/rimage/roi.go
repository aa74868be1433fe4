package rimage

import "github.com/redox-os/orbital/internal/geom"

// Roi is a clipped, lazily-iterated view into an Image's rows. It never
// copies pixel data; Rows yields sub-slices of the backing Image's rows.
type Roi struct {
	img  *Image
	rect geom.Rect
}

func (roi *Roi) Rect() geom.Rect { return roi.rect }

// Rows calls fn once per row in top-to-bottom order with the row's
// absolute y and the pixel slice spanning [rect.Left, rect.Right).
func (roi *Roi) Rows(fn func(y int, row []Color)) {
	for y := roi.rect.Top(); y < roi.rect.Bottom(); y++ {
		row := roi.img.Row(y)
		if row == nil {
			continue
		}
		fn(y, row[roi.rect.Left():roi.rect.Right()])
	}
}

// Blit copies src's pixels into this Roi, row by row, clamped to the
// shorter of the two row lengths. Used for opaque client-framebuffer
// composition and plain (non-alpha) paints.
func (roi *Roi) Blit(src *Roi) {
	srcRows := collectRows(src)
	i := 0
	roi.Rows(func(_ int, dst []Color) {
		if i >= len(srcRows) {
			return
		}
		n := len(dst)
		if len(srcRows[i]) < n {
			n = len(srcRows[i])
		}
		copy(dst[:n], srcRows[i][:n])
		i++
	})
}

// Blend composites src over this Roi using Blend per pixel (the
// semi-transparent window / cursor / OSD paint path).
func (roi *Roi) Blend(src *Roi) {
	srcRows := collectRows(src)
	i := 0
	roi.Rows(func(_ int, dst []Color) {
		if i >= len(srcRows) {
			return
		}
		n := len(dst)
		if len(srcRows[i]) < n {
			n = len(srcRows[i])
		}
		for x := 0; x < n; x++ {
			dst[x] = Blend(dst[x], srcRows[i][x])
		}
		i++
	})
}

func collectRows(roi *Roi) [][]Color {
	rows := make([][]Color, 0, roi.rect.Height())
	roi.Rows(func(_ int, row []Color) {
		rows = append(rows, row)
	})
	return rows
}
