package rimage

import (
	"testing"

	"github.com/redox-os/orbital/internal/geom"
	"github.com/stretchr/testify/assert"
)

func TestBlendOpaqueOverwrites(t *testing.T) {
	old := RGBA(10, 20, 30, 0)
	new := RGBA(200, 150, 100, 255)
	got := Blend(old, new)
	assert.Equal(t, uint8(255), got.A())
	assert.Equal(t, uint8(200), got.R())
	assert.Equal(t, uint8(150), got.G())
	assert.Equal(t, uint8(100), got.B())
}

func TestBlendFullyTransparentKeepsOld(t *testing.T) {
	old := RGBA(10, 20, 30, 0)
	new := RGBA(200, 150, 100, 0)
	got := Blend(old, new)
	// alpha 0 skips the shift-by-8 formula and keeps old exactly.
	assert.Equal(t, old, got)
}

func TestImageBlit(t *testing.T) {
	dst := New(4, 4)
	src := New(2, 2)
	src.Set(0, 0, RGBA(1, 2, 3, 255))
	src.Set(1, 0, RGBA(4, 5, 6, 255))
	src.Set(0, 1, RGBA(7, 8, 9, 255))
	src.Set(1, 1, RGBA(10, 11, 12, 255))

	dst.Roi(geom.New(1, 1, 2, 2)).Blit(src.Roi(src.Rect()))

	assert.Equal(t, RGBA(1, 2, 3, 255), dst.At(1, 1))
	assert.Equal(t, RGBA(10, 11, 12, 255), dst.At(2, 2))
	assert.Equal(t, Color(0), dst.At(0, 0))
}

func TestImageFillRectClips(t *testing.T) {
	img := New(4, 4)
	img.FillRect(geom.New(2, 2, 10, 10), RGBA(1, 1, 1, 255))
	assert.Equal(t, RGBA(1, 1, 1, 255), img.At(3, 3))
	assert.Equal(t, Color(0), img.At(0, 0))
}
