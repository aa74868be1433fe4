package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersect(t *testing.T) {
	a := New(0, 0, 10, 10)
	b := New(5, 5, 10, 10)
	got := a.Intersect(b)
	assert.Equal(t, New(5, 5, 5, 5), got)
}

func TestRectIntersectDisjoint(t *testing.T) {
	a := New(0, 0, 10, 10)
	b := New(20, 20, 5, 5)
	assert.True(t, a.Intersect(b).IsEmpty())
	assert.False(t, a.Intersects(b))
}

func TestRectContainer(t *testing.T) {
	a := New(0, 0, 10, 10)
	b := New(20, 20, 10, 10)
	got := a.Container(b)
	assert.Equal(t, New(0, 0, 30, 30), got)
}

func TestRectContainerWithEmpty(t *testing.T) {
	a := New(0, 0, 10, 10)
	empty := New(5, 5, 0, 0)
	assert.Equal(t, a, a.Container(empty))
	assert.Equal(t, a, empty.Container(a))
}

func TestRectArea(t *testing.T) {
	assert.Equal(t, int64(100), New(0, 0, 10, 10).Area())
	assert.Equal(t, int64(0), New(0, 0, 0, 10).Area())
}

func TestRectContains(t *testing.T) {
	r := New(0, 0, 10, 10)
	assert.True(t, r.Contains(Point{0, 0}))
	assert.False(t, r.Contains(Point{10, 10}))
	assert.False(t, r.Contains(Point{-1, 0}))
}

func TestRectNegativeSizeClamped(t *testing.T) {
	r := New(0, 0, -5, -5)
	assert.True(t, r.IsEmpty())
}
