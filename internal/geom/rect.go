// Package geom provides the integer rectangle/point arithmetic shared by
// the display, compositor, and window-manager layers.
package geom

// Point is an integer desktop-space coordinate.
type Point struct {
	X, Y int
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Sub returns p translated by -o.
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// Rect is a left/top-anchored width/height rectangle in desktop space.
// Width and height are never negative; a rect with either at zero is empty.
type Rect struct {
	X, Y, W, H int
}

// New builds a Rect, clamping negative width/height to zero.
func New(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }
func (r Rect) Width() int  { return r.W }
func (r Rect) Height() int { return r.H }

// IsEmpty reports whether r covers no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Area returns the rectangle's area as an int64 to avoid overflow when
// callers compare sums of areas (see Container/schedule coalescing).
func (r Rect) Area() int64 {
	if r.IsEmpty() {
		return 0
	}
	return int64(r.W) * int64(r.H)
}

// Offset translates r by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Contains reports whether p lies within r (right/bottom-exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersect returns the overlapping rectangle of r and o, which is empty
// when the two rectangles do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.Left(), o.Left())
	y0 := max(r.Top(), o.Top())
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	return New(x0, y0, x1-x0, y1-y0)
}

// Container returns the smallest rectangle enclosing both r and o.
func (r Rect) Container(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x0 := min(r.Left(), o.Left())
	y0 := min(r.Top(), o.Top())
	x1 := max(r.Right(), o.Right())
	y1 := max(r.Bottom(), o.Bottom())
	return New(x0, y0, x1-x0, y1-y0)
}

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersect(o).IsEmpty()
}
