package compositor

import "github.com/redox-os/orbital/internal/geom"

// Schedule coalesces r into the dirty-rectangle list: it looks for an
// existing entry whose bounding union with r wastes no pixels (the
// union's area is no larger than the sum of the two areas, e.g. the
// rectangles are edge-adjacent, overlap, or one contains the other) and
// merges into it in place; otherwise r is appended as a new dirty
// rectangle. This keeps the list amortized O(n) instead of growing
// unboundedly under a stream of small, localized redraws.
func Schedule(dirty []geom.Rect, r geom.Rect) []geom.Rect {
	if r.IsEmpty() {
		return dirty
	}
	for i, existing := range dirty {
		union := existing.Container(r)
		if union.Area() <= existing.Area()+r.Area() {
			dirty[i] = union
			return dirty
		}
	}
	return append(dirty, r)
}
