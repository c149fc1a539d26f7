// Package physics provides axis-aligned rectangle collision and clamping utilities.
package physics

// Rect is an axis-aligned rectangle in logical field coordinates.
// X,Y is the top-left corner.
type Rect struct {
	X, Y, W, H int
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() int { return r.X }

// Right returns the x coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() int { return r.Y }

// Bottom returns the y coordinate just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterX returns the x coordinate of the rectangle's center.
func (r Rect) CenterX() int { return r.X + r.W/2 }

// CenterY returns the y coordinate of the rectangle's center.
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// SetCenter moves the rectangle so its center sits at (cx, cy).
func (r *Rect) SetCenter(cx, cy int) {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
}

// Intersects reports whether two rectangles overlap with nonzero area.
// Touching edges do not count as an intersection.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
