// Package core provides fundamental types and utilities for the arcade
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Point is an integer coordinate in game pixel space.
type Point struct {
	X, Y int
}

// Square is an axis-aligned square defined by its top-left corner and a
// non-negative side length. It is the collision shape used by games: balls,
// goals and other fixed-size entities are all squares in pixel space.
type Square struct {
	TopLeft Point
	Size    int
}

// NewSquare creates a square with the given top-left corner and side length.
func NewSquare(x, y, size int) Square {
	return Square{TopLeft: Point{X: x, Y: y}, Size: size}
}

// Intersects reports whether the closed regions of two squares overlap.
// Edge contact counts as intersection: a square of size 8 at x=1 covers
// x in [1,9], so a square whose left edge is at x=9 still touches it.
func (s Square) Intersects(other Square) bool {
	return intersects1D(s.TopLeft.X, s.TopLeft.X+s.Size, other.TopLeft.X, other.TopLeft.X+other.Size) &&
		intersects1D(s.TopLeft.Y, s.TopLeft.Y+s.Size, other.TopLeft.Y, other.TopLeft.Y+other.Size)
}

// intersects1D reports whether the closed intervals [min1,max1] and
// [min2,max2] overlap. Any one bound falling inside the other interval
// implies overlap, which also covers full containment of either interval.
func intersects1D(min1, max1, min2, max2 int) bool {
	return contains1D(min1, min2, max2) ||
		contains1D(max1, min2, max2) ||
		contains1D(min2, min1, max1) ||
		contains1D(max2, min1, max1)
}

// contains1D reports whether x lies in the closed interval [min, max].
func contains1D(x, min, max int) bool {
	return x >= min && x <= max
}

// Rect is an axis-aligned rectangle in screen space, used for layout and
// drawing (field outlines, overlays). Collision between game entities goes
// through Square, which has closed-interval semantics.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
