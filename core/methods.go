package core

import "math"

// DistanceTo returns the Euclidean distance from p to q.
// Complexity: O(1).
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// ManhattanDistanceTo returns the L1 (taxicab) distance from p to q.
// Complexity: O(1).
func (p Point) ManhattanDistanceTo(q Point) float64 {
	return math.Abs(q.X-p.X) + math.Abs(q.Y-p.Y)
}

// Equal reports exact coordinate equality between p and q.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Contains reports whether q lies inside or on c, allowing tol of
// numerical slack beyond the radius. tol must be ≥ 0.
// Complexity: O(1).
func (c Circle) Contains(q Point, tol float64) bool {
	return c.Center.DistanceTo(q) <= c.Radius+tol
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the vertical extent of r.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Contains reports whether q lies inside or on the boundary of r.
func (r Rect) Contains(q Point) bool {
	return q.X >= r.MinX && q.X <= r.MaxX && q.Y >= r.MinY && q.Y <= r.MaxY
}
