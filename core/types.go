package core

import (
	"errors"
	"math"
)

// Sentinel errors for point-set normalization.
var (
	// ErrNonFinitePoint indicates a coordinate that is NaN or ±Inf.
	ErrNonFinitePoint = errors.New("core: point coordinate is not finite")

	// ErrEmptyPointSet indicates an input with zero points.
	ErrEmptyPointSet = errors.New("core: point set must contain at least one point")
)

// Point is an ordered pair of finite planar coordinates.
// Points are plain values: construct once, never mutate.
type Point struct {
	// X is the horizontal coordinate.
	X float64

	// Y is the vertical coordinate.
	Y float64
}

// Circle is a planar circle given by its center and radius.
// Radius is non-negative; a zero radius is a single point.
type Circle struct {
	// Center is the circle's center point.
	Center Point

	// Radius is the circle's radius, ≥ 0.
	Radius float64
}

// Rect is an axis-aligned rectangle given by its extreme coordinates.
// Invariant: MinX ≤ MaxX and MinY ≤ MaxY.
type Rect struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Pt constructs a Point without validation. Use NewPoint when the
// coordinates come from outside the module.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// NewPoint constructs a Point, rejecting non-finite coordinates.
//
// Errors: ErrNonFinitePoint.
// Complexity: O(1).
func NewPoint(x, y float64) (Point, error) {
	if !finite(x) || !finite(y) {
		return Point{}, ErrNonFinitePoint
	}

	return Point{X: x, Y: y}, nil
}

// NewPointSet validates and copies pts into a fresh, exclusively-owned
// slice. The caller's backing array is never retained, so later caller
// mutations cannot reach into an ongoing computation.
//
// Errors: ErrEmptyPointSet, ErrNonFinitePoint.
// Complexity: O(n) time, O(n) space.
func NewPointSet(pts []Point) ([]Point, error) {
	if len(pts) == 0 {
		return nil, ErrEmptyPointSet
	}

	out := make([]Point, len(pts))
	for i, p := range pts {
		if !finite(p.X) || !finite(p.Y) {
			return nil, ErrNonFinitePoint
		}
		out[i] = p
	}

	return out, nil
}

// FromPairs normalizes raw (x, y) pairs into a validated point set.
// This is the single entry for callers holding coordinates in plain
// numeric form (CSV columns, decoded JSON, etc.).
//
// Errors: ErrEmptyPointSet, ErrNonFinitePoint.
// Complexity: O(n) time, O(n) space.
func FromPairs(pairs [][2]float64) ([]Point, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyPointSet
	}

	out := make([]Point, len(pairs))
	var err error
	for i, xy := range pairs {
		if out[i], err = NewPoint(xy[0], xy[1]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// finite reports whether f is neither NaN nor ±Inf.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
