package hull

import (
	"errors"
	"sort"

	"github.com/katalvlaran/pointpat/core"
)

// Sentinel errors for hull construction.
var (
	// ErrInsufficientPoints indicates fewer than 3 distinct input points.
	ErrInsufficientPoints = errors.New("hull: need at least 3 distinct points")

	// ErrDegenerateHull indicates all distinct points are collinear.
	ErrDegenerateHull = errors.New("hull: all points are collinear, no hull polygon exists")
)

// Hull returns the convex hull of pts as a counter-clockwise vertex
// sequence starting at the lexicographically smallest vertex.
//
// Contracts:
//   - The input slice is never mutated; the result is freshly allocated.
//   - Output vertices are strictly convex: no duplicates, no three
//     consecutive collinear vertices.
//
// Errors: ErrInsufficientPoints, ErrDegenerateHull.
//
// Complexity: O(n log n) time, O(n) memory.
func Hull(pts []core.Point) ([]core.Point, error) {
	// Sort a private copy lexicographically by (X, Y).
	sorted := make([]core.Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}

		return sorted[i].Y < sorted[j].Y
	})

	// Drop exact duplicates; they carry no hull information and would
	// defeat the strict-turn test below.
	distinct := sorted[:0]
	for i, p := range sorted {
		if i == 0 || !p.Equal(sorted[i-1]) {
			distinct = append(distinct, p)
		}
	}
	if len(distinct) < 3 {
		return nil, ErrInsufficientPoints
	}

	// Lower chain: left to right, keeping strict counter-clockwise turns.
	var lower []core.Point
	for _, p := range distinct {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	// Upper chain: right to left, same turn discipline.
	var upper []core.Point
	for i := len(distinct) - 1; i >= 0; i-- {
		p := distinct[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Each chain repeats the other's endpoints; drop the last vertex of
	// both before concatenating.
	out := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(out) < 3 {
		return nil, ErrDegenerateHull
	}

	return out, nil
}

// cross returns the z-component of (a−o)×(b−o): positive for a
// counter-clockwise turn o→a→b, zero for collinear, negative for clockwise.
func cross(o, a, b core.Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
