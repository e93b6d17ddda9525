// SPDX-License-Identifier: MIT

package mec

import (
	"math"

	"github.com/katalvlaran/pointpat/core"
	"github.com/katalvlaran/pointpat/hull"
)

// MinimumEnclosingCircle returns the smallest circle containing every
// point of pts, via Skyum's elimination algorithm over the convex hull.
//
// Contracts:
//   - pts needs ≥ 3 distinct, non-collinear points (hull requirements).
//   - With Options.AssumeHull the input must already be a CCW convex
//     hull; it is copied, validated for finiteness, and never mutated.
//   - opts may be nil, meaning DefaultOptions.
//   - Deterministic: identical input yields an identical circle.
//
// Selection rule: per iteration every vertex is scored with the pair
// (circumradius of its neighbor triple, angle at vertex) and the
// lexicographic maximum wins — largest radius first, larger angle on
// radius ties, lowest index on full ties. Radius ties are judged within
// a scale-aware band: the rotations of one triple describe the same
// circle yet recompute its radius with ulp-level differences, and only
// the angle key can order them. The stopping test follows from the same
// ordering: when the selected vertex's angle is ≤ π/2, no vertex can be
// eliminated and its circumcircle is the answer.
//
// Residuals: eliminating the obtuse vertex of a 3-vertex hull leaves 2
// points; their minimum enclosing circle is the one with the segment as
// diameter, and that is what is returned. Below 2 points the reduction
// is degenerate.
//
// Errors: hull.ErrInsufficientPoints, hull.ErrDegenerateHull,
// ErrDegenerateTriple, ErrDegenerateReduction, core.ErrNonFinitePoint.
//
// Complexity: O(H²) worst case over H hull vertices, plus O(n log n)
// for hull construction.
func MinimumEnclosingCircle(pts []core.Point, opts *Options) (core.Circle, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}

	// Normalize the working sequence. Both paths hand the reducer an
	// exclusively-owned slice, so removals never touch caller memory.
	var (
		work []core.Point
		err  error
	)
	if o.AssumeHull {
		if len(pts) < 3 {
			return core.Circle{}, hull.ErrInsufficientPoints
		}
		if work, err = core.NewPointSet(pts); err != nil {
			return core.Circle{}, err
		}
	} else {
		if work, err = hull.Hull(pts); err != nil {
			return core.Circle{}, err
		}
	}

	return reduce(work, o.Tolerance)
}

// reduce runs the elimination loop on an exclusively-owned CCW hull
// sequence until the stopping test holds.
func reduce(work []core.Point, tol float64) (core.Circle, error) {
	for len(work) >= 3 {
		var (
			rg = ring{n: len(work)}

			bestIdx    = -1
			bestAngle  float64
			bestRadius float64
			bestCircle core.Circle
		)

		// Score every vertex of the current sequence. The lexicographic
		// maximum is a strict reduction: all per-vertex results must be
		// seen before any selection is valid.
		for i := 0; i < rg.n; i++ {
			p, q, r := work[rg.prec(i)], work[i], work[rg.succ(i)]

			ang, err := vertexAngle(p, q, r, tol)
			if err != nil {
				return core.Circle{}, err
			}
			c, err := circumcircle(p, q, r, tol)
			if err != nil {
				return core.Circle{}, err
			}

			// Radius is the primary key; near-equal radii (rotations of
			// one triple, compared within a scale-aware band) fall
			// through to the angle key.
			tie := tol * (1 + bestRadius)
			rdiff := c.Radius - bestRadius
			if bestIdx < 0 || rdiff > tie || (rdiff >= -tie && ang > bestAngle) {
				bestIdx, bestAngle, bestRadius, bestCircle = i, ang, c.Radius, c
			}
		}

		// Stopping test: an angle ≤ π/2 at the selected vertex means no
		// vertex is eliminable; its triple determines the circle.
		if bestAngle <= math.Pi/2 {
			return bestCircle, nil
		}

		work = removeAt(work, bestIdx)
	}

	// A 3-vertex hull with an obtuse apex legitimately reduces to the
	// endpoints of its longest side; their enclosing circle has the
	// segment as diameter.
	if len(work) == 2 {
		return diameterCircle(work[0], work[1]), nil
	}

	return core.Circle{}, ErrDegenerateReduction
}

// diameterCircle returns the circle with segment ab as diameter.
func diameterCircle(a, b core.Point) core.Circle {
	return core.Circle{
		Center: core.Pt((a.X+b.X)/2, (a.Y+b.Y)/2),
		Radius: a.DistanceTo(b) / 2,
	}
}
