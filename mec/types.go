// SPDX-License-Identifier: MIT

package mec

import "errors"

// Sentinel errors for the reduction loop.
var (
	// ErrDegenerateTriple indicates a collinear or coincident
	// predecessor/vertex/successor triple, for which the vertex angle and
	// circumcircle are undefined.
	ErrDegenerateTriple = errors.New("mec: degenerate triple, angle/circumcircle undefined")

	// ErrDegenerateReduction indicates the elimination loop reduced the
	// working set below two vertices before the stopping test held.
	ErrDegenerateReduction = errors.New("mec: working set reduced below two vertices")
)

// DefaultTolerance is the relative bound below which a triple is treated
// as degenerate. It is applied scaled: against the circumcircle
// determinant per the triple's squared extent, and against each
// neighbor-ray length per the longer ray, so the guards hold for
// micro-scale and macro-scale coordinates alike.
const DefaultTolerance = 1e-12

// Options configures MinimumEnclosingCircle.
//
// Fields:
//   - AssumeHull — input is already a counter-clockwise convex hull;
//     skip hull construction. The caller is responsible for order and
//     strict convexity; violations surface as ErrDegenerateTriple.
//   - Tolerance  — relative degeneracy guard, > 0; see DefaultTolerance
//     for how it is scaled. Zero or negative values fall back to
//     DefaultTolerance.
type Options struct {
	AssumeHull bool
	Tolerance  float64
}

// DefaultOptions returns Options with hull construction enabled and
// DefaultTolerance.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}
