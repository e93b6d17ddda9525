// SPDX-License-Identifier: MIT

// Package centro - unified dispatcher for the centrographic measures.
//
// Summarize is the canonical one-call entry point: normalize the input
// once, then delegate to every measure plus the hull and enclosing-circle
// packages, with strict error propagation at each stage.
package centro

import (
	"github.com/katalvlaran/pointpat/core"
	"github.com/katalvlaran/pointpat/hull"
	"github.com/katalvlaran/pointpat/mec"
)

// Summarize computes every centrographic measure for pts in one pass:
// centers, medians, dispersion, the deviational ellipse, the bounding
// rectangle, the convex hull, and the minimum enclosing circle.
//
// Contracts:
//   - pts needs ≥ 3 distinct non-collinear points (hull/ellipse
//     requirements); weaker inputs surface the relevant sentinel.
//   - The input slice is normalized once and never mutated.
//
// Errors: core.ErrEmptyPointSet, core.ErrNonFinitePoint,
// ErrInsufficientPoints, ErrNoMinimum, hull.ErrInsufficientPoints,
// hull.ErrDegenerateHull, mec errors.
//
// Complexity: O(n log n + H²), dominated by hull + enclosing circle.
func Summarize(pts []core.Point) (Summary, error) {
	// Stage 1 - boundary normalization (one exclusively-owned copy).
	norm, err := core.NewPointSet(pts)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{Count: len(norm)}

	// Stage 2 - closed-form measures.
	if s.MeanCenter, err = MeanCenter(norm); err != nil {
		return Summary{}, err
	}
	if s.ManhattanMedian, err = ManhattanMedian(norm); err != nil {
		return Summary{}, err
	}
	if s.StdDistance, err = StdDistance(norm); err != nil {
		return Summary{}, err
	}
	if s.Ellipse, err = DeviationalEllipse(norm); err != nil {
		return Summary{}, err
	}
	if s.BoundingRect, err = BoundingRect(norm); err != nil {
		return Summary{}, err
	}

	// Stage 3 - the iterative measures.
	if s.EuclideanMedian, err = EuclideanMedian(norm); err != nil {
		return Summary{}, err
	}
	if s.Hull, err = hull.Hull(norm); err != nil {
		return Summary{}, err
	}

	// The hull is already built; hand it to the reducer as-is.
	opts := mec.DefaultOptions()
	opts.AssumeHull = true
	if s.EnclosingCircle, err = mec.MinimumEnclosingCircle(s.Hull, &opts); err != nil {
		return Summary{}, err
	}

	return s, nil
}
