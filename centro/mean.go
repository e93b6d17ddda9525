// SPDX-License-Identifier: MIT

package centro

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/pointpat/core"
)

// MeanCenter returns the unweighted center of mass of pts.
//
// Errors: core.ErrEmptyPointSet.
// Complexity: O(n).
func MeanCenter(pts []core.Point) (core.Point, error) {
	if len(pts) == 0 {
		return core.Point{}, core.ErrEmptyPointSet
	}

	xs, ys := coords(pts)

	return core.Pt(stat.Mean(xs, nil), stat.Mean(ys, nil)), nil
}

// WeightedMeanCenter returns the center of mass of pts under weights:
// Σ(wᵢ·pᵢ) / Σwᵢ. Individual weights may be any finite value, but their
// sum must be positive and finite.
//
// Errors: core.ErrEmptyPointSet, ErrWeightMismatch, ErrBadWeights.
// Complexity: O(n).
func WeightedMeanCenter(pts []core.Point, weights []float64) (core.Point, error) {
	if len(pts) == 0 {
		return core.Point{}, core.ErrEmptyPointSet
	}
	if len(weights) != len(pts) {
		return core.Point{}, ErrWeightMismatch
	}

	total := floats.Sum(weights)
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return core.Point{}, ErrBadWeights
	}

	xs, ys := coords(pts)

	return core.Pt(stat.Mean(xs, weights), stat.Mean(ys, weights)), nil
}

// coords splits pts into parallel X and Y slices for the column-wise
// statistics routines.
func coords(pts []core.Point) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}

	return xs, ys
}
