// SPDX-License-Identifier: MIT

package centro

import (
	"sort"

	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/pointpat/core"
)

// Minimizer is an injected unconstrained-minimization capability: it
// receives an objective over ℝ² (as a 2-element slice) and an initial
// guess, and returns the minimizing coordinates. The Euclidean median
// treats it as a black box.
type Minimizer func(objective func(xy []float64) float64, initial []float64) ([]float64, error)

// NelderMeadMinimizer returns the default Minimizer, backed by gonum's
// derivative-free Nelder–Mead simplex method. The summed-distance
// objective is convex but not differentiable at the data points, so a
// gradient-free method is the safe default.
func NelderMeadMinimizer() Minimizer {
	return func(objective func(xy []float64) float64, initial []float64) ([]float64, error) {
		problem := optimize.Problem{Func: objective}

		result, err := optimize.Minimize(problem, initial, nil, &optimize.NelderMead{})
		if err != nil {
			return nil, err
		}
		if err = result.Status.Err(); err != nil {
			return nil, err
		}

		return result.X, nil
	}
}

// ManhattanMedian returns the per-axis median of pts, the point
// minimizing the summed L1 distance to the pattern.
//
// For even point counts the L1 median is not unique; the midpoint of the
// two central order statistics is returned on each axis (the same
// convention column-wise medians use elsewhere).
//
// Errors: core.ErrEmptyPointSet.
// Complexity: O(n log n).
func ManhattanMedian(pts []core.Point) (core.Point, error) {
	if len(pts) == 0 {
		return core.Point{}, core.ErrEmptyPointSet
	}

	xs, ys := coords(pts)
	sort.Float64s(xs)
	sort.Float64s(ys)

	return core.Pt(midpoint(xs), midpoint(ys)), nil
}

// DistanceSum returns Σ Euclidean distances from c to every point of
// pts — the objective the Euclidean median minimizes.
//
// Complexity: O(n).
func DistanceSum(c core.Point, pts []core.Point) float64 {
	var sum float64
	for _, p := range pts {
		sum += c.DistanceTo(p)
	}

	return sum
}

// EuclideanMedian returns the point minimizing DistanceSum over pts,
// found with the default Nelder–Mead minimizer seeded at the mean
// center.
//
// Errors: core.ErrEmptyPointSet, ErrNoMinimum.
// Complexity: O(n) per objective evaluation; iteration count per the
// minimizer's convergence settings.
func EuclideanMedian(pts []core.Point) (core.Point, error) {
	return EuclideanMedianWith(pts, nil)
}

// EuclideanMedianWith is EuclideanMedian with an injected minimizer;
// a nil minimize falls back to NelderMeadMinimizer.
//
// Errors: core.ErrEmptyPointSet, ErrNoMinimum.
func EuclideanMedianWith(pts []core.Point, minimize Minimizer) (core.Point, error) {
	if len(pts) == 0 {
		return core.Point{}, core.ErrEmptyPointSet
	}
	if minimize == nil {
		minimize = NelderMeadMinimizer()
	}

	// The mean center is a cheap, central starting simplex.
	start, err := MeanCenter(pts)
	if err != nil {
		return core.Point{}, err
	}

	objective := func(xy []float64) float64 {
		return DistanceSum(core.Pt(xy[0], xy[1]), pts)
	}

	xy, err := minimize(objective, []float64{start.X, start.Y})
	if err != nil || len(xy) != 2 {
		return core.Point{}, ErrNoMinimum
	}

	return core.Pt(xy[0], xy[1]), nil
}

// midpoint returns the median of an ascending-sorted slice: the middle
// element for odd lengths, the mean of the two central elements for
// even lengths.
func midpoint(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}
