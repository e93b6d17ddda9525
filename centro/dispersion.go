// SPDX-License-Identifier: MIT

package centro

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/pointpat/core"
)

// StdDistance returns the standard distance of pts: the square root of
// the summed per-axis population variances about the mean center. It is
// the two-dimensional analogue of the standard deviation.
//
// Errors: core.ErrEmptyPointSet.
// Complexity: O(n).
func StdDistance(pts []core.Point) (float64, error) {
	if len(pts) == 0 {
		return 0, core.ErrEmptyPointSet
	}

	xs, ys := coords(pts)
	mx, my := stat.Mean(xs, nil), stat.Mean(ys, nil)

	// MomentAbout(2, …) divides by n, giving the population variance the
	// measure is defined on (not the n−1 sample estimator).
	return math.Sqrt(stat.MomentAbout(2, xs, mx, nil) + stat.MomentAbout(2, ys, my, nil)), nil
}

// DeviationalEllipse returns the standard deviational ellipse of pts in
// the CrimeStat chapter-4 formulation: the orientation Theta maximizing
// the deviation split, and the axis standard deviations with the n−2
// degrees-of-freedom correction.
//
// When the pattern is directionless (equal axis spread and zero
// covariance) the orientation is undefined; Theta 0 is returned.
//
// Errors: core.ErrEmptyPointSet, ErrInsufficientPoints (n < 3, where the
// n−2 correction is undefined).
//
// Complexity: O(n).
func DeviationalEllipse(pts []core.Point) (Ellipse, error) {
	if len(pts) == 0 {
		return Ellipse{}, core.ErrEmptyPointSet
	}
	if len(pts) < 3 {
		return Ellipse{}, ErrInsufficientPoints
	}

	xs, ys := coords(pts)
	mx, my := stat.Mean(xs, nil), stat.Mean(ys, nil)

	// Deviation sums about the mean center.
	var xss, yss, cv float64
	for i := range xs {
		xd, yd := xs[i]-mx, ys[i]-my
		xss += xd * xd
		yss += yd * yd
		cv += xd * yd
	}

	// tan(2θ)-derived rotation. num is always ≥ 0, so the den == 0
	// branches cover the whole undefined region.
	num := (xss - yss) + math.Sqrt((xss-yss)*(xss-yss)+4*cv*cv)
	den := 2 * cv

	var theta float64
	switch {
	case den == 0 && num == 0:
		theta = 0 // directionless pattern, orientation undefined
	case den == 0:
		theta = math.Pi / 2
	default:
		theta = math.Atan(num / den)
	}

	cosT, sinT := math.Cos(theta), math.Sin(theta)
	n2 := float64(len(pts) - 2)

	var sdx, sdy float64
	for i := range xs {
		xd, yd := xs[i]-mx, ys[i]-my
		ax := xd*cosT - yd*sinT
		ay := xd*sinT - yd*cosT
		sdx += 2 * ax * ax
		sdy += 2 * ay * ay
	}

	return Ellipse{
		SigmaX: math.Sqrt(sdx / n2),
		SigmaY: math.Sqrt(sdy / n2),
		Theta:  theta,
	}, nil
}
