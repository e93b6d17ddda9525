// SPDX-License-Identifier: MIT

package centro

import (
	"errors"

	"github.com/katalvlaran/pointpat/core"
)

// Sentinel errors for centrographic measures.
var (
	// ErrWeightMismatch indicates len(weights) != len(points).
	ErrWeightMismatch = errors.New("centro: weights length must match points length")

	// ErrBadWeights indicates a weight sum that is zero, negative, or not finite.
	ErrBadWeights = errors.New("centro: weight sum must be positive and finite")

	// ErrInsufficientPoints indicates a measure received fewer points than
	// its formula is defined for.
	ErrInsufficientPoints = errors.New("centro: not enough points for this measure")

	// ErrNoMinimum indicates the injected minimizer failed to converge.
	ErrNoMinimum = errors.New("centro: minimizer failed to locate the Euclidean median")
)

// Ellipse describes a standard deviational ellipse.
//
// SigmaX and SigmaY are the standard deviations along the rotated axes;
// Theta is the rotation of those axes in radians. For circular patterns
// the orientation is undefined and Theta is reported as 0.
type Ellipse struct {
	SigmaX float64
	SigmaY float64
	Theta  float64
}

// Summary aggregates every centrographic measure for one point pattern.
type Summary struct {
	// Count is the number of input points.
	Count int

	// MeanCenter is the unweighted center of mass.
	MeanCenter core.Point

	// ManhattanMedian is the per-axis median (non-unique for even counts).
	ManhattanMedian core.Point

	// EuclideanMedian minimizes the summed Euclidean distance.
	EuclideanMedian core.Point

	// StdDistance is the standard distance about the mean center.
	StdDistance float64

	// Ellipse is the standard deviational ellipse.
	Ellipse Ellipse

	// BoundingRect is the axis-aligned minimum bounding rectangle.
	BoundingRect core.Rect

	// Hull is the CCW convex hull of the pattern.
	Hull []core.Point

	// EnclosingCircle is the minimum enclosing circle.
	EnclosingCircle core.Circle
}
