// SPDX-License-Identifier: MIT

// Package centro provides centrographic summary measures for planar
// point patterns.
//
// What:
//
//   - MeanCenter / WeightedMeanCenter — center of mass, optionally
//     weighted.
//   - ManhattanMedian — per-axis median, minimizing summed L1 distance.
//   - EuclideanMedian — the point minimizing summed Euclidean distance,
//     found by an injected unconstrained minimizer (gonum Nelder–Mead by
//     default).
//   - StdDistance — root of the summed per-axis population variances
//     about the mean center.
//   - DeviationalEllipse — the standard deviational ellipse (CrimeStat
//     chapter 4 formulation): axis standard deviations plus orientation.
//   - BoundingRect — axis-aligned minimum bounding rectangle.
//   - DistanceSum — Σ Euclidean distances from a coordinate to the
//     pattern (the Euclidean-median objective).
//   - Summarize — one call computing every measure plus the convex hull
//     and the minimum enclosing circle.
//
// Why:
//
//   - Crime analysis, epidemiology, ecology: where is the pattern
//     centered, how spread out is it, in which direction does it lean?
//
// Complexity:
//
//   - All closed-form measures: O(n) (O(n log n) for the medians' sort).
//   - EuclideanMedian: O(n) per objective evaluation, iterations per the
//     injected minimizer.
//   - Summarize: dominated by hull + enclosing circle, O(n log n + H²).
//
// Errors:
//
//   - core.ErrEmptyPointSet: no points supplied.
//   - ErrWeightMismatch: weights length differs from points length.
//   - ErrBadWeights: weight sum is zero, negative, or not finite.
//   - ErrInsufficientPoints: a measure needs more points than supplied
//     (the ellipse needs ≥ 3).
//   - ErrNoMinimum: the injected minimizer failed to converge.
package centro
