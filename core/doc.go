// Package core defines the central Point, Circle, and Rect value types
// shared by every pointpat package, plus boundary normalization helpers.
//
// What:
//
//   - Point is an immutable (x, y) pair of finite float64 coordinates.
//   - Circle is a center Point plus a non-negative radius.
//   - Rect is an axis-aligned rectangle given by its min/max corners.
//   - NewPointSet / FromPairs normalize arbitrary caller input into an
//     exclusively-owned []Point exactly once, at the boundary.
//
// Why:
//
//   - Every algorithm package (hull, mec, centro) consumes the same fixed
//     internal representation, so validation happens once and the hot
//     loops never re-check coordinates.
//   - Value semantics keep the types trivially copyable and safe to share
//     across concurrent invocations on distinct point sets.
//
// Errors:
//
//   - ErrNonFinitePoint: a coordinate is NaN or ±Inf.
//   - ErrEmptyPointSet: a point set with zero points was supplied.
package core
