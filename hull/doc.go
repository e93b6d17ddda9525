// Package hull computes the planar convex hull of a point set.
//
// What:
//
//   - Hull returns the hull vertices in counter-clockwise order, starting
//     from the lexicographically smallest point.
//   - Duplicate input points are removed; collinear points interior to a
//     hull edge are dropped, so no three consecutive output vertices are
//     collinear. Downstream consumers (mec) rely on that strictness.
//
// Why:
//
//   - The minimum enclosing circle of a point set equals that of its
//     convex hull, and Skyum's algorithm operates on hull vertices only.
//   - Bounding-shape and dispersion summaries often report the hull
//     alongside the other centrographic measures.
//
// Algorithm:
//
//   - Andrew's monotone chain: lexicographic sort, then one stack sweep
//     for the lower chain and one for the upper chain.
//
// Complexity:
//
//   - Hull: O(n log n) time (dominated by the sort), O(n) memory.
//
// Errors:
//
//   - ErrInsufficientPoints: fewer than 3 distinct input points.
//   - ErrDegenerateHull: all distinct points are collinear, so no hull
//     polygon exists.
package hull
