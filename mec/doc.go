// SPDX-License-Identifier: MIT

// Package mec computes the minimum enclosing circle of a planar point set
// using Skyum's elimination algorithm over the convex hull.
//
// What:
//
//   - MinimumEnclosingCircle returns the smallest circle containing every
//     input point.
//   - The input is reduced to its convex hull first (skippable with
//     Options.AssumeHull when the caller already holds a CCW hull).
//   - Each iteration scores every current hull vertex by the pair
//     (circumradius of its neighbor triple, angle at the vertex), picks
//     the lexicographic maximum — radius first, angle on near-equal
//     radii — and either stops (angle ≤ π/2) or removes that vertex and
//     repeats.
//
// Why:
//
//   - The minimum enclosing circle is determined by at most three hull
//     vertices; a vertex whose local angle exceeds π/2 can never be one
//     of them, so eliminating it shrinks the candidate set without
//     discarding the answer (Skyum, 1990).
//
// Complexity:
//
//   - O(H²) worst case for H hull vertices (one removal per O(H)
//     iteration), after the O(n log n) hull.
//
// Options:
//
//   - Options.AssumeHull: treat the input as an already CCW-ordered
//     convex hull and skip hull construction.
//   - Options.Tolerance: relative degeneracy guard for near-zero
//     determinants and coincident points, scaled by each triple's
//     extent so micro- and macro-scale coordinates behave alike.
//
// Errors:
//
//   - ErrDegenerateTriple: a neighbor triple is collinear or coincident,
//     so its angle/circumcircle is undefined.
//   - ErrDegenerateReduction: the working set fell below two vertices.
//   - Hull errors (hull.ErrInsufficientPoints, hull.ErrDegenerateHull)
//     pass through unchanged.
//
// The algorithm is purely sequential: every iteration re-scores the
// just-shrunk sequence, so iterations cannot overlap. No global state
// exists; concurrent calls on distinct point sets are safe.
package mec
