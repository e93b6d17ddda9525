// SPDX-License-Identifier: MIT

package mec

import "github.com/katalvlaran/pointpat/core"

// ring provides circular predecessor/successor indexing over a sequence
// of length n. It is rebuilt from the current length every iteration;
// neighbor indices are never cached across removals.
//
// Contracts: n ≥ 1, 0 ≤ i < n.
type ring struct {
	n int
}

// prec returns the index preceding i, wrapping past 0.
func (r ring) prec(i int) int {
	return (i - 1 + r.n) % r.n
}

// succ returns the index following i, wrapping past n−1.
func (r ring) succ(i int) int {
	return (i + 1) % r.n
}

// removeAt removes exactly the vertex at index i from s, preserving the
// cyclic order of the remainder. Removal is positional, never by value:
// coincident or near-duplicate vertices must not cause multi-removal.
//
// Complexity: O(n).
func removeAt(s []core.Point, i int) []core.Point {
	return append(s[:i], s[i+1:]...)
}
