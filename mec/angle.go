// SPDX-License-Identifier: MIT

package mec

import (
	"math"

	"github.com/katalvlaran/pointpat/core"
)

// vertexAngle returns the interior angle at q between the rays q→p and
// q→r, in radians within [0, π].
//
// The atan2(|cross|, dot) form is used instead of acos(dot/‖·‖‖·‖):
// acos loses precision near 0 and π where its argument saturates at ±1,
// while atan2 stays well-conditioned across the whole range.
//
// Errors: ErrDegenerateTriple when p or r coincides with q — a ray of
// length ≤ tol relative to the longer ray — leaving the angle
// undefined. The relative guard keeps micro-scale triples, whose rays
// are all tiny but commensurate, well defined.
//
// Complexity: O(1).
func vertexAngle(p, q, r core.Point, tol float64) (float64, error) {
	ax, ay := p.X-q.X, p.Y-q.Y
	bx, by := r.X-q.X, r.Y-q.Y
	la, lb := math.Hypot(ax, ay), math.Hypot(bx, by)
	if la <= tol*lb || lb <= tol*la {
		return 0, ErrDegenerateTriple
	}

	dot := ax*bx + ay*by
	crs := ax*by - ay*bx

	return math.Atan2(math.Abs(crs), dot), nil
}
