// SPDX-License-Identifier: MIT

package mec

import (
	"math"

	"github.com/katalvlaran/pointpat/core"
)

// circumcircle returns the unique circle through the three pairwise
// distinct, non-collinear points p, q, r.
//
// Standard determinant form:
//
//	D  = 2·(px·(qy−ry) + qx·(ry−py) + rx·(py−qy))
//	cx = (‖p‖²·(qy−ry) + ‖q‖²·(ry−py) + ‖r‖²·(py−qy)) / D
//	cy = (‖p‖²·(rx−qx) + ‖q‖²·(px−rx) + ‖r‖²·(qx−px)) / D
//
// D is four times the signed triangle area and shrinks with the square
// of the triple's extent, so the collinearity guard compares |D|
// against tol scaled by that squared extent. A micro-scale triangle
// with healthy proportions passes; a sliver errors regardless of
// scale. The caller decides how to treat a degenerate triple — no
// fallback circle is substituted here.
//
// Errors: ErrDegenerateTriple.
//
// Complexity: O(1).
func circumcircle(p, q, r core.Point, tol float64) (core.Circle, error) {
	d := 2 * (p.X*(q.Y-r.Y) + q.X*(r.Y-p.Y) + r.X*(p.Y-q.Y))
	span := math.Max(
		math.Max(p.X, math.Max(q.X, r.X))-math.Min(p.X, math.Min(q.X, r.X)),
		math.Max(p.Y, math.Max(q.Y, r.Y))-math.Min(p.Y, math.Min(q.Y, r.Y)),
	)
	if math.Abs(d) <= tol*span*span {
		return core.Circle{}, ErrDegenerateTriple
	}

	pp := p.X*p.X + p.Y*p.Y
	qq := q.X*q.X + q.Y*q.Y
	rr := r.X*r.X + r.Y*r.Y

	center := core.Pt(
		(pp*(q.Y-r.Y)+qq*(r.Y-p.Y)+rr*(p.Y-q.Y))/d,
		(pp*(r.X-q.X)+qq*(p.X-r.X)+rr*(q.X-p.X))/d,
	)

	return core.Circle{Center: center, Radius: center.DistanceTo(p)}, nil
}
