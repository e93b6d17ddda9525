// SPDX-License-Identifier: MIT

package centro

import (
	"math"

	"github.com/katalvlaran/pointpat/core"
)

// BoundingRect returns the axis-aligned minimum bounding rectangle of
// pts. The sweep seeds from local ±Inf values; no process-wide extremum
// sentinels exist.
//
// Errors: core.ErrEmptyPointSet.
// Complexity: O(n).
func BoundingRect(pts []core.Point) (core.Rect, error) {
	if len(pts) == 0 {
		return core.Rect{}, core.ErrEmptyPointSet
	}

	r := core.Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, p := range pts {
		r.MinX = math.Min(r.MinX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}

	return r, nil
}
