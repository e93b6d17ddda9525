// SPDX-License-Identifier: MIT

package centro_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pointpat/centro"
	"github.com/katalvlaran/pointpat/core"
	"github.com/katalvlaran/pointpat/hull"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSummarize_SquareWithCenter runs the full dispatcher on a square
// plus its center and cross-checks every field against the individual
// measures' known answers.
func TestSummarize_SquareWithCenter(t *testing.T) {
	pts := []core.Point{
		core.Pt(0, 0), core.Pt(2, 0), core.Pt(2, 2), core.Pt(0, 2), core.Pt(1, 1),
	}

	s, err := centro.Summarize(pts)
	require.NoError(t, err)

	assert.Equal(t, 5, s.Count)
	assert.InDelta(t, 1.0, s.MeanCenter.X, 1e-12)
	assert.InDelta(t, 1.0, s.MeanCenter.Y, 1e-12)
	assert.Equal(t, core.Pt(1, 1), s.ManhattanMedian)
	assert.InDelta(t, 1.0, s.EuclideanMedian.X, 1e-6)
	assert.InDelta(t, 1.0, s.EuclideanMedian.Y, 1e-6)
	assert.InDelta(t, math.Sqrt(1.6), s.StdDistance, 1e-9)
	assert.Equal(t, core.Rect{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}, s.BoundingRect)
	assert.Len(t, s.Hull, 4, "interior point must not reach the hull")
	assert.InDelta(t, math.Sqrt2, s.EnclosingCircle.Radius, 1e-9)
	assert.InDelta(t, 1.0, s.EnclosingCircle.Center.X, 1e-9)
	assert.InDelta(t, 1.0, s.EnclosingCircle.Center.Y, 1e-9)
}

// TestSummarize_CirclePropertiesHold: the summary circle encloses every
// input point and every hull vertex.
func TestSummarize_CirclePropertiesHold(t *testing.T) {
	pts := []core.Point{
		core.Pt(-3, 1), core.Pt(4, 2), core.Pt(0.5, -5), core.Pt(1, 6), core.Pt(-2, -2),
	}

	s, err := centro.Summarize(pts)
	require.NoError(t, err)

	for i, p := range pts {
		assert.True(t, s.EnclosingCircle.Contains(p, 1e-9), "point %d outside circle", i)
		assert.True(t, s.BoundingRect.Contains(p), "point %d outside rect", i)
	}
	for i, v := range s.Hull {
		assert.True(t, s.EnclosingCircle.Contains(v, 1e-9), "hull vertex %d outside circle", i)
	}
}

// TestSummarize_PropagatesDegeneracy: collinear input surfaces the hull
// sentinel instead of a partial summary.
func TestSummarize_PropagatesDegeneracy(t *testing.T) {
	_, err := centro.Summarize([]core.Point{
		core.Pt(0, 0), core.Pt(1, 1), core.Pt(2, 2),
	})
	assert.ErrorIs(t, err, hull.ErrDegenerateHull)

	_, err = centro.Summarize(nil)
	assert.ErrorIs(t, err, core.ErrEmptyPointSet)

	_, err = centro.Summarize([]core.Point{core.Pt(0, 0), core.Pt(math.NaN(), 1), core.Pt(2, 0)})
	assert.ErrorIs(t, err, core.ErrNonFinitePoint)
}

// TestSummarize_InputNotMutated: the dispatcher normalizes once and the
// caller's slice survives untouched.
func TestSummarize_InputNotMutated(t *testing.T) {
	pts := []core.Point{
		core.Pt(2, 2), core.Pt(0, 0), core.Pt(2, 0), core.Pt(0, 2),
	}
	orig := make([]core.Point, len(pts))
	copy(orig, pts)

	_, err := centro.Summarize(pts)
	require.NoError(t, err)
	assert.Equal(t, orig, pts)
}
