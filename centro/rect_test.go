// SPDX-License-Identifier: MIT

package centro_test

import (
	"testing"

	"github.com/katalvlaran/pointpat/centro"
	"github.com/katalvlaran/pointpat/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBoundingRect_MixedQuadrants verifies the extremes over a pattern
// spanning all four quadrants.
func TestBoundingRect_MixedQuadrants(t *testing.T) {
	pts := []core.Point{
		core.Pt(-3, 2), core.Pt(1, -4), core.Pt(5, 0), core.Pt(0, 7),
	}

	r, err := centro.BoundingRect(pts)
	require.NoError(t, err)
	assert.Equal(t, core.Rect{MinX: -3, MinY: -4, MaxX: 5, MaxY: 7}, r)
}

// TestBoundingRect_SinglePoint collapses to a zero-area rectangle.
func TestBoundingRect_SinglePoint(t *testing.T) {
	r, err := centro.BoundingRect([]core.Point{core.Pt(2, 3)})
	require.NoError(t, err)

	assert.Equal(t, core.Rect{MinX: 2, MinY: 3, MaxX: 2, MaxY: 3}, r)
	assert.Equal(t, 0.0, r.Width())
	assert.Equal(t, 0.0, r.Height())
}

// TestBoundingRect_ContainsAllPoints is the defining property.
func TestBoundingRect_ContainsAllPoints(t *testing.T) {
	pts := []core.Point{
		core.Pt(0.5, -1.5), core.Pt(-2, 4), core.Pt(3, 3), core.Pt(1, 0),
	}

	r, err := centro.BoundingRect(pts)
	require.NoError(t, err)
	for i, p := range pts {
		assert.True(t, r.Contains(p), "point %d outside its bounding rect", i)
	}
}

// TestBoundingRect_Empty ensures empty input errors.
func TestBoundingRect_Empty(t *testing.T) {
	_, err := centro.BoundingRect(nil)
	assert.ErrorIs(t, err, core.ErrEmptyPointSet)
}
