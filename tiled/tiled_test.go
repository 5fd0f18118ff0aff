// SPDX-License-Identifier: MIT

package tiled_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twod/bounds"
	"github.com/katalvlaran/twod/coords"
	"github.com/katalvlaran/twod/grid"
	"github.com/katalvlaran/twod/tiled"
)

func pt(x, y int) coords.Indices { return coords.New(x, y) }

func TestNew_TileShape(t *testing.T) {
	cases := []struct {
		name      string
		ext, tile coords.Extents
		ok        bool
	}{
		{"Halves", pt(20, 20), pt(10, 10), true},
		{"Single", pt(20, 20), pt(20, 20), true},
		{"Rect", pt(12, 6), pt(4, 3), true},
		{"ZeroTile", pt(20, 20), pt(0, 5), false},
		{"NegativeTile", pt(20, 20), pt(-5, 5), false},
		{"TooLarge", pt(20, 20), pt(25, 5), false},
		{"NotDivisible", pt(20, 20), pt(6, 5), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tiled.New(tc.ext, tc.tile, 0)
			if !tc.ok {
				require.ErrorIs(t, err, tiled.ErrTileShape)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.ext.Quo(tc.tile), g.Layout())
			require.Equal(t, g.Layout().Area(), g.TileCount())
			require.Equal(t, tc.tile, g.TileExtents())
		})
	}
}

func TestDefaultValue_NoAllocation(t *testing.T) {
	g, err := tiled.New(pt(20, 20), pt(10, 10), 5)
	require.NoError(t, err)
	for _, v := range grid.Cols[int](g) {
		require.Equal(t, 5, v)
	}
	require.Zero(t, g.Active())
	require.Equal(t, tiled.Absent, g.Tile(pt(0, 0)).State())
	require.Nil(t, g.Tile(pt(0, 0)).Data())
}

func TestSingleTileAssign(t *testing.T) {
	g, err := tiled.New(pt(20, 20), pt(20, 20), 5)
	require.NoError(t, err)
	g.Set(pt(5, 5), 6)
	require.Equal(t, 6, g.At(pt(5, 5)))
	require.Equal(t, 5, g.At(pt(5, 6)))
	require.Equal(t, 1, g.Active())
}

func TestAssign_MaskAndActive(t *testing.T) {
	g, err := tiled.New(pt(20, 20), pt(5, 5), 5)
	require.NoError(t, err)

	g.Set(pt(5, 5), 6)
	*g.Ref(pt(18, 19)) = 9

	mask := g.Mask()
	require.Equal(t, pt(4, 4), mask.Extents())
	require.True(t, mask.At(pt(1, 1)))
	require.True(t, mask.At(pt(3, 3)))
	require.False(t, mask.At(pt(0, 0)))
	require.Equal(t, 2, g.Active())

	require.Equal(t, 6, g.At(pt(5, 5)))
	require.Equal(t, 9, g.At(pt(18, 19)))
	require.Equal(t, 5, g.At(pt(6, 6)), "untouched cell of a materialised tile keeps the default")

	tile := g.Tile(pt(3, 3))
	require.Equal(t, tiled.Materialized, tile.State())
	require.Equal(t, pt(15, 15), tile.Origin())
	require.Equal(t, 9, tile.Data().At(pt(3, 4)))
}

func TestReads_DoNotMaterialize(t *testing.T) {
	g, err := tiled.New(pt(8, 8), pt(4, 4), 1)
	require.NoError(t, err)
	for range grid.Values[int](g) {
	}
	_ = g.At(pt(7, 7))
	require.Zero(t, g.Active())
}

func TestAssignGridThroughView(t *testing.T) {
	g, err := tiled.New(pt(20, 20), pt(5, 5), 1)
	require.NoError(t, err)
	v, err := g.View(bounds.NewFixedOriginExtents(pt(1, 1), pt(2, 2)))
	require.NoError(t, err)
	src, err := grid.NewFixedFilled(pt(2, 2), 5)
	require.NoError(t, err)
	require.NoError(t, grid.Assign[int](v, src))

	require.Equal(t, 1, g.At(pt(0, 0)))
	require.Equal(t, 5, g.At(pt(1, 1)))
	require.Equal(t, 5, g.At(pt(1, 2)))
	require.Equal(t, 5, g.At(pt(2, 1)))
	require.Equal(t, 5, g.At(pt(2, 2)))
	require.Equal(t, 1, g.At(pt(3, 3)))
	require.Equal(t, 1, g.Active())
}

func TestAssignIterated_ActivatesAllTiles(t *testing.T) {
	g, err := tiled.New(pt(200, 200), pt(50, 50), 1)
	require.NoError(t, err)
	for _, c := range grid.Refs[int](g) {
		*c = 2
	}
	require.Equal(t, g.TileCount(), g.Active())
	for _, v := range grid.Cols[int](g) {
		require.Equal(t, 2, v)
	}
}

func TestOutOfBoundsPanics(t *testing.T) {
	g, err := tiled.New(pt(4, 4), pt(2, 2), 0)
	require.NoError(t, err)
	require.PanicsWithError(t,
		"tiled.At(4, 0) outside [0, 4, 4): "+grid.ErrOutOfBounds.Error(),
		func() { g.At(pt(4, 0)) })
	require.Panics(t, func() { g.Set(pt(0, -1), 1) })
	require.Zero(t, g.Active())
}

func TestEqual_AgainstDenseGrid(t *testing.T) {
	g, err := tiled.New(pt(6, 4), pt(3, 2), 7)
	require.NoError(t, err)
	dense, err := grid.NewFilled(pt(6, 4), 7)
	require.NoError(t, err)
	require.True(t, grid.Equal[int](g, dense))

	g.Set(pt(4, 3), 0)
	require.False(t, grid.Equal[int](g, dense))
	dense.Set(pt(4, 3), 0)
	require.True(t, grid.Equal[int](g, dense))
}
