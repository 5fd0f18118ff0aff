// SPDX-License-Identifier: MIT

package tiled

import (
	"fmt"

	"github.com/katalvlaran/twod"
	"github.com/katalvlaran/twod/bounds"
	"github.com/katalvlaran/twod/coords"
	"github.com/katalvlaran/twod/grid"
)

// Grid is a fixed-extents grid stored as a layout of lazily allocated tiles.
type Grid[T any] struct {
	extents coords.Extents
	tileExt coords.Extents
	def     T
	tiles   *grid.FixedGrid[Tile[T]]
}

var _ grid.Accessor[int] = (*Grid[int])(nil)

// New creates a tiled grid whose cells all read as def.
//
// Errors:
//   - ErrTileShape when tileExtents is not positive, exceeds extents, or
//     does not divide extents in both dimensions.
//
// Complexity: O(extents.Area()/tileExtents.Area()); no cell storage is
// allocated.
func New[T any](extents, tileExtents coords.Extents, def T) (*Grid[T], error) {
	if !tileExtents.AllGT(coords.Zero[int]()) ||
		!tileExtents.AllLE(extents) ||
		extents.X%tileExtents.X != 0 || extents.Y%tileExtents.Y != 0 {
		return nil, fmt.Errorf("tiled.New(%v, %v): %w", extents, tileExtents, ErrTileShape)
	}
	tiles, err := grid.NewFixed[Tile[T]](extents.Quo(tileExtents))
	if err != nil {
		return nil, fmt.Errorf("tiled.New: %w", err)
	}

	return &Grid[T]{extents: extents, tileExt: tileExtents, def: def, tiles: tiles}, nil
}

// Origin is always (0,0).
func (g *Grid[T]) Origin() coords.Indices { return coords.Indices{} }

// Extents returns the full cell extents.
func (g *Grid[T]) Extents() coords.Extents { return g.extents }

// Bounds returns (0,0)+Extents().
func (g *Grid[T]) Bounds() bounds.Bounds { return bounds.New(coords.Indices{}, g.extents) }

// TileExtents returns the size of one tile.
func (g *Grid[T]) TileExtents() coords.Extents { return g.tileExt }

// Layout returns the number of tiles along each axis.
func (g *Grid[T]) Layout() coords.Extents { return g.tiles.Extents() }

// TileCount returns Layout().Area().
func (g *Grid[T]) TileCount() int { return g.tiles.Extents().Area() }

// Default returns the value reported by cells of absent tiles.
func (g *Grid[T]) Default() T { return g.def }

// Active returns the number of materialised tiles.
// Complexity: O(TileCount()).
func (g *Grid[T]) Active() int {
	n := 0
	for _, t := range g.tiles.Data() {
		if t.state == Materialized {
			n++
		}
	}
	return n
}

// Tile returns the tile at index (tile coordinates, not cells). It panics
// outside [0, Layout()).
func (g *Grid[T]) Tile(index coords.Indices) *Tile[T] { return g.tiles.Ref(index) }

// Mask reports, per tile, whether it is materialised.
func (g *Grid[T]) Mask() *grid.FixedGrid[bool] {
	mask, _ := grid.NewFixed[bool](g.tiles.Extents()) // layout extents are valid
	for i, t := range g.tiles.Data() {
		mask.Data()[i] = t.state == Materialized
	}

	return mask
}

// Within reports whether pt is a valid cell index.
func (g *Grid[T]) Within(pt coords.Indices) bool {
	return pt.X >= 0 && pt.Y >= 0 && pt.X < g.extents.X && pt.Y < g.extents.Y
}

func (g *Grid[T]) tileOf(op string, pt coords.Indices) *Tile[T] {
	if !g.Within(pt) {
		panic(fmt.Errorf("tiled.%s(%v) outside [0, %v): %w", op, pt, g.extents, grid.ErrOutOfBounds))
	}
	return g.tiles.Ref(pt.Quo(g.tileExt))
}

// At returns the cell value; cells of absent tiles read as Default(). It
// never allocates.
func (g *Grid[T]) At(pt coords.Indices) T {
	t := g.tileOf("At", pt)
	if t.state == Absent {
		return g.def
	}
	return t.data.At(pt.Sub(t.origin))
}

// Ref returns a pointer to the cell, materialising its tile first.
func (g *Grid[T]) Ref(pt coords.Indices) *T {
	t := g.tileOf("Ref", pt)
	if t.state == Absent {
		g.materialize(t, pt.Quo(g.tileExt))
	}
	return t.data.Ref(pt.Sub(t.origin))
}

// Set stores v, materialising the owning tile first.
func (g *Grid[T]) Set(pt coords.Indices, v T) {
	*g.Ref(pt) = v
}

func (g *Grid[T]) materialize(t *Tile[T], index coords.Indices) {
	data, _ := grid.NewFixedFilled(g.tileExt, g.def) // tile extents validated in New
	t.data = data
	t.origin = index.Mul(g.tileExt)
	t.state = Materialized
	twod.Logger().Debug("tiled: materialize", "tile", index, "origin", t.origin)
}

// View returns a window over region.
func (g *Grid[T]) View(region bounds.Region) (*grid.View[T], error) {
	return grid.NewView[T](g, region)
}
