// SPDX-License-Identifier: MIT

package tiled

import (
	"github.com/katalvlaran/twod/coords"
	"github.com/katalvlaran/twod/grid"
)

// State is the lifecycle of a tile. The only transition is Absent to
// Materialized.
type State uint8

const (
	Absent State = iota
	Materialized
)

func (s State) String() string {
	if s == Materialized {
		return "materialized"
	}
	return "absent"
}

// Tile is one block of a tiled grid.
type Tile[T any] struct {
	state  State
	data   *grid.FixedGrid[T]
	origin coords.Indices
}

// State reports whether the tile owns storage.
func (t *Tile[T]) State() State { return t.state }

// Data returns the tile storage, or nil while the tile is Absent.
func (t *Tile[T]) Data() *grid.FixedGrid[T] { return t.data }

// Origin is the tile's first cell in grid coordinates. It is (0,0) until the
// tile is materialised.
func (t *Tile[T]) Origin() coords.Indices { return t.origin }
