// SPDX-License-Identifier: MIT

package floodfill

import (
	"fmt"

	"github.com/katalvlaran/twod/coords"
)

// SparseCell pairs a cell value with its position. Frontier order is by Value.
type SparseCell[T any] struct {
	Value    T
	Position coords.Indices
}

// Cell is shorthand for SparseCell{Value: v, Position: pos}.
func Cell[T any](v T, pos coords.Indices) SparseCell[T] {
	return SparseCell[T]{Value: v, Position: pos}
}

func (c SparseCell[T]) String() string {
	return fmt.Sprintf("%v@(%v)", c.Value, c.Position)
}

// Connectivity selects the neighbourhood expanded around each frontier cell.
type Connectivity uint8

const (
	// Conn8 expands into all 8 cells of the surrounding 3×3 ring.
	Conn8 Connectivity = iota
	// Conn4 expands into the 4 edge-adjacent cells.
	Conn4
)

// Neighbour offsets in column-major order (X fastest), centre excluded.
var (
	ring8 = [...]coords.Indices{
		{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
		{X: -1, Y: 0}, {X: 1, Y: 0},
		{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}
	ring4 = [...]coords.Indices{
		{X: 0, Y: -1},
		{X: -1, Y: 0}, {X: 1, Y: 0},
		{X: 0, Y: 1},
	}
)

func (c Connectivity) offsets() []coords.Indices {
	if c == Conn4 {
		return ring4[:]
	}
	return ring8[:]
}
