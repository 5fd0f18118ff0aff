// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/twod/coords"
	"github.com/katalvlaran/twod/grid"
)

// New wraps src as a graph whose vertices are cells and whose land cells are
// those satisfying land.
// Returns ErrEmptyGrid if src has zero area, ErrNilPredicate if land is nil.
// Algorithmic complexity: O(1); src is not copied.
func New[T any](src grid.Reader[T], land func(T) bool, opts ...Option) (*GridGraph[T], error) {
	if src.Extents().Area() == 0 {
		return nil, fmt.Errorf("gridgraph.New(%v): %w", src.Extents(), ErrEmptyGrid)
	}
	if land == nil {
		return nil, ErrNilPredicate
	}
	o := Options{conn: DefaultConnectivity}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	offsets := offsets4
	if o.conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph[T]{
		src:     src,
		ext:     src.Extents(),
		land:    land,
		conn:    o.conn,
		offsets: offsets,
	}, nil
}

// Extents returns the grid size.
func (gg *GridGraph[T]) Extents() coords.Extents { return gg.ext }

// Connectivity returns the configured connectivity.
func (gg *GridGraph[T]) Connectivity() Connectivity { return gg.conn }

// InBounds reports whether pt lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph[T]) InBounds(pt coords.Indices) bool {
	return pt.X >= 0 && pt.X < gg.ext.X && pt.Y >= 0 && pt.Y < gg.ext.Y
}

// Land reports whether the in-bounds cell pt is land.
func (gg *GridGraph[T]) Land(pt coords.Indices) bool {
	return gg.land(gg.src.At(pt))
}

// Neighbors yields the in-bounds neighbors of pt in a fixed clockwise order
// starting north.
func (gg *GridGraph[T]) Neighbors(pt coords.Indices) iter.Seq[coords.Indices] {
	return func(yield func(coords.Indices) bool) {
		for _, d := range gg.offsets {
			n := pt.Add(d)
			if gg.InBounds(n) && !yield(n) {
				return
			}
		}
	}
}

// index maps pt to its column-major offset: Extents().X*pt.Y + pt.X.
func (gg *GridGraph[T]) index(pt coords.Indices) int {
	return gg.ext.X*pt.Y + pt.X
}

// Coordinate converts a column-major offset back to a cell index.
// Complexity: O(1).
func (gg *GridGraph[T]) Coordinate(idx int) coords.Indices {
	return coords.New(idx%gg.ext.X, idx/gg.ext.X)
}
