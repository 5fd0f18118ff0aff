// SPDX-License-Identifier: MIT

package grid

import (
	"github.com/katalvlaran/twod/bounds"
	"github.com/katalvlaran/twod/coords"
)

// FixedGrid owns storage whose extents are set once at construction.
type FixedGrid[T any] struct {
	flat[T]
}

// NewFixed allocates a fixed grid with zero-valued cells.
//
// Errors:
//   - ErrBadExtents on negative extents.
func NewFixed[T any](extents coords.Extents) (*FixedGrid[T], error) {
	if err := checkExtents("grid.NewFixed", extents); err != nil {
		return nil, err
	}
	g := &FixedGrid[T]{}
	g.extents = extents
	g.data = make([]T, extents.Area())

	return g, nil
}

// NewFixedFilled allocates a fixed grid with every cell set to v.
func NewFixedFilled[T any](extents coords.Extents, v T) (*FixedGrid[T], error) {
	g, err := NewFixed[T](extents)
	if err != nil {
		return nil, err
	}
	g.fill(v)

	return g, nil
}

// Clone returns a deep copy.
func (g *FixedGrid[T]) Clone() *FixedGrid[T] {
	c := &FixedGrid[T]{}
	c.extents = g.extents
	c.data = make([]T, len(g.data))
	copy(c.data, g.data)

	return c
}

// View returns a window over region.
func (g *FixedGrid[T]) View(region bounds.Region) (*View[T], error) {
	return NewView[T](g, region)
}
