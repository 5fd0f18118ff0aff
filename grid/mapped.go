// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/twod/bounds"
	"github.com/katalvlaran/twod/coords"
)

// MappedGrid presents caller-owned memory as a grid. It never allocates or
// releases cells; the caller keeps mem alive and unshared for as long as the
// grid is used.
type MappedGrid[T any] struct {
	flat[T]
	mem []T // full caller slice; data is mem[:extents.Area()]
}

func mapMemory[T any](op string, extents coords.Extents, mem []T) ([]T, error) {
	if err := checkExtents(op, extents); err != nil {
		return nil, err
	}
	if len(mem) < extents.Area() {
		return nil, fmt.Errorf("%s(%v, len=%d): %w", op, extents, len(mem), ErrMappedTooSmall)
	}
	return mem[:extents.Area():extents.Area()], nil
}

// NewMapped maps mem as a grid of the given extents.
//
// Errors:
//   - ErrBadExtents on negative extents.
//   - ErrMappedTooSmall when len(mem) < extents.Area().
func NewMapped[T any](extents coords.Extents, mem []T) (*MappedGrid[T], error) {
	data, err := mapMemory("grid.NewMapped", extents, mem)
	if err != nil {
		return nil, err
	}
	g := &MappedGrid[T]{mem: mem}
	g.extents = extents
	g.data = data

	return g, nil
}

// Resize re-interprets the same memory with new extents. Cells keep their
// linear positions.
//
// Errors:
//   - ErrBadExtents, ErrMappedTooSmall.
func (g *MappedGrid[T]) Resize(extents coords.Extents) error {
	data, err := mapMemory("MappedGrid.Resize", extents, g.mem)
	if err != nil {
		return err
	}
	g.extents = extents
	g.data = data

	return nil
}

// ResizeFill is Resize followed by setting every cell to v.
func (g *MappedGrid[T]) ResizeFill(extents coords.Extents, v T) error {
	if err := g.Resize(extents); err != nil {
		return err
	}
	g.fill(v)

	return nil
}

// Swap exchanges mapped memory and extents with other in O(1).
func (g *MappedGrid[T]) Swap(other *MappedGrid[T]) {
	g.swap(&other.flat)
	g.mem, other.mem = other.mem, g.mem
}

// View returns a window over region.
func (g *MappedGrid[T]) View(region bounds.Region) (*View[T], error) {
	return NewView[T](g, region)
}

// FixedMappedGrid presents caller-owned memory as a grid with fixed extents.
type FixedMappedGrid[T any] struct {
	flat[T]
}

// NewFixedMapped maps mem as a fixed-extents grid.
//
// Errors:
//   - ErrBadExtents, ErrMappedTooSmall.
func NewFixedMapped[T any](extents coords.Extents, mem []T) (*FixedMappedGrid[T], error) {
	data, err := mapMemory("grid.NewFixedMapped", extents, mem)
	if err != nil {
		return nil, err
	}
	g := &FixedMappedGrid[T]{}
	g.extents = extents
	g.data = data

	return g, nil
}

// View returns a window over region.
func (g *FixedMappedGrid[T]) View(region bounds.Region) (*View[T], error) {
	return NewView[T](g, region)
}
