// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/twod"
	"github.com/katalvlaran/twod/bounds"
	"github.com/katalvlaran/twod/coords"
)

// Grid owns a resizable, column-major cell buffer. The zero value is an empty
// grid with no storage.
type Grid[T any] struct {
	flat[T]
}

// New allocates a grid of the given extents with zero-valued cells.
// Zero area yields an empty grid: extents (0,0) and nil storage.
//
// Errors:
//   - ErrBadExtents on negative extents.
//
// Complexity: O(area).
func New[T any](extents coords.Extents) (*Grid[T], error) {
	if err := checkExtents("grid.New", extents); err != nil {
		return nil, err
	}
	g := &Grid[T]{}
	g.realloc(extents)

	return g, nil
}

// NewFilled allocates a grid with every cell set to v.
//
// Errors:
//   - ErrBadExtents on negative extents.
func NewFilled[T any](extents coords.Extents, v T) (*Grid[T], error) {
	g, err := New[T](extents)
	if err != nil {
		return nil, err
	}
	g.fill(v)

	return g, nil
}

// normalize maps every zero-area extents to (0,0), the single empty state.
func normalize(extents coords.Extents) coords.Extents {
	if extents.Area() == 0 {
		return coords.Extents{}
	}
	return extents
}

// realloc replaces storage without preserving contents.
func (g *Grid[T]) realloc(extents coords.Extents) {
	g.extents = normalize(extents)
	if g.extents.IsZero() {
		g.data = nil
		return
	}
	g.data = make([]T, extents.Area())
}

// Resize changes extents. Three cases:
//   - same extents: nothing happens, storage and contents are kept;
//   - zero area: storage is released and extents become (0,0);
//   - otherwise: storage is replaced and every cell is zero-valued.
//
// Errors:
//   - ErrBadExtents on negative extents.
func (g *Grid[T]) Resize(extents coords.Extents) error {
	if err := checkExtents("Grid.Resize", extents); err != nil {
		return err
	}
	if g.extents == normalize(extents) {
		return nil
	}
	twod.Logger().Debug("grid: reallocate", "from", g.extents, "to", extents)
	g.realloc(extents)

	return nil
}

// ResizeFill is Resize followed by setting every cell to v. With unchanged
// extents the cells are overwritten in place without reallocation.
func (g *Grid[T]) ResizeFill(extents coords.Extents, v T) error {
	if err := g.Resize(extents); err != nil {
		return err
	}
	g.fill(v)

	return nil
}

// Clear releases storage and resets extents to (0,0).
func (g *Grid[T]) Clear() {
	if g.data != nil {
		twod.Logger().Debug("grid: release", "extents", g.extents)
	}
	g.extents = coords.Extents{}
	g.data = nil
}

// Swap exchanges storage and extents with other in O(1).
func (g *Grid[T]) Swap(other *Grid[T]) {
	g.swap(&other.flat)
}

// Clone returns a deep copy.
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{}
	c.extents = g.extents
	if g.data != nil {
		c.data = make([]T, len(g.data))
		copy(c.data, g.data)
	}

	return c
}

// View returns a window over region; indices of the view are relative to
// region's origin.
func (g *Grid[T]) View(region bounds.Region) (*View[T], error) {
	return NewView[T](g, region)
}

// String renders the grid row-major for diagnostics.
func (g *Grid[T]) String() string {
	var b strings.Builder
	if err := Fprint[T](&b, g); err != nil {
		return fmt.Sprintf("grid: %v", err)
	}
	return b.String()
}
