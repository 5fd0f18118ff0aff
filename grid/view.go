// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/twod/bounds"
	"github.com/katalvlaran/twod/coords"
)

// View is a non-owning window into a parent Accessor. View index (0,0) maps
// to the parent index Origin(); reads and writes go through the parent's own
// At/Ref, so views over views, tiled grids and mapped memory all compose.
//
// A view is invalidated when its parent is resized.
type View[T any] struct {
	parent Accessor[T]
	region bounds.Bounds
}

// NewView creates a window over region of parent.
//
// Errors:
//   - ErrViewOutOfBounds when region is not inside [0, parent.Extents()) or
//     has negative extents.
//
// Complexity: O(1).
func NewView[T any](parent Accessor[T], region bounds.Region) (*View[T], error) {
	o, e := region.Origin(), region.Extents()
	if e.X < 0 || e.Y < 0 || o.X < 0 || o.Y < 0 || !o.Add(e).AllLE(parent.Extents()) {
		return nil, fmt.Errorf("grid.NewView(%v, %v) in %v: %w", o, e, parent.Extents(), ErrViewOutOfBounds)
	}

	return &View[T]{parent: parent, region: bounds.Of(region)}, nil
}

// Whole returns a view covering all of parent.
func Whole[T any](parent Accessor[T]) *View[T] {
	return &View[T]{parent: parent, region: bounds.New(coords.Indices{}, parent.Extents())}
}

// Origin returns the view's origin in its parent.
func (v *View[T]) Origin() coords.Indices { return v.region.Origin() }

// Extents returns the view size.
func (v *View[T]) Extents() coords.Extents { return v.region.Extents() }

// Bounds returns the view region in parent coordinates.
func (v *View[T]) Bounds() bounds.Bounds { return v.region }

// Parent returns the viewed accessor.
func (v *View[T]) Parent() Accessor[T] { return v.parent }

// Within reports whether pt is a valid view index.
func (v *View[T]) Within(pt coords.Indices) bool {
	e := v.region.Extents()
	return pt.X >= 0 && pt.Y >= 0 && pt.X < e.X && pt.Y < e.Y
}

// At reads parent.At(pt + Origin()).
func (v *View[T]) At(pt coords.Indices) T {
	if !v.Within(pt) {
		panic(outOfBounds("View.At", pt, v.region.Extents()))
	}
	return v.parent.At(pt.Add(v.region.Origin()))
}

// Ref returns parent.Ref(pt + Origin()).
func (v *View[T]) Ref(pt coords.Indices) *T {
	if !v.Within(pt) {
		panic(outOfBounds("View.Ref", pt, v.region.Extents()))
	}
	return v.parent.Ref(pt.Add(v.region.Origin()))
}

// Set writes parent.Set(pt + Origin(), val).
func (v *View[T]) Set(pt coords.Indices, val T) {
	if !v.Within(pt) {
		panic(outOfBounds("View.Set", pt, v.region.Extents()))
	}
	v.parent.Set(pt.Add(v.region.Origin()), val)
}

// View returns a nested window; region is relative to this view.
func (v *View[T]) View(region bounds.Region) (*View[T], error) {
	return NewView[T](v, region)
}
