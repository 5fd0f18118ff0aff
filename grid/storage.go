// SPDX-License-Identifier: MIT

package grid

import (
	"github.com/katalvlaran/twod/bounds"
	"github.com/katalvlaran/twod/coords"
)

// flat is the shared column-major storage behind Grid, FixedGrid,
// MappedGrid and FixedMappedGrid. Owning kinds allocate data; mapped kinds
// point it at caller memory. len(data) == extents.Area() always.
type flat[T any] struct {
	extents coords.Extents
	data    []T
}

// Origin is always (0,0) for storage-backed kinds.
func (f *flat[T]) Origin() coords.Indices { return coords.Indices{} }

// Extents returns the grid size.
func (f *flat[T]) Extents() coords.Extents { return f.extents }

// Bounds returns (0,0)+Extents().
func (f *flat[T]) Bounds() bounds.Bounds {
	return bounds.New(coords.Indices{}, f.extents)
}

// Empty reports whether the grid has no cells. An owned Grid stores every
// zero-area shape as (0,0); fixed and mapped kinds keep the extents they were
// built with, so (0,5) is empty too.
func (f *flat[T]) Empty() bool { return f.extents.Area() == 0 }

// Within reports whether pt is a valid index.
func (f *flat[T]) Within(pt coords.Indices) bool {
	return pt.X >= 0 && pt.Y >= 0 && pt.X < f.extents.X && pt.Y < f.extents.Y
}

// LinearIndex maps pt to its storage offset: extents.X*pt.Y + pt.X.
func (f *flat[T]) LinearIndex(pt coords.Indices) int {
	return f.extents.X*pt.Y + pt.X
}

// Data returns the backing slice in column-major order. It is nil for an
// empty owning grid. Mutations are visible through the grid.
func (f *flat[T]) Data() []T { return f.data }

// At returns the cell at pt.
func (f *flat[T]) At(pt coords.Indices) T {
	if !f.Within(pt) {
		panic(outOfBounds("At", pt, f.extents))
	}
	return f.data[f.extents.X*pt.Y+pt.X]
}

// Ref returns a pointer to the cell at pt.
func (f *flat[T]) Ref(pt coords.Indices) *T {
	if !f.Within(pt) {
		panic(outOfBounds("Ref", pt, f.extents))
	}
	return &f.data[f.extents.X*pt.Y+pt.X]
}

// Set stores v at pt.
func (f *flat[T]) Set(pt coords.Indices, v T) {
	if !f.Within(pt) {
		panic(outOfBounds("Set", pt, f.extents))
	}
	f.data[f.extents.X*pt.Y+pt.X] = v
}

func (f *flat[T]) fill(v T) {
	for i := range f.data {
		f.data[i] = v
	}
}

// swap exchanges extents and storage handles; no cell is copied.
func (f *flat[T]) swap(o *flat[T]) {
	f.extents, o.extents = o.extents, f.extents
	f.data, o.data = o.data, f.data
}
