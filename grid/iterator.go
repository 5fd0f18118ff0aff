// SPDX-License-Identifier: MIT

package grid

import (
	"iter"

	"github.com/katalvlaran/twod/coords"
)

// ColIterator walks the cells of a grid in column-major order (X fastest).
// It keeps a reference to its grid and is invalidated if that grid is
// resized during the walk.
//
// Usage:
//
//	for it := grid.NewColIterator[int](g); !it.Done(); it.Next() {
//		*it.Ref() += 1
//	}
type ColIterator[T any] struct {
	r   Reader[T]
	w   Accessor[T] // nil for read-only iterators
	pt  coords.Indices
	ext coords.Extents
}

// NewColIterator returns a mutable column-major iterator at (0,0).
func NewColIterator[T any](a Accessor[T]) *ColIterator[T] {
	it := newColIterator[T](a)
	it.w = a
	return it
}

// NewColReader returns a read-only column-major iterator at (0,0).
func NewColReader[T any](r Reader[T]) *ColIterator[T] {
	return newColIterator(r)
}

func newColIterator[T any](r Reader[T]) *ColIterator[T] {
	ext := r.Extents()
	it := &ColIterator[T]{r: r, ext: ext}
	if ext.X <= 0 || ext.Y <= 0 {
		it.pt.Y = ext.Y
	}
	return it
}

// Done reports whether the walk is past the last cell.
func (it *ColIterator[T]) Done() bool { return it.pt.Y == it.ext.Y }

// Next advances one cell.
func (it *ColIterator[T]) Next() {
	it.pt.X++
	if it.pt.X == it.ext.X {
		it.pt.X = 0
		it.pt.Y++
	}
}

// Coords returns the current grid-relative index.
func (it *ColIterator[T]) Coords() coords.Indices { return it.pt }

// Value reads the current cell.
func (it *ColIterator[T]) Value() T { return it.r.At(it.pt) }

// Ref returns a pointer to the current cell. It panics with ErrReadOnly on a
// read-only iterator.
func (it *ColIterator[T]) Ref() *T {
	if it.w == nil {
		panic(ErrReadOnly)
	}
	return it.w.Ref(it.pt)
}

// Set writes the current cell. It panics with ErrReadOnly on a read-only iterator.
func (it *ColIterator[T]) Set(v T) {
	if it.w == nil {
		panic(ErrReadOnly)
	}
	it.w.Set(it.pt, v)
}

// RowIterator walks the cells of a grid in row-major order (Y fastest).
type RowIterator[T any] struct {
	r   Reader[T]
	w   Accessor[T]
	pt  coords.Indices
	ext coords.Extents
}

// NewRowIterator returns a mutable row-major iterator at (0,0).
func NewRowIterator[T any](a Accessor[T]) *RowIterator[T] {
	it := newRowIterator[T](a)
	it.w = a
	return it
}

// NewRowReader returns a read-only row-major iterator at (0,0).
func NewRowReader[T any](r Reader[T]) *RowIterator[T] {
	return newRowIterator(r)
}

func newRowIterator[T any](r Reader[T]) *RowIterator[T] {
	ext := r.Extents()
	it := &RowIterator[T]{r: r, ext: ext}
	if ext.X <= 0 || ext.Y <= 0 {
		it.pt.X = ext.X
	}
	return it
}

// Done reports whether the walk is past the last cell.
func (it *RowIterator[T]) Done() bool { return it.pt.X == it.ext.X }

// Next advances one cell.
func (it *RowIterator[T]) Next() {
	it.pt.Y++
	if it.pt.Y == it.ext.Y {
		it.pt.Y = 0
		it.pt.X++
	}
}

// Coords returns the current grid-relative index.
func (it *RowIterator[T]) Coords() coords.Indices { return it.pt }

// Value reads the current cell.
func (it *RowIterator[T]) Value() T { return it.r.At(it.pt) }

// Ref returns a pointer to the current cell. It panics with ErrReadOnly on a
// read-only iterator.
func (it *RowIterator[T]) Ref() *T {
	if it.w == nil {
		panic(ErrReadOnly)
	}
	return it.w.Ref(it.pt)
}

// Set writes the current cell. It panics with ErrReadOnly on a read-only iterator.
func (it *RowIterator[T]) Set(v T) {
	if it.w == nil {
		panic(ErrReadOnly)
	}
	it.w.Set(it.pt, v)
}

// Cols yields (index, value) pairs in column-major order.
func Cols[T any](r Reader[T]) iter.Seq2[coords.Indices, T] {
	return func(yield func(coords.Indices, T) bool) {
		for it := newColIterator(r); !it.Done(); it.Next() {
			if !yield(it.pt, it.r.At(it.pt)) {
				return
			}
		}
	}
}

// Rows yields (index, value) pairs in row-major order.
func Rows[T any](r Reader[T]) iter.Seq2[coords.Indices, T] {
	return func(yield func(coords.Indices, T) bool) {
		for it := newRowIterator(r); !it.Done(); it.Next() {
			if !yield(it.pt, it.r.At(it.pt)) {
				return
			}
		}
	}
}

// Refs yields (index, pointer) pairs in column-major order. Writing through
// the pointer updates the grid; on a tiled grid each Ref materialises a tile.
func Refs[T any](a Accessor[T]) iter.Seq2[coords.Indices, *T] {
	return func(yield func(coords.Indices, *T) bool) {
		for it := newColIterator[T](a); !it.Done(); it.Next() {
			if !yield(it.pt, a.Ref(it.pt)) {
				return
			}
		}
	}
}

// Values yields every cell in the default (column-major) order. Contiguous
// grids are walked straight off their backing slice.
func Values[T any](r Reader[T]) iter.Seq[T] {
	if c, ok := r.(Contiguous[T]); ok {
		data := c.Data()
		return func(yield func(T) bool) {
			for _, v := range data {
				if !yield(v) {
					return
				}
			}
		}
	}
	return func(yield func(T) bool) {
		for it := newColIterator(r); !it.Done(); it.Next() {
			if !yield(it.r.At(it.pt)) {
				return
			}
		}
	}
}
