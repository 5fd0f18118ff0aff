// SPDX-License-Identifier: MIT

package bounds

import (
	"iter"

	"github.com/katalvlaran/twod/coords"
)

// ColIterator enumerates the points of a region in column-major order: X
// advances first and wraps to the next Y when it reaches the far edge.
//
// Usage:
//
//	for it := bounds.NewColIterator(r); !it.Done(); it.Next() {
//		use(it.Point())
//	}
type ColIterator struct {
	pt     coords.Indices // current point
	origin coords.Indices // wrap target
	far    coords.Indices // origin + extents
}

// NewColIterator starts at r.Origin(). An area-zero region starts done.
func NewColIterator(r Region) ColIterator {
	o, e := r.Origin(), r.Extents()
	it := ColIterator{pt: o, origin: o, far: o.Add(e)}
	if e.X <= 0 || e.Y <= 0 {
		it.pt.Y = it.far.Y
	}
	return it
}

// Done reports whether the walk is past the last point. Only Y is compared.
func (it *ColIterator) Done() bool { return it.pt.Y == it.far.Y }

// Next advances one point.
func (it *ColIterator) Next() {
	it.pt.X++
	if it.pt.X == it.far.X {
		it.pt.X = it.origin.X
		it.pt.Y++
	}
}

// Point returns the current point.
func (it *ColIterator) Point() coords.Indices { return it.pt }

// Far returns origin + extents of the walked region.
func (it *ColIterator) Far() coords.Indices { return it.far }

// RowIterator enumerates the points of a region in row-major order: Y
// advances first and wraps to the next X when it reaches the far edge.
type RowIterator struct {
	pt     coords.Indices
	origin coords.Indices
	far    coords.Indices
}

// NewRowIterator starts at r.Origin(). An area-zero region starts done.
func NewRowIterator(r Region) RowIterator {
	o, e := r.Origin(), r.Extents()
	it := RowIterator{pt: o, origin: o, far: o.Add(e)}
	if e.X <= 0 || e.Y <= 0 {
		it.pt.X = it.far.X
	}
	return it
}

// Done reports whether the walk is past the last point. Only X is compared.
func (it *RowIterator) Done() bool { return it.pt.X == it.far.X }

// Next advances one point.
func (it *RowIterator) Next() {
	it.pt.Y++
	if it.pt.Y == it.far.Y {
		it.pt.Y = it.origin.Y
		it.pt.X++
	}
}

// Point returns the current point.
func (it *RowIterator) Point() coords.Indices { return it.pt }

// Far returns origin + extents of the walked region.
func (it *RowIterator) Far() coords.Indices { return it.far }

// Cols yields every point of r in column-major order.
func Cols(r Region) iter.Seq[coords.Indices] {
	return func(yield func(coords.Indices) bool) {
		for it := NewColIterator(r); !it.Done(); it.Next() {
			if !yield(it.pt) {
				return
			}
		}
	}
}

// Rows yields every point of r in row-major order.
func Rows(r Region) iter.Seq[coords.Indices] {
	return func(yield func(coords.Indices) bool) {
		for it := NewRowIterator(r); !it.Done(); it.Next() {
			if !yield(it.pt) {
				return
			}
		}
	}
}
