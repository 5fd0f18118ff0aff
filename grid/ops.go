// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/twod/coords"
)

// ---------- error context tags ----------

const (
	ctxAssign    = "Assign"
	ctxAddAssign = "AddAssign"
	ctxSubAssign = "SubAssign"
	ctxDivide    = "Divide"
)

func mismatch(op string, a, b coords.Extents) error {
	return fmt.Errorf("grid.%s(%v, %v): %w", op, a, b, ErrExtentsMismatch)
}

// contiguousPair returns both flat slices when both operands are Contiguous.
func contiguousPair[T any](dst Accessor[T], src Reader[T]) ([]T, []T, bool) {
	d, ok := dst.(Contiguous[T])
	if !ok {
		return nil, nil, false
	}
	s, ok := src.(Contiguous[T])
	if !ok {
		return nil, nil, false
	}
	return d.Data(), s.Data(), true
}

// zip walks dst and src together in column-major order.
func zip[T any](dst Accessor[T], src Reader[T], f func(d *T, s T)) {
	for it := newColIterator(src); !it.Done(); it.Next() {
		f(dst.Ref(it.pt), src.At(it.pt))
	}
}

// Fill sets every cell of g to v.
// Complexity: O(area).
func Fill[T any](g Accessor[T], v T) {
	if c, ok := g.(Contiguous[T]); ok {
		data := c.Data()
		for i := range data {
			data[i] = v
		}
		return
	}
	for it := newColIterator[T](g); !it.Done(); it.Next() {
		g.Set(it.pt, v)
	}
}

// Assign copies src into dst cell by cell.
//
// When extents differ, a Resizer target (Grid, MappedGrid) is resized to
// src's extents first; any other target fails fast.
//
// Errors:
//   - ErrExtentsMismatch when dst cannot be resized.
//   - any error from dst.Resize (for example ErrMappedTooSmall).
//
// Complexity: O(area).
func Assign[T any](dst Accessor[T], src Reader[T]) error {
	if dst.Extents() != src.Extents() {
		r, ok := dst.(Resizer)
		if !ok {
			return mismatch(ctxAssign, dst.Extents(), src.Extents())
		}
		if err := r.Resize(src.Extents()); err != nil {
			return fmt.Errorf("grid.%s: %w", ctxAssign, err)
		}
	}
	if d, s, ok := contiguousPair(dst, src); ok {
		copy(d, s)
		return nil
	}
	zip(dst, src, func(d *T, s T) { *d = s })

	return nil
}

// AddAssign adds src into dst cell by cell.
//
// Errors:
//   - ErrExtentsMismatch when extents differ.
func AddAssign[T coords.Number](dst Accessor[T], src Reader[T]) error {
	if dst.Extents() != src.Extents() {
		return mismatch(ctxAddAssign, dst.Extents(), src.Extents())
	}
	if d, s, ok := contiguousPair(dst, src); ok {
		for i := range d {
			d[i] += s[i]
		}
		return nil
	}
	zip(dst, src, func(d *T, s T) { *d += s })

	return nil
}

// SubAssign subtracts src from dst cell by cell.
//
// Errors:
//   - ErrExtentsMismatch when extents differ.
func SubAssign[T coords.Number](dst Accessor[T], src Reader[T]) error {
	if dst.Extents() != src.Extents() {
		return mismatch(ctxSubAssign, dst.Extents(), src.Extents())
	}
	if d, s, ok := contiguousPair(dst, src); ok {
		for i := range d {
			d[i] -= s[i]
		}
		return nil
	}
	zip(dst, src, func(d *T, s T) { *d -= s })

	return nil
}

// Scale multiplies every cell by s.
func Scale[T coords.Number](g Accessor[T], s T) {
	if c, ok := g.(Contiguous[T]); ok {
		data := c.Data()
		for i := range data {
			data[i] *= s
		}
		return
	}
	for it := newColIterator[T](g); !it.Done(); it.Next() {
		*g.Ref(it.pt) *= s
	}
}

// Divide divides every cell by s.
//
// Errors:
//   - ErrDivideByZero when s == 0; g is left untouched.
func Divide[T coords.Number](g Accessor[T], s T) error {
	if s == 0 {
		return fmt.Errorf("grid.%s: %w", ctxDivide, ErrDivideByZero)
	}
	if c, ok := g.(Contiguous[T]); ok {
		data := c.Data()
		for i := range data {
			data[i] /= s
		}
		return nil
	}
	for it := newColIterator[T](g); !it.Done(); it.Next() {
		*g.Ref(it.pt) /= s
	}

	return nil
}

// Equal compares extents first, then cells in column-major order, stopping
// at the first difference.
func Equal[T comparable](a, b Reader[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied cell comparison.
func EqualFunc[T any](a, b Reader[T], eq func(x, y T) bool) bool {
	if a.Extents() != b.Extents() {
		return false
	}
	ca, okA := a.(Contiguous[T])
	cb, okB := b.(Contiguous[T])
	if okA && okB {
		da, db := ca.Data(), cb.Data()
		for i := range da {
			if !eq(da[i], db[i]) {
				return false
			}
		}
		return true
	}
	for it := newColIterator(a); !it.Done(); it.Next() {
		if !eq(a.At(it.pt), b.At(it.pt)) {
			return false
		}
	}

	return true
}
