// SPDX-License-Identifier: MIT

// Package grid provides generic 2D cell containers, non-owning views and the
// whole-grid operations that work across all of them.
//
// What:
//
//   - Grid[T]           : owned, resizable storage (nil storage when empty).
//   - FixedGrid[T]      : owned storage whose extents never change.
//   - MappedGrid[T]     : borrows a caller slice; Resize re-interprets it.
//   - FixedMappedGrid[T]: borrows a caller slice with fixed extents.
//   - View[T]           : a window into any Accessor; views nest.
//
// Contract:
//
//   - Reader / Accessor are the capability interfaces every kind satisfies.
//   - Indices are relative to the accessor's own index space: a view's (0,0)
//     is its origin in the parent.
//   - Storage is column-major: offset = extents.X*pt.Y + pt.X, so the raw
//     slice order equals the ColIterator order.
//   - Out-of-range indices panic with an error wrapping ErrOutOfBounds.
//
// Whole-grid operations:
//
//   - Fill, Assign, AddAssign, SubAssign, Scale, Divide, Equal, EqualFunc.
//   - Contiguous kinds take a flat-slice fast path; everything else walks a
//     ColIterator.
//   - Fprint / Sprint render row-major text for diagnostics.
//   - ParallelApply runs a callback on disjoint row bands concurrently.
//
// Errors:
//
//   - ErrBadExtents:       negative extents.
//   - ErrExtentsMismatch:  operands of different extents (non-resizable target).
//   - ErrMappedTooSmall:   caller memory shorter than extents.Area().
//   - ErrViewOutOfBounds:  view region outside the parent.
//   - ErrDivideByZero:     Divide by zero.
//   - ErrBadPartition:     ParallelApply with fewer than one band.
//   - ErrOutOfBounds:      wrapped in the panic value of an invalid index.
//   - ErrReadOnly:         Ref on an iterator built over a Reader.
//
// Complexity:
//
//   - At/Ref/Set: O(1). View creation: O(1). Whole-grid ops: O(area).
//   - Grid.Resize: O(1) when extents are unchanged, O(area) otherwise.
package grid
