// SPDX-License-Identifier: MIT

// Package bounds models axis-aligned, half-open rectangles and the point
// iterators that walk them.
//
// What:
//
//   - A rectangle is (origin, extents); interior points p satisfy
//     origin <= p < origin+extents componentwise.
//   - Four policies share one contract and differ only in which halves may
//     change after construction:
//     Bounds (origin and extents mutable), FixedOrigin (extents mutable),
//     FixedExtents (origin mutable), FixedOriginExtents (immutable).
//   - Region is the read-only interface every policy (and every grid)
//     satisfies; the package-level helpers accept any Region.
//   - ColIterator / RowIterator enumerate interior points in column-major or
//     row-major order; Cols / Rows expose the same walks as iter.Seq.
//
// Containment conventions:
//
//   - Within(pt) is half-open: the far edge is outside.
//   - Contains(other) treats a flush far edge as inside
//     (other.far <= this.far); ContainsStrict requires other.far < this.far.
//
// Errors:
//
//   - ErrNegativeExtents: a constructor or Resize received a negative extent.
//     The constructors panic with it (programmer error).
//
// Complexity:
//
//   - Every query is O(1); iterators are O(1) per step.
package bounds
