// SPDX-License-Identifier: MIT

package grid

import "github.com/katalvlaran/twod/coords"

// Reader is the read half of the grid contract.
type Reader[T any] interface {
	// Origin is where this index space sits in its parent; (0,0) for storage.
	Origin() coords.Indices
	// Extents is the size of the index space.
	Extents() coords.Extents
	// At returns the cell at pt (relative). Panics outside [0, Extents()).
	At(pt coords.Indices) T
}

// Accessor is the full read/write grid contract.
type Accessor[T any] interface {
	Reader[T]
	// Ref returns a pointer to the cell at pt (relative). The pointer is
	// invalidated by any resize of the underlying storage.
	Ref(pt coords.Indices) *T
	// Set stores v at pt (relative).
	Set(pt coords.Indices, v T)
}

// Contiguous is implemented by kinds whose cells live in one flat slice in
// column-major order. Whole-grid operations use it as a fast path.
type Contiguous[T any] interface {
	Data() []T
}

// Resizer is implemented by kinds that can change extents. Assign uses it to
// rescale its target.
type Resizer interface {
	Resize(extents coords.Extents) error
}

// Compile-time conformance.
var (
	_ Accessor[int]   = (*Grid[int])(nil)
	_ Accessor[int]   = (*FixedGrid[int])(nil)
	_ Accessor[int]   = (*MappedGrid[int])(nil)
	_ Accessor[int]   = (*FixedMappedGrid[int])(nil)
	_ Accessor[int]   = (*View[int])(nil)
	_ Contiguous[int] = (*Grid[int])(nil)
	_ Contiguous[int] = (*FixedGrid[int])(nil)
	_ Contiguous[int] = (*MappedGrid[int])(nil)
	_ Contiguous[int] = (*FixedMappedGrid[int])(nil)
	_ Resizer         = (*Grid[int])(nil)
	_ Resizer         = (*MappedGrid[int])(nil)
)
