// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/twod/coords"
)

var (
	// ErrBadExtents indicates negative extents.
	ErrBadExtents = errors.New("grid: extents must be non-negative")

	// ErrExtentsMismatch indicates operands with different extents.
	ErrExtentsMismatch = errors.New("grid: extents mismatch")

	// ErrMappedTooSmall indicates caller memory shorter than extents.Area().
	ErrMappedTooSmall = errors.New("grid: mapped memory smaller than extents")

	// ErrViewOutOfBounds indicates a view region that leaves its parent.
	ErrViewOutOfBounds = errors.New("grid: view region outside parent")

	// ErrOutOfBounds is wrapped in the panic raised by an invalid index.
	ErrOutOfBounds = errors.New("grid: index out of bounds")

	// ErrDivideByZero indicates Divide with a zero divisor.
	ErrDivideByZero = errors.New("grid: divide by zero")

	// ErrBadPartition indicates ParallelApply with fewer than one band.
	ErrBadPartition = errors.New("grid: partition must have at least one band")

	// ErrReadOnly indicates a write through an iterator built over a Reader.
	ErrReadOnly = errors.New("grid: iterator is read-only")
)

// outOfBounds builds the panic value for an invalid index.
func outOfBounds(op string, pt coords.Indices, ext coords.Extents) error {
	return fmt.Errorf("%s(%v) outside [0, %v): %w", op, pt, ext, ErrOutOfBounds)
}

func checkExtents(op string, ext coords.Extents) error {
	if ext.X < 0 || ext.Y < 0 {
		return fmt.Errorf("%s(%v): %w", op, ext, ErrBadExtents)
	}
	return nil
}
