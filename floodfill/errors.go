// SPDX-License-Identifier: MIT

package floodfill

import "errors"

var (
	// ErrNilCallback indicates a nil update, validate, seed or comparator func.
	ErrNilCallback = errors.New("floodfill: callback must not be nil")

	// ErrStepLimit indicates the fill stopped after WithMaxSteps pops while the
	// frontier was still non-empty. Cells written so far are kept.
	ErrStepLimit = errors.New("floodfill: step limit reached")
)
