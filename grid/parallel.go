// SPDX-License-Identifier: MIT

package grid

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/twod"
	"github.com/katalvlaran/twod/bounds"
	"github.com/katalvlaran/twod/coords"
)

// ParallelApply splits g into at most `bands` disjoint row bands (full width
// in X, contiguous ranges of Y) and calls fn on a view of each band
// concurrently. The first error cancels the context handed to the other
// callbacks and is returned.
//
// g must tolerate concurrent writes to disjoint cells: owned, fixed and
// mapped grids do; a tiled grid does when every band boundary is a multiple
// of its tile height in Y.
//
// Errors:
//   - ErrBadPartition when bands < 1.
//   - the first error returned by fn.
func ParallelApply[T any](ctx context.Context, g Accessor[T], bands int, fn func(ctx context.Context, band *View[T]) error) error {
	if bands < 1 {
		return fmt.Errorf("grid.ParallelApply(%d): %w", bands, ErrBadPartition)
	}
	ext := g.Extents()
	if ext.Area() == 0 {
		return nil
	}
	bands = min(bands, ext.Y)
	step := (ext.Y + bands - 1) / bands
	twod.Logger().Debug("grid: parallel apply", "extents", ext, "bands", bands, "step", step)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for y0 := 0; y0 < ext.Y; y0 += step {
		h := min(step, ext.Y-y0)
		band := &View[T]{
			parent: g,
			region: bounds.New(coords.New(0, y0), coords.New(ext.X, h)),
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, band)
		})
	}

	return eg.Wait()
}
