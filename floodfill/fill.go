// SPDX-License-Identifier: MIT

package floodfill

import (
	"cmp"
	"container/heap"
	"fmt"

	"github.com/katalvlaran/twod"
	"github.com/katalvlaran/twod/coords"
	"github.com/katalvlaran/twod/grid"
)

// byValue orders sparse cells by their value.
func byValue[T cmp.Ordered](a, b SparseCell[T]) bool { return cmp.Less(a.Value, b.Value) }

// Fill runs a max-first flood fill from the given seeds.
//
// For each popped cell c (greatest Value first), v = update(c) is computed
// once; then every in-bounds neighbour n with validate(n) true is set to v
// and pushed as SparseCell{v, n.Position}. validate sees the neighbour's
// current value, so cells written earlier in the same fill are visible.
//
// Seeds are pushed as given; their own cells are not written.
//
// Errors:
//   - ErrNilCallback when update or validate is nil.
//   - ErrStepLimit when WithMaxSteps stops the fill early.
func Fill[T cmp.Ordered](
	g grid.Accessor[T],
	seeds []SparseCell[T],
	update func(SparseCell[T]) T,
	validate func(SparseCell[T]) bool,
	opts ...Option,
) error {
	return FillLess(g, seeds, update, validate, byValue[T], opts...)
}

// FillFunc collects seeds by scanning g column-major and keeping every cell
// whose value satisfies isSeed, then runs Fill.
//
// Errors:
//   - ErrNilCallback when isSeed, update or validate is nil.
//   - ErrStepLimit when WithMaxSteps stops the fill early.
func FillFunc[T cmp.Ordered](
	g grid.Accessor[T],
	isSeed func(T) bool,
	update func(SparseCell[T]) T,
	validate func(SparseCell[T]) bool,
	opts ...Option,
) error {
	return FillFuncLess(g, isSeed, update, validate, byValue[T], opts...)
}

// FillFuncLess is FillFunc with an explicit frontier ordering.
func FillFuncLess[T any](
	g grid.Accessor[T],
	isSeed func(T) bool,
	update func(SparseCell[T]) T,
	validate func(SparseCell[T]) bool,
	less func(a, b SparseCell[T]) bool,
	opts ...Option,
) error {
	if isSeed == nil {
		return fmt.Errorf("floodfill.FillFunc: seed predicate: %w", ErrNilCallback)
	}
	var seeds []SparseCell[T]
	for pt, v := range grid.Cols[T](g) {
		if isSeed(v) {
			seeds = append(seeds, SparseCell[T]{Value: v, Position: pt})
		}
	}

	return FillLess(g, seeds, update, validate, less, opts...)
}

// FillLess is Fill for any cell type; less orders the frontier and the
// greatest cell under less is expanded first.
//
// Errors:
//   - ErrNilCallback when update, validate or less is nil.
//   - ErrStepLimit when WithMaxSteps stops the fill early.
func FillLess[T any](
	g grid.Accessor[T],
	seeds []SparseCell[T],
	update func(SparseCell[T]) T,
	validate func(SparseCell[T]) bool,
	less func(a, b SparseCell[T]) bool,
	opts ...Option,
) error {
	if update == nil || validate == nil || less == nil {
		return fmt.Errorf("floodfill.Fill: %w", ErrNilCallback)
	}
	o := gatherOptions(opts)
	ext := g.Extents()
	within := func(p coords.Indices) bool {
		return p.X >= 0 && p.Y >= 0 && p.X < ext.X && p.Y < ext.Y
	}

	// Copy so heap.Init never reorders the caller's slice.
	f := &frontier[T]{cells: append(make([]SparseCell[T], 0, len(seeds)), seeds...), less: less}
	heap.Init(f)

	var pops, writes int
	for f.Len() > 0 {
		if o.maxSteps > 0 && pops == o.maxSteps {
			twod.Logger().Debug("floodfill: step limit", "pops", pops, "writes", writes, "pending", f.Len())
			return fmt.Errorf("floodfill.Fill: after %d steps: %w", pops, ErrStepLimit)
		}
		cur := heap.Pop(f).(SparseCell[T])
		pops++
		next := update(cur)

		for _, off := range o.conn.offsets() {
			pos := cur.Position.Add(off)
			if !within(pos) || !validate(SparseCell[T]{Value: g.At(pos), Position: pos}) {
				continue
			}
			g.Set(pos, next)
			heap.Push(f, SparseCell[T]{Value: next, Position: pos})
			writes++
		}
	}
	twod.Logger().Debug("floodfill: done", "extents", ext, "seeds", len(seeds), "pops", pops, "writes", writes)

	return nil
}
