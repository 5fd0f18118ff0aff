// SPDX-License-Identifier: MIT

package grid_test

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twod/bounds"
	"github.com/katalvlaran/twod/coords"
	"github.com/katalvlaran/twod/grid"
)

// seq returns a grid with cell (x,y) = 10*x + y.
func seq(t *testing.T, e coords.Extents) *grid.Grid[int] {
	t.Helper()
	g, err := grid.New[int](e)
	require.NoError(t, err)
	for pt := range bounds.Cols(g.Bounds()) {
		g.Set(pt, 10*pt.X+pt.Y)
	}
	return g
}

//----------------------------------------------------------------------------//
// Views
//----------------------------------------------------------------------------//

func TestView_RoundTrip(t *testing.T) {
	g, err := grid.New[int](ext(5, 4))
	require.NoError(t, err)
	origin := idx(1, 1)
	v, err := g.View(bounds.New(origin, ext(3, 2)))
	require.NoError(t, err)
	require.Equal(t, ext(3, 2), v.Extents())
	require.Equal(t, origin, v.Origin())

	n := 0
	for it := grid.NewColIterator[int](v); !it.Done(); it.Next() {
		n++
		it.Set(n)
	}
	for pt := range bounds.Cols(bounds.New(idx(0, 0), v.Extents())) {
		require.Equal(t, v.At(pt), g.At(pt.Add(origin)))
		require.NotZero(t, g.At(pt.Add(origin)))
	}
	require.Zero(t, g.At(idx(0, 0)))
	require.Zero(t, g.At(idx(4, 3)))
}

func TestView_Nested(t *testing.T) {
	g := seq(t, ext(6, 6))
	outer, err := g.View(bounds.New(idx(1, 2), ext(4, 3)))
	require.NoError(t, err)
	inner, err := outer.View(bounds.New(idx(1, 0), ext(2, 2)))
	require.NoError(t, err)

	require.Equal(t, g.At(idx(2, 2)), inner.At(idx(0, 0)))
	require.Equal(t, g.At(idx(3, 3)), inner.At(idx(1, 1)))

	*inner.Ref(idx(1, 0)) = -1
	require.Equal(t, -1, g.At(idx(3, 2)))
}

func TestView_OutOfParent(t *testing.T) {
	g, err := grid.New[int](ext(5, 4))
	require.NoError(t, err)
	for _, r := range []bounds.Bounds{
		bounds.New(idx(4, 0), ext(2, 2)),
		bounds.New(idx(-1, 0), ext(1, 1)),
		bounds.New(idx(0, 3), ext(1, 2)),
	} {
		_, err := g.View(r)
		require.ErrorIs(t, err, grid.ErrViewOutOfBounds, "region %v", r)
	}
	whole, err := g.View(g.Bounds())
	require.NoError(t, err)
	require.Equal(t, g.Extents(), whole.Extents())
}

func TestView_OutOfBoundsPanics(t *testing.T) {
	g, err := grid.New[int](ext(5, 4))
	require.NoError(t, err)
	v, err := g.View(bounds.New(idx(1, 1), ext(2, 2)))
	require.NoError(t, err)
	// (2,0) is inside the parent but outside the view.
	requirePanicIs(t, grid.ErrOutOfBounds, func() { v.At(idx(2, 0)) })
}

//----------------------------------------------------------------------------//
// Iterators
//----------------------------------------------------------------------------//

func TestIterators_Order(t *testing.T) {
	g := seq(t, ext(2, 3))

	var cols, rows []int
	for it := grid.NewColReader[int](g); !it.Done(); it.Next() {
		cols = append(cols, it.Value())
	}
	for it := grid.NewRowReader[int](g); !it.Done(); it.Next() {
		rows = append(rows, it.Value())
	}
	require.Equal(t, []int{0, 10, 1, 11, 2, 12}, cols)
	require.Equal(t, []int{0, 1, 2, 10, 11, 12}, rows)

	var pts []coords.Indices
	for pt := range grid.Rows[int](g) {
		pts = append(pts, pt)
		if len(pts) == 2 {
			break
		}
	}
	require.Equal(t, []coords.Indices{idx(0, 0), idx(0, 1)}, pts)

	require.Equal(t, cols, slices.Collect(grid.Values[int](g)))
	v, err := g.View(bounds.New(idx(0, 0), g.Extents()))
	require.NoError(t, err)
	require.Equal(t, cols, slices.Collect(grid.Values[int](v)))
}

func TestIterators_Empty(t *testing.T) {
	var g grid.Grid[int]
	require.True(t, grid.NewColReader[int](&g).Done())
	require.True(t, grid.NewRowReader[int](&g).Done())

	g2, err := grid.New[int](ext(3, 0))
	require.NoError(t, err)
	require.True(t, grid.NewColIterator[int](g2).Done())
	require.True(t, grid.NewRowIterator[int](g2).Done())
	for range grid.Cols[int](g2) {
		t.Fatal("empty grid yielded a cell")
	}
}

func TestIterators_Mutable(t *testing.T) {
	g, err := grid.New[int](ext(3, 2))
	require.NoError(t, err)
	for it := grid.NewRowIterator[int](g); !it.Done(); it.Next() {
		*it.Ref() = it.Coords().X + 1
	}
	for _, p := range grid.Refs[int](g) {
		*p *= 2
	}
	require.Equal(t, []int{2, 4, 6, 2, 4, 6}, g.Data())
}

func TestIterators_ReadOnlyPanics(t *testing.T) {
	g := seq(t, ext(2, 2))
	it := grid.NewColReader[int](g)
	requirePanicIs(t, grid.ErrReadOnly, func() { it.Set(1) })
	rt := grid.NewRowReader[int](g)
	requirePanicIs(t, grid.ErrReadOnly, func() { _ = rt.Ref() })
}

//----------------------------------------------------------------------------//
// Whole-grid operations
//----------------------------------------------------------------------------//

func TestFill_ThroughView(t *testing.T) {
	g, err := grid.New[int](ext(4, 4))
	require.NoError(t, err)
	v, err := g.View(bounds.New(idx(2, 2), ext(2, 2)))
	require.NoError(t, err)
	grid.Fill[int](g, 1)
	require.Equal(t, -1, slices.Index(g.Data(), 0))

	grid.Fill[int](v, 3)
	sum := 0
	for _, x := range g.Data() {
		sum += x
	}
	require.Equal(t, 12+4*3, sum)
}

func TestAssign_ResizesOwnedTarget(t *testing.T) {
	src := seq(t, ext(3, 2))
	dst, err := grid.New[int](ext(1, 1))
	require.NoError(t, err)
	require.NoError(t, grid.Assign[int](dst, src))
	require.Equal(t, src.Extents(), dst.Extents())
	require.True(t, grid.Equal[int](dst, src))

	dst.Set(idx(0, 0), 99)
	require.Equal(t, 0, src.At(idx(0, 0)))
}

func TestAssign_FixedTargetMismatch(t *testing.T) {
	src := seq(t, ext(3, 2))
	dst, err := grid.NewFixed[int](ext(2, 2))
	require.NoError(t, err)
	require.ErrorIs(t, grid.Assign[int](dst, src), grid.ErrExtentsMismatch)

	m, err := grid.NewMapped(ext(1, 1), make([]int, 4))
	require.NoError(t, err)
	require.ErrorIs(t, grid.Assign[int](m, src), grid.ErrMappedTooSmall)
}

func TestAssign_ViewSource(t *testing.T) {
	g := seq(t, ext(4, 4))
	v, err := g.View(bounds.New(idx(1, 1), ext(2, 3)))
	require.NoError(t, err)
	var dst grid.Grid[int]
	require.NoError(t, grid.Assign[int](&dst, v))
	require.Equal(t, ext(2, 3), dst.Extents())
	require.Equal(t, 11, dst.At(idx(0, 0)))
	require.Equal(t, 23, dst.At(idx(1, 2)))
}

func TestAddSubAssign(t *testing.T) {
	a := seq(t, ext(2, 2))
	b, err := grid.NewFilled(ext(2, 2), 5)
	require.NoError(t, err)

	require.NoError(t, grid.AddAssign[int](a, b))
	require.Equal(t, []int{5, 15, 6, 16}, a.Data())
	require.NoError(t, grid.SubAssign[int](a, b))
	require.Equal(t, []int{0, 10, 1, 11}, a.Data())

	v, err := a.View(bounds.New(idx(0, 0), ext(2, 2)))
	require.NoError(t, err)
	require.NoError(t, grid.AddAssign[int](v, b))
	require.Equal(t, []int{5, 15, 6, 16}, a.Data())

	c, err := grid.New[int](ext(2, 3))
	require.NoError(t, err)
	require.ErrorIs(t, grid.AddAssign[int](a, c), grid.ErrExtentsMismatch)
	require.ErrorIs(t, grid.SubAssign[int](a, c), grid.ErrExtentsMismatch)
}

func TestScaleDivide(t *testing.T) {
	g, err := grid.NewFilled(ext(2, 2), 6.0)
	require.NoError(t, err)
	grid.Scale[float64](g, 0.5)
	require.Equal(t, []float64{3, 3, 3, 3}, g.Data())
	require.NoError(t, grid.Divide[float64](g, 3))
	require.Equal(t, []float64{1, 1, 1, 1}, g.Data())
	require.ErrorIs(t, grid.Divide[float64](g, 0), grid.ErrDivideByZero)
	require.Equal(t, []float64{1, 1, 1, 1}, g.Data())
}

func TestEqual(t *testing.T) {
	a, err := grid.New[int](ext(2, 3))
	require.NoError(t, err)
	b, err := grid.New[int](ext(3, 2))
	require.NoError(t, err)
	require.False(t, grid.Equal[int](a, b), "same area, different extents")

	c, err := grid.New[int](ext(2, 3))
	require.NoError(t, err)
	require.True(t, grid.Equal[int](a, c))
	c.Set(idx(1, 2), 1)
	require.False(t, grid.Equal[int](a, c))

	v, err := c.View(c.Bounds())
	require.NoError(t, err)
	require.True(t, grid.Equal[int](v, c))

	near := func(x, y int) bool { return x-y <= 1 && y-x <= 1 }
	require.True(t, grid.EqualFunc[int](a, c, near))
}

//----------------------------------------------------------------------------//
// Formatting
//----------------------------------------------------------------------------//

func TestSprint(t *testing.T) {
	g := seq(t, ext(2, 3))
	require.Equal(t, "   0   1   2\n  10  11  12\n", grid.Sprint[int](g))
	require.Equal(t, grid.Sprint[int](g), g.String())

	var empty grid.Grid[int]
	require.Empty(t, empty.String())
}

//----------------------------------------------------------------------------//
// ParallelApply
//----------------------------------------------------------------------------//

func TestParallelApply_CoversEveryCellOnce(t *testing.T) {
	g, err := grid.New[int](ext(4, 10))
	require.NoError(t, err)
	var calls atomic.Int32
	err = grid.ParallelApply[int](context.Background(), g, 3, func(_ context.Context, band *grid.View[int]) error {
		calls.Add(1)
		if band.Extents().X != 4 {
			return fmt.Errorf("band %v is not full width", band.Bounds())
		}
		for _, p := range grid.Refs[int](band) {
			*p++
		}
		return nil
	})
	require.NoError(t, err)
	require.EqualValues(t, 3, calls.Load())
	for _, v := range g.Data() {
		require.Equal(t, 1, v)
	}
}

func TestParallelApply_ClampsBands(t *testing.T) {
	g, err := grid.New[int](ext(3, 2))
	require.NoError(t, err)
	var calls atomic.Int32
	err = grid.ParallelApply[int](context.Background(), g, 16, func(context.Context, *grid.View[int]) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, calls.Load())
}

func TestParallelApply_Errors(t *testing.T) {
	g, err := grid.New[int](ext(3, 3))
	require.NoError(t, err)
	noop := func(context.Context, *grid.View[int]) error { return nil }
	require.ErrorIs(t, grid.ParallelApply[int](context.Background(), g, 0, noop), grid.ErrBadPartition)

	boom := errors.New("boom")
	err = grid.ParallelApply[int](context.Background(), g, 3, func(_ context.Context, band *grid.View[int]) error {
		if band.Origin().Y == 1 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)

	var empty grid.Grid[int]
	require.NoError(t, grid.ParallelApply[int](context.Background(), &empty, 2, noop))
}
