// SPDX-License-Identifier: MIT

// Package floodfill grows values outward from seed cells over any
// grid.Accessor, always expanding the highest-valued frontier cell first.
//
// What:
//
//   - A frontier of SparseCell values ordered max-first (container/heap).
//   - Each popped cell c produces one value, update(c); every neighbour n of
//     c that lies inside the grid and passes validate(n) is overwritten with
//     that value immediately and pushed onto the frontier.
//   - Neighbours are visited column-major over the 3×3 ring around c
//     (8-connectivity) or over its four edge-adjacent cells (Conn4).
//
// Why:
//
//   - Descending fills ("distance fields", brushfire costs, decaying
//     influence maps) fall out of a max-first frontier: a cell is first
//     reached from its highest-valued neighbour, and validate decides whether
//     a later, lower value may overwrite it.
//
// Positions are relative to the grid passed in. A flood fill over a View
// therefore never escapes the view, and seed positions are view indices.
//
// Termination: each overwrite pushes one entry, so the fill terminates as
// long as validate rejects cells that already hold a filled value (the usual
// "cell == 0" style check). WithMaxSteps bounds the work regardless.
//
// Complexity: O(K·log K) for K pushes, K ≤ 8·overwrites + len(seeds).
//
// Example:
//
//	g, _ := grid.New[int](coords.New(10, 10))
//	g.Set(coords.New(4, 4), 10)
//	_ = floodfill.FillFunc[int](g,
//		func(v int) bool { return v > 0 },
//		func(c floodfill.SparseCell[int]) int { return max(1, c.Value-1) },
//		func(c floodfill.SparseCell[int]) bool { return c.Value == 0 },
//	)
package floodfill
