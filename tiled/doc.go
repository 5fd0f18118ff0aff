// SPDX-License-Identifier: MIT

// Package tiled implements a lazily allocated grid split into equal tiles.
//
// Every tile starts Absent and reads as the grid's default value without
// allocating. The first mutable access (Ref or Set) to any cell of a tile
// materialises it: a grid.FixedGrid of the tile size is allocated, filled
// with the default, and kept for the lifetime of the tiled grid.
//
//	g, _ := tiled.New(coords.New(20, 20), coords.New(5, 5), 0)
//	g.Set(coords.New(5, 5), 6)  // tile (1,1) becomes Materialized
//	g.Active()                  // 1
//
// Grid satisfies grid.Accessor, so views, iterators, Assign, Equal and flood
// fill all work on it. Reads never change Active(); mutable iteration
// materialises every tile it touches.
package tiled
