// SPDX-License-Identifier: MIT

// Package twod is a toolkit of generic two-dimensional grids: owned and
// borrowed cell containers, non-owning views over sub-regions, rectangle
// arithmetic, column-/row-major traversal, sparse tiled grids and a
// priority-ordered flood fill.
//
// What is in the box:
//
//	coords/     Coordinates[T] point type, Indices and Extents aliases
//	bounds/     rectangle policies (fixed/dynamic origin × extents), containment,
//	            overlap, intersection and point iterators
//	grid/       Grid, MappedGrid, FixedGrid, FixedMappedGrid, View, cell iterators,
//	            whole-grid arithmetic, equality, formatting, parallel apply
//	tiled/      lazily materialised tiled grid with a shared default value
//	floodfill/  max-first frontier expansion over any grid
//	gridgraph/  connected components and minimal bridging over any grid
//	gridimage/  diagnostic rasterisation of grids
//
// Quick ASCII example of a 4×3 grid with a 2×2 view anchored at (1,1):
//
//	. . . .
//	. v v .
//	. v v .
//
// All grid kinds satisfy the same grid.Accessor contract, so every algorithm
// (Fill, Assign, Equal, flood fill, components) works on owned storage,
// caller memory, views and tiled grids alike.
//
// Logging is silent by default; see SetLogger.
//
//	go get github.com/katalvlaran/twod
package twod
