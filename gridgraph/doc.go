// SPDX-License-Identifier: MIT

// Package gridgraph treats any 2D grid of cells as a graph, enabling
// component analysis and minimal-cost "island" expansions.
//
// What:
//
//   - GridGraph wraps a grid.Reader with a land predicate (Threshold for
//     ordered cells, or any func(T) bool).
//   - Identifies connected components ("islands") of land cells.
//   - Computes minimal conversions (0-1 BFS) to connect two islands.
//   - Labels every cell with its component index in a grid.Grid[int].
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Resource planning: connect facilities with minimal upgrades.
//   - Post-processing of flood fills and tiled occupancy maps.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Labels:              O(W×H×d), Memory: O(W×H).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - WithConnectivity: Conn4 (4-neighbors, default) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has zero area.
//   - ErrNilPredicate: land predicate is nil.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
//
// Cells are visited column-major (X fastest), so component order and the
// cell order inside each component are deterministic.
package gridgraph
