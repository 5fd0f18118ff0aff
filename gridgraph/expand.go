// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"
	"fmt"
	"math"

	"github.com/katalvlaran/twod"
	"github.com/katalvlaran/twod/coords"
)

// ExpandIsland finds a minimum-conversion path of water cells to connect any
// cell in component srcComp to any cell in component dstComp, as identified
// by ConnectedComponents(). Each water-cell conversion costs 1.
// Returns the cells of the path (including the start and end land cells) and
// the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • Moving into a land cell  → cost 0
//     • Moving into a water cell → cost 1
//  3. Stop when any dstComp cell is popped.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H·d). Memory: O(W·H) for distance and prev pointers.
func (gg *GridGraph[T]) ExpandIsland(srcComp, dstComp int) (path []coords.Indices, cost int, err error) {
	comps, labels := gg.label()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, fmt.Errorf("gridgraph.ExpandIsland(%d, %d) with %d components: %w",
			srcComp, dstComp, len(comps), ErrComponentIndex)
	}

	n := gg.ext.Area()
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, p := range comps[srcComp] {
		i := gg.index(p)
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		up := gg.Coordinate(u)
		if labels.At(up) == dstComp {
			target = u
			break
		}
		for vp := range gg.Neighbors(up) {
			step := 0
			if labels.At(vp) < 0 {
				step = 1
			}
			v := gg.index(vp)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, gg.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	twod.Logger().Debug("gridgraph: expand island", "src", srcComp, "dst", dstComp, "cost", dist[target], "len", len(path))

	return path, dist[target], nil
}
