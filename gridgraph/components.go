// SPDX-License-Identifier: MIT

package gridgraph

import (
	"github.com/katalvlaran/twod/coords"
	"github.com/katalvlaran/twod/grid"
)

// ConnectedComponents finds all contiguous regions ("islands") of land cells
// according to the configured connectivity.
// Components are ordered by their first cell in column-major order; cells
// inside a component are in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph[T]) ConnectedComponents() [][]coords.Indices {
	comps, _ := gg.label()
	return comps
}

// Labels returns a grid of component indices (−1 for water) and the number of
// components. Label i matches ConnectedComponents()[i].
func (gg *GridGraph[T]) Labels() (*grid.Grid[int], int) {
	comps, labels := gg.label()
	return labels, len(comps)
}

func (gg *GridGraph[T]) label() ([][]coords.Indices, *grid.Grid[int]) {
	labels, _ := grid.NewFilled(gg.ext, -1) // ext validated in New
	var comps [][]coords.Indices

	for it := grid.NewColReader[T](gg.src); !it.Done(); it.Next() {
		p0 := it.Coords()
		if labels.At(p0) >= 0 || !gg.land(it.Value()) {
			continue
		}
		id := len(comps)
		// BFS to collect component
		queue := []coords.Indices{p0}
		labels.Set(p0, id)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for v := range gg.Neighbors(u) {
				if labels.At(v) >= 0 || !gg.Land(v) {
					continue
				}
				labels.Set(v, id)
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	}

	return comps, labels
}
