// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/twod/coords"
	"github.com/katalvlaran/twod/grid"
	"github.com/katalvlaran/twod/gridgraph"
)

// BenchmarkConnectedComponents measures ConnectedComponents on a random
// 1000×1000 grid with values in [0,4].
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	g, _ := grid.New[int](coords.New(n, n))
	data := g.Data()
	for i := range data {
		data[i] = rng.Intn(5)
	}
	gg, err := gridgraph.New[int](g, gridgraph.Threshold(1))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkExpandIsland measures ExpandIsland on a 1000×1000 grid with two
// 1-cell islands at opposite corners.
func BenchmarkExpandIsland(b *testing.B) {
	const n = 1000
	g, _ := grid.New[int](coords.New(n, n))
	g.Set(coords.New(0, 0), 1)
	g.Set(coords.New(n-1, n-1), 2)
	gg, err := gridgraph.New[int](g, gridgraph.Threshold(1), gridgraph.WithConnectivity(gridgraph.Conn8))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := gg.ExpandIsland(0, 1); err != nil {
			b.Fatalf("ExpandIsland failed: %v", err)
		}
	}
}
