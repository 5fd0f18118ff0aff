// SPDX-License-Identifier: MIT

package tiled_test

import (
	"testing"

	"github.com/katalvlaran/twod/coords"
	"github.com/katalvlaran/twod/grid"
	"github.com/katalvlaran/twod/tiled"
)

func BenchmarkAt_Absent(b *testing.B) {
	g, _ := tiled.New(coords.New(1024, 1024), coords.New(64, 64), 0)
	p := coords.New(500, 700)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.At(p)
	}
}

func BenchmarkFill_AllTiles(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g, _ := tiled.New(coords.New(512, 512), coords.New(64, 64), 0)
		grid.Fill[int](g, 1)
	}
}
