// SPDX-License-Identifier: MIT

package gridgraph

import (
	"cmp"

	"github.com/katalvlaran/twod/coords"
	"github.com/katalvlaran/twod/grid"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// DefaultConnectivity is used when no WithConnectivity option is given.
const DefaultConnectivity = Conn4

const panicConnectivityInvalid = "gridgraph: WithConnectivity: unknown connectivity"

// Option configures a GridGraph.
type Option func(*Options)

// Options holds the resolved GridGraph configuration.
type Options struct {
	conn Connectivity
}

// WithConnectivity selects Conn4 or Conn8. It panics on any other value.
func WithConnectivity(c Connectivity) Option {
	if c != Conn4 && c != Conn8 {
		panic(panicConnectivityInvalid)
	}
	return func(o *Options) { o.conn = c }
}

// Threshold returns a land predicate reporting v >= min.
func Threshold[T cmp.Ordered](min T) func(T) bool {
	return func(v T) bool { return v >= min }
}

// GridGraph treats a grid as a graph. It reads the grid on demand and does
// not copy it; results reflect the grid contents at call time.
type GridGraph[T any] struct {
	src     grid.Reader[T]
	ext     coords.Extents
	land    func(T) bool
	conn    Connectivity
	offsets []coords.Indices
}

var (
	offsets4 = []coords.Indices{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	offsets8 = []coords.Indices{
		{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
		{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
	}
)
