// SPDX-License-Identifier: MIT

package coords

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of scalar types a coordinate component may take.
type Number interface {
	constraints.Integer | constraints.Float
}

// Coordinates is an (X, Y) pair. Equality is plain struct equality (==).
type Coordinates[T Number] struct {
	X T
	Y T
}

// Indices addresses a grid cell.
type Indices = Coordinates[int]

// Extents is the size of a rectangular region.
type Extents = Coordinates[int]

// New builds a coordinate pair.
func New[T Number](x, y T) Coordinates[T] {
	return Coordinates[T]{X: x, Y: y}
}

// Zero returns (0, 0).
func Zero[T Number]() Coordinates[T] {
	return Coordinates[T]{}
}

// Convert casts every component of c to U.
func Convert[U, T Number](c Coordinates[T]) Coordinates[U] {
	return Coordinates[U]{X: U(c.X), Y: U(c.Y)}
}

// Less orders lexicographically by (X, Y).
func (c Coordinates[T]) Less(o Coordinates[T]) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// AllGT reports whether both components are strictly greater than o's.
func (c Coordinates[T]) AllGT(o Coordinates[T]) bool { return c.X > o.X && c.Y > o.Y }

// AllGE reports whether both components are greater than or equal to o's.
func (c Coordinates[T]) AllGE(o Coordinates[T]) bool { return c.X >= o.X && c.Y >= o.Y }

// AllLT reports whether both components are strictly less than o's.
func (c Coordinates[T]) AllLT(o Coordinates[T]) bool { return c.X < o.X && c.Y < o.Y }

// AllLE reports whether both components are less than or equal to o's.
func (c Coordinates[T]) AllLE(o Coordinates[T]) bool { return c.X <= o.X && c.Y <= o.Y }

// Add returns c + o.
func (c Coordinates[T]) Add(o Coordinates[T]) Coordinates[T] {
	return Coordinates[T]{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns c - o.
func (c Coordinates[T]) Sub(o Coordinates[T]) Coordinates[T] {
	return Coordinates[T]{X: c.X - o.X, Y: c.Y - o.Y}
}

// Neg returns -c.
func (c Coordinates[T]) Neg() Coordinates[T] {
	return Coordinates[T]{X: -c.X, Y: -c.Y}
}

// Scale multiplies both components by s.
func (c Coordinates[T]) Scale(s T) Coordinates[T] {
	return Coordinates[T]{X: c.X * s, Y: c.Y * s}
}

// Div divides both components by s. Integer components truncate toward zero.
func (c Coordinates[T]) Div(s T) Coordinates[T] {
	return Coordinates[T]{X: c.X / s, Y: c.Y / s}
}

// Mul multiplies componentwise.
func (c Coordinates[T]) Mul(o Coordinates[T]) Coordinates[T] {
	return Coordinates[T]{X: c.X * o.X, Y: c.Y * o.Y}
}

// Quo divides componentwise. Integer components truncate toward zero.
func (c Coordinates[T]) Quo(o Coordinates[T]) Coordinates[T] {
	return Coordinates[T]{X: c.X / o.X, Y: c.Y / o.Y}
}

// Abs returns the componentwise absolute value.
func (c Coordinates[T]) Abs() Coordinates[T] {
	return Coordinates[T]{X: abs(c.X), Y: abs(c.Y)}
}

// Floor rounds each component down. Integer coordinates are returned as-is.
func (c Coordinates[T]) Floor() Coordinates[T] {
	if !isFloat[T]() {
		return c
	}
	return Coordinates[T]{
		X: T(math.Floor(float64(c.X))),
		Y: T(math.Floor(float64(c.Y))),
	}
}

// Min returns the componentwise minimum of c and o.
func (c Coordinates[T]) Min(o Coordinates[T]) Coordinates[T] {
	return Coordinates[T]{X: min(c.X, o.X), Y: min(c.Y, o.Y)}
}

// Max returns the componentwise maximum of c and o.
func (c Coordinates[T]) Max(o Coordinates[T]) Coordinates[T] {
	return Coordinates[T]{X: max(c.X, o.X), Y: max(c.Y, o.Y)}
}

// Area returns X*Y.
func (c Coordinates[T]) Area() T { return c.X * c.Y }

// IsZero reports whether c == (0, 0).
func (c Coordinates[T]) IsZero() bool { return c == Coordinates[T]{} }

// String formats c as "x, y".
func (c Coordinates[T]) String() string {
	return fmt.Sprintf("%v, %v", c.X, c.Y)
}

func abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// isFloat reports whether T carries a fractional part: 1/2 truncates to zero
// only for integer types.
func isFloat[T Number]() bool {
	var half T = 1
	half /= 2
	return half != 0
}
