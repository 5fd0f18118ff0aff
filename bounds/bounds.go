// SPDX-License-Identifier: MIT

package bounds

import (
	"fmt"

	"github.com/katalvlaran/twod/coords"
)

// Region is anything with an origin and extents.
type Region interface {
	Origin() coords.Indices
	Extents() coords.Extents
}

// rect carries the shared contract. The exported policies embed it and add
// only the mutators they permit.
type rect struct {
	origin  coords.Indices
	extents coords.Extents
}

func newRect(origin coords.Indices, extents coords.Extents) rect {
	mustNonNegative(extents)
	return rect{origin: origin, extents: extents}
}

func mustNonNegative(e coords.Extents) {
	if e.X < 0 || e.Y < 0 {
		panic(fmt.Errorf("bounds(%v): %w", e, ErrNegativeExtents))
	}
}

// Origin returns the first interior point.
func (r rect) Origin() coords.Indices { return r.origin }

// Extents returns the size of the rectangle.
func (r rect) Extents() coords.Extents { return r.extents }

// Far returns origin+extents, the first point past the interior.
func (r rect) Far() coords.Indices { return r.origin.Add(r.extents) }

// Center returns origin + extents/2 (integer division).
func (r rect) Center() coords.Indices { return r.origin.Add(r.extents.Div(2)) }

// Empty reports whether extents == (0, 0).
func (r rect) Empty() bool { return r.extents.IsZero() }

// Within reports whether pt lies inside the half-open rectangle.
func (r rect) Within(pt coords.Indices) bool {
	return pt.AllGE(r.origin) && pt.AllLT(r.origin.Add(r.extents))
}

// Overlaps reports whether |origin - other.origin| <= extents + other.extents
// componentwise. Edge- and corner-touching rectangles overlap.
func (r rect) Overlaps(other Region) bool {
	return r.origin.Sub(other.Origin()).Abs().AllLE(r.extents.Add(other.Extents()))
}

// Contains reports whether other lies inside r; a flush far edge counts.
func (r rect) Contains(other Region) bool {
	o := other.Origin()
	return o.AllGE(r.origin) && o.Add(other.Extents()).AllLE(r.Far())
}

// ContainsStrict is Contains with the far corner of other strictly inside r.
func (r rect) ContainsStrict(other Region) bool {
	o := other.Origin()
	return o.AllGE(r.origin) && o.Add(other.Extents()).AllLT(r.Far())
}

// Equal compares origin and extents.
func (r rect) Equal(other Region) bool {
	return r.origin == other.Origin() && r.extents == other.Extents()
}

// String renders "(origin, far corner)".
func (r rect) String() string {
	return fmt.Sprintf("(%v, %v)", r.origin, r.Far())
}

// Bounds has a mutable origin and mutable extents.
type Bounds struct{ rect }

// New builds a Bounds. It panics with ErrNegativeExtents on negative extents.
func New(origin coords.Indices, extents coords.Extents) Bounds {
	return Bounds{newRect(origin, extents)}
}

// Of copies any Region into a Bounds.
func Of(r Region) Bounds {
	return Bounds{rect{origin: r.Origin(), extents: r.Extents()}}
}

// SetOrigin moves the rectangle.
func (b *Bounds) SetOrigin(origin coords.Indices) { b.origin = origin }

// Resize changes the extents. It panics with ErrNegativeExtents on negative extents.
func (b *Bounds) Resize(extents coords.Extents) {
	mustNonNegative(extents)
	b.extents = extents
}

// FixedOrigin pins the origin at construction; extents may be resized.
type FixedOrigin struct{ rect }

// NewFixedOrigin builds a FixedOrigin.
func NewFixedOrigin(origin coords.Indices, extents coords.Extents) FixedOrigin {
	return FixedOrigin{newRect(origin, extents)}
}

// Resize changes the extents. It panics with ErrNegativeExtents on negative extents.
func (b *FixedOrigin) Resize(extents coords.Extents) {
	mustNonNegative(extents)
	b.extents = extents
}

// FixedExtents pins the extents at construction; the origin may move.
type FixedExtents struct{ rect }

// NewFixedExtents builds a FixedExtents.
func NewFixedExtents(origin coords.Indices, extents coords.Extents) FixedExtents {
	return FixedExtents{newRect(origin, extents)}
}

// SetOrigin moves the rectangle.
func (b *FixedExtents) SetOrigin(origin coords.Indices) { b.origin = origin }

// FixedOriginExtents is an immutable rectangle.
type FixedOriginExtents struct{ rect }

// NewFixedOriginExtents builds a FixedOriginExtents.
func NewFixedOriginExtents(origin coords.Indices, extents coords.Extents) FixedOriginExtents {
	return FixedOriginExtents{newRect(origin, extents)}
}

// Intersection returns the overlap of a and b. Its origin is the componentwise
// max of both origins; its extents are clamped to be non-negative, so disjoint
// inputs give a zero-extent rectangle anchored at that origin.
func Intersection(a, b Region) Bounds {
	origin := a.Origin().Max(b.Origin())
	far := a.Origin().Add(a.Extents()).Min(b.Origin().Add(b.Extents()))
	extents := far.Sub(origin).Max(coords.Zero[int]())
	if extents.X == 0 || extents.Y == 0 {
		extents = coords.Zero[int]()
	}
	return Bounds{rect{origin: origin, extents: extents}}
}

// Equal compares two regions of any policy.
func Equal(a, b Region) bool {
	return a.Origin() == b.Origin() && a.Extents() == b.Extents()
}

// Within reports whether pt lies inside r.
func Within(r Region, pt coords.Indices) bool {
	o := r.Origin()
	return pt.AllGE(o) && pt.AllLT(o.Add(r.Extents()))
}

// Compile-time checks.
var (
	_ Region = Bounds{}
	_ Region = FixedOrigin{}
	_ Region = FixedExtents{}
	_ Region = FixedOriginExtents{}
)
