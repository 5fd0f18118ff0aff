// SPDX-License-Identifier: MIT

package gridimage

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/katalvlaran/twod/bounds"
	"github.com/katalvlaran/twod/coords"
	"github.com/katalvlaran/twod/grid"
)

var (
	// ErrBadScale is wrapped in the panic raised by WithScale for n < 1.
	ErrBadScale = errors.New("gridimage: scale must be at least 1")
	// ErrEmptyGrid indicates a grid with zero area.
	ErrEmptyGrid = errors.New("gridimage: grid has zero area")
)

// ColorFunc maps a cell value to a pixel colour.
type ColorFunc[T any] func(T) color.Color

// Option configures Render.
type Option func(*options)

type options struct {
	scale   int
	palette color.Palette
}

// WithScale enlarges every cell to an n×n block. It panics with an error
// wrapping ErrBadScale when n < 1.
func WithScale(n int) Option {
	if n < 1 {
		panic(fmt.Errorf("gridimage.WithScale(%d): %w", n, ErrBadScale))
	}
	return func(o *options) { o.scale = n }
}

// WithPalette makes Render return an *image.Paletted using p.
func WithPalette(p color.Palette) Option {
	return func(o *options) { o.palette = p }
}

// Render draws r into a new image, one pixel per cell before scaling. The
// result is *image.RGBA, or *image.Paletted with WithPalette.
//
// Errors:
//   - ErrEmptyGrid when r has zero area.
func Render[T any](r grid.Reader[T], colorOf ColorFunc[T], opts ...Option) (image.Image, error) {
	o := options{scale: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	ext := r.Extents()
	if ext.Area() == 0 {
		return nil, fmt.Errorf("gridimage.Render(%v): %w", ext, ErrEmptyGrid)
	}

	src := image.NewRGBA(Rect(bounds.New(coords.Indices{}, ext)))
	for pt, v := range grid.Cols(r) {
		src.Set(pt.X, pt.Y, colorOf(v))
	}
	if o.scale == 1 && o.palette == nil {
		return src, nil
	}

	dr := image.Rect(0, 0, ext.X*o.scale, ext.Y*o.scale)
	var dst xdraw.Image
	if o.palette != nil {
		dst = image.NewPaletted(dr, o.palette)
	} else {
		dst = image.NewRGBA(dr)
	}
	xdraw.NearestNeighbor.Scale(dst, dr, src, src.Bounds(), xdraw.Src, nil)

	return dst, nil
}

// Rect converts a region to the image rectangle it covers.
func Rect(r bounds.Region) image.Rectangle {
	o, e := r.Origin(), r.Extents()
	return image.Rect(o.X, o.Y, o.X+e.X, o.Y+e.Y)
}

// Ramp maps [lo, hi] linearly onto black..white, clamping outside values.
func Ramp[T coords.Number](lo, hi T) ColorFunc[T] {
	span := float64(hi) - float64(lo)
	return func(v T) color.Color {
		if span <= 0 {
			return color.Gray{}
		}
		f := (float64(v) - float64(lo)) / span
		f = min(max(f, 0), 1)
		return color.Gray{Y: uint8(f*255 + 0.5)}
	}
}

// Mask colours true cells on and false cells off.
func Mask(on, off color.Color) ColorFunc[bool] {
	return func(v bool) color.Color {
		if v {
			return on
		}
		return off
	}
}
