// seehuhn.de/go/scanline - a software polygon rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scanline

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrInvalidSize is returned when a buffer would have a non-positive
// width or height.
var ErrInvalidSize = errors.New("invalid buffer size")

// Buffer is a dense RGB pixel grid.
//
// Pixels are stored row-major with three bytes per pixel.  Row 0 is the
// top row of the picture.  All writes are bounds-checked: writes outside
// the buffer are silently dropped, so that callers can draw shapes which
// extend beyond the edges without clipping them first.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	width, height int
	bg            Color
	pix           []uint8
}

// NewBuffer allocates a width×height buffer cleared to bg.
func NewBuffer(width, height int, bg Color) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	b := &Buffer{bg: bg}
	b.alloc(width, height)
	return b, nil
}

func (b *Buffer) alloc(width, height int) {
	b.width = width
	b.height = height
	b.pix = make([]uint8, 3*width*height)
	b.Clear()
}

// Width returns the width of the buffer in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the height of the buffer in pixels.
func (b *Buffer) Height() int { return b.height }

// Background returns the colour used for clearing and for reads outside
// the buffer.
func (b *Buffer) Background() Color { return b.bg }

// Bounds implements the [image.Image] interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the [image.Image] interface.
func (b *Buffer) ColorModel() color.Model {
	return color.RGBAModel
}

// At implements the [image.Image] interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.RGBAt(x, y)
}

// Resize discards the buffer contents and reallocates it with the new
// dimensions, cleared to the background colour.  Non-positive sizes are
// rejected and leave the buffer unchanged.
func (b *Buffer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	b.alloc(width, height)
	return nil
}

// Clear sets every pixel to the background colour.
func (b *Buffer) Clear() {
	for i := 0; i < len(b.pix); i += 3 {
		b.pix[i+0] = b.bg.R
		b.pix[i+1] = b.bg.G
		b.pix[i+2] = b.bg.B
	}
}

func (b *Buffer) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// RGBAt returns the colour of pixel (x, y), or the background colour if
// the pixel lies outside the buffer.
func (b *Buffer) RGBAt(x, y int) Color {
	if !b.inside(x, y) {
		return b.bg
	}
	i := 3 * (y*b.width + x)
	return Color{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2]}
}

// Set overwrites pixel (x, y) with c.
func (b *Buffer) Set(x, y int, c Color) {
	if !b.inside(x, y) {
		return
	}
	i := 3 * (y*b.width + x)
	b.pix[i+0] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
}

// Blend mixes c into pixel (x, y) with the given coverage:
// result = c*coverage + old*(1-coverage), per channel.
// Coverage values outside [0, 1] are clamped.
func (b *Buffer) Blend(x, y int, c Color, coverage float64) {
	if !b.inside(x, y) {
		return
	}
	coverage = min(1, max(0, coverage))
	b.Set(x, y, c.blend(b.RGBAt(x, y), coverage))
}

// HLine draws the horizontal span from x0 to x1 (both inclusive) in row y.
func (b *Buffer) HLine(y, x0, x1 int, c Color) {
	if y < 0 || y >= b.height {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0 = max(x0, 0)
	x1 = min(x1, b.width-1)
	for x := x0; x <= x1; x++ {
		i := 3 * (y*b.width + x)
		b.pix[i+0] = c.R
		b.pix[i+1] = c.G
		b.pix[i+2] = c.B
	}
}

// FillRect fills the part of r which lies inside the buffer.
func (b *Buffer) FillRect(r image.Rectangle, c Color) {
	r = r.Intersect(b.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		b.HLine(y, r.Min.X, r.Max.X-1, c)
	}
}

// Pix returns the raw pixel data, top row first.  The slice aliases the
// buffer and is invalidated by Resize.
func (b *Buffer) Pix() []uint8 {
	return b.pix
}

// BottomUp returns a copy of the pixel data with the bottom row first, as
// expected by presentation backends whose origin is the lower-left corner.
func (b *Buffer) BottomUp() []uint8 {
	stride := 3 * b.width
	out := make([]uint8, len(b.pix))
	for y := range b.height {
		copy(out[(b.height-1-y)*stride:], b.pix[y*stride:(y+1)*stride])
	}
	return out
}

// RGBA returns an opaque snapshot of the buffer, top row first.
func (b *Buffer) RGBA() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	for i, j := 0, 0; i < len(b.pix); i, j = i+3, j+4 {
		img.Pix[j+0] = b.pix[i+0]
		img.Pix[j+1] = b.pix[i+1]
		img.Pix[j+2] = b.pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}
