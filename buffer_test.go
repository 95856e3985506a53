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
	"image"
	"testing"
)

func TestNewBufferInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {0, 0}} {
		_, err := NewBuffer(size[0], size[1], DefaultBackground)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewBuffer(%d, %d): got %v, want ErrInvalidSize", size[0], size[1], err)
		}
	}
}

func TestBufferBounds(t *testing.T) {
	bg := Color{R: 1, G: 2, B: 3}
	red := Color{R: 255}
	b, err := NewBuffer(4, 3, bg)
	if err != nil {
		t.Fatal(err)
	}

	// none of these may panic or change the buffer
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		b.Set(p.X, p.Y, red)
		b.Blend(p.X, p.Y, red, 1)
		if got := b.RGBAt(p.X, p.Y); got != bg {
			t.Errorf("RGBAt(%d, %d) = %v, want background %v", p.X, p.Y, got, bg)
		}
	}
	for y := range 3 {
		for x := range 4 {
			if got := b.RGBAt(x, y); got != bg {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, bg)
			}
		}
	}

	b.Set(3, 2, red)
	if got := b.At(3, 2); got != red {
		t.Errorf("At(3, 2) = %v, want %v", got, red)
	}
}

func TestBlend(t *testing.T) {
	black := Color{}
	white := Color{R: 255, G: 255, B: 255}
	cases := []struct {
		coverage float64
		want     Color
	}{
		{0, black},
		{1, white},
		{0.5, Color{R: 128, G: 128, B: 128}},
		{0.25, Color{R: 64, G: 64, B: 64}},
		{-1, black},
		{2, white},
	}
	for _, c := range cases {
		b, err := NewBuffer(1, 1, black)
		if err != nil {
			t.Fatal(err)
		}
		b.Blend(0, 0, white, c.coverage)
		if got := b.RGBAt(0, 0); got != c.want {
			t.Errorf("coverage %g: got %v, want %v", c.coverage, got, c.want)
		}
	}
}

func TestBlendSameColour(t *testing.T) {
	c := Color{R: 17, G: 200, B: 99}
	b, err := NewBuffer(1, 1, c)
	if err != nil {
		t.Fatal(err)
	}
	for _, coverage := range []float64{0.1, 0.3, 0.7, 0.9} {
		b.Blend(0, 0, c, coverage)
	}
	if got := b.RGBAt(0, 0); got != c {
		t.Errorf("got %v, want %v", got, c)
	}
}

func TestBufferResize(t *testing.T) {
	bg := DefaultBackground
	b, err := NewBuffer(10, 10, bg)
	if err != nil {
		t.Fatal(err)
	}
	b.Set(5, 5, DefaultFill)

	if err := b.Resize(0, 20); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(0, 20): got %v, want ErrInvalidSize", err)
	}
	if b.Width() != 10 || b.Height() != 10 || b.RGBAt(5, 5) != DefaultFill {
		t.Error("rejected resize modified the buffer")
	}

	if err := b.Resize(20, 15); err != nil {
		t.Fatal(err)
	}
	if b.Width() != 20 || b.Height() != 15 {
		t.Errorf("size %dx%d, want 20x15", b.Width(), b.Height())
	}
	if got := b.RGBAt(5, 5); got != bg {
		t.Errorf("pixel (5,5) = %v after resize, want background", got)
	}
	if len(b.Pix()) != 3*20*15 {
		t.Errorf("len(Pix()) = %d, want %d", len(b.Pix()), 3*20*15)
	}
}

func TestHLine(t *testing.T) {
	bg := Color{}
	c := Color{R: 9}
	b, err := NewBuffer(10, 2, bg)
	if err != nil {
		t.Fatal(err)
	}
	b.HLine(0, 7, -3, c) // reversed and clipped on the left
	b.HLine(1, 8, 20, c) // clipped on the right
	b.HLine(5, 0, 9, c)  // row outside

	for x := range 10 {
		want0 := bg
		if x <= 7 {
			want0 = c
		}
		want1 := bg
		if x >= 8 {
			want1 = c
		}
		if got := b.RGBAt(x, 0); got != want0 {
			t.Errorf("pixel (%d,0) = %v, want %v", x, got, want0)
		}
		if got := b.RGBAt(x, 1); got != want1 {
			t.Errorf("pixel (%d,1) = %v, want %v", x, got, want1)
		}
	}
}

func TestFillRect(t *testing.T) {
	c := Color{G: 1}
	b, err := NewBuffer(5, 5, Color{})
	if err != nil {
		t.Fatal(err)
	}
	b.FillRect(image.Rect(-2, 3, 2, 9), c)

	n := 0
	for y := range 5 {
		for x := range 5 {
			if b.RGBAt(x, y) == c {
				n++
				if x >= 2 || y < 3 {
					t.Errorf("pixel (%d,%d) painted", x, y)
				}
			}
		}
	}
	if n != 4 {
		t.Errorf("%d pixels painted, want 4", n)
	}
}

func TestBufferOrientation(t *testing.T) {
	top := Color{R: 255}
	bottom := Color{B: 255}
	b, err := NewBuffer(2, 3, Color{})
	if err != nil {
		t.Fatal(err)
	}
	b.HLine(0, 0, 1, top)
	b.HLine(2, 0, 1, bottom)

	img := b.RGBA()
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0xffff {
		t.Error("RGBA: row 0 is not the top row")
	}
	if a := img.RGBAAt(1, 1).A; a != 0xff {
		t.Errorf("RGBA: alpha %d, want 255", a)
	}

	flipped := b.BottomUp()
	if got := (Color{R: flipped[0], G: flipped[1], B: flipped[2]}); got != bottom {
		t.Errorf("BottomUp: first pixel %v, want %v", got, bottom)
	}
	last := len(flipped) - 3
	if got := (Color{R: flipped[last], G: flipped[last+1], B: flipped[last+2]}); got != top {
		t.Errorf("BottomUp: last pixel %v, want %v", got, top)
	}
}
