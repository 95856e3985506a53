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
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPNGDisplay(t *testing.T) {
	b, err := NewBuffer(4, 3, DefaultBackground)
	if err != nil {
		t.Fatal(err)
	}
	b.Set(1, 2, DefaultMarker)

	for _, scale := range []int{0, 1, 3} {
		d := &PNGDisplay{
			Path:  filepath.Join(t.TempDir(), "out.png"),
			Scale: scale,
		}
		if err := d.Present(b.RGBA()); err != nil {
			t.Fatal(err)
		}

		f, err := os.Open(d.Path)
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}

		s := max(scale, 1)
		if got, want := img.Bounds(), image.Rect(0, 0, 4*s, 3*s); got != want {
			t.Errorf("scale %d: bounds %v, want %v", scale, got, want)
			continue
		}
		for y := range 3 * s {
			for x := range 4 * s {
				want := b.RGBAt(x/s, y/s)
				r, g, bl, _ := img.At(x, y).RGBA()
				got := Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)}
				if got != want {
					t.Fatalf("scale %d: pixel (%d,%d) = %v, want %v", scale, x, y, got, want)
				}
			}
		}
	}
}

func TestPNGDisplayError(t *testing.T) {
	d := &PNGDisplay{Path: filepath.Join(t.TempDir(), "missing", "out.png")}
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if err := d.Present(img); err == nil {
		t.Error("writing into a missing directory succeeded")
	}
}

func TestScaleClick(t *testing.T) {
	cases := []struct {
		x, y, sx, sy float64
		want         VertexClick
	}{
		{10, 20, 1, 1, VertexClick{X: 10, Y: 20}},
		{10, 20, 2, 2, VertexClick{X: 20, Y: 40}},
		{10, 20, 1.5, 0.5, VertexClick{X: 15, Y: 10}},
		{10, 20, 0, -1, VertexClick{X: 10, Y: 20}},
	}
	for _, c := range cases {
		if got := ScaleClick(c.x, c.y, c.sx, c.sy); got != c.want {
			t.Errorf("ScaleClick(%g, %g, %g, %g) = %v, want %v", c.x, c.y, c.sx, c.sy, got, c.want)
		}
	}
}
