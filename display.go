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
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Display is a surface which shows the contents of a pixel buffer.
//
// The image passed to Present is top-down: row 0 is the top of the
// picture, as everywhere in the Go image packages.  Backends whose origin
// is the lower-left corner must flip the rows once, for example using
// [Buffer.BottomUp].  Present must not retain img after returning.
type Display interface {
	Present(img *image.RGBA) error
}

// DisplayFunc adapts an ordinary function to the [Display] interface.
type DisplayFunc func(img *image.RGBA) error

// Present calls f(img).
func (f DisplayFunc) Present(img *image.RGBA) error {
	return f(img)
}

// PNGDisplay presents a buffer by writing it to a PNG file.
type PNGDisplay struct {
	// Path is the name of the output file.  The file is overwritten by
	// every call to Present.
	Path string

	// Scale enlarges every buffer pixel to a Scale×Scale block.
	// Values less than 2 write the buffer at its native size.
	Scale int
}

// Present implements the [Display] interface.
func (d *PNGDisplay) Present(img *image.RGBA) (err error) {
	var out image.Image = img
	if d.Scale > 1 {
		b := img.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, b.Dx()*d.Scale, b.Dy()*d.Scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)
		out = scaled
	}

	f, err := os.Create(d.Path)
	if err != nil {
		return fmt.Errorf("present: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("present %s: %w", d.Path, err)
	}
	return nil
}
