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

package testcases

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase defines a single rasterization scene.
type TestCase struct {
	Name     string     // lowercase a-z, 0-9 and _ only
	Vertices []vec.Vec2 // polygon vertices in buffer coordinates, row 0 at the top
	Width    int        // canvas width in pixels
	Height   int        // canvas height in pixels
	Op       Operation  // fill or outline
}

// Operation is the rasterization operation to apply to the vertices.
type Operation interface {
	isOperation()
}

// Fill fills the closed polygon using the even-odd rule.
type Fill struct{}

func (Fill) isOperation() {}

// Outline draws anti-aliased one pixel wide lines between the vertices.
type Outline struct {
	// Closed adds the edge from the last vertex back to the first.
	Closed bool

	// Cap is used when the outline is drawn by an external reference
	// renderer.  Wu lines behave closest to butt caps.
	Cap graphics.LineCapStyle
}

func (Outline) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
