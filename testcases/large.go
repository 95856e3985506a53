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
	"math"

	"seehuhn.de/go/geom/vec"
)

// largeCases contains scenes on canvases of typical window size, with
// many vertices and many simultaneously active edges.
var largeCases = []TestCase{
	{
		Name:     "large_rectangle",
		Vertices: rectangle(50, 50, 462, 462),
		Width:    512,
		Height:   512,
		Op:       Fill{},
	},
	{
		Name:     "large_diamond",
		Vertices: diamond(256, 256, 180),
		Width:    512,
		Height:   512,
		Op:       Fill{},
	},
	{
		Name:     "large_regular",
		Vertices: RegularPolygon(256, 256, 230, 61),
		Width:    512,
		Height:   512,
		Op:       Fill{},
	},
	{
		Name:     "large_spiky",
		Vertices: spiky(256, 256, 240, 120, 48),
		Width:    512,
		Height:   512,
		Op:       Fill{},
	},
	{
		Name:     "large_clipped",
		Vertices: rectangle(-100, 100, 612, 400),
		Width:    512,
		Height:   512,
		Op:       Fill{},
	},
	{
		Name:     "large_spiky_outline",
		Vertices: spiky(256, 256, 240, 120, 48),
		Width:    512,
		Height:   512,
		Op:       Outline{Closed: true},
	},
}

// diamond returns a square rotated by 45 degrees.
func diamond(cx, cy, r float64) []vec.Vec2 {
	return []vec.Vec2{pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy)}
}

// RegularPolygon returns the n corners of a regular polygon.
func RegularPolygon(cx, cy, r float64, n int) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		res[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return res
}

// spiky returns a star-shaped (but not self-intersecting) polygon whose
// vertices alternate between the outer and the inner radius.
func spiky(cx, cy, rOuter, rInner float64, n int) []vec.Vec2 {
	res := make([]vec.Vec2, 2*n)
	for i := range 2 * n {
		r := rOuter
		if i%2 == 1 {
			r = rInner
		}
		angle := math.Pi*float64(i)/float64(n) - math.Pi/2
		res[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return res
}
