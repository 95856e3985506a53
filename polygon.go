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
	"iter"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Polygon is an ordered list of vertices in buffer coordinates.
//
// The polygon is implicitly closed: edge i joins vertex i to vertex i+1,
// and the last vertex is joined back to the first.  Vertex order
// determines the edge sequence and is never changed by this package.
type Polygon []vec.Vec2

// Edges iterates over the closed edge sequence, including the closing
// edge from the last vertex to the first.  A polygon with fewer than two
// vertices has no edges.
func (p Polygon) Edges() iter.Seq2[vec.Vec2, vec.Vec2] {
	return func(yield func(vec.Vec2, vec.Vec2) bool) {
		n := len(p)
		if n < 2 {
			return
		}
		for i := range n {
			if !yield(p[i], p[(i+1)%n]) {
				return
			}
		}
	}
}

// Segments iterates over the open polyline through the vertices, without
// the closing edge.
func (p Polygon) Segments() iter.Seq2[vec.Vec2, vec.Vec2] {
	return func(yield func(vec.Vec2, vec.Vec2) bool) {
		for i := 1; i < len(p); i++ {
			if !yield(p[i-1], p[i]) {
				return
			}
		}
	}
}

// Bounds returns the smallest rectangle containing all vertices.
// The zero rectangle is returned for an empty polygon.
func (p Polygon) Bounds() rect.Rect {
	if len(p) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{LLx: p[0].X, LLy: p[0].Y, URx: p[0].X, URy: p[0].Y}
	for _, v := range p[1:] {
		r.LLx = min(r.LLx, v.X)
		r.LLy = min(r.LLy, v.Y)
		r.URx = max(r.URx, v.X)
		r.URy = max(r.URy, v.Y)
	}
	return r
}

// Clone returns a copy of the polygon which does not share storage with p.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	return append(Polygon(nil), p...)
}
