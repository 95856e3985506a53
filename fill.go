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
	"cmp"
	"image"
	"iter"
	"math"
	"slices"
)

// edgeBucket is a polygon edge taking part in the scanline fill.
type edgeBucket struct {
	yMax     float64 // upper end of the edge; the edge is active while row < round(yMax)
	x        float64 // x-intersection with the current scanline
	slopeInv float64 // dx/dy, added to x when moving to the next row
}

// pendingEdge is an edge table entry: an edge together with the first
// row on which it becomes active.
type pendingEdge struct {
	row int
	edgeBucket
}

// Filler fills polygons using an edge table and an active edge list.
// Spans are solid (no anti-aliasing) and the interior is determined by the
// even-odd rule.
//
// Create one instance and reuse it for multiple polygons.  Internal buffers
// grow as needed but never shrink.
//
// A Filler is not safe for concurrent use.
type Filler struct {
	// Clip restricts the output to this rectangle in buffer coordinates.
	Clip image.Rectangle

	table  []pendingEdge // edge table, sorted by starting row
	active []edgeBucket  // active edge list
}

// NewFiller returns a Filler which clips its output to clip.
func NewFiller(clip image.Rectangle) *Filler {
	return &Filler{Clip: clip}
}

// Fill computes the interior of the closed polygon poly and calls emit
// once for every horizontal span to be painted.  The span covers the
// pixels x0 to x1, both inclusive, in row y, and lies inside Clip.
//
// Polygons with fewer than three vertices produce no output.  The active
// edges of a row are paired left to right; an unpaired right-most edge
// would be ignored.  Since an edge is active exactly on the rows between
// its rounded end points, every row of a closed polygon crosses an even
// number of edges and this does not happen in practice.
func (f *Filler) Fill(poly Polygon, emit func(y, x0, x1 int)) {
	for y, active := range f.scan(poly) {
		for i := 0; i+1 < len(active); i += 2 {
			f.emitSpan(y, active[i].x, active[i+1].x, emit)
		}
	}
}

// scan walks the rows of the polygon inside the clip rectangle and yields
// every row together with its active edges, sorted by x.  The slice is
// only valid until the next iteration.
func (f *Filler) scan(poly Polygon) iter.Seq2[int, []edgeBucket] {
	return func(yield func(int, []edgeBucket) bool) {
		if len(poly) < 3 {
			return
		}

		bbox := poly.Bounds()
		yStart := max(f.Clip.Min.Y, roundInt(bbox.LLy))
		yEnd := min(f.Clip.Max.Y, roundInt(bbox.URy)+1)
		if yStart >= yEnd {
			return
		}

		f.buildEdgeTable(poly, yStart, yEnd)

		f.active = f.active[:0]
		next := 0
		for y := yStart; y < yEnd; y++ {
			// drop edges which ended before this row
			f.active = slices.DeleteFunc(f.active, func(e edgeBucket) bool {
				return y >= roundInt(e.yMax)
			})

			// add edges starting at this row
			for next < len(f.table) && f.table[next].row == y {
				f.active = append(f.active, f.table[next].edgeBucket)
				next++
			}

			slices.SortStableFunc(f.active, func(a, b edgeBucket) int {
				return cmp.Compare(a.x, b.x)
			})

			if !yield(y, f.active) {
				return
			}

			for i := range f.active {
				f.active[i].x += f.active[i].slopeInv
			}
		}
	}
}

// buildEdgeTable collects the non-horizontal edges of poly, with their
// x-intersection adjusted to the first row in [yStart, yEnd) on which they
// are active.  Edges which do not touch any row of the scan range are
// dropped.
func (f *Filler) buildEdgeTable(poly Polygon, yStart, yEnd int) {
	f.table = f.table[:0]
	for p, q := range poly.Edges() {
		if roundInt(p.Y) == roundInt(q.Y) {
			continue // horizontal at pixel resolution
		}
		if p.Y > q.Y {
			p, q = q, p
		}

		slopeInv := (q.X - p.X) / (q.Y - p.Y)
		row := max(yStart, roundInt(p.Y))
		if row >= yEnd || q.Y <= float64(row) {
			continue
		}

		f.table = append(f.table, pendingEdge{
			row: row,
			edgeBucket: edgeBucket{
				yMax:     q.Y,
				x:        p.X + slopeInv*(float64(row)-p.Y),
				slopeInv: slopeInv,
			},
		})
	}
	slices.SortStableFunc(f.table, func(a, b pendingEdge) int {
		return cmp.Compare(a.row, b.row)
	})
}

// emitSpan clips the span between the two intersections to Clip and
// passes it on.
func (f *Filler) emitSpan(y int, xa, xb float64, emit func(y, x0, x1 int)) {
	if xa > xb {
		xa, xb = xb, xa
	}
	x0 := max(f.Clip.Min.X, roundInt(xa))
	x1 := min(f.Clip.Max.X-1, roundInt(xb))
	if x0 > x1 {
		return
	}
	emit(y, x0, x1)
}

// roundInt rounds to the nearest integer, with ties going to the even
// neighbour.  Using one rounding rule for vertices, edge ends and span
// ends keeps the edge table and the active edge list consistent.
func roundInt(x float64) int {
	return int(math.RoundToEven(x))
}

// FillPolygon fills poly with the solid colour c, using f to compute the
// spans.  The filler's clip rectangle is set to the buffer bounds.
func (b *Buffer) FillPolygon(f *Filler, poly Polygon, c Color) {
	f.Clip = b.Bounds()
	f.Fill(poly, func(y, x0, x1 int) {
		b.HLine(y, x0, x1, c)
	})
}
