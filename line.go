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
	"math"

	"seehuhn.de/go/geom/vec"
)

// WuLine computes the pixel coverage of an anti-aliased line segment from
// p0 to p1, using Xiaolin Wu's algorithm.
//
// For every column along the dominant axis, two pixels bracketing the
// line receive coverages which add up to one.  The two end columns are
// additionally scaled by the fraction of the pixel that the segment
// actually covers along the dominant axis.  The plot callback is invoked
// once for every pixel touched; coverage values lie in [0, 1] and may be
// zero.
func WuLine(p0, p1 vec.Vec2, plot func(x, y int, coverage float64)) {
	x0, y0, x1, y1 := p0.X, p0.Y, p1.X, p1.Y

	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		orig := plot
		plot = func(x, y int, coverage float64) {
			orig(y, x, coverage)
		}
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	// first end point
	xEnd := math.Floor(x0 + 0.5)
	yEnd := y0 + gradient*(xEnd-x0)
	xGap := rfpart(x0 + 0.5)
	xPixel1 := int(xEnd)
	yPixel := int(math.Floor(yEnd))
	plot(xPixel1, yPixel, rfpart(yEnd)*xGap)
	plot(xPixel1, yPixel+1, fpart(yEnd)*xGap)
	interY := yEnd + gradient

	// second end point
	xEnd = math.Floor(x1 + 0.5)
	yEnd = y1 + gradient*(xEnd-x1)
	xGap = fpart(x1 + 0.5)
	xPixel2 := int(xEnd)
	yPixel = int(math.Floor(yEnd))
	plot(xPixel2, yPixel, rfpart(yEnd)*xGap)
	plot(xPixel2, yPixel+1, fpart(yEnd)*xGap)

	for x := xPixel1 + 1; x < xPixel2; x++ {
		y := int(math.Floor(interY))
		plot(x, y, rfpart(interY))
		plot(x, y+1, fpart(interY))
		interY += gradient
	}
}

// fpart returns the fractional part of x, in [0, 1).
func fpart(x float64) float64 {
	return x - math.Floor(x)
}

// rfpart returns 1 - fpart(x).
func rfpart(x float64) float64 {
	return 1 - fpart(x)
}

// DrawLine draws an anti-aliased line segment from p0 to p1, blending c
// into the existing pixels according to the coverage computed by [WuLine].
func (b *Buffer) DrawLine(p0, p1 vec.Vec2, c Color) {
	WuLine(p0, p1, func(x, y int, coverage float64) {
		b.Blend(x, y, c, coverage)
	})
}
