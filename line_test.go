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
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scanline/testcases"
)

type pixel struct{ x, y int }

// coverageMap collects the coverage values emitted by WuLine.
func coverageMap(p0, p1 vec.Vec2) map[pixel]float64 {
	res := make(map[pixel]float64)
	WuLine(p0, p1, func(x, y int, coverage float64) {
		res[pixel{x, y}] += coverage
	})
	return res
}

func TestWuLineHorizontal(t *testing.T) {
	cov := coverageMap(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0})

	for p, c := range cov {
		if p.y != 0 && c != 0 {
			t.Errorf("pixel %v: coverage %g outside the line's row", p, c)
		}
	}
	for x := 1; x < 10; x++ {
		if c := cov[pixel{x, 0}]; c != 1 {
			t.Errorf("pixel (%d,0): coverage %g, want 1", x, c)
		}
	}
	// the end caps cover half a pixel along the line
	for _, x := range []int{0, 10} {
		if c := cov[pixel{x, 0}]; c != 0.5 {
			t.Errorf("pixel (%d,0): coverage %g, want 0.5", x, c)
		}
	}
}

func TestWuLineVertical(t *testing.T) {
	cov := coverageMap(vec.Vec2{X: 3, Y: 2}, vec.Vec2{X: 3, Y: 12})

	for p, c := range cov {
		if p.x != 3 && c != 0 {
			t.Errorf("pixel %v: coverage %g outside the line's column", p, c)
		}
	}
	for y := 3; y < 12; y++ {
		if c := cov[pixel{3, y}]; c != 1 {
			t.Errorf("pixel (3,%d): coverage %g, want 1", y, c)
		}
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	black := Color{}
	white := Color{R: 255, G: 255, B: 255}
	b, err := NewBuffer(20, 3, black)
	if err != nil {
		t.Fatal(err)
	}
	b.DrawLine(vec.Vec2{X: 0, Y: 1}, vec.Vec2{X: 10, Y: 1}, white)

	for y := range 3 {
		for x := range 20 {
			var want Color
			switch {
			case y != 1 || x > 10:
				want = black
			case x == 0 || x == 10:
				want = Color{R: 128, G: 128, B: 128}
			default:
				want = white
			}
			if got := b.RGBAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

// TestWuLineColumnCoverage checks that the two pixels of every interior
// column along the dominant axis have coverages summing to one.
func TestWuLineColumnCoverage(t *testing.T) {
	var segments [][2]vec.Vec2
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			for p, q := range Polygon(tc.Vertices).Edges() {
				segments = append(segments, [2]vec.Vec2{p, q})
			}
		}
	}

	for _, seg := range segments {
		p0, p1 := seg[0], seg[1]
		steep := math.Abs(p1.Y-p0.Y) > math.Abs(p1.X-p0.X)
		a0, a1 := p0.X, p1.X
		if steep {
			a0, a1 = p0.Y, p1.Y
		}
		lo := int(math.Floor(min(a0, a1) + 0.5))
		hi := int(math.Floor(max(a0, a1) + 0.5))

		sums := make(map[int]float64)
		WuLine(p0, p1, func(x, y int, coverage float64) {
			if coverage < 0 || coverage > 1 {
				t.Errorf("%v-%v: coverage %g out of range", p0, p1, coverage)
			}
			col := x
			if steep {
				col = y
			}
			sums[col] += coverage
		})

		for col := lo + 1; col < hi; col++ {
			if s := sums[col]; math.Abs(s-1) > 1e-9 {
				t.Errorf("%v-%v: column %d has total coverage %g", p0, p1, col, s)
			}
		}
		for col := range sums {
			if col < lo || col > hi {
				t.Errorf("%v-%v: column %d outside [%d, %d]", p0, p1, col, lo, hi)
			}
		}
	}
}

func TestWuLineDirection(t *testing.T) {
	lines := [][2]vec.Vec2{
		{{X: 3.5, Y: 40.25}, {X: 61, Y: 21.75}},
		{{X: 40.25, Y: 61.5}, {X: 22.75, Y: 2.5}},
		{{X: 4, Y: 4}, {X: 60, Y: 60}},
	}
	for _, l := range lines {
		fwd := coverageMap(l[0], l[1])
		bwd := coverageMap(l[1], l[0])
		if !maps.Equal(fwd, bwd) {
			t.Errorf("%v-%v: coverage depends on direction", l[0], l[1])
		}
	}
}

func TestWuLineZeroLength(t *testing.T) {
	for _, p := range []vec.Vec2{{X: 5, Y: 5}, {X: 7.25, Y: 3.6}} {
		calls := 0
		total := 0.0
		WuLine(p, p, func(x, y int, coverage float64) {
			calls++
			total += coverage
		})
		if calls != 4 {
			t.Errorf("%v: %d pixels plotted, want 4", p, calls)
		}
		if math.Abs(total-1) > 1e-9 {
			t.Errorf("%v: total coverage %g, want 1", p, total)
		}
	}
}

func BenchmarkWuLine(b *testing.B) {
	p0 := vec.Vec2{X: 3.5, Y: 40.25}
	p1 := vec.Vec2{X: 500, Y: 321.75}
	buf, err := NewBuffer(512, 512, DefaultBackground)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		buf.DrawLine(p0, p1, DefaultLine)
	}
}
