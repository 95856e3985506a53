package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:     "triangle",
		Vertices: triangle(10, 50, 32, 10, 54, 50),
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "star",
		Vertices: fivePointStar(32, 32, 25),
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "rectangle",
		Vertices: rectangle(10, 10, 44, 44),
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "concave_arrow",
		Vertices: []vec.Vec2{pt(8, 32), pt(32, 8), pt(32, 22), pt(56, 22), pt(56, 42), pt(32, 42), pt(32, 56)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "subpixel_quad",
		Vertices: []vec.Vec2{pt(12.3, 9.7), pt(51.6, 14.2), pt(47.4, 53.8), pt(9.1, 44.5)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "clipped",
		Vertices: triangle(-20, 70, 32, -10, 84, 70),
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "comb",
		Vertices: comb(8, 8, 48, 48, 4),
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
}

// triangle returns the vertices of a triangle.
func triangle(x1, y1, x2, y2, x3, y3 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}

// rectangle returns the corners of an axis-aligned rectangle.
func rectangle(x1, y1, x2, y2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// fivePointStar returns a self-intersecting five-pointed star.  Under the
// even-odd rule the central pentagon stays empty.
func fivePointStar(cx, cy, r float64) []vec.Vec2 {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3
	return []vec.Vec2{pts[0], pts[2], pts[4], pts[1], pts[3]}
}

// comb returns a polygon with n downward-pointing teeth, giving up to
// 2n active edges on the rows crossing the teeth.
func comb(x, y, w, h float64, n int) []vec.Vec2 {
	toothW := w / float64(2*n-1)
	res := []vec.Vec2{pt(x, y), pt(x+w, y)}
	for i := n - 1; i >= 0; i-- {
		left := x + float64(2*i)*toothW
		res = append(res,
			pt(left+toothW, y+h),
			pt(left, y+h),
		)
		if i > 0 {
			res = append(res,
				pt(left, y+h/3),
				pt(left-toothW, y+h/3),
			)
		}
	}
	return res
}
