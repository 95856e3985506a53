package testcases

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var lineCases = []TestCase{
	{
		Name:     "horizontal",
		Vertices: []vec.Vec2{pt(5, 10), pt(58, 10)},
		Width:    64,
		Height:   64,
		Op:       Outline{Cap: graphics.LineCapButt},
	},
	{
		Name:     "vertical",
		Vertices: []vec.Vec2{pt(20, 4), pt(20, 60)},
		Width:    64,
		Height:   64,
		Op:       Outline{Cap: graphics.LineCapButt},
	},
	{
		Name:     "diagonal",
		Vertices: []vec.Vec2{pt(4, 4), pt(60, 60)},
		Width:    64,
		Height:   64,
		Op:       Outline{Cap: graphics.LineCapButt},
	},
	{
		Name:     "shallow",
		Vertices: []vec.Vec2{pt(3.5, 40.25), pt(61, 21.75)},
		Width:    64,
		Height:   64,
		Op:       Outline{Cap: graphics.LineCapButt},
	},
	{
		Name:     "steep",
		Vertices: []vec.Vec2{pt(40.25, 61.5), pt(22.75, 2.5)},
		Width:    64,
		Height:   64,
		Op:       Outline{Cap: graphics.LineCapButt},
	},
	{
		Name:     "triangle_outline",
		Vertices: triangle(10, 50, 32, 10, 54, 50),
		Width:    64,
		Height:   64,
		Op:       Outline{Closed: true, Cap: graphics.LineCapButt},
	},
	{
		Name:     "polyline_open",
		Vertices: []vec.Vec2{pt(6, 58), pt(20, 8), pt(34, 50), pt(48, 12), pt(60, 40)},
		Width:    64,
		Height:   64,
		Op:       Outline{Cap: graphics.LineCapButt},
	},
}
