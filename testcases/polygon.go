// seehuhn.de/go/shapes - pixel outlines of simple geometric shapes
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

	"seehuhn.de/go/shapes"
)

var polygonCases = []TestCase{
	{
		Name:   "pentagon_regular",
		Width:  64,
		Height: 64,
		Shapes: []shapes.Drawable{regularPentagon(32, 32, 25, []int{0, 1, 2, 3, 4})},
	},
	{
		// connecting every second vertex gives a self-intersecting star
		Name:   "pentagon_star",
		Width:  64,
		Height: 64,
		Shapes: []shapes.Drawable{regularPentagon(32, 32, 25, []int{0, 2, 4, 1, 3})},
	},
	{
		Name:   "rectangles_nested",
		Width:  64,
		Height: 64,
		Shapes: []shapes.Drawable{
			shapes.NewRectangle(pt(2, 2), pt(61, 61)),
			shapes.NewRectangle(pt(10, 10), pt(53, 53)),
			shapes.NewRectangle(pt(20, 20), pt(43, 43)),
		},
	},
	{
		Name:   "triangle_obtuse",
		Width:  64,
		Height: 64,
		Shapes: []shapes.Drawable{
			shapes.NewTriangle(pt(2, 50), pt(61, 58), pt(20, 45)),
		},
	},
	{
		Name:   "house",
		Width:  64,
		Height: 64,
		Shapes: []shapes.Drawable{
			shapes.NewRectangle(pt(12, 30), pt(51, 60)),
			shapes.NewTriangle(pt(8, 30), pt(32, 6), pt(55, 30)),
			shapes.NewRectangle(pt(26, 42), pt(37, 60)),
		},
	},
}

// regularPentagon returns a regular pentagon with the given center and
// circumradius.  The first vertex is at the top; order selects which
// vertex is used for P1, ..., P5.
func regularPentagon(cx, cy, r float64, order []int) shapes.Pentagon {
	var pts [5]shapes.Point
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(
			int(math.Round(cx+r*math.Cos(angle))),
			int(math.Round(cy+r*math.Sin(angle))),
		)
	}
	return shapes.NewPentagon(
		pts[order[0]], pts[order[1]], pts[order[2]], pts[order[3]], pts[order[4]])
}
