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

import "seehuhn.de/go/shapes"

// degenerateCases contains shapes whose defining points coincide or
// are collinear.
var degenerateCases = []TestCase{
	{
		Name:   "line_single_pixel",
		Width:  16,
		Height: 16,
		Shapes: []shapes.Drawable{shapes.NewLine(pt(7, 7), pt(7, 7))},
	},
	{
		Name:   "circle_radius_zero",
		Width:  16,
		Height: 16,
		Shapes: []shapes.Drawable{shapes.NewCircle(pt(8, 8), 0, newSource(2))},
	},
	{
		Name:   "triangle_collinear",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{
			shapes.NewTriangle(pt(2, 2), pt(16, 16), pt(29, 29)),
		},
	},
	{
		Name:   "triangle_coincident",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{
			shapes.NewTriangle(pt(10, 20), pt(10, 20), pt(25, 5)),
		},
	},
	{
		Name:   "rectangle_flat",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{shapes.NewRectangle(pt(3, 16), pt(28, 16))},
	},
	{
		Name:   "rectangle_single_pixel",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{shapes.NewRectangle(pt(16, 16), pt(16, 16))},
	},
	{
		Name:   "pentagon_all_same",
		Width:  32,
		Height: 32,
		Shapes: []shapes.Drawable{
			shapes.NewPentagon(pt(4, 4), pt(4, 4), pt(4, 4), pt(4, 4), pt(4, 4)),
		},
	},
}
