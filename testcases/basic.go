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

var basicCases = []TestCase{
	{
		Name:   "point",
		Width:  100,
		Height: 100,
		Shapes: []shapes.Drawable{shapes.NewPoint(50, 50)},
	},
	{
		Name:   "line_diagonal",
		Width:  100,
		Height: 100,
		Shapes: []shapes.Drawable{shapes.NewLine(pt(0, 0), pt(99, 99))},
	},
	{
		Name:   "line_shallow",
		Width:  100,
		Height: 100,
		Shapes: []shapes.Drawable{shapes.NewLine(pt(5, 40), pt(94, 60))},
	},
	{
		Name:   "line_steep_backwards",
		Width:  100,
		Height: 100,
		Shapes: []shapes.Drawable{shapes.NewLine(pt(60, 95), pt(40, 4))},
	},
	{
		Name:   "triangle",
		Width:  100,
		Height: 100,
		Shapes: []shapes.Drawable{
			shapes.NewTriangle(pt(0, 0), pt(99, 0), pt(50, 99)),
		},
	},
	{
		Name:   "rectangle",
		Width:  100,
		Height: 100,
		Shapes: []shapes.Drawable{shapes.NewRectangle(pt(0, 0), pt(99, 99))},
	},
	{
		Name:   "circle",
		Width:  100,
		Height: 100,
		Shapes: []shapes.Drawable{
			shapes.NewCircle(pt(50, 50), 30, newSource(1)),
		},
	},
}
