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

var circleCases = []TestCase{
	{
		Name:   "small_radii",
		Width:  64,
		Height: 64,
		Shapes: []shapes.Drawable{
			shapes.NewCircle(pt(8, 8), 1, newSource(10)),
			shapes.NewCircle(pt(24, 8), 2, newSource(11)),
			shapes.NewCircle(pt(40, 8), 3, newSource(12)),
			shapes.NewCircle(pt(8, 40), 5, newSource(13)),
			shapes.NewCircle(pt(40, 40), 13, newSource(14)),
		},
	},
	{
		Name:   "concentric",
		Width:  128,
		Height: 128,
		Shapes: concentric(pt(64, 64), 60, 4),
	},
	{
		// most of this circle lies outside the canvas
		Name:   "corner_clipped",
		Width:  64,
		Height: 64,
		Shapes: []shapes.Drawable{shapes.NewCircle(pt(0, 0), 40, newSource(15))},
	},
	{
		Name:   "center_outside",
		Width:  64,
		Height: 64,
		Shapes: []shapes.Drawable{shapes.NewCircle(pt(-10, 32), 30, newSource(16))},
	},
	{
		Name:   "larger_than_canvas",
		Width:  64,
		Height: 64,
		Shapes: []shapes.Drawable{shapes.NewCircle(pt(32, 32), 40, newSource(17))},
	},
}

// concentric returns circles around c with radii rMax, rMax-step, ... > 0.
func concentric(c shapes.Point, rMax, step int) []shapes.Drawable {
	src := newSource(uint64(rMax))
	var res []shapes.Drawable
	for r := rMax; r > 0; r -= step {
		res = append(res, shapes.NewCircle(c, r, src))
	}
	return res
}
