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

var randomCases = []TestCase{
	{
		Name:   "scene",
		Width:  200,
		Height: 150,
		Shapes: randomScene(1, 200, 150, 50),
	},
	{
		Name:   "lines",
		Width:  64,
		Height: 64,
		Shapes: randomLines(2, 64, 64, 40),
	},
	{
		Name:   "mixed",
		Width:  100,
		Height: 100,
		Shapes: randomMixed(3, 100, 100, 30),
	},
}

// randomScene builds a scene with a random line, a random point, a fixed
// rectangle, triangle and pentagon, and nCircles random circles.
func randomScene(seed uint64, width, height, nCircles int) []shapes.Drawable {
	src := newSource(seed)
	res := []shapes.Drawable{
		shapes.RandomLine(src, width, height),
		shapes.RandomPoint(src, width, height),
		shapes.NewRectangle(pt(width/10, height/10), pt(width*6/10, height*6/10)),
		shapes.NewTriangle(pt(width/4, height*3/4), pt(width*9/10, height/10), pt(width*9/10, height*9/10)),
		shapes.NewPentagon(
			pt(width/2, height/20), pt(width*19/20, height*2/5), pt(width*4/5, height*19/20),
			pt(width/5, height*19/20), pt(width/20, height*2/5)),
	}
	for range nCircles {
		res = append(res, shapes.RandomCircle(src, width, height))
	}
	return res
}

func randomLines(seed uint64, width, height, n int) []shapes.Drawable {
	src := newSource(seed)
	res := make([]shapes.Drawable, n)
	for i := range res {
		res[i] = shapes.RandomLine(src, width, height)
	}
	return res
}

// randomMixed cycles through all shape types, using the random
// constructors.
func randomMixed(seed uint64, width, height, n int) []shapes.Drawable {
	src := newSource(seed)
	res := make([]shapes.Drawable, 0, n)
	for i := range n {
		var s shapes.Drawable
		switch i % 6 {
		case 0:
			s = shapes.RandomPoint(src, width, height)
		case 1:
			s = shapes.RandomLine(src, width, height)
		case 2:
			s = shapes.RandomTriangle(src, width, height)
		case 3:
			s = shapes.RandomRectangle(src, width, height)
		case 4:
			s = shapes.RandomPentagon(src, width, height)
		case 5:
			s = shapes.RandomCircle(src, width, height)
		}
		res = append(res, s)
	}
	return res
}
