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

// Package testcases contains example scenes for the shapes rasteriser.
package testcases

import (
	"math/rand/v2"

	"seehuhn.de/go/shapes"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string            // lowercase a-z, 0-9 and _ only
	Width  int               // canvas width in pixels
	Height int               // canvas height in pixels
	Shapes []shapes.Drawable // drawn in order, onto a black canvas
}

// pt is a helper to create a shapes.Point from x, y coordinates.
func pt(x, y int) shapes.Point {
	return shapes.Point{X: x, Y: y}
}

// newSource returns a deterministic random source for the given seed.
func newSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0x5eed))
}
