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

package shapes

import (
	"fmt"
	"image/color"
)

// Point is a pixel position.  As a Drawable, a Point covers exactly
// one pixel.
type Point struct {
	X, Y int
}

// NewPoint returns the point (x, y).
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// RandomPoint returns a point with X uniform in [0,width) and
// Y uniform in [0,height).  Both width and height must be positive.
// If src is nil, the process-wide generator is used.
func RandomPoint(src Source, width, height int) Point {
	src = sourceOrDefault(src)
	return Point{X: src.IntN(width), Y: src.IntN(height)}
}

// Draw implements the [Drawable] interface.
func (p Point) Draw(img Image) error {
	return img.SetPixel(p.X, p.Y, p.Color())
}

// Color implements the [Drawable] interface.
// Points are always white.
func (p Point) Color() color.RGBA {
	return White
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
