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

// drawOutline draws the closed polygon through the given vertices,
// one Line per pair of consecutive vertices, wrapping around from the
// last vertex to the first.
func drawOutline(img Image, col color.RGBA, vertices ...Point) error {
	n := len(vertices)
	for i := range n {
		edge := NewLine(vertices[i], vertices[(i+1)%n])
		if err := edge.drawColor(img, col); err != nil {
			return fmt.Errorf("edge %v-%v: %w", edge.Start, edge.End, err)
		}
	}
	return nil
}

// Triangle is the outline of a triangle.
// Degenerate triangles, with collinear or coinciding vertices, are allowed.
type Triangle struct {
	P1, P2, P3 Point
}

// NewTriangle returns the triangle with the given vertices.
func NewTriangle(p1, p2, p3 Point) Triangle {
	return Triangle{P1: p1, P2: p2, P3: p3}
}

// RandomTriangle returns a triangle with three independent random
// vertices, see [RandomPoint].
func RandomTriangle(src Source, width, height int) Triangle {
	src = sourceOrDefault(src)
	p1 := RandomPoint(src, width, height)
	p2 := RandomPoint(src, width, height)
	p3 := RandomPoint(src, width, height)
	return Triangle{P1: p1, P2: p2, P3: p3}
}

// Vertices returns the vertices in drawing order.
func (t Triangle) Vertices() []Point {
	return []Point{t.P1, t.P2, t.P3}
}

// Draw implements the [Drawable] interface.
// The edges (P1,P2), (P2,P3) and (P3,P1) are drawn in this order.
func (t Triangle) Draw(img Image) error {
	return drawOutline(img, t.Color(), t.Vertices()...)
}

// Color implements the [Drawable] interface.
// Triangles are always white.
func (t Triangle) Color() color.RGBA {
	return White
}

// Rectangle is the outline of an axis-parallel rectangle.
//
// TopLeft is expected to be above and left of BottomRight (smaller
// coordinates), but this is not enforced.
type Rectangle struct {
	TopLeft, BottomRight Point
}

// NewRectangle returns the rectangle with the given opposite corners.
func NewRectangle(topLeft, bottomRight Point) Rectangle {
	return Rectangle{TopLeft: topLeft, BottomRight: bottomRight}
}

// RandomRectangle returns a rectangle spanned by two random points,
// see [RandomPoint].  The corners are ordered, so that TopLeft has the
// smaller coordinates.
func RandomRectangle(src Source, width, height int) Rectangle {
	src = sourceOrDefault(src)
	a := RandomPoint(src, width, height)
	b := RandomPoint(src, width, height)
	return Rectangle{
		TopLeft:     Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		BottomRight: Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// TopRight returns the derived corner (BottomRight.X, TopLeft.Y).
func (r Rectangle) TopRight() Point {
	return Point{X: r.BottomRight.X, Y: r.TopLeft.Y}
}

// BottomLeft returns the derived corner (TopLeft.X, BottomRight.Y).
func (r Rectangle) BottomLeft() Point {
	return Point{X: r.TopLeft.X, Y: r.BottomRight.Y}
}

// Vertices returns the four corners in drawing order, clockwise on
// screen starting at TopLeft.
func (r Rectangle) Vertices() []Point {
	return []Point{r.TopLeft, r.TopRight(), r.BottomRight, r.BottomLeft()}
}

// Draw implements the [Drawable] interface.
func (r Rectangle) Draw(img Image) error {
	return drawOutline(img, r.Color(), r.Vertices()...)
}

// Color implements the [Drawable] interface.
// Rectangles are always white.
func (r Rectangle) Color() color.RGBA {
	return White
}

// Pentagon is the outline of a closed polygon with five vertices.
// The vertex order determines the shape; convexity is not required.
type Pentagon struct {
	P1, P2, P3, P4, P5 Point
}

// NewPentagon returns the pentagon with the given vertices.
func NewPentagon(p1, p2, p3, p4, p5 Point) Pentagon {
	return Pentagon{P1: p1, P2: p2, P3: p3, P4: p4, P5: p5}
}

// RandomPentagon returns a pentagon with five independent random
// vertices, see [RandomPoint].  The result is usually self-intersecting.
func RandomPentagon(src Source, width, height int) Pentagon {
	src = sourceOrDefault(src)
	var pp [5]Point
	for i := range pp {
		pp[i] = RandomPoint(src, width, height)
	}
	return Pentagon{P1: pp[0], P2: pp[1], P3: pp[2], P4: pp[3], P5: pp[4]}
}

// Vertices returns the vertices in drawing order.
func (p Pentagon) Vertices() []Point {
	return []Point{p.P1, p.P2, p.P3, p.P4, p.P5}
}

// Draw implements the [Drawable] interface.
func (p Pentagon) Draw(img Image) error {
	return drawOutline(img, p.Color(), p.Vertices()...)
}

// Color implements the [Drawable] interface.
// Pentagons are always white.
func (p Pentagon) Color() color.RGBA {
	return White
}
