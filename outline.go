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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Outliner is implemented by shapes which can describe themselves as a
// vector path.
//
// Coordinates are in pixel units with the origin at the top-left corner
// of the image.  The pixel (x, y) covers the unit square with corner
// (x, y), so its center is at (x+0.5, y+0.5).  All outlines run through
// pixel centers.
type Outliner interface {
	Outline() *path.Data
}

// center returns the center of pixel p.
func center(p Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}

// polygonPath builds a closed path through the centers of the given
// pixels.
func polygonPath(vertices ...Point) *path.Data {
	res := &path.Data{}
	for i, p := range vertices {
		if i == 0 {
			res = res.MoveTo(center(p))
		} else {
			res = res.LineTo(center(p))
		}
	}
	return res.Close()
}

// Outline implements the [Outliner] interface.
// The outline of a point is a closed path of length zero.
func (p Point) Outline() *path.Data {
	return polygonPath(p)
}

// Outline implements the [Outliner] interface.
func (l Line) Outline() *path.Data {
	return (&path.Data{}).MoveTo(center(l.Start)).LineTo(center(l.End))
}

// Outline implements the [Outliner] interface.
func (t Triangle) Outline() *path.Data {
	return polygonPath(t.Vertices()...)
}

// Outline implements the [Outliner] interface.
func (r Rectangle) Outline() *path.Data {
	return polygonPath(r.Vertices()...)
}

// Outline implements the [Outliner] interface.
func (p Pentagon) Outline() *path.Data {
	return polygonPath(p.Vertices()...)
}

// Outline implements the [Outliner] interface.
// The circle is approximated by four cubic Bézier curves, starting at
// the rightmost point and proceeding through the top of the circle.
func (c Circle) Outline() *path.Data {
	m := center(c.Center)
	r := float64(max(c.Radius, 0))
	k := r * 4 * (math.Sqrt2 - 1) / 3 // control point distance

	pt := func(dx, dy float64) vec.Vec2 {
		return vec.Vec2{X: m.X + dx, Y: m.Y + dy}
	}
	return (&path.Data{}).
		MoveTo(pt(r, 0)).
		CubeTo(pt(r, -k), pt(k, -r), pt(0, -r)).
		CubeTo(pt(-k, -r), pt(-r, -k), pt(-r, 0)).
		CubeTo(pt(-r, k), pt(-k, r), pt(0, r)).
		CubeTo(pt(k, r), pt(r, k), pt(r, 0)).
		Close()
}
