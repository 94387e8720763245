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
	"image/color"
	"iter"
)

// Line is the straight segment between two pixels, both included.
type Line struct {
	Start, End Point
}

// NewLine returns the line from start to end.
func NewLine(start, end Point) Line {
	return Line{Start: start, End: end}
}

// RandomLine returns a line between two independent random points,
// see [RandomPoint].
func RandomLine(src Source, width, height int) Line {
	src = sourceOrDefault(src)
	start := RandomPoint(src, width, height)
	end := RandomPoint(src, width, height)
	return Line{Start: start, End: end}
}

// Pixels iterates over the pixels of the line, from Start to End.
//
// The line is traced using integer error accumulation (Bresenham's
// algorithm).  The sequence has max(|dx|, |dy|) + 1 elements, is
// monotonic along the dominant axis, and consecutive pixels are
// 8-connected.  If Start == End, the single pixel Start is produced.
func (l Line) Pixels() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		x, y := l.Start.X, l.Start.Y
		x1, y1 := l.End.X, l.End.Y

		dx, sx := x1-x, 1
		if dx < 0 {
			dx, sx = -dx, -1
		}
		dy, sy := y1-y, 1
		if dy < 0 {
			dy, sy = -dy, -1
		}

		// err tracks the scaled distance between the ideal line
		// and the current pixel
		var err int
		if dx > dy {
			err = dx / 2
		} else {
			err = -dy / 2
		}

		for {
			if !yield(Point{X: x, Y: y}) {
				return
			}
			if x == x1 && y == y1 {
				return
			}
			e2 := err
			if e2 > -dx {
				err -= dy
				x += sx
			}
			if e2 < dy {
				err += dx
				y += sy
			}
		}
	}
}

// Draw implements the [Drawable] interface.
//
// Line does not check its end points against the image bounds; if a
// pixel lies outside the image, drawing stops and the error from
// img.SetPixel is returned.
func (l Line) Draw(img Image) error {
	return l.drawColor(img, l.Color())
}

func (l Line) drawColor(img Image, col color.RGBA) error {
	for p := range l.Pixels() {
		if err := img.SetPixel(p.X, p.Y, col); err != nil {
			return err
		}
	}
	return nil
}

// Color implements the [Drawable] interface.
// Lines are always white.
func (l Line) Color() color.RGBA {
	return White
}
