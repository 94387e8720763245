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
	"context"
	"image/color"
	"iter"
	"log/slog"
)

// Circle is the circumference of a circle with integer radius.
//
// Every call to Draw paints the whole circle in a single color, sampled
// afresh from the circle's Source.
type Circle struct {
	Center Point
	Radius int

	// src is used to pick colors.  Nil means the process-wide generator.
	src Source
}

// NewCircle returns a circle with the given center and radius.
// Colors are drawn from src; if src is nil, the process-wide generator
// is used.
func NewCircle(center Point, radius int, src Source) Circle {
	return Circle{Center: center, Radius: radius, src: src}
}

// RandomCircle returns a circle with a random center, see [RandomPoint],
// and a radius uniform in [0, min(width, height)/2).  If this range is
// empty, the radius is 0.  The circle keeps src for choosing its colors.
func RandomCircle(src Source, width, height int) Circle {
	src = sourceOrDefault(src)
	center := RandomPoint(src, width, height)
	radius := 0
	if n := min(width, height) / 2; n > 0 {
		radius = src.IntN(n)
	}
	return Circle{Center: center, Radius: radius, src: src}
}

// Pixels iterates over the pixels of the circumference, using the
// midpoint circle algorithm.  Every pixel produced is within half a pixel
// of the ideal circle.
//
// For every step along the first octant, all eight symmetric points are
// produced.  Points may repeat, and points outside any particular image
// are included.  A negative radius is treated as zero, in which case
// only the center is produced (eight times).
func (c Circle) Pixels() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		cx, cy := c.Center.X, c.Center.Y

		x := 0
		y := max(c.Radius, 0)
		d := 3 - 2*y
		for y >= x {
			octants := [8]Point{
				{cx + x, cy + y},
				{cx - x, cy + y},
				{cx + x, cy - y},
				{cx - x, cy - y},
				{cx + y, cy + x},
				{cx - y, cy + x},
				{cx + y, cy - x},
				{cx - y, cy - x},
			}
			for _, p := range octants {
				if !yield(p) {
					return
				}
			}

			// d is updated from the coordinates of the step just taken
			if d > 0 {
				d += 4*(x-y) + 10
				y--
			} else {
				d += 4*x + 6
			}
			x++
		}
	}
}

// Draw implements the [Drawable] interface.
//
// Pixels outside the image are silently skipped, so Draw never fails
// because of the image bounds.
func (c Circle) Draw(img Image) error {
	col := c.Color()

	skipped := 0
	for p := range c.Pixels() {
		if !inBounds(img, p.X, p.Y) {
			skipped++
			continue
		}
		if err := img.SetPixel(p.X, p.Y, col); err != nil {
			return err
		}
	}

	if skipped > 0 {
		Logger().LogAttrs(context.Background(), slog.LevelDebug, "circle clipped",
			slog.Int("cx", c.Center.X),
			slog.Int("cy", c.Center.Y),
			slog.Int("r", c.Radius),
			slog.Int("skipped", skipped))
	}
	return nil
}

// Color implements the [Drawable] interface.
// The result is a new random color on every call, see [RandomColor].
func (c Circle) Color() color.RGBA {
	return RandomColor(c.src)
}
