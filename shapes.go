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

// Package shapes rasterises points, lines, circles and a few fixed
// polygons onto an integer pixel grid.
//
// Every shape implements [Drawable]. Drawing computes the set of pixels
// covered by the shape and writes one color into each of them through the
// [Image] interface. There is no anti-aliasing and polygons are drawn as
// outlines only. When several shapes touch the same pixel, the last write
// wins.
package shapes

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
)

// Drawable is a shape which can be rendered onto an [Image].
type Drawable interface {
	// Draw writes the pixels of the shape into img.
	// The first failing pixel write aborts the operation and its error is
	// returned.
	Draw(img Image) error

	// Color returns the color used for the pixels of the shape.
	// For shapes with a randomised color policy, every call returns a
	// fresh sample.
	Color() color.RGBA
}

// DrawAll draws the shapes onto img, in order. Later shapes overwrite
// earlier ones where they overlap.
//
// Drawing stops at the first shape which fails; the returned error
// names the position of that shape in the argument list.
func DrawAll(img Image, shapes ...Drawable) error {
	l := Logger()
	debug := l.Enabled(context.Background(), slog.LevelDebug)
	for i, s := range shapes {
		if debug {
			l.Debug("draw shape", "index", i, "type", fmt.Sprintf("%T", s))
		}
		if err := s.Draw(img); err != nil {
			return fmt.Errorf("shape %d (%T): %w", i, s, err)
		}
	}
	return nil
}
