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
	"math/rand/v2"
)

// White is the fixed color of points, lines and polygons.
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Source is a source of uniformly distributed random integers.
// A *rand.Rand from math/rand/v2 satisfies this interface.
type Source interface {
	// IntN returns a uniform random integer in [0,n).
	// It may panic if n <= 0.
	IntN(n int) int
}

// globalSource draws from the process-wide generator of math/rand/v2.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// sourceOrDefault returns src, or the process-wide generator if src is nil.
func sourceOrDefault(src Source) Source {
	if src == nil {
		return globalSource{}
	}
	return src
}

// RandomColor returns an opaque color with each channel sampled
// independently from [0,255).  The value 255 is never produced.
// If src is nil, the process-wide generator is used.
func RandomColor(src Source) color.RGBA {
	src = sourceOrDefault(src)
	return color.RGBA{
		R: uint8(src.IntN(255)),
		G: uint8(src.IntN(255)),
		B: uint8(src.IntN(255)),
		A: 255,
	}
}
