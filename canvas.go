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
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrOutOfBounds is returned (wrapped) when a pixel outside the image
// is accessed.
var ErrOutOfBounds = errors.New("shapes: pixel out of bounds")

// Image is the raster shapes are drawn onto.
// Valid pixel coordinates are 0 <= x < Width() and 0 <= y < Height().
type Image interface {
	Width() int
	Height() int

	// Pixel returns the color of pixel (x, y).
	// An error wrapping ErrOutOfBounds is returned for invalid coordinates.
	Pixel(x, y int) (color.RGBA, error)

	// SetPixel changes the color of pixel (x, y).
	// An error wrapping ErrOutOfBounds is returned for invalid coordinates.
	SetPixel(x, y int, c color.RGBA) error
}

// inBounds reports whether (x, y) is a valid pixel of img.
func inBounds(img Image, x, y int) bool {
	return x >= 0 && x < img.Width() && y >= 0 && y < img.Height()
}

// Canvas is an in-memory Image backed by an [image.RGBA].
// Canvas also implements [image.Image], so it can be passed directly
// to image encoders.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	rgba *image.RGBA
}

// NewCanvas returns a width×height canvas, filled with opaque black.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(rgba.Pix); i += 4 {
		rgba.Pix[i] = 255
	}
	return &Canvas{rgba: rgba}
}

// Width returns the number of pixel columns.
func (c *Canvas) Width() int {
	return c.rgba.Rect.Dx()
}

// Height returns the number of pixel rows.
func (c *Canvas) Height() int {
	return c.rgba.Rect.Dy()
}

// Pixel implements the [Image] interface.
func (c *Canvas) Pixel(x, y int) (color.RGBA, error) {
	if !inBounds(c, x, y) {
		return color.RGBA{}, c.boundsError(x, y)
	}
	return c.rgba.RGBAAt(x, y), nil
}

// SetPixel implements the [Image] interface.
func (c *Canvas) SetPixel(x, y int, col color.RGBA) error {
	if !inBounds(c, x, y) {
		return c.boundsError(x, y)
	}
	c.rgba.SetRGBA(x, y, col)
	return nil
}

func (c *Canvas) boundsError(x, y int) error {
	return fmt.Errorf("%w: (%d, %d) not in %dx%d image",
		ErrOutOfBounds, x, y, c.Width(), c.Height())
}

// ColorModel implements the [image.Image] interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the [image.Image] interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.rgba.Rect
}

// At implements the [image.Image] interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.rgba.At(x, y)
}

// RGBA returns the underlying image.  Changes to the returned image are
// visible through the canvas.
func (c *Canvas) RGBA() *image.RGBA {
	return c.rgba
}
