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
	"maps"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestDrawAll(t *testing.T) {
	img := NewCanvas(100, 100)
	err := DrawAll(img,
		NewPoint(1, 1),
		NewLine(Point{0, 50}, Point{99, 50}),
		NewTriangle(Point{0, 0}, Point{99, 0}, Point{50, 99}),
		NewRectangle(Point{10, 10}, Point{89, 89}),
		NewPentagon(Point{50, 20}, Point{80, 40}, Point{70, 80}, Point{30, 80}, Point{20, 40}),
		NewCircle(Point{50, 50}, 20, constSource(7)),
	)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []Point{{1, 1}, {0, 50}, {99, 0}, {89, 89}, {80, 40}, {70, 50}} {
		assertLit(t, img, p.X, p.Y)
	}
}

func TestDrawAllLastWriteWins(t *testing.T) {
	img := NewCanvas(10, 10)
	grey := constSource(100)
	err := DrawAll(img,
		NewCircle(Point{5, 5}, 0, grey),
		NewPoint(5, 5),
	)
	if err != nil {
		t.Fatal(err)
	}
	if c, _ := img.Pixel(5, 5); c != White {
		t.Errorf("got %v, want white", c)
	}

	if err := DrawAll(img, NewCircle(Point{5, 5}, 0, grey)); err != nil {
		t.Fatal(err)
	}
	if c, _ := img.Pixel(5, 5); c.R != 100 {
		t.Errorf("got %v, want the circle color", c)
	}
}

func TestDrawAllError(t *testing.T) {
	img := NewCanvas(10, 10)
	err := DrawAll(img,
		NewPoint(1, 1),
		NewCircle(Point{0, 0}, 20, nil), // clipped, no error
		NewLine(Point{0, 0}, Point{10, 10}),
		NewPoint(7, 2),
	)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("got %v, want ErrOutOfBounds", err)
	}
	if !strings.Contains(err.Error(), "shape 2") {
		t.Errorf("error %q does not name the failing shape", err)
	}
	if c, _ := img.Pixel(7, 2); c != black {
		t.Error("drawing continued after the error")
	}
}

func TestDrawIdempotent(t *testing.T) {
	src := rand.New(rand.NewPCG(17, 18))
	for range 100 {
		shapes := []Drawable{
			RandomPoint(src, 40, 40),
			RandomLine(src, 40, 40),
			RandomTriangle(src, 40, 40),
			RandomRectangle(src, 40, 40),
			RandomPentagon(src, 40, 40),
			NewCircle(RandomPoint(src, 40, 40), src.IntN(20), constSource(50)),
		}
		for _, s := range shapes {
			once := NewCanvas(40, 40)
			twice := NewCanvas(40, 40)
			if err := s.Draw(once); err != nil {
				t.Fatal(err)
			}
			if err := s.Draw(twice); err != nil {
				t.Fatal(err)
			}
			if err := s.Draw(twice); err != nil {
				t.Fatal(err)
			}
			if !maps.Equal(litSet(once), litSet(twice)) {
				t.Fatalf("%T %v: drawing twice changed the pixel set", s, s)
			}
		}
	}
}
