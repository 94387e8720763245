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
	"math/rand/v2"
	"slices"
	"testing"
)

// outlinePixels returns the set of pixels on the closed outline through
// the given vertices.
func outlinePixels(vertices []Point) map[Point]bool {
	res := make(map[Point]bool)
	for i := range vertices {
		l := NewLine(vertices[i], vertices[(i+1)%len(vertices)])
		for p := range l.Pixels() {
			res[p] = true
		}
	}
	return res
}

// checkOutline draws s onto a fresh canvas and verifies that exactly the
// pixels of its edges are painted, in white.
func checkOutline(t *testing.T, s interface {
	Drawable
	Vertices() []Point
}, width, height int) {
	t.Helper()

	img := NewCanvas(width, height)
	if err := s.Draw(img); err != nil {
		t.Fatal(err)
	}

	for _, v := range s.Vertices() {
		assertLit(t, img, v.X, v.Y)
	}

	want := outlinePixels(s.Vertices())
	got := litSet(img)
	if len(got) != len(want) {
		t.Errorf("painted %d pixels, want %d", len(got), len(want))
	}
	for p := range want {
		if !got[p] {
			t.Errorf("edge pixel %v not painted", p)
		}
		if c, _ := img.Pixel(p.X, p.Y); c != White {
			t.Errorf("pixel %v has color %v, want white", p, c)
		}
	}
}

func TestDrawTriangle(t *testing.T) {
	tri := NewTriangle(NewPoint(0, 0), NewPoint(99, 0), NewPoint(50, 99))
	checkOutline(t, tri, 100, 100)
}

func TestDrawRectangle(t *testing.T) {
	rect := NewRectangle(NewPoint(0, 0), NewPoint(99, 99))
	checkOutline(t, rect, 100, 100)

	img := NewCanvas(100, 100)
	if err := rect.Draw(img); err != nil {
		t.Fatal(err)
	}
	for _, c := range []Point{{0, 0}, {99, 0}, {0, 99}, {99, 99}} {
		assertLit(t, img, c.X, c.Y)
	}
	if n := countLit(img); n != 4*99 {
		t.Errorf("painted %d pixels, want %d", n, 4*99)
	}
}

func TestRectangleCorners(t *testing.T) {
	r := NewRectangle(Point{3, 5}, Point{17, 11})
	if got := r.TopRight(); got != (Point{17, 5}) {
		t.Errorf("TopRight() = %v", got)
	}
	if got := r.BottomLeft(); got != (Point{3, 11}) {
		t.Errorf("BottomLeft() = %v", got)
	}
	want := []Point{{3, 5}, {17, 5}, {17, 11}, {3, 11}}
	if got := r.Vertices(); !slices.Equal(got, want) {
		t.Errorf("Vertices() = %v, want %v", got, want)
	}
}

func TestDrawPentagon(t *testing.T) {
	pent := NewPentagon(
		Point{32, 7}, Point{56, 24}, Point{47, 52}, Point{17, 52}, Point{8, 24})
	checkOutline(t, pent, 64, 64)
}

func TestDrawDegeneratePolygons(t *testing.T) {
	cases := []struct {
		name string
		s    interface {
			Drawable
			Vertices() []Point
		}
	}{
		{"triangle_collinear", NewTriangle(Point{1, 1}, Point{5, 5}, Point{9, 9})},
		{"triangle_point", NewTriangle(Point{4, 4}, Point{4, 4}, Point{4, 4})},
		{"rectangle_flat", NewRectangle(Point{2, 6}, Point{9, 6})},
		{"rectangle_point", NewRectangle(Point{6, 6}, Point{6, 6})},
		{"rectangle_swapped", NewRectangle(Point{9, 9}, Point{2, 3})},
		{"pentagon_point", NewPentagon(Point{0, 0}, Point{0, 0}, Point{0, 0}, Point{0, 0}, Point{0, 0})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checkOutline(t, tc.s, 12, 12)
		})
	}
}

func TestPolygonOutOfBounds(t *testing.T) {
	img := NewCanvas(10, 10)
	tri := NewTriangle(Point{1, 1}, Point{8, 1}, Point{5, 12})
	if err := tri.Draw(img); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("got %v, want ErrOutOfBounds", err)
	}
}

func TestRandomPolygons(t *testing.T) {
	src := rand.New(rand.NewPCG(9, 10))
	inside := func(p Point) bool {
		return p.X >= 0 && p.X < 30 && p.Y >= 0 && p.Y < 20
	}
	for range 200 {
		for _, v := range RandomTriangle(src, 30, 20).Vertices() {
			if !inside(v) {
				t.Fatalf("triangle vertex %v out of range", v)
			}
		}
		for _, v := range RandomPentagon(src, 30, 20).Vertices() {
			if !inside(v) {
				t.Fatalf("pentagon vertex %v out of range", v)
			}
		}
		r := RandomRectangle(src, 30, 20)
		if !inside(r.TopLeft) || !inside(r.BottomRight) {
			t.Fatalf("rectangle %v-%v out of range", r.TopLeft, r.BottomRight)
		}
		if r.TopLeft.X > r.BottomRight.X || r.TopLeft.Y > r.BottomRight.Y {
			t.Fatalf("rectangle corners not ordered: %v-%v", r.TopLeft, r.BottomRight)
		}
	}
}
