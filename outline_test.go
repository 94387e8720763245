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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestPolygonOutline(t *testing.T) {
	tri := NewTriangle(Point{0, 0}, Point{9, 0}, Point{4, 7})
	p := tri.Outline()

	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if len(p.Cmds) != len(wantCmds) {
		t.Fatalf("got %d commands, want %d", len(p.Cmds), len(wantCmds))
	}
	for i, cmd := range wantCmds {
		if p.Cmds[i] != cmd {
			t.Errorf("command %d: got %v, want %v", i, p.Cmds[i], cmd)
		}
	}

	wantCoords := []vec.Vec2{{X: 0.5, Y: 0.5}, {X: 9.5, Y: 0.5}, {X: 4.5, Y: 7.5}}
	for i, want := range wantCoords {
		if p.Coords[i] != want {
			t.Errorf("vertex %d: got %v, want %v", i, p.Coords[i], want)
		}
	}
}

func TestRectangleOutline(t *testing.T) {
	p := NewRectangle(Point{1, 2}, Point{5, 8}).Outline()
	want := []vec.Vec2{{X: 1.5, Y: 2.5}, {X: 5.5, Y: 2.5}, {X: 5.5, Y: 8.5}, {X: 1.5, Y: 8.5}}
	if len(p.Coords) != len(want) {
		t.Fatalf("got %d points, want %d", len(p.Coords), len(want))
	}
	for i := range want {
		if p.Coords[i] != want[i] {
			t.Errorf("corner %d: got %v, want %v", i, p.Coords[i], want[i])
		}
	}
}

func TestCircleOutline(t *testing.T) {
	c := NewCircle(Point{10, 20}, 5, nil)
	p := c.Outline()

	// all on-curve points lie on the circle
	n := 0
	for cmd, pts := range p.Iter() {
		if cmd == path.CmdClose {
			continue
		}
		end := pts[len(pts)-1]
		r := math.Hypot(end.X-10.5, end.Y-20.5)
		if math.Abs(r-5) > 1e-9 {
			t.Errorf("point %v has radius %g", end, r)
		}
		n++
	}
	if n != 5 {
		t.Errorf("got %d segments, want 5", n)
	}
}

func TestOutliner(t *testing.T) {
	all := []Drawable{Point{}, Line{}, Triangle{}, Rectangle{}, Pentagon{}, Circle{}}
	for _, s := range all {
		if _, ok := s.(Outliner); !ok {
			t.Errorf("%T does not implement Outliner", s)
		}
	}
}
