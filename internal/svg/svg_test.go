// seehuhn.de/go/epicycles - Fourier epicycle animations of traced shapes
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

package svg

import (
	"errors"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/epicycles/contour"
)

const twoSquares = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <path d="M10 10 H40 V40 H10 Z"/>
  <path d="m60 60 h30 v30 h-30 z" fill="#333"/>
</svg>`

func TestTraceTwoPaths(t *testing.T) {
	d, err := Parse(strings.NewReader(twoSquares))
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Shapes) != 2 {
		t.Fatalf("got %d shapes, want 2", len(d.Shapes))
	}

	img := d.Bitmap(200)
	cc, err := contour.Extract(img, contour.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(cc) != 2 {
		t.Fatalf("got %d contours, want 2", len(cc))
	}
	want := []vec.Vec2{{X: 50, Y: 50}, {X: 150, Y: 150}}
	for i, c := range cc {
		if c.Hole {
			t.Errorf("contour %d is a hole", i)
		}
		if c.Centroid.Sub(want[i]).Length() > 2 {
			t.Errorf("contour %d: centroid %v, want %v", i, c.Centroid, want[i])
		}
		if math.Abs(c.Area-60*60) > 0.1*60*60 {
			t.Errorf("contour %d: area %g, want about %d", i, c.Area, 60*60)
		}
	}
}

func TestPathData(t *testing.T) {
	const (
		M = path.CmdMoveTo
		L = path.CmdLineTo
		Q = path.CmdQuadTo
		C = path.CmdCubeTo
		Z = path.CmdClose
	)
	type testCase struct {
		d      string
		cmds   []path.Command
		coords []vec.Vec2
	}
	cases := []testCase{
		{
			d:      "M1 2 L3 4",
			cmds:   []path.Command{M, L},
			coords: []vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}},
		},
		{
			d:      "M1 2 3 4 5 6",
			cmds:   []path.Command{M, L, L},
			coords: []vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}},
		},
		{
			d:      "m1 2 l3 4 2 2",
			cmds:   []path.Command{M, L, L},
			coords: []vec.Vec2{{X: 1, Y: 2}, {X: 4, Y: 6}, {X: 6, Y: 8}},
		},
		{
			d:      "M0,0 H5 V7 h-1 v-2",
			cmds:   []path.Command{M, L, L, L, L},
			coords: []vec.Vec2{{}, {X: 5}, {X: 5, Y: 7}, {X: 4, Y: 7}, {X: 4, Y: 5}},
		},
		{
			d:      "M0 0 L1 0 Z L0 1",
			cmds:   []path.Command{M, L, Z, M, L},
			coords: []vec.Vec2{{}, {X: 1}, {}, {Y: 1}},
		},
		{
			d:      "M-1-2.5L.5.5",
			cmds:   []path.Command{M, L},
			coords: []vec.Vec2{{X: -1, Y: -2.5}, {X: 0.5, Y: 0.5}},
		},
		{
			d:      "M0 0 Q1 1 2 0 T4 0",
			cmds:   []path.Command{M, Q, Q},
			coords: []vec.Vec2{{}, {X: 1, Y: 1}, {X: 2}, {X: 3, Y: -1}, {X: 4}},
		},
		{
			d:    "M0 0 C0 1 1 1 1 0 S2 -1 2 0",
			cmds: []path.Command{M, C, C},
			coords: []vec.Vec2{
				{}, {Y: 1}, {X: 1, Y: 1}, {X: 1},
				{X: 1, Y: -1}, {X: 2, Y: -1}, {X: 2},
			},
		},
		{
			d:      "M1e1 0 l-1E1 0",
			cmds:   []path.Command{M, L},
			coords: []vec.Vec2{{X: 10}, {}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.d, func(t *testing.T) {
			p, err := parsePathData(tc.d, matrix.Identity)
			if err != nil {
				t.Fatal(err)
			}
			if len(p.Cmds) != len(tc.cmds) {
				t.Fatalf("got commands %v, want %v", p.Cmds, tc.cmds)
			}
			for i := range tc.cmds {
				if p.Cmds[i] != tc.cmds[i] {
					t.Errorf("command %d: got %v, want %v", i, p.Cmds[i], tc.cmds[i])
				}
			}
			if len(p.Coords) != len(tc.coords) {
				t.Fatalf("got points %v, want %v", p.Coords, tc.coords)
			}
			for i := range tc.coords {
				if p.Coords[i].Sub(tc.coords[i]).Length() > 1e-9 {
					t.Errorf("point %d: got %v, want %v", i, p.Coords[i], tc.coords[i])
				}
			}
		})
	}
}

func TestArc(t *testing.T) {
	for _, d := range []string{
		"M0 0 A5 5 0 0 1 10 0",
		"M0 0a5 5 0 0110 0",
	} {
		p, err := parsePathData(d, matrix.Identity)
		if err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if len(p.Cmds) != 3 || p.Cmds[1] != path.CmdCubeTo || p.Cmds[2] != path.CmdCubeTo {
			t.Fatalf("%s: got commands %v, want a move and two cubics", d, p.Cmds)
		}
		mid := p.Coords[3]
		if mid.Sub(vec.Vec2{X: 5, Y: -5}).Length() > 1e-9 {
			t.Errorf("%s: half way point %v, want (5,-5)", d, mid)
		}
		end := p.Coords[len(p.Coords)-1]
		if end != (vec.Vec2{X: 10, Y: 0}) {
			t.Errorf("%s: end point %v, want (10,0)", d, end)
		}
		for _, v := range p.Coords {
			if v.Y > 1e-9 {
				t.Errorf("%s: point %v below the chord", d, v)
			}
		}
	}

	// radii too small to reach the end point are scaled up
	p, err := parsePathData("M0 0 A1 1 0 0 0 10 0", matrix.Identity)
	if err != nil {
		t.Fatal(err)
	}
	if end := p.Coords[len(p.Coords)-1]; end != (vec.Vec2{X: 10}) {
		t.Errorf("end point %v, want (10,0)", end)
	}
}

func TestPathDataErrors(t *testing.T) {
	for _, d := range []string{
		"10 10",
		"M1 x",
		"M1",
		"M0 0 A5 5 0 2 1 10 0",
		"M0 0 B1 1",
	} {
		_, err := parsePathData(d, matrix.Identity)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: got error %v, want ErrSyntax", d, err)
		}
	}
}

func TestTransform(t *testing.T) {
	type testCase struct {
		transform string
		in, out   vec.Vec2
	}
	cases := []testCase{
		{"translate(10 20) scale(2)", vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 12, Y: 22}},
		{"scale(2) translate(10 20)", vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 22, Y: 42}},
		{"rotate(90)", vec.Vec2{X: 1}, vec.Vec2{Y: 1}},
		{"rotate(90 5 5)", vec.Vec2{X: 10, Y: 5}, vec.Vec2{X: 5, Y: 10}},
		{"matrix(1,0,0,1,3,4)", vec.Vec2{}, vec.Vec2{X: 3, Y: 4}},
		{"translate(7)", vec.Vec2{}, vec.Vec2{X: 7}},
		{"skewX(45)", vec.Vec2{Y: 2}, vec.Vec2{X: 2, Y: 2}},
	}
	for _, tc := range cases {
		m, err := parseTransform(tc.transform)
		if err != nil {
			t.Errorf("%s: %v", tc.transform, err)
			continue
		}
		got := apply(m, tc.in)
		if got.Sub(tc.out).Length() > 1e-9 {
			t.Errorf("%s: %v -> %v, want %v", tc.transform, tc.in, got, tc.out)
		}
	}

	for _, bad := range []string{"translate(1 2 3)", "spin(4)", "scale(2"} {
		if _, err := parseTransform(bad); !errors.Is(err, ErrSyntax) {
			t.Errorf("%s: got error %v, want ErrSyntax", bad, err)
		}
	}
}

func TestNestedTransform(t *testing.T) {
	const doc = `<svg viewBox="0 0 100 100">
  <g transform="translate(10 20)">
    <g transform="scale(2)">
      <rect x="1" y="1" width="2" height="3" stroke="black" stroke-width="1.5"/>
    </g>
  </g>
</svg>`
	d, err := ParseBytes([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(d.Shapes))
	}
	sh := d.Shapes[0]
	want := []vec.Vec2{{X: 12, Y: 22}, {X: 16, Y: 22}, {X: 16, Y: 28}, {X: 12, Y: 28}}
	for i, v := range want {
		if sh.Path.Coords[i].Sub(v).Length() > 1e-9 {
			t.Errorf("corner %d: got %v, want %v", i, sh.Path.Coords[i], v)
		}
	}
	if math.Abs(sh.StrokeWidth-3) > 1e-9 {
		t.Errorf("stroke width %g, want 3", sh.StrokeWidth)
	}
}

func TestPaint(t *testing.T) {
	type testCase struct {
		in   string
		want Paint
	}
	cases := []testCase{
		{"none", Paint{None: true}},
		{"black", Paint{Gray: 0}},
		{"White", Paint{Gray: 255}},
		{"#fff", Paint{Gray: 255}},
		{"#808080", Paint{Gray: 128}},
		{"red", Paint{Gray: 76}},
		{"rgb(255, 0, 0)", Paint{Gray: 76}},
		{"url(#gradient)", Paint{Gray: 0}},
	}
	for _, tc := range cases {
		if got := parsePaint(tc.in); got != tc.want {
			t.Errorf("%q: got %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestStyleInheritance(t *testing.T) {
	const doc = `<svg width="50px" height="40">
  <defs><rect id="hidden" width="10" height="10"/></defs>
  <g style="fill: #808080; stroke: none">
    <circle cx="10" cy="10" r="5"/>
    <circle cx="30" cy="10" r="5" fill="black" style="fill:white"/>
  </g>
  <rect width="10" height="10" fill="none"/>
  <text x="0" y="0">ignored</text>
</svg>`
	d, err := ParseBytes([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if d.ViewBox != (rect.Rect{URx: 50, URy: 40}) {
		t.Errorf("view box %v, want [0,50]x[0,40]", d.ViewBox)
	}
	if len(d.Shapes) != 2 {
		t.Fatalf("got %d shapes, want 2", len(d.Shapes))
	}
	if d.Shapes[0].Fill.Gray != 128 {
		t.Errorf("inherited fill %d, want 128", d.Shapes[0].Fill.Gray)
	}
	if d.Shapes[1].Fill.Gray != 255 {
		t.Errorf("style attribute fill %d, want 255", d.Shapes[1].Fill.Gray)
	}
	for i, sh := range d.Shapes {
		if !sh.Stroke.None {
			t.Errorf("shape %d is stroked", i)
		}
	}
}

func TestStrokedRing(t *testing.T) {
	const doc = `<svg viewBox="0 0 100 100">
  <circle cx="50" cy="50" r="30" fill="none" stroke="black" stroke-width="10"/>
</svg>`
	d, err := ParseBytes([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	img := d.Bitmap(100)
	if img.GrayAt(50, 50).Y != 255 {
		t.Error("centre of the ring is painted")
	}
	if img.GrayAt(80, 50).Y != 0 {
		t.Error("ring is not painted")
	}

	cc, err := contour.Extract(img, contour.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(cc) != 2 {
		t.Fatalf("got %d contours, want 2", len(cc))
	}
	holes := 0
	for _, c := range cc {
		if c.Hole {
			holes++
		}
	}
	if holes != 1 {
		t.Errorf("got %d holes, want 1", holes)
	}
}

func TestFillRule(t *testing.T) {
	const tmpl = `<svg viewBox="0 0 100 100">
  <path fill-rule="RULE" d="M10 10H90V90H10Z M30 30H70V70H30Z"/>
</svg>`
	type testCase struct {
		rule string
		want uint8
	}
	for _, tc := range []testCase{{"nonzero", 0}, {"evenodd", 255}} {
		d, err := ParseBytes([]byte(strings.Replace(tmpl, "RULE", tc.rule, 1)))
		if err != nil {
			t.Fatal(err)
		}
		img := d.Bitmap(100)
		if got := img.GrayAt(50, 50).Y; got != tc.want {
			t.Errorf("%s: centre pixel %d, want %d", tc.rule, got, tc.want)
		}
		if got := img.GrayAt(20, 20).Y; got != 0 {
			t.Errorf("%s: outer ring pixel %d, want 0", tc.rule, got)
		}
	}
}

func TestViewBoxFit(t *testing.T) {
	const doc = `<svg viewBox="0 0 10 20"><rect width="10" height="20"/></svg>`
	d, err := ParseBytes([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	img := d.Bitmap(100)
	for _, tc := range []struct {
		x, y int
		want uint8
	}{
		{50, 50, 0},
		{30, 5, 0},
		{10, 50, 255},
		{85, 50, 255},
	} {
		if got := img.GrayAt(tc.x, tc.y).Y; got != tc.want {
			t.Errorf("pixel (%d,%d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	type testCase struct {
		doc  string
		want error
	}
	cases := []testCase{
		{`<html><body/></html>`, ErrNotSVG},
		{``, ErrNotSVG},
		{`<svg><path d="M0 0"/></svg>`, ErrNoSize},
		{`<svg viewBox="0 0 -1 1"/>`, ErrSyntax},
		{`<svg viewBox="0 0 10 10"><path d="M0 0 L1 q"/></svg>`, ErrSyntax},
		{`<svg viewBox="0 0 10 10"><rect width="ten" height="1"/></svg>`, ErrSyntax},
		{`<svg viewBox="0 0 10 10"><g transform="spin(1)"/></svg>`, ErrSyntax},
	}
	for _, tc := range cases {
		_, err := ParseBytes([]byte(tc.doc))
		if !errors.Is(err, tc.want) {
			t.Errorf("%q: got error %v, want %v", tc.doc, err, tc.want)
		}
	}

	if _, err := ParseBytes([]byte(`<svg viewBox="0 0 10 10"><path`)); err == nil {
		t.Error("truncated document accepted")
	}
}

func BenchmarkBitmap(b *testing.B) {
	d, err := ParseBytes([]byte(twoSquares))
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		d.Bitmap(512)
	}
}
