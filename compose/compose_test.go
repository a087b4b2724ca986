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

package compose

import (
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/epicycles/contour"
	"seehuhn.de/go/geom/vec"
)

// square returns a closed contour of the given side length with its lower
// left corner at (x, y).
func square(t *testing.T, x, y, side float64) contour.Contour {
	t.Helper()
	cc, err := contour.FromPolygons([][]vec.Vec2{{
		{X: x, Y: y}, {X: x + side, Y: y}, {X: x + side, Y: y + side}, {X: x, Y: y + side},
	}})
	if err != nil {
		t.Fatal(err)
	}
	return cc[0]
}

func TestLength(t *testing.T) {
	cases := []struct {
		pts  []vec.Vec2
		want float64
	}{
		{nil, 0},
		{[]vec.Vec2{{X: 1, Y: 1}}, 0},
		{[]vec.Vec2{{X: 0, Y: 0}, {X: 3, Y: 4}}, 10},
		{[]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, 4},
		{[]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}, 4},
	}
	for i, tc := range cases {
		if got := Length(tc.pts); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("%d: Length = %g, want %g", i, got, tc.want)
		}
	}
}

func TestGreedyOrder(t *testing.T) {
	cc := []contour.Contour{
		square(t, 0, 100, 10), // leftmost
		square(t, 50, 0, 10),
		square(t, 20, 100, 10),
		square(t, 40, 100, 10),
	}
	got := GreedyOrder(cc)
	want := []int{0, 2, 3, 1}
	if !slices.Equal(got, want) {
		t.Errorf("GreedyOrder = %v, want %v", got, want)
	}
}

func TestMerge(t *testing.T) {
	a := square(t, 0, 0, 10)
	b := square(t, 30, 0, 10)
	const transition = 4

	paths := Compose([]contour.Contour{b, a}, Merge{TransitionPoints: transition})
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(paths))
	}
	p := paths[0]

	wantLen := len(a.Points) + len(b.Points) + transition
	if len(p.Points) != wantLen {
		t.Fatalf("got %d points, want %d", len(p.Points), wantLen)
	}
	if p.Points[0] != a.Points[0] {
		t.Errorf("merged path starts at %v, want the leftmost contour", p.Points[0])
	}

	// the bridge runs from the end of a to the start of b, without its
	// endpoints
	from := a.Points[len(a.Points)-1]
	to := b.Points[0]
	bridge := p.Points[len(a.Points) : len(a.Points)+transition]
	for i, q := range bridge {
		f := float64(i+1) / (transition + 1)
		want := from.Add(to.Sub(from).Mul(f))
		if q.Sub(want).Length() > 1e-12 {
			t.Errorf("bridge point %d = %v, want %v", i, q, want)
		}
	}
	if p.Points[len(a.Points)+transition] != to {
		t.Error("second contour does not follow the bridge")
	}
	if math.Abs(p.Length-Length(p.Points)) > 1e-12 {
		t.Error("path length not set")
	}
}

func TestMergeWithoutTransition(t *testing.T) {
	a := square(t, 0, 0, 10)
	b := square(t, 30, 0, 10)
	paths := Compose([]contour.Contour{a, b}, Merge{})
	if got, want := len(paths[0].Points), len(a.Points)+len(b.Points); got != want {
		t.Errorf("got %d points, want %d", got, want)
	}
}

func TestSeparate(t *testing.T) {
	cc := []contour.Contour{square(t, 0, 0, 10), square(t, 30, 0, 20)}
	paths := Compose(cc, Separate{MinSamples: 32})
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
	wantLength := []float64{40, 80}
	for i, p := range paths {
		if p.Length != wantLength[i] {
			t.Errorf("path %d: length %g, want %g", i, p.Length, wantLength[i])
		}
		if &p.Points[0] != &cc[i].Points[0] {
			t.Errorf("path %d: points are not the contour's", i)
		}
	}
}

func TestSampleCounts(t *testing.T) {
	long := NewPath([]vec.Vec2{{X: 0, Y: 0}, {X: 1000, Y: 0}})
	short := NewPath([]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}})
	empty := NewPath([]vec.Vec2{{X: 5, Y: 5}})

	cases := []struct {
		name  string
		paths []Path
		n     int
		mode  Mode
		want  []int
	}{
		{"merge", []Path{long}, 2048, Merge{TransitionPoints: 12}, []int{2048}},
		{"proportional", []Path{long, long}, 2048, Separate{MinSamples: 32}, []int{1024, 1024}},
		{"floor", []Path{long, short}, 2048, Separate{MinSamples: 32}, []int{2046, 32}},
		{"zero length", []Path{empty, empty}, 100, Separate{MinSamples: 32}, []int{50, 50}},
		{"no paths", nil, 100, Separate{MinSamples: 32}, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SampleCounts(tc.paths, tc.n, tc.mode)
			if !slices.Equal(got, tc.want) {
				t.Errorf("SampleCounts = %v, want %v", got, tc.want)
			}
		})
	}
}
