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

package fourier

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"
	"testing"

	"seehuhn.de/go/epicycles/resample"
	"seehuhn.de/go/geom/vec"
)

// testSignal returns a deterministic, irregular signal of length n.
func testSignal(n int) []complex128 {
	z := make([]complex128, n)
	for i := range z {
		x := float64(i)
		z[i] = complex(math.Sin(0.7*x)+0.3*math.Cos(2.1*x+1), math.Cos(0.4*x)-0.2*x/float64(n))
	}
	return z
}

// dft is the direct O(N²) transform, used as a reference.
func dft(z []complex128) []complex128 {
	n := len(z)
	out := make([]complex128, n)
	for k := range n {
		var sum complex128
		for j, v := range z {
			phase := -2 * math.Pi * float64((k*j)%n) / float64(n)
			sum += v * cmplx.Rect(1, phase)
		}
		out[k] = sum
	}
	return out
}

func TestTransformMatchesDFT(t *testing.T) {
	for _, n := range []int{1, 2, 3, 16, 30, 33, 256, 1000, 1365} {
		z := testSignal(n)
		got, err := Transform(z)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		want := dft(z)
		for i := range want {
			want[i] /= complex(float64(n), 0)
			if cmplx.Abs(got[i]-want[i]) > 1e-9 {
				t.Errorf("n=%d, bin %d: got %v, want %v", n, i, got[i], want[i])
				break
			}
		}
	}
}

func TestTransformEmpty(t *testing.T) {
	got, err := Transform(nil)
	if got != nil || err != nil {
		t.Errorf("got %v, %v", got, err)
	}
}

func TestTransformHarmonic(t *testing.T) {
	for _, n := range []int{32, 30} {
		z := make([]complex128, n)
		for i := range z {
			z[i] = 2 * cmplx.Exp(complex(0, 2*math.Pi*3*float64(i)/float64(n)))
		}
		c, err := Transform(z)
		if err != nil {
			t.Fatal(err)
		}
		for k, v := range c {
			want := 0i
			if k == 3 {
				want = 2
			}
			if cmplx.Abs(v-want) > 1e-9 {
				t.Errorf("n=%d, bin %d = %v, want %v", n, k, v, want)
			}
		}
	}
}

func TestComponents(t *testing.T) {
	cs := Components(make([]complex128, 8))
	var got []int
	for _, c := range cs {
		got = append(got, c.K)
	}
	want := []int{0, 1, 2, 3, 4, -3, -2, -1}
	if !slices.Equal(got, want) {
		t.Errorf("indices = %v, want %v", got, want)
	}
}

func TestRank(t *testing.T) {
	cs := []Component{
		{K: 0, C: 0.1},
		{K: 1, C: 3},
		{K: 2, C: 2i},
		{K: -1, C: -3},
		{K: -2, C: 5},
	}
	Rank(cs)
	var got []int
	for _, c := range cs {
		got = append(got, c.K)
	}
	want := []int{0, -2, 1, -1, 2}
	if !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

// TestSquare decomposes the square (0,0), (10,0), (10,10), (0,10) with
// eight samples and eight components.
func TestSquare(t *testing.T) {
	square := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	const radius = 336.0

	set, f, err := Decompose(resample.Path(square, 8), 8, radius)
	if err != nil {
		t.Fatal(err)
	}
	if !(f > 0) {
		t.Errorf("scale factor %g", f)
	}
	if len(set) == 0 || len(set) > 8 {
		t.Fatalf("got %d components", len(set))
	}
	if set[0].K != 0 {
		t.Errorf("first component has k=%d, want 0", set[0].K)
	}
	var sum float64
	nonzero := 0
	for _, c := range set {
		sum += cmplx.Abs(c.C)
		if c.K != 0 && cmplx.Abs(c.C) > 1e-9 {
			nonzero++
		}
	}
	if math.Abs(sum-radius) > 1e-9 {
		t.Errorf("magnitude sum = %g, want %g", sum, radius)
	}
	if nonzero == 0 || nonzero > 7 {
		t.Errorf("%d nonzero harmonics", nonzero)
	}
}

func TestRoundTrip(t *testing.T) {
	const n = 64
	z := testSignal(n)
	coeffs, err := Transform(z)
	if err != nil {
		t.Fatal(err)
	}
	cs := Components(coeffs)
	Rank(cs)
	set := Select(cs, n)
	for i := range z {
		got := Synthesize(set, float64(i)/n)
		if cmplx.Abs(got-z[i]) > 1e-9 {
			t.Errorf("sample %d: got %v, want %v", i, got, z[i])
		}
	}
}

func TestSelect(t *testing.T) {
	cs := Components(testSignal(10))
	cases := []struct{ budget, want int }{
		{0, 1}, {1, 1}, {4, 4}, {10, 10}, {80, 10},
	}
	for _, tc := range cases {
		if got := len(Select(cs, tc.budget)); got != tc.want {
			t.Errorf("budget %d: kept %d, want %d", tc.budget, got, tc.want)
		}
	}
	if got := Select(nil, 5); len(got) != 0 {
		t.Errorf("empty input: got %v", got)
	}

	set := Select(cs, 3)
	set[0].C = 99
	if cs[0].C == 99 {
		t.Error("Select does not copy")
	}
}

func TestBudgets(t *testing.T) {
	cases := []struct {
		lengths []int
		budget  int
		want    []int
	}{
		{[]int{2000, 48}, 80, []int{78, 6}},
		{[]int{1024, 1024}, 80, []int{40, 40}},
		{[]int{100}, 3, []int{6}},
		{[]int{0, 0}, 80, []int{6, 6}},
	}
	for _, tc := range cases {
		if got := Budgets(tc.lengths, tc.budget); !slices.Equal(got, tc.want) {
			t.Errorf("Budgets(%v, %d) = %v, want %v", tc.lengths, tc.budget, got, tc.want)
		}
	}
}

func TestScale(t *testing.T) {
	cs := []Component{{K: 0, C: 3}, {K: 1, C: 4i}}
	if f := Scale(cs, 14); f != 2 {
		t.Errorf("factor = %g, want 2", f)
	}
	if cs[0].C != 6 || cs[1].C != 8i {
		t.Errorf("scaled = %v", cs)
	}

	zero := []Component{{K: 0}, {K: 1}}
	if f := Scale(zero, 14); f != 1 {
		t.Errorf("zero set: factor = %g, want 1", f)
	}
}

func TestSynthesize(t *testing.T) {
	set := []Component{{K: 0, C: 1}, {K: 1, C: 2}}
	if got := Synthesize(set, 0.25); cmplx.Abs(got-(1+2i)) > 1e-12 {
		t.Errorf("Synthesize = %v, want 1+2i", got)
	}
	if got := Synthesize(nil, 0.5); got != 0 {
		t.Errorf("empty set: %v", got)
	}
}

func BenchmarkTransform(b *testing.B) {
	for _, n := range []int{2048, 1365} {
		z := testSignal(n)
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			for b.Loop() {
				Transform(z)
			}
		})
	}
}
