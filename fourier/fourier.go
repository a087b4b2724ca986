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

// Package fourier decomposes complex sample sequences into rotating
// vectors.
//
// A sequence z of length N is written as
//
//	z[n] = Σ c_k exp(2πi k n/N)
//
// where the harmonic index k runs over (-N/2, N/2]. Each term is one
// epicycle: a vector of length |c_k| turning k times per period.
package fourier

import (
	"cmp"
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	algofft "github.com/cwbudde/algo-fft"
)

// MinSeparateBudget is the smallest number of components kept for each
// path when a global budget is split over several paths.
const MinSeparateBudget = 6

// Component is one term of a Fourier series.
type Component struct {
	K int        // harmonic index
	C complex128 // coefficient
}

// Transform returns the discrete Fourier coefficients of z, divided by
// len(z).
func Transform(z []complex128) ([]complex128, error) {
	n := len(z)
	if n == 0 {
		return nil, nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fourier: failed to create FFT plan for %d samples: %w", n, err)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, z); err != nil {
		return nil, fmt.Errorf("fourier: forward transform: %w", err)
	}

	scale := complex(1/float64(n), 0)
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}

// Components pairs each coefficient with its signed harmonic index. Bin i
// becomes index i for i <= N/2 and i-N otherwise.
func Components(coeffs []complex128) []Component {
	n := len(coeffs)
	res := make([]Component, n)
	for i, c := range coeffs {
		k := i
		if k > n/2 {
			k -= n
		}
		res[i] = Component{K: k, C: c}
	}
	return res
}

// Rank sorts cs by decreasing magnitude, keeping the original order among
// equal magnitudes, and then moves the k=0 term to the front.
func Rank(cs []Component) {
	slices.SortStableFunc(cs, func(a, b Component) int {
		return cmp.Compare(cmplx.Abs(b.C), cmplx.Abs(a.C))
	})
	if i := slices.IndexFunc(cs, func(c Component) bool { return c.K == 0 }); i > 0 {
		zero := cs[i]
		copy(cs[1:i+1], cs[:i])
		cs[0] = zero
	}
}

// Select returns a copy of the first budget components of a ranked list.
// At least one component is kept whenever cs is not empty.
func Select(cs []Component, budget int) []Component {
	n := min(max(budget, 1), len(cs))
	return slices.Clone(cs[:n])
}

// Budgets splits a global component budget over several sequences in
// proportion to their lengths. Every sequence gets at least
// MinSeparateBudget components.
func Budgets(lengths []int, budget int) []int {
	total := 0
	for _, l := range lengths {
		total += l
	}
	total = max(total, 1)

	res := make([]int, len(lengths))
	for i, l := range lengths {
		share := math.RoundToEven(float64(budget) * float64(l) / float64(total))
		res[i] = max(MinSeparateBudget, int(share))
	}
	return res
}

// Scale multiplies all coefficients in place so that their magnitudes sum
// to radius, and returns the factor used. If all coefficients are zero the
// factor is 1.
func Scale(cs []Component, radius float64) float64 {
	var sum float64
	for _, c := range cs {
		sum += cmplx.Abs(c.C)
	}
	if sum == 0 {
		return 1
	}
	f := radius / sum
	for i := range cs {
		cs[i].C *= complex(f, 0)
	}
	return f
}

// Decompose runs the whole decomposition for one sequence: transform,
// rank, keep budget components and scale them to radius. The scale factor
// is returned together with the components.
func Decompose(z []complex128, budget int, radius float64) ([]Component, float64, error) {
	coeffs, err := Transform(z)
	if err != nil {
		return nil, 0, err
	}
	cs := Components(coeffs)
	Rank(cs)
	set := Select(cs, budget)
	return set, Scale(set, radius), nil
}

// Synthesize evaluates the series at time t, where one period is t ∈ [0, 1).
func Synthesize(set []Component, t float64) complex128 {
	var z complex128
	for _, c := range set {
		z += c.C * cmplx.Exp(complex(0, 2*math.Pi*float64(c.K)*t))
	}
	return z
}
