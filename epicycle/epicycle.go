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

// Package epicycle simulates and draws sums of rotating vectors.
package epicycle

import (
	"math"
	"math/cmplx"

	"seehuhn.de/go/epicycles/fourier"
)

// Construction is the state of one chain of epicycles at a fixed time.
type Construction struct {
	// Joints holds the running sum before and after every vector, so
	// Joints[0] is the origin and Joints[len(Joints)-1] is the tip.
	Joints []complex128

	// Radii[i] is the length of the vector from Joints[i] to Joints[i+1],
	// which is also the radius of the circle it sweeps.
	Radii []float64
}

// Construct walks the components of set in order at time t.
func Construct(set []fourier.Component, t float64) Construction {
	c := Construction{
		Joints: make([]complex128, 1, len(set)+1),
		Radii:  make([]float64, len(set)),
	}
	var pos complex128
	for i, comp := range set {
		pos += comp.C * cmplx.Exp(complex(0, 2*math.Pi*float64(comp.K)*t))
		c.Joints = append(c.Joints, pos)
		c.Radii[i] = cmplx.Abs(comp.C)
	}
	return c
}

// Tip returns the end point of the chain.
func (c Construction) Tip() complex128 {
	return c.Joints[len(c.Joints)-1]
}

// Trail accumulates the tip positions of one chain over an animation.
// The zero value is an empty trail.
type Trail struct {
	pts []complex128
}

// Append adds a point to the end of the trail.
func (tr *Trail) Append(z complex128) {
	tr.pts = append(tr.pts, z)
}

// Points returns the trail so far. Later calls to Append do not change
// the returned slice.
func (tr *Trail) Points() []complex128 {
	return tr.pts[:len(tr.pts):len(tr.pts)]
}

// Len returns the number of points in the trail.
func (tr *Trail) Len() int {
	return len(tr.pts)
}
