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

// Package resample converts closed polylines into complex sample sequences
// which are evenly spaced by arc length.
package resample

import (
	"errors"

	"seehuhn.de/go/geom/vec"
)

// ErrDegenerate indicates a path of zero length.
var ErrDegenerate = errors.New("degenerate path")

// Check returns ErrDegenerate if the closed polyline through pts has zero
// length.
func Check(pts []vec.Vec2) error {
	cum := cumulative(pts)
	if len(cum) == 0 || cum[len(cum)-1] == 0 {
		return ErrDegenerate
	}
	return nil
}

// Path samples the closed polyline through pts at n points, evenly spaced
// by arc length and starting at pts[0]. The samples are centred on their
// mean and returned as x - iy, so that the imaginary axis points up when
// pts uses image coordinates.
//
// A path of zero length gives n zeros.
func Path(pts []vec.Vec2, n int) []complex128 {
	if n <= 0 {
		return nil
	}
	res := make([]complex128, n)

	cum := cumulative(pts)
	if len(cum) == 0 {
		return res
	}
	total := cum[len(cum)-1]
	if total == 0 {
		return res
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	var mx, my float64
	seg := 0
	for k := range n {
		s := float64(k) * total / float64(n)
		for seg < len(pts)-1 && cum[seg+1] <= s {
			seg++
		}
		a := pts[seg]
		b := pts[(seg+1)%len(pts)]
		var p vec.Vec2
		if l := cum[seg+1] - cum[seg]; l > 0 {
			p = a.Add(b.Sub(a).Mul((s - cum[seg]) / l))
		} else {
			p = a
		}
		xs[k], ys[k] = p.X, p.Y
		mx += p.X
		my += p.Y
	}
	mx /= float64(n)
	my /= float64(n)

	for k := range n {
		res[k] = complex(xs[k]-mx, -(ys[k] - my))
	}
	return res
}

// cumulative returns the arc length from pts[0] to each point, followed by
// the total length of the closed loop.
func cumulative(pts []vec.Vec2) []float64 {
	if len(pts) == 0 {
		return nil
	}
	cum := make([]float64, len(pts)+1)
	for i := 1; i <= len(pts); i++ {
		cum[i] = cum[i-1] + pts[i%len(pts)].Sub(pts[i-1]).Length()
	}
	return cum
}
