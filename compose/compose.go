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

// Package compose turns a set of contours into the paths which are fed to
// the Fourier stage.
//
// In [Merge] mode all contours are joined into a single path, visiting
// them in greedy nearest-centroid order with short straight bridges in
// between. In [Separate] mode every contour becomes a path of its own.
package compose

import (
	"math"

	"seehuhn.de/go/epicycles/contour"
	"seehuhn.de/go/geom/vec"
)

// Mode selects how contours are combined into paths.
// The concrete types are [Merge] and [Separate].
type Mode interface {
	isMode()
}

// Merge joins all contours into one path.
type Merge struct {
	// TransitionPoints is the number of interpolated points inserted
	// between the end of one contour and the start of the next.
	TransitionPoints int
}

// Separate keeps one path per contour.
type Separate struct {
	// MinSamples is the smallest number of samples given to any path
	// when the global sample count is shared out.
	MinSamples int
}

func (Merge) isMode()    {}
func (Separate) isMode() {}

// Path is a polyline which is implicitly closed.
type Path struct {
	Points []vec.Vec2

	// Length is the arc length, including the segment from the last
	// point back to the first.
	Length float64
}

// NewPath wraps pts, which must not be modified afterwards.
func NewPath(pts []vec.Vec2) Path {
	return Path{Points: pts, Length: Length(pts)}
}

// Length returns the arc length of the closed polyline through pts.
func Length(pts []vec.Vec2) float64 {
	if len(pts) < 2 {
		return 0
	}
	var l float64
	for i := 1; i < len(pts); i++ {
		l += pts[i].Sub(pts[i-1]).Length()
	}
	return l + pts[0].Sub(pts[len(pts)-1]).Length()
}

// Compose builds the paths for the given contours.
func Compose(cc []contour.Contour, m Mode) []Path {
	switch m := m.(type) {
	case Merge:
		return []Path{merge(cc, m.TransitionPoints)}
	case Separate:
		res := make([]Path, len(cc))
		for i := range cc {
			res[i] = NewPath(cc[i].Points)
		}
		return res
	default:
		panic("compose: unknown mode")
	}
}

func merge(cc []contour.Contour, transition int) Path {
	order := GreedyOrder(cc)

	n := 0
	for _, c := range cc {
		n += len(c.Points)
	}
	pts := make([]vec.Vec2, 0, n+max(len(cc)-1, 0)*transition)

	for idx, k := range order {
		if idx > 0 && transition > 0 {
			from := pts[len(pts)-1]
			to := cc[k].Points[0]
			for s := 1; s <= transition; s++ {
				t := float64(s) / float64(transition+1)
				pts = append(pts, from.Add(to.Sub(from).Mul(t)))
			}
		}
		pts = append(pts, cc[k].Points...)
	}
	return NewPath(pts)
}

// GreedyOrder returns a visiting order for the contours. It starts at the
// contour with the leftmost centroid and repeatedly moves on to the
// nearest unvisited centroid.
func GreedyOrder(cc []contour.Contour) []int {
	if len(cc) == 0 {
		return nil
	}

	cur := 0
	for i := range cc {
		if cc[i].Centroid.X < cc[cur].Centroid.X {
			cur = i
		}
	}

	visited := make([]bool, len(cc))
	order := make([]int, 0, len(cc))
	for {
		visited[cur] = true
		order = append(order, cur)
		if len(order) == len(cc) {
			return order
		}

		next := -1
		best := math.Inf(1)
		for i := range cc {
			if visited[i] {
				continue
			}
			if d := cc[i].Centroid.Sub(cc[cur].Centroid).Length(); d < best {
				best, next = d, i
			}
		}
		cur = next
	}
}

// SampleCounts distributes n samples over the paths. In merge mode there
// is a single path which receives all n samples. In separate mode every
// path gets a share proportional to its length, but at least MinSamples.
func SampleCounts(paths []Path, n int, m Mode) []int {
	res := make([]int, len(paths))
	if len(paths) == 0 {
		return res
	}

	var minSamples int
	if s, ok := m.(Separate); ok {
		minSamples = s.MinSamples
	}

	var total float64
	for _, p := range paths {
		total += p.Length
	}
	for i, p := range paths {
		if total > 0 {
			res[i] = int(math.RoundToEven(float64(n) * p.Length / total))
		} else {
			res[i] = n / len(paths)
		}
		res[i] = max(res[i], minSamples, 1)
	}
	return res
}
