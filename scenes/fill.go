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

package scenes

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var fillScenes = []Scene{
	{
		Name:     "rectangle",
		Shape:    rectangle(24, 34, 104, 94),
		Size:     128,
		Op:       Fill{Rule: NonZero},
		Outlines: 1,
	},
	{
		Name:     "triangle",
		Shape:    triangle(20, 104, 64, 20, 108, 104),
		Size:     128,
		Op:       Fill{Rule: NonZero},
		Outlines: 1,
	},
	{
		Name:  "hexagon",
		Shape: regularPolygon(64, 64, 48, 6),
		Size:  128,
		Op:    Fill{Rule: NonZero},
	},
	{
		Name:     "star_nonzero",
		Shape:    fivePointStar(64, 68, 52),
		Size:     128,
		Op:       Fill{Rule: NonZero},
		Outlines: 1,
	},
	{
		Name:  "star_evenodd",
		Shape: fivePointStar(64, 68, 52),
		Size:  128,
		Op:    Fill{Rule: EvenOdd},
	},
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// regularPolygon builds a polygon with n corners on a circle, the first
// one at the top.
func regularPolygon(cx, cy, r float64, n int) *path.Data {
	p := &path.Data{}
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		v := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if i == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p.Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *path.Data {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	// 0 -> 2 -> 4 -> 1 -> 3 -> 0
	p := (&path.Data{}).MoveTo(pts[0])
	for _, i := range []int{2, 4, 1, 3} {
		p = p.LineTo(pts[i])
	}
	return p.Close()
}
