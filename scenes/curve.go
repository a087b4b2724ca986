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

import "seehuhn.de/go/geom/path"

const kappa = 0.5522847498307936

var curveScenes = []Scene{
	{
		Name:     "disc",
		Shape:    circle(64, 64, 44),
		Size:     128,
		Op:       Fill{Rule: NonZero},
		Outlines: 1,
	},
	{
		Name:     "ellipse",
		Shape:    ellipse(64, 64, 54, 30),
		Size:     128,
		Op:       Fill{Rule: NonZero},
		Outlines: 1,
	},
	{
		Name:     "heart",
		Shape:    heart(),
		Size:     128,
		Op:       Fill{Rule: NonZero},
		Outlines: 1,
	},
	{
		Name:     "pie",
		Shape:    pie(64, 64, 48, 3),
		Size:     128,
		Op:       Fill{Rule: NonZero},
		Outlines: 1,
	},
	{
		Name:  "wave",
		Shape: wave(14, 64, 114),
		Size:  128,
		Op:    Fill{Rule: NonZero},
	},
}

// circle builds an approximate circle using four cubic Bezier curves.
// The path runs clockwise on screen.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close()
}

// appendReversedCircle adds a counterclockwise circle to p, which cuts a
// hole into a clockwise shape under the nonzero rule.
func appendReversedCircle(p *path.Data, cx, cy, r float64) *path.Data {
	k := r * kappa
	return p.
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		Close()
}

func heart() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(64, 110)).
		CubeTo(pt(30, 86), pt(8, 58), pt(26, 34)).
		CubeTo(pt(40, 16), pt(60, 22), pt(64, 42)).
		CubeTo(pt(68, 22), pt(88, 16), pt(102, 34)).
		CubeTo(pt(120, 58), pt(98, 86), pt(64, 110)).
		Close()
}

// pie builds a circular sector covering the given number of quadrants,
// starting at the right and turning upwards.
func pie(cx, cy, r float64, quadrants int) *path.Data {
	k := r * kappa
	p := (&path.Data{}).
		MoveTo(pt(cx, cy)).
		LineTo(pt(cx+r, cy))
	if quadrants >= 1 {
		p = p.CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r))
	}
	if quadrants >= 2 {
		p = p.CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy))
	}
	if quadrants >= 3 {
		p = p.CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r))
	}
	if quadrants >= 4 {
		p = p.CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy))
	}
	return p.Close()
}

// wave builds a band whose upper and lower edges are made of quadratic
// Bezier curves.
func wave(x1, cy, x2 float64) *path.Data {
	mid := (x1 + x2) / 2
	return (&path.Data{}).
		MoveTo(pt(x1, cy-10)).
		QuadTo(pt((x1+mid)/2, cy-50), pt(mid, cy-10)).
		QuadTo(pt((mid+x2)/2, cy+30), pt(x2, cy-10)).
		LineTo(pt(x2, cy+10)).
		QuadTo(pt((mid+x2)/2, cy+50), pt(mid, cy+10)).
		QuadTo(pt((x1+mid)/2, cy-30), pt(x1, cy+10)).
		Close()
}
