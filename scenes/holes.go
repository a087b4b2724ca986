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

var holeScenes = []Scene{
	{
		Name:     "square_ring",
		Shape:    ringShape(64, 64, 44, 22),
		Size:     128,
		Op:       Fill{Rule: EvenOdd},
		Outlines: 2,
	},
	{
		Name:     "circle_ring",
		Shape:    appendCircle(circle(64, 64, 50), 64, 64, 26),
		Size:     128,
		Op:       Fill{Rule: EvenOdd},
		Outlines: 2,
	},
	{
		Name:     "letter_o",
		Shape:    appendReversedCircle(ellipse(64, 64, 40, 54), 64, 64, 24),
		Size:     128,
		Op:       Fill{Rule: NonZero},
		Outlines: 2,
	},
	{
		Name:     "three_rings",
		Shape:    multipleRings(64, 64),
		Size:     128,
		Op:       Fill{Rule: EvenOdd},
		Outlines: 6,
	},
	{
		Name:     "glyph_a",
		Shape:    glyphLikeShape(),
		Size:     128,
		Op:       Fill{Rule: NonZero},
		Outlines: 2,
	},
}

// appendCircle adds a clockwise circle to p.
func appendCircle(p *path.Data, cx, cy, r float64) *path.Data {
	c := circle(cx, cy, r)
	p.Cmds = append(p.Cmds, c.Cmds...)
	p.Coords = append(p.Coords, c.Coords...)
	return p
}

// ringShape builds an outer square with an inner square cut out by the
// even-odd rule. Both squares have the same orientation.
func ringShape(cx, cy, outerSize, innerSize float64) *path.Data {
	p := rectangle(cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize)
	return p.
		MoveTo(pt(cx-innerSize, cy-innerSize)).
		LineTo(pt(cx+innerSize, cy-innerSize)).
		LineTo(pt(cx+innerSize, cy+innerSize)).
		LineTo(pt(cx-innerSize, cy+innerSize)).
		Close()
}

// multipleRings builds three square rings.
func multipleRings(cx, cy float64) *path.Data {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}

	p := &path.Data{}
	for _, r := range rings {
		p = p.
			MoveTo(pt(r.cx-r.outer, r.cy-r.outer)).
			LineTo(pt(r.cx+r.outer, r.cy-r.outer)).
			LineTo(pt(r.cx+r.outer, r.cy+r.outer)).
			LineTo(pt(r.cx-r.outer, r.cy+r.outer)).
			Close().
			MoveTo(pt(r.cx-r.inner, r.cy-r.inner)).
			LineTo(pt(r.cx+r.inner, r.cy-r.inner)).
			LineTo(pt(r.cx+r.inner, r.cy+r.inner)).
			LineTo(pt(r.cx-r.inner, r.cy+r.inner)).
			Close()
	}
	return p
}

// glyphLikeShape builds a shape resembling a lowercase "a": a round bowl
// with a counter, joined to a stem on the right.
func glyphLikeShape() *path.Data {
	const cx, cy, r = 56.0, 74.0, 34.0
	k := r * kappa

	// bowl, clockwise, with the stem merged into its right side
	p := (&path.Data{}).
		MoveTo(pt(cx, cy-r)).
		LineTo(pt(cx+r+14, cy-r)).
		LineTo(pt(cx+r+14, cy+r)).
		LineTo(pt(cx, cy+r)).
		CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)).
		Close()
	return appendReversedCircle(p, cx, cy, 16)
}
