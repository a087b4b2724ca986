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
	"seehuhn.de/go/pdf/graphics"
)

var strokeScenes = []Scene{
	{
		Name:     "spiral",
		Shape:    spiralPath(64, 64, 6, 52, 2.5),
		Size:     128,
		Op:       Stroke{Width: 5, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound},
		Outlines: 1,
	},
	{
		Name:     "zigzag",
		Shape:    zigzagPath(14, 64, 114, 28),
		Size:     128,
		Op:       Stroke{Width: 6, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 4},
		Outlines: 1,
	},
	{
		Name:     "hoop",
		Shape:    circle(64, 64, 44),
		Size:     128,
		Op:       Stroke{Width: 10, Cap: graphics.LineCapButt, Join: graphics.LineJoinRound},
		Outlines: 2,
	},
	{
		Name:     "corner_bevel",
		Shape:    corner(24, 100, 64, 24, 104, 100),
		Size:     128,
		Op:       Stroke{Width: 12, Cap: graphics.LineCapSquare, Join: graphics.LineJoinBevel},
		Outlines: 1,
	},
}

// spiralPath builds an open Archimedean spiral.
func spiralPath(cx, cy, rMin, rMax float64, turns float64) *path.Data {
	steps := max(int(turns*32), 8)

	totalAngle := turns * 2 * math.Pi
	rGrowth := (rMax - rMin) / totalAngle

	p := (&path.Data{}).MoveTo(pt(cx+rMin, cy))
	for i := 1; i <= steps; i++ {
		angle := float64(i) / float64(steps) * totalAngle
		r := rMin + rGrowth*angle
		p = p.LineTo(pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return p
}

// zigzagPath builds an open polyline with four teeth.
func zigzagPath(x1, cy, x2, amplitude float64) *path.Data {
	const teeth = 4
	dx := (x2 - x1) / teeth
	p := (&path.Data{}).MoveTo(pt(x1, cy+amplitude))
	for i := range teeth {
		x := x1 + float64(i)*dx
		p = p.
			LineTo(pt(x+dx/2, cy-amplitude)).
			LineTo(pt(x+dx, cy+amplitude))
	}
	return p
}

// corner builds an open path with a single corner.
func corner(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3))
}
