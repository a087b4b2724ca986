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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

var transformScenes = []Scene{
	{
		Name:     "rotate_square",
		Shape:    rectangle(-32, -32, 32, 32),
		Size:     128,
		Op:       Fill{Rule: NonZero},
		CTM:      matrix.RotateDeg(30).Translate(64, 64),
		Outlines: 1,
	},
	{
		Name:     "scale_star",
		Shape:    fivePointStar(0, 0, 10),
		Size:     128,
		Op:       Fill{Rule: NonZero},
		CTM:      matrix.Scale(5, 5).Translate(64, 68),
		Outlines: 1,
	},
	{
		Name:     "shear_ellipse",
		Shape:    ellipse(0, 0, 36, 22),
		Size:     128,
		Op:       Fill{Rule: NonZero},
		CTM:      matrix.Matrix{1, 0, 0.6, 1, 64, 64},
		Outlines: 1,
	},
	{
		Name:     "scale_hoop",
		Shape:    circle(0, 0, 8),
		Size:     128,
		Op:       Stroke{Width: 2, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter},
		CTM:      matrix.Scale(5, 5).Translate(64, 64),
		Outlines: 2,
	},
}
