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

var multiScenes = []Scene{
	{
		Name:     "two_discs",
		Shape:    appendCircle(circle(35, 64, 22), 93, 64, 22),
		Size:     128,
		Op:       Fill{Rule: NonZero},
		Outlines: 2,
	},
	{
		Name:     "two_triangles",
		Shape:    twoTriangles(36, 40, 92, 88, 44),
		Size:     128,
		Op:       Fill{Rule: NonZero},
		Outlines: 2,
	},
	{
		Name:     "dots",
		Shape:    dots(5, 16, 24, 64, 8),
		Size:     128,
		Op:       Fill{Rule: NonZero},
		Outlines: 5,
	},
	{
		Name:     "grid",
		Shape:    rectangleGrid(3, 4, 128, 128, 5),
		Size:     128,
		Op:       Fill{Rule: NonZero},
		Outlines: 12,
	},
	{
		Name:  "overlap",
		Shape: overlappingRectangles(16, 16, 80, 80, 48, 48, 112, 112),
		Size:  128,
		Op:    Fill{Rule: EvenOdd},
	},
}

// twoTriangles builds two upward pointing triangles with the given
// centres and size.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	h := size / 2
	p := triangle(cx1-h, cy1+h, cx1, cy1-h, cx1+h, cy1+h)
	return p.
		MoveTo(pt(cx2-h, cy2+h)).
		LineTo(pt(cx2, cy2-h)).
		LineTo(pt(cx2+h, cy2+h)).
		Close()
}

// dots builds a horizontal row of n discs.
func dots(n int, x0, dx, y, r float64) *path.Data {
	p := &path.Data{}
	for i := range n {
		p = appendCircle(p, x0+float64(i)*dx, y, r)
	}
	return p
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap

			p = p.
				MoveTo(pt(x1, y1)).
				LineTo(pt(x2, y1)).
				LineTo(pt(x2, y2)).
				LineTo(pt(x1, y2)).
				Close()
		}
	}
	return p
}

// overlappingRectangles builds two rectangles as subpaths of one path.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) *path.Data {
	return rectangle(x1a, y1a, x2a, y2a).
		MoveTo(pt(x1b, y1b)).
		LineTo(pt(x2b, y1b)).
		LineTo(pt(x2b, y2b)).
		LineTo(pt(x1b, y2b)).
		Close()
}
