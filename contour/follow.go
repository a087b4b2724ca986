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

package contour

import "seehuhn.de/go/geom/vec"

// neighbours lists the 8-neighbourhood as (di, dj) in clockwise order,
// starting east. Rows grow downwards.
var neighbours = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

func direction(di, dj int) int {
	for k, n := range neighbours {
		if n[0] == di && n[1] == dj {
			return k
		}
	}
	panic("not a neighbour")
}

// grid holds the binary image with a one pixel frame of background.
// Border following overwrites pixels with signed border numbers.
type grid struct {
	rows, cols int
	f          []int
}

func newGrid(w, h int) *grid {
	return &grid{
		rows: h + 2,
		cols: w + 2,
		f:    make([]int, (w+2)*(h+2)),
	}
}

func (g *grid) at(i, j int) int     { return g.f[i*g.cols+j] }
func (g *grid) set(i, j int, v int) { g.f[i*g.cols+j] = v }

type border struct {
	points []vec.Vec2
	hole   bool
}

// trace runs the raster scan of the border following algorithm and
// returns every border found, in scan order.
func (g *grid) trace() []border {
	var res []border
	nbd := 1
	for i := 1; i < g.rows-1; i++ {
		for j := 1; j < g.cols-1; j++ {
			v := g.at(i, j)
			switch {
			case v == 1 && g.at(i, j-1) == 0:
				nbd++
				res = append(res, border{points: g.follow(i, j, i, j-1, nbd)})
			case v >= 1 && g.at(i, j+1) == 0:
				nbd++
				res = append(res, border{points: g.follow(i, j, i, j+1, nbd), hole: true})
			}
		}
	}
	return res
}

// follow traces the border starting at (i, j), where (i2, j2) is the
// background neighbour which triggered the start.
func (g *grid) follow(i, j, i2, j2, nbd int) []vec.Vec2 {
	pt := func(i, j int) vec.Vec2 {
		return vec.Vec2{X: float64(j - 1), Y: float64(i - 1)}
	}

	// find the first ink neighbour, clockwise from (i2, j2)
	start := direction(i2-i, j2-j)
	i1, j1 := -1, -1
	for k := range 8 {
		n := neighbours[(start+k)%8]
		if g.at(i+n[0], j+n[1]) != 0 {
			i1, j1 = i+n[0], j+n[1]
			break
		}
	}
	if i1 < 0 {
		g.set(i, j, -nbd)
		return []vec.Vec2{pt(i, j)}
	}

	var pts []vec.Vec2
	i2, j2 = i1, j1
	i3, j3 := i, j
	for {
		pts = append(pts, pt(i3, j3))

		// counterclockwise from the element after (i2, j2)
		d := direction(i2-i3, j2-j3)
		eastZero := false
		var i4, j4 int
		for k := 1; k <= 8; k++ {
			dir := (d - k + 8) % 8
			n := neighbours[dir]
			if g.at(i3+n[0], j3+n[1]) != 0 {
				i4, j4 = i3+n[0], j3+n[1]
				break
			}
			if dir == 0 {
				eastZero = true
			}
		}

		if eastZero {
			g.set(i3, j3, -nbd)
		} else if g.at(i3, j3) == 1 {
			g.set(i3, j3, nbd)
		}

		if i4 == i && j4 == j && i3 == i1 && j3 == j1 {
			return pts
		}
		i2, j2 = i3, j3
		i3, j3 = i4, j4
	}
}
