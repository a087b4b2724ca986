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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ring returns an annulus, drawn as two concentric circles.
func ring(size int) *path.Data {
	c := vec.Vec2{X: float64(size) / 2, Y: float64(size) / 2}
	p := AppendCircle(nil, c, float64(size)*0.45)
	return AppendCircle(p, c, float64(size)*0.30)
}

// BenchmarkRing fills a ring with the even-odd rule.
func BenchmarkRing(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewGray(image.Rect(0, 0, size, size))
			p := ring(size)
			emit := Ink(dst, 0)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillEvenOdd(p, emit)
			}
		})
	}
}

// BenchmarkVectorRing draws the same ring with x/image/vector, for
// comparison.
func BenchmarkVectorRing(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})
			c := float32(size) / 2

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				vectorCircle(r, c, c, float32(size)*0.45, false)
				vectorCircle(r, c, c, float32(size)*0.30, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// TestAgainstVector compares the coverage of a ring with the output of
// x/image/vector.
func TestAgainstVector(t *testing.T) {
	const size = 64
	clip := rect.Rect{URx: size, URy: size}

	r := NewRasterizer(clip)
	r.Flatness = 0.01
	g := newCoverageGrid(size, size)
	r.FillEvenOdd(ring(size), g.emit)

	vr := vector.NewRasterizer(size, size)
	c := float32(size) / 2
	vectorCircle(vr, c, c, size*0.45, false)
	vectorCircle(vr, c, c, size*0.30, true)
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	vr.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})

	var sumGot, sumWant float64
	bad := 0
	for y := range size {
		for x := range size {
			want := float64(dst.AlphaAt(x, y).A) / 255
			got := float64(g.at(x, y))
			sumGot += got
			sumWant += want
			if math.Abs(got-want) > 0.2 {
				bad++
			}
		}
	}
	if bad > 0 {
		t.Errorf("%d pixels differ from x/image/vector by more than 0.2", bad)
	}
	if math.Abs(sumGot-sumWant) > 0.01*sumWant {
		t.Errorf("total coverage %g, x/image/vector has %g", sumGot, sumWant)
	}
}

// vectorCircle adds a circle made of four cubic Bézier curves to r.
func vectorCircle(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(kappa)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	if clockwise {
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
