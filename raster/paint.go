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
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ClipRect returns the device-space clip rectangle covering b.
func ClipRect(b image.Rectangle) rect.Rect {
	return rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
}

// Blend returns an EmitFunc which paints c onto dst, using the coverage
// values as additional opacity. The Rasterizer's clip rectangle must lie
// inside dst.Bounds().
func Blend(dst *image.RGBA, c color.Color) EmitFunc {
	sr, sg, sb, sa := c.RGBA() // premultiplied, 16 bit
	return func(y, xMin int, coverage []float32) {
		row := dst.Pix[(y-dst.Rect.Min.Y)*dst.Stride:]
		for i, cov := range coverage {
			k := 4 * (xMin + i - dst.Rect.Min.X)
			a := float64(cov) * float64(sa) / 0xffff
			px := row[k : k+4 : k+4]
			px[0] = mix(px[0], float64(sr)*float64(cov)/0x101, a)
			px[1] = mix(px[1], float64(sg)*float64(cov)/0x101, a)
			px[2] = mix(px[2], float64(sb)*float64(cov)/0x101, a)
			px[3] = mix(px[3], a*255, a)
		}
	}
}

// mix composites a premultiplied source value over dst, where a is the
// source opacity.
func mix(dst uint8, src, a float64) uint8 {
	v := src + float64(dst)*(1-a)
	return uint8(max(0, min(255, math.Round(v))))
}

// Ink returns an EmitFunc which moves the pixels of dst towards level, in
// proportion to the coverage.
func Ink(dst *image.Gray, level uint8) EmitFunc {
	return func(y, xMin int, coverage []float32) {
		row := dst.Pix[(y-dst.Rect.Min.Y)*dst.Stride:]
		for i, cov := range coverage {
			k := xMin + i - dst.Rect.Min.X
			v := float64(level)*float64(cov) + float64(row[k])*(1-float64(cov))
			row[k] = uint8(max(0, min(255, math.Round(v))))
		}
	}
}

// kappa places the control points of a cubic Bézier which approximates a
// quarter circle.
const kappa = 0.5522847498307936

// AppendCircle adds a closed circle, made of four cubic Bézier curves,
// to p and returns the extended path.
func AppendCircle(p *path.Data, center vec.Vec2, radius float64) *path.Data {
	if p == nil {
		p = &path.Data{}
	}
	k := kappa * radius
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: center.X + x, Y: center.Y + y} }

	return p.MoveTo(pt(radius, 0)).
		CubeTo(pt(radius, k), pt(k, radius), pt(0, radius)).
		CubeTo(pt(-k, radius), pt(-radius, k), pt(-radius, 0)).
		CubeTo(pt(-radius, -k), pt(-k, -radius), pt(0, -radius)).
		CubeTo(pt(k, -radius), pt(radius, -k), pt(radius, 0)).
		Close()
}

// AppendPolyline adds the points as one subpath to p and returns the
// extended path. The subpath is closed if closed is true.
func AppendPolyline(p *path.Data, pts []vec.Vec2, closed bool) *path.Data {
	if p == nil {
		p = &path.Data{}
	}
	if len(pts) == 0 {
		return p
	}
	p = p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	if closed {
		p = p.Close()
	}
	return p
}
