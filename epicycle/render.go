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

package epicycle

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/epicycles/fourier"
	"seehuhn.de/go/epicycles/raster"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Style describes the appearance of rendered frames.
type Style struct {
	Background color.RGBA

	Circle      color.RGBA
	CircleWidth float64

	Radius      color.RGBA
	RadiusWidth float64

	Trail      color.RGBA
	TrailWidth float64

	Tip       color.RGBA
	TipRadius float64
}

// DefaultStyle returns pale blue circles and darker radii on white, with a
// black trail and a red tip.
func DefaultStyle() Style {
	return Style{
		Background:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Circle:      color.RGBA{R: 200, G: 200, B: 240, A: 255},
		CircleWidth: 1,
		Radius:      color.RGBA{R: 90, G: 90, B: 160, A: 255},
		RadiusWidth: 1,
		Trail:       color.RGBA{A: 255},
		TrailWidth:  2,
		Tip:         color.RGBA{R: 255, A: 255},
		TipRadius:   3,
	}
}

// Frame is one rendered animation step.
type Frame struct {
	Index int
	T     float64
	Image *image.RGBA

	// Trails holds, for every chain, the tip positions up to and including
	// this frame, in the coordinates of the epicycle sum.
	Trails [][]complex128
}

// Renderer draws the epicycle chains of one or more paths onto a square
// canvas. The origin of the sums is placed at the centre of the canvas and
// the imaginary axis points up.
type Renderer struct {
	Style Style

	size int

	sets [][]fourier.Component
	r    *raster.Rasterizer
}

// NewRenderer returns a renderer for the given component sets, one per
// path. The sets must not be modified while the renderer is in use.
func NewRenderer(sets [][]fourier.Component, size int, style Style) *Renderer {
	return &Renderer{
		Style: style,
		size:  size,
		sets:  sets,
		r:     raster.NewRasterizer(raster.ClipRect(image.Rect(0, 0, size, size))),
	}
}

// Times returns n equally spaced times covering one period, starting at 0
// and stopping short of 1.
func Times(n int) []float64 {
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = float64(i) / float64(n)
	}
	return ts
}

// Each renders n frames in time order and passes them to yield. It stops
// early if yield returns false. Every call starts with empty trails.
func (rd *Renderer) Each(n int, yield func(Frame) bool) {
	trails := make([]Trail, len(rd.sets))
	for i, t := range Times(n) {
		img := image.NewRGBA(image.Rect(0, 0, rd.size, rd.size))
		xdraw.Draw(img, img.Bounds(), image.NewUniform(rd.Style.Background), image.Point{}, xdraw.Src)

		views := make([][]complex128, len(rd.sets))
		for j, set := range rd.sets {
			c := Construct(set, t)
			trails[j].Append(c.Tip())
			rd.drawChain(img, c, &trails[j])
			views[j] = trails[j].Points()
		}

		if !yield(Frame{Index: i, T: t, Image: img, Trails: views}) {
			return
		}
	}
}

// Render returns all n frames.
func (rd *Renderer) Render(n int) []Frame {
	frames := make([]Frame, 0, n)
	rd.Each(n, func(f Frame) bool {
		frames = append(frames, f)
		return true
	})
	return frames
}

// toCanvas maps a point of the epicycle sum to pixel coordinates.
func (rd *Renderer) toCanvas(z complex128) vec.Vec2 {
	c := float64(rd.size / 2)
	return vec.Vec2{X: c + real(z), Y: c - imag(z)}
}

func (rd *Renderer) drawChain(img *image.RGBA, c Construction, tr *Trail) {
	st := &rd.Style
	r := rd.r

	var circles *path.Data
	for i, radius := range c.Radii {
		if radius > 0 {
			circles = raster.AppendCircle(circles, rd.toCanvas(c.Joints[i]), radius)
		}
	}
	if circles != nil {
		rd.setPen(st.CircleWidth, graphics.LineCapButt, graphics.LineJoinMiter)
		r.Stroke(circles, raster.Blend(img, st.Circle))
	}

	if len(c.Joints) > 1 {
		rd.setPen(st.RadiusWidth, graphics.LineCapButt, graphics.LineJoinMiter)
		r.Stroke(rd.polyline(c.Joints), raster.Blend(img, st.Radius))
	}

	if tr.Len() > 1 {
		rd.setPen(st.TrailWidth, graphics.LineCapRound, graphics.LineJoinRound)
		r.Stroke(rd.polyline(tr.Points()), raster.Blend(img, st.Trail))
	}

	tip := raster.AppendCircle(nil, rd.toCanvas(c.Tip()), st.TipRadius)
	r.FillNonZero(tip, raster.Blend(img, st.Tip))
}

func (rd *Renderer) setPen(width float64, capStyle graphics.LineCapStyle, join graphics.LineJoinStyle) {
	rd.r.Width = width
	rd.r.Cap = capStyle
	rd.r.Join = join
}

func (rd *Renderer) polyline(zs []complex128) *path.Data {
	pts := make([]vec.Vec2, len(zs))
	for i, z := range zs {
		pts[i] = rd.toCanvas(z)
	}
	return raster.AppendPolyline(nil, pts, false)
}
