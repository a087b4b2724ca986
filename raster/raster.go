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

// Package raster converts vector paths into anti-aliased pixel coverage.
//
// Coverage is computed exactly from the signed area of the path inside each
// pixel, so edges are smooth without supersampling. Results are delivered
// one scanline at a time through a callback; [Blend] and [Ink] provide
// callbacks which composite the coverage onto RGBA and grayscale images.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline. The slice holds one value
// in [0, 1] per pixel, starting at column xMin. It is only valid for the
// duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer computes pixel coverage for filled and stroked paths.
// Internal buffers grow as needed and are reused between calls, so a single
// Rasterizer should be kept for all shapes drawn onto one canvas.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in device coordinates.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it. Must be positive.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap selects the shape of open stroke ends.
	Cap graphics.LineCapStyle

	// Join selects the shape of stroke corners.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to Width.
	// Must be at least 1.
	MiterLimit float64

	// smallPathThreshold is the bounding box area (in pixels) below which
	// the 2-D accumulation buffers are used instead of the active edge list.
	smallPathThreshold int

	cover       []float32 // signed vertical extent per pixel; reused as output
	area        []float32 // area to the right of the edge within the pixel
	edges       []edge
	activeIdx   []int
	rowHasEdges []bool

	// stroke outline polygons, stored contiguously
	stroke        []vec.Vec2
	strokeOffsets []int

	// flattened stroke subpaths, stored contiguously
	vertices      []vec.Vec2
	vertexOffsets []int
	subpathClosed []bool

	edgeBBoxFirst bool
	edgeDevXMin   float64
	edgeDevXMax   float64
	edgeDevYMin   float64
	edgeDevYMax   float64
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, with an
// identity CTM and a solid one unit wide stroke.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1.0,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,

		smallPathThreshold: smallPathThreshold,
	}
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1.0
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
}

// transformLinear applies the 2×2 part of the CTM, ignoring translation.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments, which are passed to emit in order.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4 is the maximal deviation from the chord
	e := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))

	n := 1
	if errDev := e.Length(); errDev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, ..., p3 by line
// segments, using Wang's formula for the number of pieces.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * r.Flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// FillNonZero fills the path using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.fill(p, fillNonZero, emit)
}

// FillEvenOdd fills the path using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.fill(p, fillEvenOdd, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (r *Rasterizer) fill(p *path.Data, rule fillRule, emit EmitFunc) {
	r.beginEdges()
	r.collectPathEdges(p)
	xMin, xMax, yMin, yMax, ok := r.edgeBounds()
	if !ok {
		return
	}
	r.scan(xMin, xMax, yMin, yMax, rule, emit)
}

// scan chooses the accumulation strategy from the size of the bounding box.
func (r *Rasterizer) scan(xMin, xMax, yMin, yMax int, rule fillRule, emit EmitFunc) {
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmallPath(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillLargePath(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// collectPathEdges walks the path and appends its edges, in device space,
// to the edge list. Open subpaths are closed implicitly.
func (r *Rasterizer) collectPathEdges(p *path.Data) {
	var current, start vec.Vec2
	open := false

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			open = true
			k++

		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++

		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			k += 2

		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			k += 3

		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		r.addEdge(current, start)
	}
}

func (r *Rasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true
}

// edgeBounds returns the bounding box of the collected edges, in integer
// device coordinates and clamped to the clip rectangle.
func (r *Rasterizer) edgeBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.edgeDevXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.edgeDevXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.edgeDevYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.edgeDevYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms the segment p0→p1 to device space and records it.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	dx0 := r.CTM[0]*p0.X + r.CTM[2]*p0.Y + r.CTM[4]
	dy0 := r.CTM[1]*p0.X + r.CTM[3]*p0.Y + r.CTM[5]
	dx1 := r.CTM[0]*p1.X + r.CTM[2]*p1.Y + r.CTM[4]
	dy1 := r.CTM[1]*p1.X + r.CTM[3]*p1.Y + r.CTM[5]

	// horizontal edges do not contribute coverage
	dy := dy1 - dy0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: dx0, y0: dy0,
		x1: dx1, y1: dy1,
		dxdy: (dx1 - dx0) / dy,
	})

	if r.edgeBBoxFirst {
		r.edgeDevXMin = min(dx0, dx1)
		r.edgeDevXMax = max(dx0, dx1)
		r.edgeDevYMin = min(dy0, dy1)
		r.edgeDevYMax = max(dy0, dy1)
		r.edgeBBoxFirst = false
		return
	}
	r.edgeDevXMin = min(r.edgeDevXMin, dx0, dx1)
	r.edgeDevXMax = max(r.edgeDevXMax, dx0, dx1)
	r.edgeDevYMin = min(r.edgeDevYMin, dy0, dy1)
	r.edgeDevYMax = max(r.edgeDevYMax, dy0, dy1)
}

// Each edge crossing a pixel contributes
//
//	cover = sign * dy
//	area  = cover * (1 - xFrac)
//
// where sign is +1 for downward edges and xFrac is the mean horizontal
// position of the edge inside the pixel. Walking a scanline from the left,
// the signed coverage of pixel i is accumulated(cover[0:i]) + area[i].

// accumulateEdge adds the contribution of e within scanline y to the
// buffers, which are indexed by x - bboxXMin. Edges left of the bounding
// box are folded into the first pixel.
func (r *Rasterizer) accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xLeft := e.x0 + e.dxdy*(yTop-e.y0)
	xRight := e.x0 + e.dxdy*(yBot-e.y0)
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}
	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))

	if pixRight < bboxXMin {
		v := sign * float32(yBot-yTop)
		cover[0] += v
		area[0] += v
		return
	}
	if pixLeft >= bboxXMax {
		return
	}

	if pixLeft == pixRight {
		r.accumulateSpan(e, yTop, yBot, sign, pixLeft, cover, area, bboxXMin, bboxXMax)
		return
	}

	// the edge crosses several pixel columns: split at column boundaries
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		segTop := max(min(ya, yb), yTop)
		segBot := min(max(ya, yb), yBot)
		if segBot <= segTop {
			continue
		}
		r.accumulateSpan(e, segTop, segBot, sign, pix, cover, area, bboxXMin, bboxXMax)
	}
}

// accumulateSpan adds the part of e between yTop and yBot, which lies
// inside pixel column pix.
func (r *Rasterizer) accumulateSpan(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bboxXMin, bboxXMax int) {
	v := sign * float32(yBot-yTop)

	if pix < bboxXMin {
		cover[0] += v
		area[0] += v
		return
	}
	if pix >= bboxXMax {
		return
	}

	xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
	xFrac := xMid - float64(pix)

	idx := pix - bboxXMin
	cover[idx] += v
	area[idx] += v * float32(1-xFrac)
}

// integrateNonZero turns accumulated cover/area values into coverage,
// in place, using the nonzero winding rule.
func integrateNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		cover[i] = min(abs32(raw), 1)
	}
}

// integrateEvenOdd turns accumulated cover/area values into coverage,
// in place, using the even-odd rule.
func integrateEvenOdd(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := abs32(accum + area[i])
		accum += cover[i]
		mod := raw - 2*float32(int(raw/2))
		cover[i] = 1 - abs32(1-mod)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the non-zero part of coverage and its offset, or nil if
// all values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

func (r *Rasterizer) integrate(rule fillRule, cover, area []float32) {
	if rule == fillNonZero {
		integrateNonZero(cover, area)
	} else {
		integrateEvenOdd(cover, area)
	}
}

// fillSmallPath accumulates all edges into a 2-D buffer covering the
// bounding box, then integrates row by row.
func (r *Rasterizer) fillSmallPath(xMin, xMax, yMin, yMax int, rule fillRule, emit EmitFunc) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		top := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		bot := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := top; y < bot; y++ {
			row := y - yMin
			off := row * width
			r.accumulateEdge(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		r.integrate(rule, coverage, r.area[off:off+width])
		if trimmed, lo := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+lo, trimmed)
		}
	}
}

// fillLargePath processes one scanline at a time, keeping a list of the
// edges which intersect the current scanline.
func (r *Rasterizer) fillLargePath(xMin, xMax, yMin, yMax int, rule fillRule, emit EmitFunc) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yf+1 {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				// finished: swap-remove
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}
			r.accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		r.integrate(rule, r.cover, r.area)
		if trimmed, lo := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+lo, trimmed)
		}
	}
}

// Default values for rasterizer parameters.
const (
	// defaultFlatness of a quarter pixel is below the threshold of visual
	// perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF/PostScript.
	defaultMiterLimit = 10.0
)

// Numerical tolerances.
const (
	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the largest bounding box area (in pixels)
	// handled with 2-D buffers.
	smallPathThreshold = 65536

	// zeroLengthThreshold is the minimal length of a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold detects nearly collinear segments, which need
	// no join.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects paths doubling back on themselves.
	// cos(179.43°) ≈ -0.9999
	cuspCosineThreshold = -0.9999
)
