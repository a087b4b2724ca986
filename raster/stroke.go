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
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders the outline of p using Width, Cap, Join and MiterLimit.
//
// The outline is built as a union of simple convex pieces: one quadrilateral
// per segment plus the join and cap shapes. All pieces are oriented the same
// way and filled together with the nonzero rule, so that overlaps are
// painted exactly once.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	r.flattenSubpaths(p)

	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]
	for i := range r.vertexOffsets {
		r.strokeSubpath(r.subpathVertices(i), r.subpathClosed[i])
	}

	r.fillStrokeOutlines(emit)
}

// subpathVertices returns the flattened vertices of subpath i.
func (r *Rasterizer) subpathVertices(i int) []vec.Vec2 {
	end := len(r.vertices)
	if i+1 < len(r.vertexOffsets) {
		end = r.vertexOffsets[i+1]
	}
	return r.vertices[r.vertexOffsets[i]:end]
}

// flattenSubpaths converts p into polylines. Curves are flattened, repeated
// points are dropped, and a closed subpath does not repeat its first vertex.
// Results are stored in r.vertices, r.vertexOffsets and r.subpathClosed.
func (r *Rasterizer) flattenSubpaths(p *path.Data) {
	r.vertices = r.vertices[:0]
	r.vertexOffsets = r.vertexOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]

	var current, start vec.Vec2
	inSubpath := false
	haveCurrent := false

	begin := func(pt vec.Vec2) {
		r.vertexOffsets = append(r.vertexOffsets, len(r.vertices))
		r.subpathClosed = append(r.subpathClosed, false)
		r.vertices = append(r.vertices, pt)
		start = pt
		inSubpath = true
	}
	lineTo := func(_, to vec.Vec2) {
		last := r.vertices[len(r.vertices)-1]
		if to.Sub(last).Length() > zeroLengthThreshold {
			r.vertices = append(r.vertices, to)
		}
	}
	// a drawing command after closepath starts a new subpath at the
	// previous start point
	ensure := func() bool {
		if !inSubpath && haveCurrent {
			begin(current)
		}
		return inSubpath
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			haveCurrent = true
			begin(current)
			k++

		case path.CmdLineTo:
			if ensure() {
				lineTo(current, p.Coords[k])
			}
			current = p.Coords[k]
			k++

		case path.CmdQuadTo:
			if ensure() {
				r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], lineTo)
			}
			current = p.Coords[k+1]
			k += 2

		case path.CmdCubeTo:
			if ensure() {
				r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], lineTo)
			}
			current = p.Coords[k+2]
			k += 3

		case path.CmdClose:
			if !inSubpath {
				continue
			}
			i := len(r.subpathClosed) - 1
			r.subpathClosed[i] = true
			// drop a final vertex which coincides with the start
			first := r.vertexOffsets[i]
			if len(r.vertices)-first > 1 && r.vertices[len(r.vertices)-1].Sub(start).Length() <= zeroLengthThreshold {
				r.vertices = r.vertices[:len(r.vertices)-1]
			}
			current = start
			inSubpath = false
		}
	}
}

// strokeSubpath appends the outline pieces of one polyline.
func (r *Rasterizer) strokeSubpath(pts []vec.Vec2, closed bool) {
	d := r.Width / 2
	n := len(pts)
	if n == 0 || d <= 0 {
		return
	}

	if n == 1 {
		// a dot has no direction: only round and square caps produce output
		switch r.Cap {
		case graphics.LineCapRound:
			r.addDisk(pts[0], d)
		case graphics.LineCapSquare:
			r.addSquareCap(pts[0], vec.Vec2{X: 1, Y: 0}, d)
			r.addSquareCap(pts[0], vec.Vec2{X: -1, Y: 0}, d)
		}
		return
	}

	numSegs := n - 1
	if closed && n > 2 {
		numSegs = n
	} else {
		closed = false
	}

	for i := range numSegs {
		r.addSegment(pts[i], pts[(i+1)%n], d)
	}

	// joins at interior vertices, and at the start vertex of a closed loop
	for i := 1; i < n; i++ {
		if i == n-1 && !closed {
			break
		}
		r.addJoin(pts[i-1], pts[i], pts[(i+1)%n], d)
	}
	if closed {
		r.addJoin(pts[n-1], pts[0], pts[1], d)
		return
	}

	r.addCap(pts[0], direction(pts[1], pts[0]), d)
	r.addCap(pts[n-1], direction(pts[n-2], pts[n-1]), d)
}

// direction returns the unit vector pointing from a to b.
func direction(a, b vec.Vec2) vec.Vec2 {
	v := b.Sub(a)
	return v.Mul(1 / v.Length())
}

// normal returns t rotated by 90° counterclockwise.
func normal(t vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -t.Y, Y: t.X}
}

// addSegment adds the rectangle of half-width d around the segment a→b.
func (r *Rasterizer) addSegment(a, b vec.Vec2, d float64) {
	nd := normal(direction(a, b)).Mul(d)
	start := len(r.stroke)
	r.stroke = append(r.stroke, a.Add(nd), b.Add(nd), b.Sub(nd), a.Sub(nd))
	r.finishPolygon(start)
}

// addJoin adds the corner piece at p, between the segments prev→p and
// p→next.
func (r *Rasterizer) addJoin(prev, p, next vec.Vec2, d float64) {
	t1 := direction(prev, p)
	t2 := direction(p, next)
	cross := t1.X*t2.Y - t1.Y*t2.X
	dot := t1.Dot(t2)
	if math.Abs(cross) < collinearityThreshold && dot > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addDisk(p, d)
		return
	}

	// the gap to fill is on the outside of the turn
	side := 1.0
	if cross > 0 {
		side = -1
	}
	n1 := normal(t1).Mul(side * d)
	n2 := normal(t2).Mul(side * d)

	start := len(r.stroke)
	r.stroke = append(r.stroke, p, p.Add(n1))
	if r.Join == graphics.LineJoinMiter && dot > cuspCosineThreshold {
		// 1/cos(φ/2), where φ is the angle between the two directions
		ratio := 1 / math.Sqrt((1+dot)/2)
		if ratio <= r.MiterLimit {
			bisector := n1.Add(n2)
			tip := p.Add(bisector.Mul(d * ratio / bisector.Length()))
			r.stroke = append(r.stroke, tip)
		}
	}
	r.stroke = append(r.stroke, p.Add(n2))
	r.finishPolygon(start)
}

// addCap adds the end piece at p, where dir points away from the line.
func (r *Rasterizer) addCap(p, dir vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisk(p, d)
	case graphics.LineCapSquare:
		r.addSquareCap(p, dir, d)
	}
}

// addSquareCap adds the d×2d rectangle extending from p in direction dir.
func (r *Rasterizer) addSquareCap(p, dir vec.Vec2, d float64) {
	nd := normal(dir).Mul(d)
	ext := dir.Mul(d)
	start := len(r.stroke)
	r.stroke = append(r.stroke, p.Add(nd), p.Add(nd).Add(ext), p.Sub(nd).Add(ext), p.Sub(nd))
	r.finishPolygon(start)
}

// addDisk adds a polygonal disk of radius d around center.
func (r *Rasterizer) addDisk(center vec.Vec2, d float64) {
	start := len(r.stroke)
	r.addArc(center, d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
	r.finishPolygon(start)
}

// addArc appends points of a circular arc to the stroke buffer.
// startDir is the unit vector from center to the start of the arc and sweep
// is the angle in radians (positive is counterclockwise).
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius, Y: 0}).Length(),
		r.transformLinear(vec.Vec2{X: 0, Y: radius}).Length())

	// A chord subtending the angle θ deviates r*(1 - cos(θ/2)) from the
	// circle; solve for the tolerance.
	angleStep := math.Pi / 4
	if devRadius > r.Flatness {
		angleStep = min(2*math.Acos(1-r.Flatness/devRadius), angleStep)
	}
	n := max(int(math.Ceil(math.Abs(sweep)/angleStep)), 4)

	dt := sweep / float64(n)
	first := 1
	if includeStart {
		first = 0
	}
	for i := first; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.stroke = append(r.stroke, center.Add(dir.Mul(radius)))
	}
}

// finishPolygon registers the polygon which starts at r.stroke[start],
// reversing it if needed so that all pieces have positive orientation.
// Polygons without area are discarded.
func (r *Rasterizer) finishPolygon(start int) {
	poly := r.stroke[start:]
	if len(poly) < 3 {
		r.stroke = r.stroke[:start]
		return
	}
	a := signedArea(poly)
	if math.Abs(a) <= zeroLengthThreshold {
		r.stroke = r.stroke[:start]
		return
	}
	if a < 0 {
		slices.Reverse(poly)
	}
	r.strokeOffsets = append(r.strokeOffsets, start)
}

// signedArea returns the shoelace area of a closed polygon.
func signedArea(poly []vec.Vec2) float64 {
	var sum float64
	prev := poly[len(poly)-1]
	for _, p := range poly {
		sum += prev.X*p.Y - p.X*prev.Y
		prev = p
	}
	return sum / 2
}

// fillStrokeOutlines fills all collected stroke polygons as one compound
// path with the nonzero rule.
func (r *Rasterizer) fillStrokeOutlines(emit EmitFunc) {
	if len(r.strokeOffsets) == 0 {
		return
	}

	r.beginEdges()
	for i, start := range r.strokeOffsets {
		end := len(r.stroke)
		if i+1 < len(r.strokeOffsets) {
			end = r.strokeOffsets[i+1]
		}
		poly := r.stroke[start:end]
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}

	xMin, xMax, yMin, yMax, ok := r.edgeBounds()
	if !ok {
		return
	}
	r.scan(xMin, xMax, yMin, yMax, fillNonZero, emit)
}
