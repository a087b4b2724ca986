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

// Package scenes provides named input shapes for the epicycle pipeline.
//
// Each scene is a path together with the operation which turns it into
// ink: a fill with a given winding rule or a stroke. Scenes can be
// rendered into a bitmap for contour tracing, or flattened into polygons
// for direct use.
package scenes

import (
	"image"

	"seehuhn.de/go/epicycles/raster"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Scene is a single named input shape.
type Scene struct {
	Name  string        // lowercase a-z and _ only
	Shape *path.Data    // the geometry to draw
	Size  int           // width and height of the bitmap in pixels
	Op    Operation     // fill or stroke
	CTM   matrix.Matrix // zero value means no transform

	// Outlines is the number of contours tracing must find in the bitmap,
	// or 0 if this is not checked.
	Outlines int
}

// Operation is the drawing operation applied to the shape.
type Operation interface {
	isOperation()
}

// FillRule specifies the rule for determining interior points.
type FillRule int

// These are the supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

// Fill specifies a fill operation.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
}

func (Stroke) isOperation() {}

// All contains all scenes, grouped by category.
var All = map[string][]Scene{
	"fill":      fillScenes,
	"curve":     curveScenes,
	"holes":     holeScenes,
	"multi":     multiScenes,
	"stroke":    strokeScenes,
	"transform": transformScenes,
}

// Find returns the scene with the given name, which may be qualified by
// its category as "category/name".
func Find(name string) (Scene, bool) {
	for category, list := range All {
		for _, s := range list {
			if s.Name == name || category+"/"+s.Name == name {
				return s, true
			}
		}
	}
	return Scene{}, false
}

func (s *Scene) ctm() matrix.Matrix {
	if s.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return s.CTM
}

// Bitmap draws the scene in black on a white background.
func (s *Scene) Bitmap() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, s.Size, s.Size))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	r := raster.NewRasterizer(raster.ClipRect(img.Bounds()))
	r.CTM = s.ctm()
	emit := raster.Ink(img, 0)
	switch op := s.Op.(type) {
	case Fill:
		if op.Rule == EvenOdd {
			r.FillEvenOdd(s.Shape, emit)
		} else {
			r.FillNonZero(s.Shape, emit)
		}
	case Stroke:
		r.Width = op.Width
		r.Cap = op.Cap
		r.Join = op.Join
		if op.MiterLimit > 0 {
			r.MiterLimit = op.MiterLimit
		}
		r.Stroke(s.Shape, emit)
	}
	return img
}

// curveSteps is the number of line segments used for each Bézier curve
// when flattening.
const curveSteps = 12

// Polygons returns the subpaths of the shape as polygons in device
// coordinates, with curves replaced by line segments.
func (s *Scene) Polygons() [][]vec.Vec2 {
	m := s.ctm()
	apply := func(v vec.Vec2) vec.Vec2 {
		return vec.Vec2{
			X: m[0]*v.X + m[2]*v.Y + m[4],
			Y: m[1]*v.X + m[3]*v.Y + m[5],
		}
	}

	var res [][]vec.Vec2
	var cur []vec.Vec2
	var start vec.Vec2
	flush := func() {
		if len(cur) > 0 {
			res = append(res, cur)
			cur = nil
		}
	}

	coords := s.Shape.Coords
	for _, cmd := range s.Shape.Cmds {
		if cmd != path.CmdMoveTo && cmd != path.CmdClose && len(cur) == 0 {
			// drawing continues from the start of the closed subpath
			cur = append(cur, start)
		}
		switch cmd {
		case path.CmdMoveTo:
			flush()
			start = apply(coords[0])
			cur = append(cur, start)
			coords = coords[1:]
		case path.CmdLineTo:
			cur = append(cur, apply(coords[0]))
			coords = coords[1:]
		case path.CmdQuadTo:
			p0 := cur[len(cur)-1]
			p1, p2 := apply(coords[0]), apply(coords[1])
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				omt := 1 - t
				cur = append(cur, p0.Mul(omt*omt).Add(p1.Mul(2*omt*t)).Add(p2.Mul(t*t)))
			}
			coords = coords[2:]
		case path.CmdCubeTo:
			p0 := cur[len(cur)-1]
			p1, p2, p3 := apply(coords[0]), apply(coords[1]), apply(coords[2])
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				omt := 1 - t
				cur = append(cur, p0.Mul(omt*omt*omt).Add(p1.Mul(3*omt*omt*t)).
					Add(p2.Mul(3*omt*t*t)).Add(p3.Mul(t*t*t)))
			}
			coords = coords[3:]
		case path.CmdClose:
			flush()
		}
	}
	flush()
	return res
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
