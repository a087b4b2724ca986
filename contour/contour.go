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

// Package contour extracts closed boundary polygons from grayscale bitmaps.
//
// Pixels at or below a threshold are treated as ink. Borders of ink regions
// and of the holes inside them are traced with the border following
// algorithm of Suzuki and Abe (1985), so that letters like "O" or "B"
// produce one contour for the outline and one for each counter.
package contour

import (
	"cmp"
	"errors"
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

var (
	// ErrNoContour is returned when tracing finds no ink boundaries at all.
	ErrNoContour = errors.New("no contour found")

	// ErrAllTooSmall is returned when boundaries were found but every one
	// of them was rejected by the area filter.
	ErrAllTooSmall = errors.New("all contours too small")
)

// Default extraction parameters.
const (
	DefaultThreshold    = 220
	DefaultMinAreaRatio = 0.003
	DefaultMinArea      = 10
)

// Options control binarisation and noise filtering.
type Options struct {
	// Threshold is the largest gray value which counts as ink.
	Threshold uint8

	// MinAreaRatio is the minimal enclosed area of a contour, as a
	// fraction of the bitmap area.
	MinAreaRatio float64

	// MinArea is an absolute lower bound on the enclosed area, in square
	// pixels.
	MinArea float64
}

// DefaultOptions returns the parameters used when nothing else is
// configured.
func DefaultOptions() Options {
	return Options{
		Threshold:    DefaultThreshold,
		MinAreaRatio: DefaultMinAreaRatio,
		MinArea:      DefaultMinArea,
	}
}

// Contour is a closed polygon. The last point repeats the first one.
type Contour struct {
	Points []vec.Vec2

	// Area is the absolute enclosed area.
	Area float64

	// Centroid is the mean of Points.
	Centroid vec.Vec2

	// Hole is set for borders between an ink region and a hole inside it.
	Hole bool
}

// Extract traces all ink boundaries of img, including the borders of holes.
// Boundaries enclosing less than max(opt.MinArea, opt.MinAreaRatio*w*h)
// square pixels are dropped. The result is sorted by centroid, left to
// right and then top to bottom. Coordinates are relative to
// img.Bounds().Min with y growing downwards.
func Extract(img *image.Gray, opt Options) ([]Contour, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	g := newGrid(w, h)
	for y := range h {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for x, v := range row {
			if v <= opt.Threshold {
				g.set(y+1, x+1, 1)
			}
		}
	}

	borders := g.trace()
	if len(borders) == 0 {
		return nil, ErrNoContour
	}

	minArea := max(opt.MinArea, opt.MinAreaRatio*float64(w)*float64(h))
	var res []Contour
	for _, bd := range borders {
		c, ok := newContour(bd.points, bd.hole)
		if !ok || c.Area < minArea {
			continue
		}
		res = append(res, c)
	}
	if len(res) == 0 {
		return nil, ErrAllTooSmall
	}
	Sort(res)
	return res, nil
}

// FromPolygons turns caller supplied polygons into contours, closing and
// ordering them like traced ones. Polygons with fewer than three distinct
// points or without enclosed area are dropped.
func FromPolygons(polys [][]vec.Vec2) ([]Contour, error) {
	if len(polys) == 0 {
		return nil, ErrNoContour
	}
	var res []Contour
	for _, p := range polys {
		c, ok := newContour(p, signedArea(p) < 0)
		if !ok || c.Area == 0 {
			continue
		}
		res = append(res, c)
	}
	if len(res) == 0 {
		return nil, ErrAllTooSmall
	}
	Sort(res)
	return res, nil
}

// Sort orders contours by centroid x, then centroid y. The sort is stable.
func Sort(cc []Contour) {
	slices.SortStableFunc(cc, func(a, b Contour) int {
		if c := cmp.Compare(a.Centroid.X, b.Centroid.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Centroid.Y, b.Centroid.Y)
	})
}

// newContour copies pts into a closed contour. The boolean result is false
// if there are fewer than three distinct points.
func newContour(pts []vec.Vec2, hole bool) (Contour, bool) {
	if distinct(pts) < 3 {
		return Contour{}, false
	}

	closed := make([]vec.Vec2, len(pts), len(pts)+1)
	copy(closed, pts)
	if closed[0] != closed[len(closed)-1] {
		closed = append(closed, closed[0])
	}

	var sum vec.Vec2
	for _, p := range closed {
		sum = sum.Add(p)
	}
	return Contour{
		Points:   closed,
		Area:     math.Abs(signedArea(closed)),
		Centroid: sum.Mul(1 / float64(len(closed))),
		Hole:     hole,
	}, true
}

func distinct(pts []vec.Vec2) int {
	seen := make(map[vec.Vec2]struct{}, len(pts))
	for _, p := range pts {
		seen[p] = struct{}{}
		if len(seen) >= 3 {
			break
		}
	}
	return len(seen)
}

// signedArea uses the shoelace formula. The polygon is implicitly closed.
func signedArea(pts []vec.Vec2) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var a float64
	for i := range n {
		p, q := pts[i], pts[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
