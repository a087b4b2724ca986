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

// Package svg reads the filled and stroked shapes of simple SVG drawings
// and renders them into grayscale bitmaps.
//
// The supported elements are path, rect, circle, ellipse, polygon,
// polyline and line, optionally nested in g elements. Presentation
// attributes and the style attribute may set fill, stroke, stroke-width,
// fill-rule and transform. Colours are reduced to gray levels. Text,
// gradients, clipping and markers are ignored.
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/epicycles/raster"
)

var (
	// ErrSyntax is returned for malformed attribute values.
	ErrSyntax = errors.New("svg: syntax error")

	// ErrNotSVG is returned when the document element is not an svg
	// element.
	ErrNotSVG = errors.New("svg: not an SVG document")

	// ErrNoSize is returned when the drawing has neither a viewBox nor a
	// width and height.
	ErrNoSize = errors.New("svg: drawing size unknown")
)

// Paint is the colour of a fill or stroke, reduced to a gray level.
type Paint struct {
	None bool
	Gray uint8
}

// Shape is one painted element, in viewBox coordinates.
type Shape struct {
	Path        *path.Data
	EvenOdd     bool
	Fill        Paint
	Stroke      Paint
	StrokeWidth float64
}

// Drawing is a parsed SVG document.
type Drawing struct {
	ViewBox rect.Rect
	Shapes  []Shape
}

// style holds the inherited presentation attributes of an element.
type style struct {
	fill    Paint
	stroke  Paint
	width   float64
	evenOdd bool
	m       matrix.Matrix
}

var skipped = map[string]bool{
	"defs": true, "clipPath": true, "mask": true, "symbol": true,
	"marker": true, "pattern": true, "linearGradient": true,
	"radialGradient": true, "style": true, "title": true, "desc": true,
	"metadata": true, "text": true, "image": true, "use": true,
}

// Parse reads an SVG document.
func Parse(r io.Reader) (*Drawing, error) {
	dec := xml.NewDecoder(r)
	d := &Drawing{}

	root := true
	stack := []style{{
		stroke: Paint{None: true},
		width:  1,
		m:      matrix.Identity,
	}}
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("svg: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root {
				if t.Name.Local != "svg" {
					return nil, ErrNotSVG
				}
				vb, err := viewBox(t.Attr)
				if err != nil {
					return nil, err
				}
				d.ViewBox = vb
				root = false
			}
			if skipped[t.Name.Local] {
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("svg: %w", err)
				}
				continue
			}

			st, err := inherit(stack[len(stack)-1], t.Attr)
			if err != nil {
				return nil, err
			}
			stack = append(stack, st)

			p, err := shapePath(t.Name.Local, attrMap(t.Attr), st.m)
			if err != nil {
				return nil, fmt.Errorf("svg: <%s>: %w", t.Name.Local, err)
			}
			if p != nil && len(p.Cmds) > 0 && !(st.fill.None && st.stroke.None) {
				d.Shapes = append(d.Shapes, Shape{
					Path:        p,
					EvenOdd:     st.evenOdd,
					Fill:        st.fill,
					Stroke:      st.stroke,
					StrokeWidth: st.width * math.Sqrt(math.Abs(st.m[0]*st.m[3]-st.m[1]*st.m[2])),
				})
			}

		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	if root {
		return nil, ErrNotSVG
	}
	return d, nil
}

// ParseBytes is a convenience wrapper around [Parse].
func ParseBytes(data []byte) (*Drawing, error) {
	return Parse(bytes.NewReader(data))
}

// Bitmap renders the drawing onto a white size x size canvas. The viewBox
// is scaled uniformly to fit and centred.
func (d *Drawing) Bitmap(size int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	w := d.ViewBox.URx - d.ViewBox.LLx
	h := d.ViewBox.URy - d.ViewBox.LLy
	if !(w > 0 && h > 0) {
		return img
	}
	s := min(float64(size)/w, float64(size)/h)
	tx := (float64(size)-s*w)/2 - s*d.ViewBox.LLx
	ty := (float64(size)-s*h)/2 - s*d.ViewBox.LLy

	r := raster.NewRasterizer(raster.ClipRect(img.Bounds()))
	for _, sh := range d.Shapes {
		r.Reset(raster.ClipRect(img.Bounds()))
		r.CTM = matrix.Scale(s, s).Translate(tx, ty)
		if !sh.Fill.None {
			if sh.EvenOdd {
				r.FillEvenOdd(sh.Path, raster.Ink(img, sh.Fill.Gray))
			} else {
				r.FillNonZero(sh.Path, raster.Ink(img, sh.Fill.Gray))
			}
		}
		if !sh.Stroke.None && sh.StrokeWidth > 0 {
			r.Width = sh.StrokeWidth
			r.Cap = graphics.LineCapButt
			r.Join = graphics.LineJoinMiter
			r.Stroke(sh.Path, raster.Ink(img, sh.Stroke.Gray))
		}
	}
	return img
}

func attrMap(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name.Local] = a.Value
	}
	return m
}

func viewBox(attrs []xml.Attr) (rect.Rect, error) {
	a := attrMap(attrs)
	if s, ok := a["viewBox"]; ok {
		v, err := numbers(s)
		if err != nil {
			return rect.Rect{}, err
		}
		if len(v) == 4 && v[2] > 0 && v[3] > 0 {
			return rect.Rect{LLx: v[0], LLy: v[1], URx: v[0] + v[2], URy: v[1] + v[3]}, nil
		}
		return rect.Rect{}, fmt.Errorf("%w: viewBox %q", ErrSyntax, s)
	}
	w, okW := length(a["width"])
	h, okH := length(a["height"])
	if !okW || !okH {
		return rect.Rect{}, ErrNoSize
	}
	return rect.Rect{URx: w, URy: h}, nil
}

// length parses a positive length with an optional absolute unit suffix.
// Percentages are not supported.
func length(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	for _, unit := range []string{"px", "pt", "mm", "cm", "in"} {
		s = strings.TrimSuffix(s, unit)
	}
	x, err := strconv.ParseFloat(s, 64)
	return x, err == nil && x > 0
}

// inherit applies the presentation attributes and the style attribute of an
// element to the style of its parent.
func inherit(parent style, attrs []xml.Attr) (style, error) {
	st := parent
	props := map[string]string{}
	var css string
	for _, a := range attrs {
		switch a.Name.Local {
		case "style":
			css = a.Value
		case "transform":
			m, err := parseTransform(a.Value)
			if err != nil {
				return st, err
			}
			st.m = m.Mul(parent.m)
		default:
			props[a.Name.Local] = a.Value
		}
	}
	for _, decl := range strings.Split(css, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if ok {
			props[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}

	if v, ok := props["fill"]; ok {
		st.fill = parsePaint(v)
	}
	if v, ok := props["stroke"]; ok {
		st.stroke = parsePaint(v)
	}
	if v, ok := props["stroke-width"]; ok {
		if w, ok := length(v); ok {
			st.width = w
		}
	}
	if v, ok := props["fill-rule"]; ok {
		st.evenOdd = strings.TrimSpace(v) == "evenodd"
	}
	return st, nil
}

// parseTransform parses an SVG transform list.
func parseTransform(s string) (matrix.Matrix, error) {
	res := matrix.Identity
	rest := s
	for {
		rest = strings.TrimLeft(rest, " \t\r\n,")
		if rest == "" {
			return res, nil
		}
		open := strings.IndexByte(rest, '(')
		end := strings.IndexByte(rest, ')')
		if open < 0 || end < open {
			return res, fmt.Errorf("%w: transform %q", ErrSyntax, s)
		}
		name := strings.TrimSpace(rest[:open])
		args, err := numbers(rest[open+1 : end])
		if err != nil {
			return res, err
		}
		rest = rest[end+1:]

		var m matrix.Matrix
		n := len(args)
		switch {
		case name == "matrix" && n == 6:
			m = matrix.Matrix{args[0], args[1], args[2], args[3], args[4], args[5]}
		case name == "translate" && (n == 1 || n == 2):
			ty := 0.0
			if n == 2 {
				ty = args[1]
			}
			m = matrix.Translate(args[0], ty)
		case name == "scale" && (n == 1 || n == 2):
			sy := args[0]
			if n == 2 {
				sy = args[1]
			}
			m = matrix.Scale(args[0], sy)
		case name == "rotate" && (n == 1 || n == 3):
			m = matrix.RotateDeg(args[0])
			if n == 3 {
				cx, cy := args[1], args[2]
				m = matrix.Translate(-cx, -cy).Mul(m).Translate(cx, cy)
			}
		case name == "skewX" && n == 1:
			m = matrix.Matrix{1, 0, math.Tan(args[0] * math.Pi / 180), 1, 0, 0}
		case name == "skewY" && n == 1:
			m = matrix.Matrix{1, math.Tan(args[0] * math.Pi / 180), 0, 1, 0, 0}
		default:
			return res, fmt.Errorf("%w: transform %s with %d arguments", ErrSyntax, name, n)
		}
		res = m.Mul(res)
	}
}

var namedGray = map[string]uint8{
	"black": 0, "white": 255, "gray": 128, "grey": 128, "silver": 192,
	"red": 76, "green": 75, "blue": 29, "yellow": 226, "lime": 150,
	"navy": 15, "maroon": 38, "purple": 52, "orange": 173,
}

// parsePaint converts a colour to a gray level using the Rec. 601 luma
// weights. Unknown paints, such as gradient references, become black.
func parsePaint(s string) Paint {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "none" || s == "transparent":
		return Paint{None: true}
	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil && len(hex) == 6 {
			return Paint{Gray: luma(float64(v>>16), float64(v>>8&0xff), float64(v&0xff))}
		}
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		v, err := numbers(strings.TrimSuffix(strings.TrimPrefix(s, "rgb("), ")"))
		if err == nil && len(v) == 3 {
			return Paint{Gray: luma(v[0], v[1], v[2])}
		}
	}
	if g, ok := namedGray[s]; ok {
		return Paint{Gray: g}
	}
	return Paint{}
}

func luma(r, g, b float64) uint8 {
	y := 0.299*r + 0.587*g + 0.114*b
	return uint8(max(0, min(255, math.Round(y))))
}

const kappa = 0.5522847498307936

// shapePath returns the outline of a basic shape element, or nil for
// elements which draw nothing.
func shapePath(name string, a map[string]string, m matrix.Matrix) (*path.Data, error) {
	num := func(key string) (float64, error) {
		s, ok := a[key]
		if !ok {
			return 0, nil
		}
		x, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q", ErrSyntax, key, s)
		}
		return x, nil
	}
	nums := func(keys ...string) ([]float64, error) {
		res := make([]float64, len(keys))
		for i, k := range keys {
			x, err := num(k)
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return res, nil
	}

	b := &builder{m: m, p: &path.Data{}}
	switch name {
	case "path":
		return parsePathData(a["d"], m)

	case "rect":
		v, err := nums("x", "y", "width", "height")
		if err != nil || v[2] <= 0 || v[3] <= 0 {
			return nil, err
		}
		x, y, w, h := v[0], v[1], v[2], v[3]
		b.moveTo(vec.Vec2{X: x, Y: y})
		b.lineTo(vec.Vec2{X: x + w, Y: y})
		b.lineTo(vec.Vec2{X: x + w, Y: y + h})
		b.lineTo(vec.Vec2{X: x, Y: y + h})
		b.close()

	case "circle", "ellipse":
		var v []float64
		var err error
		if name == "circle" {
			v, err = nums("cx", "cy", "r", "r")
		} else {
			v, err = nums("cx", "cy", "rx", "ry")
		}
		if err != nil || v[2] <= 0 || v[3] <= 0 {
			return nil, err
		}
		cx, cy, rx, ry := v[0], v[1], v[2], v[3]
		kx, ky := kappa*rx, kappa*ry
		pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: cx + x, Y: cy + y} }
		b.moveTo(pt(rx, 0))
		b.cubeTo(pt(rx, ky), pt(kx, ry), pt(0, ry))
		b.cubeTo(pt(-kx, ry), pt(-rx, ky), pt(-rx, 0))
		b.cubeTo(pt(-rx, -ky), pt(-kx, -ry), pt(0, -ry))
		b.cubeTo(pt(kx, -ry), pt(rx, -ky), pt(rx, 0))
		b.close()

	case "polygon", "polyline":
		v, err := numbers(a["points"])
		if err != nil {
			return nil, err
		}
		if len(v) < 4 || len(v)%2 != 0 {
			return nil, nil
		}
		b.moveTo(vec.Vec2{X: v[0], Y: v[1]})
		for i := 2; i < len(v); i += 2 {
			b.lineTo(vec.Vec2{X: v[i], Y: v[i+1]})
		}
		if name == "polygon" {
			b.close()
		}

	case "line":
		v, err := nums("x1", "y1", "x2", "y2")
		if err != nil {
			return nil, err
		}
		b.moveTo(vec.Vec2{X: v[0], Y: v[1]})
		b.lineTo(vec.Vec2{X: v[2], Y: v[3]})

	default:
		return nil, nil
	}
	return b.p, nil
}
