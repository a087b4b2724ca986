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

package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/epicycles/internal/glyph"
	"seehuhn.de/go/epicycles/internal/pathfile"
	"seehuhn.de/go/epicycles/internal/svg"
	"seehuhn.de/go/epicycles/scenes"
	"seehuhn.de/go/geom/vec"
)

var errInput = errors.New("exactly one of -text, -in, -svg, -paths and -scene must be given")

// input is a shape to be decomposed, either as a bitmap or as polygons.
type input struct {
	name  string
	img   *image.Gray
	polys [][]vec.Vec2
}

func openInput(opt *options, size int) (*input, error) {
	given := 0
	for _, s := range []string{opt.text, opt.in, opt.svg, opt.paths, opt.scene} {
		if s != "" {
			given++
		}
	}
	if given != 1 {
		return nil, errInput
	}
	if opt.font != "" && opt.text == "" {
		return nil, errors.New("-font requires -text")
	}

	switch {
	case opt.text != "":
		var img *image.Gray
		if opt.font != "" {
			data, err := os.ReadFile(opt.font)
			if err != nil {
				return nil, err
			}
			img, err = glyph.RenderFont(data, opt.text, size)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opt.font, err)
			}
		} else {
			var err error
			img, err = glyph.Render(opt.text, size)
			if err != nil {
				return nil, err
			}
		}
		return &input{name: opt.text, img: img}, nil

	case opt.in != "":
		fd, err := os.Open(opt.in)
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		src, _, err := image.Decode(fd)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opt.in, err)
		}
		return &input{name: opt.in, img: fitGray(src, size)}, nil

	case opt.svg != "":
		fd, err := os.Open(opt.svg)
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		d, err := svg.Parse(fd)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opt.svg, err)
		}
		return &input{name: opt.svg, img: d.Bitmap(size)}, nil

	case opt.paths != "":
		fd, err := os.Open(opt.paths)
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		f, err := pathfile.Decode(fd)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opt.paths, err)
		}
		name := f.Name
		if name == "" {
			name = opt.paths
		}
		return &input{name: name, polys: f.Paths}, nil

	default:
		s, ok := scenes.Find(opt.scene)
		if !ok {
			return nil, fmt.Errorf("unknown scene %q", opt.scene)
		}
		return &input{name: s.Name, polys: s.Polygons()}, nil
	}
}

// fitGray scales src to fit into a white size x size square, keeping the
// aspect ratio, and converts the result to grayscale. Transparent areas
// become white.
func fitGray(src image.Image, size int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, size, size))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)

	sb := src.Bounds()
	if sb.Empty() {
		return dst
	}
	w, h := size, size
	if sb.Dx() > sb.Dy() {
		h = max(size*sb.Dy()/sb.Dx(), 1)
	} else {
		w = max(size*sb.Dx()/sb.Dy(), 1)
	}
	x0 := (size - w) / 2
	y0 := (size - h) / 2

	// Compose onto white in RGBA first, since Gray has no alpha.
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(tmp, tmp.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	xdraw.CatmullRom.Scale(tmp, tmp.Bounds(), src, sb, xdraw.Over, nil)
	xdraw.Draw(dst, image.Rect(x0, y0, x0+w, y0+h), tmp, image.Point{}, xdraw.Src)
	return dst
}
