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

// Package pathfile reads and writes sets of closed polygons as JSON.
//
// A file has the form
//
//	{"name": "square", "width": 64, "height": 64, "paths": [[[8, 8], [56, 8], [56, 56], [8, 56]]]}
//
// where each path is a list of [x, y] points in image coordinates, with y
// growing downwards. The name and the canvas dimensions are optional.
package pathfile

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"

	"seehuhn.de/go/geom/vec"
)

//go:embed schema.json
var schema []byte

// ErrInvalid is returned when a document does not conform to the schema.
var ErrInvalid = errors.New("pathfile: invalid document")

// File is the decoded form of a point set document.
type File struct {
	Name   string
	Width  int
	Height int
	Paths  [][]vec.Vec2
}

type jsonFile struct {
	Name   string         `json:"name,omitempty"`
	Width  int            `json:"width,omitempty"`
	Height int            `json:"height,omitempty"`
	Paths  [][][2]float64 `json:"paths"`
}

// Decode reads and validates a point set document.
func Decode(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("pathfile: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
	}

	var jf jsonFile
	if err := json.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("pathfile: %w", err)
	}

	f := &File{
		Name:   jf.Name,
		Width:  jf.Width,
		Height: jf.Height,
		Paths:  make([][]vec.Vec2, len(jf.Paths)),
	}
	for i, jp := range jf.Paths {
		pts := make([]vec.Vec2, len(jp))
		for j, xy := range jp {
			pts[j] = vec.Vec2{X: xy[0], Y: xy[1]}
		}
		f.Paths[i] = pts
	}
	return f, nil
}

// Encode writes f as an indented JSON document.
func Encode(w io.Writer, f *File) error {
	jf := jsonFile{
		Name:   f.Name,
		Width:  f.Width,
		Height: f.Height,
		Paths:  make([][][2]float64, len(f.Paths)),
	}
	for i, pts := range f.Paths {
		jp := make([][2]float64, len(pts))
		for j, p := range pts {
			jp[j] = [2]float64{p.X, p.Y}
		}
		jf.Paths[i] = jp
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jf)
}
