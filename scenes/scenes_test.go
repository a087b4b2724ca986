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

package scenes

import (
	"maps"
	"regexp"
	"slices"
	"testing"

	"seehuhn.de/go/epicycles/contour"
)

var validName = regexp.MustCompile(`^[a-z_]+$`)

func TestNames(t *testing.T) {
	seen := make(map[string]string)
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, s := range All[category] {
			if !validName.MatchString(s.Name) {
				t.Errorf("%s/%s: invalid name", category, s.Name)
			}
			if other, dup := seen[s.Name]; dup {
				t.Errorf("%s/%s: name already used in %s", category, s.Name, other)
			}
			seen[s.Name] = category

			for _, name := range []string{s.Name, category + "/" + s.Name} {
				if found, ok := Find(name); !ok || found.Name != s.Name {
					t.Errorf("Find(%q) failed", name)
				}
			}
		}
	}
	if _, ok := Find("no_such_scene"); ok {
		t.Error("Find succeeded for an unknown name")
	}
}

func TestBitmaps(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, s := range All[category] {
			t.Run(category+"_"+s.Name, func(t *testing.T) {
				img := s.Bitmap()
				if b := img.Bounds(); b.Dx() != s.Size || b.Dy() != s.Size {
					t.Fatalf("bitmap bounds %v", b)
				}

				cc, err := contour.Extract(img, contour.DefaultOptions())
				if err != nil {
					t.Fatal(err)
				}
				if s.Outlines > 0 && len(cc) != s.Outlines {
					t.Errorf("traced %d outlines, want %d", len(cc), s.Outlines)
				}
			})
		}
	}
}

func TestPolygons(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, s := range All[category] {
			t.Run(category+"_"+s.Name, func(t *testing.T) {
				polys := s.Polygons()
				if len(polys) == 0 {
					t.Fatal("no polygons")
				}
				for i, p := range polys {
					for _, v := range p {
						if v.X < -1 || v.Y < -1 || v.X > float64(s.Size)+1 || v.Y > float64(s.Size)+1 {
							t.Errorf("polygon %d: point %v outside the canvas", i, v)
							break
						}
					}
				}
				if _, err := contour.FromPolygons(polys); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

func TestPolygonsCurves(t *testing.T) {
	s := Scene{Shape: circle(0, 0, 10), Size: 20, Op: Fill{}}
	polys := s.Polygons()
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	if got, want := len(polys[0]), 1+4*curveSteps; got != want {
		t.Errorf("got %d points, want %d", got, want)
	}
	for _, v := range polys[0] {
		if r := v.Length(); r < 9.9 || r > 10.1 {
			t.Errorf("point %v is not on the circle", v)
		}
	}
}
