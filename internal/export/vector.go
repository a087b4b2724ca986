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

package export

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/epicycles/epicycle"
	"seehuhn.de/go/epicycles/fourier"
	"seehuhn.de/go/epicycles/raster"
)

// Gray levels used for the vector rendering.
const (
	circleGray = 0.8
	radiusGray = 0.45
	trailGray  = 0
)

// WriteVectorPDF writes a single page PDF which shows the state of the
// given epicycle chains at the time of frame f, together with the trails
// recorded up to that frame. The page is size x size points and, as in
// the rendered frames, the origin of the sums lies at the centre.
func WriteVectorPDF(fname string, sets [][]fourier.Component, size int, f epicycle.Frame) error {
	if size <= 0 {
		return fmt.Errorf("export: invalid page size %d", size)
	}
	if len(f.Trails) != len(sets) {
		return fmt.Errorf("export: frame has %d trails for %d chains", len(f.Trails), len(sets))
	}

	paper := &pdf.Rectangle{URx: float64(size), URy: float64(size)}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, float64(size), float64(size))
	page.Fill()

	// PDF space has the y-axis pointing up, like the sums.
	c := float64(size / 2)
	toPage := func(z complex128) vec.Vec2 {
		return vec.Vec2{X: c + real(z), Y: c + imag(z)}
	}

	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinMiter)
	page.SetLineWidth(0.75)

	tips := make([]vec.Vec2, len(sets))
	for i, set := range sets {
		con := epicycle.Construct(set, f.T)
		tips[i] = toPage(con.Tip())

		var circles *path.Data
		for j, r := range con.Radii {
			if r > 0 {
				circles = raster.AppendCircle(circles, toPage(con.Joints[j]), r)
			}
		}
		if circles != nil {
			page.SetStrokeColor(color.DeviceGray(circleGray))
			drawPath(page, circles)
			page.Stroke()
		}

		if len(con.Joints) > 1 {
			page.SetStrokeColor(color.DeviceGray(radiusGray))
			drawPath(page, polyline(con.Joints, toPage))
			page.Stroke()
		}
	}

	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	page.SetLineWidth(1.5)
	page.SetStrokeColor(color.DeviceGray(trailGray))
	for _, tr := range f.Trails {
		if len(tr) > 1 {
			drawPath(page, polyline(tr, toPage))
			page.Stroke()
		}
	}

	page.SetFillColor(color.DeviceGray(trailGray))
	for _, tip := range tips {
		drawPath(page, raster.AppendCircle(nil, tip, 2))
		page.Fill()
	}

	return page.Close()
}

func polyline(zs []complex128, toPage func(complex128) vec.Vec2) *path.Data {
	pts := make([]vec.Vec2, len(zs))
	for i, z := range zs {
		pts[i] = toPage(z)
	}
	return raster.AppendPolyline(nil, pts, false)
}

func drawPath(page *document.Page, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
