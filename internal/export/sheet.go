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
	"bytes"
	"fmt"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"

	"seehuhn.de/go/epicycles/epicycle"
)

// SheetOptions controls the layout of a contact sheet.
type SheetOptions struct {
	Title   string
	Columns int // thumbnails per row
	Rows    int // rows per page
}

// DefaultSheetOptions returns a 4x5 grid on A4 paper.
func DefaultSheetOptions() SheetOptions {
	return SheetOptions{Title: "Epicycles", Columns: 4, Rows: 5}
}

const (
	a4W    = 210.0
	a4H    = 297.0
	margin = 12.0
	header = 10.0
	gap    = 4.0
	label  = 4.0
)

// Pick returns n frames spread evenly over the animation, always
// including the first frame.
func Pick(frames []epicycle.Frame, n int) []epicycle.Frame {
	if n <= 0 || len(frames) <= n {
		return frames
	}
	res := make([]epicycle.Frame, n)
	for i := range res {
		res[i] = frames[i*len(frames)/n]
	}
	return res
}

// WriteSheet lays the frames out as thumbnails on one or more A4 pages
// and writes the resulting PDF to w. Each thumbnail is labelled with its
// frame index and time.
func WriteSheet(w io.Writer, frames []epicycle.Frame, opt SheetOptions) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if opt.Columns <= 0 || opt.Rows <= 0 {
		return fmt.Errorf("export: invalid sheet grid %dx%d", opt.Columns, opt.Rows)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: a4W, Ht: a4H},
	})
	pdf.SetTitle(opt.Title, true)
	pdf.SetCreator("epicycles", false)
	pdf.SetAutoPageBreak(false, 0)

	cellW := (a4W - 2*margin - float64(opt.Columns-1)*gap) / float64(opt.Columns)
	cellH := (a4H - 2*margin - header - float64(opt.Rows-1)*gap) / float64(opt.Rows)
	side := min(cellW, cellH-label)

	perPage := opt.Columns * opt.Rows
	imgOpt := gofpdf.ImageOptions{ImageType: "PNG"}
	var buf bytes.Buffer
	for i, f := range frames {
		k := i % perPage
		if k == 0 {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "B", 12)
			pdf.Text(margin, margin+5, fmt.Sprintf("%s (%d/%d)", opt.Title, i/perPage+1, (len(frames)+perPage-1)/perPage))
		}

		buf.Reset()
		if err := png.Encode(&buf, f.Image); err != nil {
			return fmt.Errorf("export: frame %d: %w", f.Index, err)
		}
		name := fmt.Sprintf("frame%d", f.Index)
		pdf.RegisterImageOptionsReader(name, imgOpt, &buf)

		x := margin + float64(k%opt.Columns)*(cellW+gap)
		y := margin + header + float64(k/opt.Columns)*(cellH+gap)
		pdf.ImageOptions(name, x, y, side, side, false, imgOpt, 0, "")
		pdf.SetLineWidth(0.2)
		pdf.SetDrawColor(160, 160, 160)
		pdf.Rect(x, y, side, side, "D")

		pdf.SetFont("Helvetica", "", 7)
		pdf.Text(x, y+side+label-1, fmt.Sprintf("#%d  t=%.3f", f.Index, f.T))

		if err := pdf.Error(); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	return pdf.Output(w)
}
