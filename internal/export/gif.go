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

// Package export writes rendered epicycle frames to files.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"time"

	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/epicycles/epicycle"
)

// ErrNoFrames is returned when there is nothing to write.
var ErrNoFrames = errors.New("export: no frames")

// Centiseconds converts a frame delay to the unit used by GIF files,
// rounding to the nearest unit. Positive delays give at least 1.
func Centiseconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return max(int((d+5*time.Millisecond)/(10*time.Millisecond)), 1)
}

// WriteGIF encodes the frames as an endlessly looping animated GIF. The
// frames are reduced to the Plan 9 palette with Floyd-Steinberg dithering.
func WriteGIF(w io.Writer, frames []epicycle.Frame, delay time.Duration) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	cs := Centiseconds(delay)
	anim := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     make([]int, len(frames)),
		Disposal:  make([]byte, len(frames)),
		LoopCount: 0,
	}
	for i, f := range frames {
		b := f.Image.Bounds()
		pal := image.NewPaletted(b, palette.Plan9)
		xdraw.FloydSteinberg.Draw(pal, b, f.Image, b.Min)
		anim.Image[i] = pal
		anim.Delay[i] = cs
		anim.Disposal[i] = gif.DisposalBackground
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
