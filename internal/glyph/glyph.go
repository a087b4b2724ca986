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

// Package glyph renders short texts into grayscale bitmaps, for use as
// input shapes.
package glyph

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// MaxRunes is the longest text accepted by [Render].
const MaxRunes = 10

const (
	startSize = 240
	minSize   = 8
	sizeStep  = 6
	fill      = 0.9
)

var (
	// ErrEmpty is returned for an empty text.
	ErrEmpty = errors.New("glyph: empty text")

	// ErrTooLong is returned for texts with more than MaxRunes characters.
	ErrTooLong = fmt.Errorf("glyph: text longer than %d characters", MaxRunes)

	// ErrMissingGlyph is returned when the font cannot draw a character of
	// the text.
	ErrMissingGlyph = errors.New("glyph: character not in font")
)

// Render draws text in black on a white square of the given size. The
// font size starts at 240 pixels and is reduced in steps of 6 until the
// ink fits into 90% of the canvas in both directions. The text is centred
// on its ink bounding box.
func Render(text string, size int) (*image.Gray, error) {
	return RenderFont(goregular.TTF, text, size)
}

// RenderFont is like [Render], but uses the given TrueType or OpenType
// font data. Every character of the text other than white space must be
// present in the font.
func RenderFont(fontData []byte, text string, size int) (*image.Gray, error) {
	n := utf8.RuneCountInString(text)
	switch {
	case n == 0:
		return nil, ErrEmpty
	case n > MaxRunes:
		return nil, ErrTooLong
	case size <= 0:
		return nil, fmt.Errorf("glyph: invalid canvas size %d", size)
	}

	f, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("glyph: %w", err)
	}
	var buf sfnt.Buffer
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return nil, fmt.Errorf("glyph: %w", err)
		}
		if idx == 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingGlyph, r)
		}
	}

	var face font.Face
	var bounds fixed.Rectangle26_6
	limit := fixed.Int26_6(float64(size) * fill * 64)
	for px := startSize; ; px -= sizeStep {
		if face != nil {
			face.Close()
		}
		face, err = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    float64(px),
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return nil, fmt.Errorf("glyph: %w", err)
		}
		bounds, _ = font.BoundString(face, text)
		w := bounds.Max.X - bounds.Min.X
		h := bounds.Max.Y - bounds.Min.Y
		if (w < limit && h < limit) || px-sizeStep < minSize {
			break
		}
	}
	defer face.Close()

	img := image.NewGray(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
		Dot: fixed.Point26_6{
			X: (fixed.I(size)-w)/2 - bounds.Min.X,
			Y: (fixed.I(size)-h)/2 - bounds.Min.Y,
		},
	}
	d.DrawString(text)
	return img, nil
}
