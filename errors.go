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

package epicycles

import (
	"errors"

	"seehuhn.de/go/epicycles/contour"
	"seehuhn.de/go/epicycles/resample"
)

var (
	// ErrInvalidConfig is returned for configuration values out of range.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoContour is returned when the input contains no shapes at all.
	ErrNoContour = contour.ErrNoContour

	// ErrAllTooSmall is returned when every shape of the input was
	// dropped as noise.
	ErrAllTooSmall = contour.ErrAllTooSmall

	// ErrDegeneratePath describes a path of zero length. Such paths do
	// not make the pipeline fail; they are logged and turn into a chain
	// of zero vectors.
	ErrDegeneratePath = resample.ErrDegenerate
)
