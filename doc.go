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

// Package epicycles draws shapes with chains of rotating circles.
//
// A shape is given either as a grayscale bitmap or as a set of polygons.
// Its outlines are traced, joined into one or more closed paths, resampled
// evenly by arc length and decomposed into Fourier components. Each
// component is a vector turning at a fixed integer frequency; placed tip
// to tail they form a chain whose end retraces the shape once per period.
// [Render] draws this chain, together with the curve traced so far, for a
// sequence of equally spaced times.
//
// The stages live in their own packages:
//
//   - [seehuhn.de/go/epicycles/contour] traces ink boundaries in a bitmap
//   - [seehuhn.de/go/epicycles/compose] orders and joins contours into paths
//   - [seehuhn.de/go/epicycles/resample] samples a path by arc length
//   - [seehuhn.de/go/epicycles/fourier] finds, ranks and scales components
//   - [seehuhn.de/go/epicycles/epicycle] simulates and draws the chains
//
// All computations are deterministic. The same input and [Config] always
// give the same frames.
package epicycles
