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
	"fmt"
	"image"
	"log/slog"

	"seehuhn.de/go/epicycles/compose"
	"seehuhn.de/go/epicycles/contour"
	"seehuhn.de/go/epicycles/epicycle"
	"seehuhn.de/go/epicycles/fourier"
	"seehuhn.de/go/epicycles/resample"
	"seehuhn.de/go/geom/vec"
)

// Analysis holds the results of all stages before rendering.
type Analysis struct {
	Contours []contour.Contour
	Paths    []compose.Path

	// Samples[i] is the resampled, centred form of Paths[i].
	Samples [][]complex128

	// Sets[i] holds the ranked and scaled components for Paths[i], with
	// the k=0 term first.
	Sets [][]fourier.Component

	// Scales[i] is the factor applied to the coefficients of Sets[i].
	Scales []float64
}

// Analyze traces the outlines in img and decomposes them into epicycles.
func Analyze(img *image.Gray, cfg Config) (*Analysis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cc, err := contour.Extract(img, cfg.contourOptions())
	if err != nil {
		return nil, fmt.Errorf("epicycles: %w", err)
	}
	Logger().Debug("contours traced",
		slog.Int("count", len(cc)),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()))
	return analyze(cc, &cfg)
}

// AnalyzePaths decomposes the given polygons into epicycles. The polygons
// use image coordinates, with y growing downwards. Polygons with fewer
// than three distinct points are ignored.
func AnalyzePaths(polys [][]vec.Vec2, cfg Config) (*Analysis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cc, err := contour.FromPolygons(polys)
	if err != nil {
		return nil, fmt.Errorf("epicycles: %w", err)
	}
	Logger().Debug("polygons accepted", slog.Int("count", len(cc)), slog.Int("given", len(polys)))
	return analyze(cc, &cfg)
}

func analyze(cc []contour.Contour, cfg *Config) (*Analysis, error) {
	log := Logger()
	mode := cfg.Composition()

	paths := compose.Compose(cc, mode)
	counts := compose.SampleCounts(paths, cfg.SampleCount, mode)

	a := &Analysis{
		Contours: cc,
		Paths:    paths,
		Samples:  make([][]complex128, len(paths)),
		Sets:     make([][]fourier.Component, len(paths)),
		Scales:   make([]float64, len(paths)),
	}

	lengths := make([]int, len(paths))
	for i, p := range paths {
		if err := resample.Check(p.Points); err != nil {
			log.Warn("zero length path", slog.Int("path", i), slog.Int("points", len(p.Points)))
		}
		a.Samples[i] = resample.Path(p.Points, counts[i])
		lengths[i] = len(a.Samples[i])
		log.Debug("path resampled",
			slog.Int("path", i),
			slog.Int("points", len(p.Points)),
			slog.Float64("length", p.Length),
			slog.Int("samples", lengths[i]))
	}

	var budgets []int
	if _, ok := mode.(compose.Separate); ok {
		budgets = fourier.Budgets(lengths, cfg.VectorBudget)
	} else {
		budgets = []int{cfg.VectorBudget}
	}

	radius := cfg.TargetRadius()
	for i, z := range a.Samples {
		set, f, err := fourier.Decompose(z, budgets[i], radius)
		if err != nil {
			return nil, fmt.Errorf("epicycles: path %d: %w", i, err)
		}
		a.Sets[i] = set
		a.Scales[i] = f
		log.Debug("components selected",
			slog.Int("path", i),
			slog.Int("budget", budgets[i]),
			slog.Int("kept", len(set)),
			slog.Float64("scale", a.Scales[i]))
	}
	return a, nil
}

// Render draws cfg.FrameCount frames of the epicycle chains in a, at the
// times i/FrameCount for i = 0, ..., FrameCount-1.
func Render(a *Analysis, cfg Config) ([]epicycle.Frame, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rd := epicycle.NewRenderer(a.Sets, cfg.CanvasSize, epicycle.DefaultStyle())
	frames := rd.Render(cfg.FrameCount)
	Logger().Debug("frames rendered", slog.Int("count", len(frames)), slog.Int("size", cfg.CanvasSize))
	return frames, nil
}

// DecomposeAndRender runs the whole pipeline on a bitmap.
func DecomposeAndRender(img *image.Gray, cfg Config) ([]epicycle.Frame, error) {
	a, err := Analyze(img, cfg)
	if err != nil {
		return nil, err
	}
	return Render(a, cfg)
}

// DecomposePaths runs the whole pipeline on a set of polygons.
func DecomposePaths(polys [][]vec.Vec2, cfg Config) ([]epicycle.Frame, error) {
	a, err := AnalyzePaths(polys, cfg)
	if err != nil {
		return nil, err
	}
	return Render(a, cfg)
}
