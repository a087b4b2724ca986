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

// Command epicycles traces a shape and writes an animation of the Fourier
// epicycles which draw it.
//
// Usage:
//
//	epicycles [flags] (-text STRING | -in IMAGE | -paths FILE | -scene NAME)
//
// The shape is read from a PNG or JPEG image, a text string, a JSON point
// set, or one of the built-in test scenes. The animation is written as an
// animated GIF. Optionally, the frames can also be stored as PNG files, as
// a PDF contact sheet, and the final frame as a vector PDF.
//
// Logging is configured via EPICYCLES_LOG_LEVEL, EPICYCLES_LOG_FORMAT,
// EPICYCLES_LOG_FILE and EPICYCLES_LOG_SOURCE; the -log-* flags take
// precedence.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"time"

	"seehuhn.de/go/epicycles"
	"seehuhn.de/go/epicycles/epicycle"
	"seehuhn.de/go/epicycles/internal/export"
	applog "seehuhn.de/go/epicycles/internal/log"
	"seehuhn.de/go/epicycles/internal/pathfile"
	"seehuhn.de/go/epicycles/scenes"
)

type options struct {
	config string

	text   string
	font   string
	in     string
	svg    string
	paths  string
	scene  string
	mode   string
	budget int

	out         string
	frames      string
	sheet       string
	vector      string
	exportPaths string

	timeout time.Duration
}

func main() {
	var opt options
	flag.StringVar(&opt.config, "config", "", "YAML configuration `file`")
	flag.StringVar(&opt.text, "text", "", "trace the outline of `text` (at most 10 characters)")
	flag.StringVar(&opt.font, "font", "", "render -text with the TrueType or OpenType `file`")
	flag.StringVar(&opt.in, "in", "", "trace the shapes in a PNG or JPEG `image`")
	flag.StringVar(&opt.svg, "svg", "", "trace the filled shapes of an SVG `file`")
	flag.StringVar(&opt.paths, "paths", "", "read polygons from a JSON point set `file`")
	flag.StringVar(&opt.scene, "scene", "", "use the built-in scene `name` (\"list\" to show all)")
	flag.StringVar(&opt.mode, "mode", "", "path composition: merge or separate")
	flag.IntVar(&opt.budget, "vectors", 0, "number of rotating vectors (0 keeps the configured value)")
	flag.StringVar(&opt.out, "out", "epicycles.gif", "animated GIF output `file`")
	flag.StringVar(&opt.frames, "frames", "", "also write the frames as PNG files into `dir`")
	flag.StringVar(&opt.sheet, "sheet", "", "also write a PDF contact sheet to `file`")
	flag.StringVar(&opt.vector, "pdf", "", "also write the final frame as a vector PDF `file`")
	flag.StringVar(&opt.exportPaths, "export-paths", "", "write the traced outlines as a JSON point set `file`")
	flag.DurationVar(&opt.timeout, "timeout", 2*time.Minute, "abort after this `duration`")

	logOpt := applog.FromEnv()
	flag.StringVar(&logOpt.Level, "log-level", logOpt.Level, "log `level`: debug, info, warn or error")
	flag.StringVar(&logOpt.Format, "log-format", logOpt.Format, "log `format`: console or json")
	flag.StringVar(&logOpt.File, "log-file", logOpt.File, "also log to the rotated JSON log `file`")
	flag.Parse()

	logger, closeLog := applog.New(logOpt, os.Stderr)
	epicycles.SetLogger(logger.With("component", "pipeline"))

	if opt.scene == "list" {
		for _, cat := range slices.Sorted(maps.Keys(scenes.All)) {
			for _, s := range scenes.All[cat] {
				fmt.Printf("%s/%s\n", cat, s.Name)
			}
		}
		closeLog()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), opt.timeout)
	err := run(ctx, &opt, logger)
	cancel()
	if err != nil {
		logger.Error("failed", slog.Any("err", err))
		closeLog()
		os.Exit(1)
	}
	closeLog()
}

func run(ctx context.Context, opt *options, logger *slog.Logger) error {
	cfg, err := loadConfig(opt)
	if err != nil {
		return err
	}

	src, err := openInput(opt, cfg.CanvasSize)
	if err != nil {
		return err
	}

	start := time.Now()
	a, frames, err := process(ctx, src, cfg)
	if err != nil {
		return err
	}
	logger.Info("animation rendered",
		slog.String("input", src.name),
		slog.Int("paths", len(a.Paths)),
		slog.Int("frames", len(frames)),
		slog.Duration("elapsed", time.Since(start)))

	return write(opt, cfg, src.name, a, frames, logger)
}

func loadConfig(opt *options) (epicycles.Config, error) {
	cfg := epicycles.DefaultConfig()
	if opt.config != "" {
		fd, err := os.Open(opt.config)
		if err != nil {
			return cfg, err
		}
		cfg, err = epicycles.LoadConfig(fd)
		fd.Close()
		if err != nil {
			return cfg, err
		}
	}
	if opt.mode != "" {
		if err := cfg.Mode.UnmarshalText([]byte(opt.mode)); err != nil {
			return cfg, err
		}
	}
	if opt.budget != 0 {
		cfg.VectorBudget = opt.budget
	}
	return cfg, cfg.Validate()
}

type result struct {
	a      *epicycles.Analysis
	frames []epicycle.Frame
	err    error
}

// process runs the pipeline, giving up when ctx expires.
func process(ctx context.Context, src *input, cfg epicycles.Config) (*epicycles.Analysis, []epicycle.Frame, error) {
	done := make(chan result, 1)
	go func() {
		var res result
		if src.img != nil {
			res.a, res.err = epicycles.Analyze(src.img, cfg)
		} else {
			res.a, res.err = epicycles.AnalyzePaths(src.polys, cfg)
		}
		if res.err == nil {
			res.frames, res.err = epicycles.Render(res.a, cfg)
		}
		done <- res
	}()

	select {
	case res := <-done:
		return res.a, res.frames, res.err
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("processing %s: %w", src.name, ctx.Err())
	}
}

func write(opt *options, cfg epicycles.Config, name string, a *epicycles.Analysis, frames []epicycle.Frame, logger *slog.Logger) error {
	fd, err := os.Create(opt.out)
	if err != nil {
		return err
	}
	err = export.WriteGIF(fd, frames, cfg.FrameDelay)
	err = errors.Join(err, fd.Close())
	if err != nil {
		return err
	}
	logger.Info("wrote animation", slog.String("file", opt.out))

	if opt.frames != "" {
		names, err := export.WritePNGs(opt.frames, frames)
		if err != nil {
			return err
		}
		logger.Info("wrote frames", slog.String("dir", opt.frames), slog.Int("count", len(names)))
	}

	if opt.sheet != "" {
		sheetOpt := export.DefaultSheetOptions()
		sel := export.Pick(frames, sheetOpt.Columns*sheetOpt.Rows)
		fd, err := os.Create(opt.sheet)
		if err != nil {
			return err
		}
		err = export.WriteSheet(fd, sel, sheetOpt)
		if err = errors.Join(err, fd.Close()); err != nil {
			return err
		}
		logger.Info("wrote contact sheet", slog.String("file", opt.sheet))
	}

	if opt.vector != "" {
		last := frames[len(frames)-1]
		if err := export.WriteVectorPDF(opt.vector, a.Sets, cfg.CanvasSize, last); err != nil {
			return err
		}
		logger.Info("wrote vector frame", slog.String("file", opt.vector))
	}

	if opt.exportPaths != "" {
		f := &pathfile.File{Name: name}
		for _, c := range a.Contours {
			f.Paths = append(f.Paths, c.Points)
		}
		fd, err := os.Create(opt.exportPaths)
		if err != nil {
			return err
		}
		err = pathfile.Encode(fd, f)
		if err = errors.Join(err, fd.Close()); err != nil {
			return err
		}
		logger.Info("wrote outlines", slog.String("file", opt.exportPaths), slog.Int("paths", len(f.Paths)))
	}
	return nil
}
