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
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/epicycles/compose"
	"seehuhn.de/go/epicycles/contour"
)

// Mode selects how several outlines are turned into epicycle chains.
type Mode string

// These are the valid values for [Mode].
const (
	// ModeMerge joins all outlines into a single chain.
	ModeMerge Mode = "merge"

	// ModeSeparate gives every outline a chain of its own.
	ModeSeparate Mode = "separate"
)

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("epicycles: unknown mode %q", string(m))
	}
	return []byte(m), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mode) UnmarshalText(text []byte) error {
	mode := Mode(text)
	if !mode.valid() {
		return fmt.Errorf("epicycles: unknown mode %q: %w", string(text), ErrInvalidConfig)
	}
	*m = mode
	return nil
}

func (m Mode) valid() bool {
	return m == ModeMerge || m == ModeSeparate
}

// Config holds the parameters of the pipeline.
type Config struct {
	Mode Mode `yaml:"mode"`

	// CanvasSize is the width and height of the frames, in pixels.
	CanvasSize int `yaml:"canvas_size"`

	// SampleCount is the number of arc-length samples per merged path,
	// or the total over all paths in separate mode.
	SampleCount int `yaml:"sample_count"`

	// VectorBudget is the number of Fourier components kept. In separate
	// mode it is shared out over the paths.
	VectorBudget int `yaml:"vector_budget"`

	FrameCount int `yaml:"frame_count"`

	// Threshold is the largest gray value which counts as ink.
	Threshold int `yaml:"threshold"`

	// Outlines enclosing less than MinContourAreaRatio of the bitmap, or
	// less than MinContourArea square pixels, are dropped as noise.
	MinContourAreaRatio float64 `yaml:"min_contour_area_ratio"`
	MinContourArea      float64 `yaml:"min_contour_area"`

	// MergeTransitionPoints is the number of points on the straight
	// bridges between outlines in merge mode.
	MergeTransitionPoints int `yaml:"merge_transition_points"`

	// MinPathSamples is the smallest number of samples of any path in
	// separate mode.
	MinPathSamples int `yaml:"min_path_samples"`

	// TargetRadiusRatio sets the sum of all vector lengths, as a fraction
	// of CanvasSize.
	TargetRadiusRatio float64 `yaml:"target_radius_ratio"`

	// FrameDelay is the display time of each frame in an animation.
	FrameDelay time.Duration `yaml:"frame_delay"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Mode:                  ModeMerge,
		CanvasSize:            800,
		SampleCount:           2048,
		VectorBudget:          80,
		FrameCount:            220,
		Threshold:             contour.DefaultThreshold,
		MinContourAreaRatio:   contour.DefaultMinAreaRatio,
		MinContourArea:        contour.DefaultMinArea,
		MergeTransitionPoints: 12,
		MinPathSamples:        32,
		TargetRadiusRatio:     0.42,
		FrameDelay:            20 * time.Millisecond,
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("epicycles: "+format+": %w", append(args, ErrInvalidConfig)...)
}

// Validate checks that all fields are in range. The returned error wraps
// [ErrInvalidConfig].
func (c *Config) Validate() error {
	switch {
	case !c.Mode.valid():
		return invalid("unknown mode %q", string(c.Mode))
	case c.CanvasSize <= 0:
		return invalid("canvas size must be positive")
	case c.SampleCount <= 0:
		return invalid("sample count must be positive")
	case c.VectorBudget <= 0:
		return invalid("vector budget must be positive")
	case c.FrameCount <= 0:
		return invalid("frame count must be positive")
	case c.Threshold < 0 || c.Threshold > 255:
		return invalid("threshold %d outside [0, 255]", c.Threshold)
	case !(c.MinContourAreaRatio >= 0 && c.MinContourAreaRatio < 1):
		return invalid("minimum contour area ratio %g outside [0, 1)", c.MinContourAreaRatio)
	case !(c.MinContourArea >= 0):
		return invalid("minimum contour area must not be negative")
	case c.MergeTransitionPoints < 0:
		return invalid("transition points must not be negative")
	case c.MinPathSamples <= 0:
		return invalid("minimum path samples must be positive")
	case !(c.TargetRadiusRatio > 0 && c.TargetRadiusRatio <= 1):
		return invalid("target radius ratio %g outside (0, 1]", c.TargetRadiusRatio)
	case c.FrameDelay < 0:
		return invalid("frame delay must not be negative")
	}
	return nil
}

// LoadConfig reads a YAML configuration. Fields which are not set keep
// their default values. Unknown fields are an error.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("epicycles: reading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Composition returns the path composition mode described by c.
func (c *Config) Composition() compose.Mode {
	if c.Mode == ModeSeparate {
		return compose.Separate{MinSamples: c.MinPathSamples}
	}
	return compose.Merge{TransitionPoints: c.MergeTransitionPoints}
}

func (c *Config) contourOptions() contour.Options {
	return contour.Options{
		Threshold:    uint8(c.Threshold),
		MinAreaRatio: c.MinContourAreaRatio,
		MinArea:      c.MinContourArea,
	}
}

// TargetRadius returns the sum of vector lengths of every chain, in
// pixels.
func (c *Config) TargetRadius() float64 {
	return c.TargetRadiusRatio * float64(c.CanvasSize)
}
