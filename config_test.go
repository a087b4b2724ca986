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
	"strings"
	"testing"
	"time"

	"seehuhn.de/go/epicycles/compose"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(c *Config)
	}{
		{"mode", func(c *Config) { c.Mode = "spiral" }},
		{"canvas", func(c *Config) { c.CanvasSize = 0 }},
		{"samples", func(c *Config) { c.SampleCount = -1 }},
		{"budget", func(c *Config) { c.VectorBudget = 0 }},
		{"frames", func(c *Config) { c.FrameCount = 0 }},
		{"threshold", func(c *Config) { c.Threshold = 256 }},
		{"area ratio", func(c *Config) { c.MinContourAreaRatio = 1 }},
		{"area", func(c *Config) { c.MinContourArea = -1 }},
		{"transitions", func(c *Config) { c.MergeTransitionPoints = -1 }},
		{"min samples", func(c *Config) { c.MinPathSamples = 0 }},
		{"radius", func(c *Config) { c.TargetRadiusRatio = 0 }},
		{"delay", func(c *Config) { c.FrameDelay = -time.Millisecond }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
			if err != nil && !strings.HasPrefix(err.Error(), "epicycles: ") {
				t.Errorf("error %q lacks the package prefix", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	in := `
mode: separate
canvas_size: 400
vector_budget: 120
frame_delay: 40ms
`
	cfg, err := LoadConfig(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.Mode = ModeSeparate
	want.CanvasSize = 400
	want.VectorBudget = 120
	want.FrameDelay = 40 * time.Millisecond
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]string{
		"unknown field": "colour: red\n",
		"bad mode":      "mode: spiral\n",
		"out of range":  "frame_count: 0\n",
		"bad syntax":    "canvas_size: [1, 2\n",
	}
	for name, in := range cases {
		if _, err := LoadConfig(strings.NewReader(in)); err == nil {
			t.Errorf("%s: no error", name)
		}
	}
}

func TestModeText(t *testing.T) {
	for _, m := range []Mode{ModeMerge, ModeSeparate} {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Mode
		if err := back.UnmarshalText(text); err != nil || back != m {
			t.Errorf("%q: got %q, %v", m, back, err)
		}
	}
	var m Mode
	if err := m.UnmarshalText([]byte("both")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown mode: got %v", err)
	}
	if _, err := Mode("both").MarshalText(); err == nil {
		t.Error("marshalling an unknown mode succeeded")
	}
}

func TestComposition(t *testing.T) {
	cfg := DefaultConfig()
	if m, ok := cfg.Composition().(compose.Merge); !ok || m.TransitionPoints != 12 {
		t.Errorf("merge: got %#v", cfg.Composition())
	}
	cfg.Mode = ModeSeparate
	if m, ok := cfg.Composition().(compose.Separate); !ok || m.MinSamples != 32 {
		t.Errorf("separate: got %#v", cfg.Composition())
	}
	if r := cfg.TargetRadius(); r != 0.42*800 {
		t.Errorf("target radius %g", r)
	}
}
