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
	"image/png"
	"os"
	"path/filepath"

	"seehuhn.de/go/epicycles/epicycle"
)

// WritePNGs stores every frame as a separate PNG file in dir, which is
// created if needed. The files are named frame_0000.png, frame_0001.png,
// and so on. The names of the written files are returned in frame order.
func WritePNGs(dir string, frames []epicycle.Frame) ([]string, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(frames))
	for _, f := range frames {
		name := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", f.Index))
		if err := writePNG(name, f); err != nil {
			return names, err
		}
		names = append(names, name)
	}
	return names, nil
}

func writePNG(name string, f epicycle.Frame) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(out, f.Image); err != nil {
		out.Close()
		return fmt.Errorf("export: frame %d: %w", f.Index, err)
	}
	return out.Close()
}
