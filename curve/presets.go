// Copyright (c) 2025, the curveedit authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"embed"
	"fmt"
	"slices"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
)

//go:embed presets.toml
var presetsFS embed.FS

var (
	presetsOnce sync.Once
	presets     map[string][]Point
)

// loadPresets parses the embedded preset table once.
func loadPresets() {
	presetsOnce.Do(func() {
		var tbl struct {
			Presets map[string][][]float32 `toml:"presets"`
		}
		if err := tomlx.OpenFS(&tbl, presetsFS, "presets.toml"); errors.Log(err) != nil {
			presets = map[string][]Point{}
			return
		}
		presets = make(map[string][]Point, len(tbl.Presets))
		for name, rows := range tbl.Presets {
			pts := make([]Point, 0, len(rows))
			for _, row := range rows {
				if len(row) != 2 {
					continue
				}
				pts = append(pts, Pt(row[0], row[1]))
			}
			presets[name] = pts
		}
	})
}

// PresetNames returns the sorted names of the built-in curve presets.
func PresetNames() []string {
	loadPresets()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Preset returns the control points of the named built-in preset.
func Preset(name string) ([]Point, error) {
	loadPresets()
	pts, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("curve.Preset: no preset named %q", name)
	}
	return slices.Clone(pts), nil
}

// ApplyPreset replaces the curve's control points with the named
// preset, wholesale. Unknown names leave the curve unchanged.
func (c *Curve) ApplyPreset(name string) error {
	pts, err := Preset(name)
	if err != nil {
		return err
	}
	c.SetPoints(pts)
	return nil
}
