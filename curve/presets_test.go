// Copyright (c) 2025, the curveedit authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	assert.True(t, slices.IsSorted(names))
	for _, want := range []string{"linear", "ease_in", "ease_out", "ease_in_out", "bounce", "sine_wave"} {
		assert.Contains(t, names, want)
	}
}

func TestPreset(t *testing.T) {
	pts, err := Preset("ease_in_out")
	assert.NoError(t, err)
	assert.Equal(t, easeInOut, pts)

	// returned slices are independent copies
	pts[0].Y = 0.9
	again, _ := Preset("ease_in_out")
	assert.Equal(t, float32(0), again[0].Y)

	_, err = Preset("nope")
	assert.Error(t, err)
}

func TestApplyPreset(t *testing.T) {
	c := NewCurve()
	assert.NoError(t, c.ApplyPreset("ease_in_out"))
	assert.Equal(t, easeInOut, c.Points())

	assert.Error(t, c.ApplyPreset("nope"))
	assert.Equal(t, easeInOut, c.Points())
}
