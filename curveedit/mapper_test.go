// Copyright (c) 2025, the curveedit authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curveedit

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"

	"github.com/grinlau18/curveedit/curve"
)

const tol = 1.0e-5

func TestMapperCorners(t *testing.T) {
	mp := mapper{size: math32.Vec2(260, 160), pad: 30}
	assert.True(t, mp.valid())

	// curve origin is the bottom-left corner of the plot area
	pt := mp.curveToPixel(curve.Pt(0, 0))
	tolassert.EqualTol(t, 30, pt.X, tol)
	tolassert.EqualTol(t, 130, pt.Y, tol)

	pt = mp.curveToPixel(curve.Pt(1, 1))
	tolassert.EqualTol(t, 230, pt.X, tol)
	tolassert.EqualTol(t, 30, pt.Y, tol)

	pt = mp.curveToPixel(curve.Pt(0.5, 0.5))
	tolassert.EqualTol(t, 130, pt.X, tol)
	tolassert.EqualTol(t, 80, pt.Y, tol)
}

func TestMapperRoundTrip(t *testing.T) {
	mp := mapper{size: math32.Vec2(380, 480), pad: 30}
	for _, p := range []curve.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0.25, Y: 0.75}, {X: 0.123, Y: 0.987}} {
		got := mp.pixelToCurve(mp.curveToPixel(p))
		tolassert.EqualTol(t, p.X, got.X, tol)
		tolassert.EqualTol(t, p.Y, got.Y, tol)
	}
}

func TestMapperClamps(t *testing.T) {
	mp := mapper{size: math32.Vec2(260, 260), pad: 30}
	p := mp.pixelToCurve(math32.Vec2(0, 0)) // inside the padding band
	assert.Equal(t, curve.Pt(0, 1), p)
	p = mp.pixelToCurve(math32.Vec2(1000, 1000))
	assert.Equal(t, curve.Pt(1, 0), p)
}

func TestMapperNormDist(t *testing.T) {
	mp := mapper{size: math32.Vec2(260, 160), pad: 30}
	// uses the smaller plot dimension (100)
	tolassert.EqualTol(t, 0.15, mp.normDist(15), tol)

	degenerate := mapper{size: math32.Vec2(40, 40), pad: 30}
	assert.False(t, degenerate.valid())
	assert.Equal(t, float32(0), degenerate.normDist(15))
}
