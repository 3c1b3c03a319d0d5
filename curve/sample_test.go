// Copyright (c) 2025, the curveedit authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32/minmax"
	"github.com/stretchr/testify/assert"
)

func TestResolveDefaultLinear(t *testing.T) {
	c := NewCurve()
	c.SetAlgorithm(Linear)
	smps := Resolve(c, 4, minmax.F32{Min: 0, Max: 1}, false)
	assert.Equal(t, 4, len(smps))
	want := []float32{0.25, 0.5, 0.75, 1.0}
	for i, s := range smps {
		tolassert.EqualTol(t, want[i], s.T, tol)
		tolassert.EqualTol(t, want[i], s.Transformed, tol)
		tolassert.EqualTol(t, want[i], s.Value, tol)
	}
}

func TestResolveRangeRemap(t *testing.T) {
	c := NewCurve()
	c.SetAlgorithm(Linear)
	vals := Values(c, 4, minmax.F32{Min: 100, Max: 200}, false)
	want := []float32{125, 150, 175, 200}
	for i, v := range vals {
		tolassert.EqualTol(t, want[i], v, tol)
	}
}

func TestResolvePercent(t *testing.T) {
	c := NewCurve()
	c.SetAlgorithm(Linear)
	vals := Values(c, 2, minmax.F32{Min: 5, Max: 9}, true)
	tolassert.EqualTol(t, 50, vals[0], tol)
	tolassert.EqualTol(t, 100, vals[1], tol)
}

func TestResolveDegenerate(t *testing.T) {
	assert.Nil(t, Resolve(nil, 4, minmax.F32{}, false))
	assert.Nil(t, Resolve(NewCurve(), 0, minmax.F32{}, false))
}

func TestDataTypesFormat(t *testing.T) {
	assert.Equal(t, "128", Int.Format(127.6))
	assert.Equal(t, "0xFF", Hex.Format(255))
	assert.Equal(t, "0.5", Float.Format(0.5))
}
