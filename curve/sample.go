// Copyright (c) 2025, the curveedit authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"
	"strconv"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// DataTypes are the numeric output types a curve's resolved samples
// can be presented as.
type DataTypes int32 //enums:enum -transform upper

const (
	// Float presents values as floating point numbers.
	Float DataTypes = iota

	// Int presents values rounded to integers.
	Int

	// Hex presents values rounded to integers in hexadecimal.
	Hex
)

// Format returns the label representation of the given value
// under this data type.
func (dt DataTypes) Format(v float32) string {
	switch dt {
	case Int:
		return strconv.Itoa(int(math32.Round(v)))
	case Hex:
		return fmt.Sprintf("0x%X", int(math32.Round(v)))
	default:
		return strconv.FormatFloat(float64(v), 'g', 4, 32)
	}
}

// Sample is one resolved output sample of a curve: the raw parametric
// position, its curve-transformed value, and the final range-remapped
// output value. T and Transformed are retained for diagnostics.
type Sample struct {
	T           float32
	Transformed float32
	Value       float32
}

// Resolve evaluates the curve at n evenly spaced parametric positions
// t = i/n for i = 1..n, remapping each transformed value into the
// given output range, or to a 0-100 percentage when percent is set.
// The result is recomputed on every call and never cached.
func Resolve(c *Curve, n int, rng minmax.F32, percent bool) []Sample {
	if c == nil || n < 1 {
		return nil
	}
	alg := c.Algorithm()
	pts := c.Points()
	out := make([]Sample, n)
	for i := 1; i <= n; i++ {
		t := float32(i) / float32(n)
		tr := Evaluate(alg, t, pts)
		v := rng.ProjValue(tr)
		if percent {
			v = 100 * tr
		}
		out[i-1] = Sample{T: t, Transformed: tr, Value: v}
	}
	return out
}

// Values returns just the final output values of [Resolve].
func Values(c *Curve, n int, rng minmax.F32, percent bool) []float32 {
	smps := Resolve(c, n, rng, percent)
	out := make([]float32, len(smps))
	for i, s := range smps {
		out[i] = s.Value
	}
	return out
}
