// Copyright (c) 2025, the curveedit authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"encoding/json"
	"log/slog"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/math32/minmax"
)

// Default values substituted for missing or malformed [State] fields.
const (
	// DefaultPointCount is the default effective output point count.
	DefaultPointCount = 10

	// MaxPointCount is the maximum effective output point count.
	MaxPointCount = 100
)

// State is the persisted, plain-data snapshot of a curve editor:
// everything needed to round-trip an editor's configuration.
// Ephemeral interaction state (dragging, hover) is process-local and
// is not part of it. Decoding is tolerant: missing or malformed
// fields are replaced with documented defaults, never raised as
// errors to the user.
type State struct {

	// CurvePoints is the ordered control point sequence.
	CurvePoints []Point `json:"curve_points"`

	// InterpolationAlgorithm is the curve interpolation algorithm.
	InterpolationAlgorithm Algorithms `json:"interpolation_algorithm"`

	// DataType is the presentation type of resolved output values.
	DataType DataTypes `json:"data_type"`

	// StartValue is the lower bound of the output value range.
	StartValue float32 `json:"start_value"`

	// EndValue is the upper bound of the output value range.
	EndValue float32 `json:"end_value"`

	// PointCount is the effective number of output samples, in [2,100].
	PointCount int `json:"point_count"`

	// ColorInterpolation indicates that output values interpolate
	// colors rather than plain numbers.
	ColorInterpolation bool `json:"color_interpolation"`

	// NodeSize is the host node display size in pixels.
	NodeSize [2]float32 `json:"node_size"`
}

// Defaults sets all fields to their documented default values:
// the two-point identity curve, [CatmullRom], [Float], range 0-1,
// and [DefaultPointCount] samples.
func (st *State) Defaults() {
	st.CurvePoints = []Point{{0, 0}, {1, 1}}
	st.InterpolationAlgorithm = CatmullRom
	st.DataType = Float
	st.StartValue = 0
	st.EndValue = 1
	st.PointCount = DefaultPointCount
	st.ColorInterpolation = false
	st.NodeSize = [2]float32{380, 480}
}

// Validate clamps out-of-range fields and substitutes defaults for
// invalid ones, in place. It never fails: after Validate the state is
// always usable.
func (st *State) Validate() {
	if len(st.CurvePoints) < MinPoints {
		st.CurvePoints = []Point{{0, 0}, {1, 1}}
	}
	if len(st.CurvePoints) > MaxPoints {
		st.CurvePoints = st.CurvePoints[:MaxPoints]
	}
	for i, p := range st.CurvePoints {
		st.CurvePoints[i] = p.clamp()
	}
	if st.InterpolationAlgorithm < 0 || st.InterpolationAlgorithm >= AlgorithmsN {
		st.InterpolationAlgorithm = CatmullRom
	}
	if st.DataType < 0 || st.DataType >= DataTypesN {
		st.DataType = Float
	}
	if st.PointCount < MinPoints || st.PointCount > MaxPointCount {
		st.PointCount = DefaultPointCount
	}
}

// Range returns the output value range [StartValue, EndValue].
func (st *State) Range() minmax.F32 {
	return minmax.F32{Min: st.StartValue, Max: st.EndValue}
}

// UnmarshalJSON decodes the state tolerantly: each field is decoded
// independently, and any missing or malformed field silently keeps
// its documented default, logged at a diagnostic level only.
func (st *State) UnmarshalJSON(data []byte) error {
	st.Defaults()
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		slog.Debug("curve.State: malformed snapshot, using defaults", "err", err)
		return nil
	}
	decode := func(name string, v any) {
		raw, ok := fields[name]
		if !ok {
			return
		}
		if err := json.Unmarshal(raw, v); err != nil {
			slog.Debug("curve.State: malformed field, using default", "field", name, "err", err)
		}
	}
	decode("curve_points", &st.CurvePoints)
	decode("interpolation_algorithm", &st.InterpolationAlgorithm)
	decode("data_type", &st.DataType)
	decode("start_value", &st.StartValue)
	decode("end_value", &st.EndValue)
	decode("point_count", &st.PointCount)
	decode("color_interpolation", &st.ColorInterpolation)
	decode("node_size", &st.NodeSize)
	st.Validate()
	return nil
}

// Open reads the state from the given JSON file.
func (st *State) Open(filename string) error {
	return jsonx.Open(st, filename)
}

// Save writes the state to the given JSON file.
func (st *State) Save(filename string) error {
	return jsonx.Save(st, filename)
}
