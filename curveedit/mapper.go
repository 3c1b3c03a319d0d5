// Copyright (c) 2025, the curveedit authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curveedit

import (
	"cogentcore.org/core/math32"

	"github.com/grinlau18/curveedit/curve"
)

// mapper converts between plot pixel space and normalized curve
// space. Pixel coordinates are content-local rendering dots: the
// framework has already resolved any mismatch between the backing
// resolution and the displayed size through the styles unit context,
// so a single fixed padding inset and the plot extent fully determine
// the transform. Curve space has its origin at the bottom left, so
// the Y axis is inverted relative to pixel space. curveToPixel and
// pixelToCurve are exact algebraic inverses for points inside the
// plot area.
type mapper struct {

	// size is the full content size in dots.
	size math32.Vector2

	// pad is the padding inset in dots on all four sides.
	pad float32
}

// plotSize returns the size of the plot area inside the padding.
func (mp *mapper) plotSize() math32.Vector2 {
	return math32.Vec2(mp.size.X-2*mp.pad, mp.size.Y-2*mp.pad)
}

// valid reports whether the plot area has positive extent,
// so that conversions are well defined.
func (mp *mapper) valid() bool {
	ps := mp.plotSize()
	return ps.X > 0 && ps.Y > 0
}

// curveToPixel converts a normalized curve-space point to
// content-local pixel coordinates.
func (mp *mapper) curveToPixel(p curve.Point) math32.Vector2 {
	ps := mp.plotSize()
	return math32.Vec2(mp.pad+p.X*ps.X, mp.pad+(1-p.Y)*ps.Y)
}

// pixelToCurve converts content-local pixel coordinates to a
// normalized curve-space point, clamped to [0,1]².
func (mp *mapper) pixelToCurve(pt math32.Vector2) curve.Point {
	ps := mp.plotSize()
	x := (pt.X - mp.pad) / ps.X
	y := 1 - (pt.Y-mp.pad)/ps.Y
	return curve.Pt(math32.Clamp(x, 0, 1), math32.Clamp(y, 0, 1))
}

// normDist converts a pixel distance to normalized curve units,
// using the smaller plot dimension so that a circular pixel radius
// is covered in both axes.
func (mp *mapper) normDist(px float32) float32 {
	ps := mp.plotSize()
	d := math32.Min(ps.X, ps.Y)
	if d <= 0 {
		return 0
	}
	return px / d
}
