// Copyright (c) 2025, the curveedit authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "cogentcore.org/core/math32"

// Algorithms are the supported curve interpolation algorithms.
type Algorithms int32 //enums:enum -transform snake

const (
	// Linear is piecewise-linear interpolation between
	// successive control points.
	Linear Algorithms = iota

	// CatmullRom is a uniform Catmull-Rom spline passing through all
	// control points, with tangents derived from neighboring points.
	CatmullRom
)

// Evaluate returns the curve's Y value at the given X position t,
// under the given algorithm, for the given control points (which must
// be sorted by ascending X, as [Curve] maintains). Outside the domain
// spanned by the points, the nearest boundary Y is returned (flat
// extrapolation). This is the single source of truth for curve
// evaluation: the renderer, the hit tester, and sample resolution all
// go through it, so drawn and computed values cannot diverge.
func Evaluate(alg Algorithms, t float32, pts []Point) float32 {
	switch len(pts) {
	case 0:
		return 0
	case 1:
		return pts[0].Y
	}
	if t <= pts[0].X {
		return pts[0].Y
	}
	if t >= pts[len(pts)-1].X {
		return pts[len(pts)-1].Y
	}
	i := segmentAt(t, pts)
	if i < 0 { // no bracketing segment: fall back to boundary
		return pts[len(pts)-1].Y
	}
	switch alg {
	case CatmullRom:
		return evalCatmullRom(t, pts, i)
	default:
		return evalLinear(t, pts, i)
	}
}

// segmentAt returns the index i of the segment (pts[i], pts[i+1])
// bracketing t by X, or -1 if none does.
func segmentAt(t float32, pts []Point) int {
	for i := 0; i < len(pts)-1; i++ {
		if t >= pts[i].X && t <= pts[i+1].X {
			return i
		}
	}
	return -1
}

// evalLinear interpolates linearly along segment i.
func evalLinear(t float32, pts []Point, i int) float32 {
	p1, p2 := pts[i], pts[i+1]
	if p2.X == p1.X {
		return p1.Y
	}
	s := (t - p1.X) / (p2.X - p1.X)
	return math32.Lerp(p1.Y, p2.Y, s)
}

// evalCatmullRom evaluates the uniform Catmull-Rom blend along
// segment i, duplicating the boundary neighbors at the ends.
func evalCatmullRom(t float32, pts []Point, i int) float32 {
	p1, p2 := pts[i], pts[i+1]
	if p2.X == p1.X {
		return p1.Y
	}
	p0, p3 := segmentNeighbors(pts, i)
	s := (t - p1.X) / (p2.X - p1.X)
	return catmullRomY(p0.Y, p1.Y, p2.Y, p3.Y, s)
}

// segmentNeighbors returns the outer neighbor points p0 and p3 for
// segment i, duplicating the segment endpoints at the boundaries.
func segmentNeighbors(pts []Point, i int) (p0, p3 Point) {
	p0 = pts[i]
	if i > 0 {
		p0 = pts[i-1]
	}
	p3 = pts[i+1]
	if i+2 < len(pts) {
		p3 = pts[i+2]
	}
	return
}

// catmullRomY applies the uniform Catmull-Rom cubic blend to four
// Y values at local parameter s in [0,1].
func catmullRomY(y0, y1, y2, y3, s float32) float32 {
	return 0.5 * (2*y1 +
		(-y0+y2)*s +
		(2*y0-5*y1+4*y2-y3)*s*s +
		(-y0+3*y1-3*y2+y3)*s*s*s)
}

// SampleSegment returns steps+1 points along segment i of the curve,
// at evenly spaced values of the local parameter, under the given
// algorithm. It is used by spline-mode hit testing, where the visible
// curve deviates from the straight control polygon.
func SampleSegment(alg Algorithms, pts []Point, i, steps int) []math32.Vector2 {
	if i < 0 || i+1 >= len(pts) || steps < 1 {
		return nil
	}
	p1, p2 := pts[i], pts[i+1]
	p0, p3 := segmentNeighbors(pts, i)
	out := make([]math32.Vector2, steps+1)
	for j := 0; j <= steps; j++ {
		s := float32(j) / float32(steps)
		x := math32.Lerp(p1.X, p2.X, s)
		var y float32
		if alg == CatmullRom {
			y = catmullRomY(p0.Y, p1.Y, p2.Y, p3.Y, s)
		} else {
			y = math32.Lerp(p1.Y, p2.Y, s)
		}
		out[j] = math32.Vec2(x, y)
	}
	return out
}

// BezierControls returns the two inner control points of the cubic
// Bezier segment that exactly reproduces the Catmull-Rom blend along
// segment i: X is linear in the local parameter (inner X values at
// the thirds) and the Bezier Y cubic matches the blend's endpoint
// values and tangents. The renderer chains these through CubicTo so
// the drawn path is identical to what [Evaluate] computes.
func BezierControls(pts []Point, i int) (c1, c2 math32.Vector2) {
	p1, p2 := pts[i], pts[i+1]
	p0, p3 := segmentNeighbors(pts, i)
	dx := p2.X - p1.X
	m1 := 0.5 * (p2.Y - p0.Y) // blend tangent at s=0
	m2 := 0.5 * (p3.Y - p1.Y) // blend tangent at s=1
	c1 = math32.Vec2(p1.X+dx/3, p1.Y+m1/3)
	c2 = math32.Vec2(p2.X-dx/3, p2.Y-m2/3)
	return
}
