// Copyright (c) 2025, the curveedit authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve implements a one-dimensional shaping function defined
// by an ordered set of 2D control points in normalized [0,1]² space,
// with linear and Catmull-Rom interpolation, hit testing, snapping,
// and sample resolution. It has no rendering or windowing dependencies
// and is used by the curveedit widget and by anything else that needs
// curve-transformed values.
package curve

//go:generate core generate

import (
	"cmp"
	"log/slog"
	"slices"

	"cogentcore.org/core/math32"
)

const (
	// MinPoints is the minimum number of control points in a curve.
	// Deletions that would go below this are no-ops.
	MinPoints = 2

	// MaxPoints is the maximum number of control points in a curve.
	// Insertions beyond this are silently ignored.
	MaxPoints = 50
)

// Point is a control point in normalized [0,1]² curve space.
// The origin is at the bottom left: Y increases upward.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Pt returns a new [Point] with the given coordinates.
func Pt(x, y float32) Point {
	return Point{x, y}
}

// Vector2 returns the point as a [math32.Vector2].
func (p Point) Vector2() math32.Vector2 {
	return math32.Vec2(p.X, p.Y)
}

// clamp clamps both coordinates to [0,1].
func (p Point) clamp() Point {
	return Point{math32.Clamp(p.X, 0, 1), math32.Clamp(p.Y, 0, 1)}
}

// Curve is an ordered sequence of control points, sorted by ascending
// X, together with the interpolation algorithm used to evaluate it.
// All mutators maintain the invariants: point count in
// [[MinPoints],[MaxPoints]], all coordinates in [0,1], sequence sorted
// by X. The first and last points are domain boundary anchors: their X
// cannot be changed by [Curve.Move] and they cannot be deleted.
type Curve struct {
	points    []Point
	algorithm Algorithms
}

// NewCurve returns a new [Curve] with the default two-point identity
// configuration (0,0) → (1,1) and the [CatmullRom] algorithm.
func NewCurve() *Curve {
	c := &Curve{}
	c.Reset()
	return c
}

// Reset restores the default two-point identity curve and the
// [CatmullRom] algorithm.
func (c *Curve) Reset() {
	c.points = []Point{{0, 0}, {1, 1}}
	c.algorithm = CatmullRom
}

// Points returns the ordered control point sequence.
// The result must not be modified; use the mutator methods.
func (c *Curve) Points() []Point {
	return c.points
}

// NumPoints returns the number of control points.
func (c *Curve) NumPoints() int {
	return len(c.points)
}

// Point returns the control point at the given index,
// or the zero point if the index is out of range.
func (c *Curve) Point(i int) Point {
	if i < 0 || i >= len(c.points) {
		return Point{}
	}
	return c.points[i]
}

// Algorithm returns the current interpolation algorithm.
func (c *Curve) Algorithm() Algorithms {
	return c.algorithm
}

// SetAlgorithm sets the interpolation algorithm.
func (c *Curve) SetAlgorithm(alg Algorithms) {
	c.algorithm = alg
}

// SetPoints replaces the control point sequence wholesale, as when
// applying a preset or a persisted snapshot. Coordinates are clamped
// to [0,1] and the sequence is sorted by X; points beyond [MaxPoints]
// are dropped. If fewer than [MinPoints] points are given, the curve
// is reset to the default identity configuration instead.
func (c *Curve) SetPoints(pts []Point) {
	if len(pts) < MinPoints {
		slog.Debug("curve.SetPoints: too few points, using default curve", "n", len(pts))
		c.points = []Point{{0, 0}, {1, 1}}
		return
	}
	if len(pts) > MaxPoints {
		pts = pts[:MaxPoints]
	}
	c.points = make([]Point, len(pts))
	for i, p := range pts {
		c.points[i] = p.clamp()
	}
	c.sort()
}

// Insert adds a new control point, clamped to [0,1], keeping the
// sequence sorted by X, and returns the index at which it landed.
// If the curve is already at [MaxPoints], the insert is silently
// ignored and -1 is returned.
func (c *Curve) Insert(p Point) int {
	if len(c.points) >= MaxPoints {
		slog.Debug("curve.Insert: at maximum points, ignoring", "max", MaxPoints)
		return -1
	}
	p = p.clamp()
	c.points = append(c.points, p)
	c.sort()
	return c.indexOf(p)
}

// Move sets the coordinates of the control point at index i, clamped
// to [0,1], re-sorts the sequence by X, and returns the point's new
// index. The first and last points keep their X (only Y is mutable),
// preserving a well-defined domain boundary. An out-of-range index is
// a no-op returning -1.
func (c *Curve) Move(i int, to Point) int {
	if i < 0 || i >= len(c.points) {
		return -1
	}
	to = to.clamp()
	if i == 0 || i == len(c.points)-1 {
		to.X = c.points[i].X
	}
	c.points[i] = to
	c.sort()
	return c.indexOf(to)
}

// Delete removes the control point at index i and reports whether it
// did. Boundary points (first and last) are never deleted, and a
// deletion only happens when at least 3 points are present, so that
// at least [MinPoints] always remain.
func (c *Curve) Delete(i int) bool {
	if i <= 0 || i >= len(c.points)-1 {
		return false
	}
	if len(c.points) <= MinPoints {
		return false
	}
	c.points = slices.Delete(c.points, i, i+1)
	return true
}

// Clone returns a deep copy of the curve.
func (c *Curve) Clone() *Curve {
	return &Curve{points: slices.Clone(c.points), algorithm: c.algorithm}
}

// sort stably sorts the points by ascending X.
func (c *Curve) sort() {
	slices.SortStableFunc(c.points, func(a, b Point) int {
		return cmp.Compare(a.X, b.X)
	})
}

// indexOf recovers the index of a just-mutated point by matching its
// coordinates after a re-sort.
func (c *Curve) indexOf(p Point) int {
	for i, cp := range c.points {
		if cp == p {
			return i
		}
	}
	return -1
}
