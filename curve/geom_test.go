// Copyright (c) 2025, the curveedit authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	chewxy "github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestDistanceToSegment(t *testing.T) {
	a := math32.Vec2(0, 0)
	b := math32.Vec2(1, 0)
	tolassert.EqualTol(t, 0.5, DistanceToSegment(math32.Vec2(0.5, 0.5), a, b), tol)
	tolassert.EqualTol(t, 0, DistanceToSegment(math32.Vec2(0.25, 0), a, b), tol)
	// projection beyond the end clamps to the endpoint
	tolassert.EqualTol(t, chewxy.Sqrt(2), DistanceToSegment(math32.Vec2(2, 1), a, b), tol)
	// degenerate segment
	tolassert.EqualTol(t, 1, DistanceToSegment(math32.Vec2(1, 0), a, a), tol)
}

func TestNearestSegmentLinear(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}}
	assert.Equal(t, 0, NearestSegment(Linear, pts, Pt(0.5, 0.52)))
	assert.Equal(t, -1, NearestSegment(Linear, pts, Pt(0.5, 0.9)))

	pts = []Point{{0, 0}, {0.5, 0.5}, {1, 0}}
	assert.Equal(t, 1, NearestSegment(Linear, pts, Pt(0.75, 0.27)))
}

func TestNearestSegmentSpline(t *testing.T) {
	// at the midpoint of the middle segment the spline passes through
	// y=0.5, while the control polygon is offset from it
	q := Pt(0.5, Evaluate(CatmullRom, 0.5, easeInOut)+0.02)
	assert.Equal(t, 1, NearestSegment(CatmullRom, easeInOut, q))
	assert.Equal(t, -1, NearestSegment(CatmullRom, easeInOut, Pt(0.5, 0.95)))
}

func TestGridSnapThreshold(t *testing.T) {
	gs := NewGridSnap(10)
	tolassert.EqualTol(t, 0.02, gs.Threshold(), tol)
	gs.SetCount(5) // sparser grids clamp at the full base distance
	tolassert.EqualTol(t, 0.02, gs.Threshold(), tol)
	gs.SetCount(50) // denser grids clamp at 30% of the base distance
	tolassert.EqualTol(t, 0.006, gs.Threshold(), tol)
}

func TestGridSnapCache(t *testing.T) {
	gs := NewGridSnap(10)
	assert.Equal(t, 11, len(gs.Lines()))
	lines := gs.Lines()
	gs.SetCount(10) // unchanged count keeps the cache
	assert.Equal(t, &lines[0], &gs.Lines()[0])
	gs.SetCount(4)
	assert.Equal(t, 5, len(gs.Lines()))
	tolassert.EqualTol(t, 0.25, gs.Lines()[1], tol)
	// counts are clamped to [1,50]
	gs.SetCount(0)
	assert.Equal(t, 1, gs.Count())
	gs.SetCount(1000)
	assert.Equal(t, 50, gs.Count())
}

func TestGridSnap(t *testing.T) {
	gs := NewGridSnap(10)
	tolassert.EqualTol(t, 0.3, gs.Snap(0.31), tol)
	tolassert.EqualTol(t, 0.35, gs.Snap(0.35), tol)
	tolassert.EqualTol(t, 0, gs.Snap(0.01), tol)
	tolassert.EqualTol(t, 1, gs.Snap(0.995), tol)
}

func TestSnapEdge(t *testing.T) {
	tolassert.EqualTol(t, 0, SnapEdge(0.01, 0.02), tol)
	tolassert.EqualTol(t, 1, SnapEdge(0.99, 0.02), tol)
	tolassert.EqualTol(t, 0.5, SnapEdge(0.5, 0.02), tol)
	tolassert.EqualTol(t, 0.03, SnapEdge(0.03, 0.02), tol)
}
