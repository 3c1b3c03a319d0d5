// Copyright (c) 2025, the curveedit authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "cogentcore.org/core/math32"

const (
	// LinearHitThreshold is the maximum normalized distance from a
	// straight curve segment at which a click still hits it.
	LinearHitThreshold = 0.05

	// SplineHitThreshold is the maximum normalized distance from a
	// sampled spline segment at which a click still hits it. It is
	// tighter than [LinearHitThreshold] because the visible curve
	// deviates from the straight control polygon.
	SplineHitThreshold = 0.03

	// SplineHitSamples is the number of parametric steps used to
	// sample each spline segment for nearest-segment search.
	SplineHitSamples = 20
)

// DistanceToSegment returns the distance from q to the finite line
// segment from a to b, clamped to the nearest endpoint when the
// perpendicular projection falls outside the segment.
func DistanceToSegment(q, a, b math32.Vector2) float32 {
	if a == b {
		return q.DistanceTo(a)
	}
	l := math32.NewLine2(a, b)
	return l.ClosestPointToPoint(q).DistanceTo(q)
}

// NearestSegment returns the index i of the curve segment
// (pts[i], pts[i+1]) nearest to the query point, under the given
// algorithm, or -1 if no segment is within the hit threshold.
// A newly inserted point should be spliced after index i; because
// [Curve.Insert] re-sorts by X this index only gates acceptance.
// In [Linear] mode the distance is computed directly against each
// control point pair; in [CatmullRom] mode each segment's curve is
// sampled at [SplineHitSamples] steps and the minimum point distance
// is used, under the tighter [SplineHitThreshold].
func NearestSegment(alg Algorithms, pts []Point, q Point) int {
	qv := q.Vector2()
	best := -1
	var bestDist float32
	threshold := float32(LinearHitThreshold)
	if alg == CatmullRom {
		threshold = SplineHitThreshold
	}
	for i := 0; i < len(pts)-1; i++ {
		var d float32
		if alg == CatmullRom {
			d = sampledSegmentDistance(alg, pts, i, qv)
		} else {
			d = DistanceToSegment(qv, pts[i].Vector2(), pts[i+1].Vector2())
		}
		if d <= threshold && (best < 0 || d < bestDist) {
			best = i
			bestDist = d
		}
	}
	return best
}

// sampledSegmentDistance returns the minimum Euclidean distance from
// q to the sampled points of segment i.
func sampledSegmentDistance(alg Algorithms, pts []Point, i int, q math32.Vector2) float32 {
	smp := SampleSegment(alg, pts, i, SplineHitSamples)
	d := float32(math32.MaxFloat32)
	for _, sp := range smp {
		d = math32.Min(d, sp.DistanceTo(q))
	}
	return d
}

const (
	// gridSnapBase is the base snap distance in normalized units.
	gridSnapBase = 0.02

	// gridSnapRefCount is the gridline count at which the full base
	// snap distance applies; denser grids get a tighter radius.
	gridSnapRefCount = 10

	// gridSnapMinFactor is the lower clamp on the density scaling,
	// as a fraction of [gridSnapBase].
	gridSnapMinFactor = 0.3
)

// GridSnap snaps X coordinates to a set of evenly spaced gridlines.
// The gridline positions and the density-dependent snap threshold are
// cached per grid count and recomputed only when the count changes.
type GridSnap struct {
	count     int
	lines     []float32
	threshold float32
}

// NewGridSnap returns a new [GridSnap] for the given gridline count,
// clamped to [1,50].
func NewGridSnap(count int) *GridSnap {
	gs := &GridSnap{}
	gs.SetCount(count)
	return gs
}

// Count returns the current gridline count.
func (gs *GridSnap) Count() int {
	return gs.count
}

// SetCount sets the gridline count, clamped to [1,50], rebuilding the
// cached gridline positions and snap threshold if it changed.
func (gs *GridSnap) SetCount(count int) {
	count = min(max(count, 1), 50)
	if count == gs.count {
		return
	}
	gs.count = count
	gs.lines = make([]float32, count+1)
	for i := 0; i <= count; i++ {
		gs.lines[i] = float32(i) / float32(count)
	}
	factor := math32.Clamp(gridSnapRefCount/float32(count), gridSnapMinFactor, 1)
	gs.threshold = gridSnapBase * factor
}

// Lines returns the cached gridline X positions, including 0 and 1.
// The result must not be modified.
func (gs *GridSnap) Lines() []float32 {
	return gs.lines
}

// Threshold returns the current density-scaled snap distance.
func (gs *GridSnap) Threshold() float32 {
	return gs.threshold
}

// Snap returns x snapped to the nearest gridline if within the
// density-scaled threshold, otherwise x unchanged.
func (gs *GridSnap) Snap(x float32) float32 {
	if len(gs.lines) == 0 {
		return x
	}
	step := 1 / float32(gs.count)
	i := int(math32.Round(x / step))
	if i < 0 || i >= len(gs.lines) {
		return x
	}
	g := gs.lines[i]
	if math32.Abs(x-g) <= gs.threshold {
		return g
	}
	return x
}

// SnapEdge snaps v directly to 0 or 1 when within the given
// threshold of either, independent of the grid. Edge snapping runs
// before grid snapping, so domain boundaries always win.
func SnapEdge(v, threshold float32) float32 {
	if v <= threshold {
		return 0
	}
	if v >= 1-threshold {
		return 1
	}
	return v
}
