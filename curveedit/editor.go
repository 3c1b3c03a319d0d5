// Copyright (c) 2025, the curveedit authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curveedit provides an interactive curve editor widget for
// defining a one-dimensional shaping function by dragging, inserting,
// and deleting control points on a 2D plot, with piecewise-linear and
// Catmull-Rom interpolation.
package curveedit

//go:generate core generate

import (
	"slices"
	"time"

	"cogentcore.org/core/core"
	"cogentcore.org/core/cursors"
	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/abilities"
	"cogentcore.org/core/styles/states"
	"cogentcore.org/core/styles/units"

	"github.com/grinlau18/curveedit/curve"
)

const (
	// selectRadiusPx is the pixel radius within which a pointer press
	// selects an existing control point.
	selectRadiusPx = 15

	// edgeSnapPx is the pixel distance within which a dragged
	// coordinate snaps directly to 0 or 1.
	edgeSnapPx = 6

	// dragInterval is the minimum time between processed drag move
	// updates (about 60 per second).
	dragInterval = 16 * time.Millisecond

	// maxGridLines is the maximum number of displayed gridlines,
	// regardless of the effective point count.
	maxGridLines = 50
)

// CurveEditor is a widget for interactively editing a [curve.Curve]:
// primary-button press and drag moves a control point (or inserts one
// when pressing on the curve away from existing points), secondary
// click deletes an interior point, and double click resets the curve.
// It sends [events.Input] on every point mutation and [events.Change]
// when an edit completes. Rendering is two-layered: the grid and axes
// are cached in a background image invalidated only when the gridline
// count or size changes, while the curve, markers, and labels are
// redrawn on a debounced schedule.
type CurveEditor struct {
	core.WidgetBase

	// Curve is the curve being edited.
	Curve *curve.Curve `set:"-"`

	// Title is drawn centered above the plot.
	Title string

	// DataType is the presentation type used for axis value labels.
	DataType curve.DataTypes

	// StartValue is the lower bound of the output value range.
	StartValue float32

	// EndValue is the upper bound of the output value range.
	EndValue float32

	// Percent displays values as 0-100% instead of the
	// StartValue-EndValue range.
	Percent bool

	// PointCount is the effective number of output samples, which
	// also sizes the display grid. It is ignored if [CurveEditor.PointCountFunc]
	// is set.
	PointCount int

	// PointCountFunc, if set, supplies the effective point count from
	// an external source. It is polled on every repaint, and a change
	// invalidates the cached background grid.
	PointCountFunc func() int

	// ColorInterpolation indicates that output values interpolate
	// colors; it is carried through the state snapshot for external
	// consumers and does not affect editing.
	ColorInterpolation bool

	// PlotPadding is the inset between the widget content edge and
	// the plot area.
	PlotPadding units.Value

	// ephemeral interaction state, reset on reload:

	// draggingPoint is the index of the point being dragged, or -1.
	draggingPoint int

	// hoverPoint is the index of the hovered point, or -1.
	hoverPoint int

	// grid caches gridline positions and the snap threshold.
	grid *curve.GridSnap

	// lastDrag is the time of the last processed drag move.
	lastDrag time.Time

	// render is the two-layer render pipeline state.
	render renderState

	// repaint is the debounced repaint scheduler state.
	repaint repaintState
}

func (ce *CurveEditor) Init() {
	ce.WidgetBase.Init()
	ce.Curve = curve.NewCurve()
	ce.Title = "Curve"
	ce.EndValue = 1
	ce.PointCount = curve.DefaultPointCount
	ce.PlotPadding.Dp(30)
	ce.draggingPoint = -1
	ce.hoverPoint = -1
	ce.grid = curve.NewGridSnap(ce.PointCount)

	ce.Styler(func(s *styles.Style) {
		s.SetAbilities(!ce.IsReadOnly(), abilities.Activatable, abilities.Slideable,
			abilities.Hoverable, abilities.DoubleClickable)
		s.Min.Set(units.Dp(380), units.Dp(300))
		if !ce.IsReadOnly() {
			s.Cursor = cursors.Crosshair
			if s.Is(states.Sliding) || s.Is(states.Active) {
				s.Cursor = cursors.Grabbing
			}
		}
	})

	ce.On(events.SlideStart, func(e events.Event) {
		e.SetHandled()
		i, _ := ce.press(e)
		if i < 0 {
			return
		}
		ce.draggingPoint = i
		ce.lastDrag = time.Time{}
		ce.scheduleRepaint()
	})
	ce.On(events.SlideMove, func(e events.Event) {
		e.SetHandled()
		if ce.draggingPoint < 0 {
			return
		}
		if time.Since(ce.lastDrag) < dragInterval {
			return
		}
		ce.lastDrag = time.Now()
		ce.dragTo(e)
	})
	ce.On(events.SlideStop, func(e events.Event) {
		e.SetHandled()
		if ce.draggingPoint < 0 {
			return
		}
		ce.dragTo(e)
		ce.draggingPoint = -1
		ce.SendChange(e)
		ce.scheduleRepaint()
	})
	ce.On(events.Click, func(e events.Event) {
		// a press-release without any drag still inserts a point
		// when it lands on the curve away from existing points.
		// clicking an existing point mutates nothing, so it sends
		// no Change.
		if _, inserted := ce.press(e); inserted {
			ce.SendChange(e)
			ce.scheduleRepaint()
		}
	})
	ce.On(events.ContextMenu, func(e events.Event) {
		e.SetHandled()
		mp := ce.mapper()
		if !mp.valid() {
			return
		}
		i := ce.pointAt(mp.pixelToCurve(ce.localPos(e)), mp)
		if i < 0 || !ce.Curve.Delete(i) {
			return
		}
		ce.hoverPoint = -1
		ce.SendChange(e)
		ce.scheduleRepaint()
	})
	ce.On(events.DoubleClick, func(e events.Event) {
		e.SetHandled()
		ce.Curve.Reset()
		ce.draggingPoint = -1
		ce.hoverPoint = -1
		ce.SendChange(e)
		ce.scheduleRepaint()
	})
	ce.On(events.MouseMove, func(e events.Event) {
		mp := ce.mapper()
		if !mp.valid() {
			return
		}
		hov := ce.pointAt(mp.pixelToCurve(ce.localPos(e)), mp)
		if hov != ce.hoverPoint {
			ce.hoverPoint = hov
			ce.scheduleRepaint()
		}
	})
	ce.On(events.MouseLeave, func(e events.Event) {
		if ce.hoverPoint >= 0 {
			ce.hoverPoint = -1
			ce.scheduleRepaint()
		}
	})
}

// localPos returns the event position in content-local pixels.
func (ce *CurveEditor) localPos(e events.Event) math32.Vector2 {
	return math32.FromPoint(e.Pos().Sub(ce.Geom.ContentBBox.Min))
}

// mapper returns the coordinate mapper for the current geometry.
func (ce *CurveEditor) mapper() mapper {
	return mapper{
		size: ce.Geom.Size.Actual.Content,
		pad:  ce.PlotPadding.ToDots(&ce.Styles.UnitContext),
	}
}

// pointAt returns the index of the control point within the selection
// radius of the given curve-space position, or -1. The nearest
// qualifying point wins.
func (ce *CurveEditor) pointAt(cp curve.Point, mp mapper) int {
	radius := mp.normDist(selectRadiusPx)
	qv := cp.Vector2()
	best := -1
	var bestDist float32
	for i, p := range ce.Curve.Points() {
		d := p.Vector2().DistanceTo(qv)
		if d <= radius && (best < 0 || d < bestDist) {
			best = i
			bestDist = d
		}
	}
	return best
}

// press resolves a primary-button press: an existing point within the
// selection radius is selected, otherwise a point is inserted on the
// nearest curve segment within the hit threshold. It returns the
// index of the selected or inserted point, or -1 when the press
// landed on neither, and reports whether a point was inserted.
func (ce *CurveEditor) press(e events.Event) (int, bool) {
	mp := ce.mapper()
	if !mp.valid() {
		return -1, false
	}
	cp := mp.pixelToCurve(ce.localPos(e))
	if i := ce.pointAt(cp, mp); i >= 0 {
		return i, false
	}
	pts := ce.Curve.Points()
	if curve.NearestSegment(ce.Curve.Algorithm(), pts, cp) < 0 {
		return -1, false
	}
	i := ce.Curve.Insert(cp)
	if i >= 0 {
		ce.Send(events.Input, e)
	}
	return i, i >= 0
}

// dragTo moves the dragged point to the event position, applying edge
// snapping, then grid snapping, then clamping, with the sequence
// re-sorted and the dragged index recovered. The first and last
// points only move in Y.
func (ce *CurveEditor) dragTo(e events.Event) {
	mp := ce.mapper()
	if !mp.valid() {
		return
	}
	cp := mp.pixelToCurve(ce.localPos(e))
	thr := mp.normDist(edgeSnapPx)
	cp.X = curve.SnapEdge(cp.X, thr)
	cp.Y = curve.SnapEdge(cp.Y, thr)
	cp.X = ce.grid.Snap(cp.X)
	ce.draggingPoint = ce.Curve.Move(ce.draggingPoint, cp)
	ce.Send(events.Input, e)
	ce.scheduleRepaint()
}

// SetAlgorithm sets the curve interpolation algorithm and repaints.
func (ce *CurveEditor) SetAlgorithm(alg curve.Algorithms) *CurveEditor {
	ce.Curve.SetAlgorithm(alg)
	ce.scheduleRepaint()
	return ce
}

// ApplyPreset replaces the curve's control points with the named
// built-in preset and repaints.
func (ce *CurveEditor) ApplyPreset(name string) error {
	err := ce.Curve.ApplyPreset(name)
	if err != nil {
		return err
	}
	ce.draggingPoint = -1
	ce.hoverPoint = -1
	ce.SendChange()
	ce.scheduleRepaint()
	return nil
}

// effectivePointCount returns the effective output point count,
// polling [CurveEditor.PointCountFunc] when set, clamped to
// [[curve.MinPoints], [curve.MaxPointCount]].
func (ce *CurveEditor) effectivePointCount() int {
	n := ce.PointCount
	if ce.PointCountFunc != nil {
		n = ce.PointCountFunc()
	}
	return min(max(n, curve.MinPoints), curve.MaxPointCount)
}

// Resolved returns the curve's output samples at the effective point
// count, remapped into the configured value range.
func (ce *CurveEditor) Resolved() []curve.Sample {
	rng := minmax.F32{Min: ce.StartValue, Max: ce.EndValue}
	return curve.Resolve(ce.Curve, ce.effectivePointCount(), rng, ce.Percent)
}

// Snapshot returns the persistable plain-data state of the editor.
func (ce *CurveEditor) Snapshot() curve.State {
	var st curve.State
	st.Defaults()
	st.CurvePoints = slices.Clone(ce.Curve.Points())
	st.InterpolationAlgorithm = ce.Curve.Algorithm()
	st.DataType = ce.DataType
	st.StartValue = ce.StartValue
	st.EndValue = ce.EndValue
	st.PointCount = ce.PointCount
	st.ColorInterpolation = ce.ColorInterpolation
	sz := ce.Geom.Size.Actual.Total
	if sz.X > 0 && sz.Y > 0 {
		st.NodeSize = [2]float32{sz.X, sz.Y}
	}
	return st
}

// ApplySnapshot restores the editor from a persisted state snapshot,
// validating it first so that malformed fields fall back to defaults.
// Ephemeral interaction state is reset.
func (ce *CurveEditor) ApplySnapshot(st *curve.State) {
	st.Validate()
	ce.Curve.SetPoints(st.CurvePoints)
	ce.Curve.SetAlgorithm(st.InterpolationAlgorithm)
	ce.DataType = st.DataType
	ce.StartValue = st.StartValue
	ce.EndValue = st.EndValue
	ce.PointCount = st.PointCount
	ce.ColorInterpolation = st.ColorInterpolation
	ce.draggingPoint = -1
	ce.hoverPoint = -1
	ce.scheduleRepaint()
}

func (ce *CurveEditor) SizeFinal() {
	ce.WidgetBase.SizeFinal()
	ce.paintCurve() // deferred renders retry here once sized
}

func (ce *CurveEditor) Destroy() {
	ce.stopRepaint()
	ce.WidgetBase.Destroy()
}
