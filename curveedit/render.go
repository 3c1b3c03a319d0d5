// Copyright (c) 2025, the curveedit authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curveedit

import (
	"fmt"
	"image"
	"image/draw"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"
	"cogentcore.org/core/styles"

	"github.com/grinlau18/curveedit/curve"
)

const (
	// markerRadius is the control point marker radius in dots.
	markerRadius = 5

	// labelOffset is the offset of a point's coordinate label from
	// its marker, in dots.
	labelOffset = 8
)

// renderState is the two-layer render pipeline state owned by one
// editor instance. The background layer (grid, axes, axis labels) is
// cached as an image and redrawn only when the gridline count or the
// content size changes; the foreground layer (curve path, markers,
// labels, title) is redrawn on every repaint on top of a blit of the
// background.
type renderState struct {

	// background is the cached background layer.
	background *image.RGBA

	// backgroundCount is the gridline count the background was
	// rendered with.
	backgroundCount int

	// backgroundSize is the size the background was rendered at.
	backgroundSize image.Point

	// image is the composite output blitted into the scene.
	image *image.RGBA
}

// paintCurve repaints the editor into its offscreen image and flags
// the widget for render. If the content area is not yet sized, the
// repaint is deferred: [CurveEditor.SizeFinal] retries it.
func (ce *CurveEditor) paintCurve() {
	sz := ce.Geom.Size.Actual.Content.ToPoint()
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	mp := ce.mapper()
	if !mp.valid() {
		return
	}
	ce.grid.SetCount(min(ce.effectivePointCount(), maxGridLines))

	ce.ensureBackground(sz)

	pc := paint.NewContext(sz.X, sz.Y)
	pc.UnitContext = ce.Styles.UnitContext
	pc.ToDots()
	pc.DrawImage(ce.render.background, 0, 0)
	ce.drawCurve(pc, mp)
	ce.drawPoints(pc, mp)
	ce.drawTitle(pc, mp)
	ce.render.image = pc.Image

	ce.NeedsRender()
}

// ensureBackground rebuilds the cached background layer if the
// gridline count or the content size changed since it was drawn.
func (ce *CurveEditor) ensureBackground(sz image.Point) {
	count := ce.grid.Count()
	rs := &ce.render
	if rs.background != nil && rs.backgroundCount == count && rs.backgroundSize == sz {
		return
	}
	pc := paint.NewContext(sz.X, sz.Y)
	pc.UnitContext = ce.Styles.UnitContext
	pc.ToDots()
	mp := ce.mapper()

	pc.FillBox(math32.Vector2{}, math32.Vec2(float32(sz.X), float32(sz.Y)), colors.Scheme.Surface)

	// gridlines, vertical at each cached snap position and
	// horizontal at quarters
	pc.StrokeStyle.Width.Dp(1)
	pc.ToDots()
	pc.StrokeStyle.Color = colors.Scheme.OutlineVariant
	for _, gx := range ce.grid.Lines() {
		top := mp.curveToPixel(curve.Pt(gx, 1))
		bot := mp.curveToPixel(curve.Pt(gx, 0))
		pc.MoveTo(top.X, top.Y)
		pc.LineTo(bot.X, bot.Y)
	}
	for i := 1; i < 4; i++ {
		gy := float32(i) / 4
		lf := mp.curveToPixel(curve.Pt(0, gy))
		rt := mp.curveToPixel(curve.Pt(1, gy))
		pc.MoveTo(lf.X, lf.Y)
		pc.LineTo(rt.X, rt.Y)
	}
	pc.Stroke()

	// axes
	pc.StrokeStyle.Color = colors.Scheme.Outline
	orig := mp.curveToPixel(curve.Pt(0, 0))
	xend := mp.curveToPixel(curve.Pt(1, 0))
	yend := mp.curveToPixel(curve.Pt(0, 1))
	pc.MoveTo(yend.X, yend.Y)
	pc.LineTo(orig.X, orig.Y)
	pc.LineTo(xend.X, xend.Y)
	pc.Stroke()

	// axis value labels at the domain boundaries
	ce.drawLabel(pc, ce.axisLabel(0), orig.Add(math32.Vec2(-labelOffset, labelOffset)))
	ce.drawLabel(pc, ce.axisLabel(1), yend.Add(math32.Vec2(-labelOffset, -labelOffset)))

	rs.background = pc.Image
	rs.backgroundCount = count
	rs.backgroundSize = sz
}

// axisLabel formats the output value at normalized position t under
// the configured range and data type.
func (ce *CurveEditor) axisLabel(t float32) string {
	if ce.Percent {
		return fmt.Sprintf("%g%%", 100*t)
	}
	v := math32.Lerp(ce.StartValue, ce.EndValue, t)
	return ce.DataType.Format(v)
}

// drawCurve strokes the curve path: straight segments in linear mode,
// or the exact cubic Bezier form of each Catmull-Rom segment in
// spline mode, chained through CubicTo so the rasterizer adapts the
// sampling density to segment length.
func (ce *CurveEditor) drawCurve(pc *paint.Context, mp mapper) {
	pts := ce.Curve.Points()
	if len(pts) < 2 {
		return
	}
	pc.StrokeStyle.Width.Dp(2)
	pc.ToDots()
	pc.StrokeStyle.Color = colors.Scheme.Primary.Base
	first := mp.curveToPixel(pts[0])
	pc.MoveTo(first.X, first.Y)
	for i := 0; i < len(pts)-1; i++ {
		end := mp.curveToPixel(pts[i+1])
		if ce.Curve.Algorithm() == curve.CatmullRom {
			c1, c2 := curve.BezierControls(pts, i)
			b1 := mp.curveToPixel(curve.Pt(c1.X, c1.Y))
			b2 := mp.curveToPixel(curve.Pt(c2.X, c2.Y))
			pc.CubicTo(b1.X, b1.Y, b2.X, b2.Y, end.X, end.Y)
		} else {
			pc.LineTo(end.X, end.Y)
		}
	}
	pc.Stroke()
}

// drawPoints draws the control point markers, color-coded by state
// (normal, hovered, dragging), with per-point coordinate labels.
func (ce *CurveEditor) drawPoints(pc *paint.Context, mp mapper) {
	pc.StrokeStyle.Color = nil
	for i, p := range ce.Curve.Points() {
		pp := mp.curveToPixel(p)
		clr := colors.Scheme.Primary.Base
		switch i {
		case ce.draggingPoint:
			clr = colors.Scheme.Error.Base
		case ce.hoverPoint:
			clr = colors.Scheme.Tertiary.Base
		}
		pc.FillStyle.Color = clr
		pc.DrawCircle(pp.X, pp.Y, markerRadius)
		pc.FillStrokeClear()
		lbl := fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
		ce.drawLabel(pc, lbl, pp.Add(math32.Vec2(labelOffset, -labelOffset)))
	}
}

// drawTitle draws the title centered above the plot area.
func (ce *CurveEditor) drawTitle(pc *paint.Context, mp mapper) {
	if ce.Title == "" {
		return
	}
	top := mp.curveToPixel(curve.Pt(0.5, 1))
	ce.drawLabel(pc, ce.Title, math32.Vec2(top.X, 2))
}

// drawLabel renders a single text label at the given position,
// in the widget's text color.
func (ce *CurveEditor) drawLabel(pc *paint.Context, s string, pos math32.Vector2) {
	fs := &styles.FontRender{}
	fs.Defaults()
	fs.Size.Dp(11)
	fs.Color = colors.Scheme.OnSurfaceVariant
	ts := &styles.Text{}
	ts.Defaults()
	var tx paint.Text
	tx.SetHTML(s, fs, ts, &pc.UnitContext, nil)
	sz := math32.Vec2(0.75*fs.Size.Dots*float32(len(s)), fs.Size.Dots*2)
	tx.Layout(ts, fs, &pc.UnitContext, sz)
	tx.Render(pc, pos)
}

func (ce *CurveEditor) Render() {
	ce.WidgetBase.Render()

	r := ce.Geom.ContentBBox
	sp := ce.Geom.ScrollOffset()
	if ce.render.image == nil {
		draw.Draw(ce.Scene.Pixels, r, colors.Scheme.Surface, sp, draw.Src)
		return
	}
	draw.Draw(ce.Scene.Pixels, r, ce.render.image, sp, draw.Src)
}
