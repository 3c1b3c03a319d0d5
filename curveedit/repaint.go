// Copyright (c) 2025, the curveedit authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curveedit

import "time"

// repaintDelay is both the trailing debounce interval for coalescing
// repaint requests and the minimum time enforced between actual
// repaints (one frame at 60 fps).
const repaintDelay = 16 * time.Millisecond

// repaintState coalesces repaint requests for one editor instance.
// Rapid pointer-move events each request a repaint, but only a single
// trailing timer is ever outstanding per instance: a new request
// supersedes the pending one by bumping the generation counter, so
// stale timers return without painting and two instances can never
// cancel each other's pending work. All fields are accessed on the
// scene event loop or under the widget's async lock, so no mutex is
// needed.
type repaintState struct {

	// gen is bumped on every schedule; a fired timer only paints if
	// its generation is still current.
	gen uint64

	// timer is the outstanding trailing timer, if any.
	timer *time.Timer

	// last is the time of the last actual repaint.
	last time.Time
}

// scheduleRepaint requests a debounced repaint of the offscreen
// layers. The paint runs once, repaintDelay after the most recent
// request, on the widget's async lock.
func (ce *CurveEditor) scheduleRepaint() {
	rp := &ce.repaint
	rp.gen++
	gen := rp.gen
	if rp.timer != nil {
		rp.timer.Stop()
	}
	rp.timer = time.AfterFunc(repaintDelay, func() {
		if ce.This == nil || ce.Scene == nil || ce.Scene.Stage == nil {
			return
		}
		ce.AsyncLock()
		defer ce.AsyncUnlock()
		if ce.repaint.gen != gen {
			return
		}
		ce.repaintNow()
	})
}

// repaintNow paints immediately if a frame has elapsed since the last
// paint, rescheduling otherwise so the floor between repaints holds
// regardless of request rate.
func (ce *CurveEditor) repaintNow() {
	rp := &ce.repaint
	if time.Since(rp.last) < repaintDelay {
		ce.scheduleRepaint()
		return
	}
	rp.last = time.Now()
	ce.paintCurve()
}

// stopRepaint drops any pending repaint; it is safe to call
// repeatedly and is part of widget teardown.
func (ce *CurveEditor) stopRepaint() {
	rp := &ce.repaint
	rp.gen++
	if rp.timer != nil {
		rp.timer.Stop()
		rp.timer = nil
	}
}
