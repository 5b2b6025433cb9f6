// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: stick/geometry.go
// Summary: Scroll geometry helpers and the per-frame target cache.

package stick

import "time"

func (e *Engine) scrollTop() float64 {
	if e.viewport == nil {
		return 0
	}
	return e.viewport.ScrollTop()
}

// setScrollTop writes the position and remembers what the host accepted so
// the resulting scroll event is recognised as ours.
func (e *Engine) setScrollTop(v float64) {
	if e.viewport == nil {
		return
	}
	e.viewport.SetScrollTop(v)
	got := e.viewport.ScrollTop()
	e.ignoreScrollToTop = &got
}

// targetScrollTop is the raw bottom position, one pixel short of the edge.
func (e *Engine) targetScrollTop() float64 {
	if e.viewport == nil || e.content == nil {
		return 0
	}
	return e.viewport.ScrollHeight() - 1 - e.viewport.ClientHeight()
}

// calculatedTargetScrollTop applies the TargetScrollTop option. The result is
// memoized until the next animation frame.
func (e *Engine) calculatedTargetScrollTop() float64 {
	if e.viewport == nil || e.content == nil {
		return 0
	}
	target := e.targetScrollTop()
	fn := e.opts.TargetScrollTop
	if fn == nil {
		return target
	}
	if e.target != nil && e.target.target == target {
		return e.target.calculated
	}

	calculated := fn(target, Elements{Viewport: e.viewport, Content: e.content})
	calculated = max(min(calculated, target), 0)

	calc := &targetCalc{target: target, calculated: calculated}
	e.target = calc
	if !e.sched.RequestFrame(func(_ time.Time) {
		if e.target == calc {
			e.target = nil
		}
	}) {
		e.target = nil
	}
	return calculated
}

func (e *Engine) scrollDifference() float64 {
	return e.calculatedTargetScrollTop() - e.scrollTop()
}

func (e *Engine) computeNearBottom() bool {
	return e.scrollDifference() <= NearBottomOffset
}
