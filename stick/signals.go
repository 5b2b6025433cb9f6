// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: stick/signals.go
// Summary: Scroll, wheel and resize handlers that drive the lock state.

package stick

import "time"

// escapeCheckDelay separates the escape check from the scroll event so host
// layout and scroll anchoring settle first.
const escapeCheckDelay = time.Millisecond

func (e *Engine) handleScroll() {
	if e.viewport == nil {
		return
	}
	scrollTop := e.scrollTop()
	ignore := e.ignoreScrollToTop
	lastScrollTop := scrollTop
	if e.lastScrollTop != nil {
		lastScrollTop = *e.lastScrollTop
	}
	e.lastScrollTop = &scrollTop
	e.ignoreScrollToTop = nil

	if ignore != nil && *ignore > scrollTop {
		lastScrollTop = *ignore
	}

	e.setNearBottom(e.computeNearBottom())

	viewport := e.viewport
	e.sched.Defer(escapeCheckDelay, func() {
		if e.viewport != viewport {
			return
		}
		if e.resizeDifference != 0 || (ignore != nil && scrollTop == *ignore) {
			return
		}

		if e.selecting() {
			e.escape(EscapeSelection)
			return
		}

		scrollingDown := scrollTop > lastScrollTop
		scrollingUp := scrollTop < lastScrollTop

		if e.animation != nil && e.animation.ignoreEscapes {
			e.setScrollTop(lastScrollTop)
			return
		}

		if scrollingUp {
			e.escape(EscapeScroll)
		}
		if scrollingDown {
			e.setEscaped(false)
		}
		if !e.escapedFromLock && e.computeNearBottom() {
			e.setAtBottom(true)
		}
	})
}

func (e *Engine) handleWheel(ev WheelEvent) {
	viewport := e.viewport
	if viewport == nil || ev.Target == nil {
		return
	}
	if scrollAncestor(ev.Target) != Element(viewport) {
		return
	}
	if ev.DeltaY < 0 &&
		viewport.ScrollHeight() > viewport.ClientHeight() &&
		(e.animation == nil || !e.animation.ignoreEscapes) {
		e.escape(EscapeWheel)
	}
}

// resizeHandler returns the size observer for one attachment; it remembers
// the previous height across calls.
func (e *Engine) resizeHandler() func(height float64) {
	var previous float64
	seen := false

	return func(height float64) {
		if e.viewport == nil {
			return
		}
		e.metrics.resized()

		difference := 0.0
		if seen {
			difference = height - previous
		}
		e.resizeDifference = difference

		if e.scrollTop() > e.targetScrollTop() {
			e.setScrollTop(e.targetScrollTop())
		}

		e.setNearBottom(e.computeNearBottom())

		if difference >= 0 {
			layer := e.opts.Initial
			if seen && previous != 0 {
				layer = e.opts.Resize
			}
			behavior := MergeAnimations(e.opts.Spring, layer)
			opts := ScrollOptions{
				Animation:              behavior,
				Wait:                   true,
				PreserveScrollPosition: true,
			}
			if !behavior.IsInstant() {
				opts.Duration = RetainAnimationDuration
			}
			e.ScrollToBottom(opts)
		} else if e.computeNearBottom() {
			e.setEscaped(false)
			e.setAtBottom(true)
		}

		previous = height
		seen = true

		settle := func() {
			e.sched.Defer(time.Millisecond, func() {
				if e.resizeDifference == difference {
					e.resizeDifference = 0
				}
			})
		}
		if !e.sched.RequestFrame(func(time.Time) { settle() }) {
			settle()
		}
	}
}
