// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: stick/animator.go
// Summary: Frame-stepped scroll-to-bottom animation (spring or instant).
// Notes: Each run is re-armed per frame; loop state lives in scrollRun, so
// long streams never grow the stack.

package stick

import "time"

// ScrollOptions configures one ScrollToBottom request.
type ScrollOptions struct {
	// Animation overrides the configured spring for this request.
	Animation Layer
	// Wait joins an in-flight animation with the same behavior and delays
	// the start by at least a millisecond.
	Wait bool
	// Delay postpones the first movement.
	Delay time.Duration
	// IgnoreEscapes snaps user scrolls back while the animation runs.
	IgnoreEscapes bool
	// PreserveScrollPosition leaves the lock flag untouched at start.
	PreserveScrollPosition bool
	// Duration keeps following the target for this long after the start.
	Duration time.Duration
	// Until keeps following the target until the channel is closed. It takes
	// precedence over Duration.
	Until <-chan struct{}
}

// scrollRun is one animation's loop state.
type scrollRun struct {
	e             *Engine
	behavior      *Resolved
	ignoreEscapes bool
	result        *Result

	waitElapsed     time.Time
	durationElapsed time.Time
	until           <-chan struct{}
	startTarget     float64
}

// ScrollToBottom moves the viewport to the bottom and keeps it there for the
// requested duration. The Result settles true if the viewport is still
// locked at the end, false if the lock was released or no frame clock exists.
func (e *Engine) ScrollToBottom(opts ScrollOptions) *Result {
	return e.scrollToBottom(opts, nil)
}

func (e *Engine) scrollToBottom(opts ScrollOptions, result *Result) *Result {
	if e.destroyed {
		if result == nil {
			return resolvedResult(false)
		}
		result.resolve(false)
		return result
	}

	if !opts.PreserveScrollPosition {
		e.setAtBottom(true)
	}

	now := e.sched.Now()
	delay := opts.Delay
	if opts.Wait && delay < time.Millisecond {
		delay = time.Millisecond
	}
	behavior := MergeAnimations(e.opts.Spring, opts.Animation)

	run := &scrollRun{
		e:             e,
		behavior:      behavior,
		ignoreEscapes: opts.IgnoreEscapes,
		waitElapsed:   now.Add(delay),
		until:         opts.Until,
		startTarget:   e.calculatedTargetScrollTop(),
	}
	if run.until == nil {
		run.durationElapsed = run.waitElapsed.Add(opts.Duration)
	}

	if !opts.Wait {
		e.animation = nil
	}
	if e.animation != nil && e.animation.behavior == behavior {
		e.metrics.joined()
		if result != nil {
			e.animation.result.Then(result.resolve)
			return result
		}
		return e.animation.result
	}

	if result == nil {
		result = newResult()
	}
	run.result = result
	if e.animation == nil {
		e.animation = run
	}
	e.metrics.started(behavior)
	run.next()
	return result
}

// next re-arms the run for the following frame.
func (r *scrollRun) next() {
	if !r.e.sched.RequestFrame(r.step) {
		r.finish(false)
	}
}

// durationPending reports whether the run should keep following the target.
func (r *scrollRun) durationPending(now time.Time) bool {
	if r.until != nil {
		select {
		case <-r.until:
			r.until = nil
			r.durationElapsed = now
			return false
		default:
			return true
		}
	}
	return r.durationElapsed.After(now)
}

func (r *scrollRun) step(now time.Time) {
	e := r.e
	e.metrics.stepped()

	if !e.isAtBottom || e.destroyed {
		if e.animation == r || e.destroyed {
			e.animation = nil
		}
		e.metrics.aborted()
		r.finish(false)
		return
	}

	scrollTop := e.scrollTop()
	tickDelta := 0.0
	if !e.lastTick.IsZero() {
		tickDelta = float64(now.Sub(e.lastTick)) / float64(SixtyFPS)
	}
	if e.animation == nil {
		e.animation = r
	}
	owner := e.animation == r
	if owner {
		e.lastTick = now
	}

	if e.selecting() {
		r.next()
		return
	}
	if r.waitElapsed.After(now) {
		r.next()
		return
	}

	if scrollTop < min(r.startTarget, e.calculatedTargetScrollTop()) {
		if owner {
			if r.behavior.IsInstant() {
				e.setScrollTop(e.calculatedTargetScrollTop())
				r.next()
				return
			}
			s := r.behavior.Spring()
			e.velocity = (s.Damping*e.velocity + s.Stiffness*e.scrollDifference()) / s.Mass
			e.accumulated += e.velocity * tickDelta
			before := e.scrollTop()
			e.setScrollTop(before + e.accumulated)
			if e.scrollTop() != before {
				e.accumulated = 0
			}
		}
		r.next()
		return
	}

	if r.durationPending(now) {
		r.startTarget = e.calculatedTargetScrollTop()
		r.next()
		return
	}

	if e.animation == r {
		e.animation = nil
	}

	if e.scrollTop() < e.calculatedTargetScrollTop() {
		remaining := max(r.durationElapsed.Sub(now), 0)
		e.scrollToBottom(ScrollOptions{
			Animation:     MergeAnimations(e.opts.Spring, e.opts.Resize),
			IgnoreEscapes: r.ignoreEscapes,
			Duration:      remaining,
		}, r.result)
		return
	}

	r.finish(e.isAtBottom)
}

// finish settles the result, releases ownership and resets the integrator
// once nothing else is animating.
func (r *scrollRun) finish(v bool) {
	e := r.e
	if e.animation == r {
		e.animation = nil
	}
	r.result.resolve(v)
	reset := func(time.Time) {
		if e.animation == nil {
			e.lastTick = time.Time{}
			e.velocity = 0
			e.accumulated = 0
		}
	}
	if !e.sched.RequestFrame(reset) {
		reset(time.Time{})
	}
}
