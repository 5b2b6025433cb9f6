// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/timeline.go
// Summary: Frame-driven, per-key eased value timelines.
// Usage: Scroll panes use it for native smooth paging.
// Notes: Time is passed in explicitly so callers drive it from their frame clock.

package effects

import (
	"sync"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Common easing functions.
var (
	EaseLinear    ease.TweenFunc = ease.Linear
	EaseOutQuad   ease.TweenFunc = ease.OutQuad
	EaseInOutQuad ease.TweenFunc = ease.InOutQuad
	EaseOutCubic  ease.TweenFunc = ease.OutCubic
)

// EasingByName maps configuration names to easing functions. Unknown names
// return EaseOutQuad.
func EasingByName(name string) ease.TweenFunc {
	switch name {
	case "linear":
		return EaseLinear
	case "in-out-quad":
		return EaseInOutQuad
	case "out-cubic":
		return EaseOutCubic
	default:
		return EaseOutQuad
	}
}

type keyState struct {
	tween   *gween.Tween
	current float64
	target  float64
	last    time.Time
	done    bool
}

// Timeline holds one eased value per key.
type Timeline struct {
	mu     sync.Mutex
	states map[any]*keyState
	easing ease.TweenFunc
}

// NewTimeline creates a timeline using easing for new animations
// (EaseOutQuad when nil).
func NewTimeline(easing ease.TweenFunc) *Timeline {
	if easing == nil {
		easing = EaseOutQuad
	}
	return &Timeline{states: make(map[any]*keyState), easing: easing}
}

// AnimateTo starts an animation for key from its current value (or from
// when the key is new) towards target. A non-positive duration jumps.
func (tl *Timeline) AnimateTo(key any, from, target float64, duration time.Duration, now time.Time) {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	if st, ok := tl.states[key]; ok && !st.done {
		from = st.current
	}
	st := &keyState{current: from, target: target, last: now}
	if duration <= 0 || from == target {
		st.current = target
		st.done = true
	} else {
		st.tween = gween.New(float32(from), float32(target), float32(duration.Seconds()), tl.easing)
	}
	tl.states[key] = st
}

// Update advances key to now and returns its value and whether it is
// still animating.
func (tl *Timeline) Update(key any, now time.Time) (float64, bool) {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	st, ok := tl.states[key]
	if !ok {
		return 0, false
	}
	if st.done {
		return st.current, false
	}
	dt := now.Sub(st.last)
	st.last = now
	if dt < 0 {
		dt = 0
	}
	v, finished := st.tween.Update(float32(dt.Seconds()))
	st.current = float64(v)
	if finished {
		st.current = st.target
		st.done = true
	}
	return st.current, !st.done
}

// IsAnimating reports whether key has an unfinished animation.
func (tl *Timeline) IsAnimating(key any) bool {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	st, ok := tl.states[key]
	return ok && !st.done
}

// Reset removes the state for key.
func (tl *Timeline) Reset(key any) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	delete(tl.states, key)
}
