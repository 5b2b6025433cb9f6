// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: stick/engine.go
// Summary: Stick-to-bottom engine: state, attachment lifecycle and notifications.
// Usage: Create with New, Attach a viewport/content pair, drive from the Loop.
// Notes: An Engine is owned by the goroutine running its Scheduler.

package stick

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// NearBottomOffset is the distance from the target that still counts as "near".
const NearBottomOffset = 70.0

// RetainAnimationDuration is how long growth-triggered animations keep
// following the target after catching up.
const RetainAnimationDuration = 350 * time.Millisecond

// Engine keeps a viewport pinned to the bottom of its content.
type Engine struct {
	id      string
	sched   Scheduler
	opts    Options
	surface *Surface
	log     *slog.Logger
	metrics *Metrics
	subs    hub

	viewport Viewport
	content  Content
	cleanup  []func()

	isAtBottom      bool
	isNearBottom    bool
	escapedFromLock bool

	velocity          float64
	accumulated       float64
	lastTick          time.Time
	lastScrollTop     *float64
	ignoreScrollToTop *float64
	resizeDifference  float64

	animation *scrollRun
	target    *targetCalc
	destroyed bool
}

type targetCalc struct {
	target     float64
	calculated float64
}

// New creates an engine running on sched.
func New(sched Scheduler, opts ...Option) *Engine {
	s := settings{surface: DefaultSurface}
	for _, o := range opts {
		o(&s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.surface == nil {
		s.surface = DefaultSurface
	}
	s.surface.ensureListeners()

	id := uuid.NewString()
	e := &Engine{
		id:         id,
		sched:      sched,
		opts:       s.Options,
		surface:    s.surface,
		log:        s.logger.With("component", "stick", "engine_id", id),
		metrics:    s.metrics,
		isAtBottom: s.Initial != Lock(false),
	}
	return e
}

// ID identifies the engine in logs.
func (e *Engine) ID() string { return e.id }

// Attach binds the engine to a viewport and its content, replacing any
// previous binding. Nil elements make Attach a no-op.
func (e *Engine) Attach(viewport Viewport, content Content) {
	if e.destroyed || viewport == nil || content == nil {
		return
	}
	e.Detach()
	e.viewport = viewport
	e.content = content

	if viewport.Overflow() == OverflowVisible {
		viewport.SetOverflow(OverflowAuto)
	}

	e.cleanup = append(e.cleanup,
		viewport.OnScroll(e.handleScroll),
		viewport.OnWheel(e.handleWheel),
	)
	if obs, ok := content.(SizeObserver); ok {
		e.cleanup = append(e.cleanup, obs.ObserveSize(e.resizeHandler()))
	} else {
		e.log.Debug("content cannot report its size; growth will not re-stick")
	}
	e.log.Debug("attached")
}

// Detach removes listeners and the size observer. Safe when not attached.
func (e *Engine) Detach() {
	for _, fn := range e.cleanup {
		if fn != nil {
			fn()
		}
	}
	attached := e.viewport != nil
	e.cleanup = nil
	e.viewport = nil
	e.content = nil
	e.target = nil
	if attached {
		e.log.Debug("detached")
	}
}

// Destroy detaches and drops all subscribers. The engine must not be used
// afterwards; further calls are no-ops.
func (e *Engine) Destroy() {
	e.Detach()
	e.subs.clear()
	e.animation = nil
	e.destroyed = true
}

// Attached reports whether a viewport/content pair is bound.
func (e *Engine) Attached() bool { return e.viewport != nil }

// SetOptions shallow-merges opts into the configuration. In-flight
// animations keep the behavior they resolved at start.
func (e *Engine) SetOptions(opts ...Option) {
	s := settings{Options: e.opts}
	for _, o := range opts {
		o(&s)
	}
	e.opts = s.Options
	// TargetScrollTop may have changed.
	e.target = nil
}

// Options returns the current configuration.
func (e *Engine) Options() Options { return e.opts }

// State returns the public snapshot.
func (e *Engine) State() State {
	return State{
		IsAtBottom:      e.isAtBottom || e.isNearBottom,
		IsNearBottom:    e.isNearBottom,
		EscapedFromLock: e.escapedFromLock,
	}
}

// OnChange subscribes to state snapshots. Late subscribers only see future
// changes.
func (e *Engine) OnChange(fn func(State)) (unsubscribe func()) {
	if e.destroyed || fn == nil {
		return func() {}
	}
	return e.subs.add(fn)
}

func (e *Engine) notify() {
	e.subs.publish(e.State())
}

func (e *Engine) setAtBottom(v bool) {
	e.isAtBottom = v
	e.notify()
}

func (e *Engine) setEscaped(v bool) {
	e.escapedFromLock = v
	e.notify()
}

func (e *Engine) setNearBottom(v bool) {
	e.isNearBottom = v
	e.notify()
}

// escape releases the lock on behalf of the user.
func (e *Engine) escape(cause string) {
	e.metrics.escaped(cause)
	e.log.Debug("escaped from lock", "cause", cause)
	e.setEscaped(true)
	e.setAtBottom(false)
}

// StopScroll releases the lock. A running animation aborts at its next frame.
func (e *Engine) StopScroll() {
	e.escape(EscapeStop)
}

func (e *Engine) selecting() bool {
	return e.surface.selecting(e.viewport)
}
