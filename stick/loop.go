// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: stick/loop.go
// Summary: Frame clock and deferred task queue the engine runs on.
// Usage: Run(ctx) in production; Flush/Frame with a fake clock in tests.
// Notes: Everything except Post, Defer and Close must run on the loop goroutine.

package stick

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// SixtyFPS is the frame interval the spring integrator normalizes to.
const SixtyFPS = time.Second / 60

// Scheduler is the host clock the engine runs against.
type Scheduler interface {
	// Now returns the current time.
	Now() time.Time
	// RequestFrame runs fn on the next animation frame. It returns false when
	// the host has no frame clock, in which case fn is never called.
	RequestFrame(fn func(now time.Time)) bool
	// Defer runs fn as a separate task once d has elapsed.
	Defer(d time.Duration, fn func())
}

type task struct {
	due time.Time
	seq uint64
	fn  func()
}

// Loop is a single-goroutine Scheduler driven by a clockwork clock.
type Loop struct {
	clock    clockwork.Clock
	interval time.Duration

	mu     sync.Mutex
	tasks  []task
	frames []func(time.Time)
	seq    uint64
	closed bool
	wake   chan struct{}
}

// NewLoop creates a loop ticking at fps frames per second (60 when fps <= 0).
func NewLoop(clock clockwork.Clock, fps int) *Loop {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if fps <= 0 {
		fps = 60
	}
	return &Loop{
		clock:    clock,
		interval: time.Second / time.Duration(fps),
		wake:     make(chan struct{}, 1),
	}
}

// Interval returns the frame interval.
func (l *Loop) Interval() time.Duration { return l.interval }

// Now implements Scheduler.
func (l *Loop) Now() time.Time { return l.clock.Now() }

// Post queues fn to run on the loop goroutine. Safe from any goroutine.
func (l *Loop) Post(fn func()) { l.Defer(0, fn) }

// Defer implements Scheduler. Safe from any goroutine.
func (l *Loop) Defer(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.seq++
	l.tasks = append(l.tasks, task{due: l.clock.Now().Add(d), seq: l.seq, fn: fn})
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// RequestFrame implements Scheduler.
func (l *Loop) RequestFrame(fn func(time.Time)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || fn == nil {
		return false
	}
	l.frames = append(l.frames, fn)
	return true
}

// Close stops accepting frame requests. Pending frame callbacks are dropped.
func (l *Loop) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	l.frames = nil
}

// popDue removes the earliest task whose due time has passed.
func (l *Loop) popDue(now time.Time) (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	best := -1
	for i, t := range l.tasks {
		if t.due.After(now) {
			continue
		}
		if best < 0 || t.due.Before(l.tasks[best].due) ||
			(t.due.Equal(l.tasks[best].due) && t.seq < l.tasks[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return nil, false
	}
	fn := l.tasks[best].fn
	l.tasks = append(l.tasks[:best], l.tasks[best+1:]...)
	return fn, true
}

// Flush runs every task that is due, including tasks queued while flushing
// with no delay. It returns the number of tasks run.
func (l *Loop) Flush() int {
	n := 0
	for {
		fn, ok := l.popDue(l.clock.Now())
		if !ok {
			return n
		}
		fn()
		n++
	}
}

// Frame runs the callbacks requested before this call. Callbacks requested
// while running are kept for the next frame.
func (l *Loop) Frame() int {
	l.mu.Lock()
	frames := l.frames
	l.frames = nil
	l.mu.Unlock()

	now := l.clock.Now()
	for _, fn := range frames {
		fn(now)
	}
	return len(frames)
}

// Pending reports queued tasks and frame callbacks.
func (l *Loop) Pending() (tasks, frames int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks), len(l.frames)
}

// Run drives the loop until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	ticker := l.clock.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
			l.Flush()
		case <-ticker.Chan():
			l.Flush()
			l.Frame()
			l.Flush()
		}
	}
}
