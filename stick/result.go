// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: stick/result.go
// Summary: Eventually resolved boolean returned by ScrollToBottom.

package stick

import (
	"context"
	"sync"
)

// Result is the outcome of a ScrollToBottom request: true when the viewport
// was still locked when the animation ended. Joined requests share a Result.
type Result struct {
	mu        sync.Mutex
	done      chan struct{}
	resolved  bool
	value     bool
	callbacks []func(bool)
}

func newResult() *Result {
	return &Result{done: make(chan struct{})}
}

func resolvedResult(v bool) *Result {
	r := newResult()
	r.resolve(v)
	return r
}

// resolve settles the result once; later calls are ignored.
func (r *Result) resolve(v bool) {
	r.mu.Lock()
	if r.resolved {
		r.mu.Unlock()
		return
	}
	r.resolved = true
	r.value = v
	cbs := r.callbacks
	r.callbacks = nil
	close(r.done)
	r.mu.Unlock()

	for _, cb := range cbs {
		cb(v)
	}
}

// Then calls fn with the value once resolved, immediately if already settled.
// fn runs on the goroutine that resolves the result.
func (r *Result) Then(fn func(bool)) {
	r.mu.Lock()
	if !r.resolved {
		r.callbacks = append(r.callbacks, fn)
		r.mu.Unlock()
		return
	}
	v := r.value
	r.mu.Unlock()
	fn(v)
}

// Done is closed when the result settles.
func (r *Result) Done() <-chan struct{} { return r.done }

// Value returns the value and whether it has settled.
func (r *Result) Value() (value, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value, r.resolved
}

// Wait blocks until the result settles or ctx is done. It must not be
// called from the loop goroutine that drives the animation.
func (r *Result) Wait(ctx context.Context) (bool, error) {
	select {
	case <-r.done:
		v, _ := r.Value()
		return v, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
