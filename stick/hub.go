// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: stick/hub.go
// Summary: Ordered fan-out of state snapshots to subscribers.

package stick

// State is the public snapshot delivered to subscribers.
type State struct {
	// IsAtBottom is true when the lock is engaged or the viewport is near the bottom.
	IsAtBottom      bool
	IsNearBottom    bool
	EscapedFromLock bool
}

type subscriber struct {
	id uint64
	fn func(State)
}

type hub struct {
	next uint64
	subs []subscriber
}

func (h *hub) add(fn func(State)) func() {
	h.next++
	id := h.next
	h.subs = append(h.subs, subscriber{id: id, fn: fn})
	return func() { h.remove(id) }
}

func (h *hub) remove(id uint64) {
	for i, s := range h.subs {
		if s.id == id {
			h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
			return
		}
	}
}

// publish delivers to the subscribers registered at call time.
func (h *hub) publish(s State) {
	subs := h.subs
	for _, sub := range subs {
		sub.fn(s)
	}
}

func (h *hub) clear() {
	h.subs = nil
}
