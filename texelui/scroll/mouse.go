// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/mouse.go
// Summary: Turns tcell button masks into stick pointer transitions.

package scroll

import (
	"github.com/framegrace/texelstick/stick"
	"github.com/gdamore/tcell/v2"
)

// MouseTracker implements stick.PointerSource for one tcell screen.
// Feed every mouse event through Observe before routing it.
type MouseTracker struct {
	down bool
	seq  uint64
	subs []listener[func(stick.PointerEvent)]
}

// NewMouseTracker creates a tracker with the button released.
func NewMouseTracker() *MouseTracker { return &MouseTracker{} }

// OnPointer implements stick.PointerSource.
func (m *MouseTracker) OnPointer(fn func(stick.PointerEvent)) func() {
	m.seq++
	id := m.seq
	m.subs = append(m.subs, listener[func(stick.PointerEvent)]{id: id, fn: fn})
	return func() { m.subs = removeListener(m.subs, id) }
}

// Observe emits PointerDown and PointerUp on primary-button transitions.
func (m *MouseTracker) Observe(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	if pressed == m.down {
		return
	}
	m.down = pressed
	pe := stick.PointerUp
	if pressed {
		pe = stick.PointerDown
	}
	for _, l := range append([]listener[func(stick.PointerEvent)](nil), m.subs...) {
		l.fn(pe)
	}
}

// Down reports the last observed primary-button state.
func (m *MouseTracker) Down() bool { return m.down }
