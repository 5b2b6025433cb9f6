// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: stick/doc.go
// Summary: Package overview.

// Package stick keeps a scrollable viewport pinned to the bottom of growing
// content until the user scrolls away, and re-attaches when they come back.
//
// An Engine watches a Viewport (scroll position, wheel and scroll events)
// and a Content element (height changes). While locked it animates the
// viewport toward the bottom with a spring, an instant jump or a host-smooth
// scroll. Upward scrolls, wheel-up gestures inside the viewport and active
// text selections release the lock; reaching the bottom restores it.
//
// Everything runs on a Scheduler. Loop is the production one: a frame clock
// plus a deferred task queue on a single goroutine, driven by a clockwork
// clock so tests can advance time by hand.
//
// ScrollToBottom returns a Result that resolves true when the run ends with
// the viewport still locked, and false when the lock is released first or
// no frame clock is available. A run superseded by a newer request stops
// moving the viewport but keeps stepping, and resolves with the lock state
// at its end.
package stick
