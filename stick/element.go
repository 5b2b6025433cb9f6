// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: stick/element.go
// Summary: Host element contracts the engine attaches to.
// Notes: Units are host pixels; terminal hosts scale rows by a cell height.

package stick

// Overflow mirrors the host's overflow mode for an element.
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowAuto
	OverflowScroll
)

func (o Overflow) scrolls() bool {
	return o == OverflowAuto || o == OverflowScroll
}

// Element is a node in the host's element tree.
// Implementations must be comparable (pointer types) and return a nil
// interface from Parent at the root.
type Element interface {
	Parent() Element
	Overflow() Overflow
}

// WheelEvent is a wheel gesture delivered to the viewport's wheel listeners.
// Target is the deepest element under the pointer. Negative DeltaY means
// the user asked to move up.
type WheelEvent struct {
	Target Element
	DeltaY float64
}

// Viewport is the scroll container.
// SetScrollTop must clamp into [0, ScrollHeight-ClientHeight]. Scroll
// listeners are expected to fire asynchronously for every position change,
// including the ones made through SetScrollTop.
type Viewport interface {
	Element
	ScrollTop() float64
	SetScrollTop(v float64)
	ScrollHeight() float64
	ClientHeight() float64
	SetOverflow(o Overflow)
	OnScroll(fn func()) (remove func())
	OnWheel(fn func(WheelEvent)) (remove func())
}

// Content is the element whose growth the engine follows.
type Content interface {
	Element
}

// SizeObserver is implemented by content that can report height changes.
// The observer must be called once with the current height shortly after
// registration and then on every change.
type SizeObserver interface {
	ObserveSize(fn func(height float64)) (disconnect func())
}

// Elements is handed to TargetScrollTop callbacks.
type Elements struct {
	Viewport Viewport
	Content  Content
}

// contains reports whether node is root or one of its descendants.
func contains(root, node Element) bool {
	for n := node; n != nil; n = n.Parent() {
		if n == root {
			return true
		}
	}
	return false
}

// scrollAncestor walks up from el to the first element that scrolls.
func scrollAncestor(el Element) Element {
	for n := el; n != nil; n = n.Parent() {
		if n.Overflow().scrolls() {
			return n
		}
	}
	return nil
}
