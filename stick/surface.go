// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: stick/surface.go
// Summary: Per-surface pointer and selection state shared by engines.

package stick

import "sync"

// PointerEvent is a primary-button transition reported by the host.
type PointerEvent int

const (
	PointerDown PointerEvent = iota
	PointerUp
	PointerClick
)

// PointerSource delivers pointer transitions for a whole UI surface.
type PointerSource interface {
	OnPointer(fn func(PointerEvent)) (remove func())
}

// SelectionProvider reports the common ancestor of the current text
// selection, if any.
type SelectionProvider interface {
	SelectionAnchor() (Element, bool)
}

// Surface tracks whether the pointer is down on one host UI surface.
// Listener installation happens once no matter how many engines share it.
type Surface struct {
	mu        sync.Mutex
	source    PointerSource
	selection SelectionProvider
	installed bool
	down      bool
}

// DefaultSurface is used by engines created without WithSurface. It has no
// pointer source until SetSource is called, so it never reports a selection.
var DefaultSurface = &Surface{}

// NewSurface creates a surface bound to the given pointer source and selection.
func NewSurface(source PointerSource, selection SelectionProvider) *Surface {
	return &Surface{source: source, selection: selection}
}

// SetSource replaces the pointer source and selection provider. Listeners
// are installed again on the next engine construction.
func (s *Surface) SetSource(source PointerSource, selection SelectionProvider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = source
	s.selection = selection
	s.installed = false
	s.down = false
}

func (s *Surface) ensureListeners() {
	s.mu.Lock()
	if s.installed || s.source == nil {
		s.mu.Unlock()
		return
	}
	s.installed = true
	src := s.source
	s.mu.Unlock()

	src.OnPointer(func(ev PointerEvent) {
		s.mu.Lock()
		defer s.mu.Unlock()
		switch ev {
		case PointerDown:
			s.down = true
		case PointerUp, PointerClick:
			s.down = false
		}
	})
}

// PointerIsDown reports the tracked primary-button state.
func (s *Surface) PointerIsDown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.down
}

// selecting reports whether a selection gesture touches the viewport.
func (s *Surface) selecting(viewport Viewport) bool {
	if viewport == nil {
		return false
	}
	s.mu.Lock()
	down, sel := s.down, s.selection
	s.mu.Unlock()
	if !down || sel == nil {
		return false
	}
	anchor, ok := sel.SelectionAnchor()
	if !ok || anchor == nil {
		return false
	}
	return contains(viewport, anchor) || contains(anchor, viewport)
}
