// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/state.go
// Summary: Row-based scroll extent used for indicators.

package scroll

// State is the visible window over the content, in rows.
type State struct {
	Offset         int
	ContentHeight  int
	ViewportHeight int
}

// MaxOffset is the largest offset that still fills the viewport.
func (s State) MaxOffset() int {
	return max(s.ContentHeight-s.ViewportHeight, 0)
}

// CanScroll returns true if the content is taller than the viewport.
func (s State) CanScroll() bool { return s.ContentHeight > s.ViewportHeight }

// CanScrollUp returns true if rows are hidden above the viewport.
func (s State) CanScrollUp() bool { return s.Offset > 0 }

// CanScrollDown returns true if rows are hidden below the viewport.
func (s State) CanScrollDown() bool { return s.Offset < s.MaxOffset() }

// IsRowVisible reports whether content row is inside the viewport.
func (s State) IsRowVisible(row int) bool {
	return row >= s.Offset && row < s.Offset+s.ViewportHeight
}
