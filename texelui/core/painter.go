// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/painter.go
// Summary: Clipped drawing onto a tcell screen.

package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Painter draws cells onto a screen, discarding anything outside its clip.
type Painter struct {
	screen tcell.Screen
	clip   Rect
}

// NewPainter creates a painter clipped to the full screen.
func NewPainter(screen tcell.Screen) *Painter {
	w, h := screen.Size()
	return &Painter{screen: screen, clip: Rect{W: w, H: h}}
}

// Clip returns the active clip rectangle.
func (p *Painter) Clip() Rect { return p.clip }

// WithClip returns a painter further clipped to r.
func (p *Painter) WithClip(r Rect) *Painter {
	return &Painter{screen: p.screen, clip: p.clip.Intersect(r)}
}

// SetCell writes one cell.
func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	if !p.clip.Contains(x, y) {
		return
	}
	p.screen.SetContent(x, y, ch, nil, style)
}

// Fill paints every cell of r.
func (p *Painter) Fill(r Rect, ch rune, style tcell.Style) {
	r = p.clip.Intersect(r)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			p.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// DrawText writes s starting at (x, y) and returns the number of columns used.
func (p *Painter) DrawText(x, y int, s string, style tcell.Style) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		p.SetCell(col, y, r, style)
		col += w
	}
	return col - x
}

// DrawBorder outlines r using charset in the order h, v, tl, tr, bl, br.
func (p *Painter) DrawBorder(r Rect, style tcell.Style, charset [6]rune) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		p.SetCell(x, r.Y, charset[0], style)
		p.SetCell(x, bottom, charset[0], style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		p.SetCell(r.X, y, charset[1], style)
		p.SetCell(right, y, charset[1], style)
	}
	p.SetCell(r.X, r.Y, charset[2], style)
	p.SetCell(right, r.Y, charset[3], style)
	p.SetCell(r.X, bottom, charset[4], style)
	p.SetCell(right, bottom, charset[5], style)
}
