// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/border.go
// Summary: Frame with an optional title around a single child widget.

package widgets

import (
	"github.com/framegrace/texelstick/texelui/core"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Border draws a frame around its Rect and lays its child out inside.
type Border struct {
	core.BaseWidget
	Style      tcell.Style
	TitleStyle tcell.Style
	Title      string
	Charset    [6]rune // h, v, tl, tr, bl, br
	Child      core.Widget
}

// NewBorder creates a single-line border.
func NewBorder(style tcell.Style) *Border {
	return &Border{
		Style:      style,
		TitleStyle: style.Bold(true),
		Charset:    [6]rune{'─', '│', '┌', '┐', '└', '┘'},
	}
}

// ClientRect is the area left for the child.
func (b *Border) ClientRect() core.Rect {
	r := b.Rect
	if r.W < 2 || r.H < 2 {
		return core.Rect{X: r.X, Y: r.Y}
	}
	return core.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
}

// SetChild places w inside the frame.
func (b *Border) SetChild(w core.Widget) {
	b.Child = w
	b.layout()
}

func (b *Border) SetPosition(x, y int) {
	b.BaseWidget.SetPosition(x, y)
	b.layout()
}

func (b *Border) Resize(w, h int) {
	b.BaseWidget.Resize(w, h)
	b.layout()
}

func (b *Border) layout() {
	if b.Child == nil {
		return
	}
	cr := b.ClientRect()
	b.Child.SetPosition(cr.X, cr.Y)
	b.Child.Resize(cr.W, cr.H)
}

// Draw paints the frame, the title and then the child.
func (b *Border) Draw(p *core.Painter) {
	p.DrawBorder(b.Rect, b.Style, b.Charset)
	if b.Title != "" && b.Rect.W > 6 {
		title := runewidth.Truncate(" "+b.Title+" ", b.Rect.W-4, "…")
		p.DrawText(b.Rect.X+2, b.Rect.Y, title, b.TitleStyle)
	}
	if b.Child != nil {
		b.Child.Draw(p.WithClip(b.ClientRect()))
	}
}

// HandleKey forwards to the child.
func (b *Border) HandleKey(ev *tcell.EventKey) bool {
	if b.Child == nil {
		return false
	}
	return b.Child.HandleKey(ev)
}

// HandleMouse forwards to a mouse-aware child.
func (b *Border) HandleMouse(ev *tcell.EventMouse) bool {
	if ma, ok := b.Child.(core.MouseAware); ok {
		return ma.HandleMouse(ev)
	}
	return false
}

// SetInvalidator forwards to an invalidation-aware child.
func (b *Border) SetInvalidator(fn func(core.Rect)) {
	if ia, ok := b.Child.(core.InvalidationAware); ok {
		ia.SetInvalidator(fn)
	}
}
