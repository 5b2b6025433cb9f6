// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/sticky.go
// Summary: StickToBottom widget binding a stick engine to a scroll pane.
// Usage: Create with NewStickToBottom, Mount once on screen, Append messages,
// Unmount when removed. State accessors are refreshed on every engine change.

package scroll

import (
	"context"

	"github.com/framegrace/texelstick/stick"
	"github.com/framegrace/texelstick/texelui/core"
	"github.com/gdamore/tcell/v2"
)

// DefaultBadgeLabel is shown while the view is away from the bottom.
const DefaultBadgeLabel = "↓ Jump to latest (End)"

// StickToBottom is a transcript inside a scroll pane that follows new
// content until the user scrolls away.
type StickToBottom struct {
	core.BaseWidget
	BadgeStyle tcell.Style
	BadgeLabel string

	sched      stick.Scheduler
	opts       []stick.Option
	engine     *stick.Engine
	destroyed  bool
	pane       *ScrollPane
	transcript *Transcript
	mouse      *MouseTracker
	surface    *stick.Surface

	state       stick.State
	unsubscribe func()
	mounted     bool
	badge       core.Rect
	inv         func(core.Rect)
}

// NewStickToBottom creates an unmounted widget. The options configure the
// engine; a per-widget stick.Surface fed by this widget's mouse events is
// installed unless the options name another one.
func NewStickToBottom(sched stick.Scheduler, opts ...stick.Option) *StickToBottom {
	w := &StickToBottom{
		BadgeStyle: tcell.StyleDefault.Reverse(true).Bold(true),
		BadgeLabel: DefaultBadgeLabel,
		sched:      sched,
		pane:       NewScrollPane(sched, tcell.StyleDefault),
		transcript: NewTranscript(sched, tcell.StyleDefault),
		mouse:      NewMouseTracker(),
	}
	w.transcript.Gap = 1
	w.pane.SetChild(w.transcript)
	w.surface = stick.NewSurface(w.mouse, w.transcript)
	w.opts = append([]stick.Option{stick.WithSurface(w.surface)}, opts...)
	w.engine = stick.New(sched, w.opts...)
	w.state = w.engine.State()
	return w
}

// Mount attaches the engine to the pane and starts tracking its state.
// A widget that was unmounted gets a fresh engine with the same options.
func (w *StickToBottom) Mount() {
	if w.mounted {
		return
	}
	if w.destroyed {
		w.engine = stick.New(w.sched, w.opts...)
		w.destroyed = false
	}
	w.engine.Attach(w.pane, w.transcript)
	w.unsubscribe = w.engine.OnChange(func(s stick.State) {
		w.state = s
		w.invalidate()
	})
	w.state = w.engine.State()
	w.mounted = true
}

// Unmount stops tracking, detaches and destroys the engine.
func (w *StickToBottom) Unmount() {
	if !w.mounted {
		return
	}
	w.unsubscribe()
	w.unsubscribe = nil
	w.engine.Detach()
	w.engine.Destroy()
	w.destroyed = true
	w.mounted = false
}

// Close is an alias for Unmount.
func (w *StickToBottom) Close() { w.Unmount() }

// Mounted reports whether Mount has been called without a later Unmount.
func (w *StickToBottom) Mounted() bool { return w.mounted }

// Context returns ctx carrying this widget for FromContext.
func (w *StickToBottom) Context(ctx context.Context) context.Context {
	return NewContext(ctx, w)
}

// Engine returns the engine currently bound to the widget.
func (w *StickToBottom) Engine() *stick.Engine { return w.engine }

// Pane returns the scroll pane acting as viewport.
func (w *StickToBottom) Pane() *ScrollPane { return w.pane }

// Transcript returns the content widget.
func (w *StickToBottom) Transcript() *Transcript { return w.transcript }

// Surface returns the pointer surface fed by HandleMouse.
func (w *StickToBottom) Surface() *stick.Surface { return w.surface }

// Append adds a message to the transcript.
func (w *StickToBottom) Append(text string) { w.transcript.Append(text) }

// AppendEntry adds a styled message to the transcript.
func (w *StickToBottom) AppendEntry(e Entry) { w.transcript.AppendEntry(e) }

// State returns the last state published by the engine.
func (w *StickToBottom) State() stick.State { return w.state }

// IsAtBottom reports whether the view is locked or near the bottom.
func (w *StickToBottom) IsAtBottom() bool { return w.state.IsAtBottom }

// IsNearBottom reports whether the view is within the near-bottom threshold.
func (w *StickToBottom) IsNearBottom() bool { return w.state.IsNearBottom }

// EscapedFromLock reports whether the user has left the lock.
func (w *StickToBottom) EscapedFromLock() bool { return w.state.EscapedFromLock }

// ScrollToBottom forwards to the engine.
func (w *StickToBottom) ScrollToBottom(opts stick.ScrollOptions) *stick.Result {
	return w.engine.ScrollToBottom(opts)
}

// StopScroll forwards to the engine.
func (w *StickToBottom) StopScroll() { w.engine.StopScroll() }

// SetOptions updates the engine and remembers the options for remounts.
func (w *StickToBottom) SetOptions(opts ...stick.Option) {
	w.opts = append(w.opts, opts...)
	w.engine.SetOptions(opts...)
}

// SetInvalidator implements core.InvalidationAware.
func (w *StickToBottom) SetInvalidator(fn func(core.Rect)) {
	w.inv = fn
	w.pane.SetInvalidator(fn)
}

func (w *StickToBottom) invalidate() {
	if w.inv != nil {
		w.inv(w.Rect)
	}
}

// SetPosition moves the widget and its pane.
func (w *StickToBottom) SetPosition(x, y int) {
	w.BaseWidget.SetPosition(x, y)
	w.pane.SetPosition(x, y)
}

// Resize resizes the widget and its pane.
func (w *StickToBottom) Resize(width, height int) {
	w.BaseWidget.Resize(width, height)
	w.pane.Resize(width, height)
}

// Draw renders the pane and, away from the bottom, the jump badge.
func (w *StickToBottom) Draw(p *core.Painter) {
	w.pane.Draw(p)
	w.badge = core.Rect{}
	if !w.state.IsAtBottom {
		w.badge = DrawBadge(p, w.Rect, w.BadgeLabel, w.BadgeStyle)
	}
}

// HandleKey binds End to scroll-to-bottom and Esc to stop; other keys go
// to the pane.
func (w *StickToBottom) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnd:
		if ev.Modifiers()&tcell.ModCtrl == 0 {
			w.ScrollToBottom(stick.ScrollOptions{})
			return true
		}
	case tcell.KeyEscape:
		w.StopScroll()
		return true
	}
	return w.pane.HandleKey(ev)
}

// HandleMouse records pointer state for the engine, handles badge clicks
// and routes the rest to the pane.
func (w *StickToBottom) HandleMouse(ev *tcell.EventMouse) bool {
	w.mouse.Observe(ev)
	x, y := ev.Position()
	if ev.Buttons()&tcell.Button1 != 0 && w.badge.Contains(x, y) {
		w.ScrollToBottom(stick.ScrollOptions{})
		return true
	}
	return w.pane.HandleMouse(ev)
}
