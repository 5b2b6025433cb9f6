// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/demo/app.go
// Summary: Terminal chat demo: a StickToBottom transcript fed by Feed.
// Usage: NewApp, then Run until the user quits or ctx is cancelled.
// Notes: All widget access happens on the stick.Loop goroutine; the event
// poller and the feed only Post closures onto it.

package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/framegrace/texelstick/internal/theming"
	"github.com/framegrace/texelstick/stick"
	"github.com/framegrace/texelstick/texelui/core"
	"github.com/framegrace/texelstick/texelui/scroll"
	"github.com/framegrace/texelstick/texelui/widgets"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// SpeedStep is how much + and - change the feed speed.
const SpeedStep = 0.1

// Options configures an App.
type Options struct {
	InitialMessages int
	CellHeight      float64
	PageEasing      string
	Engine          []stick.Option
	Theme           *theming.Styles
	Logger          *slog.Logger
}

// App owns the screen, the loop and the widget tree.
type App struct {
	screen tcell.Screen
	loop   *stick.Loop
	feed   *Feed
	widget *scroll.StickToBottom
	frame  *widgets.Border
	log    *slog.Logger
	opts   Options

	dirty    bool
	quit     func()
	quitOnce sync.Once
	received int

	theme theming.Styles
}

// NewApp builds the widget tree. Nothing is drawn until Start.
func NewApp(screen tcell.Screen, loop *stick.Loop, feed *Feed, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	theme := theming.Default()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	a := &App{
		screen: screen,
		loop:   loop,
		feed:   feed,
		log:    opts.Logger.With("component", "demo"),
		opts:   opts,
		quit:   func() {},
		theme:  theme,
	}
	a.widget = scroll.NewStickToBottom(loop, opts.Engine...)
	a.widget.BadgeStyle = theme.Badge
	if opts.CellHeight > 0 {
		a.widget.Pane().SetCellHeight(opts.CellHeight)
		a.widget.Transcript().SetCellHeight(opts.CellHeight)
	}
	if opts.PageEasing != "" {
		a.widget.Pane().SetPageEasing(opts.PageEasing)
	}
	a.frame = widgets.NewBorder(theme.Frame)
	a.frame.SetChild(a.widget)
	a.frame.SetInvalidator(func(core.Rect) { a.dirty = true })
	return a
}

// Widget returns the transcript widget.
func (a *App) Widget() *scroll.StickToBottom { return a.widget }

// Start lays out the screen, mounts the widget and loads the backlog.
// It must run on the loop goroutine.
func (a *App) Start() {
	a.layout()
	a.widget.Mount()
	a.appendMessages(a.feed.Initial(a.opts.InitialMessages))
	a.log.Info("demo started", "engine_id", a.widget.Engine().ID(), "backlog", a.opts.InitialMessages)
}

// Run drives the demo until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.quit = cancel

	a.screen.EnableMouse()
	a.loop.Post(a.Start)
	a.loop.Post(func() { a.loop.RequestFrame(a.renderFrame) })

	go a.pollEvents(ctx)
	go func() {
		err := a.feed.Run(ctx, func(msgs []Message) {
			a.loop.Post(func() { a.appendMessages(msgs) })
		})
		if err != nil && ctx.Err() == nil {
			a.log.Error("feed stopped", "error", err)
		}
	}()

	err := a.loop.Run(ctx)
	a.loop.Close()
	a.widget.Unmount()
	if ctx.Err() != nil && errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) pollEvents(ctx context.Context) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if ctx.Err() != nil {
			return
		}
		a.loop.Post(func() { a.HandleEvent(ev) })
	}
}

// renderFrame redraws when something changed and re-arms itself.
func (a *App) renderFrame(time.Time) {
	if a.dirty {
		a.Draw()
		a.screen.Show()
	}
	a.loop.RequestFrame(a.renderFrame)
}

func (a *App) appendMessages(msgs []Message) {
	for _, m := range msgs {
		style := tcell.StyleDefault
		if m.Large {
			style = a.theme.Large
		}
		a.widget.AppendEntry(scroll.Entry{Text: fmt.Sprintf("#%d  %s", m.ID, m.Text), Style: style})
	}
	a.received += len(msgs)
	a.dirty = true
}

func (a *App) layout() {
	w, h := a.screen.Size()
	a.frame.SetPosition(0, 1)
	a.frame.Resize(w, max(h-2, 0))
	a.dirty = true
}

// HandleEvent applies one screen event. It must run on the loop goroutine.
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.layout()
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventMouse:
		a.frame.HandleMouse(ev)
	}
	a.dirty = true
}

func (a *App) handleKey(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyCtrlC, ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		a.Quit()
	case ev.Key() == tcell.KeyRune && (ev.Rune() == '+' || ev.Rune() == '='):
		a.feed.SetSpeed(a.feed.Speed() + SpeedStep)
		a.log.Debug("speed changed", "speed", a.feed.Speed())
	case ev.Key() == tcell.KeyRune && ev.Rune() == '-':
		a.feed.SetSpeed(a.feed.Speed() - SpeedStep)
		a.log.Debug("speed changed", "speed", a.feed.Speed())
	default:
		a.frame.HandleKey(ev)
	}
}

// Quit stops Run.
func (a *App) Quit() {
	a.quitOnce.Do(func() {
		a.log.Info("demo quitting", "messages", a.received)
		a.quit()
	})
}

// Draw renders header, framed transcript and footer.
func (a *App) Draw() {
	a.dirty = false
	w, h := a.screen.Size()
	p := core.NewPainter(a.screen)

	header := core.Rect{W: w, H: 1}
	p.Fill(header, ' ', a.theme.Header)
	p.DrawText(1, 0, a.Status(), a.theme.Header)

	a.frame.Title = "following"
	if a.widget.EscapedFromLock() {
		a.frame.Title = "paused"
	}
	a.frame.Draw(p)

	if h > 1 {
		footer := core.Rect{Y: h - 1, W: w, H: 1}
		p.Fill(footer, ' ', a.theme.Footer)
		p.DrawText(1, h-1, footerText(w-2), a.theme.Footer)
	}
}

// footerHints are shown left to right. When the row is too narrow the
// lowest rank goes first; "q quit" is always kept.
var footerHints = []struct {
	text string
	rank int
}{
	{"+/- speed", 3},
	{"PgUp/PgDn page", 1},
	{"End latest", 4},
	{"Esc stop", 2},
	{"q quit", 5},
}

// footerText returns the key hints that fit in width cells.
func footerText(width int) string {
	for drop := 0; ; drop++ {
		var parts []string
		for _, h := range footerHints {
			if h.rank > drop {
				parts = append(parts, h.text)
			}
		}
		text := strings.Join(parts, "  ")
		if runewidth.StringWidth(text) <= width || len(parts) <= 1 {
			return text
		}
	}
}

// Status is the header line.
func (a *App) Status() string {
	s := a.widget.State()
	return fmt.Sprintf("texelstick  speed %.1f  msgs %d  bottom %s  near %s  escaped %s",
		a.feed.Speed(), a.received, flag(s.IsAtBottom), flag(s.IsNearBottom), flag(s.EscapedFromLock))
}

func flag(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
