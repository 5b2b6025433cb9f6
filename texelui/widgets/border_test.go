// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package widgets

import (
	"strings"
	"testing"

	"github.com/framegrace/texelstick/texelui/core"
	"github.com/gdamore/tcell/v2"
)

type fillWidget struct {
	core.BaseWidget
	keys int
}

func (f *fillWidget) Draw(p *core.Painter)              { p.Fill(f.Rect, 'x', tcell.StyleDefault) }
func (f *fillWidget) HandleKey(ev *tcell.EventKey) bool { f.keys++; return true }

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func row(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestBorder_LaysOutChild(t *testing.T) {
	b := NewBorder(tcell.StyleDefault)
	child := &fillWidget{}
	b.SetChild(child)
	b.SetPosition(2, 3)
	b.Resize(10, 5)

	if got := b.ClientRect(); got != (core.Rect{X: 3, Y: 4, W: 8, H: 3}) {
		t.Errorf("ClientRect = %+v", got)
	}
	if x, y := child.Position(); x != 3 || y != 4 {
		t.Errorf("child position = (%d, %d), want (3, 4)", x, y)
	}
	if w, h := child.Size(); w != 8 || h != 3 {
		t.Errorf("child size = (%d, %d), want (8, 3)", w, h)
	}

	b.Resize(1, 1)
	if w, h := child.Size(); w != 0 || h != 0 {
		t.Errorf("tiny border: child size = (%d, %d), want (0, 0)", w, h)
	}
}

func TestBorder_DrawFrameAndTitle(t *testing.T) {
	screen := newScreen(t, 12, 4)
	b := NewBorder(tcell.StyleDefault)
	b.Title = "log"
	b.SetChild(&fillWidget{})
	b.Resize(12, 4)

	b.Draw(core.NewPainter(screen))

	want := []string{
		"┌─ log ────┐",
		"│xxxxxxxxxx│",
		"│xxxxxxxxxx│",
		"└──────────┘",
	}
	for y, w := range want {
		if got := row(screen, y); got != w {
			t.Errorf("row %d = %q, want %q", y, got, w)
		}
	}
}

func TestBorder_ForwardsKeys(t *testing.T) {
	b := NewBorder(tcell.StyleDefault)
	if b.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		t.Error("empty border consumed a key")
	}
	child := &fillWidget{}
	b.SetChild(child)
	if !b.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) || child.keys != 1 {
		t.Errorf("key not forwarded: keys = %d", child.keys)
	}
	if b.HandleMouse(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone)) {
		t.Error("child without mouse support consumed a click")
	}
}
