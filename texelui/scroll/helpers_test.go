// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package scroll

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/framegrace/texelstick/stick"
	"github.com/framegrace/texelstick/texelui/core"
	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
)

type fakeClock interface {
	clockwork.Clock
	Advance(d time.Duration)
}

// testLoop drives a stick.Loop by hand on a fake clock.
type testLoop struct {
	t     *testing.T
	clock fakeClock
	loop  *stick.Loop
}

func newTestLoop(t *testing.T) *testLoop {
	t.Helper()
	clock := clockwork.NewFakeClock()
	return &testLoop{t: t, clock: clock, loop: stick.NewLoop(clock, 60)}
}

func (l *testLoop) tick() {
	l.clock.Advance(l.loop.Interval())
	l.loop.Flush()
	l.loop.Frame()
	l.loop.Flush()
}

func (l *testLoop) ticks(n int) {
	for i := 0; i < n; i++ {
		l.tick()
	}
}

// settle runs frames until nothing is scheduled.
func (l *testLoop) settle() {
	l.t.Helper()
	for i := 0; i < 2000; i++ {
		l.tick()
		if tasks, frames := l.loop.Pending(); tasks == 0 && frames == 0 {
			return
		}
	}
	l.t.Fatal("loop did not settle")
}

// mockWidget is a fixed-size child for ScrollPane testing.
type mockWidget struct {
	core.BaseWidget
}

func newMockWidget(w, h int) *mockWidget {
	m := &mockWidget{}
	m.Resize(w, h)
	return m
}

func (m *mockWidget) Draw(p *core.Painter) {
	p.Fill(m.Rect, 'X', tcell.StyleDefault)
}

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

func screenRow(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

// screenCol returns the column where sub starts in a screenRow string.
func screenCol(row, sub string) int {
	i := strings.Index(row, sub)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(row[:i])
}

func mouseAt(x, y int, btn tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, btn, tcell.ModNone)
}

func key(k tcell.Key, mod tcell.ModMask) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, mod)
}
