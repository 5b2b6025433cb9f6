// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package scroll

import (
	"testing"

	"github.com/framegrace/texelstick/stick"
	"github.com/framegrace/texelstick/texelui/core"
	"github.com/gdamore/tcell/v2"
)

func newTestPane(l *testLoop, w, h, contentRows int) *ScrollPane {
	sp := NewScrollPane(l.loop, tcell.StyleDefault)
	sp.SetPosition(0, 0)
	sp.Resize(w, h)
	sp.SetChild(newMockWidget(w, contentRows))
	return sp
}

func TestNewScrollPane(t *testing.T) {
	l := newTestLoop(t)
	sp := NewScrollPane(l.loop, tcell.StyleDefault)
	sp.SetPosition(10, 5)
	sp.Resize(40, 20)

	if x, y := sp.Position(); x != 10 || y != 5 {
		t.Errorf("Position = (%d, %d), want (10, 5)", x, y)
	}
	if sp.ScrollTop() != 0 {
		t.Errorf("Initial ScrollTop = %v, want 0", sp.ScrollTop())
	}
	if sp.CanScroll() {
		t.Error("Should not be scrollable without content")
	}
	if sp.Overflow() != stick.OverflowAuto {
		t.Errorf("Overflow = %v, want auto", sp.Overflow())
	}
	if sp.Parent() != nil {
		t.Error("Parent should be nil at the root")
	}
}

func TestScrollPane_Geometry(t *testing.T) {
	l := newTestLoop(t)
	sp := newTestPane(l, 40, 20, 30)

	if got := sp.ScrollHeight(); got != 30*DefaultCellHeight {
		t.Errorf("ScrollHeight = %v, want %v", got, 30*DefaultCellHeight)
	}
	if got := sp.ClientHeight(); got != 20*DefaultCellHeight {
		t.Errorf("ClientHeight = %v, want %v", got, 20*DefaultCellHeight)
	}

	sp.SetChild(newMockWidget(40, 5))
	if got := sp.ScrollHeight(); got != sp.ClientHeight() {
		t.Errorf("short content: ScrollHeight = %v, want client height %v", got, sp.ClientHeight())
	}
}

func TestScrollPane_SetScrollTopClampsAndRounds(t *testing.T) {
	l := newTestLoop(t)
	sp := newTestPane(l, 40, 20, 30)

	tests := []struct {
		in, want float64
	}{
		{1000, 160},
		{10.4, 10},
		{10.6, 11},
		{-5, 0},
	}
	for _, tt := range tests {
		sp.SetScrollTop(tt.in)
		if got := sp.ScrollTop(); got != tt.want {
			t.Errorf("SetScrollTop(%v): ScrollTop = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScrollPane_ScrollEventsAreAsyncAndCoalesced(t *testing.T) {
	l := newTestLoop(t)
	sp := newTestPane(l, 40, 20, 30)
	l.loop.Flush()

	events := 0
	remove := sp.OnScroll(func() { events++ })

	sp.SetScrollTop(16)
	sp.SetScrollTop(32)
	if events != 0 {
		t.Fatalf("scroll events fired synchronously: %d", events)
	}
	l.loop.Flush()
	if events != 1 {
		t.Errorf("events = %d, want 1", events)
	}

	sp.SetScrollTop(32)
	l.loop.Flush()
	if events != 1 {
		t.Errorf("unchanged position fired an event: %d", events)
	}

	remove()
	sp.SetScrollTop(0)
	l.loop.Flush()
	if events != 1 {
		t.Errorf("removed listener was called: %d", events)
	}
}

func TestScrollPane_ScrollBy(t *testing.T) {
	l := newTestLoop(t)
	sp := newTestPane(l, 40, 10, 100)

	sp.ScrollBy(20)
	if sp.ScrollOffset() != 20 {
		t.Errorf("ScrollOffset = %d, want 20", sp.ScrollOffset())
	}
	sp.ScrollBy(-5)
	if sp.ScrollOffset() != 15 {
		t.Errorf("ScrollOffset = %d, want 15", sp.ScrollOffset())
	}
	sp.ScrollBy(1000)
	if sp.ScrollOffset() != 90 {
		t.Errorf("ScrollOffset = %d, want 90", sp.ScrollOffset())
	}
	sp.ScrollBy(-1000)
	if sp.ScrollOffset() != 0 {
		t.Errorf("ScrollOffset = %d, want 0", sp.ScrollOffset())
	}
}

func TestScrollPane_RowOffsetRoundsOneShortOfBottom(t *testing.T) {
	l := newTestLoop(t)
	sp := newTestPane(l, 40, 10, 100)

	// The engine parks one pixel above the edge; the last row must still show.
	sp.SetScrollTop(sp.ScrollHeight() - 1 - sp.ClientHeight())
	if sp.ScrollOffset() != 90 {
		t.Errorf("ScrollOffset = %d, want 90", sp.ScrollOffset())
	}
	if sp.CanScrollDown() {
		t.Error("CanScrollDown should be false one pixel short of the bottom")
	}
}

func TestScrollPane_HandleKey_PageUpDownEases(t *testing.T) {
	l := newTestLoop(t)
	sp := newTestPane(l, 40, 20, 100)

	if !sp.HandleKey(key(tcell.KeyPgDn, tcell.ModNone)) {
		t.Fatal("HandleKey should return true for PgDn")
	}
	if sp.ScrollOffset() != 0 {
		t.Errorf("PgDn jumped immediately to %d", sp.ScrollOffset())
	}
	l.tick()
	l.tick()
	mid := sp.ScrollOffset()
	if mid <= 0 || mid >= 20 {
		t.Errorf("mid-animation offset = %d, want between 0 and 20", mid)
	}
	l.settle()
	if sp.ScrollOffset() != 20 {
		t.Errorf("After PgDn: ScrollOffset = %d, want 20", sp.ScrollOffset())
	}

	sp.HandleKey(key(tcell.KeyPgUp, tcell.ModNone))
	l.settle()
	if sp.ScrollOffset() != 0 {
		t.Errorf("After PgUp: ScrollOffset = %d, want 0", sp.ScrollOffset())
	}
}

func TestScrollPane_ScrollByCancelsPaging(t *testing.T) {
	l := newTestLoop(t)
	sp := newTestPane(l, 40, 20, 100)

	sp.PageBy(1)
	l.tick()
	sp.ScrollBy(-100)
	l.settle()
	if sp.ScrollOffset() != 0 {
		t.Errorf("paging kept running after ScrollBy: offset %d", sp.ScrollOffset())
	}
}

func TestScrollPane_HandleKey_CtrlHomeEnd(t *testing.T) {
	l := newTestLoop(t)
	sp := newTestPane(l, 40, 10, 100)
	sp.ScrollBy(50)

	if !sp.HandleKey(key(tcell.KeyHome, tcell.ModCtrl)) {
		t.Error("HandleKey should return true for Ctrl+Home")
	}
	if sp.ScrollOffset() != 0 {
		t.Errorf("After Ctrl+Home: ScrollOffset = %d, want 0", sp.ScrollOffset())
	}
	if !sp.HandleKey(key(tcell.KeyEnd, tcell.ModCtrl)) {
		t.Error("HandleKey should return true for Ctrl+End")
	}
	if sp.ScrollOffset() != 90 {
		t.Errorf("After Ctrl+End: ScrollOffset = %d, want 90", sp.ScrollOffset())
	}
	if sp.HandleKey(key(tcell.KeyHome, tcell.ModNone)) {
		t.Error("plain Home should not be consumed")
	}
}

func TestScrollPane_HandleMouse_Wheel(t *testing.T) {
	l := newTestLoop(t)
	sp := newTestPane(l, 40, 10, 100)
	sp.ScrollBy(50)

	var got []stick.WheelEvent
	before := 50
	sp.OnWheel(func(ev stick.WheelEvent) {
		got = append(got, ev)
		if sp.ScrollOffset() != before {
			t.Errorf("wheel listener saw offset %d, want %d from before the scroll", sp.ScrollOffset(), before)
		}
	})

	if !sp.HandleMouse(mouseAt(5, 5, tcell.WheelUp)) {
		t.Fatal("wheel up should be consumed")
	}
	if sp.ScrollOffset() != 50-WheelRows {
		t.Errorf("ScrollOffset = %d, want %d", sp.ScrollOffset(), 50-WheelRows)
	}
	if len(got) != 1 || got[0].DeltaY != -WheelRows*DefaultCellHeight {
		t.Fatalf("wheel events = %+v", got)
	}
	// mockWidget is not an element, so the pane is the target.
	if got[0].Target != stick.Element(sp) {
		t.Errorf("Target = %v, want the pane", got[0].Target)
	}

	before = sp.ScrollOffset()
	sp.HandleMouse(mouseAt(5, 5, tcell.WheelDown))
	if sp.ScrollOffset() != 50 {
		t.Errorf("ScrollOffset = %d, want 50", sp.ScrollOffset())
	}
	if len(got) != 2 || got[1].DeltaY != WheelRows*DefaultCellHeight {
		t.Fatalf("wheel events = %+v", got)
	}

	if sp.HandleMouse(mouseAt(60, 5, tcell.WheelUp)) {
		t.Error("wheel outside the pane should not be consumed")
	}
}

func TestScrollPane_WheelWithoutOverflowDoesNotScroll(t *testing.T) {
	l := newTestLoop(t)
	sp := newTestPane(l, 40, 10, 100)
	sp.SetOverflow(stick.OverflowHidden)

	calls := 0
	sp.OnWheel(func(stick.WheelEvent) { calls++ })
	sp.HandleMouse(mouseAt(5, 5, tcell.WheelDown))
	if calls != 1 {
		t.Errorf("wheel listeners called %d times, want 1", calls)
	}
	if sp.ScrollOffset() != 0 {
		t.Errorf("hidden overflow scrolled to %d", sp.ScrollOffset())
	}
}

func TestScrollPane_WheelTargetsTranscript(t *testing.T) {
	l := newTestLoop(t)
	sp := NewScrollPane(l.loop, tcell.StyleDefault)
	sp.Resize(40, 10)
	tr := NewTranscript(l.loop, tcell.StyleDefault)
	sp.SetChild(tr)
	for i := 0; i < 30; i++ {
		tr.Append("line")
	}

	var target stick.Element
	sp.OnWheel(func(ev stick.WheelEvent) { target = ev.Target })
	sp.HandleMouse(mouseAt(1, 1, tcell.WheelUp))
	if target != stick.Element(tr) {
		t.Errorf("Target = %v, want transcript", target)
	}
	if tr.Parent() != stick.Element(sp) {
		t.Error("transcript parent should be the pane")
	}
}

func TestScrollPane_ClampsWhenContentShrinks(t *testing.T) {
	l := newTestLoop(t)
	sp := NewScrollPane(l.loop, tcell.StyleDefault)
	sp.Resize(40, 10)
	tr := NewTranscript(l.loop, tcell.StyleDefault)
	sp.SetChild(tr)
	for i := 0; i < 30; i++ {
		tr.Append("line")
	}
	l.loop.Flush()
	sp.ScrollBy(20)

	tr.Clear()
	for i := 0; i < 15; i++ {
		tr.Append("line")
	}
	l.loop.Flush()
	if sp.ScrollOffset() != 5 {
		t.Errorf("ScrollOffset = %d, want 5 after shrink", sp.ScrollOffset())
	}
}

func TestScrollPane_DrawClipsChildAndIndicators(t *testing.T) {
	l := newTestLoop(t)
	screen := newScreen(t, 20, 10)
	sp := newTestPane(l, 10, 5, 30)
	sp.SetPosition(2, 2)
	sp.ScrollBy(3)

	sp.Draw(core.NewPainter(screen))

	if r, _, _, _ := screen.GetContent(3, 3); r != 'X' {
		t.Errorf("child cell = %q, want 'X'", r)
	}
	if r, _, _, _ := screen.GetContent(3, 8); r == 'X' {
		t.Error("child drew outside the pane")
	}
	if r, _, _, _ := screen.GetContent(11, 2); r != DefaultUpGlyph {
		t.Errorf("up indicator = %q", r)
	}
	if r, _, _, _ := screen.GetContent(11, 6); r != DefaultDownGlyph {
		t.Errorf("down indicator = %q", r)
	}
	if x, y := sp.GetChild().Position(); x != 2 || y != -1 {
		t.Errorf("child position = (%d, %d), want (2, -1)", x, y)
	}
}
