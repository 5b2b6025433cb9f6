// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/transcript.go
// Summary: Append-only, word-wrapped message list with drag selection.
// The transcript is the engine's content element: it reports its height in
// pixels to size observers, asynchronously and coalesced like a resize
// observer, and exposes the current selection to the stick surface.

package scroll

import (
	"strings"

	"github.com/framegrace/texelstick/stick"
	"github.com/framegrace/texelstick/texelui/core"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Entry is one appended message.
type Entry struct {
	Text  string
	Style tcell.Style
}

type row struct {
	text  string
	style tcell.Style
}

// Transcript renders entries top to bottom, wrapping them to its width.
type Transcript struct {
	core.BaseWidget
	Style          tcell.Style
	SelectionStyle tcell.Style
	// Gap is the number of blank rows between entries.
	Gap int

	sched      stick.Scheduler
	parent     stick.Element
	cellHeight float64
	entries    []Entry
	rows       []row
	inv        func(core.Rect)

	seq       uint64
	observers []listener[func(float64)]
	reported  float64
	queued    bool

	selecting   bool
	selAnchor   int
	selHead     int
	hasSelected bool
}

// NewTranscript creates an empty transcript whose size reports run on sched.
func NewTranscript(sched stick.Scheduler, style tcell.Style) *Transcript {
	return &Transcript{
		Style:          style,
		SelectionStyle: style.Reverse(true),
		sched:          sched,
		cellHeight:     DefaultCellHeight,
		reported:       -1,
	}
}

// SetCellHeight changes the pixel height of one row.
func (t *Transcript) SetCellHeight(h float64) {
	if h > 0 {
		t.cellHeight = h
		t.heightChanged()
	}
}

// SetParent implements parented.
func (t *Transcript) SetParent(p stick.Element) { t.parent = p }

// Parent implements stick.Element.
func (t *Transcript) Parent() stick.Element { return t.parent }

// Overflow implements stick.Element. Transcripts never scroll themselves.
func (t *Transcript) Overflow() stick.Overflow { return stick.OverflowVisible }

// SetInvalidator implements core.InvalidationAware.
func (t *Transcript) SetInvalidator(fn func(core.Rect)) { t.inv = fn }

// Append adds a message with the transcript's style.
func (t *Transcript) Append(text string) {
	t.AppendEntry(Entry{Text: text, Style: t.Style})
}

// AppendEntry adds a styled message.
func (t *Transcript) AppendEntry(e Entry) {
	if len(t.entries) > 0 {
		for i := 0; i < t.Gap; i++ {
			t.rows = append(t.rows, row{style: t.Style})
		}
	}
	t.entries = append(t.entries, e)
	t.rows = append(t.rows, wrapEntry(e, t.Rect.W)...)
	t.heightChanged()
}

// Clear removes every entry.
func (t *Transcript) Clear() {
	t.entries = nil
	t.rows = nil
	t.ClearSelection()
	t.heightChanged()
}

// Len returns the number of entries.
func (t *Transcript) Len() int { return len(t.entries) }

// Rows returns the number of wrapped rows.
func (t *Transcript) Rows() int { return len(t.rows) }

// Height returns the content height in pixels.
func (t *Transcript) Height() float64 { return float64(len(t.rows)) * t.cellHeight }

// Size reports the transcript's width and its wrapped row count.
func (t *Transcript) Size() (int, int) { return t.Rect.W, len(t.rows) }

// Resize rewraps on width changes. The height is derived from the content.
func (t *Transcript) Resize(w, _ int) {
	if w < 0 {
		w = 0
	}
	if w == t.Rect.W && t.rows != nil {
		return
	}
	t.Rect.W = w
	t.reflow()
}

func (t *Transcript) reflow() {
	t.rows = t.rows[:0]
	for i, e := range t.entries {
		if i > 0 {
			for j := 0; j < t.Gap; j++ {
				t.rows = append(t.rows, row{style: t.Style})
			}
		}
		t.rows = append(t.rows, wrapEntry(e, t.Rect.W)...)
	}
	t.ClearSelection()
	t.heightChanged()
}

// ObserveSize implements stick.SizeObserver.
func (t *Transcript) ObserveSize(fn func(height float64)) func() {
	t.seq++
	id := t.seq
	t.observers = append(t.observers, listener[func(float64)]{id: id, fn: fn})
	if t.sched != nil {
		t.sched.Defer(0, func() {
			for _, o := range t.observers {
				if o.id == id {
					t.reported = t.Height()
					fn(t.reported)
					return
				}
			}
		})
	}
	return func() { t.observers = removeListener(t.observers, id) }
}

// heightChanged schedules one size report carrying the latest height.
func (t *Transcript) heightChanged() {
	if t.inv != nil {
		t.inv(t.Rect)
	}
	if t.queued || t.sched == nil {
		return
	}
	t.queued = true
	t.sched.Defer(0, func() {
		t.queued = false
		h := t.Height()
		if h == t.reported {
			return
		}
		t.reported = h
		for _, o := range append([]listener[func(float64)](nil), t.observers...) {
			o.fn(h)
		}
	})
}

// Draw paints the rows that fall inside the painter's clip.
func (t *Transcript) Draw(p *core.Painter) {
	clip := p.Clip()
	first := max(clip.Y-t.Rect.Y, 0)
	last := min(clip.Y+clip.H-t.Rect.Y, len(t.rows))
	lo, hi := t.selectionRange()
	for i := first; i < last; i++ {
		y := t.Rect.Y + i
		style := t.rows[i].style
		if t.hasSelected && i >= lo && i <= hi {
			style = t.SelectionStyle
			p.Fill(core.Rect{X: t.Rect.X, Y: y, W: t.Rect.W, H: 1}, ' ', style)
		}
		p.DrawText(t.Rect.X, y, t.rows[i].text, style)
	}
}

// HitTest covers the full wrapped height.
func (t *Transcript) HitTest(x, y int) bool {
	return core.Rect{X: t.Rect.X, Y: t.Rect.Y, W: t.Rect.W, H: len(t.rows)}.Contains(x, y)
}

// HandleMouse implements line-wise drag selection with the primary button.
func (t *Transcript) HandleMouse(ev *tcell.EventMouse) bool {
	_, y := ev.Position()
	r := min(max(y-t.Rect.Y, 0), max(len(t.rows)-1, 0))
	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !t.selecting:
		t.selecting = true
		t.selAnchor, t.selHead = r, r
		t.hasSelected = false
	case pressed:
		if r != t.selHead || r != t.selAnchor {
			t.hasSelected = true
		}
		t.selHead = r
	case t.selecting:
		t.selecting = false
	default:
		return false
	}
	if t.inv != nil {
		t.inv(t.Rect)
	}
	return true
}

// SelectionAnchor implements stick.SelectionProvider. A selection is
// reported as soon as a drag covers more than its starting row.
func (t *Transcript) SelectionAnchor() (stick.Element, bool) {
	if !t.hasSelected {
		return nil, false
	}
	return t, true
}

// SelectedText returns the selected rows joined by newlines.
func (t *Transcript) SelectedText() string {
	if !t.hasSelected {
		return ""
	}
	lo, hi := t.selectionRange()
	lines := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi && i < len(t.rows); i++ {
		lines = append(lines, t.rows[i].text)
	}
	return strings.Join(lines, "\n")
}

// ClearSelection drops the current selection.
func (t *Transcript) ClearSelection() {
	t.selecting = false
	t.hasSelected = false
}

func (t *Transcript) selectionRange() (int, int) {
	return min(t.selAnchor, t.selHead), max(t.selAnchor, t.selHead)
}

// wrapEntry breaks e into rows of at most width cells, preferring spaces.
func wrapEntry(e Entry, width int) []row {
	var out []row
	for _, para := range strings.Split(e.Text, "\n") {
		for _, line := range wrapLine(para, width) {
			out = append(out, row{text: line, style: e.Style})
		}
	}
	return out
}

func wrapLine(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	var cur strings.Builder
	curW := 0
	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		if curW > 0 && curW+1+ww <= width {
			cur.WriteByte(' ')
			cur.WriteString(word)
			curW += 1 + ww
			continue
		}
		if curW > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curW = 0
		}
		for ww > width {
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// A single rune wider than the row.
				head = string([]rune(word)[:1])
			}
			lines = append(lines, head)
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		cur.WriteString(word)
		curW = ww
	}
	if curW > 0 || len(lines) == 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
