// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/scrollpane.go
// Summary: ScrollPane widget for scrollable content that exceeds viewport size.
// The pane is a stick.Viewport: positions are in pixels (rows * CellHeight)
// and scroll listeners fire asynchronously on the scheduler, once per burst.

package scroll

import (
	"math"
	"time"

	"github.com/framegrace/texelstick/internal/effects"
	"github.com/framegrace/texelstick/stick"
	"github.com/framegrace/texelstick/texelui/core"
	"github.com/gdamore/tcell/v2"
)

// DefaultCellHeight is the number of pixels one terminal row stands for.
const DefaultCellHeight = 16

// WheelRows is how far one wheel notch scrolls.
const WheelRows = 3

// PageDuration is the length of the eased PgUp/PgDn animation.
const PageDuration = 150 * time.Millisecond

// parented is implemented by children that take part in the element tree.
type parented interface {
	SetParent(stick.Element)
}

type listener[T any] struct {
	id uint64
	fn T
}

// ScrollPane is a container widget that scrolls its child when content exceeds the viewport.
// It handles vertical scrolling with keyboard and mouse wheel input.
type ScrollPane struct {
	core.BaseWidget
	Style           tcell.Style
	IndicatorStyle  tcell.Style
	sched           stick.Scheduler
	child           core.Widget
	parent          stick.Element
	overflow        stick.Overflow
	cellHeight      float64
	top             float64
	inv             func(core.Rect)
	showIndicators  bool
	indicatorConfig IndicatorConfig

	seq          uint64
	scrollSubs   []listener[func()]
	wheelSubs    []listener[func(stick.WheelEvent)]
	scrollQueued bool
	unobserve    func()

	pager  *effects.Timeline
	paging bool
}

// NewScrollPane creates a scroll pane whose scroll events run on sched.
func NewScrollPane(sched stick.Scheduler, style tcell.Style) *ScrollPane {
	sp := &ScrollPane{
		Style:          style,
		IndicatorStyle: style.Dim(true),
		sched:          sched,
		overflow:       stick.OverflowAuto,
		cellHeight:     DefaultCellHeight,
		showIndicators: true,
		pager:          effects.NewTimeline(effects.EaseOutQuad),
	}
	sp.indicatorConfig = DefaultIndicatorConfig(sp.IndicatorStyle)
	return sp
}

// SetCellHeight changes the pixel height of one row.
func (sp *ScrollPane) SetCellHeight(h float64) {
	if h > 0 {
		sp.cellHeight = h
	}
}

// CellHeight returns the pixel height of one row.
func (sp *ScrollPane) CellHeight() float64 { return sp.cellHeight }

// SetPageEasing replaces the easing used by PageBy, e.g. "out-cubic".
func (sp *ScrollPane) SetPageEasing(name string) {
	sp.stopPaging()
	sp.pager = effects.NewTimeline(effects.EasingByName(name))
}

// SetChild sets the child widget to be scrolled.
// The child's position will be managed by the scroll pane.
func (sp *ScrollPane) SetChild(child core.Widget) {
	if sp.unobserve != nil {
		sp.unobserve()
		sp.unobserve = nil
	}
	if p, ok := sp.child.(parented); ok {
		p.SetParent(nil)
	}
	sp.child = child
	if child == nil {
		sp.clamp()
		return
	}
	if p, ok := child.(parented); ok {
		p.SetParent(sp)
	}
	if sp.inv != nil {
		if ia, ok := child.(core.InvalidationAware); ok {
			ia.SetInvalidator(sp.inv)
		}
	}
	sp.fitChild()
	if so, ok := child.(stick.SizeObserver); ok {
		sp.unobserve = so.ObserveSize(func(float64) { sp.clamp() })
	}
	sp.clamp()
}

// GetChild returns the child widget.
func (sp *ScrollPane) GetChild() core.Widget {
	return sp.child
}

// SetParent places the pane inside an outer element.
func (sp *ScrollPane) SetParent(p stick.Element) { sp.parent = p }

// Parent implements stick.Element.
func (sp *ScrollPane) Parent() stick.Element { return sp.parent }

// Overflow implements stick.Element.
func (sp *ScrollPane) Overflow() stick.Overflow { return sp.overflow }

// SetOverflow implements stick.Viewport. Panes that do not scroll ignore
// wheel input.
func (sp *ScrollPane) SetOverflow(o stick.Overflow) { sp.overflow = o }

// ContentRows returns the child's height in rows.
func (sp *ScrollPane) ContentRows() int {
	if sp.child == nil {
		return 0
	}
	_, h := sp.child.Size()
	return h
}

// ScrollTop implements stick.Viewport.
func (sp *ScrollPane) ScrollTop() float64 { return sp.top }

// ScrollHeight implements stick.Viewport.
func (sp *ScrollPane) ScrollHeight() float64 {
	return float64(max(sp.ContentRows(), sp.Rect.H)) * sp.cellHeight
}

// ClientHeight implements stick.Viewport.
func (sp *ScrollPane) ClientHeight() float64 {
	return float64(sp.Rect.H) * sp.cellHeight
}

// maxTop is the largest scroll position.
func (sp *ScrollPane) maxTop() float64 {
	return math.Max(sp.ScrollHeight()-sp.ClientHeight(), 0)
}

// SetScrollTop implements stick.Viewport. The position is clamped and
// rounded to whole pixels.
func (sp *ScrollPane) SetScrollTop(v float64) {
	v = math.Round(math.Min(math.Max(v, 0), sp.maxTop()))
	if v == sp.top {
		return
	}
	sp.top = v
	sp.invalidate()
	sp.queueScroll()
}

func (sp *ScrollPane) clamp() {
	if sp.top > sp.maxTop() {
		sp.SetScrollTop(sp.maxTop())
	}
}

// queueScroll delivers one scroll event for all position changes made
// before the listeners get to run.
func (sp *ScrollPane) queueScroll() {
	if sp.scrollQueued || sp.sched == nil {
		return
	}
	sp.scrollQueued = true
	sp.sched.Defer(0, func() {
		sp.scrollQueued = false
		for _, l := range append([]listener[func()](nil), sp.scrollSubs...) {
			l.fn()
		}
	})
}

// OnScroll implements stick.Viewport.
func (sp *ScrollPane) OnScroll(fn func()) func() {
	sp.seq++
	id := sp.seq
	sp.scrollSubs = append(sp.scrollSubs, listener[func()]{id: id, fn: fn})
	return func() { sp.scrollSubs = removeListener(sp.scrollSubs, id) }
}

// OnWheel implements stick.Viewport.
func (sp *ScrollPane) OnWheel(fn func(stick.WheelEvent)) func() {
	sp.seq++
	id := sp.seq
	sp.wheelSubs = append(sp.wheelSubs, listener[func(stick.WheelEvent)]{id: id, fn: fn})
	return func() { sp.wheelSubs = removeListener(sp.wheelSubs, id) }
}

func removeListener[T any](ls []listener[T], id uint64) []listener[T] {
	for i, l := range ls {
		if l.id == id {
			return append(ls[:i:i], ls[i+1:]...)
		}
	}
	return ls
}

// State returns the current scroll state in rows.
func (sp *ScrollPane) State() State {
	return State{
		Offset:         sp.rowOffset(),
		ContentHeight:  sp.ContentRows(),
		ViewportHeight: sp.Rect.H,
	}
}

// ScrollOffset returns the first visible content row.
func (sp *ScrollPane) ScrollOffset() int { return sp.rowOffset() }

func (sp *ScrollPane) rowOffset() int {
	return int(math.Round(sp.top / sp.cellHeight))
}

// SetInvalidator sets the invalidation callback.
func (sp *ScrollPane) SetInvalidator(fn func(core.Rect)) {
	sp.inv = fn
	if sp.child != nil {
		if ia, ok := sp.child.(core.InvalidationAware); ok {
			ia.SetInvalidator(fn)
		}
	}
}

// invalidate marks the entire scroll pane region as dirty.
func (sp *ScrollPane) invalidate() {
	if sp.inv != nil {
		sp.inv(sp.Rect)
	}
}

// ShowIndicators enables or disables scroll indicators.
func (sp *ScrollPane) ShowIndicators(show bool) {
	sp.showIndicators = show
}

// SetIndicatorConfig sets the indicator configuration.
func (sp *ScrollPane) SetIndicatorConfig(config IndicatorConfig) {
	sp.indicatorConfig = config
}

// Draw renders the scroll pane with its scrolled child content.
// The child's position is rewritten on every draw to reflect the offset.
func (sp *ScrollPane) Draw(painter *core.Painter) {
	rect := sp.Rect
	painter.Fill(rect, ' ', sp.Style)
	if sp.child == nil {
		return
	}

	sp.child.SetPosition(rect.X, rect.Y-sp.rowOffset())
	sp.child.Draw(painter.WithClip(rect))

	if sp.showIndicators {
		DrawIndicators(painter, rect, sp.State(), sp.indicatorConfig)
	}
}

// Resize updates the viewport dimensions. The child keeps its own height.
func (sp *ScrollPane) Resize(w, h int) {
	sp.BaseWidget.Resize(w, h)
	sp.fitChild()
	sp.clamp()
}

// fitChild gives the child the pane's width; the child keeps its height.
func (sp *ScrollPane) fitChild() {
	if sp.child == nil {
		return
	}
	_, h := sp.child.Size()
	sp.child.Resize(sp.Rect.W, h)
}

// ScrollBy scrolls by delta rows (positive = down, negative = up).
func (sp *ScrollPane) ScrollBy(delta int) {
	sp.stopPaging()
	sp.SetScrollTop(sp.top + float64(delta)*sp.cellHeight)
}

// ScrollToTop scrolls to the top of the content.
func (sp *ScrollPane) ScrollToTop() {
	sp.stopPaging()
	sp.SetScrollTop(0)
}

// ScrollToBottom scrolls to the very bottom of the content.
func (sp *ScrollPane) ScrollToBottom() {
	sp.stopPaging()
	sp.SetScrollTop(sp.maxTop())
}

// PageBy eases the view by pages viewport heights.
func (sp *ScrollPane) PageBy(pages int) {
	if sp.sched == nil {
		sp.ScrollBy(pages * sp.Rect.H)
		return
	}
	now := sp.sched.Now()
	from := sp.top
	if sp.pager.IsAnimating(sp) {
		from, _ = sp.pager.Update(sp, now)
	}
	target := math.Min(math.Max(from+float64(pages)*sp.ClientHeight(), 0), sp.maxTop())
	sp.pager.AnimateTo(sp, sp.top, target, PageDuration, now)
	if sp.paging {
		return
	}
	sp.paging = true
	if !sp.sched.RequestFrame(sp.pageFrame) {
		sp.paging = false
		sp.pager.Reset(sp)
		sp.SetScrollTop(target)
	}
}

func (sp *ScrollPane) pageFrame(now time.Time) {
	if !sp.paging {
		return
	}
	v, animating := sp.pager.Update(sp, now)
	sp.SetScrollTop(v)
	if animating && sp.sched.RequestFrame(sp.pageFrame) {
		return
	}
	sp.paging = false
}

func (sp *ScrollPane) stopPaging() {
	sp.paging = false
	sp.pager.Reset(sp)
}

// HandleKey handles keyboard input for scrolling.
func (sp *ScrollPane) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyPgUp:
		sp.PageBy(-1)
		return true
	case tcell.KeyPgDn:
		sp.PageBy(1)
		return true
	case tcell.KeyUp:
		sp.ScrollBy(-1)
		return true
	case tcell.KeyDown:
		sp.ScrollBy(1)
		return true
	case tcell.KeyHome:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			sp.ScrollToTop()
			return true
		}
	case tcell.KeyEnd:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			sp.ScrollToBottom()
			return true
		}
	}
	if sp.child != nil {
		return sp.child.HandleKey(ev)
	}
	return false
}

// HandleMouse handles mouse input for scrolling. Wheel listeners see the
// event before the pane scrolls.
func (sp *ScrollPane) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if !sp.HitTest(x, y) {
		return false
	}

	var rows int
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		rows = -WheelRows
	case ev.Buttons()&tcell.WheelDown != 0:
		rows = WheelRows
	}
	if rows != 0 {
		sp.dispatchWheel(stick.WheelEvent{
			Target: sp.elementAt(x, y),
			DeltaY: float64(rows) * sp.cellHeight,
		})
		if sp.overflow == stick.OverflowAuto || sp.overflow == stick.OverflowScroll {
			sp.ScrollBy(rows)
		}
		return true
	}

	if sp.child != nil {
		if ma, ok := sp.child.(core.MouseAware); ok {
			return ma.HandleMouse(ev)
		}
	}
	return true
}

func (sp *ScrollPane) dispatchWheel(ev stick.WheelEvent) {
	for _, l := range append([]listener[func(stick.WheelEvent)](nil), sp.wheelSubs...) {
		l.fn(ev)
	}
}

// elementAt returns the deepest element under the cell (x, y).
func (sp *ScrollPane) elementAt(x, y int) stick.Element {
	if sp.child != nil && sp.child.HitTest(x, y) {
		if el, ok := sp.child.(stick.Element); ok {
			return el
		}
	}
	return sp
}

// CanScroll returns true if the content can be scrolled.
func (sp *ScrollPane) CanScroll() bool { return sp.State().CanScroll() }

// CanScrollUp returns true if there is content above the viewport.
func (sp *ScrollPane) CanScrollUp() bool { return sp.State().CanScrollUp() }

// CanScrollDown returns true if there is content below the viewport.
func (sp *ScrollPane) CanScrollDown() bool { return sp.State().CanScrollDown() }
