// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package stick

import (
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

// fakeNode is a plain element in the fake host tree.
type fakeNode struct {
	parent   Element
	overflow Overflow
}

func (n *fakeNode) Parent() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}
func (n *fakeNode) Overflow() Overflow { return n.overflow }

// fakeViewport behaves like a DOM scroll container at a device pixel ratio
// of one: positions are whole pixels and scroll events fire asynchronously.
type fakeViewport struct {
	loop     *Loop
	parent   Element
	overflow Overflow
	top      float64
	height   float64
	client   float64
	writes   int

	nextID  int
	scrolls map[int]func()
	wheels  map[int]func(WheelEvent)
	pending bool
}

func newFakeViewport(loop *Loop, height, client float64) *fakeViewport {
	return &fakeViewport{
		loop:    loop,
		height:  height,
		client:  client,
		scrolls: map[int]func(){},
		wheels:  map[int]func(WheelEvent){},
	}
}

func (v *fakeViewport) Parent() Element {
	if v.parent == nil {
		return nil
	}
	return v.parent
}

func (v *fakeViewport) Overflow() Overflow        { return v.overflow }
func (v *fakeViewport) SetOverflow(o Overflow)    { v.overflow = o }
func (v *fakeViewport) ScrollTop() float64        { return v.top }
func (v *fakeViewport) ScrollHeight() float64     { return v.height }
func (v *fakeViewport) ClientHeight() float64     { return v.client }
func (v *fakeViewport) maxTop() float64           { return math.Max(0, v.height-v.client) }
func (v *fakeViewport) listenerCount() (int, int) { return len(v.scrolls), len(v.wheels) }

func (v *fakeViewport) SetScrollTop(top float64) {
	v.writes++
	v.moveTo(top)
}

// userScroll moves the viewport the way a user gesture would.
func (v *fakeViewport) userScroll(top float64) {
	v.moveTo(top)
}

func (v *fakeViewport) moveTo(top float64) {
	top = math.Round(math.Min(math.Max(top, 0), v.maxTop()))
	if top == v.top {
		return
	}
	v.top = top
	v.queueScroll()
}

func (v *fakeViewport) queueScroll() {
	if v.pending {
		return
	}
	v.pending = true
	v.loop.Defer(0, func() {
		v.pending = false
		for _, fn := range v.scrolls {
			fn()
		}
	})
}

func (v *fakeViewport) wheel(ev WheelEvent) {
	for _, fn := range v.wheels {
		fn(ev)
	}
}

func (v *fakeViewport) OnScroll(fn func()) func() {
	v.nextID++
	id := v.nextID
	v.scrolls[id] = fn
	return func() { delete(v.scrolls, id) }
}

func (v *fakeViewport) OnWheel(fn func(WheelEvent)) func() {
	v.nextID++
	id := v.nextID
	v.wheels[id] = fn
	return func() { delete(v.wheels, id) }
}

// fakeContent is the viewport's only child; its height is the viewport's
// scroll height.
type fakeContent struct {
	fakeNode
	vp        *fakeViewport
	observers map[int]func(float64)
	nextID    int
}

func newFakeContent(vp *fakeViewport) *fakeContent {
	return &fakeContent{
		fakeNode:  fakeNode{parent: vp},
		vp:        vp,
		observers: map[int]func(float64){},
	}
}

func (c *fakeContent) ObserveSize(fn func(float64)) func() {
	c.nextID++
	id := c.nextID
	c.observers[id] = fn
	c.vp.loop.Defer(0, func() {
		if obs, ok := c.observers[id]; ok {
			obs(c.vp.height)
		}
	})
	return func() { delete(c.observers, id) }
}

func (c *fakeContent) setHeight(h float64) {
	c.vp.height = h
	if c.vp.top > c.vp.maxTop() {
		c.vp.top = c.vp.maxTop()
		c.vp.queueScroll()
	}
	c.vp.loop.Defer(0, func() {
		for _, fn := range c.observers {
			fn(h)
		}
	})
}

// staticContent cannot report size changes.
type staticContent struct {
	fakeNode
}

type harness struct {
	t     *testing.T
	clock interface {
		clockwork.Clock
		Advance(time.Duration)
	}
	loop    *Loop
	vp      *fakeViewport
	content *fakeContent
	engine  *Engine
}

// newHarness attaches an engine to a 400px viewport over content of the
// given height. observe controls whether the content reports its size.
func newHarness(t *testing.T, contentHeight float64, observe bool, opts ...Option) *harness {
	t.Helper()
	clock := clockwork.NewFakeClock()
	loop := NewLoop(clock, 60)
	vp := newFakeViewport(loop, contentHeight, 400)
	content := newFakeContent(vp)
	h := &harness{t: t, clock: clock, loop: loop, vp: vp, content: content}
	h.engine = New(loop, opts...)
	if observe {
		h.engine.Attach(vp, content)
	} else {
		h.engine.Attach(vp, &staticContent{fakeNode{parent: vp}})
	}
	return h
}

// tick advances one frame: due tasks, frame callbacks, then tasks they queued.
func (h *harness) tick() {
	h.clock.Advance(h.loop.Interval())
	h.loop.Flush()
	h.loop.Frame()
	h.loop.Flush()
}

func (h *harness) ticks(n int) {
	for i := 0; i < n; i++ {
		h.tick()
	}
}

// settle runs frames until nothing is scheduled.
func (h *harness) settle() {
	h.t.Helper()
	for i := 0; i < 2000; i++ {
		h.tick()
		if tasks, frames := h.loop.Pending(); tasks == 0 && frames == 0 {
			return
		}
	}
	h.t.Fatal("loop did not settle")
}

const (
	millisecond = time.Millisecond
	second      = time.Second
)
