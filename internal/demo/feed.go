// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/demo/feed.go
// Summary: Fake chat feed that streams lorem-ipsum messages in bursts.
// Usage: Initial for the backlog, then Run with a callback that posts the
// bursts onto the UI loop.

package demo

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultLargeRatio is the share of "large" messages.
const DefaultLargeRatio = 0.22

// Message is one generated chat line.
type Message struct {
	ID    int
	Text  string
	Large bool
}

// Feed generates messages. Speed may be changed while Run is active.
type Feed struct {
	clock clockwork.Clock

	mu         sync.Mutex
	rng        *rand.Rand
	speed      float64
	largeRatio float64
	nextID     int
	changed    chan struct{}
}

// NewFeed creates a feed. A nil clock uses the real clock and a nil rng a
// randomly seeded one.
func NewFeed(clock clockwork.Clock, rng *rand.Rand) *Feed {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Feed{
		clock:      clock,
		rng:        rng,
		speed:      0.5,
		largeRatio: DefaultLargeRatio,
		nextID:     1,
		changed:    make(chan struct{}, 1),
	}
}

// SetSpeed sets the speed in [0, 1]; the running schedule restarts.
func (f *Feed) SetSpeed(s float64) {
	f.mu.Lock()
	f.speed = min(max(s, 0), 1)
	f.mu.Unlock()
	select {
	case f.changed <- struct{}{}:
	default:
	}
}

// Speed returns the current speed.
func (f *Feed) Speed() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.speed
}

// SetLargeRatio sets the probability of a large message.
func (f *Feed) SetLargeRatio(r float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.largeRatio = min(max(r, 0), 1)
}

// Interval is the time between bursts: 80ms at full speed, 580ms at zero.
func (f *Feed) Interval() time.Duration {
	s := f.Speed()
	return 80*time.Millisecond + time.Duration((1-s)*500*float64(time.Millisecond))
}

// Next generates one message.
func (f *Feed) Next() Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	m := Message{ID: f.nextID, Large: f.rng.Float64() < f.largeRatio}
	f.nextID++
	if m.Large {
		m.Text = f.words(10)
	} else {
		n := 1
		if f.rng.Float64() < 0.5 {
			n = 2
		}
		m.Text = f.sentences(n)
	}
	return m
}

// Initial returns the backlog shown before streaming starts.
func (f *Feed) Initial(n int) []Message {
	out := make([]Message, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, f.Next())
	}
	return out
}

// Burst returns one to three messages.
func (f *Feed) Burst() []Message {
	out := []Message{f.Next()}
	if f.chance(0.8) {
		out = append(out, f.Next())
	}
	if f.chance(0.5) {
		out = append(out, f.Next())
	}
	return out
}

func (f *Feed) chance(p float64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rng.Float64() < p
}

// Run emits a burst every Interval until ctx is done.
func (f *Feed) Run(ctx context.Context, emit func([]Message)) error {
	timer := f.clock.NewTimer(f.Interval())
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-f.changed:
			timer.Reset(f.Interval())
		case <-timer.Chan():
			emit(f.Burst())
			timer.Reset(f.Interval())
		}
	}
}

func (f *Feed) words(n int) string {
	w := make([]string, n)
	for i := range w {
		w[i] = lorem[f.rng.IntN(len(lorem))]
	}
	return strings.Join(w, " ")
}

// sentences returns n sentences of 3 to 12 words.
func (f *Feed) sentences(n int) string {
	s := make([]string, n)
	for i := range s {
		text := f.words(3 + f.rng.IntN(10))
		s[i] = strings.ToUpper(text[:1]) + text[1:] + "."
	}
	return strings.Join(s, " ")
}

var lorem = strings.Fields(`lorem ipsum dolor sit amet consectetur adipiscing elit
sed do eiusmod tempor incididunt ut labore et dolore magna aliqua enim ad minim
veniam quis nostrud exercitation ullamco laboris nisi aliquip ex ea commodo
consequat duis aute irure in reprehenderit voluptate velit esse cillum fugiat
nulla pariatur excepteur sint occaecat cupidatat non proident sunt culpa qui
officia deserunt mollit anim id est laborum`)
