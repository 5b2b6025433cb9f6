// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package demo

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFeed(clock clockwork.Clock) *Feed {
	return NewFeed(clock, rand.New(rand.NewPCG(1, 2)))
}

func TestFeedInterval(t *testing.T) {
	f := newTestFeed(nil)
	assert.Equal(t, 330*time.Millisecond, f.Interval())

	f.SetSpeed(1)
	assert.Equal(t, 80*time.Millisecond, f.Interval())

	f.SetSpeed(-3)
	assert.Equal(t, 0.0, f.Speed())
	assert.Equal(t, 580*time.Millisecond, f.Interval())
}

func TestFeedInitialIDs(t *testing.T) {
	f := newTestFeed(nil)
	msgs := f.Initial(20)
	require.Len(t, msgs, 20)
	for i, m := range msgs {
		assert.Equal(t, i+1, m.ID)
		assert.NotEmpty(t, m.Text)
	}
}

func TestFeedMessageShapes(t *testing.T) {
	f := newTestFeed(nil)

	f.SetLargeRatio(1)
	m := f.Next()
	assert.True(t, m.Large)
	assert.Len(t, strings.Fields(m.Text), 10)

	f.SetLargeRatio(0)
	for i := 0; i < 50; i++ {
		m := f.Next()
		assert.False(t, m.Large)
		assert.True(t, strings.HasSuffix(m.Text, "."), m.Text)
		n := strings.Count(m.Text, ".")
		assert.True(t, n == 1 || n == 2, m.Text)
	}
}

func TestFeedBurstSize(t *testing.T) {
	f := newTestFeed(nil)
	for i := 0; i < 100; i++ {
		n := len(f.Burst())
		assert.True(t, n >= 1 && n <= 3, "burst of %d", n)
	}
}

func TestFeedRunEmitsOnInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	f := newTestFeed(clock)
	f.SetSpeed(1)
	<-f.changed

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan []Message, 4)
	done := make(chan error, 1)
	go func() { done <- f.Run(ctx, func(m []Message) { got <- m }) }()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(80 * time.Millisecond)

	select {
	case burst := <-got:
		assert.NotEmpty(t, burst)
	case <-time.After(time.Second):
		t.Fatal("no burst emitted")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop")
	}
}
