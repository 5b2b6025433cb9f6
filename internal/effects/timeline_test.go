// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package effects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimelineEasesToTarget(t *testing.T) {
	tl := NewTimeline(EaseLinear)
	start := time.Unix(0, 0)
	tl.AnimateTo("pane", 0, 100, 100*time.Millisecond, start)
	assert.True(t, tl.IsAnimating("pane"))

	v, animating := tl.Update("pane", start.Add(50*time.Millisecond))
	assert.True(t, animating)
	assert.InDelta(t, 50, v, 0.5)

	v, animating = tl.Update("pane", start.Add(150*time.Millisecond))
	assert.False(t, animating)
	assert.Equal(t, 100.0, v)
	assert.False(t, tl.IsAnimating("pane"))
}

func TestTimelineZeroDurationJumps(t *testing.T) {
	tl := NewTimeline(nil)
	now := time.Unix(0, 0)
	tl.AnimateTo(1, 10, 40, 0, now)
	v, animating := tl.Update(1, now)
	assert.False(t, animating)
	assert.Equal(t, 40.0, v)
}

func TestTimelineRetargetsFromCurrentValue(t *testing.T) {
	tl := NewTimeline(EaseLinear)
	start := time.Unix(0, 0)
	tl.AnimateTo("k", 0, 100, 100*time.Millisecond, start)
	tl.Update("k", start.Add(50*time.Millisecond))

	// The from argument is ignored while an animation is in flight.
	tl.AnimateTo("k", 999, 0, 100*time.Millisecond, start.Add(50*time.Millisecond))
	v, _ := tl.Update("k", start.Add(100*time.Millisecond))
	assert.InDelta(t, 25, v, 0.5)
}

func TestTimelineUnknownKeyAndReset(t *testing.T) {
	tl := NewTimeline(nil)
	v, animating := tl.Update("missing", time.Now())
	assert.Zero(t, v)
	assert.False(t, animating)

	tl.AnimateTo("k", 0, 10, time.Second, time.Now())
	tl.Reset("k")
	assert.False(t, tl.IsAnimating("k"))
}

func TestEasingByName(t *testing.T) {
	assert.InDelta(t, 0.5, float64(EasingByName("linear")(0.5, 0, 1, 1)), 1e-6)
	assert.NotNil(t, EasingByName("nope"))
}
