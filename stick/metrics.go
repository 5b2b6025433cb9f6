// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: stick/metrics.go
// Summary: Prometheus collectors for lock and animation activity.

package stick

import "github.com/prometheus/client_golang/prometheus"

// Escape causes recorded by Metrics.
const (
	EscapeScroll    = "scroll"
	EscapeWheel     = "wheel"
	EscapeSelection = "selection"
	EscapeStop      = "stop"
)

// Metrics groups the engine's collectors. A nil *Metrics records nothing.
type Metrics struct {
	AnimationsStarted *prometheus.CounterVec
	AnimationsJoined  prometheus.Counter
	AnimationsAborted prometheus.Counter
	Escapes           *prometheus.CounterVec
	Resizes           prometheus.Counter
	FrameSteps        prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg when it is
// not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AnimationsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "texelstick",
			Name:      "animations_started_total",
			Help:      "Scroll-to-bottom animations started, by behavior",
		}, []string{"behavior"}),
		AnimationsJoined: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "texelstick",
			Name:      "animations_joined_total",
			Help:      "Scroll-to-bottom requests coalesced onto an in-flight animation",
		}),
		AnimationsAborted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "texelstick",
			Name:      "animations_aborted_total",
			Help:      "Animations abandoned because the lock was released",
		}),
		Escapes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "texelstick",
			Name:      "escapes_total",
			Help:      "Times the lock was released, by cause",
		}, []string{"cause"}),
		Resizes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "texelstick",
			Name:      "content_resizes_total",
			Help:      "Content size changes observed",
		}),
		FrameSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "texelstick",
			Name:      "frame_steps_total",
			Help:      "Animation steps executed",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.AnimationsStarted, m.AnimationsJoined, m.AnimationsAborted,
			m.Escapes, m.Resizes, m.FrameSteps)
	}
	return m
}

func (m *Metrics) started(b *Resolved) {
	if m == nil {
		return
	}
	m.AnimationsStarted.WithLabelValues(b.String()).Inc()
}

func (m *Metrics) joined() {
	if m != nil {
		m.AnimationsJoined.Inc()
	}
}

func (m *Metrics) aborted() {
	if m != nil {
		m.AnimationsAborted.Inc()
	}
}

func (m *Metrics) escaped(cause string) {
	if m != nil {
		m.Escapes.WithLabelValues(cause).Inc()
	}
}

func (m *Metrics) resized() {
	if m != nil {
		m.Resizes.Inc()
	}
}

func (m *Metrics) stepped() {
	if m != nil {
		m.FrameSteps.Inc()
	}
}
