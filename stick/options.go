// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: stick/options.go
// Summary: Engine configuration and functional options.

package stick

import (
	"log/slog"
)

// TargetScrollTopFunc adjusts the computed bottom target, for example to
// leave room for a fixed overlay. The result is clamped into [0, target].
type TargetScrollTopFunc func(target float64, els Elements) float64

// Options is the engine configuration.
type Options struct {
	// Spring tunes the default animation. Zero fields use the defaults.
	Spring
	// Resize is the animation used when content grows after the first layout.
	Resize Layer
	// Initial is the animation for the first layout. Lock(false) starts the
	// engine unlocked; nil means locked with the default animation.
	Initial Layer
	// TargetScrollTop optionally adjusts the bottom target.
	TargetScrollTop TargetScrollTopFunc
}

// settings is everything an Option can touch. Collaborators are fixed at
// construction; SetOptions only copies back the Options part.
type settings struct {
	Options
	surface *Surface
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures an engine. Options compose as a shallow merge.
type Option func(*settings)

// WithSpring overrides the whole spring tuning.
func WithSpring(s Spring) Option {
	return func(o *settings) { o.Spring = s }
}

// WithDamping sets the spring damping.
func WithDamping(v float64) Option {
	return func(o *settings) { o.Damping = v }
}

// WithStiffness sets the spring stiffness.
func WithStiffness(v float64) Option {
	return func(o *settings) { o.Stiffness = v }
}

// WithMass sets the spring mass.
func WithMass(v float64) Option {
	return func(o *settings) { o.Mass = v }
}

// WithResize sets the animation used for growth after the first layout.
func WithResize(l Layer) Option {
	return func(o *settings) { o.Resize = l }
}

// WithInitial sets the first-layout animation, or Lock(false) to start unlocked.
func WithInitial(l Layer) Option {
	return func(o *settings) { o.Initial = l }
}

// WithTargetScrollTop installs a target adjustment callback.
func WithTargetScrollTop(fn TargetScrollTopFunc) Option {
	return func(o *settings) { o.TargetScrollTop = fn }
}

// WithOptions replaces the whole configuration.
func WithOptions(opts Options) Option {
	return func(o *settings) { o.Options = opts }
}

// WithSurface shares pointer and selection state with other engines on the
// same host surface. Only honoured by New.
func WithSurface(s *Surface) Option {
	return func(o *settings) { o.surface = s }
}

// WithLogger sets the engine logger. Defaults to slog.Default(). Only
// honoured by New.
func WithLogger(l *slog.Logger) Option {
	return func(o *settings) { o.logger = l }
}

// WithMetrics records engine activity. Only honoured by New.
func WithMetrics(m *Metrics) Option {
	return func(o *settings) { o.metrics = m }
}
