// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: stick/animation.go
// Summary: Spring parameters, behavior tokens and the memoizing animation merger.
// Notes: Equal merged values share one *Resolved so callers can compare with ==.

package stick

import "sync"

// Default spring tuning used when no layer overrides a field.
const (
	DefaultDamping   = 0.7
	DefaultStiffness = 0.05
	DefaultMass      = 1.25
)

// Layer is one entry in an animation layering: a Spring, a Behavior token,
// a Lock flag or an already resolved behavior.
type Layer interface {
	layer()
}

// Spring is a partial spring configuration. Zero fields inherit from
// earlier layers (or the defaults).
type Spring struct {
	Damping   float64 `yaml:"damping"`
	Stiffness float64 `yaml:"stiffness"`
	Mass      float64 `yaml:"mass"`
}

func (Spring) layer() {}

// Behavior is a named motion token.
type Behavior string

const (
	// Instant jumps straight to the target.
	Instant Behavior = "instant"
	// Smooth and Auto are native scroll tokens. They do not alter the spring.
	Smooth Behavior = "smooth"
	Auto   Behavior = "auto"
)

func (Behavior) layer() {}

// Lock is a boolean layer. It never contributes to the merged behavior; it
// exists so the initial option can say "start locked" or "start unlocked".
type Lock bool

func (Lock) layer() {}

// Resolved is an immutable, fully merged behavior. A nil *Resolved is never
// returned by MergeAnimations.
type Resolved struct {
	damping   float64
	stiffness float64
	mass      float64
	instant   bool
}

func (*Resolved) layer() {}

// IsInstant reports whether the behavior jumps instead of integrating.
func (r *Resolved) IsInstant() bool { return r.instant }

// Spring returns the resolved spring triple. Instant behaviors return zero.
func (r *Resolved) Spring() Spring {
	if r.instant {
		return Spring{}
	}
	return Spring{Damping: r.damping, Stiffness: r.stiffness, Mass: r.mass}
}

func (r *Resolved) String() string {
	if r.instant {
		return string(Instant)
	}
	return "spring"
}

var (
	animationMu    sync.Mutex
	animationCache = map[Spring]*Resolved{}

	instantBehavior = &Resolved{instant: true}
)

// MergeAnimations layers the given entries over the default spring.
// Later springs override earlier fields, Instant switches the result to the
// instant sentinel and any later spring switches it back.
func MergeAnimations(layers ...Layer) *Resolved {
	result := Spring{Damping: DefaultDamping, Stiffness: DefaultStiffness, Mass: DefaultMass}
	instant := false

	for _, l := range layers {
		var s Spring
		switch v := l.(type) {
		case Behavior:
			if v == Instant {
				instant = true
			}
			continue
		case Spring:
			s = v
		case *Resolved:
			if v == nil {
				continue
			}
			if v.instant {
				instant = true
				continue
			}
			s = v.Spring()
		default:
			continue
		}
		instant = false
		if s.Damping != 0 {
			result.Damping = s.Damping
		}
		if s.Stiffness != 0 {
			result.Stiffness = s.Stiffness
		}
		if s.Mass != 0 {
			result.Mass = s.Mass
		}
	}

	animationMu.Lock()
	cached, ok := animationCache[result]
	if !ok {
		cached = &Resolved{damping: result.Damping, stiffness: result.Stiffness, mass: result.Mass}
		animationCache[result] = cached
	}
	animationMu.Unlock()

	if instant {
		return instantBehavior
	}
	return cached
}
