// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/settings.go
// Summary: Typed views of the stick, demo and logging sections.

package config

import (
	"strings"

	"github.com/framegrace/texelstick/stick"
)

// StickSettings holds the engine options read from the "stick" section.
type StickSettings struct {
	Spring     stick.Spring
	Resize     stick.Layer
	Initial    stick.Layer
	CellHeight float64
}

// DemoSettings configures the streaming demo.
type DemoSettings struct {
	Speed           float64
	FPS             int
	InitialMessages int
	LargeRatio      float64
	PageEasing      string
}

// LogSettings configures the process logger.
type LogSettings struct {
	Level  string
	Format string
	File   string
}

// Stick reads the "stick" section. Negative spring fields are treated as
// unset.
func (c Config) Stick() StickSettings {
	s := StickSettings{
		Spring: stick.Spring{
			Damping:   max(c.GetFloat("stick", "damping", 0), 0),
			Stiffness: max(c.GetFloat("stick", "stiffness", 0), 0),
			Mass:      max(c.GetFloat("stick", "mass", 0), 0),
		},
		Resize:     ParseLayer(c.GetString("stick", "resize", "")),
		Initial:    ParseLayer(c.GetString("stick", "initial", "")),
		CellHeight: c.GetFloat("stick", "cell_height", 16),
	}
	if s.CellHeight <= 0 {
		s.CellHeight = 16
	}
	return s
}

// Options converts the settings into engine options.
func (s StickSettings) Options() []stick.Option {
	return []stick.Option{
		stick.WithSpring(s.Spring),
		stick.WithResize(s.Resize),
		stick.WithInitial(s.Initial),
	}
}

// Demo reads the "demo" section, clamping values into usable ranges.
func (c Config) Demo() DemoSettings {
	return DemoSettings{
		Speed:           clamp(c.GetFloat("demo", "speed", 0.5), 0, 1),
		FPS:             int(clamp(float64(c.GetInt("demo", "fps", 60)), 1, 240)),
		InitialMessages: max(c.GetInt("demo", "initial_messages", 20), 0),
		LargeRatio:      clamp(c.GetFloat("demo", "large_ratio", 0.22), 0, 1),
		PageEasing:      c.GetString("demo", "page_easing", "out-quad"),
	}
}

// Logging reads the "logging" section.
func (c Config) Logging() LogSettings {
	return LogSettings{
		Level:  c.GetString("logging", "level", "info"),
		Format: c.GetString("logging", "format", "text"),
		File:   c.GetString("logging", "file", ""),
	}
}

// ParseLayer maps a configuration name to an animation layer. Unknown and
// empty names, and "spring", contribute nothing.
func ParseLayer(name string) stick.Layer {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "instant":
		return stick.Instant
	case "smooth":
		return stick.Smooth
	case "auto":
		return stick.Auto
	case "unlocked", "false":
		return stick.Lock(false)
	default:
		return nil
	}
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
