// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/theming/for_app.go
// Summary: Resolves demo styles from the "theme" config section.

package theming

import (
	"strings"

	"github.com/framegrace/texelstick/config"
	"github.com/gdamore/tcell/v2"
)

// Styles are the styles the demo draws with.
type Styles struct {
	Header tcell.Style
	Footer tcell.Style
	Frame  tcell.Style
	Large  tcell.Style
	Badge  tcell.Style
}

// Default returns the styles used when no theme is configured.
func Default() Styles {
	return ForApp(config.Defaults())
}

// ForApp builds styles from cfg. Unknown color names fall back to the
// terminal default.
func ForApp(cfg config.Config) Styles {
	fg := func(key string) tcell.Color { return color(cfg, key) }
	base := tcell.StyleDefault
	return Styles{
		Header: base.Foreground(fg("header_fg")).Background(fg("header_bg")),
		Footer: base.Foreground(fg("footer_fg")),
		Frame:  base.Foreground(fg("frame_fg")),
		Large:  base.Foreground(fg("large_fg")).Bold(true),
		Badge:  base.Foreground(fg("badge_fg")).Background(fg("badge_bg")).Bold(true),
	}
}

func color(cfg config.Config, key string) tcell.Color {
	name := strings.TrimSpace(strings.ToLower(cfg.GetString("theme", key, "")))
	if name == "" || name == "default" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(name)
}
