// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package theming

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/framegrace/texelstick/config"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStyles(t *testing.T) {
	s := Default()

	fg, _, attr := s.Large.Decompose()
	assert.Equal(t, tcell.ColorYellow, fg)
	assert.NotZero(t, attr&tcell.AttrBold)

	fg, bg, _ := s.Badge.Decompose()
	assert.Equal(t, tcell.ColorBlack, fg)
	assert.Equal(t, tcell.ColorAqua, bg)
}

func TestForAppOverrides(t *testing.T) {
	cfg := config.Defaults()
	theme := cfg.Section("theme")
	theme["large_fg"] = "#ff8800"
	theme["frame_fg"] = "no-such-color"
	theme["header_bg"] = "Default"

	s := ForApp(cfg)

	fg, _, _ := s.Large.Decompose()
	assert.Equal(t, tcell.NewHexColor(0xff8800), fg)
	fg, _, _ = s.Frame.Decompose()
	assert.Equal(t, tcell.ColorDefault, fg)
	_, bg, _ := s.Header.Decompose()
	assert.Equal(t, tcell.ColorDefault, bg)

	// Defaults are not shared with the modified copy.
	fg, _, _ = Default().Large.Decompose()
	assert.Equal(t, tcell.ColorYellow, fg)
}

func TestForAppReadsThemeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme:\n  large_fg: red\n"), 0o644))
	config.SetPath(path)
	t.Cleanup(func() { config.SetPath("") })
	require.NoError(t, config.Reload())

	s := ForApp(config.Get())
	fg, _, _ := s.Large.Decompose()
	assert.Equal(t, tcell.ColorRed, fg)
	_, bg, _ := s.Badge.Decompose()
	assert.Equal(t, tcell.ColorAqua, bg, "unset keys keep their defaults")
}
