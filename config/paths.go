// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelstick configuration.

package config

import (
	"os"
	"path/filepath"
)

const configName = "config.yaml"

// configRoot honours XDG_CONFIG_HOME through os.UserConfigDir.
func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelstick"), nil
}

// DefaultPath returns $XDG_CONFIG_HOME/texelstick/config.yaml.
func DefaultPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, configName), nil
}

func configPath() (string, error) {
	if override != "" {
		return override, nil
	}
	return DefaultPath()
}
