// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Fills missing keys from the embedded defaults.

package config

import "log/slog"

func applyDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	def, err := embeddedDefaults()
	if err != nil {
		slog.Error("config: embedded defaults unavailable", "error", err)
		return
	}
	for name := range def {
		if section := def.Section(name); section != nil {
			cfg.RegisterDefaults(name, section)
			continue
		}
		if _, ok := cfg[name]; !ok {
			cfg[name] = def[name]
		}
	}
}

// Defaults returns a fresh copy of the default configuration.
func Defaults() Config {
	cfg := make(Config)
	applyDefaults(cfg)
	return cfg
}
