// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/embedded.go
// Summary: Loads and caches the parsed defaults from the embedded YAML file.
// The embedded default.yaml is the single source of truth for defaults.

package config

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed default.yaml
var defaultYAML []byte

var (
	embeddedOnce sync.Once
	embedded     Config
	embeddedErr  error
)

// embeddedDefaults returns the parsed defaults. The result is cached.
func embeddedDefaults() (Config, error) {
	embeddedOnce.Do(func() {
		cfg, err := decodeYAML(defaultYAML)
		if err != nil {
			embeddedErr = fmt.Errorf("config: parse embedded defaults: %w", err)
			return
		}
		embedded = cfg
	})
	return embedded, embeddedErr
}

// DefaultYAML returns the commented default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}
