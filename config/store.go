// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load logic for the config store.

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadStatus describes the most recent load. The store never logs; callers
// report it once their own logger is set up.
type LoadStatus struct {
	Path    string
	Created bool
	Err     error
}

// Status returns the outcome of the most recent load.
func Status() LoadStatus {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return lastLoad
}

// loadLocked reads the configuration file. A missing file is created from
// the embedded defaults; a broken one is reported and replaced by defaults
// in memory only, so the user's file is never overwritten.
func loadLocked() (Config, error) {
	lastLoad = LoadStatus{}
	path, err := configPath()
	if err != nil {
		lastLoad.Err = fmt.Errorf("config: resolve path: %w", err)
		return Defaults(), lastLoad.Err
	}
	lastLoad.Path = path

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		lastLoad.Err = readErr
		return Defaults(), readErr
	}

	if !exists {
		if err := writeDefaultFile(path); err != nil {
			lastLoad.Err = err
			return Defaults(), err
		}
		lastLoad.Created = true
		return Defaults(), nil
	}

	if cfg == nil {
		cfg = make(Config)
	}
	applyDefaults(cfg)
	return cfg, nil
}

// writeDefaultFile writes the commented defaults rather than a re-encoded map.
func writeDefaultFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	if err := os.WriteFile(path, DefaultYAML(), 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
