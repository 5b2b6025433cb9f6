// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Process-wide configuration store for texelstick.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config stores configuration sections as YAML-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

var (
	mu       sync.RWMutex
	once     sync.Once
	current  Config
	loadErr  error
	lastLoad LoadStatus
	override string
)

// SetPath makes the store read and write path instead of the default
// location. It must be called before the first access to take effect
// without a Reload.
func SetPath(path string) {
	mu.Lock()
	defer mu.Unlock()
	override = path
}

// Path returns the file the store reads and writes.
func Path() (string, error) {
	mu.RLock()
	defer mu.RUnlock()
	return configPath()
}

// Err returns the most recent load error.
func Err() error {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

// Get returns the loaded configuration with defaults applied.
func Get() Config {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Reload reads the configuration file again.
func Reload() error {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	current, loadErr = loadLocked()
	return loadErr
}

// Save persists the in-memory configuration.
func Save() error {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	path, err := configPath()
	if err != nil {
		return fmt.Errorf("config: resolve path: %w", err)
	}
	return writeConfig(path, current)
}

// Set replaces the in-memory configuration. Missing keys get defaults.
func Set(cfg Config) {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	cfg = Clone(cfg)
	if cfg == nil {
		cfg = make(Config)
	}
	applyDefaults(cfg)
	current = cfg
}

func initStore() {
	mu.Lock()
	defer mu.Unlock()
	current, loadErr = loadLocked()
}

func readConfig(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := decodeYAML(data)
	if err != nil {
		return nil, true, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, true, nil
}

// decodeYAML parses data into a Config whose nested mappings are Sections.
// yaml.v3 decodes nested mappings into the destination's map type, so the
// document is read as a plain map and converted here.
func decodeYAML(data []byte) (Config, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	cfg := make(Config, len(raw))
	for name, value := range raw {
		if m, ok := value.(map[string]interface{}); ok {
			cfg[name] = Section(m)
			continue
		}
		cfg[name] = value
	}
	return cfg, nil
}

func writeConfig(path string, cfg Config) error {
	if cfg == nil {
		cfg = make(Config)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(map[string]interface{}(cfg))
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
