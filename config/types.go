// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed access helpers for config store data.

package config

import "strconv"

// Section returns the named section or nil if missing.
func (c Config) Section(sectionName string) Section {
	if c == nil {
		return nil
	}
	if sectionName == "" {
		return Section(c)
	}
	switch v := c[sectionName].(type) {
	case Section:
		return v
	case Config:
		return Section(v)
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}

// RegisterDefaults ensures a section has defaults without overwriting existing keys.
func (c Config) RegisterDefaults(sectionName string, defaults Section) {
	if c == nil || defaults == nil {
		return
	}
	section := c.Section(sectionName)
	if section == nil {
		if sectionName == "" {
			section = Section(c)
		} else {
			section = make(Section, len(defaults))
			c[sectionName] = section
		}
	}
	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

// GetString retrieves a string value from the config.
func (c Config) GetString(sectionName, key, defaultValue string) string {
	if v, ok := c.Section(sectionName)[key].(string); ok {
		return v
	}
	return defaultValue
}

// GetFloat retrieves a float value from the config. YAML integers and
// numeric strings are accepted.
func (c Config) GetFloat(sectionName, key string, defaultValue float64) float64 {
	switch v := c.Section(sectionName)[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetInt retrieves an integer value from the config.
func (c Config) GetInt(sectionName, key string, defaultValue int) int {
	switch v := c.Section(sectionName)[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetBool retrieves a boolean value from the config.
func (c Config) GetBool(sectionName, key string, defaultValue bool) bool {
	switch v := c.Section(sectionName)[key].(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	case int:
		return v != 0
	}
	return defaultValue
}

// Set stores value under sectionName/key, creating the section.
func (c Config) Set(sectionName, key string, value interface{}) {
	if c == nil {
		return
	}
	c.RegisterDefaults(sectionName, Section{})
	c.Section(sectionName)[key] = value
}

// Clone returns a copy of the config with every section copied.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	clone := make(Config, len(cfg))
	for name, raw := range cfg {
		var section map[string]interface{}
		switch v := raw.(type) {
		case Section:
			section = v
		case Config:
			section = v
		case map[string]interface{}:
			section = v
		default:
			clone[name] = v
			continue
		}
		out := make(Section, len(section))
		for key, value := range section {
			out[key] = value
		}
		clone[name] = out
	}
	return clone
}
