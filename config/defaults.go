// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values, backed by the embedded defaults/elastic.json.

package config

import (
	"encoding/json"
	"sync"

	"github.com/framegrace/elastic/defaults"
)

var (
	embeddedOnce sync.Once
	embedded     Config
	embeddedErr  error
)

// embeddedDefaults returns the parsed embedded defaults, cached after the
// first call.
func embeddedDefaults() (Config, error) {
	embeddedOnce.Do(func() {
		data, err := defaults.Config()
		if err != nil {
			embeddedErr = err
			return
		}
		var cfg Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			embeddedErr = err
			return
		}
		embedded = cfg
	})
	return embedded, embeddedErr
}

// defaultConfig returns a clone of the embedded defaults, nil if they
// cannot be parsed.
func defaultConfig() Config {
	cfg, err := embeddedDefaults()
	if err != nil || cfg == nil {
		return nil
	}
	return Clone(cfg)
}

// applyDefaults fills keys missing from cfg. It does not rely on the
// embedded file so a broken build still yields usable settings.
func applyDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("align", Section{
		"max_columns": 0,
	})
	cfg.RegisterDefaults("preview", Section{
		"color":     "auto",
		"style":     "catppuccin-mocha",
		"formatter": "terminal256",
	})
}
