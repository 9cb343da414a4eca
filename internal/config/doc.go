// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for lampstand.
//
// Configuration is TOML, with built-in defaults, environment variable
// overrides and validation.
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (LAMPSTAND_*)
//   - ~/.lampstand/config.toml
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Reload when the file changes:
//
//	w, err := config.NewWatcher(path, 200*time.Millisecond, func(cfg *config.Config, err error) {
//	    if err == nil {
//	        config.SetGlobal(cfg)
//	    }
//	})
package config
