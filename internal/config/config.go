// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/jeranaias/lampstand/internal/util"
)

// =============================================================================
// CONFIG TYPES
// =============================================================================

// Config is the complete lampstand configuration.
type Config struct {
	Version string `toml:"version"`

	UI            UIConfig            `toml:"ui"`
	Profile       ProfileConfig       `toml:"profile"`
	Notifications NotificationsConfig `toml:"notifications"`
	Log           LogConfig           `toml:"log"`
}

// UIConfig controls the terminal interface.
type UIConfig struct {
	// Theme is "dark", "light" or "auto".
	Theme string `toml:"theme"`

	// ReplyDelayMs is how long the assistant "thinks" before replying.
	ReplyDelayMs int `toml:"reply_delay_ms"`

	// Markdown renders assistant replies through glamour.
	Markdown bool `toml:"markdown"`

	// ActionAlerts confirms copy and share with a toast. Off means the
	// actions are silent.
	ActionAlerts bool `toml:"action_alerts"`
}

// ProfileConfig is the identity shown in the profile menu.
type ProfileConfig struct {
	DisplayName string `toml:"display_name"`
	Email       string `toml:"email"`

	// FailSignOut makes the local identity provider reject sign-out.
	FailSignOut bool `toml:"fail_sign_out"`
}

// NotificationsConfig controls the nav bar badge.
type NotificationsConfig struct {
	Count int `toml:"count"`
}

// LogConfig controls the log file.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	currentVersion      = "1"
	defaultReplyDelayMs = 2000
	defaultBadgeCount   = 3
	maxReplyDelayMs     = 60000
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: currentVersion,
		UI: UIConfig{
			Theme:        "auto",
			ReplyDelayMs: defaultReplyDelayMs,
			Markdown:     true,
			ActionAlerts: true,
		},
		Profile: ProfileConfig{
			DisplayName: "",
			Email:       "",
		},
		Notifications: NotificationsConfig{
			Count: defaultBadgeCount,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ReplyDelay returns the assistant reply delay as a duration.
func (c *Config) ReplyDelay() time.Duration {
	return time.Duration(c.UI.ReplyDelayMs) * time.Millisecond
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the lampstand configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "could not determine home directory")
	}
	return filepath.Join(home, ".lampstand"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DefaultLogPath returns the log file used when none is configured.
func DefaultLogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lampstand.log"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load reads ~/.lampstand/config.toml if it exists, then applies environment
// overrides, defaults and validation. A missing file is not an error.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Default()
		cfg.ApplyEnvOverrides()
		cfg.SetDefaults()
		return cfg, err
	}
	if _, statErr := os.Stat(path); statErr != nil {
		cfg := Default()
		cfg.ApplyEnvOverrides()
		cfg.SetDefaults()
		if err := cfg.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid config")
		}
		return cfg, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific TOML file.
// Keys absent from the file keep their default values.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to load config from %s", path)
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// SetDefaults fills values that must never be empty.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.File == "" {
		if path, err := DefaultLogPath(); err == nil {
			c.Log.File = path
		}
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to ~/.lampstand/config.toml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the configuration as TOML, replacing the file atomically.
func SaveToPath(cfg *Config, path string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# lampstand configuration file")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0o600); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var (
	validThemes = map[string]bool{"dark": true, "light": true, "auto": true}
	validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
)

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.UI.ReplyDelayMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "ui.reply_delay_ms",
			Message: "must not be negative",
		})
	} else if c.UI.ReplyDelayMs > maxReplyDelayMs {
		errs = append(errs, ValidationError{
			Field:   "ui.reply_delay_ms",
			Message: fmt.Sprintf("must be at most %d", maxReplyDelayMs),
		})
	}

	if c.UI.Theme != "" && !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("unknown theme %q (want dark, light or auto)", c.UI.Theme),
		})
	}

	if c.Notifications.Count < 0 {
		errs = append(errs, ValidationError{
			Field:   "notifications.count",
			Message: "must not be negative",
		})
	}

	if c.Log.Level != "" && !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("unknown level %q", c.Log.Level),
		})
	}

	if email := strings.TrimSpace(c.Profile.Email); email != "" && !strings.Contains(email, "@") {
		errs = append(errs, ValidationError{
			Field:   "profile.email",
			Message: "must contain @",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - LAMPSTAND_REPLY_DELAY_MS: overrides ui.reply_delay_ms
//   - LAMPSTAND_DISPLAY_NAME: overrides profile.display_name
//   - LAMPSTAND_EMAIL: overrides profile.email
//   - LAMPSTAND_LOG_LEVEL: overrides log.level
//   - LAMPSTAND_LOG_FILE: overrides log.file
//   - LAMPSTAND_NOTIFICATIONS: overrides notifications.count
//
// Unparseable numbers are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("LAMPSTAND_REPLY_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			c.UI.ReplyDelayMs = ms
		}
	}

	if name := os.Getenv("LAMPSTAND_DISPLAY_NAME"); name != "" {
		c.Profile.DisplayName = name
	}

	if email := os.Getenv("LAMPSTAND_EMAIL"); email != "" {
		c.Profile.Email = email
	}

	if level := os.Getenv("LAMPSTAND_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}

	if file := os.Getenv("LAMPSTAND_LOG_FILE"); file != "" {
		c.Log.File = file
	}

	if v := os.Getenv("LAMPSTAND_NOTIFICATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Notifications.Count = n
		}
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns the configuration as TOML for debugging.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return buf.String()
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if cfg == nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
			cfg.SetDefaults()
		}
		globalConfigMu.Lock()
		if globalConfig == nil {
			globalConfig = cfg
		}
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from path, or from the
// default location when path is empty. Thread-safe.
func ReloadGlobal(path string) error {
	var (
		cfg *Config
		err error
	)
	if path == "" {
		cfg, err = Load()
	} else {
		cfg, err = LoadFromPath(path)
	}
	if cfg == nil {
		return err
	}
	SetGlobal(cfg)
	return err
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
