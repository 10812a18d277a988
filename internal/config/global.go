// Package config provides settings loading and validation for startstream.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/tessro/startstream/internal/paths"
	"github.com/tessro/startstream/internal/programs"
)

// Defaults applied when a setting is absent.
const (
	DefaultLogLevel    = "info"
	DefaultMarker      = programs.DefaultMarker
	DefaultKillTimeout = programs.DefaultKillTimeout
)

// GlobalConfig represents the startstream settings file.
type GlobalConfig struct {
	// LogLevel controls log verbosity ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`

	// ProgramsFile is the program list file. Relative paths resolve against
	// the working directory.
	ProgramsFile string `toml:"programs_file"`

	// Marker is the known executable looked up inside each configured path.
	Marker string `toml:"marker"`

	// KillTimeout bounds the wait for a terminated process to exit (Go duration).
	KillTimeout string `toml:"kill_timeout"`

	// Pause waits for a key press after open and close. Nil means enabled.
	Pause *bool `toml:"pause"`
}

// GlobalConfigPath returns the path to the settings file.
func GlobalConfigPath() (string, error) {
	return paths.ConfigPath()
}

// LoadGlobalConfig loads the settings from the default location.
// Returns nil config and nil error if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	path, err := GlobalConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadGlobalConfigFromPath(path)
}

// LoadGlobalConfigFromPath loads and validates the settings at path.
// Returns nil config and nil error if the file doesn't exist.
func LoadGlobalConfigFromPath(path string) (*GlobalConfig, error) {
	var cfg GlobalConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetLogLevel returns the configured log level or the default.
func (c *GlobalConfig) GetLogLevel() string {
	if c != nil && c.LogLevel != "" {
		return c.LogLevel
	}
	return DefaultLogLevel
}

// GetProgramsFile returns the configured program list file, or empty when unset.
func (c *GlobalConfig) GetProgramsFile() string {
	if c == nil {
		return ""
	}
	return c.ProgramsFile
}

// GetMarker returns the configured marker executable or the default.
func (c *GlobalConfig) GetMarker() string {
	if c != nil && c.Marker != "" {
		return c.Marker
	}
	return DefaultMarker
}

// GetKillTimeout returns the configured kill timeout or the default.
// Invalid values fall back to the default; Validate reports them.
func (c *GlobalConfig) GetKillTimeout() time.Duration {
	if c == nil || c.KillTimeout == "" {
		return DefaultKillTimeout
	}
	d, err := time.ParseDuration(c.KillTimeout)
	if err != nil || d <= 0 {
		return DefaultKillTimeout
	}
	return d
}

// GetPause reports whether to wait for a key press after a batch.
func (c *GlobalConfig) GetPause() bool {
	if c == nil || c.Pause == nil {
		return true
	}
	return *c.Pause
}
