// Package paths provides a single source of truth for startstream file paths.
// All path helpers honor environment variable overrides for isolated testing.
//
// Path resolution precedence:
//  1. Specific env vars (STARTSTREAM_PROGRAMS) take highest priority
//  2. STARTSTREAM_DIR sets the base directory (derives config and log paths)
//  3. Default behavior (~/.startstream, ~/.config/startstream) when no env vars are set
package paths

import (
	"os"
	"path/filepath"
)

// Environment variable names for path overrides.
const (
	// EnvBaseDir is the base directory override (e.g., /tmp/startstream-test).
	// When set, config and log paths derive from this directory.
	EnvBaseDir = "STARTSTREAM_DIR"

	// EnvProgramsPath overrides the program list file directly.
	EnvProgramsPath = "STARTSTREAM_PROGRAMS"
)

// DefaultProgramsFile is the program list file name, resolved against the
// working directory.
const DefaultProgramsFile = "Programs.json"

// BaseDir returns the startstream base directory (~/.startstream by default).
// Honors STARTSTREAM_DIR environment variable.
func BaseDir() (string, error) {
	if dir := os.Getenv(EnvBaseDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".startstream"), nil
}

// ConfigDir returns the config directory (~/.config/startstream by default).
// When STARTSTREAM_DIR is set, returns STARTSTREAM_DIR/config instead.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvBaseDir); dir != "" {
		return filepath.Join(dir, "config"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "startstream"), nil
}

// ConfigPath returns the path to the settings file.
// (~/.config/startstream/config.toml by default, or STARTSTREAM_DIR/config/config.toml).
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the log file path.
// Precedence: STARTSTREAM_DIR/startstream.log > ~/.startstream/startstream.log
func LogPath() string {
	base, err := BaseDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "startstream.log")
	}
	return filepath.Join(base, "startstream.log")
}

// ProgramsPath returns the program list file path.
// Precedence: STARTSTREAM_PROGRAMS > configured > Programs.json in the working directory.
func ProgramsPath(configured string) string {
	if path := os.Getenv(EnvProgramsPath); path != "" {
		return path
	}
	if configured != "" {
		return configured
	}
	return DefaultProgramsFile
}
