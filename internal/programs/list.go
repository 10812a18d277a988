// Package programs manages the configured program list: loading it and
// opening or closing every entry as a batch.
package programs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Errors describing why a program list came back empty.
var (
	ErrListNotFound  = errors.New("configuration file not found")
	ErrListMalformed = errors.New("configuration file is not a list of strings")
)

// LoadProgramList reads the program list at path.
//
// The returned slice is always usable: on any failure it is empty and the
// error explains why. Callers report the error and carry on; it never aborts
// a batch. Files ending in .yaml or .yml are read as YAML, anything else as JSON.
func LoadProgramList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("program list not found", "path", path)
			return []string{}, fmt.Errorf("%s: %w", path, ErrListNotFound)
		}
		slog.Warn("program list unreadable", "path", path, "error", err)
		return []string{}, fmt.Errorf("read %s: %w", path, err)
	}

	programs, err := decodeList(path, data)
	if err != nil {
		slog.Warn("program list malformed", "path", path, "error", err)
		return []string{}, fmt.Errorf("%s: %w: %w", path, ErrListMalformed, err)
	}

	slog.Debug("loaded program list", "path", path, "count", len(programs))
	return programs, nil
}

func decodeList(path string, data []byte) ([]string, error) {
	var programs []string

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &programs); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &programs); err != nil {
			return nil, err
		}
	}

	if programs == nil {
		return []string{}, nil
	}
	return programs, nil
}
