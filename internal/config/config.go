package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(fsys afero.Fs, path string) (*types.Config, error) {
	config := types.DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	slog.Debug("Loaded config file", "path", path)
	return config, nil
}
