// © 2026 Kars. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

// Package config loads and stores the persisted settings of the tool.
//
// Settings live in a small TOML file in the per-user configuration
// directory. The file is read once at startup and written only by the setup
// flow; everything else receives the loaded Config by value and never
// mutates it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultDirectory is processed when neither the command line nor the
// configuration names one.
const DefaultDirectory = "./src"

// ErrMissing indicates that no owner name is configured.
var ErrMissing = errors.New("no owner name configured")

// Config holds the persisted settings.
type Config struct {
	Owner     string `toml:"owner"`
	GitHub    string `toml:"github"`
	Directory string `toml:"directory"`
}

// Path returns the location of the configuration file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "credit", "config.toml"), nil
}

// Load reads the configuration file at path. A missing file is not an
// error; it yields a zero Config.
func Load(path string) (*Config, error) {
	c := new(Config)
	if _, err := toml.DecodeFile(path, c); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return c, nil
}

// Save writes the configuration to path, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	b, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
