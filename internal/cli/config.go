// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig holds wlrefine defaults persisted in a TOML configuration
// file, merged with command-line flags before the run (flags win).
type fileConfig struct {
	MaxPasses   int    `toml:"max_passes"`
	ConfirmPass bool   `toml:"confirm_pass"`
	Dot         string `toml:"dot"`
}

// loadConfig reads a TOML configuration file at path. A missing path
// (empty string) is not an error: it simply yields the zero fileConfig.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cli: reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cli: parsing config %s: %w", path, err)
	}

	return cfg, nil
}
