package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	fileName  = "config.yaml"
	envConfig = "BREAKOUT3D_CONFIG"
)

// Load builds the effective config: defaults, then the first config file
// found, then command-line flags. The result is validated.
func Load() (*Config, error) {
	cfg := Default()

	if path := locate(); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// locate picks the config file: --config, then $BREAKOUT3D_CONFIG, then
// ./config.yaml, then the user config file. Empty means run on defaults.
func locate() string {
	if path := ConfigPath(); path != "" {
		return path
	}
	if path := os.Getenv(envConfig); path != "" {
		return path
	}
	for _, path := range []string{fileName, UserFile()} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// UserFile is the per-user config file under the OS config directory, or
// empty when the platform has none.
func UserFile() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "breakout3d", fileName)
}

// loadFromFile merges a YAML file over cfg. Unknown keys are rejected so a
// misspelled option does not silently fall back to its default.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
