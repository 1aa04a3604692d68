// Package config stores user-level ward settings outside marker files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "config.yaml"

// UserConfig holds the per-user settings kept in ~/.ward/config.yaml.
type UserConfig struct {
	Shell         string `yaml:"shell"`
	Theme         string `yaml:"theme"`
	DefaultAuthor string `yaml:"default_author,omitempty"`
}

// Load reads the user config from dir. A missing file yields nil, nil.
func Load(dir string) (*UserConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read user config: %w", err)
	}

	var cfg UserConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user config: %w", err)
	}
	return &cfg, nil
}

// Save writes the user config into dir.
func Save(dir string, cfg *UserConfig) error {
	if cfg == nil {
		return fmt.Errorf("user config is nil")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal user config: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, configFile), data, 0600)
}
