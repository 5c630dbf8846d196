// Package config loads the optional csv2md YAML config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppName is the application name used for the config directory.
const AppName = "csv2md"

// PathEnv overrides the default config path.
const PathEnv = "CSV2MD_CONFIG"

// Config holds defaults that flags may override.
type Config struct {
	Width     string `yaml:"width,omitempty"`      // runes, cells
	Rows      string `yaml:"rows,omitempty"`       // pad, reject
	Atomic    bool   `yaml:"atomic,omitempty"`
	LogFormat string `yaml:"log_format,omitempty"` // text, json
	FS        string `yaml:"fs,omitempty"`
}

// configPathFunc can be overridden in tests.
var configPathFunc = defaultConfigPath

func defaultConfigPath() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName, "config.yaml"), nil
}

// DefaultPath returns $CSV2MD_CONFIG, or ~/.config/csv2md/config.yaml.
func DefaultPath() (string, error) {
	return configPathFunc()
}

// Load reads the config at path. A missing file yields an empty config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDefault loads the config from [DefaultPath]. If no home directory can
// be resolved, it returns an empty config.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return &Config{}, nil
	}
	return Load(path)
}
