package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg, visitedFlags())

	return cfg, nil
}

// EnvConfig names the environment variable that points at a config file.
// It is consulted when no -config flag is given.
const EnvConfig = "TERRAINGEN_CONFIG"

// findConfigFile returns $TERRAINGEN_CONFIG if set, else the first existing
// of ./terraingen.yaml and <ConfigDir>/config.yaml.
func findConfigFile() string {
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}

	candidates := []string{"terraingen.yaml"}
	if dir := ConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "config.yaml"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user terraingen directory, or "" when the
// platform has none.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "terraingen")
}

// loadFromFile loads config from a YAML file, merging with existing values.
// Unknown keys are an error; an empty file changes nothing.
func loadFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
