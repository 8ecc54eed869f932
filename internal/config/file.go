package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFile overlays the YAML file at path onto c. ${VAR} references in
// the file are expanded from the environment first. Keys absent from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	rawBytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	contentWithEnv := os.ExpandEnv(string(rawBytes))

	if err := yaml.Unmarshal([]byte(contentWithEnv), c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// DataPath joins name onto the data directory.
func (c *Config) DataPath(name string) string {
	return filepath.Join(c.Paths.DataDir, name)
}

// ProcessedPath joins name onto the processed directory.
func (c *Config) ProcessedPath(name string) string {
	return filepath.Join(c.Paths.ProcessedDir, name)
}
