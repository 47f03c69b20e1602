package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// Namespace is the folder identifier log records are filed under.
	Namespace string `json:"namespace" yaml:"namespace"`
	// BaseName is the default log family name.
	BaseName string `json:"baseName" yaml:"baseName"`
	// MaxLogLength is the record-body rotation threshold in characters.
	MaxLogLength int `json:"maxLogLength" yaml:"maxLogLength"`
	// Enabled gates persistence. When false, updates report success without
	// writing, so buffers still clear.
	Enabled bool `json:"enabled" yaml:"enabled"`
	// RecentLimit caps record listings.
	RecentLimit int `json:"recentLimit" yaml:"recentLimit"`
	// Compression gzips record bodies at rest.
	Compression bool `json:"compression" yaml:"compression"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Namespace:    "logs",
		BaseName:     "log",
		MaxLogLength: 1_000_000,
		Enabled:      true,
		RecentLimit:  10,
		Compression:  true,
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	return cfg, nil
}
