// Package config provides configuration for the menagerie pipelines.
//
// Config file locations (priority order):
//  1. $MENAGERIE_CONFIG
//  2. ./menagerie.yaml
//
// Environment variables override file values; CLI flags override both.
// Selector values outside the known sets silently fall back to their
// defaults (json format, console output) rather than erroring.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath is the environment variable for explicit config path
	EnvConfigPath = "MENAGERIE_CONFIG"
	// ConfigFileName is the default config file name
	ConfigFileName = "menagerie.yaml"
)

// Format selectors
const (
	FormatJSON   = "json"
	FormatXML    = "xml"
	FormatSQLite = "sqlite"
)

// Output selectors (shape system only)
const (
	OutputConsole = "console"
	OutputFile    = "file"
)

// Config is the root configuration structure
type Config struct {
	Format  string `yaml:"format" env:"MENAGERIE_FORMAT"`
	Output  string `yaml:"output" env:"MENAGERIE_OUTPUT"`
	DataDir string `yaml:"data_dir" env:"MENAGERIE_DATA_DIR"`
	Debug   bool   `yaml:"debug" env:"MENAGERIE_DEBUG"`
}

// DefaultConfig returns the configuration used when nothing else is set.
func DefaultConfig() *Config {
	return &Config{
		Format:  FormatJSON,
		Output:  OutputConsole,
		DataDir: ".",
	}
}

// Load finds and loads the config file, or returns defaults if none found,
// then applies environment overrides. The returned path is the config file
// used, empty when running on defaults.
func Load() (*Config, string, error) {
	path := FindConfigPath()

	cfg := DefaultConfig()
	if path != "" {
		loaded, err := LoadFromPath(path)
		if err != nil {
			return nil, path, err
		}
		cfg = loaded
	}

	if err := env.Parse(cfg); err != nil {
		return nil, path, fmt.Errorf("parse env: %w", err)
	}

	return cfg, path, nil
}

// LoadFrom loads config from an explicit path and applies environment
// overrides.
func LoadFrom(path string) (*Config, error) {
	cfg, err := LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// FindConfigPath searches for a config file in priority order, returning
// empty string if none is found.
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if fileExists(path) {
			return path
		}
	}

	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}

	return ""
}

// NormalizeFormat maps a format selector onto the known set, silently
// defaulting to json for anything unrecognized.
func NormalizeFormat(s string) string {
	switch s {
	case FormatJSON, FormatXML, FormatSQLite:
		return s
	default:
		return FormatJSON
	}
}

// NormalizeOutput maps an output selector onto the known set, silently
// defaulting to console for anything unrecognized.
func NormalizeOutput(s string) string {
	switch s {
	case OutputConsole, OutputFile:
		return s
	default:
		return OutputConsole
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
