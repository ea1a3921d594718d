// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-sshfixture.
//
// go-sshfixture is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package config loads generator configuration from a YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the complete generator configuration
type Config struct {
	// KeyDir is the directory containing the fixture key files.
	KeyDir string `yaml:"key_dir"`

	// Output is the generated file path. Empty means standard output.
	Output string `yaml:"output"`

	// Package is the package name used in the generated file.
	Package string `yaml:"package"`

	// Passphrase decrypts encrypted private keys.
	Passphrase string `yaml:"passphrase"`

	// Manifest optionally overrides the built-in fixture list.
	Manifest string `yaml:"manifest"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls logging behavior
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() *Config {
	return &Config{
		KeyDir:     "testdata/keys",
		Package:    "keytest",
		Passphrase: "password",
	}
}

// Load reads the configuration file at path, applies environment overrides
// and validates the result. An empty path loads defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies SSHFIXTURE_* environment variables on top of the
// file configuration.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SSHFIXTURE_KEY_DIR"); v != "" {
		c.KeyDir = v
	}
	if v := os.Getenv("SSHFIXTURE_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("SSHFIXTURE_PACKAGE"); v != "" {
		c.Package = v
	}
	if v := os.Getenv("SSHFIXTURE_PASSPHRASE"); v != "" {
		c.Passphrase = v
	}
	if v := os.Getenv("SSHFIXTURE_MANIFEST"); v != "" {
		c.Manifest = v
	}
	if v := os.Getenv("SSHFIXTURE_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Logging.Debug = debug
		}
	}
}

// Validate checks the configuration for required fields.
func (c *Config) Validate() error {
	if c.KeyDir == "" {
		return errors.New("key_dir cannot be empty")
	}
	if c.Package == "" {
		return errors.New("package cannot be empty")
	}
	return nil
}
