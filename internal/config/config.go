// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration. The analysis core never
// reads it: all core inputs travel as explicit function arguments, and
// this struct only configures the storage, rendering and notification
// collaborators plus CLI defaults.
type Config struct {
	// Default CLI settings
	Defaults struct {
		Format     string `yaml:"format"`
		Checks     string `yaml:"checks"`
		Severities string `yaml:"severities"`
		Verbose    bool   `yaml:"verbose"`
		Debug      bool   `yaml:"debug"`
		NoColor    bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Flat-file storage layout for contracts and regulations
	Storage struct {
		DataDir         string `yaml:"data_dir"`
		ContractsDir    string `yaml:"contracts_dir"`
		OriginalsDir    string `yaml:"originals_dir"`
		RegulationsFile string `yaml:"regulations_file"`
		IndexFile       string `yaml:"index_file"`
	} `yaml:"storage"`

	// Email notification settings. Credentials are never stored here;
	// they come from the environment (optionally via env_file).
	Notify struct {
		SMTPHost string `yaml:"smtp_host"`
		SMTPPort int    `yaml:"smtp_port"`
		From     string `yaml:"from"`
		EnvFile  string `yaml:"env_file"`
	} `yaml:"notify"`

	// Anchors optionally overrides the built-in clause insertion anchor
	// patterns. Order is priority order.
	Anchors []string `yaml:"anchors,omitempty"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.Checks = "all"
	config.Defaults.Severities = "all"
	config.Defaults.Verbose = false
	config.Defaults.Debug = false
	config.Defaults.NoColor = false

	config.Storage.DataDir = "data"
	config.Storage.ContractsDir = filepath.Join("data", "contracts")
	config.Storage.OriginalsDir = filepath.Join("data", "contracts", "originals")
	config.Storage.RegulationsFile = filepath.Join("data", "regulations.json")
	config.Storage.IndexFile = filepath.Join("data", "contracts_index.json")

	config.Notify.SMTPHost = "localhost"
	config.Notify.SMTPPort = 25

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadConfigOrDefault loads the given config file, falling back to the
// default configuration with a warning on stderr when loading fails.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// FindConfigFile looks for a configuration file in standard locations.
func FindConfigFile() string {
	// Project-specific configs in the current directory first
	for _, name := range []string{
		"contract-scan.yaml",
		"contract-scan.yml",
		".contract-scan.yaml",
		".contract-scan.yml",
	} {
		if fileExists(name) {
			return name
		}
	}

	// Per-user config
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, ".contract-scan.yaml")
		if fileExists(candidate) {
			return candidate
		}
	}

	return ""
}

// ValidateConfig checks configuration values for consistency.
func ValidateConfig(config *Config) error {
	switch config.Defaults.Format {
	case "", "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown default format %q", config.Defaults.Format)
	}
	if config.Notify.SMTPPort < 0 || config.Notify.SMTPPort > 65535 {
		return fmt.Errorf("invalid smtp_port %d", config.Notify.SMTPPort)
	}
	if config.Storage.DataDir == "" {
		return fmt.Errorf("storage data_dir must not be empty")
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
