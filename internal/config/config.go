package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all autocli configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Contract document
	Contract ContractConfig `yaml:"contract"`

	// Request rendering
	Request RequestConfig `yaml:"request"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ContractConfig points at the contract document the grammar is built
// from.
type ContractConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // auto, json, yaml
}

// RequestConfig configures how validated requests are rendered.
type RequestConfig struct {
	BaseURL string `yaml:"base_url"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "autocli",
		Version: "0.1.0",

		Contract: ContractConfig{
			Path:   "contract.json",
			Format: "auto",
		},

		Request: RequestConfig{
			BaseURL: "http://localhost:8080",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file. A missing file is not an
// error; the defaults are returned. Environment overrides apply in
// either case.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("AUTOCLI_CONTRACT"); path != "" {
		c.Contract.Path = path
	}
	if url := os.Getenv("AUTOCLI_BASE_URL"); url != "" {
		c.Request.BaseURL = url
	}
	if level := os.Getenv("AUTOCLI_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// ValidContractFormats lists all supported contract document formats.
var ValidContractFormats = []string{"auto", "json", "yaml"}

// ValidLogLevels lists all supported logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists all supported logging output formats.
var ValidLogFormats = []string{"json", "console"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Contract.Path == "" {
		return fmt.Errorf("contract path not configured (set contract.path or AUTOCLI_CONTRACT)")
	}

	validFormat := false
	for _, f := range ValidContractFormats {
		if c.Contract.Format == f {
			validFormat = true
			break
		}
	}
	if !validFormat {
		return fmt.Errorf("invalid contract format: %s (valid: %v)", c.Contract.Format, ValidContractFormats)
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}

	validLogFormat := false
	for _, f := range ValidLogFormats {
		if c.Logging.Format == f {
			validLogFormat = true
			break
		}
	}
	if !validLogFormat {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Logging.Format, ValidLogFormats)
	}

	return nil
}
