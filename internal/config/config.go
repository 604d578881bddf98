// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Form         string `json:"form,omitempty"`         // Path to screening form JSON file
	Answers      string `json:"answers,omitempty"`      // Path to applicant answers JSON file
	Applications string `json:"applications,omitempty"` // Path to batch applications JSON file
	Output       string `json:"output,omitempty"`       // Path to write the screening result to

	// Server
	Port int `json:"port,omitempty"` // HTTP server port

	// Behavior
	Concurrency int  `json:"concurrency,omitempty"` // Worker count for batch screening
	Verbose     bool `json:"verbose,omitempty"`     // Print detailed debug information
	Summary     bool `json:"summary,omitempty"`     // Emit the compact summary projection
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Answers != "" && c.Applications != "" {
		return fmt.Errorf("config error: 'answers' and 'applications' are mutually exclusive")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Form != "" {
		if _, err := os.Stat(c.Form); os.IsNotExist(err) {
			return fmt.Errorf("config error: form file not found: %s", c.Form)
		}
	}
	if c.Answers != "" {
		if _, err := os.Stat(c.Answers); os.IsNotExist(err) {
			return fmt.Errorf("config error: answers file not found: %s", c.Answers)
		}
	}
	if c.Applications != "" {
		if _, err := os.Stat(c.Applications); os.IsNotExist(err) {
			return fmt.Errorf("config error: applications file not found: %s", c.Applications)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Form == "" {
		result.Form = defaults.Form
	}
	if result.Answers == "" {
		result.Answers = defaults.Answers
	}
	if result.Applications == "" {
		result.Applications = defaults.Applications
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
