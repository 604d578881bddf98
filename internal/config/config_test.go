package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"form": "form.json",
		"output": "result.json",
		"port": 8080,
		"concurrency": 4,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "form.json", cfg.Form)
	assert.Equal(t, "result.json", cfg.Output)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		Answers:      "answers.json",
		Applications: "applications.json",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_PortOutOfRange(t *testing.T) {
	cfg := &Config{
		Port: 70000,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_NegativeConcurrency(t *testing.T) {
	cfg := &Config{
		Concurrency: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "concurrency")
}

func TestValidate_MissingFormFile(t *testing.T) {
	cfg := &Config{
		Form: "/nonexistent/form.json",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "form file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	formFile := filepath.Join(t.TempDir(), "form.json")
	require.NoError(t, os.WriteFile(formFile, []byte(`{}`), 0644))

	cfg := &Config{
		Form:        formFile,
		Port:        8080,
		Concurrency: 8,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Form:        "default_form.json",
		Output:      "default_result.json",
		Port:        8080,
		Concurrency: 8,
	}

	partial := Config{
		Form: "custom_form.json",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom_form.json", merged.Form)

	// Default values should fill in empty fields
	assert.Equal(t, "default_result.json", merged.Output)
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, 8, merged.Concurrency)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Form: "form.json",
		Port: 9090,
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "form.json", merged.Form)
	assert.Equal(t, 9090, merged.Port)
}
