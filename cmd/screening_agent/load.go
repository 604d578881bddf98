package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/screening-engine/internal/types"
)

// loadForm reads a form snapshot from disk and checks its structural invariants.
func loadForm(path string) (*types.Form, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form file %s: %w", path, err)
	}

	var form types.Form
	if err := json.Unmarshal(content, &form); err != nil {
		return nil, fmt.Errorf("failed to unmarshal form JSON: %w", err)
	}

	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("invalid form: %w", err)
	}

	return &form, nil
}

// loadSubmissions reads one applicant's raw answers from disk.
func loadSubmissions(path string) ([]types.RawSubmission, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file %s: %w", path, err)
	}

	var subs []types.RawSubmission
	if err := json.Unmarshal(content, &subs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal answers JSON: %w", err)
	}

	return subs, nil
}

// loadApplications reads a batch of applications from disk.
func loadApplications(path string) ([]types.BatchApplication, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read applications file %s: %w", path, err)
	}

	var apps []types.BatchApplication
	if err := json.Unmarshal(content, &apps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal applications JSON: %w", err)
	}

	return apps, nil
}

// writeJSON marshals v with indentation and writes it to path, creating the
// output directory if needed. An empty path writes to stdout.
func writeJSON(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	return nil
}
