package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/screening-engine/internal/types"
)

func TestEvaluateCommand_ValidInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	formPath := filepath.Join("..", "..", "testdata", "valid", "screening_form.json")
	answersPath := filepath.Join("..", "..", "testdata", "valid", "submissions.json")
	outPath := filepath.Join(t.TempDir(), "result.json")

	cmd := exec.Command(binaryPath, "evaluate", "--form", formPath, "--answers", answersPath, "--out", outPath)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var result types.ScreeningResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.True(t, result.Valid)
	// work_auth true, 6 years (10+15), stack contains Go (+20): 45 ≥ 40.
	assert.Equal(t, 45.0, result.TotalScore)
	assert.Equal(t, types.StatusShortlisted, result.RecommendedStatus)
}

func TestEvaluateCommand_SummaryProjection(t *testing.T) {
	binaryPath := getBinaryPath(t)

	formPath := filepath.Join("..", "..", "testdata", "valid", "screening_form.json")
	answersPath := filepath.Join("..", "..", "testdata", "valid", "submissions.json")
	outPath := filepath.Join(t.TempDir(), "summary.json")

	cmd := exec.Command(binaryPath, "evaluate", "--form", formPath, "--answers", answersPath, "--out", outPath, "--summary")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var summary types.ResultSummary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, types.StatusShortlisted, summary.Status)
	assert.Equal(t, 3, summary.TotalQuestions)
}

func TestEvaluateCommand_MissingFormFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	answersPath := filepath.Join("..", "..", "testdata", "valid", "submissions.json")

	cmd := exec.Command(binaryPath, "evaluate", "--answers", answersPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail")
	assert.Contains(t, string(output), "--form is required")
}

func TestEvaluateCommand_FormFileNotFound(t *testing.T) {
	binaryPath := getBinaryPath(t)

	answersPath := filepath.Join("..", "..", "testdata", "valid", "submissions.json")

	cmd := exec.Command(binaryPath, "evaluate", "--form", "nonexistent.json", "--answers", answersPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail")
	assert.Contains(t, string(output), "failed to read form file")
}
