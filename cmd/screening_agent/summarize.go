package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/screening-engine/internal/screening"
	"github.com/jonathan/screening-engine/internal/types"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Project a screening result into its compact summary",
	Long:  "Reads a ScreeningResult JSON and writes the compact, display-ready summary: status, score, knockout state, and question counts. No rule is re-evaluated.",
	RunE:  runSummarize,
}

var (
	summarizeResult string
	summarizeOutput string
)

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeResult, "result", "r", "", "Path to ScreeningResult JSON file (required)")
	summarizeCmd.Flags().StringVarP(&summarizeOutput, "out", "o", "", "Path to output summary JSON file (stdout if omitted)")

	if err := summarizeCmd.MarkFlagRequired("result"); err != nil {
		panic(fmt.Sprintf("failed to mark result flag as required: %v", err))
	}

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(summarizeResult)
	if err != nil {
		return fmt.Errorf("failed to read result file %s: %w", summarizeResult, err)
	}

	var result types.ScreeningResult
	if err := json.Unmarshal(content, &result); err != nil {
		return fmt.Errorf("failed to unmarshal result JSON: %w", err)
	}

	summary := screening.Summarize(&result)
	return writeJSON(summarizeOutput, summary)
}
