package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/screening-engine/internal/config"
	"github.com/jonathan/screening-engine/internal/observability"
	"github.com/jonathan/screening-engine/internal/screening"
	"github.com/jonathan/screening-engine/internal/types"
)

var evaluateBatchCmd = &cobra.Command{
	Use:   "evaluate-batch",
	Short: "Screen many applications against one form",
	Long: `Screens a batch of independent applications against the same form snapshot concurrently and writes one result per application, in input order.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runEvaluateBatch,
}

var (
	batchConfigPath   string
	batchForm         string
	batchApplications string
	batchOutput       string
	batchConcurrency  int
	batchSummary      bool
	batchVerbose      bool
)

// batchEntry pairs an application with its verdict in the output file.
type batchEntry struct {
	ApplicationID string                `json:"application_id"`
	Result        types.ScreeningResult `json:"result"`
	Summary       *types.ResultSummary  `json:"summary,omitempty"`
}

func init() {
	evaluateBatchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	evaluateBatchCmd.Flags().StringVarP(&batchForm, "form", "f", "", "Path to screening form JSON file")
	evaluateBatchCmd.Flags().StringVar(&batchApplications, "applications", "", "Path to batch applications JSON file")
	evaluateBatchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to output JSON file (stdout if omitted)")
	evaluateBatchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Worker count for batch screening (0 uses the default)")
	evaluateBatchCmd.Flags().BoolVar(&batchSummary, "summary", false, "Include the compact summary projection per application")
	evaluateBatchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(evaluateBatchCmd)
}

func runEvaluateBatch(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if batchConfigPath != "" {
		loadedCfg, err := config.LoadConfig(batchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if batchVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", batchConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("form") {
		cfg.Form = batchForm
	}
	if cmd.Flags().Changed("applications") {
		cfg.Applications = batchApplications
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = batchOutput
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = batchConcurrency
	}
	if cmd.Flags().Changed("summary") {
		cfg.Summary = batchSummary
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = batchVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{Concurrency: 8})

	// Step 4: Validate required fields
	if cfg.Form == "" {
		return fmt.Errorf("--form is required (via flag or config)")
	}
	if cfg.Applications == "" {
		return fmt.Errorf("--applications is required (via flag or config)")
	}

	// Step 5: Load inputs
	form, err := loadForm(cfg.Form)
	if err != nil {
		return err
	}

	apps, err := loadApplications(cfg.Applications)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		return fmt.Errorf("applications file %s contains no applications", cfg.Applications)
	}

	rawApps := make([]screening.RawApplication, len(apps))
	for i, app := range apps {
		rawApps[i] = screening.RawApplication{ID: app.ApplicationID, Submissions: app.Answers}
	}

	// Step 6: Screen the batch
	results, err := screening.ProcessRawBatch(context.Background(), form, rawApps, cfg.Concurrency)
	if err != nil {
		return fmt.Errorf("batch screening failed: %w", err)
	}

	entries := make([]batchEntry, len(results))
	for i := range results {
		entries[i] = batchEntry{
			ApplicationID: rawApps[i].ID.String(),
			Result:        results[i],
		}
		if cfg.Summary {
			summary := screening.Summarize(&results[i])
			entries[i].Summary = &summary
		}
	}

	// Step 7: Write output
	if err := writeJSON(cfg.Output, entries); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintBatchSummary(results)
	}

	if cfg.Output != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Screened %d applications to %s\n", len(results), cfg.Output)
	}

	return nil
}
