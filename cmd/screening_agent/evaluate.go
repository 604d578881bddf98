package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/screening-engine/internal/config"
	"github.com/jonathan/screening-engine/internal/observability"
	"github.com/jonathan/screening-engine/internal/schemas"
	"github.com/jonathan/screening-engine/internal/screening"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Screen one application against a form",
	Long: `Validates an applicant's answers against a screening form, applies the form's knockout and scoring rules, and writes a ScreeningResult JSON with the recommended triage status.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runEvaluate,
}

var (
	evaluateConfigPath string
	evaluateForm       string
	evaluateAnswers    string
	evaluateOutput     string
	evaluateSummary    bool
	evaluateVerbose    bool
)

func init() {
	evaluateCmd.Flags().StringVar(&evaluateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	evaluateCmd.Flags().StringVarP(&evaluateForm, "form", "f", "", "Path to screening form JSON file")
	evaluateCmd.Flags().StringVarP(&evaluateAnswers, "answers", "a", "", "Path to applicant answers JSON file")
	evaluateCmd.Flags().StringVarP(&evaluateOutput, "out", "o", "", "Path to output ScreeningResult JSON file (stdout if omitted)")
	evaluateCmd.Flags().BoolVar(&evaluateSummary, "summary", false, "Emit the compact summary projection instead of the full result")
	evaluateCmd.Flags().BoolVarP(&evaluateVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if evaluateConfigPath != "" {
		loadedCfg, err := config.LoadConfig(evaluateConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if evaluateVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", evaluateConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("form") {
		cfg.Form = evaluateForm
	}
	if cmd.Flags().Changed("answers") {
		cfg.Answers = evaluateAnswers
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = evaluateOutput
	}
	if cmd.Flags().Changed("summary") {
		cfg.Summary = evaluateSummary
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = evaluateVerbose
	}

	// Step 3: Validate required fields
	if cfg.Form == "" {
		return fmt.Errorf("--form is required (via flag or config)")
	}
	if cfg.Answers == "" {
		return fmt.Errorf("--answers is required (via flag or config)")
	}

	// Step 4: Load inputs
	form, err := loadForm(cfg.Form)
	if err != nil {
		return err
	}

	subs, err := loadSubmissions(cfg.Answers)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintForm(form)
	}

	// Step 5: Screen the application
	result := screening.ProcessRaw(form, subs)

	if cfg.Verbose {
		printer.PrintResult(&result)
	}

	// Step 6: Write output
	if cfg.Summary {
		summary := screening.Summarize(&result)
		if err := writeJSON(cfg.Output, summary); err != nil {
			return err
		}
	} else {
		if err := writeJSON(cfg.Output, result); err != nil {
			return err
		}

		// Validate output against schema (optional - non-fatal)
		if cfg.Output != "" {
			schemaPath := schemas.ResolveSchemaPath("schemas/screening_result.schema.json")
			if schemaPath != "" {
				if err := schemas.ValidateJSON(schemaPath, cfg.Output); err != nil {
					// Output validation is a safety check, not a requirement
					_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
				}
			}
		}
	}

	if cfg.Output != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Screening result (%s) written to %s\n", result.RecommendedStatus, cfg.Output)
	}

	return nil
}
