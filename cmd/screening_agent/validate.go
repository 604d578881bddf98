package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/screening-engine/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON document against a JSON Schema",
	Long:  "Validates any JSON document against a JSON Schema file and reports field-level errors. Useful for checking forms, answers, and results produced outside this tool.",
	RunE:  runValidate,
}

var (
	validateSchemaPath string
	validateJSONPath   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Path to JSON Schema file (required)")
	validateCmd.Flags().StringVar(&validateJSONPath, "json", "", "Path to JSON document to validate (required)")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if err := schemas.ValidateJSON(validateSchemaPath, validateJSONPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Validation failed:\n%v\n", err)
		return fmt.Errorf("%s does not conform to %s", validateJSONPath, validateSchemaPath)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %s\n", validateJSONPath)
	return nil
}
