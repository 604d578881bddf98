package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/screening-engine/internal/schemas"
)

var validateFormCmd = &cobra.Command{
	Use:   "validate-form",
	Short: "Check the structural invariants of a screening form",
	Long:  "Validates a screening form JSON against the form schema and the engine's structural invariants: recognized question types and operators, config variants matching their question's type, and rules attached to their owning question.",
	RunE:  runValidateForm,
}

var validateFormPath string

func init() {
	validateFormCmd.Flags().StringVarP(&validateFormPath, "form", "f", "", "Path to screening form JSON file (required)")

	if err := validateFormCmd.MarkFlagRequired("form"); err != nil {
		panic(fmt.Sprintf("failed to mark form flag as required: %v", err))
	}

	rootCmd.AddCommand(validateFormCmd)
}

func runValidateForm(_ *cobra.Command, _ []string) error {
	// Schema check first: it catches malformed documents with field-level
	// paths before the structural checks run.
	schemaPath := schemas.ResolveSchemaPath("schemas/screening_form.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, validateFormPath); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Validation failed:\n%v\n", err)
			return fmt.Errorf("form %s does not conform to the form schema", validateFormPath)
		}
	}

	if _, err := loadForm(validateFormPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		return fmt.Errorf("form %s failed structural validation", validateFormPath)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %s\n", validateFormPath)
	return nil
}
