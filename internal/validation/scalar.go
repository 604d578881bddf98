// Package validation provides per-question checks on submitted answers.
package validation

import (
	"fmt"

	"github.com/jonathan/screening-engine/internal/types"
)

// maxExperienceYears is a sanity ceiling on years-of-experience answers.
const maxExperienceYears = 60

func validateBoolean(q *types.Question, ans types.Answer) *types.ValidationError {
	if _, ok := ans.(types.BoolAnswer); !ok {
		return fail(q, ShapeMessage(q.Type))
	}
	return nil
}

func validateNumber(q *types.Question, ans types.Answer) *types.ValidationError {
	num, ok := ans.(types.NumberAnswer)
	if !ok {
		return fail(q, ShapeMessage(q.Type))
	}

	cfg := q.Config.Number
	if cfg == nil {
		return nil
	}
	if cfg.Min != nil && num.Value < *cfg.Min {
		return fail(q, fmt.Sprintf("Value must be at least %s", formatNumber(*cfg.Min)))
	}
	if cfg.Max != nil && num.Value > *cfg.Max {
		return fail(q, fmt.Sprintf("Value must be at most %s", formatNumber(*cfg.Max)))
	}
	return nil
}

func validateExperience(q *types.Question, ans types.Answer) *types.ValidationError {
	num, ok := ans.(types.NumberAnswer)
	if !ok {
		return fail(q, ShapeMessage(q.Type))
	}

	if num.Value < 0 {
		return fail(q, "Years of experience cannot be negative")
	}
	if num.Value > maxExperienceYears {
		return fail(q, fmt.Sprintf("Years of experience cannot exceed %d", maxExperienceYears))
	}

	cfg := q.Config.Experience
	if cfg == nil {
		return nil
	}
	if cfg.Min != nil && num.Value < *cfg.Min {
		return fail(q, fmt.Sprintf("At least %s years of experience required", formatNumber(*cfg.Min)))
	}
	if cfg.Max != nil && num.Value > *cfg.Max {
		return fail(q, fmt.Sprintf("Years of experience must be at most %s", formatNumber(*cfg.Max)))
	}
	return nil
}

// formatNumber renders a float without a trailing ".0" for whole values.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
