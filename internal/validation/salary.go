// Package validation provides per-question checks on submitted answers.
package validation

import (
	"fmt"

	"github.com/jonathan/screening-engine/internal/types"
)

// salaryPeriods is the fixed set of accepted salary periods.
var salaryPeriods = map[string]bool{
	"hourly":  true,
	"daily":   true,
	"weekly":  true,
	"monthly": true,
	"yearly":  true,
}

func validateSalary(q *types.Question, ans types.Answer) *types.ValidationError {
	salary, ok := ans.(types.SalaryAnswer)
	if !ok {
		return fail(q, ShapeMessage(q.Type))
	}

	if salary.Amount < 0 {
		return fail(q, "Salary amount must be zero or greater")
	}
	if salary.Currency == "" {
		return fail(q, "Salary currency is required")
	}
	if !salaryPeriods[salary.Period] {
		return fail(q, "Salary period must be one of: hourly, daily, weekly, monthly, yearly")
	}

	cfg := q.Config.Salary
	if cfg == nil {
		return nil
	}
	if cfg.MinAmount != nil && salary.Amount < *cfg.MinAmount {
		return fail(q, fmt.Sprintf("Salary expectation must be at least %s", formatNumber(*cfg.MinAmount)))
	}
	if cfg.MaxAmount != nil && salary.Amount > *cfg.MaxAmount {
		return fail(q, fmt.Sprintf("Salary expectation must be at most %s", formatNumber(*cfg.MaxAmount)))
	}
	return nil
}
