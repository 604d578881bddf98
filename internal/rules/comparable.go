// Package rules evaluates employer-configured screening rules against typed answers.
//
// A rule pairs a generic operator with a comparison value; Comparable projects
// each structured answer down to one scalar the operators can work on. The
// package is pure: no I/O, no shared state, and evaluation of the same inputs
// always yields the same outcome.
package rules

import (
	"github.com/jonathan/screening-engine/internal/types"
)

// noticeSentinel stands in for "very long notice" when an applicant is neither
// immediately available nor gave a notice period.
const noticeSentinel = 999

// Comparable projects a typed answer to the primitive value rules compare
// against: salary to its amount, availability to a notice-days figure, work
// authorization to its authorized flag, files to their filenames. Scalar and
// list answers pass through unchanged. A nil answer projects to nil.
func Comparable(ans types.Answer, t types.QuestionType) any {
	if ans == nil {
		return nil
	}

	switch v := ans.(type) {
	case types.BoolAnswer:
		return v.Value
	case types.NumberAnswer:
		return v.Value
	case types.TextAnswer:
		return v.Value
	case types.StringListAnswer:
		return v.Values
	case types.SalaryAnswer:
		return v.Amount
	case types.AvailabilityAnswer:
		if v.IsImmediate != nil && *v.IsImmediate {
			return float64(0)
		}
		if v.NoticePeriodDays != nil {
			return float64(*v.NoticePeriodDays)
		}
		return float64(noticeSentinel)
	case types.WorkAuthAnswer:
		return v.Authorized != nil && *v.Authorized
	case types.FilesAnswer:
		names := make([]string, 0, len(v.Files))
		for _, f := range v.Files {
			names = append(names, f.Filename)
		}
		return names
	default:
		return nil
	}
}
