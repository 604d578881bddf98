// Package validation provides per-question checks on submitted answers.
package validation

import (
	"fmt"

	"github.com/jonathan/screening-engine/internal/types"
)

func validateAvailability(q *types.Question, ans types.Answer) *types.ValidationError {
	avail, ok := ans.(types.AvailabilityAnswer)
	if !ok {
		return fail(q, ShapeMessage(q.Type))
	}

	if avail.IsImmediate == nil {
		return fail(q, "Please indicate whether you are immediately available")
	}

	if !*avail.IsImmediate {
		if avail.AvailableDate == "" && avail.NoticePeriodDays == nil {
			return fail(q, "Please provide an available date or a notice period")
		}
	}

	if avail.AvailableDate != "" {
		if _, ok := parseDate(avail.AvailableDate); !ok {
			return fail(q, "Available date is not a valid date")
		}
	}

	if avail.NoticePeriodDays != nil {
		days := *avail.NoticePeriodDays
		if days < 0 {
			return fail(q, "Notice period cannot be negative")
		}
		if cfg := q.Config.Availability; cfg != nil && cfg.MaxNoticeDays != nil && days > *cfg.MaxNoticeDays {
			return fail(q, fmt.Sprintf("Notice period cannot exceed %d days", *cfg.MaxNoticeDays))
		}
	}

	return nil
}
