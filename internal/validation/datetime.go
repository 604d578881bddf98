// Package validation provides per-question checks on submitted answers.
package validation

import (
	"time"

	"github.com/jonathan/screening-engine/internal/types"
)

// dateLayouts are the accepted forms of a submitted date, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// parseDate attempts to parse value as a calendar date or timestamp.
func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func validateDate(q *types.Question, ans types.Answer) *types.ValidationError {
	text, ok := ans.(types.TextAnswer)
	if !ok {
		return fail(q, "Please provide a valid date")
	}
	if _, ok := parseDate(text.Value); !ok {
		return fail(q, "Please provide a valid date")
	}
	return nil
}
