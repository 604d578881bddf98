// Package validation provides per-question checks on submitted answers.
package validation

import (
	"github.com/jonathan/screening-engine/internal/types"
)

func validateWorkAuthorization(q *types.Question, ans types.Answer) *types.ValidationError {
	auth, ok := ans.(types.WorkAuthAnswer)
	if !ok {
		return fail(q, ShapeMessage(q.Type))
	}

	if auth.Authorized == nil {
		return fail(q, "Please indicate whether you are authorized to work")
	}

	if auth.ExpiryDate != "" {
		if _, ok := parseDate(auth.ExpiryDate); !ok {
			return fail(q, "Visa expiry date is not a valid date")
		}
	}

	return nil
}
