// Package validation provides per-question checks on submitted answers.
package validation

import (
	"fmt"
	"regexp"

	"github.com/jonathan/screening-engine/internal/types"
)

func validateText(q *types.Question, ans types.Answer) *types.ValidationError {
	text, ok := ans.(types.TextAnswer)
	if !ok {
		return fail(q, ShapeMessage(q.Type))
	}

	cfg := q.Config.Text
	if cfg == nil {
		return nil
	}

	length := len([]rune(text.Value))
	if cfg.MinLength != nil && length < *cfg.MinLength {
		return fail(q, fmt.Sprintf("Answer must be at least %d characters", *cfg.MinLength))
	}
	if cfg.MaxLength != nil && length > *cfg.MaxLength {
		return fail(q, fmt.Sprintf("Answer must be at most %d characters", *cfg.MaxLength))
	}

	if cfg.Pattern != "" {
		// A pattern that does not compile disables only this check; the rest
		// of the evaluation proceeds.
		re, err := regexp.Compile(cfg.Pattern)
		if err == nil && !re.MatchString(text.Value) {
			return fail(q, "Answer does not match the expected format")
		}
	}

	return nil
}
