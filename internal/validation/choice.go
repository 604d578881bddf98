// Package validation provides per-question checks on submitted answers.
package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/screening-engine/internal/types"
)

func validateSingleChoice(q *types.Question, ans types.Answer) *types.ValidationError {
	text, ok := ans.(types.TextAnswer)
	if !ok {
		return fail(q, ShapeMessage(q.Type))
	}

	if !choiceAllowed(q.Config.Choice, text.Value) {
		return fail(q, fmt.Sprintf("%q is not one of the available options", text.Value))
	}
	return nil
}

func validateMultiChoice(q *types.Question, ans types.Answer) *types.ValidationError {
	list, ok := ans.(types.StringListAnswer)
	if !ok {
		return fail(q, ShapeMessage(q.Type))
	}

	// Collect every invalid selection so the applicant sees them all at once.
	var invalid []string
	for _, v := range list.Values {
		if !choiceAllowed(q.Config.Choice, v) {
			invalid = append(invalid, v)
		}
	}
	if len(invalid) > 0 {
		return fail(q, fmt.Sprintf("Invalid options: %s", strings.Join(invalid, ", ")))
	}
	return nil
}

// choiceAllowed reports whether value appears in the configured choice list.
// A question with no choice config accepts nothing, since the renderer had no
// options to offer.
func choiceAllowed(cfg *types.ChoiceConfig, value string) bool {
	if cfg == nil {
		return false
	}
	for _, c := range cfg.Choices {
		if c == value {
			return true
		}
	}
	return false
}
