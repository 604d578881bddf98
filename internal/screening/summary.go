package screening

import (
	"github.com/jonathan/screening-engine/internal/types"
)

// Summarize projects a ScreeningResult into its compact display shape. It is
// a pure re-projection: no rule is recomputed. PassedQuestions counts trail
// entries without a knockout.
func Summarize(result *types.ScreeningResult) types.ResultSummary {
	passed := 0
	for _, eval := range result.Evaluations {
		if !eval.IsKnockout {
			passed++
		}
	}

	return types.ResultSummary{
		Status:          result.RecommendedStatus,
		Score:           result.TotalScore,
		KnockedOut:      result.HasKnockout,
		Reason:          result.KnockoutReason,
		PassedQuestions: passed,
		TotalQuestions:  len(result.Evaluations),
	}
}
