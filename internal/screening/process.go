// Package screening orchestrates validation and rule evaluation for a whole
// application and derives the recommended triage status.
package screening

import (
	"github.com/jonathan/screening-engine/internal/rules"
	"github.com/jonathan/screening-engine/internal/types"
	"github.com/jonathan/screening-engine/internal/validation"
)

// Process screens one application's submissions against a form snapshot.
//
// Validation gates rule evaluation: an invalid submission set returns
// immediately with the collected errors, a zero score, no knockout, and
// status "new" — rules never run on unvalidated input. Otherwise every
// question is evaluated in form order; the first question to report a
// knockout supplies the form-level reason, and later knockouts stay in the
// per-question trail without replacing it.
//
// The form is treated as an immutable snapshot, so concurrent calls against
// the same form are safe.
func Process(form *types.Form, submissions []types.AnswerSubmission) types.ScreeningResult {
	questions := form.OrderedQuestions()

	valid, errs := validation.ValidateAll(questions, submissions)
	if !valid {
		return types.ScreeningResult{
			Valid:             false,
			Errors:            errs,
			RecommendedStatus: types.StatusNew,
		}
	}

	answers := make(map[string]types.Answer, len(submissions))
	for _, sub := range submissions {
		answers[sub.QuestionID] = sub.Answer
	}

	result := types.ScreeningResult{
		Valid:       true,
		Evaluations: make([]types.QuestionEvaluation, 0, len(questions)),
	}

	for i := range questions {
		q := &questions[i]
		eval := rules.EvaluateQuestion(q, answers[q.ID])

		result.TotalScore += eval.ScoreEarned
		if eval.IsKnockout && !result.HasKnockout {
			result.HasKnockout = true
			result.KnockoutReason = eval.KnockoutMessage
		}
		result.Evaluations = append(result.Evaluations, eval)
	}

	result.RecommendedStatus = recommendStatus(form, &result)
	return result
}

// recommendStatus derives the triage status: a knockout rejects; a configured
// shortlist threshold that the score meets shortlists; everything else is
// "new". A score below a configured passing threshold still yields "new" so
// the case surfaces for manual review instead of auto-rejecting.
func recommendStatus(form *types.Form, result *types.ScreeningResult) string {
	if result.HasKnockout {
		return types.StatusRejected
	}
	if form.ShortlistThreshold != nil && result.TotalScore >= *form.ShortlistThreshold {
		return types.StatusShortlisted
	}
	return types.StatusNew
}
