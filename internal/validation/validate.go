// Package validation provides per-question checks on submitted answers.
//
// Validation problems are returned as data, never as errors: a failed check
// produces a types.ValidationError carrying the question ID and a message an
// external form renderer can attach inline to the offending field. For any
// well-typed input the package always returns a result.
package validation

import (
	"github.com/jonathan/screening-engine/internal/types"
)

// RequiredMessage is the message reported for a required question with no answer.
const RequiredMessage = "This field is required"

// unknownTypeMessage is reported when a question's type is outside the supported set.
const unknownTypeMessage = "This question cannot be validated"

// ValidateAnswer checks one answer against its question's type and config.
// Returns nil when the answer is acceptable.
//
// Emptiness is checked first: an absent or empty answer fails only when the
// question is required; an optional empty answer skips all type checks.
func ValidateAnswer(q *types.Question, ans types.Answer) *types.ValidationError {
	if ans == nil || ans.IsEmpty() {
		if q.Required {
			return fail(q, RequiredMessage)
		}
		return nil
	}

	switch q.Type {
	case types.QuestionBoolean:
		return validateBoolean(q, ans)
	case types.QuestionSingleChoice:
		return validateSingleChoice(q, ans)
	case types.QuestionMultiChoice:
		return validateMultiChoice(q, ans)
	case types.QuestionShortText, types.QuestionLongText:
		return validateText(q, ans)
	case types.QuestionNumber:
		return validateNumber(q, ans)
	case types.QuestionDate:
		return validateDate(q, ans)
	case types.QuestionSalary:
		return validateSalary(q, ans)
	case types.QuestionExperience:
		return validateExperience(q, ans)
	case types.QuestionAvailability:
		return validateAvailability(q, ans)
	case types.QuestionWorkAuthorization:
		return validateWorkAuthorization(q, ans)
	case types.QuestionURLList:
		return validateURLList(q, ans)
	case types.QuestionFileUpload:
		return validateFileUpload(q, ans)
	default:
		return fail(q, unknownTypeMessage)
	}
}

// ValidateAll validates a whole submission set against the form's questions.
// Questions are checked in the order given; every error is collected rather
// than stopping at the first. A required question missing from the submission
// set is flagged before any type-specific check runs.
func ValidateAll(questions []types.Question, submissions []types.AnswerSubmission) (bool, []types.ValidationError) {
	answers := make(map[string]types.Answer, len(submissions))
	for _, sub := range submissions {
		answers[sub.QuestionID] = sub.Answer
	}

	var errs []types.ValidationError
	for i := range questions {
		q := &questions[i]
		if verr := ValidateAnswer(q, answers[q.ID]); verr != nil {
			errs = append(errs, *verr)
		}
	}

	return len(errs) == 0, errs
}

// fail builds a ValidationError for the question.
func fail(q *types.Question, message string) *types.ValidationError {
	return &types.ValidationError{QuestionID: q.ID, Message: message}
}
