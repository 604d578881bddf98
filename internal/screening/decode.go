package screening

import (
	"github.com/jonathan/screening-engine/internal/types"
	"github.com/jonathan/screening-engine/internal/validation"
)

// DecodeSubmissions binds raw JSON answers to the typed variants their
// questions expect. A shape mismatch becomes a ValidationError with the same
// message the validator would report; the submission for that question is
// dropped. Submissions referencing questions not on the form are ignored —
// the form snapshot decides what gets evaluated.
func DecodeSubmissions(form *types.Form, raws []types.RawSubmission) ([]types.AnswerSubmission, []types.ValidationError) {
	subs := make([]types.AnswerSubmission, 0, len(raws))
	var errs []types.ValidationError

	for _, raw := range raws {
		q := form.QuestionByID(raw.QuestionID)
		if q == nil {
			continue
		}

		ans, err := types.DecodeAnswer(q.Type, raw.Answer)
		if err != nil {
			errs = append(errs, types.ValidationError{
				QuestionID: q.ID,
				Message:    validation.ShapeMessage(q.Type),
			})
			continue
		}
		subs = append(subs, types.AnswerSubmission{QuestionID: q.ID, Answer: ans})
	}

	return subs, errs
}

// ProcessRaw screens an application arriving as raw JSON answers. Decode
// failures invalidate the submission the same way validation failures do;
// both kinds of error are reported together in form order, one per question,
// with the decode error taking precedence for its question.
func ProcessRaw(form *types.Form, raws []types.RawSubmission) types.ScreeningResult {
	subs, decodeErrs := DecodeSubmissions(form, raws)
	if len(decodeErrs) == 0 {
		return Process(form, subs)
	}

	questions := form.OrderedQuestions()
	_, valErrs := validation.ValidateAll(questions, subs)

	byQuestion := make(map[string]string, len(decodeErrs)+len(valErrs))
	for _, e := range valErrs {
		byQuestion[e.QuestionID] = e.Message
	}
	for _, e := range decodeErrs {
		byQuestion[e.QuestionID] = e.Message
	}

	var errs []types.ValidationError
	for i := range questions {
		if msg, ok := byQuestion[questions[i].ID]; ok {
			errs = append(errs, types.ValidationError{QuestionID: questions[i].ID, Message: msg})
		}
	}

	return types.ScreeningResult{
		Valid:             false,
		Errors:            errs,
		RecommendedStatus: types.StatusNew,
	}
}
