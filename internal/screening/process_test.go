package screening

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/screening-engine/internal/types"
)

func ptr[T any](v T) *T { return &v }

func scoreRule(id string, op types.Operator, value any, score float64, priority int) types.Rule {
	return types.Rule{
		ID: id, Kind: types.RuleKindScore, Operator: op, Value: value,
		Score: score, Priority: priority, Active: true,
	}
}

func knockoutRule(id string, op types.Operator, value any, message string, priority int) types.Rule {
	return types.Rule{
		ID: id, Kind: types.RuleKindKnockout, Operator: op, Value: value,
		Message: message, Priority: priority, Active: true,
	}
}

func singleQuestionForm(q types.Question) types.Form {
	return types.Form{ID: uuid.New(), JobID: uuid.New(), Version: 1, Active: true, Questions: []types.Question{q}}
}

func TestProcess_ExperienceLadderSumsBothTiers(t *testing.T) {
	form := singleQuestionForm(types.Question{
		ID: "q1", Type: types.QuestionExperience, Order: 1, Required: true,
		Rules: []types.Rule{
			scoreRule("r1", types.OpGreaterThanOrEqual, 2.0, 10, 1),
			scoreRule("r2", types.OpGreaterThanOrEqual, 5.0, 15, 2),
		},
	})
	subs := []types.AnswerSubmission{{QuestionID: "q1", Answer: types.NumberAnswer{Value: 7}}}

	result := Process(&form, subs)

	assert.True(t, result.Valid)
	assert.Equal(t, 25.0, result.TotalScore)
	assert.False(t, result.HasKnockout)
}

func TestProcess_BooleanKnockoutRejects(t *testing.T) {
	form := singleQuestionForm(types.Question{
		ID: "q1", Type: types.QuestionBoolean, Order: 1, Required: true,
		Rules: []types.Rule{
			knockoutRule("r1", types.OpEquals, false, "Work authorization required", 1),
		},
	})
	subs := []types.AnswerSubmission{{QuestionID: "q1", Answer: types.BoolAnswer{Value: false}}}

	result := Process(&form, subs)

	assert.True(t, result.Valid)
	assert.True(t, result.HasKnockout)
	assert.Equal(t, "Work authorization required", result.KnockoutReason)
	assert.Equal(t, types.StatusRejected, result.RecommendedStatus)
}

func TestProcess_ShortlistThresholdMet(t *testing.T) {
	form := singleQuestionForm(types.Question{
		ID: "q1", Type: types.QuestionNumber, Order: 1, Required: true,
		Rules: []types.Rule{
			scoreRule("r1", types.OpGreaterThan, 0.0, 50, 1),
		},
	})
	form.ShortlistThreshold = ptr(40.0)
	subs := []types.AnswerSubmission{{QuestionID: "q1", Answer: types.NumberAnswer{Value: 5}}}

	result := Process(&form, subs)

	assert.Equal(t, 50.0, result.TotalScore)
	assert.Equal(t, types.StatusShortlisted, result.RecommendedStatus)
}

func TestProcess_InvalidSubmissionNeverReachesRules(t *testing.T) {
	form := singleQuestionForm(types.Question{
		ID: "q1", Type: types.QuestionShortText, Order: 1, Required: true,
		Config: types.QuestionConfig{Text: &types.TextConfig{Pattern: `^\d+$`}},
		Rules: []types.Rule{
			scoreRule("r1", types.OpIsNotEmpty, nil, 100, 1),
		},
	})
	subs := []types.AnswerSubmission{{QuestionID: "q1", Answer: types.TextAnswer{Value: "not digits"}}}

	result := Process(&form, subs)

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "q1", result.Errors[0].QuestionID)
	assert.Zero(t, result.TotalScore)
	assert.False(t, result.HasKnockout)
	assert.Equal(t, types.StatusNew, result.RecommendedStatus)
	assert.Empty(t, result.Evaluations)
}

func TestProcess_ContainsOnMultiSelectScoresOnce(t *testing.T) {
	form := singleQuestionForm(types.Question{
		ID: "q1", Type: types.QuestionMultiChoice, Order: 1, Required: true,
		Config: types.QuestionConfig{Choice: &types.ChoiceConfig{Choices: []string{"React", "TypeScript", "Go"}}},
		Rules: []types.Rule{
			scoreRule("r1", types.OpContains, "React", 10, 1),
		},
	})
	subs := []types.AnswerSubmission{
		{QuestionID: "q1", Answer: types.StringListAnswer{Values: []string{"React", "TypeScript"}}},
	}

	result := Process(&form, subs)

	assert.True(t, result.Valid)
	assert.Equal(t, 10.0, result.TotalScore)
}

func TestProcess_RequiredQuestionMissingFromSubmissions(t *testing.T) {
	form := singleQuestionForm(types.Question{
		ID: "q1", Type: types.QuestionBoolean, Order: 1, Required: true,
	})

	result := Process(&form, nil)

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "q1", result.Errors[0].QuestionID)
	assert.Equal(t, "This field is required", result.Errors[0].Message)
}

func TestProcess_FirstKnockoutInFormOrderSetsReason(t *testing.T) {
	form := types.Form{
		ID: uuid.New(), Version: 1,
		Questions: []types.Question{
			// Authored out of form order; evaluation follows Order.
			{
				ID: "q2", Type: types.QuestionBoolean, Order: 2, Required: true,
				Rules: []types.Rule{knockoutRule("r2", types.OpEquals, false, "second question knockout", 1)},
			},
			{
				ID: "q1", Type: types.QuestionBoolean, Order: 1, Required: true,
				Rules: []types.Rule{knockoutRule("r1", types.OpEquals, false, "first question knockout", 1)},
			},
		},
	}
	subs := []types.AnswerSubmission{
		{QuestionID: "q1", Answer: types.BoolAnswer{Value: false}},
		{QuestionID: "q2", Answer: types.BoolAnswer{Value: false}},
	}

	result := Process(&form, subs)

	assert.True(t, result.HasKnockout)
	assert.Equal(t, "first question knockout", result.KnockoutReason)

	// Both knockouts remain in the per-question trail.
	require.Len(t, result.Evaluations, 2)
	assert.True(t, result.Evaluations[0].IsKnockout)
	assert.True(t, result.Evaluations[1].IsKnockout)
}

func TestProcess_ScoreAccumulatesAcrossQuestionsDespiteKnockout(t *testing.T) {
	form := types.Form{
		ID: uuid.New(), Version: 1,
		Questions: []types.Question{
			{
				ID: "q1", Type: types.QuestionBoolean, Order: 1, Required: true,
				Rules: []types.Rule{knockoutRule("k", types.OpEquals, false, "no", 1)},
			},
			{
				ID: "q2", Type: types.QuestionExperience, Order: 2, Required: true,
				Rules: []types.Rule{scoreRule("s", types.OpGreaterThanOrEqual, 1.0, 20, 1)},
			},
		},
	}
	subs := []types.AnswerSubmission{
		{QuestionID: "q1", Answer: types.BoolAnswer{Value: false}},
		{QuestionID: "q2", Answer: types.NumberAnswer{Value: 4}},
	}

	result := Process(&form, subs)

	assert.True(t, result.HasKnockout)
	assert.Equal(t, types.StatusRejected, result.RecommendedStatus)
	// Score additivity is independent of knockout state.
	assert.Equal(t, 20.0, result.TotalScore)
}

func TestProcess_BelowPassingThresholdStaysNew(t *testing.T) {
	form := singleQuestionForm(types.Question{
		ID: "q1", Type: types.QuestionNumber, Order: 1, Required: true,
		Rules: []types.Rule{scoreRule("r1", types.OpGreaterThan, 0.0, 10, 1)},
	})
	form.PassingThreshold = ptr(50.0)
	subs := []types.AnswerSubmission{{QuestionID: "q1", Answer: types.NumberAnswer{Value: 5}}}

	result := Process(&form, subs)

	// Below the passing threshold surfaces for manual review, not auto-reject.
	assert.Equal(t, types.StatusNew, result.RecommendedStatus)
}

func TestProcess_ShortlistThresholdNotConfigured(t *testing.T) {
	form := singleQuestionForm(types.Question{
		ID: "q1", Type: types.QuestionNumber, Order: 1, Required: true,
		Rules: []types.Rule{scoreRule("r1", types.OpGreaterThan, 0.0, 100, 1)},
	})
	subs := []types.AnswerSubmission{{QuestionID: "q1", Answer: types.NumberAnswer{Value: 5}}}

	result := Process(&form, subs)

	assert.Equal(t, types.StatusNew, result.RecommendedStatus)
}

func TestProcess_Deterministic(t *testing.T) {
	form := types.Form{
		ID: uuid.New(), Version: 1, ShortlistThreshold: ptr(20.0),
		Questions: []types.Question{
			{
				ID: "q1", Type: types.QuestionExperience, Order: 1, Required: true,
				Rules: []types.Rule{
					scoreRule("r1", types.OpGreaterThanOrEqual, 2.0, 10, 1),
					scoreRule("r2", types.OpGreaterThanOrEqual, 5.0, 15, 2),
				},
			},
			{
				ID: "q2", Type: types.QuestionBoolean, Order: 2, Required: false,
				Rules: []types.Rule{knockoutRule("k", types.OpEquals, false, "nope", 1)},
			},
		},
	}
	subs := []types.AnswerSubmission{
		{QuestionID: "q1", Answer: types.NumberAnswer{Value: 6}},
		{QuestionID: "q2", Answer: types.BoolAnswer{Value: true}},
	}

	first := Process(&form, subs)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Process(&form, subs))
	}
}

func TestProcess_InactiveRulesNeverFire(t *testing.T) {
	inactive := knockoutRule("k", types.OpEquals, false, "should not fire", 1)
	inactive.Active = false
	form := singleQuestionForm(types.Question{
		ID: "q1", Type: types.QuestionBoolean, Order: 1, Required: true,
		Rules: []types.Rule{inactive},
	})
	subs := []types.AnswerSubmission{{QuestionID: "q1", Answer: types.BoolAnswer{Value: false}}}

	result := Process(&form, subs)

	assert.False(t, result.HasKnockout)
	assert.Equal(t, types.StatusNew, result.RecommendedStatus)
}
