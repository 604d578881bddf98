package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedQuestions_SortsByOrderWithoutMutating(t *testing.T) {
	form := Form{
		ID: uuid.New(),
		Questions: []Question{
			{ID: "q3", Order: 3},
			{ID: "q1", Order: 1},
			{ID: "q2", Order: 2},
		},
	}

	ordered := form.OrderedQuestions()

	require.Len(t, ordered, 3)
	assert.Equal(t, "q1", ordered[0].ID)
	assert.Equal(t, "q2", ordered[1].ID)
	assert.Equal(t, "q3", ordered[2].ID)

	// Original slice keeps authored order.
	assert.Equal(t, "q3", form.Questions[0].ID)
}

func TestQuestionByID(t *testing.T) {
	form := Form{Questions: []Question{{ID: "q1"}, {ID: "q2"}}}

	assert.NotNil(t, form.QuestionByID("q2"))
	assert.Nil(t, form.QuestionByID("missing"))
}

func TestFormValidate_AcceptsWellFormedSnapshot(t *testing.T) {
	form := Form{
		Questions: []Question{
			{
				ID:   "q1",
				Type: QuestionExperience,
				Rules: []Rule{
					{ID: "r1", Kind: RuleKindScore, Operator: OpGreaterThanOrEqual, Value: 2.0, Score: 10, Active: true},
				},
			},
		},
	}
	assert.NoError(t, form.Validate())
}

func TestFormValidate_RejectsUnknownOperator(t *testing.T) {
	form := Form{
		Questions: []Question{
			{
				ID:    "q1",
				Type:  QuestionBoolean,
				Rules: []Rule{{ID: "r1", Kind: RuleKindKnockout, Operator: Operator("matches")}},
			},
		},
	}
	err := form.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operator")
}

func TestFormValidate_RejectsRuleOwnedByOtherQuestion(t *testing.T) {
	form := Form{
		Questions: []Question{
			{
				ID:    "q1",
				Type:  QuestionBoolean,
				Rules: []Rule{{ID: "r1", QuestionID: "q9", Kind: RuleKindScore, Operator: OpEquals}},
			},
		},
	}
	assert.Error(t, form.Validate())
}

func TestFormValidate_RejectsUnknownRuleKind(t *testing.T) {
	form := Form{
		Questions: []Question{
			{
				ID:    "q1",
				Type:  QuestionBoolean,
				Rules: []Rule{{ID: "r1", Kind: RuleKind("bonus"), Operator: OpEquals}},
			},
		},
	}
	err := form.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}
