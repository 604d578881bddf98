package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionTypeIsValid_Recognized(t *testing.T) {
	for _, qt := range []QuestionType{
		QuestionBoolean, QuestionSingleChoice, QuestionMultiChoice,
		QuestionShortText, QuestionLongText, QuestionNumber, QuestionDate,
		QuestionSalary, QuestionExperience, QuestionAvailability,
		QuestionWorkAuthorization, QuestionURLList, QuestionFileUpload,
	} {
		assert.True(t, qt.IsValid(), "expected %q to be valid", qt)
	}
}

func TestQuestionTypeIsValid_Unrecognized(t *testing.T) {
	assert.False(t, QuestionType("ranking").IsValid())
	assert.False(t, QuestionType("").IsValid())
}

func TestValidateConfig_MatchingVariant(t *testing.T) {
	q := Question{
		ID:   "q1",
		Type: QuestionSingleChoice,
		Config: QuestionConfig{
			Choice: &ChoiceConfig{Choices: []string{"Yes", "No"}},
		},
	}
	assert.NoError(t, q.ValidateConfig())
}

func TestValidateConfig_NoConfigIsAllowed(t *testing.T) {
	q := Question{ID: "q1", Type: QuestionBoolean}
	assert.NoError(t, q.ValidateConfig())
}

func TestValidateConfig_MismatchedVariant(t *testing.T) {
	q := Question{
		ID:   "q1",
		Type: QuestionNumber,
		Config: QuestionConfig{
			Choice: &ChoiceConfig{Choices: []string{"Yes"}},
		},
	}
	err := q.ValidateConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestValidateConfig_ConfigOnTypeWithoutTunables(t *testing.T) {
	q := Question{
		ID:     "q1",
		Type:   QuestionBoolean,
		Config: QuestionConfig{Text: &TextConfig{}},
	}
	err := q.ValidateConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "takes no config")
}

func TestValidateConfig_MultipleVariantsSet(t *testing.T) {
	q := Question{
		ID:   "q1",
		Type: QuestionShortText,
		Config: QuestionConfig{
			Text:   &TextConfig{},
			Number: &NumberConfig{},
		},
	}
	err := q.ValidateConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "multiple config variants")
}

func TestValidateConfig_UnknownType(t *testing.T) {
	q := Question{ID: "q1", Type: QuestionType("ranking")}
	err := q.ValidateConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown question type")
}
