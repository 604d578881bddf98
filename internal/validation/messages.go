// Package validation provides per-question checks on submitted answers.
package validation

import (
	"github.com/jonathan/screening-engine/internal/types"
)

// ShapeMessage returns the message reported when an answer's shape does not
// match its question's type. The same messages are used whether the mismatch
// is caught while decoding raw JSON or while validating a typed answer.
func ShapeMessage(t types.QuestionType) string {
	switch t {
	case types.QuestionBoolean:
		return "Answer must be a yes or no value"
	case types.QuestionSingleChoice:
		return "Please select one of the available options"
	case types.QuestionMultiChoice:
		return "Answer must be a list of options"
	case types.QuestionShortText, types.QuestionLongText:
		return "Answer must be text"
	case types.QuestionNumber:
		return "Answer must be a number"
	case types.QuestionDate:
		return "Please provide a valid date"
	case types.QuestionSalary:
		return "Salary expectation must include an amount, currency, and period"
	case types.QuestionExperience:
		return "Years of experience must be a number"
	case types.QuestionAvailability:
		return "Availability must include whether you can start immediately"
	case types.QuestionWorkAuthorization:
		return "Work authorization must include whether you are authorized"
	case types.QuestionURLList:
		return "Answer must be a list of links"
	case types.QuestionFileUpload:
		return "Answer must be one or more uploaded files"
	default:
		return unknownTypeMessage
	}
}
