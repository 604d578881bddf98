package types

import (
	"encoding/json"
	"strings"
)

// Answer is the typed payload of one submitted answer. The concrete variant
// is determined by the owning question's type; DecodeAnswer binds raw JSON to
// the right variant so the rest of the engine never inspects untyped values.
//
// A nil Answer means the applicant left the question unanswered.
type Answer interface {
	// IsEmpty reports whether the answer carries no usable content
	// (blank string, empty list, empty structured object).
	IsEmpty() bool

	isAnswer()
}

// BoolAnswer is a yes/no answer.
type BoolAnswer struct {
	Value bool `json:"value"`
}

// TextAnswer is a free-text, single-choice, or date answer.
type TextAnswer struct {
	Value string `json:"value"`
}

// StringListAnswer is a multi-choice or URL list answer.
type StringListAnswer struct {
	Values []string `json:"values"`
}

// NumberAnswer is a numeric or years-of-experience answer.
type NumberAnswer struct {
	Value float64 `json:"value"`
}

// SalaryAnswer is a structured salary expectation.
type SalaryAnswer struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Period   string  `json:"period"`
}

// AvailabilityAnswer describes when the applicant can start. IsImmediate is a
// pointer so its absence can be reported distinctly from an explicit false.
type AvailabilityAnswer struct {
	IsImmediate      *bool  `json:"is_immediate"`
	AvailableDate    string `json:"available_date,omitempty"`
	NoticePeriodDays *int   `json:"notice_period_days,omitempty"`
}

// WorkAuthAnswer describes the applicant's authorization to work. Authorized
// is a pointer for the same presence-vs-false distinction as availability.
type WorkAuthAnswer struct {
	Authorized          *bool  `json:"authorized"`
	VisaType            string `json:"visa_type,omitempty"`
	ExpiryDate          string `json:"expiry_date,omitempty"`
	RequiresSponsorship *bool  `json:"requires_sponsorship,omitempty"`
}

// FileMetadata describes one already-uploaded file. Size is in bytes.
type FileMetadata struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Type     string `json:"type,omitempty"`
}

// FilesAnswer is a file upload answer of one or more files.
type FilesAnswer struct {
	Files []FileMetadata `json:"files"`
}

func (BoolAnswer) isAnswer()         {}
func (TextAnswer) isAnswer()         {}
func (StringListAnswer) isAnswer()   {}
func (NumberAnswer) isAnswer()       {}
func (SalaryAnswer) isAnswer()       {}
func (AvailabilityAnswer) isAnswer() {}
func (WorkAuthAnswer) isAnswer()     {}
func (FilesAnswer) isAnswer()        {}

// IsEmpty reports emptiness for each variant.
func (BoolAnswer) IsEmpty() bool { return false }

func (a TextAnswer) IsEmpty() bool { return strings.TrimSpace(a.Value) == "" }

func (a StringListAnswer) IsEmpty() bool { return len(a.Values) == 0 }

func (NumberAnswer) IsEmpty() bool { return false }

func (a SalaryAnswer) IsEmpty() bool {
	return a.Amount == 0 && a.Currency == "" && a.Period == ""
}

func (a AvailabilityAnswer) IsEmpty() bool {
	return a.IsImmediate == nil && a.AvailableDate == "" && a.NoticePeriodDays == nil
}

func (a WorkAuthAnswer) IsEmpty() bool {
	return a.Authorized == nil && a.VisaType == "" && a.ExpiryDate == "" && a.RequiresSponsorship == nil
}

func (a FilesAnswer) IsEmpty() bool { return len(a.Files) == 0 }

// AnswerSubmission pairs a question with the applicant's answer to it.
type AnswerSubmission struct {
	QuestionID string `json:"question_id"`
	Answer     Answer `json:"answer"`
}

// RawSubmission is the wire form of a submitted answer before its question's
// type is known. DecodeAnswer turns Answer into a typed variant.
type RawSubmission struct {
	QuestionID string          `json:"question_id"`
	Answer     json.RawMessage `json:"answer"`
}

// isJSONNull reports whether raw is absent or a JSON null literal.
func isJSONNull(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}

// DecodeAnswer binds a raw JSON answer to the typed variant the question type
// expects. A nil answer is returned for absent/null input. A shape mismatch
// (for example a string where a boolean is expected) is reported as an error;
// the caller surfaces it as a validation message for the question.
func DecodeAnswer(t QuestionType, raw json.RawMessage) (Answer, error) {
	if isJSONNull(raw) {
		return nil, nil
	}

	switch t {
	case QuestionBoolean:
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return BoolAnswer{Value: v}, nil

	case QuestionSingleChoice, QuestionShortText, QuestionLongText, QuestionDate:
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return TextAnswer{Value: v}, nil

	case QuestionMultiChoice, QuestionURLList:
		var v []string
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return StringListAnswer{Values: v}, nil

	case QuestionNumber, QuestionExperience:
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return NumberAnswer{Value: v}, nil

	case QuestionSalary:
		var v SalaryAnswer
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil

	case QuestionAvailability:
		var v AvailabilityAnswer
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil

	case QuestionWorkAuthorization:
		var v WorkAuthAnswer
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil

	case QuestionFileUpload:
		// A single file object or an array of them are both accepted.
		var many []FileMetadata
		if err := json.Unmarshal(raw, &many); err == nil {
			return FilesAnswer{Files: many}, nil
		}
		var one FileMetadata
		if err := json.Unmarshal(raw, &one); err != nil {
			return nil, err
		}
		return FilesAnswer{Files: []FileMetadata{one}}, nil

	default:
		return nil, &UnknownQuestionTypeError{Type: t}
	}
}

// UnknownQuestionTypeError is returned when a submission references a
// question type outside the supported set.
type UnknownQuestionTypeError struct {
	Type QuestionType
}

func (e *UnknownQuestionTypeError) Error() string {
	return "unknown question type: " + string(e.Type)
}
