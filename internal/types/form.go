package types

import (
	"sort"

	"github.com/google/uuid"
)

// Form is an employer-configured screening questionnaire for one job.
//
// Forms are authored and versioned outside this engine; evaluation treats a
// Form as an immutable snapshot. Concurrent evaluation of many independent
// applications against the same snapshot is safe.
type Form struct {
	ID                 uuid.UUID  `json:"id"`
	JobID              uuid.UUID  `json:"job_id"`
	Version            int        `json:"version"`
	Active             bool       `json:"active"`
	Title              string     `json:"title,omitempty"`
	Description        string     `json:"description,omitempty"`
	ShortlistThreshold *float64   `json:"shortlist_threshold,omitempty"`
	PassingThreshold   *float64   `json:"passing_threshold,omitempty"`
	Questions          []Question `json:"questions"`
}

// OrderedQuestions returns the form's questions sorted by their Order field.
// The form's own slice is left untouched.
func (f *Form) OrderedQuestions() []Question {
	ordered := make([]Question, len(f.Questions))
	copy(ordered, f.Questions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})
	return ordered
}

// QuestionByID looks up a question on the form. Returns nil when absent.
func (f *Form) QuestionByID(id string) *Question {
	for i := range f.Questions {
		if f.Questions[i].ID == id {
			return &f.Questions[i]
		}
	}
	return nil
}

// Validate checks the structural invariants of a form snapshot: recognized
// question types, config variants matching their question's type, recognized
// rule kinds and operators, and rules attached to their owning question.
func (f *Form) Validate() error {
	for i := range f.Questions {
		q := &f.Questions[i]
		if err := q.ValidateConfig(); err != nil {
			return err
		}
		for j := range q.Rules {
			if err := validateRule(q, &q.Rules[j]); err != nil {
				return err
			}
		}
	}
	return nil
}
