package types

import "fmt"

// RuleKind distinguishes disqualifying rules from scoring rules.
type RuleKind string

// RuleKindKnockout disqualifies the application when triggered.
// RuleKindScore adds a fixed point value when triggered.
const (
	RuleKindKnockout RuleKind = "knockout"
	RuleKindScore    RuleKind = "score"
)

// Operator is the comparison applied between an answer and a rule's value.
type Operator string

// The closed set of rule operators.
const (
	OpEquals             Operator = "equals"
	OpNotEquals          Operator = "not_equals"
	OpContains           Operator = "contains"
	OpNotContains        Operator = "not_contains"
	OpGreaterThan        Operator = "greater_than"
	OpGreaterThanOrEqual Operator = "greater_than_or_equal"
	OpLessThan           Operator = "less_than"
	OpLessThanOrEqual    Operator = "less_than_or_equal"
	OpInList             Operator = "in_list"
	OpNotInList          Operator = "not_in_list"
	OpIsEmpty            Operator = "is_empty"
	OpIsNotEmpty         Operator = "is_not_empty"
)

var allOperators = map[Operator]bool{
	OpEquals:             true,
	OpNotEquals:          true,
	OpContains:           true,
	OpNotContains:        true,
	OpGreaterThan:        true,
	OpGreaterThanOrEqual: true,
	OpLessThan:           true,
	OpLessThanOrEqual:    true,
	OpInList:             true,
	OpNotInList:          true,
	OpIsEmpty:            true,
	OpIsNotEmpty:         true,
}

// IsValid reports whether the operator is one of the recognized comparisons.
func (o Operator) IsValid() bool {
	return allOperators[o]
}

// Rule is a single evaluation rule attached to a question.
//
// Value is the comparison operand and is decoded from JSON without a fixed
// shape: a string, number, boolean, or list depending on the operator.
// Score is meaningful only for score rules; Message only for knockout rules.
// Rules are evaluated in ascending Priority order. Inactive rules never trigger.
type Rule struct {
	ID         string   `json:"id"`
	QuestionID string   `json:"question_id"`
	Kind       RuleKind `json:"kind"`
	Operator   Operator `json:"operator"`
	Value      any      `json:"value,omitempty"`
	Score      float64  `json:"score,omitempty"`
	Message    string   `json:"message,omitempty"`
	Priority   int      `json:"priority"`
	Active     bool     `json:"active"`
}

// validateRule checks that a rule is well-formed and belongs to its question.
func validateRule(q *Question, r *Rule) error {
	if r.Kind != RuleKindKnockout && r.Kind != RuleKindScore {
		return fmt.Errorf("question %s: rule %s has unknown kind %q", q.ID, r.ID, r.Kind)
	}
	if !r.Operator.IsValid() {
		return fmt.Errorf("question %s: rule %s has unknown operator %q", q.ID, r.ID, r.Operator)
	}
	if r.QuestionID != "" && r.QuestionID != q.ID {
		return fmt.Errorf("question %s: rule %s references question %s", q.ID, r.ID, r.QuestionID)
	}
	return nil
}
