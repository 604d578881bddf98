package types

// Recommended triage statuses produced by the screening engine. They are
// non-binding; the surrounding application workflow decides what to do.
const (
	// StatusNew indicates the application needs manual review.
	StatusNew = "new"
	// StatusRejected indicates a knockout rule disqualified the application.
	StatusRejected = "rejected"
	// StatusShortlisted indicates the score met the form's shortlist threshold.
	StatusShortlisted = "shortlisted"
)

// ValidationError reports a shape, range, or format problem on one answer.
// QuestionID lets an external form renderer attach the message inline to the
// offending field.
type ValidationError struct {
	QuestionID string `json:"question_id"`
	Message    string `json:"message"`
}

// TriggeredRule records one rule that fired during evaluation, for the audit trail.
type TriggeredRule struct {
	RuleID   string   `json:"rule_id"`
	Kind     RuleKind `json:"kind"`
	Score    float64  `json:"score,omitempty"`
	Message  string   `json:"message,omitempty"`
	Priority int      `json:"priority"`
}

// QuestionEvaluation is the outcome of applying one question's rules to its answer.
type QuestionEvaluation struct {
	QuestionID      string          `json:"question_id"`
	IsKnockout      bool            `json:"is_knockout"`
	ScoreEarned     float64         `json:"score_earned"`
	KnockoutMessage string          `json:"knockout_message,omitempty"`
	TriggeredRules  []TriggeredRule `json:"triggered_rules,omitempty"`
}

// ScreeningResult is the engine's verdict for one application against one form.
//
// When Valid is false the submission never reached rule evaluation: TotalScore
// is zero, no knockout is reported, and RecommendedStatus is "new".
type ScreeningResult struct {
	Valid             bool                 `json:"valid"`
	Errors            []ValidationError    `json:"errors,omitempty"`
	TotalScore        float64              `json:"total_score"`
	HasKnockout       bool                 `json:"has_knockout"`
	KnockoutReason    string               `json:"knockout_reason,omitempty"`
	RecommendedStatus string               `json:"recommended_status"`
	Evaluations       []QuestionEvaluation `json:"evaluations,omitempty"`
}

// ResultSummary is a compact, display-ready projection of a ScreeningResult.
type ResultSummary struct {
	Status          string  `json:"status"`
	Score           float64 `json:"score"`
	KnockedOut      bool    `json:"knocked_out"`
	Reason          string  `json:"reason,omitempty"`
	PassedQuestions int     `json:"passed_questions"`
	TotalQuestions  int     `json:"total_questions"`
}
