// Package rules evaluates employer-configured screening rules against typed answers.
package rules

import (
	"fmt"
	"sort"

	"github.com/jonathan/screening-engine/internal/types"
)

// Outcome is the result of evaluating one rule against one answer.
type Outcome struct {
	Triggered bool
	Score     float64
	Message   string
}

// EvaluateRule evaluates a single rule against a typed answer. Inactive rules
// never trigger. A triggered score rule surfaces its delta; a triggered
// knockout rule surfaces its message.
func EvaluateRule(r *types.Rule, ans types.Answer, t types.QuestionType) Outcome {
	if !r.Active {
		return Outcome{}
	}

	if !Compare(Comparable(ans, t), r.Value, r.Operator) {
		return Outcome{}
	}

	out := Outcome{Triggered: true}
	switch r.Kind {
	case types.RuleKindScore:
		out.Score = r.Score
	case types.RuleKindKnockout:
		out.Message = r.Message
	}
	return out
}

// EvaluateQuestion applies every rule attached to the question, in ascending
// priority order, to the submitted answer.
//
// Evaluation never short-circuits: every rule runs even after a knockout, so
// the triggered-rule trail is always complete. The first triggered knockout
// (in priority order) supplies the knockout message; later knockouts in the
// same question do not overwrite it. Every triggered score rule's delta is
// summed into ScoreEarned.
func EvaluateQuestion(q *types.Question, ans types.Answer) types.QuestionEvaluation {
	ordered := make([]types.Rule, len(q.Rules))
	copy(ordered, q.Rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	eval := types.QuestionEvaluation{QuestionID: q.ID}

	for i := range ordered {
		r := &ordered[i]
		out := EvaluateRule(r, ans, q.Type)
		if !out.Triggered {
			continue
		}

		eval.TriggeredRules = append(eval.TriggeredRules, types.TriggeredRule{
			RuleID:   r.ID,
			Kind:     r.Kind,
			Score:    out.Score,
			Message:  out.Message,
			Priority: r.Priority,
		})

		switch r.Kind {
		case types.RuleKindScore:
			eval.ScoreEarned += out.Score
		case types.RuleKindKnockout:
			if !eval.IsKnockout {
				eval.IsKnockout = true
				eval.KnockoutMessage = knockoutMessage(q, out.Message)
			}
		}
	}

	return eval
}

// knockoutMessage falls back to a message built from the question prompt when
// the rule carries none.
func knockoutMessage(q *types.Question, ruleMessage string) string {
	if ruleMessage != "" {
		return ruleMessage
	}
	return fmt.Sprintf("Did not meet the requirement for %q", q.Prompt)
}
