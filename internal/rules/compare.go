// Package rules evaluates employer-configured screening rules against typed answers.
package rules

import (
	"strings"

	"github.com/jonathan/screening-engine/internal/types"
)

// Compare applies op between a projected answer value and a rule's comparison
// value. Unknown operators never match.
func Compare(answer, ruleValue any, op types.Operator) bool {
	switch op {
	case types.OpEquals:
		return equalValues(answer, ruleValue)
	case types.OpNotEquals:
		return !equalValues(answer, ruleValue)
	case types.OpContains:
		return containsValue(answer, ruleValue)
	case types.OpNotContains:
		return !containsValue(answer, ruleValue)
	case types.OpGreaterThan:
		cmp, ok := orderValues(answer, ruleValue)
		return ok && cmp > 0
	case types.OpGreaterThanOrEqual:
		cmp, ok := orderValues(answer, ruleValue)
		return ok && cmp >= 0
	case types.OpLessThan:
		cmp, ok := orderValues(answer, ruleValue)
		return ok && cmp < 0
	case types.OpLessThanOrEqual:
		cmp, ok := orderValues(answer, ruleValue)
		return ok && cmp <= 0
	case types.OpInList:
		return inList(answer, ruleValue)
	case types.OpNotInList:
		return !inList(answer, ruleValue)
	case types.OpIsEmpty:
		return isEmptyValue(answer)
	case types.OpIsNotEmpty:
		return !isEmptyValue(answer)
	default:
		return false
	}
}

// asFloat normalizes the numeric types that reach the comparator: float64 from
// JSON decoding, int variants from rules built in code.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asStrings normalizes a list value: []string directly, or []any holding strings.
func asStrings(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// asList normalizes a rule's list operand to a slice of scalars.
func asList(v any) ([]any, bool) {
	switch list := v.(type) {
	case []any:
		return list, true
	case []string:
		out := make([]any, len(list))
		for i, s := range list {
			out[i] = s
		}
		return out, true
	case []float64:
		out := make([]any, len(list))
		for i, n := range list {
			out[i] = n
		}
		return out, true
	case []int:
		out := make([]any, len(list))
		for i, n := range list {
			out[i] = n
		}
		return out, true
	}
	return nil, false
}

// equalValues is strict equality with numeric normalization: 5 and 5.0 are
// equal, but "5" and 5 are not.
func equalValues(a, b any) bool {
	if af, ok := asFloat(a); ok {
		bf, ok := asFloat(b)
		return ok && af == bf
	}
	if as, ok := asString(a); ok {
		bs, ok := asString(b)
		return ok && as == bs
	}
	if ab, ok := a.(bool); ok {
		bb, ok := b.(bool)
		return ok && ab == bb
	}
	if alist, ok := asStrings(a); ok {
		blist, ok := asStrings(b)
		if !ok || len(alist) != len(blist) {
			return false
		}
		for i := range alist {
			if alist[i] != blist[i] {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}

// containsValue does case-insensitive substring matching for strings and
// element membership for list answers.
func containsValue(answer, ruleValue any) bool {
	needle, ok := asString(ruleValue)
	if !ok {
		// Non-string needles only make sense against list answers.
		if list, ok := asList(answer); ok {
			for _, item := range list {
				if equalValues(item, ruleValue) {
					return true
				}
			}
		}
		return false
	}

	if haystack, ok := asString(answer); ok {
		return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}
	if list, ok := asStrings(answer); ok {
		for _, item := range list {
			if strings.EqualFold(item, needle) {
				return true
			}
		}
	}
	return false
}

// orderValues compares numerically when both sides are numbers, and
// lexicographically when both are strings. Returns ok=false for any other
// operand pairing; ordering operators never match those.
func orderValues(a, b any) (int, bool) {
	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			switch {
			case af < bf:
				return -1, true
			case af > bf:
				return 1, true
			default:
				return 0, true
			}
		}
		return 0, false
	}
	if as, ok := asString(a); ok {
		if bs, ok := asString(b); ok {
			return strings.Compare(as, bs), true
		}
	}
	return 0, false
}

// inList reports membership of the answer in the rule's list. A list answer
// matches when any of its elements is in the rule's list.
func inList(answer, ruleValue any) bool {
	list, ok := asList(ruleValue)
	if !ok {
		return false
	}

	if elements, ok := asList(answer); ok {
		for _, el := range elements {
			for _, candidate := range list {
				if equalValues(el, candidate) {
					return true
				}
			}
		}
		return false
	}

	for _, candidate := range list {
		if equalValues(answer, candidate) {
			return true
		}
	}
	return false
}

// isEmptyValue tests the projected answer's emptiness; the rule value is ignored.
func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := asString(v); ok {
		return strings.TrimSpace(s) == ""
	}
	if list, ok := asList(v); ok {
		return len(list) == 0
	}
	return false
}
