// Package types provides type definitions for structured data used throughout the screening engine.
package types

import "fmt"

// QuestionType identifies the kind of answer a screening question collects.
type QuestionType string

// The closed set of supported question types.
const (
	QuestionBoolean           QuestionType = "boolean"
	QuestionSingleChoice      QuestionType = "single_choice"
	QuestionMultiChoice       QuestionType = "multi_choice"
	QuestionShortText         QuestionType = "short_text"
	QuestionLongText          QuestionType = "long_text"
	QuestionNumber            QuestionType = "number"
	QuestionDate              QuestionType = "date"
	QuestionSalary            QuestionType = "salary_expectation"
	QuestionExperience        QuestionType = "years_of_experience"
	QuestionAvailability      QuestionType = "availability"
	QuestionWorkAuthorization QuestionType = "work_authorization"
	QuestionURLList           QuestionType = "url_list"
	QuestionFileUpload        QuestionType = "file_upload"
)

// allQuestionTypes enumerates every recognized question type for membership checks.
var allQuestionTypes = map[QuestionType]bool{
	QuestionBoolean:           true,
	QuestionSingleChoice:      true,
	QuestionMultiChoice:       true,
	QuestionShortText:         true,
	QuestionLongText:          true,
	QuestionNumber:            true,
	QuestionDate:              true,
	QuestionSalary:            true,
	QuestionExperience:        true,
	QuestionAvailability:      true,
	QuestionWorkAuthorization: true,
	QuestionURLList:           true,
	QuestionFileUpload:        true,
}

// IsValid reports whether the question type is one of the recognized kinds.
func (t QuestionType) IsValid() bool {
	return allQuestionTypes[t]
}

// ChoiceConfig holds tunables for single-choice and multi-choice questions.
type ChoiceConfig struct {
	Choices []string `json:"choices"`
}

// TextConfig holds tunables for short-text and long-text questions.
// Pattern is a regular expression the answer must match; an empty pattern
// disables the check.
type TextConfig struct {
	MinLength *int   `json:"min_length,omitempty"`
	MaxLength *int   `json:"max_length,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
}

// NumberConfig holds tunables for number questions.
type NumberConfig struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// SalaryConfig holds tunables for salary expectation questions.
type SalaryConfig struct {
	MinAmount *float64 `json:"min_amount,omitempty"`
	MaxAmount *float64 `json:"max_amount,omitempty"`
}

// ExperienceConfig holds tunables for years-of-experience questions.
type ExperienceConfig struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// AvailabilityConfig holds tunables for availability questions.
type AvailabilityConfig struct {
	MaxNoticeDays *int `json:"max_notice_days,omitempty"`
}

// URLConfig holds tunables for URL list questions. RequiredDomains restricts
// every submitted URL to hosts containing at least one of the listed domains.
type URLConfig struct {
	MaxURLs         *int     `json:"max_urls,omitempty"`
	RequiredDomains []string `json:"required_domains,omitempty"`
}

// FileConfig holds tunables for file upload questions. MaxSize is in bytes;
// AllowedTypes lists permitted file extensions (without the leading dot).
type FileConfig struct {
	MaxSize      *int64   `json:"max_size,omitempty"`
	AllowedTypes []string `json:"allowed_types,omitempty"`
	MaxFiles     *int     `json:"max_files,omitempty"`
}

// QuestionConfig carries the per-type tunables for a question. Exactly one
// variant may be set, and it must match the owning question's type. A nil
// variant means the type's defaults apply.
type QuestionConfig struct {
	Choice       *ChoiceConfig       `json:"choice,omitempty"`
	Text         *TextConfig         `json:"text,omitempty"`
	Number       *NumberConfig       `json:"number,omitempty"`
	Salary       *SalaryConfig       `json:"salary,omitempty"`
	Experience   *ExperienceConfig   `json:"experience,omitempty"`
	Availability *AvailabilityConfig `json:"availability,omitempty"`
	URLs         *URLConfig          `json:"urls,omitempty"`
	Files        *FileConfig         `json:"files,omitempty"`
}

// Question represents a single screening question configured by an employer.
type Question struct {
	ID          string         `json:"id"`
	Prompt      string         `json:"prompt"`
	Type        QuestionType   `json:"type"`
	Order       int            `json:"order"`
	Required    bool           `json:"required"`
	Config      QuestionConfig `json:"config,omitempty"`
	HelpText    string         `json:"help_text,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	Rules       []Rule         `json:"rules,omitempty"`
}

// variantNames lists which config variants are set on the question.
func (c *QuestionConfig) variantNames() []string {
	var set []string
	if c.Choice != nil {
		set = append(set, "choice")
	}
	if c.Text != nil {
		set = append(set, "text")
	}
	if c.Number != nil {
		set = append(set, "number")
	}
	if c.Salary != nil {
		set = append(set, "salary")
	}
	if c.Experience != nil {
		set = append(set, "experience")
	}
	if c.Availability != nil {
		set = append(set, "availability")
	}
	if c.URLs != nil {
		set = append(set, "urls")
	}
	if c.Files != nil {
		set = append(set, "files")
	}
	return set
}

// expectedVariant returns the config variant name legal for a question type,
// or empty when the type takes no configuration.
func expectedVariant(t QuestionType) string {
	switch t {
	case QuestionSingleChoice, QuestionMultiChoice:
		return "choice"
	case QuestionShortText, QuestionLongText:
		return "text"
	case QuestionNumber:
		return "number"
	case QuestionSalary:
		return "salary"
	case QuestionExperience:
		return "experience"
	case QuestionAvailability:
		return "availability"
	case QuestionURLList:
		return "urls"
	case QuestionFileUpload:
		return "files"
	default:
		return ""
	}
}

// ValidateConfig checks that the question's config variant matches its type.
// A question may carry no config; it may never carry another type's config.
func (q *Question) ValidateConfig() error {
	if !q.Type.IsValid() {
		return fmt.Errorf("question %s: unknown question type %q", q.ID, q.Type)
	}

	set := q.Config.variantNames()
	if len(set) == 0 {
		return nil
	}
	if len(set) > 1 {
		return fmt.Errorf("question %s: multiple config variants set (%v)", q.ID, set)
	}

	expected := expectedVariant(q.Type)
	if set[0] != expected {
		if expected == "" {
			return fmt.Errorf("question %s: type %q takes no config, found %q", q.ID, q.Type, set[0])
		}
		return fmt.Errorf("question %s: config variant %q does not match type %q", q.ID, set[0], q.Type)
	}

	return nil
}
