package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EvaluateRequest represents the request to screen one application against a form.
// Answers may be empty: missing required answers surface as validation errors
// in the screening result, not as a request error.
type EvaluateRequest struct {
	Form    Form            `json:"form" validate:"required"`
	Answers []RawSubmission `json:"answers" validate:"dive"`
}

// BatchApplication is one application within a batch evaluation request.
type BatchApplication struct {
	ApplicationID uuid.UUID       `json:"application_id" validate:"required"`
	Answers       []RawSubmission `json:"answers" validate:"dive"`
}

// EvaluateBatchRequest represents the request to screen many applications
// against the same form snapshot.
type EvaluateBatchRequest struct {
	Form         Form               `json:"form" validate:"required"`
	Applications []BatchApplication `json:"applications" validate:"required,min=1,dive"`
}

// ValidateFormRequest represents the request to structurally validate a form snapshot.
type ValidateFormRequest struct {
	Form Form `json:"form" validate:"required"`
}

// Validate validates the EvaluateRequest using the validator.
func (r *EvaluateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the EvaluateBatchRequest using the validator.
func (r *EvaluateBatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ValidateFormRequest using the validator.
func (r *ValidateFormRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
