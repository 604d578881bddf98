package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/screening-engine/internal/screening"
	"github.com/jonathan/screening-engine/internal/types"
)

// FormValidationResponse represents the response for /forms/validate
type FormValidationResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// BatchResult pairs an application with its screening verdict in the
// /evaluate/batch response.
type BatchResult struct {
	ApplicationID string                `json:"application_id"`
	Result        types.ScreeningResult `json:"result"`
	Summary       *types.ResultSummary  `json:"summary,omitempty"`
}

// BatchResponse represents the response for /evaluate/batch
type BatchResponse struct {
	Results []BatchResult `json:"results"`
}

// handleEvaluate screens one application against the form in the request body.
// With ?summary=1 the response is the compact summary projection instead of
// the full result.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := req.Form.Validate(); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Invalid form: "+err.Error())
		return
	}

	result := screening.ProcessRaw(&req.Form, req.Answers)

	if wantSummary(r) {
		s.jsonResponse(w, http.StatusOK, screening.Summarize(&result))
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleEvaluateBatch screens many applications against one form snapshot.
func (s *Server) handleEvaluateBatch(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := req.Form.Validate(); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Invalid form: "+err.Error())
		return
	}

	log.Printf("Screening batch of %d applications against form %s", len(req.Applications), req.Form.ID)

	apps := make([]screening.RawApplication, len(req.Applications))
	for i, app := range req.Applications {
		apps[i] = screening.RawApplication{ID: app.ApplicationID, Submissions: app.Answers}
	}

	screened, err := screening.ProcessRawBatch(r.Context(), &req.Form, apps, 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Batch screening failed: "+err.Error())
		return
	}

	includeSummary := wantSummary(r)
	results := make([]BatchResult, len(screened))
	for i := range screened {
		results[i] = BatchResult{
			ApplicationID: apps[i].ID.String(),
			Result:        screened[i],
		}
		if includeSummary {
			summary := screening.Summarize(&screened[i])
			results[i].Summary = &summary
		}
	}

	s.jsonResponse(w, http.StatusOK, BatchResponse{Results: results})
}

// handleValidateForm checks the structural invariants of a form snapshot
// without evaluating any answers.
func (s *Server) handleValidateForm(w http.ResponseWriter, r *http.Request) {
	var req types.ValidateFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := req.Form.Validate(); err != nil {
		s.jsonResponse(w, http.StatusUnprocessableEntity, FormValidationResponse{
			Valid: false,
			Error: err.Error(),
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, FormValidationResponse{Valid: true})
}

// wantSummary reports whether the request asked for the compact projection.
func wantSummary(r *http.Request) bool {
	switch r.URL.Query().Get("summary") {
	case "1", "true":
		return true
	}
	return false
}
