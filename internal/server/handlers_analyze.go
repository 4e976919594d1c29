package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/doomscore/internal/types"
)

// handleAnalyze scores a LinkedIn profile URL.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(&ErrValidation{Field: "linkedinUrl", Message: err.Error()}), "Invalid LinkedIn URL")
		return
	}

	// The analyzer degrades internally (enrichment fallbacks, hash score);
	// by the time we get here the response is always well-formed.
	resp := s.analyzer.AnalyzeProfile(r.Context(), req.LinkedInURL)
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAnalyzeJob scores a bare job title.
func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(&ErrValidation{Field: "jobTitle", Message: err.Error()}), "Please enter your job title")
		return
	}

	resp := s.analyzer.AnalyzeJobTitle(r.Context(), req.JobTitle)
	s.jsonResponse(w, http.StatusOK, resp)
}
