package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/doomscore/internal/types"
)

// handleFeedback forwards disagreement feedback to the configured webhook.
// Delivery failure is logged and swallowed; the client still gets success.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req types.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(&ErrValidation{Field: "feedback", Message: err.Error()}), "Feedback required")
		return
	}

	if !s.feedback.Configured() {
		err := &ErrNotConfigured{Feature: "feedback webhook"}
		log.Printf("[FEEDBACK] %v", err)
		s.errorResponse(w, HTTPStatus(err), "Feedback system unavailable")
		return
	}

	if err := s.feedback.Forward(r.Context(), &req); err != nil {
		log.Printf("[FEEDBACK] Delivery failed (request %s): %v", requestID(r.Context()), err)
	}

	s.jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}
