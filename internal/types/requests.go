package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	LinkedInURL string `json:"linkedinUrl" validate:"required,contains=linkedin.com"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AnalyzeJobRequest is the body of POST /analyze-job.
type AnalyzeJobRequest struct {
	JobTitle string `json:"jobTitle" validate:"required,min=2"`
}

// Validate validates the AnalyzeJobRequest using the validator.
// The title is trimmed first so whitespace padding cannot satisfy the
// minimum length.
func (r *AnalyzeJobRequest) Validate() error {
	r.JobTitle = strings.TrimSpace(r.JobTitle)
	validate := validator.New()
	return validate.Struct(r)
}

// FeedbackRequest is the body of POST /feedback. Only the feedback text is
// required; the rest provides context for the spreadsheet row.
type FeedbackRequest struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Tier     string `json:"tier"`
	Feedback string `json:"feedback" validate:"required"`
	Email    string `json:"email"`
	URL      string `json:"url"`
}

// Validate validates the FeedbackRequest using the validator.
func (r *FeedbackRequest) Validate() error {
	r.Feedback = strings.TrimSpace(r.Feedback)
	validate := validator.New()
	return validate.Struct(r)
}

// AnalyzeResponse is the success body for both analyze endpoints.
type AnalyzeResponse struct {
	Score       int      `json:"score"`
	Roast       string   `json:"roast,omitempty"`
	GoodFactors []string `json:"goodFactors"`
	BadFactors  []string `json:"badFactors"`
	Tier        Tier     `json:"tier"`
	JobTitle    string   `json:"jobTitle,omitempty"`
	Name        string   `json:"name,omitempty"`
	ProfilePic  string   `json:"profilePic,omitempty"`
	Headline    string   `json:"headline,omitempty"`
}
