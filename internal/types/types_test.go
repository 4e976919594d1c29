package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForScore(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{0, TierUntouchable},
		{20, TierUntouchable},
		{21, TierProbablyFine},
		{40, TierProbablyFine},
		{41, TierSweating},
		{60, TierSweating},
		{61, TierOnTheList},
		{80, TierOnTheList},
		{81, TierCooked},
		{100, TierCooked},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TierForScore(tt.score), "score %d", tt.score)
	}
}

func TestProfileFirstName(t *testing.T) {
	tests := []struct {
		fullName string
		want     string
	}{
		{"Jane Doe", "Jane"},
		{"Jane", "Jane"},
		{"  Jane   Q  Doe ", "Jane"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		p := &Profile{FullName: tt.fullName}
		assert.Equal(t, tt.want, p.FirstName(), "full name %q", tt.fullName)
	}
}

func TestProfileDisplayHeadline(t *testing.T) {
	assert.Equal(t, "Chief Clerk", (&Profile{Headline: "Chief Clerk", Summary: "long summary"}).DisplayHeadline())

	long := ""
	for range 30 {
		long += "summary "
	}
	got := (&Profile{Summary: long}).DisplayHeadline()
	assert.Len(t, got, 100)

	assert.Equal(t, "", (&Profile{}).DisplayHeadline())
}

func TestAnalyzeRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid", "https://www.linkedin.com/in/somebody", false},
		{"missing", "", true},
		{"not a profile link", "https://example.com/in/somebody", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &AnalyzeRequest{LinkedInURL: tt.url}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnalyzeJobRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"valid", "Software Engineer", false},
		{"two chars", "QA", false},
		{"empty", "", true},
		{"single char", "x", true},
		{"whitespace only", "   ", true},
		{"padded short title", " x ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &AnalyzeJobRequest{JobTitle: tt.title}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFeedbackRequestValidate(t *testing.T) {
	valid := &FeedbackRequest{Feedback: "this score is slander"}
	assert.NoError(t, valid.Validate())

	empty := &FeedbackRequest{Feedback: "   "}
	assert.Error(t, empty.Validate())
}

func TestFromJobTitle(t *testing.T) {
	p := FromJobTitle("Plumber")
	assert.Equal(t, "Plumber", p.Headline)
	assert.False(t, p.Enriched)
}
