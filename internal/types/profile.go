// Package types defines the shared data structures for profile analysis:
// enriched profiles, scoring results and the HTTP request/response shapes.
package types

import "strings"

// Experience is one position from a profile's work history.
type Experience struct {
	Title   string `json:"title"`
	Company string `json:"company,omitempty"`
}

// Profile is the normalized view of a LinkedIn profile, whichever source
// produced it. Fields the source could not supply stay zero; the scoring
// engine treats absent fields as empty, never as an error.
type Profile struct {
	FullName      string       `json:"fullName"`
	Headline      string       `json:"headline"`
	Summary       string       `json:"summary,omitempty"`
	PhotoURL      string       `json:"photoUrl,omitempty"`
	FollowerCount int          `json:"followerCount,omitempty"`
	Experiences   []Experience `json:"experiences,omitempty"`

	// Enriched marks profiles that came from a real upstream source rather
	// than a synthetic title-only shell.
	Enriched bool `json:"-"`
}

// FromJobTitle wraps a bare job title in a synthetic profile so the scoring
// engine can run its title tables over it.
func FromJobTitle(title string) *Profile {
	return &Profile{Headline: title}
}

// FirstName returns the first whitespace-separated token of the full name.
func (p *Profile) FirstName() string {
	fields := strings.Fields(p.FullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// DisplayHeadline returns the headline, falling back to a summary prefix
// when the source exposed no headline.
func (p *Profile) DisplayHeadline() string {
	if p.Headline != "" {
		return p.Headline
	}
	if len(p.Summary) > 100 {
		return p.Summary[:100]
	}
	return p.Summary
}
