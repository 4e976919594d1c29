// Package enrich provides profile enrichment: a Piloterr API client and a
// public-profile-page fallback for when no enrichment key is configured.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/jonathan/doomscore/internal/fetch"
	"github.com/jonathan/doomscore/internal/types"
)

// DefaultPiloterrURL is the profile-info endpoint of the Piloterr API.
const DefaultPiloterrURL = "https://piloterr.com/api/v2/linkedin/profile/info"

// PiloterrClient fetches enriched profile documents from the Piloterr API.
type PiloterrClient struct {
	apiKey  string
	baseURL string
}

// NewPiloterrClient creates a client keyed with the given API key.
func NewPiloterrClient(apiKey string) *PiloterrClient {
	return &PiloterrClient{
		apiKey:  apiKey,
		baseURL: DefaultPiloterrURL,
	}
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (c *PiloterrClient) WithBaseURL(baseURL string) *PiloterrClient {
	c.baseURL = baseURL
	return c
}

// piloterrDocument mirrors the provider's response. Field names have varied
// across provider revisions (full_name vs name vs first_name/last_name), so
// the document carries all variants and Profile() reconciles them.
type piloterrDocument struct {
	Error string `json:"error,omitempty"`

	FullName  string `json:"full_name,omitempty"`
	Name      string `json:"name,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	Headline      string `json:"headline,omitempty"`
	Summary       string `json:"summary,omitempty"`
	PhotoURL      string `json:"photo_url,omitempty"`
	FollowerCount int    `json:"follower_count,omitempty"`

	Experiences []struct {
		Title   string `json:"title,omitempty"`
		Company string `json:"company,omitempty"`
	} `json:"experiences,omitempty"`
}

func (d *piloterrDocument) profile() *types.Profile {
	name := d.FullName
	if name == "" {
		name = d.Name
	}
	if name == "" {
		name = strings.TrimSpace(d.FirstName + " " + d.LastName)
	}

	p := &types.Profile{
		FullName:      name,
		Headline:      d.Headline,
		Summary:       d.Summary,
		PhotoURL:      d.PhotoURL,
		FollowerCount: d.FollowerCount,
		Enriched:      true,
	}
	for _, e := range d.Experiences {
		p.Experiences = append(p.Experiences, types.Experience{Title: e.Title, Company: e.Company})
	}
	return p
}

// Fetch retrieves the enriched profile for a LinkedIn URL.
// A missing API key, a non-success status, and a provider-side error payload
// are all returned as errors; the caller decides which fallback to take.
func (c *PiloterrClient) Fetch(ctx context.Context, linkedinURL string) (*types.Profile, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("piloterr: no API key configured")
	}

	reqURL := c.baseURL + "?query=" + url.QueryEscape(linkedinURL)
	opts := fetch.DefaultOptions()
	opts.Headers = map[string]string{"x-api-key": c.apiKey}

	result, err := fetch.URL(ctx, reqURL, opts)
	if err != nil {
		return nil, fmt.Errorf("piloterr: %w", err)
	}

	var doc piloterrDocument
	if err := json.Unmarshal(result.Body, &doc); err != nil {
		return nil, fmt.Errorf("piloterr: malformed response: %w", err)
	}

	// The provider reports lookup failures inside a 200 body.
	if doc.Error != "" {
		return nil, fmt.Errorf("piloterr: provider error: %s", doc.Error)
	}

	return doc.profile(), nil
}
