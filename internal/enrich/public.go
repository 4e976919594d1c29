package enrich

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/doomscore/internal/fetch"
	"github.com/jonathan/doomscore/internal/types"
)

// PublicFetcher builds a minimal profile from the public profile page's
// OpenGraph meta tags. It is the degraded path taken when no enrichment key
// is configured: far less signal than the API, still better than a hash.
type PublicFetcher struct {
	UseBrowser bool // render with headless Chrome when the plain fetch returns a JS shell
	Verbose    bool
}

// Fetch retrieves the public page and extracts what the meta tags expose:
// name, headline and photo. Experience history and follower counts are not
// public, so the returned profile is partial by construction.
func (f *PublicFetcher) Fetch(ctx context.Context, profileURL string) (*types.Profile, error) {
	html, err := f.pageHTML(ctx, profileURL)
	if err != nil {
		return nil, err
	}

	profile, err := parseProfileMeta(html)
	if err != nil {
		return nil, fmt.Errorf("public profile %s: %w", profileURL, err)
	}

	if f.Verbose {
		log.Printf("[PUBLIC] Extracted meta profile for %s (headline %q)", profileURL, profile.Headline)
	}

	return profile, nil
}

func (f *PublicFetcher) pageHTML(ctx context.Context, profileURL string) (string, error) {
	result, err := fetch.URL(ctx, profileURL, nil)

	var html string
	if err == nil {
		html = string(result.Body)
	}

	// Profile pages are often a JS shell or a login wall for anonymous
	// fetches; a browser render is the only way to get real markup.
	if f.UseBrowser && (err != nil || fetch.ShouldUseBrowser(html)) {
		rendered, berr := fetch.BrowserSimple(ctx, profileURL, f.Verbose)
		if berr == nil {
			return rendered, nil
		}
		if err == nil {
			err = berr
		}
	}

	if html == "" && err != nil {
		return "", err
	}
	return html, nil
}

// parseProfileMeta extracts profile fields from OpenGraph meta tags.
func parseProfileMeta(html string) (*types.Profile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	meta := func(property string) string {
		value, _ := doc.Find(`meta[property="` + property + `"]`).First().Attr("content")
		return strings.TrimSpace(value)
	}

	title := meta("og:title")
	description := meta("og:description")
	image := meta("og:image")

	if title == "" && description == "" {
		return nil, fmt.Errorf("no profile meta tags found")
	}

	// og:title is typically "Full Name - Headline | LinkedIn"
	if idx := strings.LastIndex(title, " | "); idx >= 0 {
		title = title[:idx]
	}
	name := title
	headline := ""
	if idx := strings.Index(title, " - "); idx >= 0 {
		name = strings.TrimSpace(title[:idx])
		headline = strings.TrimSpace(title[idx+3:])
	}

	return &types.Profile{
		FullName: name,
		Headline: headline,
		Summary:  description,
		PhotoURL: image,
		Enriched: true,
	}, nil
}
