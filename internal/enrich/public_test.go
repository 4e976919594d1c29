package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profilePage = `<!DOCTYPE html>
<html>
<head>
<meta property="og:title" content="Jane Doe - Data Entry Clerk at Acme | LinkedIn" />
<meta property="og:description" content="Spreadsheets all day, every day." />
<meta property="og:image" content="https://cdn.example.com/jane.jpg" />
</head>
<body></body>
</html>`

func TestPublicFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(profilePage))
	}))
	defer server.Close()

	f := &PublicFetcher{}
	profile, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", profile.FullName)
	assert.Equal(t, "Data Entry Clerk at Acme", profile.Headline)
	assert.Equal(t, "Spreadsheets all day, every day.", profile.Summary)
	assert.Equal(t, "https://cdn.example.com/jane.jpg", profile.PhotoURL)
	assert.True(t, profile.Enriched)
}

func TestPublicFetchNoMetaTags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>Sign in to continue</body></html>"))
	}))
	defer server.Close()

	f := &PublicFetcher{}
	_, err := f.Fetch(context.Background(), server.URL)
	assert.Error(t, err)
}

func TestPublicFetchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer server.Close()

	f := &PublicFetcher{}
	_, err := f.Fetch(context.Background(), server.URL)
	assert.Error(t, err)
}

func TestParseProfileMeta(t *testing.T) {
	tests := []struct {
		name         string
		html         string
		wantName     string
		wantHeadline string
		wantErr      bool
	}{
		{
			name:         "name and headline",
			html:         `<meta property="og:title" content="Jo Founder - CEO | LinkedIn" />`,
			wantName:     "Jo Founder",
			wantHeadline: "CEO",
		},
		{
			name:     "name only",
			html:     `<meta property="og:title" content="Jo Founder | LinkedIn" />`,
			wantName: "Jo Founder",
		},
		{
			name:     "no trailing site suffix",
			html:     `<meta property="og:title" content="Jo Founder" />`,
			wantName: "Jo Founder",
		},
		{
			name:     "description only still yields a profile",
			html:     `<meta property="og:description" content="A person of mystery." />`,
			wantName: "",
		},
		{
			name:    "empty page",
			html:    `<html><body></body></html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := parseProfileMeta(tt.html)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, profile.FullName)
			assert.Equal(t, tt.wantHeadline, profile.Headline)
		})
	}
}
