package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/doomscore/internal/scoring"
	"github.com/jonathan/doomscore/internal/types"
)

type stubFetcher struct {
	profile *types.Profile
	err     error
	calls   int
}

func (s *stubFetcher) Fetch(ctx context.Context, profileURL string) (*types.Profile, error) {
	s.calls++
	return s.profile, s.err
}

type stubLLM struct {
	response string
	err      error
	prompt   string
}

func (s *stubLLM) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func (s *stubLLM) Model() string { return "stub" }
func (s *stubLLM) Close() error  { return nil }

func testAnalyzer(t *testing.T, opts Options) *Analyzer {
	t.Helper()
	if opts.Engine == nil {
		rs, err := scoring.LoadRuleset("v2")
		require.NoError(t, err)
		opts.Engine = scoring.NewEngine(rs)
	}
	return New(opts)
}

func TestAnalyzeProfileEnriched(t *testing.T) {
	fetcher := &stubFetcher{profile: &types.Profile{
		FullName: "Jane Doe",
		Headline: "Data Entry Clerk",
		PhotoURL: "https://cdn.example.com/jane.jpg",
		Enriched: true,
	}}
	a := testAnalyzer(t, Options{Enricher: fetcher})

	resp := a.AnalyzeProfile(context.Background(), "https://linkedin.com/in/jane")

	assert.Equal(t, 1, fetcher.calls)
	assert.Greater(t, resp.Score, 50)
	assert.Equal(t, "Jane", resp.Name)
	assert.Equal(t, "Data Entry Clerk", resp.Headline)
	assert.Equal(t, "https://cdn.example.com/jane.jpg", resp.ProfilePic)
	assert.Equal(t, types.TierForScore(resp.Score), resp.Tier)
	assert.NotEmpty(t, resp.GoodFactors)
	assert.NotEmpty(t, resp.BadFactors)
}

func TestAnalyzeProfileFallsBackToPublic(t *testing.T) {
	enricher := &stubFetcher{err: errors.New("quota exceeded")}
	public := &stubFetcher{profile: &types.Profile{
		FullName: "Jo Founder",
		Headline: "Founder at Doomed Inc",
		Enriched: true,
	}}
	a := testAnalyzer(t, Options{Enricher: enricher, Public: public})

	resp := a.AnalyzeProfile(context.Background(), "https://linkedin.com/in/jo")

	assert.Equal(t, 1, enricher.calls)
	assert.Equal(t, 1, public.calls)
	assert.Equal(t, "Jo", resp.Name)
	assert.LessOrEqual(t, resp.Score, 50)
}

func TestAnalyzeProfileHashFallback(t *testing.T) {
	enricher := &stubFetcher{err: errors.New("down")}
	public := &stubFetcher{err: errors.New("blocked")}
	a := testAnalyzer(t, Options{Enricher: enricher, Public: public})

	url := "https://linkedin.com/in/ghost"
	first := a.AnalyzeProfile(context.Background(), url)
	second := a.AnalyzeProfile(context.Background(), url)

	assert.Equal(t, first.Score, second.Score, "hash fallback must be deterministic")
	assert.Equal(t, scoring.HashScore(url), first.Score)
	assert.Equal(t, scoring.FallbackFactors.Good, first.GoodFactors)
	assert.Equal(t, scoring.FallbackFactors.Bad, first.BadFactors)
	assert.Empty(t, first.Name)
}

func TestAnalyzeProfileNoSourcesConfigured(t *testing.T) {
	a := testAnalyzer(t, Options{})

	resp := a.AnalyzeProfile(context.Background(), "https://linkedin.com/in/nobody")
	assert.Equal(t, scoring.HashScore("https://linkedin.com/in/nobody"), resp.Score)
}

func TestAnalyzeJobTitleHeuristic(t *testing.T) {
	a := testAnalyzer(t, Options{})

	resp := a.AnalyzeJobTitle(context.Background(), "Plumber")
	assert.Equal(t, "Plumber", resp.JobTitle)
	assert.Less(t, resp.Score, 50)
	assert.NotEmpty(t, resp.GoodFactors)
	assert.NotEmpty(t, resp.BadFactors)
}

func TestAnalyzeJobTitleLLM(t *testing.T) {
	model := &stubLLM{response: `{"score": 91, "roast": "Start networking. With humans.", "goodFactors": ["You have hands"], "badFactors": ["So does the robot"]}`}
	a := testAnalyzer(t, Options{LLM: model})

	resp := a.AnalyzeJobTitle(context.Background(), "Toll Booth Operator")

	assert.Contains(t, model.prompt, "Toll Booth Operator")
	assert.Equal(t, 91, resp.Score)
	assert.Equal(t, "Start networking. With humans.", resp.Roast)
	assert.Equal(t, types.TierCooked, resp.Tier)
	assert.Equal(t, "Toll Booth Operator", resp.JobTitle)
}

func TestAnalyzeJobTitleLLMFillsDefaults(t *testing.T) {
	model := &stubLLM{response: `{"score": 30, "goodFactors": [], "badFactors": []}`}
	a := testAnalyzer(t, Options{LLM: model})

	resp := a.AnalyzeJobTitle(context.Background(), "Park Ranger")

	assert.Equal(t, DefaultRoast, resp.Roast)
	require.Len(t, resp.GoodFactors, 1)
	require.Len(t, resp.BadFactors, 1)
}

func TestAnalyzeJobTitleLLMErrorFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		model *stubLLM
	}{
		{"request error", &stubLLM{err: errors.New("timeout")}},
		{"unusable completion", &stubLLM{response: "I refuse to answer."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testAnalyzer(t, Options{LLM: tt.model})

			resp := a.AnalyzeJobTitle(context.Background(), "Plumber")
			assert.Less(t, resp.Score, 50, "heuristic engine should take over")
			assert.Equal(t, "Plumber", resp.JobTitle)
		})
	}
}
