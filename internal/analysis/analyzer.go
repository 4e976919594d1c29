// Package analysis orchestrates a doom analysis: profile enrichment, the
// rule-based scoring engine, the LLM variant and the degraded fallbacks.
package analysis

import (
	"context"
	"log"

	"github.com/jonathan/doomscore/internal/llm"
	"github.com/jonathan/doomscore/internal/scoring"
	"github.com/jonathan/doomscore/internal/types"
)

// ProfileFetcher fetches an enriched profile for a profile URL.
type ProfileFetcher interface {
	Fetch(ctx context.Context, profileURL string) (*types.Profile, error)
}

// DefaultRoast is used when the model omits one.
const DefaultRoast = "AI is watching you."

// Analyzer combines the scoring engine with the optional upstream
// collaborators. Collaborators left nil degrade that path: no enricher
// means the public-page fallback, no LLM means the heuristic engine.
type Analyzer struct {
	engine   *scoring.Engine
	enricher ProfileFetcher // primary enrichment API, nil without a key
	public   ProfileFetcher // public-page fallback, nil to disable
	llm      llm.Client     // nil when no completion key is configured
	verbose  bool
}

// Options configures an Analyzer.
type Options struct {
	Engine   *scoring.Engine
	Enricher ProfileFetcher
	Public   ProfileFetcher
	LLM      llm.Client
	Verbose  bool
}

// New creates an Analyzer. The engine is required; everything else is an
// optional collaborator.
func New(opts Options) *Analyzer {
	return &Analyzer{
		engine:   opts.Engine,
		enricher: opts.Enricher,
		public:   opts.Public,
		llm:      opts.LLM,
		verbose:  opts.Verbose,
	}
}

// AnalyzeProfile scores a profile URL. Enrichment sources are tried in
// order; when all of them fail the result degrades to a deterministic
// hash-derived score. This method never fails.
func (a *Analyzer) AnalyzeProfile(ctx context.Context, profileURL string) *types.AnalyzeResponse {
	profile := a.fetchProfile(ctx, profileURL)
	if profile == nil {
		// Nothing to analyze. Hand out a stable pseudo-score so repeat
		// submissions of the same URL at least agree with each other.
		score := scoring.HashScore(profileURL)
		return &types.AnalyzeResponse{
			Score:       score,
			GoodFactors: scoring.FallbackFactors.Good,
			BadFactors:  scoring.FallbackFactors.Bad,
			Tier:        types.TierForScore(score),
		}
	}

	result := a.engine.Score(profile)
	return &types.AnalyzeResponse{
		Score:       result.Score,
		GoodFactors: result.GoodFactors,
		BadFactors:  result.BadFactors,
		Tier:        types.TierForScore(result.Score),
		Name:        profile.FirstName(),
		ProfilePic:  profile.PhotoURL,
		Headline:    profile.DisplayHeadline(),
	}
}

// AnalyzeJobTitle scores a bare job title, via the LLM when one is
// configured, via the heuristic engine otherwise or on any LLM failure.
// This method never fails.
func (a *Analyzer) AnalyzeJobTitle(ctx context.Context, jobTitle string) *types.AnalyzeResponse {
	if a.llm != nil {
		if resp := a.analyzeTitleLLM(ctx, jobTitle); resp != nil {
			return resp
		}
	}

	result := a.engine.ScoreJobTitle(jobTitle)
	return &types.AnalyzeResponse{
		Score:       result.Score,
		GoodFactors: result.GoodFactors,
		BadFactors:  result.BadFactors,
		Tier:        types.TierForScore(result.Score),
		JobTitle:    jobTitle,
	}
}

// fetchProfile tries the enrichment sources in order and returns nil when
// none of them produce a profile. Upstream errors are logged, never
// propagated.
func (a *Analyzer) fetchProfile(ctx context.Context, profileURL string) *types.Profile {
	if a.enricher != nil {
		profile, err := a.enricher.Fetch(ctx, profileURL)
		if err == nil {
			return profile
		}
		log.Printf("[ENRICH] Primary enrichment failed: %v", err)
	}

	if a.public != nil {
		profile, err := a.public.Fetch(ctx, profileURL)
		if err == nil {
			return profile
		}
		log.Printf("[ENRICH] Public-page fallback failed: %v", err)
	}

	return nil
}

// analyzeTitleLLM runs the LLM path; nil means fall back to the engine.
func (a *Analyzer) analyzeTitleLLM(ctx context.Context, jobTitle string) *types.AnalyzeResponse {
	raw, err := a.llm.GenerateJSON(ctx, BuildJobTitlePrompt(jobTitle))
	if err != nil {
		log.Printf("[LLM] Completion failed: %v", err)
		return nil
	}

	result, err := ParseDoomResult(raw)
	if err != nil {
		log.Printf("[LLM] Unusable completion: %v", err)
		if a.verbose {
			log.Printf("[LLM] Raw completion: %s", raw)
		}
		return nil
	}

	if result.Roast == "" {
		result.Roast = DefaultRoast
	}
	rules := a.engine.Ruleset()
	if len(result.GoodFactors) == 0 {
		result.GoodFactors = []string{rules.DefaultGood.ForScore(result.Score)}
	}
	if len(result.BadFactors) == 0 {
		result.BadFactors = []string{rules.DefaultBad.ForScore(result.Score)}
	}

	return &types.AnalyzeResponse{
		Score:       result.Score,
		Roast:       result.Roast,
		GoodFactors: result.GoodFactors,
		BadFactors:  result.BadFactors,
		Tier:        types.TierForScore(result.Score),
		JobTitle:    jobTitle,
	}
}
