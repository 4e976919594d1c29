package analysis

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/doomscore/internal/config"
	"github.com/jonathan/doomscore/internal/enrich"
	"github.com/jonathan/doomscore/internal/llm"
	"github.com/jonathan/doomscore/internal/scoring"
)

// FromConfig assembles an Analyzer from an explicit configuration value.
// Missing upstream keys disable that collaborator rather than failing:
// no enrichment key leaves the public-page fallback, no completion key
// leaves the rule engine.
func FromConfig(cfg config.Config) (*Analyzer, error) {
	ruleset, err := scoring.LoadRuleset(cfg.RulesetVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to load ruleset: %w", err)
	}

	var enricher ProfileFetcher
	if cfg.PiloterrAPIKey != "" {
		enricher = enrich.NewPiloterrClient(cfg.PiloterrAPIKey)
	} else {
		log.Printf("[ENRICH] No enrichment key configured, public-page fallback only")
	}

	llmClient, err := newLLMClient(cfg)
	if err != nil {
		log.Printf("[LLM] Disabled: %v", err)
		llmClient = nil
	}

	return New(Options{
		Engine:   scoring.NewEngine(ruleset),
		Enricher: enricher,
		Public:   &enrich.PublicFetcher{UseBrowser: cfg.UseBrowser, Verbose: cfg.Verbose},
		LLM:      llmClient,
		Verbose:  cfg.Verbose,
	}), nil
}

// newLLMClient builds the configured provider's client; errors when the
// matching key is absent.
func newLLMClient(cfg config.Config) (llm.Client, error) {
	llmCfg := &llm.Config{
		Provider: llm.Provider(cfg.LLMProvider),
		Model:    cfg.LLMModel,
	}

	switch llmCfg.Provider {
	case llm.ProviderGemini:
		return llm.NewClient(context.Background(), llmCfg, cfg.GeminiAPIKey)
	default:
		return llm.NewClient(context.Background(), llmCfg, cfg.OpenAIAPIKey)
	}
}

// Close releases the LLM client, if one was configured.
func (a *Analyzer) Close() error {
	if a.llm != nil {
		return a.llm.Close()
	}
	return nil
}
