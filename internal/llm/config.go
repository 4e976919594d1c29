// Package llm provides the LLM client abstraction and provider implementations.
package llm

// Provider represents an LLM provider.
type Provider string

// Provider constants define supported LLM providers.
const (
	// ProviderOpenAI is the OpenAI chat-completions provider (default).
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini Provider = "gemini"
)

// Default models per provider. A cheap, fast model is plenty for a
// single-shot scoring prompt.
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// Config holds the provider and model selection for the client.
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (OpenAI, gpt-4o-mini).
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderOpenAI,
		Model:    DefaultOpenAIModel,
	}
}

// ResolveModel returns the configured model, or the provider default when
// no override is set.
func (c *Config) ResolveModel() string {
	if c.Model != "" {
		return c.Model
	}
	switch c.Provider {
	case ProviderGemini:
		return DefaultGeminiModel
	default:
		return DefaultOpenAIModel
	}
}
