// Package config provides configuration loading and validation for the doomscore server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config is the explicit configuration value injected into the server and
// analyzer at construction time. Components never read the environment
// themselves; everything ambient is resolved here, once.
// All fields are optional; a missing API key degrades the corresponding path
// to a fallback rather than hard-failing at startup.
type Config struct {
	// Server
	Port int `json:"port,omitempty"`

	// Upstream credentials
	PiloterrAPIKey string `json:"piloterr_api_key,omitempty"` // Profile enrichment API key
	OpenAIAPIKey   string `json:"openai_api_key,omitempty"`   // OpenAI chat completions key
	GeminiAPIKey   string `json:"gemini_api_key,omitempty"`   // Gemini key (alternate LLM provider)

	// Feedback
	FeedbackWebhookURL string `json:"feedback_webhook_url,omitempty"` // Spreadsheet webhook for feedback capture

	// Behavior
	LLMProvider    string `json:"llm_provider,omitempty"`    // "openai" (default) or "gemini"
	LLMModel       string `json:"llm_model,omitempty"`       // Override the provider default model
	RulesetVersion string `json:"ruleset_version,omitempty"` // Scoring ruleset version, default "v2"
	UseBrowser     bool   `json:"use_browser,omitempty"`     // Render public profile pages in a headless browser
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed debug information
}

// Defaults applied by MergeWithDefaults when neither the environment nor a
// config file provides a value.
const (
	DefaultPort           = 8080
	DefaultRulesetVersion = "v2"
	DefaultLLMProvider    = "openai"
)

// FromEnv builds a Config from process environment variables. This is the
// only place the environment is consulted.
func FromEnv() *Config {
	cfg := &Config{
		PiloterrAPIKey:     os.Getenv("PILOTERR_API_KEY"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		FeedbackWebhookURL: os.Getenv("FEEDBACK_WEBHOOK_URL"),
		LLMProvider:        os.Getenv("LLM_PROVIDER"),
		LLMModel:           os.Getenv("LLM_MODEL"),
		RulesetVersion:     os.Getenv("RULESET_VERSION"),
	}

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("USE_BROWSER"); v != "" {
		cfg.UseBrowser, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("VERBOSE"); v != "" {
		cfg.Verbose, _ = strconv.ParseBool(v)
	}

	return cfg
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}

	switch c.LLMProvider {
	case "", "openai", "gemini":
	default:
		return fmt.Errorf("config error: unknown llm_provider %q", c.LLMProvider)
	}

	switch c.RulesetVersion {
	case "", "v1", "v2":
	default:
		return fmt.Errorf("config error: unknown ruleset_version %q", c.RulesetVersion)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to layer environment values over a config file,
// and finally over the built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.PiloterrAPIKey == "" {
		result.PiloterrAPIKey = defaults.PiloterrAPIKey
	}
	if result.OpenAIAPIKey == "" {
		result.OpenAIAPIKey = defaults.OpenAIAPIKey
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.FeedbackWebhookURL == "" {
		result.FeedbackWebhookURL = defaults.FeedbackWebhookURL
	}
	if result.LLMProvider == "" {
		result.LLMProvider = defaults.LLMProvider
	}
	if result.LLMModel == "" {
		result.LLMModel = defaults.LLMModel
	}
	if result.RulesetVersion == "" {
		result.RulesetVersion = defaults.RulesetVersion
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Defaults returns the built-in default configuration.
func Defaults() Config {
	return Config{
		Port:           DefaultPort,
		LLMProvider:    DefaultLLMProvider,
		RulesetVersion: DefaultRulesetVersion,
	}
}
