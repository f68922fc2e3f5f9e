package generativeAI

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Options selects and configures an LLM backend. APIKeyEnv names the
// environment variable holding the key so the key itself never lives in
// config files.
type Options struct {
	Provider  string // "openai", "gemini", or "" for none
	Model     string
	BaseURL   string // OpenAI-compatible endpoints only
	APIKeyEnv string
}

// NewClient builds the configured backend. ErrNotConfigured (wrapped)
// means no provider is set up; callers should degrade to unenriched
// output instead of failing.
func NewClient(ctx context.Context, opts Options) (Client, error) {
	apiKey := ""
	if opts.APIKeyEnv != "" {
		apiKey = os.Getenv(opts.APIKeyEnv)
	}

	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "openai", "openai_compat":
		return NewOpenAIClient(apiKey, opts.BaseURL, opts.Model)
	case "gemini":
		return NewGeminiClient(ctx, apiKey, opts.Model)
	case "":
		return nil, ErrNotConfigured
	default:
		return nil, fmt.Errorf("unknown LLM provider %q: %w", opts.Provider, ErrNotConfigured)
	}
}
