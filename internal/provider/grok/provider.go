// Package grok implements the provider interface over xAI's Grok API,
// which speaks the OpenAI chat completions wire format at a different
// base URL.
//
// Supports: grok-beta, grok-2-latest.
package grok

import (
	"multi-llm-router/internal/provider/openai"
)

const (
	defaultBaseURL = "https://api.x.ai/v1"
	defaultModel   = "grok-2-latest"
)

// New creates a Grok provider. An empty model selects the default
// grok-2-latest.
func New(apiKey, model string, opts ...openai.Option) (*openai.Provider, error) {
	if model == "" {
		model = defaultModel
	}
	base := []openai.Option{
		openai.WithBaseURL(defaultBaseURL),
		openai.WithProviderName("grok"),
	}
	return openai.New(apiKey, model, append(base, opts...)...)
}
