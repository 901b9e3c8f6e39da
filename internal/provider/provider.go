// Package provider defines the LLM backend interface and the factory
// that builds concrete clients by provider name.
package provider

import (
	"context"

	"multi-llm-router/internal/domain"
)

// Provider is the capability every LLM backend exposes to the router.
// Implementations return the response text and the total token count
// for the request, and fail with *domain.ProviderError on missing
// credentials, network failures, or malformed responses.
type Provider interface {
	// Name returns the provider identifier (openai, anthropic,
	// gemini, grok).
	Name() string

	// Model returns the model identifier the provider is bound to.
	Model() string

	// ChatCompletion executes a chat completion request. maxTokens 0
	// means the provider default.
	ChatCompletion(ctx context.Context, messages []domain.Message, temperature float64, maxTokens int) (string, int, error)
}
