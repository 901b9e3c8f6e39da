package provider

import (
	"fmt"
	"strings"

	"multi-llm-router/internal/config"
	"multi-llm-router/internal/domain"
	"multi-llm-router/internal/provider/anthropic"
	"multi-llm-router/internal/provider/gemini"
	"multi-llm-router/internal/provider/grok"
	"multi-llm-router/internal/provider/openai"
)

// New builds a provider client by name. An empty model selects the
// provider's configured default, then its built-in default. Unknown
// names fail with domain.ErrUnknownProvider; missing credentials fail
// with *domain.ProviderError.
func New(name, model string, cfg *config.Config) (Provider, error) {
	switch strings.ToLower(name) {
	case "openai":
		return openai.New(cfg.OpenAI.APIKey, pick(model, cfg.OpenAI.DefaultModel), baseURLOpts(cfg.OpenAI.BaseURL)...)
	case "anthropic":
		var opts []anthropic.Option
		if cfg.Anthropic.BaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(cfg.Anthropic.BaseURL))
		}
		return anthropic.New(cfg.Anthropic.APIKey, pick(model, cfg.Anthropic.DefaultModel), opts...)
	case "gemini":
		var opts []gemini.Option
		if cfg.Gemini.BaseURL != "" {
			opts = append(opts, gemini.WithBaseURL(cfg.Gemini.BaseURL))
		}
		return gemini.New(cfg.Gemini.APIKey, pick(model, cfg.Gemini.DefaultModel), opts...)
	case "grok":
		return grok.New(cfg.Grok.APIKey, pick(model, cfg.Grok.DefaultModel), baseURLOpts(cfg.Grok.BaseURL)...)
	default:
		return nil, fmt.Errorf("%w: %q (supported: openai, anthropic, gemini, grok)",
			domain.ErrUnknownProvider, name)
	}
}

func pick(model, configured string) string {
	if model != "" {
		return model
	}
	return configured
}

func baseURLOpts(baseURL string) []openai.Option {
	if baseURL == "" {
		return nil
	}
	return []openai.Option{openai.WithBaseURL(baseURL)}
}
