package llmrouter

import (
	"log/slog"

	"multi-llm-router/internal/config"
	"multi-llm-router/internal/cost"
	"multi-llm-router/internal/provider"
	"multi-llm-router/internal/routing"
)

// Option is a functional option for configuring a Router.
type Option func(*Router)

// WithStrategy sets the routing strategy, overriding the configured
// one.
func WithStrategy(strategy Strategy) Option {
	return func(r *Router) {
		r.strategy = strategy
	}
}

// WithConfig supplies a pre-loaded configuration instead of reading
// the environment.
func WithConfig(cfg *config.Config) Option {
	return func(r *Router) {
		r.cfg = cfg
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// WithPricingOverrides replaces or adds price table entries by model
// name.
func WithPricingOverrides(overrides map[string]Pricing) Option {
	return func(r *Router) {
		r.pricingOverrides = overrides
	}
}

// WithProviderFunc replaces the provider factory. Intended for tests
// that substitute fake backends.
func WithProviderFunc(fn func(name, model string, cfg *config.Config) (provider.Provider, error)) Option {
	return func(r *Router) {
		r.newProvider = fn
	}
}

func applyPricingFromConfig(cfg *config.Config, overrides map[string]Pricing) map[string]cost.Pricing {
	merged := make(map[string]cost.Pricing, len(cfg.Pricing)+len(overrides))
	for model, p := range cfg.Pricing {
		merged[model] = cost.Pricing{InputPer1K: p.InputPer1K, OutputPer1K: p.OutputPer1K}
	}
	for model, p := range overrides {
		merged[model] = p
	}
	return merged
}

func strategyFromConfig(cfg *config.Config) Strategy {
	if cfg.Routing.Strategy != "" {
		return routing.Strategy(cfg.Routing.Strategy)
	}
	return StrategyBalanced
}
