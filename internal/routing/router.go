// Package routing selects the optimal (provider, model) pair for a
// conversation, matching model capability to query complexity so cheap
// models serve simple traffic and premium models serve demanding
// traffic.
package routing

import (
	"fmt"

	"multi-llm-router/internal/cost"
	"multi-llm-router/internal/domain"
)

// Strategy is the router's selection mode.
type Strategy string

const (
	// StrategyCostOptimized always picks the cheapest known model.
	StrategyCostOptimized Strategy = "cost_optimized"

	// StrategyQualityOptimized always picks the best known model.
	StrategyQualityOptimized Strategy = "quality_optimized"

	// StrategyBalanced matches the model to query complexity.
	StrategyBalanced Strategy = "balanced"
)

// Decision is a routing outcome: which provider to call with which
// model.
type Decision struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// Config carries per-request routing overrides. The zero value applies
// defaults.
type Config struct {
	// ForceProvider and ForceModel bypass complexity detection and
	// strategy entirely. ForceProvider defaults to "openai" when only
	// ForceModel is set.
	ForceProvider string
	ForceModel    string

	// PreferredProvider steers the balanced strategy toward a
	// provider. Defaults to "openai".
	PreferredProvider string
}

// balancedModels maps each complexity tier to its designated
// (provider, model) pair per provider.
var balancedModels = map[Tier]map[string]Decision{
	TierLow: {
		"openai":    {Provider: "openai", Model: "gpt-4o-mini"},
		"anthropic": {Provider: "anthropic", Model: "claude-3-5-haiku-20241022"},
		"gemini":    {Provider: "gemini", Model: "gemini-1.5-flash"},
		"grok":      {Provider: "grok", Model: "grok-beta"},
	},
	TierMedium: {
		"openai":    {Provider: "openai", Model: "gpt-4o-mini"},
		"anthropic": {Provider: "anthropic", Model: "claude-3-5-sonnet-20241022"},
		"gemini":    {Provider: "gemini", Model: "gemini-1.5-flash"},
		"grok":      {Provider: "grok", Model: "grok-2-latest"},
	},
	TierHigh: {
		"openai":    {Provider: "openai", Model: "gpt-4o"},
		"anthropic": {Provider: "anthropic", Model: "claude-sonnet-4-20250514"},
		"gemini":    {Provider: "gemini", Model: "gemini-1.5-pro"},
		"grok":      {Provider: "grok", Model: "grok-2-latest"},
	},
}

// SmartRouter selects models for conversations under a fixed strategy.
// It holds only immutable state and is safe for concurrent use.
type SmartRouter struct {
	strategy   Strategy
	calculator *cost.Calculator
}

// New creates a smart router. The strategy must be one of the three
// recognized values.
func New(strategy Strategy) (*SmartRouter, error) {
	switch strategy {
	case StrategyCostOptimized, StrategyQualityOptimized, StrategyBalanced:
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStrategy, strategy)
	}
	return &SmartRouter{
		strategy:   strategy,
		calculator: cost.NewCalculator(nil),
	}, nil
}

// Strategy returns the strategy the router was constructed with.
func (r *SmartRouter) Strategy() Strategy {
	return r.strategy
}

// SelectModel picks the (provider, model) pair for the conversation.
// A forced model in cfg short-circuits complexity detection and
// strategy.
func (r *SmartRouter) SelectModel(messages []domain.Message, cfg Config) Decision {
	if cfg.ForceModel != "" {
		provider := cfg.ForceProvider
		if provider == "" {
			provider = "openai"
		}
		return Decision{Provider: provider, Model: cfg.ForceModel}
	}

	switch r.strategy {
	case StrategyCostOptimized:
		return r.cheapestModel()
	case StrategyQualityOptimized:
		return r.bestModel()
	default:
		preferred := cfg.PreferredProvider
		if preferred == "" {
			preferred = "openai"
		}
		return r.balancedModel(detectComplexity(messages), preferred)
	}
}

// Complexity exposes complexity detection for callers that want the
// tier itself (debugging, logging, metrics).
func (r *SmartRouter) Complexity(messages []domain.Message) Tier {
	return detectComplexity(messages)
}

// EstimateCost estimates the USD cost of a request against a model
// from its total token count.
func (r *SmartRouter) EstimateCost(model string, tokens int) float64 {
	return r.calculator.CostFromTotal(model, tokens)
}

func (r *SmartRouter) cheapestModel() Decision {
	return Decision{Provider: "gemini", Model: "gemini-1.5-flash"}
}

func (r *SmartRouter) bestModel() Decision {
	return Decision{Provider: "anthropic", Model: "claude-sonnet-4-20250514"}
}

// balancedModel picks the tier's designated pair for the preferred
// provider, falling back to the tier's openai pair for unknown
// providers.
func (r *SmartRouter) balancedModel(tier Tier, preferred string) Decision {
	pairs := balancedModels[tier]
	if d, ok := pairs[preferred]; ok {
		return d
	}
	return pairs["openai"]
}
