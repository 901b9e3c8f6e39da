// Package llmrouter is the public API for embedding the multi-LLM
// router: intent classification, complexity-based model selection,
// cost estimation, and dispatch to the chosen backend.
package llmrouter

import (
	"multi-llm-router/internal/agent"
	"multi-llm-router/internal/cost"
	"multi-llm-router/internal/domain"
	"multi-llm-router/internal/routing"
)

// Re-exported domain types. These are aliases, so values flow freely
// between the public API and the internal packages.
type (
	Message     = domain.Message
	Role        = domain.Role
	ContentPart = domain.ContentPart

	Context  = agent.Context
	Category = agent.Category
	Info     = agent.Info

	Strategy = routing.Strategy
	Tier     = routing.Tier
	Decision = routing.Decision
	Routing  = routing.Config

	Pricing = cost.Pricing
)

// Role constants.
const (
	RoleSystem    = domain.RoleSystem
	RoleUser      = domain.RoleUser
	RoleAssistant = domain.RoleAssistant
)

// Agent categories.
const (
	CategorySales     = agent.CategorySales
	CategorySupport   = agent.CategorySupport
	CategoryFAQ       = agent.CategoryFAQ
	CategorySmalltalk = agent.CategorySmalltalk
	CategoryGeneral   = agent.CategoryGeneral
)

// Routing strategies.
const (
	StrategyCostOptimized    = routing.StrategyCostOptimized
	StrategyQualityOptimized = routing.StrategyQualityOptimized
	StrategyBalanced         = routing.StrategyBalanced
)

// Complexity tiers.
const (
	TierLow    = routing.TierLow
	TierMedium = routing.TierMedium
	TierHigh   = routing.TierHigh
)

// Sentinel errors, re-exported for errors.Is checks.
var (
	ErrInvalidStrategy = domain.ErrInvalidStrategy
	ErrUnknownProvider = domain.ErrUnknownProvider
)

// NewContext builds a per-request agent context for a conversation.
var NewContext = agent.NewContext

// InfoFor returns catalog metadata for an agent category.
var InfoFor = agent.InfoFor

// FormatCost renders a USD cost for display.
var FormatCost = cost.FormatCost
