// Package cost computes USD request costs from per-model token
// pricing.
package cost

// Pricing holds per-1K-token prices for a model, in USD.
type Pricing struct {
	InputPer1K  float64 `json:"input_per_1k"`
	OutputPer1K float64 `json:"output_per_1k"`
}

// modelPricing is the static per-model price table.
// Prices are USD per 1K tokens, as of December 2024.
var modelPricing = map[string]Pricing{
	// OpenAI
	"gpt-4o":        {InputPer1K: 0.005, OutputPer1K: 0.015},
	"gpt-4o-mini":   {InputPer1K: 0.00015, OutputPer1K: 0.0006},
	"gpt-4-turbo":   {InputPer1K: 0.01, OutputPer1K: 0.03},
	"gpt-3.5-turbo": {InputPer1K: 0.0005, OutputPer1K: 0.0015},

	// Anthropic
	"claude-sonnet-4-20250514":   {InputPer1K: 0.003, OutputPer1K: 0.015},
	"claude-3-5-sonnet-20241022": {InputPer1K: 0.003, OutputPer1K: 0.015},
	"claude-3-5-haiku-20241022":  {InputPer1K: 0.0008, OutputPer1K: 0.004},
	"claude-3-opus-20240229":     {InputPer1K: 0.015, OutputPer1K: 0.075},

	// Google Gemini
	"gemini-1.5-flash": {InputPer1K: 0.000075, OutputPer1K: 0.0003},
	"gemini-1.5-pro":   {InputPer1K: 0.00125, OutputPer1K: 0.005},
	"gemini-2.0-flash": {InputPer1K: 0.0001, OutputPer1K: 0.0004},

	// xAI Grok
	"grok-beta":     {InputPer1K: 0.005, OutputPer1K: 0.015},
	"grok-2-latest": {InputPer1K: 0.005, OutputPer1K: 0.015},
}

// defaultPricing is the fallback for models missing from the table.
var defaultPricing = Pricing{InputPer1K: 0.01, OutputPer1K: 0.03}
