package cost

import "fmt"

// Calculator computes request costs against a per-model price table.
// The table is fixed at construction and the calculator is safe for
// concurrent use.
type Calculator struct {
	pricing map[string]Pricing
}

// NewCalculator creates a calculator from the static price table.
// Entries in overrides replace or add whole entries by model name;
// a single entry is never partially merged.
func NewCalculator(overrides map[string]Pricing) *Calculator {
	pricing := make(map[string]Pricing, len(modelPricing)+len(overrides))
	for model, p := range modelPricing {
		pricing[model] = p
	}
	for model, p := range overrides {
		pricing[model] = p
	}
	return &Calculator{pricing: pricing}
}

// PricingFor returns the price entry for a model, falling back to the
// default entry for unknown models. A lookup never fails.
func (c *Calculator) PricingFor(model string) Pricing {
	if p, ok := c.pricing[model]; ok {
		return p
	}
	return defaultPricing
}

// Cost computes the USD cost for separate input and output token
// counts.
func (c *Calculator) Cost(model string, inputTokens, outputTokens int) float64 {
	p := c.PricingFor(model)
	inputCost := float64(inputTokens) / 1000 * p.InputPer1K
	outputCost := float64(outputTokens) / 1000 * p.OutputPer1K
	return inputCost + outputCost
}

// CostFromTotal computes the USD cost when only a total token count is
// known, assuming the typical 30% input / 70% output split. Each share
// is truncated to a whole token count before pricing, so
// CostFromTotal(m, 1000) equals Cost(m, 300, 700) for every model.
func (c *Calculator) CostFromTotal(model string, totalTokens int) float64 {
	estimatedInput := int(float64(totalTokens) * 0.3)
	estimatedOutput := int(float64(totalTokens) * 0.7)
	return c.Cost(model, estimatedInput, estimatedOutput)
}

// CompareModels maps each model name to its cost for the given
// workload. Iteration order of the result is unspecified; callers
// sort as needed.
func (c *Calculator) CompareModels(models []string, inputTokens, outputTokens int) map[string]float64 {
	costs := make(map[string]float64, len(models))
	for _, model := range models {
		costs[model] = c.Cost(model, inputTokens, outputTokens)
	}
	return costs
}

// FormatCost renders a cost for display. Sub-cent costs keep six
// decimal places so cheap models don't all render as $0.00.
func FormatCost(cost float64) string {
	if cost < 0.01 {
		return fmt.Sprintf("$%.6f", cost)
	}
	return fmt.Sprintf("$%.2f", cost)
}
