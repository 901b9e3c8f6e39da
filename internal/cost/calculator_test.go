package cost

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestCalculator_Cost(t *testing.T) {
	calc := NewCalculator(nil)

	tests := []struct {
		name          string
		model         string
		input, output int
		want          float64
	}{
		{"gpt-4o-mini small request", "gpt-4o-mini", 500, 200, 0.000195},
		{"gpt-4o round numbers", "gpt-4o", 1000, 1000, 0.005 + 0.015},
		{"claude sonnet", "claude-3-5-sonnet-20241022", 2000, 500, 2*0.003 + 0.5*0.015},
		{"zero tokens", "gpt-4o", 0, 0, 0},
		{"unknown model uses default pricing", "totally-new-model", 1000, 1000, 0.01 + 0.03},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Cost(tt.model, tt.input, tt.output)
			if !almostEqual(got, tt.want) {
				t.Errorf("Cost(%s, %d, %d) = %v, want %v", tt.model, tt.input, tt.output, got, tt.want)
			}
		})
	}
}

// CostFromTotal must match the explicit 30/70 split for every known
// model.
func TestCalculator_CostFromTotal_SplitContract(t *testing.T) {
	calc := NewCalculator(nil)

	for model := range modelPricing {
		fromTotal := calc.CostFromTotal(model, 1000)
		explicit := calc.Cost(model, 300, 700)
		if !almostEqual(fromTotal, explicit) {
			t.Errorf("%s: CostFromTotal(1000) = %v, Cost(300, 700) = %v", model, fromTotal, explicit)
		}
	}

	// Unknown models follow the same contract through the default
	// entry.
	if !almostEqual(calc.CostFromTotal("mystery", 1000), calc.Cost("mystery", 300, 700)) {
		t.Error("split contract broken for unknown model")
	}
}

func TestCalculator_CostFromTotal_TruncatesShares(t *testing.T) {
	calc := NewCalculator(nil)

	// 101 total: 30.3 -> 30 input, 70.7 -> 70 output.
	got := calc.CostFromTotal("gpt-4o", 101)
	want := calc.Cost("gpt-4o", 30, 70)
	if !almostEqual(got, want) {
		t.Errorf("CostFromTotal(101) = %v, want %v", got, want)
	}

	if got := calc.CostFromTotal("gpt-4o", 0); got != 0 {
		t.Errorf("CostFromTotal(gpt-4o, 0) = %v, want 0", got)
	}
}

func TestCalculator_Overrides(t *testing.T) {
	calc := NewCalculator(map[string]Pricing{
		"gpt-4o":       {InputPer1K: 1, OutputPer1K: 2},
		"custom-model": {InputPer1K: 0.5, OutputPer1K: 0.5},
	})

	if got := calc.Cost("gpt-4o", 1000, 1000); !almostEqual(got, 3) {
		t.Errorf("overridden gpt-4o cost = %v, want 3", got)
	}
	if got := calc.Cost("custom-model", 1000, 1000); !almostEqual(got, 1) {
		t.Errorf("added custom-model cost = %v, want 1", got)
	}
	// Models without overrides keep table pricing.
	if got := calc.Cost("gpt-4o-mini", 1000, 1000); !almostEqual(got, 0.00015+0.0006) {
		t.Errorf("gpt-4o-mini cost = %v, want table pricing", got)
	}
}

func TestCalculator_PricingFor(t *testing.T) {
	calc := NewCalculator(nil)

	p := calc.PricingFor("gemini-1.5-flash")
	if !almostEqual(p.InputPer1K, 0.000075) || !almostEqual(p.OutputPer1K, 0.0003) {
		t.Errorf("gemini-1.5-flash pricing = %+v", p)
	}

	def := calc.PricingFor("no-such-model")
	if !almostEqual(def.InputPer1K, 0.01) || !almostEqual(def.OutputPer1K, 0.03) {
		t.Errorf("default pricing = %+v, want {0.01 0.03}", def)
	}
}

func TestCalculator_CompareModels(t *testing.T) {
	calc := NewCalculator(nil)

	models := []string{"gpt-4o", "gpt-4o-mini", "gemini-1.5-flash"}
	costs := calc.CompareModels(models, 1000, 500)

	if len(costs) != len(models) {
		t.Fatalf("got %d entries, want %d", len(costs), len(models))
	}
	for _, model := range models {
		want := calc.Cost(model, 1000, 500)
		if !almostEqual(costs[model], want) {
			t.Errorf("costs[%s] = %v, want %v", model, costs[model], want)
		}
	}
	if costs["gemini-1.5-flash"] >= costs["gpt-4o"] {
		t.Error("expected gemini-1.5-flash to be cheaper than gpt-4o")
	}
}

func TestFormatCost(t *testing.T) {
	tests := []struct {
		cost float64
		want string
	}{
		{0.000195, "$0.000195"},
		{0.0045, "$0.004500"},
		{0.009999, "$0.009999"},
		{0.01, "$0.01"},
		{0.0125, "$0.01"},
		{12.5, "$12.50"},
		{0, "$0.000000"},
	}

	for _, tt := range tests {
		if got := FormatCost(tt.cost); got != tt.want {
			t.Errorf("FormatCost(%v) = %q, want %q", tt.cost, got, tt.want)
		}
	}
}
