package routing

import (
	"errors"
	"math"
	"strings"
	"testing"

	"multi-llm-router/internal/domain"
)

func TestNew_StrategyValidation(t *testing.T) {
	for _, s := range []Strategy{StrategyCostOptimized, StrategyQualityOptimized, StrategyBalanced} {
		if _, err := New(s); err != nil {
			t.Errorf("New(%s) unexpected error: %v", s, err)
		}
	}

	_, err := New(Strategy("turbo"))
	if err == nil {
		t.Fatal("New(turbo) expected error")
	}
	if !errors.Is(err, domain.ErrInvalidStrategy) {
		t.Errorf("error = %v, want ErrInvalidStrategy", err)
	}
}

func TestSelectModel_ForceModel(t *testing.T) {
	r, _ := New(StrategyBalanced)

	got := r.SelectModel(userMessages("hola"), Config{ForceModel: "gpt-4-turbo"})
	want := Decision{Provider: "openai", Model: "gpt-4-turbo"}
	if got != want {
		t.Errorf("forced model = %+v, want %+v", got, want)
	}

	got = r.SelectModel(userMessages("hola"), Config{ForceProvider: "anthropic", ForceModel: "claude-3-opus-20240229"})
	want = Decision{Provider: "anthropic", Model: "claude-3-opus-20240229"}
	if got != want {
		t.Errorf("forced provider+model = %+v, want %+v", got, want)
	}
}

func TestSelectModel_FixedStrategies(t *testing.T) {
	costRouter, _ := New(StrategyCostOptimized)
	qualityRouter, _ := New(StrategyQualityOptimized)

	// Fixed strategies ignore complexity entirely.
	for _, msg := range []string{"hola", "Analyze our quarterly financial strategy in detail"} {
		if got := costRouter.SelectModel(userMessages(msg), Config{}); got != (Decision{Provider: "gemini", Model: "gemini-1.5-flash"}) {
			t.Errorf("cost_optimized(%q) = %+v", msg, got)
		}
		if got := qualityRouter.SelectModel(userMessages(msg), Config{}); got != (Decision{Provider: "anthropic", Model: "claude-sonnet-4-20250514"}) {
			t.Errorf("quality_optimized(%q) = %+v", msg, got)
		}
	}
}

func TestSelectModel_Balanced(t *testing.T) {
	r, _ := New(StrategyBalanced)

	tests := []struct {
		name      string
		message   string
		preferred string
		want      Decision
	}{
		{"low openai", "hola", "", Decision{Provider: "openai", Model: "gpt-4o-mini"}},
		{"low anthropic", "hola", "anthropic", Decision{Provider: "anthropic", Model: "claude-3-5-haiku-20241022"}},
		{"low grok", "hola", "grok", Decision{Provider: "grok", Model: "grok-beta"}},
		{"medium openai", "Explain how your service works", "", Decision{Provider: "openai", Model: "gpt-4o-mini"}},
		{"medium anthropic", "Explain how your service works", "anthropic", Decision{Provider: "anthropic", Model: "claude-3-5-sonnet-20241022"}},
		{"high openai", "Analyze our marketing numbers", "openai", Decision{Provider: "openai", Model: "gpt-4o"}},
		{"high gemini", "Analyze our marketing numbers", "gemini", Decision{Provider: "gemini", Model: "gemini-1.5-pro"}},
		{"high grok", "Analyze our marketing numbers", "grok", Decision{Provider: "grok", Model: "grok-2-latest"}},
		{"unknown preferred falls back to openai", "Analyze our marketing numbers", "mistral", Decision{Provider: "openai", Model: "gpt-4o"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.SelectModel(userMessages(tt.message), Config{PreferredProvider: tt.preferred})
			if got != tt.want {
				t.Errorf("SelectModel(%q, preferred=%q) = %+v, want %+v", tt.message, tt.preferred, got, tt.want)
			}
		})
	}
}

// A long message without keyword hits routes to the premium openai
// model under the balanced strategy.
func TestSelectModel_Balanced_LengthBased(t *testing.T) {
	r, _ := New(StrategyBalanced)

	message := strings.Repeat("z ", 150) // 300 chars, no keywords
	if got := r.Complexity(userMessages(message)); got != TierHigh {
		t.Fatalf("complexity = %s, want %s", got, TierHigh)
	}

	got := r.SelectModel(userMessages(message), Config{PreferredProvider: "openai"})
	want := Decision{Provider: "openai", Model: "gpt-4o"}
	if got != want {
		t.Errorf("SelectModel = %+v, want %+v", got, want)
	}
}

func TestSelectModel_Idempotent(t *testing.T) {
	r, _ := New(StrategyBalanced)
	messages := userMessages("What are the differences between the plans?")

	first := r.SelectModel(messages, Config{})
	second := r.SelectModel(messages, Config{})
	if first != second {
		t.Errorf("repeated selection differs: %+v then %+v", first, second)
	}
}

func TestEstimateCost(t *testing.T) {
	r, _ := New(StrategyBalanced)

	// Delegates to the total-token path: 30/70 split.
	got := r.EstimateCost("gpt-4o", 1000)
	want := 300.0/1000*0.005 + 700.0/1000*0.015
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("EstimateCost(gpt-4o, 1000) = %v, want %v", got, want)
	}

	// Unknown models price against the default entry, never fail.
	got = r.EstimateCost("mystery-model", 1000)
	want = 300.0/1000*0.01 + 700.0/1000*0.03
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("EstimateCost(mystery-model, 1000) = %v, want %v", got, want)
	}
}
