package routing

import (
	"strings"
	"testing"

	"multi-llm-router/internal/domain"
)

func userMessages(content string) []domain.Message {
	return []domain.Message{{Role: domain.RoleUser, Content: content}}
}

func TestDetectComplexity(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Tier
	}{
		// Keyword hits
		{"analysis keyword", "Analyze our marketing funnel", TierHigh},
		{"spanish strategy keyword", "necesito una estrategia de ventas", TierHigh},
		{"legal domain", "review this legal document", TierHigh},
		{"explain keyword", "Explain how your service works", TierMedium},
		{"difference keyword", "difference between both options?", TierMedium},
		{"plans matches the plan keyword", "What are the differences between the plans?", TierHigh},

		// High beats medium when both match
		{"high and medium keywords", "explain the architecture", TierHigh},

		// Length fallbacks
		{"short message", "Hola", TierLow},
		{"just over medium threshold", strings.Repeat("a", 51), TierMedium},
		{"at medium threshold", strings.Repeat("a", 50), TierLow},
		{"just over high threshold", strings.Repeat("a", 201), TierHigh},
		{"at high threshold", strings.Repeat("a", 200), TierMedium},

		// Thresholds count characters, not bytes: each "á" is one
		// character but two bytes.
		{"accented under medium threshold", strings.Repeat("á", 45), TierLow},
		{"accented between thresholds", strings.Repeat("á", 120), TierMedium},
		{"accented over high threshold", strings.Repeat("á", 201), TierHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectComplexity(userMessages(tt.message))
			if got != tt.want {
				t.Errorf("detectComplexity(%q) = %s, want %s", tt.message, got, tt.want)
			}
		})
	}
}

func TestDetectComplexity_EmptyConversation(t *testing.T) {
	if got := detectComplexity(nil); got != TierLow {
		t.Errorf("detectComplexity(nil) = %s, want %s", got, TierLow)
	}
	// A conversation with no user message is also low.
	messages := []domain.Message{{Role: domain.RoleSystem, Content: "be helpful"}}
	if got := detectComplexity(messages); got != TierLow {
		t.Errorf("no user message = %s, want %s", got, TierLow)
	}
}

func TestDetectComplexity_UsesLastUserMessage(t *testing.T) {
	messages := []domain.Message{
		{Role: domain.RoleUser, Content: "Analyze this complex contract"},
		{Role: domain.RoleAssistant, Content: "Done."},
		{Role: domain.RoleUser, Content: "ok"},
	}
	if got := detectComplexity(messages); got != TierLow {
		t.Errorf("trailing short message = %s, want %s", got, TierLow)
	}
}

func TestDetectComplexity_MultimodalContent(t *testing.T) {
	messages := []domain.Message{
		{Role: domain.RoleUser, Parts: []domain.ContentPart{
			domain.TextPart("Analyze the financial data"),
			{Type: domain.ContentTypeImageURL, ImageURL: &domain.ImageURL{URL: "https://example.com/chart.png"}},
			domain.TextPart("in this chart"),
		}},
	}
	if got := detectComplexity(messages); got != TierHigh {
		t.Errorf("multimodal analysis request = %s, want %s", got, TierHigh)
	}
}
