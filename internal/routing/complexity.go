package routing

import (
	"strings"
	"unicode/utf8"

	"multi-llm-router/internal/domain"
)

// Tier classifies how demanding a query is.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Keyword tables indicating message complexity, Spanish and English
// terms side by side. Checked in strict priority order: a high hit
// wins over any medium hit.

var highComplexityKeywords = []string{
	// Analysis & Strategy
	"analyze", "analiza",
	"compare", "compara",
	"evaluate", "evalúa",
	"strategy", "estrategia",
	"plan", "planifica",
	"recommend", "recomienda",
	"diagnostic", "diagnóstico",
	"complex", "complejo",
	"detailed", "detallado",
	// Professional domains
	"contract", "contrato",
	"legal",
	"financial", "financiero",
	"technical", "técnico",
	"architecture", "arquitectura",
}

var mediumComplexityKeywords = []string{
	// Explanation & Description
	"explain", "explica",
	"describe", "describes",
	"summarize", "resume",
	"list", "lista",
	"what is", "qué es",
	"how does", "cómo funciona",
	"difference", "diferencia",
	"advantages", "ventajas",
	"pros and cons",
}

// Length thresholds for messages with no keyword hit.
const (
	highLengthThreshold   = 200
	mediumLengthThreshold = 50
)

// detectComplexity derives the complexity tier for a conversation from
// its last user message: keyword tables first (high before medium),
// then message length. Conversations without a user message are low.
func detectComplexity(messages []domain.Message) Tier {
	if len(messages) == 0 {
		return TierLow
	}

	lastUserMsg := strings.ToLower(domain.LastUserText(messages))

	for _, keyword := range highComplexityKeywords {
		if strings.Contains(lastUserMsg, keyword) {
			return TierHigh
		}
	}
	for _, keyword := range mediumComplexityKeywords {
		if strings.Contains(lastUserMsg, keyword) {
			return TierMedium
		}
	}

	// Thresholds count characters, not bytes. Accented Spanish text is
	// two bytes per accented rune and must not tier differently from
	// its unaccented equivalent.
	switch length := utf8.RuneCountInString(lastUserMsg); {
	case length > highLengthThreshold:
		return TierHigh
	case length > mediumLengthThreshold:
		return TierMedium
	default:
		return TierLow
	}
}
