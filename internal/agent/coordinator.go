// Package agent classifies inbound chat messages into agent categories
// using deterministic keyword rules. Classification consumes zero
// tokens and is fully predictable, which keeps routing decisions fast
// and debuggable.
package agent

import (
	"strings"
	"unicode"
)

// Coordinator routes messages to specialized agent categories using
// keyword-based rules. It holds only immutable tables and is safe for
// concurrent use.
type Coordinator struct {
	config map[string]any
}

// NewCoordinator creates a coordinator. The config map is optional and
// reserved for behavior customization.
func NewCoordinator(config map[string]any) *Coordinator {
	if config == nil {
		config = map[string]any{}
	}
	return &Coordinator{config: config}
}

// Classify selects the agent category for the last user message in the
// context. Rules run in fixed priority order, first match wins:
// smalltalk, sales, support, faq, then the GENERAL fallback.
//
// When allowed is non-empty it acts as an allow-set: a selected
// category outside the set degrades to GENERAL. That fallback fires
// even when GENERAL itself is not in the set; product has been asked
// whether excluded-GENERAL should fail closed instead, until then the
// behavior is kept as shipped.
func (c *Coordinator) Classify(ctx Context, allowed []string) Category {
	msg := ctx.LastUserMessage()

	var suggested Category
	switch {
	case isSmalltalk(msg):
		suggested = CategorySmalltalk
	case isSales(msg):
		suggested = CategorySales
	case isSupport(msg):
		suggested = CategorySupport
	case isFAQ(msg):
		suggested = CategoryFAQ
	default:
		suggested = CategoryGeneral
	}

	if len(allowed) > 0 {
		allowedSet := make(map[Category]struct{}, len(allowed))
		for _, a := range allowed {
			allowedSet[Category(strings.ToUpper(a))] = struct{}{}
		}
		if _, ok := allowedSet[suggested]; !ok {
			return CategoryGeneral
		}
	}

	return suggested
}

// isSmalltalk detects greetings, farewells, and courtesies: short
// social messages that need no specialized handling.
func isSmalltalk(msg string) bool {
	m := strings.ToLower(strings.TrimSpace(msg))
	if m == "" {
		return false
	}

	if len(strings.Fields(m)) <= 4 {
		if _, ok := smalltalkPhrases[m]; ok {
			return true
		}
		// "Hola!" and "thanks!!" count as their bare phrase.
		stripped := strings.TrimFunc(m, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if _, ok := smalltalkPhrases[stripped]; ok && stripped != "" {
			return true
		}
	}

	// Emoji-only or punctuation-only messages.
	for _, r := range m {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isSales(msg string) bool {
	return matchesAny(msg, salesKeywords)
}

func isSupport(msg string) bool {
	return matchesAny(msg, supportKeywords)
}

func isFAQ(msg string) bool {
	return matchesAny(msg, faqKeywords)
}

func matchesAny(msg string, keywords []string) bool {
	text := strings.ToLower(msg)
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
