// Package tokens estimates token counts for conversations before they
// are dispatched, so request costs can be estimated up front. OpenAI
// models get exact tiktoken counts; everything else falls back to a
// character-based estimator.
package tokens

import (
	"multi-llm-router/internal/domain"
)

// Counter counts tokens for a conversation against a model.
type Counter interface {
	// CountMessages returns the token count for the messages.
	CountMessages(model string, messages []domain.Message) int

	// SupportsModel reports whether this counter handles the model.
	SupportsModel(model string) bool
}

// Registry picks the right counter for a model, with an estimator
// fallback so a count is always available.
type Registry struct {
	counters []Counter
	fallback Counter
}

// NewRegistry creates a registry with the tiktoken OpenAI counter
// registered and the character estimator as fallback.
func NewRegistry() *Registry {
	return &Registry{
		counters: []Counter{NewOpenAICounter()},
		fallback: NewEstimator(),
	}
}

// Register adds a counter to the registry.
func (r *Registry) Register(counter Counter) {
	r.counters = append(r.counters, counter)
}

// CountMessages counts tokens using the first counter that supports
// the model, or the fallback estimator.
func (r *Registry) CountMessages(model string, messages []domain.Message) int {
	for _, counter := range r.counters {
		if counter.SupportsModel(model) {
			return counter.CountMessages(model, messages)
		}
	}
	return r.fallback.CountMessages(model, messages)
}

// Estimator approximates token counts from character length. This is
// the fallback for providers without a local tokenizer.
type Estimator struct {
	// CharsPerToken is the average characters per token.
	CharsPerToken float64
}

// NewEstimator creates an estimator with the usual 4 chars/token
// average.
func NewEstimator() *Estimator {
	return &Estimator{CharsPerToken: 4.0}
}

// CountMessages estimates the token count for the messages.
func (e *Estimator) CountMessages(model string, messages []domain.Message) int {
	totalChars := 0
	for _, msg := range messages {
		totalChars += len(msg.Role)
		totalChars += len(msg.Text())
		totalChars += 4 // role tokens + separators
	}
	return int(float64(totalChars) / e.CharsPerToken)
}

// SupportsModel returns true: the estimator backs every model.
func (e *Estimator) SupportsModel(model string) bool {
	return true
}
