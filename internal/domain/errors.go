// Canonical error types surfaced by the router and its provider
// clients.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for construction-time validation failures. Callers
// test for them with errors.Is.
var (
	// ErrInvalidStrategy is returned when a router is constructed
	// with an unrecognized routing strategy.
	ErrInvalidStrategy = errors.New("invalid routing strategy")

	// ErrUnknownProvider is returned by the provider factory for an
	// unrecognized provider name.
	ErrUnknownProvider = errors.New("unknown provider")
)

// ProviderError represents a failure raised by an LLM backend: missing
// credentials, a failed network call, or a malformed response. It
// carries the provider name and, where applicable, the underlying
// cause.
type ProviderError struct {
	// Provider is the backend that raised the error (openai,
	// anthropic, gemini, grok).
	Provider string

	// Message is the human-readable error description.
	Message string

	// Err is the wrapped cause, if any.
	Err error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Provider, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a provider error without a cause.
func NewProviderError(provider, message string) *ProviderError {
	return &ProviderError{Provider: provider, Message: message}
}

// WrapProviderError creates a provider error wrapping an underlying
// cause.
func WrapProviderError(provider, message string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Message: message, Err: err}
}
