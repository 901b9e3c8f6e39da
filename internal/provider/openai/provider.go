// Package openai implements the provider interface over OpenAI's chat
// completions API.
//
// Supports: gpt-4o, gpt-4o-mini, gpt-4-turbo, gpt-3.5-turbo.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"multi-llm-router/internal/domain"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
	providerName   = "openai"
)

// Option configures the provider.
type Option func(*Provider)

// WithBaseURL sets a custom base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(p *Provider) {
		p.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = httpClient
	}
}

// WithProviderName overrides the provider name reported in errors and
// results. Used by providers that share this wire format, such as
// grok.
func WithProviderName(name string) Option {
	return func(p *Provider) {
		p.name = name
	}
}

// Provider calls the OpenAI chat completions API.
type Provider struct {
	name       string
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// New creates an OpenAI provider. An empty model selects the default
// gpt-4o-mini.
func New(apiKey, model string, opts ...Option) (*Provider, error) {
	p := &Provider{
		name:       providerName,
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.apiKey == "" {
		return nil, domain.NewProviderError(p.name, "API key is not set")
	}
	if p.model == "" {
		p.model = defaultModel
	}
	return p, nil
}

func (p *Provider) Name() string {
	return p.name
}

func (p *Provider) Model() string {
	return p.model
}

// ChatCompletion executes a chat completion request and returns the
// response text with the total token count.
func (p *Provider) ChatCompletion(ctx context.Context, messages []domain.Message, temperature float64, maxTokens int) (string, int, error) {
	req := &ChatCompletionRequest{
		Model:       p.model,
		Messages:    toWireMessages(messages),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", 0, domain.WrapProviderError(p.name, "failed to marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", 0, domain.WrapProviderError(p.name, "failed to create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", 0, domain.WrapProviderError(p.name, "request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, domain.WrapProviderError(p.name, "failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr ErrorResponse
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			return "", 0, domain.NewProviderError(p.name, apiErr.Error.Message)
		}
		return "", 0, domain.NewProviderError(p.name,
			fmt.Sprintf("API error (status %d): %s", resp.StatusCode, string(respBody)))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", 0, domain.WrapProviderError(p.name, "failed to unmarshal response", err)
	}

	text := ""
	if len(result.Choices) > 0 {
		text = result.Choices[0].Message.Content
	}
	return text, result.Usage.TotalTokens, nil
}

// toWireMessages flattens domain messages to the wire format,
// collapsing multimodal parts to their text content.
func toWireMessages(messages []domain.Message) []ChatMessage {
	wire := make([]ChatMessage, len(messages))
	for i, m := range messages {
		wire[i] = ChatMessage{Role: string(m.Role), Content: m.Text()}
	}
	return wire
}
