// Package anthropic implements the provider interface over Anthropic's
// messages API.
//
// Supports: claude-sonnet-4, claude-3-5-sonnet, claude-3-5-haiku,
// claude-3-opus.
//
// Anthropic handles system prompts out of band: system messages are
// stripped from the conversation and sent via the top-level system
// field.
package anthropic

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
	defaultBaseURL = "https://api.anthropic.com/v1"
	defaultModel   = "claude-sonnet-4-20250514"
	providerName   = "anthropic"

	apiVersion = "2023-06-01"

	// The messages API requires max_tokens; applied when the caller
	// passes 0.
	defaultMaxTokens = 4096
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

// Provider calls the Anthropic messages API.
type Provider struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// messagesRequest is the request body for /messages.
type messagesRequest struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	System      string        `json:"system,omitempty"`
	Messages    []wireMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse is the response body for /messages.
type messagesResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// New creates an Anthropic provider. An empty model selects the
// default claude-sonnet-4-20250514.
func New(apiKey, model string, opts ...Option) (*Provider, error) {
	p := &Provider{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.apiKey == "" {
		return nil, domain.NewProviderError(providerName, "API key is not set")
	}
	if p.model == "" {
		p.model = defaultModel
	}
	return p, nil
}

func (p *Provider) Name() string {
	return providerName
}

func (p *Provider) Model() string {
	return p.model
}

// ChatCompletion executes a messages request and returns the response
// text with the total token count (input + output).
func (p *Provider) ChatCompletion(ctx context.Context, messages []domain.Message, temperature float64, maxTokens int) (string, int, error) {
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	req := &messagesRequest{
		Model:       p.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	// System prompts travel in the dedicated field, not the message
	// list.
	for _, m := range messages {
		if m.Role == domain.RoleSystem {
			req.System = m.Text()
			continue
		}
		req.Messages = append(req.Messages, wireMessage{
			Role:    string(m.Role),
			Content: m.Text(),
		})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", 0, domain.WrapProviderError(providerName, "failed to marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return "", 0, domain.WrapProviderError(providerName, "failed to create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", 0, domain.WrapProviderError(providerName, "request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, domain.WrapProviderError(providerName, "failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			return "", 0, domain.NewProviderError(providerName, apiErr.Error.Message)
		}
		return "", 0, domain.NewProviderError(providerName,
			fmt.Sprintf("API error (status %d): %s", resp.StatusCode, string(respBody)))
	}

	var result messagesResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", 0, domain.WrapProviderError(providerName, "failed to unmarshal response", err)
	}

	var text strings.Builder
	for _, block := range result.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	tokens := result.Usage.InputTokens + result.Usage.OutputTokens
	return text.String(), tokens, nil
}
