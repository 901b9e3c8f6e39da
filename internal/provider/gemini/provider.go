// Package gemini implements the provider interface over Google's
// Gemini generateContent API.
//
// Supports: gemini-1.5-flash, gemini-1.5-pro, gemini-2.0-flash.
//
// Gemini uses its own conversation format: assistant turns carry the
// role "model" and system prompts travel as a systemInstruction. The
// provider converts from the canonical format automatically.
package gemini

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
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-1.5-flash"
	providerName   = "gemini"
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

// Provider calls the Gemini generateContent API.
type Provider struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

type generateRequest struct {
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// New creates a Gemini provider. An empty model selects the default
// gemini-1.5-flash.
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

// ChatCompletion executes a generateContent request and returns the
// response text with the total token count. When the API omits usage
// metadata the count is estimated at 4 characters per token.
func (p *Provider) ChatCompletion(ctx context.Context, messages []domain.Message, temperature float64, maxTokens int) (string, int, error) {
	req := &generateRequest{
		GenerationConfig: &generationConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxTokens,
		},
	}

	requestChars := 0
	for _, m := range messages {
		text := m.Text()
		requestChars += len(text)
		switch m.Role {
		case domain.RoleSystem:
			req.SystemInstruction = &content{Parts: []part{{Text: text}}}
		case domain.RoleUser:
			req.Contents = append(req.Contents, content{Role: "user", Parts: []part{{Text: text}}})
		case domain.RoleAssistant:
			req.Contents = append(req.Contents, content{Role: "model", Parts: []part{{Text: text}}})
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", 0, domain.WrapProviderError(providerName, "failed to marshal request", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", p.baseURL, p.model, p.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", 0, domain.WrapProviderError(providerName, "failed to create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

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

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", 0, domain.WrapProviderError(providerName, "failed to unmarshal response", err)
	}

	var reply strings.Builder
	if len(result.Candidates) > 0 {
		for _, pt := range result.Candidates[0].Content.Parts {
			reply.WriteString(pt.Text)
		}
	}

	tokens := result.UsageMetadata.TotalTokenCount
	if tokens == 0 {
		// Gemini does not always report usage.
		tokens = (requestChars + reply.Len()) / 4
	}
	return reply.String(), tokens, nil
}
