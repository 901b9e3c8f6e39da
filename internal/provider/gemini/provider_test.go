package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"multi-llm-router/internal/domain"
)

func TestNew_Validation(t *testing.T) {
	_, err := New("", "")
	var provErr *domain.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected *domain.ProviderError, got %v", err)
	}
	if provErr.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini", provErr.Provider)
	}

	p, err := New("api-key", "")
	if err != nil {
		t.Fatal(err)
	}
	if p.Model() != "gemini-1.5-flash" {
		t.Errorf("default model = %q", p.Model())
	}
}

func TestChatCompletion(t *testing.T) {
	var gotReq generateRequest
	var gotPath, gotKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatal(err)
		}

		resp := generateResponse{}
		resp.Candidates = []struct {
			Content content `json:"content"`
		}{
			{Content: content{Role: "model", Parts: []part{{Text: "Madrid."}}}},
		}
		resp.UsageMetadata.PromptTokenCount = 15
		resp.UsageMetadata.CandidatesTokenCount = 3
		resp.UsageMetadata.TotalTokenCount = 18
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	p, err := New("api-key", "gemini-1.5-flash", WithBaseURL(server.URL))
	if err != nil {
		t.Fatal(err)
	}

	messages := []domain.Message{
		{Role: domain.RoleSystem, Content: "Answer briefly."},
		{Role: domain.RoleUser, Content: "Capital of Spain?"},
		{Role: domain.RoleAssistant, Content: "Madrid."},
		{Role: domain.RoleUser, Content: "Repeat it"},
	}
	text, tokens, err := p.ChatCompletion(context.Background(), messages, 0.7, 64)
	if err != nil {
		t.Fatal(err)
	}

	if text != "Madrid." {
		t.Errorf("text = %q", text)
	}
	if tokens != 18 {
		t.Errorf("tokens = %d, want 18", tokens)
	}
	if !strings.HasSuffix(gotPath, "/models/gemini-1.5-flash:generateContent") {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "api-key" {
		t.Errorf("key = %q", gotKey)
	}

	// System prompt becomes systemInstruction; assistant turns get the
	// "model" role.
	if gotReq.SystemInstruction == nil || gotReq.SystemInstruction.Parts[0].Text != "Answer briefly." {
		t.Errorf("SystemInstruction = %+v", gotReq.SystemInstruction)
	}
	if len(gotReq.Contents) != 3 {
		t.Fatalf("got %d contents, want 3", len(gotReq.Contents))
	}
	if gotReq.Contents[1].Role != "model" {
		t.Errorf("assistant role = %q, want model", gotReq.Contents[1].Role)
	}
	if gotReq.GenerationConfig.MaxOutputTokens != 64 {
		t.Errorf("MaxOutputTokens = %d", gotReq.GenerationConfig.MaxOutputTokens)
	}
}

// The API does not always report usage; the provider estimates 4
// characters per token from the request and reply text.
func TestChatCompletion_TokenEstimate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := generateResponse{}
		resp.Candidates = []struct {
			Content content `json:"content"`
		}{
			{Content: content{Role: "model", Parts: []part{{Text: "12345678"}}}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	p, _ := New("api-key", "", WithBaseURL(server.URL))

	messages := []domain.Message{{Role: domain.RoleUser, Content: "abcdefgh"}} // 8 chars
	_, tokens, err := p.ChatCompletion(context.Background(), messages, 0.7, 0)
	if err != nil {
		t.Fatal(err)
	}
	// (8 request chars + 8 reply chars) / 4
	if tokens != 4 {
		t.Errorf("tokens = %d, want 4", tokens)
	}
}

func TestChatCompletion_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"code": 400, "message": "API key not valid", "status": "INVALID_ARGUMENT"}}`))
	}))
	defer server.Close()

	p, _ := New("bad-key", "", WithBaseURL(server.URL))
	_, _, err := p.ChatCompletion(context.Background(), []domain.Message{{Role: domain.RoleUser, Content: "hi"}}, 0.7, 0)

	var provErr *domain.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected *domain.ProviderError, got %v", err)
	}
	if provErr.Message != "API key not valid" {
		t.Errorf("Message = %q", provErr.Message)
	}
}
