// Package domain holds the canonical message and error types shared by
// the classifier, router, and provider clients.
package domain

import "strings"

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single chat message in OpenAI wire order.
// Content carries plain text; Parts carries multimodal content and
// takes precedence over Content when non-empty.
type Message struct {
	Role    Role          `json:"role"`
	Content string        `json:"content"`
	Parts   []ContentPart `json:"parts,omitempty"`
}

// Text returns the textual content of the message. For multimodal
// messages it concatenates every text-typed part, space separated.
func (m Message) Text() string {
	if len(m.Parts) == 0 {
		return m.Content
	}
	texts := make([]string, 0, len(m.Parts))
	for _, p := range m.Parts {
		if p.Type == ContentTypeText {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, " ")
}

// LastUserText returns the text of the most recent user message, or ""
// when the conversation contains none.
func LastUserText(messages []Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			return messages[i].Text()
		}
	}
	return ""
}

// Usage represents token usage reported by a provider.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
