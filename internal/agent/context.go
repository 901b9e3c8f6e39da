package agent

import (
	"github.com/google/uuid"

	"multi-llm-router/internal/domain"
)

// Context is the canonical per-request context every agent receives.
// A fresh Context is built for each inbound request and is treated as
// immutable once constructed.
type Context struct {
	// Messages is the conversation history, oldest first.
	Messages []domain.Message

	// RequestID uniquely identifies this request in logs and traces.
	RequestID string

	// TenantID identifies the tenant in multi-tenant deployments.
	TenantID string

	// UserID identifies the end user.
	UserID string

	// Channel is the communication channel (web, whatsapp, telegram).
	Channel string

	// Config carries agent-specific configuration options.
	Config map[string]any

	// Extra carries any additional context data.
	Extra map[string]any
}

// NewContext builds a request context for a conversation, assigning a
// fresh request id and the default "web" channel.
func NewContext(messages []domain.Message) Context {
	return Context{
		Messages:  messages,
		RequestID: uuid.NewString(),
		Channel:   "web",
	}
}

// LastUserMessage returns the text of the most recent user message, or
// "" when the conversation has none.
func (c Context) LastUserMessage() string {
	return domain.LastUserText(c.Messages)
}

// Len returns the number of messages in the conversation.
func (c Context) Len() int {
	return len(c.Messages)
}
