package generativeAI

import (
	"context"
	"errors"
)

// Message roles for chat-completion style backends.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one turn of a chat-completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ErrNotConfigured is returned by the factory when no LLM provider is set
// up. Callers treat it as "run without enrichment", not as a failure.
var ErrNotConfigured = errors.New("no LLM provider configured")

// Client is a chat-completion backend. Chat returns the raw model text;
// any network, quota or formatting failure surfaces as an error the
// caller must recover from.
type Client interface {
	Name() string
	Chat(ctx context.Context, messages []Message, temperature float32, forceJSON bool) (string, error)
}
