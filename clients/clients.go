package clients

import (
	"context"
)

// ChatMessage is one turn in an assistant conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// AssistantClient generates the assistant's reply for a conversation. The
// reply may embed a fenced action block which the actions pipeline extracts
// and executes.
type AssistantClient interface {
	GenerateReply(ctx context.Context, systemPrompt string, messages []ChatMessage) (string, error)
}
