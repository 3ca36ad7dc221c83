package anthropic

import (
	"context"

	"github.com/stretchr/testify/mock"

	"crmbackend/clients"
)

// MockAssistantClient is a mock implementation of clients.AssistantClient
type MockAssistantClient struct {
	mock.Mock
}

// GenerateReply mocks the reply generation
func (m *MockAssistantClient) GenerateReply(
	ctx context.Context,
	systemPrompt string,
	messages []clients.ChatMessage,
) (string, error) {
	args := m.Called(ctx, systemPrompt, messages)
	return args.String(0), args.Error(1)
}

// NewMockAssistantClient creates a new mock client for testing
func NewMockAssistantClient() *MockAssistantClient {
	return &MockAssistantClient{}
}

// WithReply configures the mock to return a fixed reply on any conversation
func (m *MockAssistantClient) WithReply(reply string) *MockAssistantClient {
	m.On("GenerateReply", mock.Anything, mock.Anything, mock.Anything).Return(reply, nil)
	return m
}
