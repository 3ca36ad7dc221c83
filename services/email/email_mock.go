package email

import (
	"context"

	"github.com/stretchr/testify/mock"

	"crmbackend/models"
)

// MockEmailService is a mock implementation of services.EmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendEmail(
	ctx context.Context,
	workspaceID, to, subject, body string,
) (*models.EmailMessage, error) {
	args := m.Called(ctx, workspaceID, to, subject, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmailMessage), args.Error(1)
}
