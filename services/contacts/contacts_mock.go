package contacts

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"crmbackend/models"
)

// MockContactsService is a mock implementation of services.ContactsService
type MockContactsService struct {
	mock.Mock
}

func (m *MockContactsService) CreateContact(
	ctx context.Context,
	workspaceID string,
	input models.ContactInput,
) (*models.Contact, error) {
	args := m.Called(ctx, workspaceID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockContactsService) UpdateContact(
	ctx context.Context,
	workspaceID, id string,
	patch map[string]any,
) (*models.Contact, error) {
	args := m.Called(ctx, workspaceID, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockContactsService) DeleteContact(ctx context.Context, workspaceID, id string) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

func (m *MockContactsService) GetContactByID(
	ctx context.Context,
	workspaceID, id string,
) (mo.Option[*models.Contact], error) {
	args := m.Called(ctx, workspaceID, id)
	return args.Get(0).(mo.Option[*models.Contact]), args.Error(1)
}

func (m *MockContactsService) ListContacts(ctx context.Context, workspaceID string) ([]*models.Contact, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Contact), args.Error(1)
}
