package companies

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"crmbackend/models"
)

// MockCompaniesService is a mock implementation of services.CompaniesService
type MockCompaniesService struct {
	mock.Mock
}

func (m *MockCompaniesService) CreateCompany(
	ctx context.Context,
	workspaceID string,
	input models.CompanyInput,
) (*models.Company, error) {
	args := m.Called(ctx, workspaceID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompaniesService) UpdateCompany(
	ctx context.Context,
	workspaceID, id string,
	patch map[string]any,
) (*models.Company, error) {
	args := m.Called(ctx, workspaceID, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompaniesService) DeleteCompany(ctx context.Context, workspaceID, id string) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

func (m *MockCompaniesService) GetCompanyByID(
	ctx context.Context,
	workspaceID, id string,
) (mo.Option[*models.Company], error) {
	args := m.Called(ctx, workspaceID, id)
	return args.Get(0).(mo.Option[*models.Company]), args.Error(1)
}

func (m *MockCompaniesService) ListCompanies(ctx context.Context, workspaceID string) ([]*models.Company, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Company), args.Error(1)
}
