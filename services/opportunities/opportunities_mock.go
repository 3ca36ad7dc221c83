package opportunities

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"crmbackend/models"
)

// MockOpportunitiesService is a mock implementation of services.OpportunitiesService
type MockOpportunitiesService struct {
	mock.Mock
}

func (m *MockOpportunitiesService) CreateOpportunity(
	ctx context.Context,
	workspaceID string,
	input models.OpportunityInput,
) (*models.Opportunity, error) {
	args := m.Called(ctx, workspaceID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Opportunity), args.Error(1)
}

func (m *MockOpportunitiesService) UpdateOpportunity(
	ctx context.Context,
	workspaceID, id string,
	patch map[string]any,
) (*models.Opportunity, error) {
	args := m.Called(ctx, workspaceID, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Opportunity), args.Error(1)
}

func (m *MockOpportunitiesService) MoveOpportunity(
	ctx context.Context,
	workspaceID, id, pipelineID, stageID string,
) (*models.Opportunity, error) {
	args := m.Called(ctx, workspaceID, id, pipelineID, stageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Opportunity), args.Error(1)
}

func (m *MockOpportunitiesService) DeleteOpportunity(ctx context.Context, workspaceID, id string) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

func (m *MockOpportunitiesService) GetOpportunityByID(
	ctx context.Context,
	workspaceID, id string,
) (mo.Option[*models.Opportunity], error) {
	args := m.Called(ctx, workspaceID, id)
	return args.Get(0).(mo.Option[*models.Opportunity]), args.Error(1)
}

func (m *MockOpportunitiesService) ListOpportunities(
	ctx context.Context,
	workspaceID string,
) ([]*models.Opportunity, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Opportunity), args.Error(1)
}
