package pipelines

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"crmbackend/models"
)

// MockPipelinesService is a mock implementation of services.PipelinesService
type MockPipelinesService struct {
	mock.Mock
}

func (m *MockPipelinesService) CreatePipeline(
	ctx context.Context,
	workspaceID, name string,
	stages []models.StageDefinition,
) (*models.Pipeline, error) {
	args := m.Called(ctx, workspaceID, name, stages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pipeline), args.Error(1)
}

func (m *MockPipelinesService) UpdatePipeline(
	ctx context.Context,
	workspaceID, id string,
	patch map[string]any,
) (*models.Pipeline, error) {
	args := m.Called(ctx, workspaceID, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pipeline), args.Error(1)
}

func (m *MockPipelinesService) DeletePipeline(ctx context.Context, workspaceID, id string) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

func (m *MockPipelinesService) GetPipelineByID(
	ctx context.Context,
	workspaceID, id string,
) (mo.Option[*models.Pipeline], error) {
	args := m.Called(ctx, workspaceID, id)
	return args.Get(0).(mo.Option[*models.Pipeline]), args.Error(1)
}

func (m *MockPipelinesService) ListPipelines(ctx context.Context, workspaceID string) ([]*models.Pipeline, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Pipeline), args.Error(1)
}

func (m *MockPipelinesService) SetDefaultPipeline(ctx context.Context, workspaceID, id string) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

func (m *MockPipelinesService) AddStage(
	ctx context.Context,
	workspaceID, pipelineID string,
	def models.StageDefinition,
) (*models.Stage, error) {
	args := m.Called(ctx, workspaceID, pipelineID, def)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stage), args.Error(1)
}

func (m *MockPipelinesService) UpdateStage(
	ctx context.Context,
	workspaceID, pipelineID, stageID string,
	patch map[string]any,
) (*models.Stage, error) {
	args := m.Called(ctx, workspaceID, pipelineID, stageID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stage), args.Error(1)
}

func (m *MockPipelinesService) DeleteStage(ctx context.Context, workspaceID, pipelineID, stageID string) error {
	args := m.Called(ctx, workspaceID, pipelineID, stageID)
	return args.Error(0)
}

func (m *MockPipelinesService) ReorderStages(
	ctx context.Context,
	workspaceID, pipelineID string,
	stageIDs []string,
) error {
	args := m.Called(ctx, workspaceID, pipelineID, stageIDs)
	return args.Error(0)
}
