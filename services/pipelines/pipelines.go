package pipelines

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/samber/mo"

	"crmbackend/core"
	"crmbackend/db"
	"crmbackend/models"
)

type PipelinesService struct {
	pipelinesRepo *db.PostgresPipelinesRepository
}

func NewPipelinesService(repo *db.PostgresPipelinesRepository) *PipelinesService {
	return &PipelinesService{pipelinesRepo: repo}
}

func (s *PipelinesService) CreatePipeline(
	ctx context.Context,
	workspaceID, name string,
	stages []models.StageDefinition,
) (*models.Pipeline, error) {
	log.Printf("📋 Starting to create pipeline: %s with %d stages", name, len(stages))
	if workspaceID == "" {
		return nil, fmt.Errorf("workspace_id cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("pipeline name cannot be empty")
	}
	if len(stages) == 0 {
		return nil, fmt.Errorf("pipeline must have at least one stage")
	}

	pipeline, err := s.pipelinesRepo.CreatePipeline(ctx, workspaceID, name, stages)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	log.Printf("📋 Completed successfully - created pipeline with ID: %s", pipeline.ID)
	return pipeline, nil
}

func (s *PipelinesService) UpdatePipeline(
	ctx context.Context,
	workspaceID, id string,
	patch map[string]any,
) (*models.Pipeline, error) {
	log.Printf("📋 Starting to update pipeline with ID: %s", id)
	if workspaceID == "" {
		return nil, fmt.Errorf("workspace_id cannot be empty")
	}
	if !core.IsValidEntityID(id) {
		return nil, fmt.Errorf("pipeline id must be a valid entity ID")
	}
	if len(patch) == 0 {
		return nil, fmt.Errorf("patch cannot be empty")
	}

	pipeline, err := s.pipelinesRepo.UpdatePipeline(ctx, workspaceID, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update pipeline: %w", err)
	}

	log.Printf("📋 Completed successfully - updated pipeline with ID: %s", pipeline.ID)
	return pipeline, nil
}

func (s *PipelinesService) DeletePipeline(ctx context.Context, workspaceID, id string) error {
	log.Printf("📋 Starting to delete pipeline with ID: %s", id)
	if workspaceID == "" {
		return fmt.Errorf("workspace_id cannot be empty")
	}
	if !core.IsValidEntityID(id) {
		return fmt.Errorf("pipeline id must be a valid entity ID")
	}

	if err := s.pipelinesRepo.DeletePipeline(ctx, workspaceID, id); err != nil {
		return fmt.Errorf("failed to delete pipeline: %w", err)
	}

	log.Printf("📋 Completed successfully - deleted pipeline with ID: %s", id)
	return nil
}

func (s *PipelinesService) GetPipelineByID(
	ctx context.Context,
	workspaceID, id string,
) (mo.Option[*models.Pipeline], error) {
	log.Printf("📋 Starting to get pipeline by ID: %s", id)
	if workspaceID == "" {
		return mo.None[*models.Pipeline](), fmt.Errorf("workspace_id cannot be empty")
	}
	if !core.IsValidEntityID(id) {
		return mo.None[*models.Pipeline](), fmt.Errorf("pipeline id must be a valid entity ID")
	}

	pipeline, err := s.pipelinesRepo.GetPipelineByID(ctx, workspaceID, id)
	if err != nil {
		return mo.None[*models.Pipeline](), fmt.Errorf("failed to get pipeline: %w", err)
	}
	if pipeline == nil {
		log.Printf("📋 Completed successfully - pipeline not found: %s", id)
		return mo.None[*models.Pipeline](), nil
	}

	log.Printf("📋 Completed successfully - retrieved pipeline with ID: %s", pipeline.ID)
	return mo.Some(pipeline), nil
}

func (s *PipelinesService) ListPipelines(ctx context.Context, workspaceID string) ([]*models.Pipeline, error) {
	log.Printf("📋 Starting to list pipelines for workspace: %s", workspaceID)
	if workspaceID == "" {
		return nil, fmt.Errorf("workspace_id cannot be empty")
	}

	pipelines, err := s.pipelinesRepo.ListPipelines(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pipelines: %w", err)
	}

	log.Printf("📋 Completed successfully - listed %d pipelines", len(pipelines))
	return pipelines, nil
}

func (s *PipelinesService) SetDefaultPipeline(ctx context.Context, workspaceID, id string) error {
	log.Printf("📋 Starting to set default pipeline: %s", id)
	if workspaceID == "" {
		return fmt.Errorf("workspace_id cannot be empty")
	}
	if !core.IsValidEntityID(id) {
		return fmt.Errorf("pipeline id must be a valid entity ID")
	}

	if err := s.pipelinesRepo.SetDefaultPipeline(ctx, workspaceID, id); err != nil {
		return fmt.Errorf("failed to set default pipeline: %w", err)
	}

	log.Printf("📋 Completed successfully - set default pipeline: %s", id)
	return nil
}

func (s *PipelinesService) AddStage(
	ctx context.Context,
	workspaceID, pipelineID string,
	def models.StageDefinition,
) (*models.Stage, error) {
	log.Printf("📋 Starting to add stage %q to pipeline: %s", def.Name, pipelineID)
	if workspaceID == "" {
		return nil, fmt.Errorf("workspace_id cannot be empty")
	}
	if !core.IsValidEntityID(pipelineID) {
		return nil, fmt.Errorf("pipeline id must be a valid entity ID")
	}
	if strings.TrimSpace(def.Name) == "" {
		return nil, fmt.Errorf("stage name cannot be empty")
	}

	stage, err := s.pipelinesRepo.AddStage(ctx, workspaceID, pipelineID, def)
	if err != nil {
		return nil, fmt.Errorf("failed to add stage: %w", err)
	}

	log.Printf("📋 Completed successfully - added stage with ID: %s", stage.ID)
	return stage, nil
}

func (s *PipelinesService) UpdateStage(
	ctx context.Context,
	workspaceID, pipelineID, stageID string,
	patch map[string]any,
) (*models.Stage, error) {
	log.Printf("📋 Starting to update stage %s in pipeline: %s", stageID, pipelineID)
	if workspaceID == "" {
		return nil, fmt.Errorf("workspace_id cannot be empty")
	}
	if !core.IsValidEntityID(pipelineID) {
		return nil, fmt.Errorf("pipeline id must be a valid entity ID")
	}
	if !core.IsValidEntityID(stageID) {
		return nil, fmt.Errorf("stage id must be a valid entity ID")
	}
	if len(patch) == 0 {
		return nil, fmt.Errorf("patch cannot be empty")
	}

	stage, err := s.pipelinesRepo.UpdateStage(ctx, workspaceID, pipelineID, stageID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update stage: %w", err)
	}

	log.Printf("📋 Completed successfully - updated stage with ID: %s", stage.ID)
	return stage, nil
}

func (s *PipelinesService) DeleteStage(ctx context.Context, workspaceID, pipelineID, stageID string) error {
	log.Printf("📋 Starting to delete stage %s from pipeline: %s", stageID, pipelineID)
	if workspaceID == "" {
		return fmt.Errorf("workspace_id cannot be empty")
	}
	if !core.IsValidEntityID(pipelineID) {
		return fmt.Errorf("pipeline id must be a valid entity ID")
	}
	if !core.IsValidEntityID(stageID) {
		return fmt.Errorf("stage id must be a valid entity ID")
	}

	if err := s.pipelinesRepo.DeleteStage(ctx, workspaceID, pipelineID, stageID); err != nil {
		return fmt.Errorf("failed to delete stage: %w", err)
	}

	log.Printf("📋 Completed successfully - deleted stage with ID: %s", stageID)
	return nil
}

func (s *PipelinesService) ReorderStages(
	ctx context.Context,
	workspaceID, pipelineID string,
	stageIDs []string,
) error {
	log.Printf("📋 Starting to reorder %d stages in pipeline: %s", len(stageIDs), pipelineID)
	if workspaceID == "" {
		return fmt.Errorf("workspace_id cannot be empty")
	}
	if !core.IsValidEntityID(pipelineID) {
		return fmt.Errorf("pipeline id must be a valid entity ID")
	}
	if len(stageIDs) == 0 {
		return fmt.Errorf("stage ids cannot be empty")
	}

	if err := s.pipelinesRepo.ReorderStages(ctx, workspaceID, pipelineID, stageIDs); err != nil {
		return fmt.Errorf("failed to reorder stages: %w", err)
	}

	log.Printf("📋 Completed successfully - reordered stages in pipeline: %s", pipelineID)
	return nil
}
