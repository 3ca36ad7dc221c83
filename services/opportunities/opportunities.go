package opportunities

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

type OpportunitiesService struct {
	opportunitiesRepo *db.PostgresOpportunitiesRepository
}

func NewOpportunitiesService(repo *db.PostgresOpportunitiesRepository) *OpportunitiesService {
	return &OpportunitiesService{opportunitiesRepo: repo}
}

func (s *OpportunitiesService) CreateOpportunity(
	ctx context.Context,
	workspaceID string,
	input models.OpportunityInput,
) (*models.Opportunity, error) {
	log.Printf("📋 Starting to create opportunity: %s", input.Title)
	if workspaceID == "" {
		return nil, fmt.Errorf("workspace_id cannot be empty")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("opportunity title cannot be empty")
	}
	if !core.IsValidEntityID(input.PipelineID) {
		return nil, fmt.Errorf("pipeline id must be a valid entity ID")
	}
	if !core.IsValidEntityID(input.StageID) {
		return nil, fmt.Errorf("stage id must be a valid entity ID")
	}

	opportunity, err := s.opportunitiesRepo.CreateOpportunity(ctx, workspaceID, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create opportunity: %w", err)
	}

	log.Printf("📋 Completed successfully - created opportunity with ID: %s", opportunity.ID)
	return opportunity, nil
}

func (s *OpportunitiesService) UpdateOpportunity(
	ctx context.Context,
	workspaceID, id string,
	patch map[string]any,
) (*models.Opportunity, error) {
	log.Printf("📋 Starting to update opportunity with ID: %s", id)
	if workspaceID == "" {
		return nil, fmt.Errorf("workspace_id cannot be empty")
	}
	if !core.IsValidEntityID(id) {
		return nil, fmt.Errorf("opportunity id must be a valid entity ID")
	}
	if len(patch) == 0 {
		return nil, fmt.Errorf("patch cannot be empty")
	}

	opportunity, err := s.opportunitiesRepo.UpdateOpportunity(ctx, workspaceID, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update opportunity: %w", err)
	}

	log.Printf("📋 Completed successfully - updated opportunity with ID: %s", opportunity.ID)
	return opportunity, nil
}

func (s *OpportunitiesService) MoveOpportunity(
	ctx context.Context,
	workspaceID, id, pipelineID, stageID string,
) (*models.Opportunity, error) {
	log.Printf("📋 Starting to move opportunity %s to stage: %s", id, stageID)
	if workspaceID == "" {
		return nil, fmt.Errorf("workspace_id cannot be empty")
	}
	if !core.IsValidEntityID(id) {
		return nil, fmt.Errorf("opportunity id must be a valid entity ID")
	}
	if !core.IsValidEntityID(stageID) {
		return nil, fmt.Errorf("stage id must be a valid entity ID")
	}

	patch := map[string]any{"stageId": stageID}
	if pipelineID != "" {
		if !core.IsValidEntityID(pipelineID) {
			return nil, fmt.Errorf("pipeline id must be a valid entity ID")
		}
		patch["pipelineId"] = pipelineID
	}

	opportunity, err := s.opportunitiesRepo.UpdateOpportunity(ctx, workspaceID, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to move opportunity: %w", err)
	}

	log.Printf("📋 Completed successfully - moved opportunity %s to stage: %s", id, stageID)
	return opportunity, nil
}

func (s *OpportunitiesService) DeleteOpportunity(ctx context.Context, workspaceID, id string) error {
	log.Printf("📋 Starting to delete opportunity with ID: %s", id)
	if workspaceID == "" {
		return fmt.Errorf("workspace_id cannot be empty")
	}
	if !core.IsValidEntityID(id) {
		return fmt.Errorf("opportunity id must be a valid entity ID")
	}

	if err := s.opportunitiesRepo.DeleteOpportunity(ctx, workspaceID, id); err != nil {
		return fmt.Errorf("failed to delete opportunity: %w", err)
	}

	log.Printf("📋 Completed successfully - deleted opportunity with ID: %s", id)
	return nil
}

func (s *OpportunitiesService) GetOpportunityByID(
	ctx context.Context,
	workspaceID, id string,
) (mo.Option[*models.Opportunity], error) {
	log.Printf("📋 Starting to get opportunity by ID: %s", id)
	if workspaceID == "" {
		return mo.None[*models.Opportunity](), fmt.Errorf("workspace_id cannot be empty")
	}
	if !core.IsValidEntityID(id) {
		return mo.None[*models.Opportunity](), fmt.Errorf("opportunity id must be a valid entity ID")
	}

	opportunity, err := s.opportunitiesRepo.GetOpportunityByID(ctx, workspaceID, id)
	if err != nil {
		return mo.None[*models.Opportunity](), fmt.Errorf("failed to get opportunity: %w", err)
	}
	if opportunity == nil {
		log.Printf("📋 Completed successfully - opportunity not found: %s", id)
		return mo.None[*models.Opportunity](), nil
	}

	log.Printf("📋 Completed successfully - retrieved opportunity with ID: %s", opportunity.ID)
	return mo.Some(opportunity), nil
}

func (s *OpportunitiesService) ListOpportunities(
	ctx context.Context,
	workspaceID string,
) ([]*models.Opportunity, error) {
	log.Printf("📋 Starting to list opportunities for workspace: %s", workspaceID)
	if workspaceID == "" {
		return nil, fmt.Errorf("workspace_id cannot be empty")
	}

	opportunities, err := s.opportunitiesRepo.ListOpportunities(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}

	log.Printf("📋 Completed successfully - listed %d opportunities", len(opportunities))
	return opportunities, nil
}
