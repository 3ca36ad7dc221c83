package actions

import (
	"context"
	"fmt"
	"log"
	"strings"

	"crmbackend/core"
	"crmbackend/models"
)

// resolvePipeline turns a pipeline name or ID into a canonical pipeline ID.
// Inputs that already have the canonical ID shape are accepted directly;
// anything else is matched against the workspace's live pipeline list. The
// list is re-fetched on every call so a renamed or deleted pipeline is
// observed on the next resolution.
func (s *ActionsService) resolvePipeline(
	ctx context.Context,
	workspaceID, pipelineIDOrName string,
) (string, error) {
	if core.IsValidEntityID(pipelineIDOrName) {
		return pipelineIDOrName, nil
	}

	pipelines, err := s.pipelinesService.ListPipelines(ctx, workspaceID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch pipelines: %w", err)
	}

	pipeline := matchPipeline(pipelines, pipelineIDOrName)
	if pipeline == nil {
		return "", fmt.Errorf("pipeline %q not found. Available pipelines: %s",
			pipelineIDOrName, joinPipelineNames(pipelines))
	}

	return pipeline.ID, nil
}

// resolvePipelineAndStage resolves a pipeline reference and a stage reference
// within it. Both inputs must have the canonical ID shape for the lookup to
// be skipped - one being an ID does not imply the other is too.
//
// A stage name that matches nothing falls back to the pipeline's first stage
// when the pipeline has at least one stage. That substitution is a deliberate
// best-effort default for a conversational interface and is reported in the
// log rather than as an error.
func (s *ActionsService) resolvePipelineAndStage(
	ctx context.Context,
	workspaceID, pipelineIDOrName, stageIDOrName string,
) (pipelineID string, stageID string, err error) {
	if core.IsValidEntityID(pipelineIDOrName) && core.IsValidEntityID(stageIDOrName) {
		return pipelineIDOrName, stageIDOrName, nil
	}

	pipelines, err := s.pipelinesService.ListPipelines(ctx, workspaceID)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch pipelines: %w", err)
	}

	var pipeline *models.Pipeline
	if core.IsValidEntityID(pipelineIDOrName) {
		for _, candidate := range pipelines {
			if candidate.ID == pipelineIDOrName {
				pipeline = candidate
				break
			}
		}
	} else {
		pipeline = matchPipeline(pipelines, pipelineIDOrName)
	}
	if pipeline == nil {
		return "", "", fmt.Errorf("pipeline %q not found. Available pipelines: %s",
			pipelineIDOrName, joinPipelineNames(pipelines))
	}

	if len(pipeline.Stages) == 0 {
		return "", "", fmt.Errorf("pipeline %q has no stages", pipeline.Name)
	}

	if core.IsValidEntityID(stageIDOrName) {
		return pipeline.ID, stageIDOrName, nil
	}

	stage := matchStage(pipeline.Stages, stageIDOrName)
	if stage == nil {
		fallback := pipeline.Stages[0]
		log.Printf("⚠️ Stage %q not found in pipeline %q - defaulting to first stage %q",
			stageIDOrName, pipeline.Name, fallback.Name)
		return pipeline.ID, fallback.ID, nil
	}

	return pipeline.ID, stage.ID, nil
}

// matchPipeline applies case-insensitive exact matching first, then falls
// back to substring matching in either direction
func matchPipeline(pipelines []*models.Pipeline, query string) *models.Pipeline {
	for _, pipeline := range pipelines {
		if strings.EqualFold(pipeline.Name, query) {
			return pipeline
		}
	}

	queryLower := strings.ToLower(query)
	for _, pipeline := range pipelines {
		nameLower := strings.ToLower(pipeline.Name)
		if strings.Contains(nameLower, queryLower) || strings.Contains(queryLower, nameLower) {
			return pipeline
		}
	}

	return nil
}

// matchStage applies the same exact-then-substring matching to stage names
func matchStage(stages []models.Stage, query string) *models.Stage {
	for i := range stages {
		if strings.EqualFold(stages[i].Name, query) {
			return &stages[i]
		}
	}

	queryLower := strings.ToLower(query)
	for i := range stages {
		nameLower := strings.ToLower(stages[i].Name)
		if strings.Contains(nameLower, queryLower) || strings.Contains(queryLower, nameLower) {
			return &stages[i]
		}
	}

	return nil
}

func joinPipelineNames(pipelines []*models.Pipeline) string {
	if len(pipelines) == 0 {
		return "(none)"
	}
	names := make([]string, 0, len(pipelines))
	for _, pipeline := range pipelines {
		names = append(names, pipeline.Name)
	}
	return strings.Join(names, ", ")
}
