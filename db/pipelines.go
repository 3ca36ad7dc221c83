package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	// necessary import to wire up the postgres driver
	_ "github.com/lib/pq"

	"crmbackend/core"
	"crmbackend/models"
)

type PostgresPipelinesRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for pipelines table
var pipelinesColumns = []string{
	"id",
	"workspace_id",
	"name",
	"is_default",
	"created_at",
	"updated_at",
}

// Column names for pipeline_stages table
var stagesColumns = []string{
	"id",
	"pipeline_id",
	"name",
	"color",
	"position",
}

// Parameter keys the pipeline patch is allowed to touch, mapped to columns
var pipelinesPatchColumns = map[string]string{
	"name": "name",
}

// Parameter keys the stage patch is allowed to touch, mapped to columns
var stagesPatchColumns = map[string]string{
	"stageName":  "name",
	"stageColor": "color",
}

func NewPostgresPipelinesRepository(db *sqlx.DB, schema string) *PostgresPipelinesRepository {
	return &PostgresPipelinesRepository{db: db, schema: schema}
}

func (r *PostgresPipelinesRepository) CreatePipeline(
	ctx context.Context,
	workspaceID, name string,
	stages []models.StageDefinition,
) (*models.Pipeline, error) {
	pipelineID := core.NewEntityID()

	columnsStr := strings.Join(pipelinesColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.pipelines (%s)
		VALUES ($1, $2, $3, FALSE, NOW(), NOW())
		RETURNING %s`, r.schema, columnsStr, columnsStr)

	pipeline := &models.Pipeline{}
	err := r.db.QueryRowxContext(ctx, query, pipelineID, workspaceID, name).StructScan(pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	for position, def := range stages {
		stage, err := r.insertStage(ctx, pipelineID, def, position)
		if err != nil {
			return nil, err
		}
		pipeline.Stages = append(pipeline.Stages, *stage)
	}

	return pipeline, nil
}

func (r *PostgresPipelinesRepository) UpdatePipeline(
	ctx context.Context,
	workspaceID, id string,
	patch map[string]any,
) (*models.Pipeline, error) {
	setClauses, args := buildPatchClauses(pipelinesPatchColumns, patch, 3)
	if len(setClauses) == 0 {
		return nil, fmt.Errorf("no updatable fields in patch")
	}

	returningStr := strings.Join(pipelinesColumns, ", ")

	query := fmt.Sprintf(`
		UPDATE %s.pipelines
		SET %s, updated_at = NOW()
		WHERE workspace_id = $1 AND id = $2
		RETURNING %s`, r.schema, strings.Join(setClauses, ", "), returningStr)

	allArgs := append([]any{workspaceID, id}, args...)

	pipeline := &models.Pipeline{}
	err := r.db.QueryRowxContext(ctx, query, allArgs...).StructScan(pipeline)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return nil, fmt.Errorf("pipeline %s: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update pipeline: %w", err)
	}

	if err := r.attachStages(ctx, pipeline); err != nil {
		return nil, err
	}

	return pipeline, nil
}

func (r *PostgresPipelinesRepository) DeletePipeline(ctx context.Context, workspaceID, id string) error {
	// Stages go first; the stages table references the pipeline
	stagesQuery := fmt.Sprintf(`
		DELETE FROM %s.pipeline_stages
		WHERE pipeline_id IN (
			SELECT id FROM %s.pipelines WHERE workspace_id = $1 AND id = $2
		)`, r.schema, r.schema)
	if _, err := r.db.ExecContext(ctx, stagesQuery, workspaceID, id); err != nil {
		return fmt.Errorf("failed to delete pipeline stages: %w", err)
	}

	query := fmt.Sprintf(`DELETE FROM %s.pipelines WHERE workspace_id = $1 AND id = $2`, r.schema)

	result, err := r.db.ExecContext(ctx, query, workspaceID, id)
	if err != nil {
		return fmt.Errorf("failed to delete pipeline: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("pipeline %s: %w", id, core.ErrNotFound)
	}

	return nil
}

func (r *PostgresPipelinesRepository) GetPipelineByID(
	ctx context.Context,
	workspaceID, id string,
) (*models.Pipeline, error) {
	returningStr := strings.Join(pipelinesColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.pipelines
		WHERE workspace_id = $1 AND id = $2`, returningStr, r.schema)

	pipeline := &models.Pipeline{}
	err := r.db.QueryRowxContext(ctx, query, workspaceID, id).StructScan(pipeline)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return nil, nil // Pipeline not found
		}
		return nil, fmt.Errorf("failed to get pipeline by id: %w", err)
	}

	if err := r.attachStages(ctx, pipeline); err != nil {
		return nil, err
	}

	return pipeline, nil
}

func (r *PostgresPipelinesRepository) ListPipelines(
	ctx context.Context,
	workspaceID string,
) ([]*models.Pipeline, error) {
	returningStr := strings.Join(pipelinesColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.pipelines
		WHERE workspace_id = $1
		ORDER BY created_at ASC`, returningStr, r.schema)

	pipelines := []*models.Pipeline{}
	if err := r.db.SelectContext(ctx, &pipelines, query, workspaceID); err != nil {
		return nil, fmt.Errorf("failed to list pipelines: %w", err)
	}

	for _, pipeline := range pipelines {
		if err := r.attachStages(ctx, pipeline); err != nil {
			return nil, err
		}
	}

	return pipelines, nil
}

func (r *PostgresPipelinesRepository) SetDefaultPipeline(ctx context.Context, workspaceID, id string) error {
	clearQuery := fmt.Sprintf(`
		UPDATE %s.pipelines SET is_default = FALSE, updated_at = NOW()
		WHERE workspace_id = $1`, r.schema)
	if _, err := r.db.ExecContext(ctx, clearQuery, workspaceID); err != nil {
		return fmt.Errorf("failed to clear default pipeline: %w", err)
	}

	setQuery := fmt.Sprintf(`
		UPDATE %s.pipelines SET is_default = TRUE, updated_at = NOW()
		WHERE workspace_id = $1 AND id = $2`, r.schema)

	result, err := r.db.ExecContext(ctx, setQuery, workspaceID, id)
	if err != nil {
		return fmt.Errorf("failed to set default pipeline: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("pipeline %s: %w", id, core.ErrNotFound)
	}

	return nil
}

func (r *PostgresPipelinesRepository) AddStage(
	ctx context.Context,
	workspaceID, pipelineID string,
	def models.StageDefinition,
) (*models.Stage, error) {
	pipeline, err := r.GetPipelineByID(ctx, workspaceID, pipelineID)
	if err != nil {
		return nil, err
	}
	if pipeline == nil {
		return nil, fmt.Errorf("pipeline %s: %w", pipelineID, core.ErrNotFound)
	}

	return r.insertStage(ctx, pipelineID, def, len(pipeline.Stages))
}

func (r *PostgresPipelinesRepository) UpdateStage(
	ctx context.Context,
	workspaceID, pipelineID, stageID string,
	patch map[string]any,
) (*models.Stage, error) {
	setClauses, args := buildPatchClauses(stagesPatchColumns, patch, 3)
	if len(setClauses) == 0 {
		return nil, fmt.Errorf("no updatable fields in patch")
	}

	returningStr := strings.Join(stagesColumns, ", ")

	query := fmt.Sprintf(`
		UPDATE %s.pipeline_stages
		SET %s
		WHERE pipeline_id = $1 AND id = $2
		RETURNING %s`, r.schema, strings.Join(setClauses, ", "), returningStr)

	allArgs := append([]any{pipelineID, stageID}, args...)

	stage := &models.Stage{}
	err := r.db.QueryRowxContext(ctx, query, allArgs...).StructScan(stage)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return nil, fmt.Errorf("stage %s: %w", stageID, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update stage: %w", err)
	}

	return stage, nil
}

func (r *PostgresPipelinesRepository) DeleteStage(
	ctx context.Context,
	workspaceID, pipelineID, stageID string,
) error {
	query := fmt.Sprintf(`
		DELETE FROM %s.pipeline_stages
		WHERE pipeline_id = $1 AND id = $2`, r.schema)

	result, err := r.db.ExecContext(ctx, query, pipelineID, stageID)
	if err != nil {
		return fmt.Errorf("failed to delete stage: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("stage %s: %w", stageID, core.ErrNotFound)
	}

	return nil
}

func (r *PostgresPipelinesRepository) ReorderStages(
	ctx context.Context,
	workspaceID, pipelineID string,
	stageIDs []string,
) error {
	query := fmt.Sprintf(`
		UPDATE %s.pipeline_stages
		SET position = $3
		WHERE pipeline_id = $1 AND id = $2`, r.schema)

	for position, stageID := range stageIDs {
		result, err := r.db.ExecContext(ctx, query, pipelineID, stageID, position)
		if err != nil {
			return fmt.Errorf("failed to reorder stage %s: %w", stageID, err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if rowsAffected == 0 {
			return fmt.Errorf("stage %s: %w", stageID, core.ErrNotFound)
		}
	}

	return nil
}

func (r *PostgresPipelinesRepository) insertStage(
	ctx context.Context,
	pipelineID string,
	def models.StageDefinition,
	position int,
) (*models.Stage, error) {
	stageID := core.NewEntityID()

	columnsStr := strings.Join(stagesColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.pipeline_stages (%s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, r.schema, columnsStr, columnsStr)

	stage := &models.Stage{}
	err := r.db.QueryRowxContext(ctx, query, stageID, pipelineID, def.Name, def.Color, position).StructScan(stage)
	if err != nil {
		return nil, fmt.Errorf("failed to create stage: %w", err)
	}

	return stage, nil
}

func (r *PostgresPipelinesRepository) attachStages(ctx context.Context, pipeline *models.Pipeline) error {
	returningStr := strings.Join(stagesColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.pipeline_stages
		WHERE pipeline_id = $1
		ORDER BY position ASC`, returningStr, r.schema)

	stages := []models.Stage{}
	if err := r.db.SelectContext(ctx, &stages, query, pipeline.ID); err != nil {
		return fmt.Errorf("failed to list stages for pipeline %s: %w", pipeline.ID, err)
	}

	pipeline.Stages = stages
	return nil
}
