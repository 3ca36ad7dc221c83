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

type PostgresOpportunitiesRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for opportunities table
var opportunitiesColumns = []string{
	"id",
	"workspace_id",
	"title",
	"value",
	"pipeline_id",
	"stage_id",
	"contact_id",
	"company_id",
	"status",
	"created_at",
	"updated_at",
}

// Parameter keys the update patch is allowed to touch, mapped to columns
var opportunitiesPatchColumns = map[string]string{
	"title":      "title",
	"value":      "value",
	"pipelineId": "pipeline_id",
	"stageId":    "stage_id",
	"contactId":  "contact_id",
	"companyId":  "company_id",
	"status":     "status",
}

func NewPostgresOpportunitiesRepository(db *sqlx.DB, schema string) *PostgresOpportunitiesRepository {
	return &PostgresOpportunitiesRepository{db: db, schema: schema}
}

func (r *PostgresOpportunitiesRepository) CreateOpportunity(
	ctx context.Context,
	workspaceID string,
	input models.OpportunityInput,
) (*models.Opportunity, error) {
	opportunityID := core.NewEntityID()

	columnsStr := strings.Join(opportunitiesColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.opportunities (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'open', NOW(), NOW())
		RETURNING %s`, r.schema, columnsStr, columnsStr)

	opportunity := &models.Opportunity{}
	err := r.db.QueryRowxContext(ctx, query,
		opportunityID, workspaceID, input.Title, input.Value,
		input.PipelineID, input.StageID, input.ContactID, input.CompanyID,
	).StructScan(opportunity)
	if err != nil {
		return nil, fmt.Errorf("failed to create opportunity: %w", err)
	}

	return opportunity, nil
}

func (r *PostgresOpportunitiesRepository) UpdateOpportunity(
	ctx context.Context,
	workspaceID, id string,
	patch map[string]any,
) (*models.Opportunity, error) {
	setClauses, args := buildPatchClauses(opportunitiesPatchColumns, patch, 3)
	if len(setClauses) == 0 {
		return nil, fmt.Errorf("no updatable fields in patch")
	}

	returningStr := strings.Join(opportunitiesColumns, ", ")

	query := fmt.Sprintf(`
		UPDATE %s.opportunities
		SET %s, updated_at = NOW()
		WHERE workspace_id = $1 AND id = $2
		RETURNING %s`, r.schema, strings.Join(setClauses, ", "), returningStr)

	allArgs := append([]any{workspaceID, id}, args...)

	opportunity := &models.Opportunity{}
	err := r.db.QueryRowxContext(ctx, query, allArgs...).StructScan(opportunity)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return nil, fmt.Errorf("opportunity %s: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update opportunity: %w", err)
	}

	return opportunity, nil
}

func (r *PostgresOpportunitiesRepository) DeleteOpportunity(ctx context.Context, workspaceID, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s.opportunities WHERE workspace_id = $1 AND id = $2`, r.schema)

	result, err := r.db.ExecContext(ctx, query, workspaceID, id)
	if err != nil {
		return fmt.Errorf("failed to delete opportunity: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("opportunity %s: %w", id, core.ErrNotFound)
	}

	return nil
}

func (r *PostgresOpportunitiesRepository) GetOpportunityByID(
	ctx context.Context,
	workspaceID, id string,
) (*models.Opportunity, error) {
	returningStr := strings.Join(opportunitiesColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.opportunities
		WHERE workspace_id = $1 AND id = $2`, returningStr, r.schema)

	opportunity := &models.Opportunity{}
	err := r.db.QueryRowxContext(ctx, query, workspaceID, id).StructScan(opportunity)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return nil, nil // Opportunity not found
		}
		return nil, fmt.Errorf("failed to get opportunity by id: %w", err)
	}

	return opportunity, nil
}

func (r *PostgresOpportunitiesRepository) ListOpportunities(
	ctx context.Context,
	workspaceID string,
) ([]*models.Opportunity, error) {
	returningStr := strings.Join(opportunitiesColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.opportunities
		WHERE workspace_id = $1
		ORDER BY created_at ASC`, returningStr, r.schema)

	opportunities := []*models.Opportunity{}
	if err := r.db.SelectContext(ctx, &opportunities, query, workspaceID); err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}

	return opportunities, nil
}
