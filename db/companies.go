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

type PostgresCompaniesRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for companies table
var companiesColumns = []string{
	"id",
	"workspace_id",
	"name",
	"domain",
	"industry",
	"created_at",
	"updated_at",
}

// Parameter keys the update patch is allowed to touch, mapped to columns
var companiesPatchColumns = map[string]string{
	"name":     "name",
	"domain":   "domain",
	"industry": "industry",
}

func NewPostgresCompaniesRepository(db *sqlx.DB, schema string) *PostgresCompaniesRepository {
	return &PostgresCompaniesRepository{db: db, schema: schema}
}

func (r *PostgresCompaniesRepository) CreateCompany(
	ctx context.Context,
	workspaceID string,
	input models.CompanyInput,
) (*models.Company, error) {
	companyID := core.NewEntityID()

	columnsStr := strings.Join(companiesColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.companies (%s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s`, r.schema, columnsStr, columnsStr)

	company := &models.Company{}
	err := r.db.QueryRowxContext(ctx, query,
		companyID, workspaceID, input.Name, input.Domain, input.Industry,
	).StructScan(company)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return company, nil
}

func (r *PostgresCompaniesRepository) UpdateCompany(
	ctx context.Context,
	workspaceID, id string,
	patch map[string]any,
) (*models.Company, error) {
	setClauses, args := buildPatchClauses(companiesPatchColumns, patch, 3)
	if len(setClauses) == 0 {
		return nil, fmt.Errorf("no updatable fields in patch")
	}

	returningStr := strings.Join(companiesColumns, ", ")

	query := fmt.Sprintf(`
		UPDATE %s.companies
		SET %s, updated_at = NOW()
		WHERE workspace_id = $1 AND id = $2
		RETURNING %s`, r.schema, strings.Join(setClauses, ", "), returningStr)

	allArgs := append([]any{workspaceID, id}, args...)

	company := &models.Company{}
	err := r.db.QueryRowxContext(ctx, query, allArgs...).StructScan(company)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return nil, fmt.Errorf("company %s: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return company, nil
}

func (r *PostgresCompaniesRepository) DeleteCompany(ctx context.Context, workspaceID, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s.companies WHERE workspace_id = $1 AND id = $2`, r.schema)

	result, err := r.db.ExecContext(ctx, query, workspaceID, id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("company %s: %w", id, core.ErrNotFound)
	}

	return nil
}

func (r *PostgresCompaniesRepository) GetCompanyByID(
	ctx context.Context,
	workspaceID, id string,
) (*models.Company, error) {
	returningStr := strings.Join(companiesColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.companies
		WHERE workspace_id = $1 AND id = $2`, returningStr, r.schema)

	company := &models.Company{}
	err := r.db.QueryRowxContext(ctx, query, workspaceID, id).StructScan(company)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return nil, nil // Company not found
		}
		return nil, fmt.Errorf("failed to get company by id: %w", err)
	}

	return company, nil
}

func (r *PostgresCompaniesRepository) ListCompanies(
	ctx context.Context,
	workspaceID string,
) ([]*models.Company, error) {
	returningStr := strings.Join(companiesColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.companies
		WHERE workspace_id = $1
		ORDER BY created_at ASC`, returningStr, r.schema)

	companies := []*models.Company{}
	if err := r.db.SelectContext(ctx, &companies, query, workspaceID); err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return companies, nil
}
