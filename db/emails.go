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

type PostgresEmailsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for email_outbox table
var emailsColumns = []string{
	"id",
	"workspace_id",
	"recipient",
	"subject",
	"body",
	"status",
	"created_at",
}

func NewPostgresEmailsRepository(db *sqlx.DB, schema string) *PostgresEmailsRepository {
	return &PostgresEmailsRepository{db: db, schema: schema}
}

func (r *PostgresEmailsRepository) CreateEmailMessage(
	ctx context.Context,
	workspaceID, to, subject, body string,
) (*models.EmailMessage, error) {
	emailID := core.NewEntityID()

	columnsStr := strings.Join(emailsColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.email_outbox (%s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s`, r.schema, columnsStr, columnsStr)

	email := &models.EmailMessage{}
	err := r.db.QueryRowxContext(ctx, query,
		emailID, workspaceID, to, subject, body, models.EmailStatusQueued,
	).StructScan(email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email message: %w", err)
	}

	return email, nil
}

func (r *PostgresEmailsRepository) ListEmailMessages(
	ctx context.Context,
	workspaceID string,
) ([]*models.EmailMessage, error) {
	returningStr := strings.Join(emailsColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.email_outbox
		WHERE workspace_id = $1
		ORDER BY created_at ASC`, returningStr, r.schema)

	emails := []*models.EmailMessage{}
	if err := r.db.SelectContext(ctx, &emails, query, workspaceID); err != nil {
		return nil, fmt.Errorf("failed to list email messages: %w", err)
	}

	return emails, nil
}
