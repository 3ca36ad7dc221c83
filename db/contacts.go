package db

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	// necessary import to wire up the postgres driver
	_ "github.com/lib/pq"

	"crmbackend/core"
	"crmbackend/models"
)

type PostgresContactsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for contacts table
var contactsColumns = []string{
	"id",
	"workspace_id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"company_id",
	"status",
	"source",
	"created_at",
	"updated_at",
}

// Parameter keys the update patch is allowed to touch, mapped to columns
var contactsPatchColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
	"phone":     "phone",
	"companyId": "company_id",
	"status":    "status",
	"source":    "source",
}

func NewPostgresContactsRepository(db *sqlx.DB, schema string) *PostgresContactsRepository {
	return &PostgresContactsRepository{db: db, schema: schema}
}

func (r *PostgresContactsRepository) CreateContact(
	ctx context.Context,
	workspaceID string,
	input models.ContactInput,
) (*models.Contact, error) {
	contactID := core.NewEntityID()

	columnsStr := strings.Join(contactsColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.contacts (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s`, r.schema, columnsStr, columnsStr)

	contact := &models.Contact{}
	err := r.db.QueryRowxContext(ctx, query,
		contactID, workspaceID, input.FirstName, input.LastName,
		input.Email, input.Phone, input.CompanyID, input.Status, input.Source,
	).StructScan(contact)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return contact, nil
}

func (r *PostgresContactsRepository) UpdateContact(
	ctx context.Context,
	workspaceID, id string,
	patch map[string]any,
) (*models.Contact, error) {
	setClauses, args := buildPatchClauses(contactsPatchColumns, patch, 3)
	if len(setClauses) == 0 {
		return nil, fmt.Errorf("no updatable fields in patch")
	}

	returningStr := strings.Join(contactsColumns, ", ")

	query := fmt.Sprintf(`
		UPDATE %s.contacts
		SET %s, updated_at = NOW()
		WHERE workspace_id = $1 AND id = $2
		RETURNING %s`, r.schema, strings.Join(setClauses, ", "), returningStr)

	allArgs := append([]any{workspaceID, id}, args...)

	contact := &models.Contact{}
	err := r.db.QueryRowxContext(ctx, query, allArgs...).StructScan(contact)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return nil, fmt.Errorf("contact %s: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return contact, nil
}

func (r *PostgresContactsRepository) DeleteContact(ctx context.Context, workspaceID, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s.contacts WHERE workspace_id = $1 AND id = $2`, r.schema)

	result, err := r.db.ExecContext(ctx, query, workspaceID, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("contact %s: %w", id, core.ErrNotFound)
	}

	return nil
}

func (r *PostgresContactsRepository) GetContactByID(
	ctx context.Context,
	workspaceID, id string,
) (*models.Contact, error) {
	returningStr := strings.Join(contactsColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.contacts
		WHERE workspace_id = $1 AND id = $2`, returningStr, r.schema)

	contact := &models.Contact{}
	err := r.db.QueryRowxContext(ctx, query, workspaceID, id).StructScan(contact)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return nil, nil // Contact not found
		}
		return nil, fmt.Errorf("failed to get contact by id: %w", err)
	}

	return contact, nil
}

func (r *PostgresContactsRepository) ListContacts(
	ctx context.Context,
	workspaceID string,
) ([]*models.Contact, error) {
	returningStr := strings.Join(contactsColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.contacts
		WHERE workspace_id = $1
		ORDER BY created_at ASC`, returningStr, r.schema)

	contacts := []*models.Contact{}
	if err := r.db.SelectContext(ctx, &contacts, query, workspaceID); err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return contacts, nil
}

// buildPatchClauses translates the whitelisted keys of patch into SET clauses
// with positional placeholders starting at firstArg. Unknown keys are ignored.
func buildPatchClauses(allowed map[string]string, patch map[string]any, firstArg int) ([]string, []any) {
	setClauses := []string{}
	args := []any{}
	argPos := firstArg

	// Iterate the whitelist rather than the patch for a stable clause order
	for _, key := range sortedKeys(allowed) {
		value, ok := patch[key]
		if !ok {
			continue
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", allowed[key], argPos))
		args = append(args, value)
		argPos++
	}

	return setClauses, args
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
