package contacts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmbackend/db"
	"crmbackend/models"
	"crmbackend/testutils"
)

func setupTestService(t *testing.T) (*ContactsService, *db.PostgresContactsRepository, string) {
	cfg, err := testutils.LoadTestConfig()
	require.NoError(t, err, "Failed to load test config")

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	require.NoError(t, err, "Failed to connect to database")
	t.Cleanup(func() { dbConn.Close() })

	repo := db.NewPostgresContactsRepository(dbConn, cfg.DatabaseSchema)
	return NewContactsService(repo), repo, testutils.NewTestWorkspaceID()
}

func TestContactsService(t *testing.T) {
	service, repo, workspaceID := setupTestService(t)
	ctx := context.Background()

	t.Run("CreateAndGetContact", func(t *testing.T) {
		created, err := service.CreateContact(ctx, workspaceID, models.ContactInput{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Status:    "lead",
			Source:    "referral",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, workspaceID, created.WorkspaceID)

		maybeContact, err := service.GetContactByID(ctx, workspaceID, created.ID)
		require.NoError(t, err)
		contact, ok := maybeContact.Get()
		require.True(t, ok)
		assert.Equal(t, "Ada Lovelace", contact.FullName())
		assert.Equal(t, "ada@example.com", contact.Email)
	})

	t.Run("CreateRequiresNames", func(t *testing.T) {
		_, err := service.CreateContact(ctx, workspaceID, models.ContactInput{LastName: "Lovelace"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "firstName")

		_, err = service.CreateContact(ctx, workspaceID, models.ContactInput{FirstName: "Ada"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "lastName")
	})

	t.Run("UpdateAppliesOnlyWhitelistedFields", func(t *testing.T) {
		created := testutils.CreateTestContact(t, repo, workspaceID)

		updated, err := service.UpdateContact(ctx, workspaceID, created.ID, map[string]any{
			"status":       "customer",
			"notAllowed":   "ignored",
			"workspace_id": "injection attempt",
		})
		require.NoError(t, err)
		assert.Equal(t, "customer", updated.Status)
		assert.Equal(t, workspaceID, updated.WorkspaceID)
	})

	t.Run("UpdateRejectsMalformedID", func(t *testing.T) {
		_, err := service.UpdateContact(ctx, workspaceID, "not-an-id", map[string]any{"status": "won"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "valid entity ID")
	})

	t.Run("DeleteRemovesContact", func(t *testing.T) {
		created := testutils.CreateTestContact(t, repo, workspaceID)

		err := service.DeleteContact(ctx, workspaceID, created.ID)
		require.NoError(t, err)

		maybeContact, err := service.GetContactByID(ctx, workspaceID, created.ID)
		require.NoError(t, err)
		assert.True(t, maybeContact.IsAbsent())
	})

	t.Run("ListIsScopedToWorkspace", func(t *testing.T) {
		otherWorkspaceID := testutils.NewTestWorkspaceID()
		testutils.CreateTestContact(t, repo, otherWorkspaceID)

		contacts, err := service.ListContacts(ctx, otherWorkspaceID)
		require.NoError(t, err)
		assert.Len(t, contacts, 1)
	})
}
