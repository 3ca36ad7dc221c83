package testutils

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"crmbackend/config"
	"crmbackend/core"
	"crmbackend/db"
	"crmbackend/models"
)

// LoadTestConfig loads configuration for integration tests from environment
// variables
func LoadTestConfig() (*config.AppConfig, error) {
	// Try to load environment variables from various possible locations
	_ = godotenv.Load("../.env.test") // From services/ directory
	_ = godotenv.Load(".env.test")    // From root directory
	_ = godotenv.Load()               // Default .env file

	databaseURL := os.Getenv("DB_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DB_URL is not set")
	}

	databaseSchema := os.Getenv("DB_SCHEMA")
	if databaseSchema == "" {
		return nil, fmt.Errorf("DB_SCHEMA is not set")
	}

	return &config.AppConfig{
		DatabaseURL:       databaseURL,
		DatabaseSchema:    databaseSchema,
		ActionTimeoutSecs: 30,
	}, nil
}

// NewTestWorkspaceID generates a unique workspace identifier so parallel
// tests never collide on data
func NewTestWorkspaceID() string {
	return core.NewID("ws")
}

// CreateTestContact creates a contact with unique field values
func CreateTestContact(
	t *testing.T,
	contactsRepo *db.PostgresContactsRepository,
	workspaceID string,
) *models.Contact {
	suffix := uuid.New().String()[:8]
	contact, err := contactsRepo.CreateContact(context.Background(), workspaceID, models.ContactInput{
		FirstName: "Test",
		LastName:  "Contact-" + suffix,
		Email:     fmt.Sprintf("test-%s@example.com", suffix),
		Status:    "lead",
		Source:    "test",
	})
	require.NoError(t, err, "Failed to create test contact")
	return contact
}

// CreateTestCompany creates a company with unique field values
func CreateTestCompany(
	t *testing.T,
	companiesRepo *db.PostgresCompaniesRepository,
	workspaceID string,
) *models.Company {
	suffix := uuid.New().String()[:8]
	company, err := companiesRepo.CreateCompany(context.Background(), workspaceID, models.CompanyInput{
		Name:     "Test Company " + suffix,
		Domain:   fmt.Sprintf("test-%s.example.com", suffix),
		Industry: "Testing",
	})
	require.NoError(t, err, "Failed to create test company")
	return company
}

// CreateTestPipeline creates a pipeline with the standard three test stages
func CreateTestPipeline(
	t *testing.T,
	pipelinesRepo *db.PostgresPipelinesRepository,
	workspaceID string,
) *models.Pipeline {
	suffix := uuid.New().String()[:8]
	pipeline, err := pipelinesRepo.CreatePipeline(
		context.Background(), workspaceID, "Test Pipeline "+suffix,
		[]models.StageDefinition{
			{Name: "Lead", Color: "#3b82f6"},
			{Name: "Negotiation", Color: "#f59e0b"},
			{Name: "Won", Color: "#22c55e"},
		})
	require.NoError(t, err, "Failed to create test pipeline")
	return pipeline
}
