package services

import (
	"context"

	"github.com/samber/mo"

	"crmbackend/models"
)

// ContactsService defines the CRUD capability interface for contacts
type ContactsService interface {
	CreateContact(ctx context.Context, workspaceID string, input models.ContactInput) (*models.Contact, error)
	UpdateContact(ctx context.Context, workspaceID, id string, patch map[string]any) (*models.Contact, error)
	DeleteContact(ctx context.Context, workspaceID, id string) error
	GetContactByID(ctx context.Context, workspaceID, id string) (mo.Option[*models.Contact], error)
	ListContacts(ctx context.Context, workspaceID string) ([]*models.Contact, error)
}

// CompaniesService defines the CRUD capability interface for companies
type CompaniesService interface {
	CreateCompany(ctx context.Context, workspaceID string, input models.CompanyInput) (*models.Company, error)
	UpdateCompany(ctx context.Context, workspaceID, id string, patch map[string]any) (*models.Company, error)
	DeleteCompany(ctx context.Context, workspaceID, id string) error
	GetCompanyByID(ctx context.Context, workspaceID, id string) (mo.Option[*models.Company], error)
	ListCompanies(ctx context.Context, workspaceID string) ([]*models.Company, error)
}

// PipelinesService defines the CRUD capability interface for pipelines and
// their stages
type PipelinesService interface {
	CreatePipeline(
		ctx context.Context,
		workspaceID, name string,
		stages []models.StageDefinition,
	) (*models.Pipeline, error)
	UpdatePipeline(ctx context.Context, workspaceID, id string, patch map[string]any) (*models.Pipeline, error)
	DeletePipeline(ctx context.Context, workspaceID, id string) error
	GetPipelineByID(ctx context.Context, workspaceID, id string) (mo.Option[*models.Pipeline], error)
	ListPipelines(ctx context.Context, workspaceID string) ([]*models.Pipeline, error)
	SetDefaultPipeline(ctx context.Context, workspaceID, id string) error

	AddStage(ctx context.Context, workspaceID, pipelineID string, def models.StageDefinition) (*models.Stage, error)
	UpdateStage(
		ctx context.Context,
		workspaceID, pipelineID, stageID string,
		patch map[string]any,
	) (*models.Stage, error)
	DeleteStage(ctx context.Context, workspaceID, pipelineID, stageID string) error
	ReorderStages(ctx context.Context, workspaceID, pipelineID string, stageIDs []string) error
}

// OpportunitiesService defines the CRUD capability interface for opportunities
type OpportunitiesService interface {
	CreateOpportunity(ctx context.Context, workspaceID string, input models.OpportunityInput) (*models.Opportunity, error)
	UpdateOpportunity(
		ctx context.Context,
		workspaceID, id string,
		patch map[string]any,
	) (*models.Opportunity, error)
	MoveOpportunity(
		ctx context.Context,
		workspaceID, id, pipelineID, stageID string,
	) (*models.Opportunity, error)
	DeleteOpportunity(ctx context.Context, workspaceID, id string) error
	GetOpportunityByID(ctx context.Context, workspaceID, id string) (mo.Option[*models.Opportunity], error)
	ListOpportunities(ctx context.Context, workspaceID string) ([]*models.Opportunity, error)
}

// EmailService defines the capability interface for queueing outgoing email
type EmailService interface {
	SendEmail(ctx context.Context, workspaceID, to, subject, body string) (*models.EmailMessage, error)
}
