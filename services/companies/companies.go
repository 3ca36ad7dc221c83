package companies

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

type CompaniesService struct {
	companiesRepo *db.PostgresCompaniesRepository
}

func NewCompaniesService(repo *db.PostgresCompaniesRepository) *CompaniesService {
	return &CompaniesService{companiesRepo: repo}
}

func (s *CompaniesService) CreateCompany(
	ctx context.Context,
	workspaceID string,
	input models.CompanyInput,
) (*models.Company, error) {
	log.Printf("📋 Starting to create company: %s", input.Name)
	if workspaceID == "" {
		return nil, fmt.Errorf("workspace_id cannot be empty")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("company name cannot be empty")
	}

	company, err := s.companiesRepo.CreateCompany(ctx, workspaceID, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	log.Printf("📋 Completed successfully - created company with ID: %s", company.ID)
	return company, nil
}

func (s *CompaniesService) UpdateCompany(
	ctx context.Context,
	workspaceID, id string,
	patch map[string]any,
) (*models.Company, error) {
	log.Printf("📋 Starting to update company with ID: %s", id)
	if workspaceID == "" {
		return nil, fmt.Errorf("workspace_id cannot be empty")
	}
	if !core.IsValidEntityID(id) {
		return nil, fmt.Errorf("company id must be a valid entity ID")
	}
	if len(patch) == 0 {
		return nil, fmt.Errorf("patch cannot be empty")
	}

	company, err := s.companiesRepo.UpdateCompany(ctx, workspaceID, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	log.Printf("📋 Completed successfully - updated company with ID: %s", company.ID)
	return company, nil
}

func (s *CompaniesService) DeleteCompany(ctx context.Context, workspaceID, id string) error {
	log.Printf("📋 Starting to delete company with ID: %s", id)
	if workspaceID == "" {
		return fmt.Errorf("workspace_id cannot be empty")
	}
	if !core.IsValidEntityID(id) {
		return fmt.Errorf("company id must be a valid entity ID")
	}

	if err := s.companiesRepo.DeleteCompany(ctx, workspaceID, id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	log.Printf("📋 Completed successfully - deleted company with ID: %s", id)
	return nil
}

func (s *CompaniesService) GetCompanyByID(
	ctx context.Context,
	workspaceID, id string,
) (mo.Option[*models.Company], error) {
	log.Printf("📋 Starting to get company by ID: %s", id)
	if workspaceID == "" {
		return mo.None[*models.Company](), fmt.Errorf("workspace_id cannot be empty")
	}
	if !core.IsValidEntityID(id) {
		return mo.None[*models.Company](), fmt.Errorf("company id must be a valid entity ID")
	}

	company, err := s.companiesRepo.GetCompanyByID(ctx, workspaceID, id)
	if err != nil {
		return mo.None[*models.Company](), fmt.Errorf("failed to get company: %w", err)
	}
	if company == nil {
		log.Printf("📋 Completed successfully - company not found: %s", id)
		return mo.None[*models.Company](), nil
	}

	log.Printf("📋 Completed successfully - retrieved company with ID: %s", company.ID)
	return mo.Some(company), nil
}

func (s *CompaniesService) ListCompanies(ctx context.Context, workspaceID string) ([]*models.Company, error) {
	log.Printf("📋 Starting to list companies for workspace: %s", workspaceID)
	if workspaceID == "" {
		return nil, fmt.Errorf("workspace_id cannot be empty")
	}

	companies, err := s.companiesRepo.ListCompanies(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	log.Printf("📋 Completed successfully - listed %d companies", len(companies))
	return companies, nil
}
