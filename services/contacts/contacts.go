package contacts

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

type ContactsService struct {
	contactsRepo *db.PostgresContactsRepository
}

func NewContactsService(repo *db.PostgresContactsRepository) *ContactsService {
	return &ContactsService{contactsRepo: repo}
}

func (s *ContactsService) CreateContact(
	ctx context.Context,
	workspaceID string,
	input models.ContactInput,
) (*models.Contact, error) {
	log.Printf("📋 Starting to create contact: %s %s", input.FirstName, input.LastName)
	if workspaceID == "" {
		return nil, fmt.Errorf("workspace_id cannot be empty")
	}
	if strings.TrimSpace(input.FirstName) == "" {
		return nil, fmt.Errorf("firstName cannot be empty")
	}
	if strings.TrimSpace(input.LastName) == "" {
		return nil, fmt.Errorf("lastName cannot be empty")
	}

	contact, err := s.contactsRepo.CreateContact(ctx, workspaceID, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	log.Printf("📋 Completed successfully - created contact with ID: %s", contact.ID)
	return contact, nil
}

func (s *ContactsService) UpdateContact(
	ctx context.Context,
	workspaceID, id string,
	patch map[string]any,
) (*models.Contact, error) {
	log.Printf("📋 Starting to update contact with ID: %s", id)
	if workspaceID == "" {
		return nil, fmt.Errorf("workspace_id cannot be empty")
	}
	if !core.IsValidEntityID(id) {
		return nil, fmt.Errorf("contact id must be a valid entity ID")
	}
	if len(patch) == 0 {
		return nil, fmt.Errorf("patch cannot be empty")
	}

	contact, err := s.contactsRepo.UpdateContact(ctx, workspaceID, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	log.Printf("📋 Completed successfully - updated contact with ID: %s", contact.ID)
	return contact, nil
}

func (s *ContactsService) DeleteContact(ctx context.Context, workspaceID, id string) error {
	log.Printf("📋 Starting to delete contact with ID: %s", id)
	if workspaceID == "" {
		return fmt.Errorf("workspace_id cannot be empty")
	}
	if !core.IsValidEntityID(id) {
		return fmt.Errorf("contact id must be a valid entity ID")
	}

	if err := s.contactsRepo.DeleteContact(ctx, workspaceID, id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	log.Printf("📋 Completed successfully - deleted contact with ID: %s", id)
	return nil
}

func (s *ContactsService) GetContactByID(
	ctx context.Context,
	workspaceID, id string,
) (mo.Option[*models.Contact], error) {
	log.Printf("📋 Starting to get contact by ID: %s", id)
	if workspaceID == "" {
		return mo.None[*models.Contact](), fmt.Errorf("workspace_id cannot be empty")
	}
	if !core.IsValidEntityID(id) {
		return mo.None[*models.Contact](), fmt.Errorf("contact id must be a valid entity ID")
	}

	contact, err := s.contactsRepo.GetContactByID(ctx, workspaceID, id)
	if err != nil {
		return mo.None[*models.Contact](), fmt.Errorf("failed to get contact: %w", err)
	}
	if contact == nil {
		log.Printf("📋 Completed successfully - contact not found: %s", id)
		return mo.None[*models.Contact](), nil
	}

	log.Printf("📋 Completed successfully - retrieved contact with ID: %s", contact.ID)
	return mo.Some(contact), nil
}

func (s *ContactsService) ListContacts(ctx context.Context, workspaceID string) ([]*models.Contact, error) {
	log.Printf("📋 Starting to list contacts for workspace: %s", workspaceID)
	if workspaceID == "" {
		return nil, fmt.Errorf("workspace_id cannot be empty")
	}

	contacts, err := s.contactsRepo.ListContacts(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	log.Printf("📋 Completed successfully - listed %d contacts", len(contacts))
	return contacts, nil
}
