package email

import (
	"context"
	"fmt"
	"log"
	"strings"

	"crmbackend/db"
	"crmbackend/models"
)

// EmailService queues outgoing email into the workspace outbox. Actual
// delivery is handled by an out-of-band sender draining the outbox table.
type EmailService struct {
	emailsRepo *db.PostgresEmailsRepository
}

func NewEmailService(repo *db.PostgresEmailsRepository) *EmailService {
	return &EmailService{emailsRepo: repo}
}

func (s *EmailService) SendEmail(
	ctx context.Context,
	workspaceID, to, subject, body string,
) (*models.EmailMessage, error) {
	log.Printf("📋 Starting to queue email to: %s", to)
	if workspaceID == "" {
		return nil, fmt.Errorf("workspace_id cannot be empty")
	}
	if strings.TrimSpace(to) == "" {
		return nil, fmt.Errorf("recipient cannot be empty")
	}
	if strings.TrimSpace(subject) == "" {
		return nil, fmt.Errorf("subject cannot be empty")
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("body cannot be empty")
	}

	message, err := s.emailsRepo.CreateEmailMessage(ctx, workspaceID, to, subject, body)
	if err != nil {
		return nil, fmt.Errorf("failed to queue email: %w", err)
	}

	log.Printf("📋 Completed successfully - queued email with ID: %s", message.ID)
	return message, nil
}
