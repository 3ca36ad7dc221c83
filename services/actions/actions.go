package actions

import (
	"context"
	"fmt"
	"log"
	"time"

	"crmbackend/models"
	"crmbackend/services"
)

// ActionsService is the AI action command pipeline: it turns raw assistant
// output into validated, safely-executed mutations against the CRM entity
// services and reports a uniform ActionResult back to the caller.
type ActionsService struct {
	contactsService      services.ContactsService
	companiesService     services.CompaniesService
	pipelinesService     services.PipelinesService
	opportunitiesService services.OpportunitiesService
	emailService         services.EmailService
	actionTimeout        time.Duration
}

func NewActionsService(
	contactsService services.ContactsService,
	companiesService services.CompaniesService,
	pipelinesService services.PipelinesService,
	opportunitiesService services.OpportunitiesService,
	emailService services.EmailService,
	actionTimeout time.Duration,
) *ActionsService {
	return &ActionsService{
		contactsService:      contactsService,
		companiesService:     companiesService,
		pipelinesService:     pipelinesService,
		opportunitiesService: opportunitiesService,
		emailService:         emailService,
		actionTimeout:        actionTimeout,
	}
}

// ProcessMessage is the single inbound entry point of the pipeline: one block
// of assistant text plus a workspace identifier in, either nil (no actionable
// command found) or an ActionResult out.
//
// ProcessMessage executes whatever it parses. The destructive-action flag on
// the parsed command is advisory: callers with a human in the loop should use
// ParseActionBlock and Execute separately and collect a confirmation before
// invoking Execute on a flagged command.
func (s *ActionsService) ProcessMessage(
	ctx context.Context,
	workspaceID, text string,
) (*models.ActionResult, error) {
	log.Printf("📋 Starting to process assistant message for workspace: %s", workspaceID)
	if workspaceID == "" {
		return nil, fmt.Errorf("workspace_id cannot be empty")
	}

	command, err := ParseActionBlock(text)
	if err != nil {
		// A block was present but malformed - distinguishable from "no
		// command attempted" so the caller can prompt the model to retry
		return &models.ActionResult{
			Success: false,
			Message: "Failed to parse action",
			Error:   err.Error(),
		}, nil
	}
	if command == nil {
		log.Printf("📋 Completed successfully - no action block found")
		return nil, nil
	}

	result := s.Execute(ctx, workspaceID, command)

	log.Printf("📋 Completed successfully - action %s finished with success=%t", command.Type, result.Success)
	return result, nil
}
