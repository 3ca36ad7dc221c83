package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"crmbackend/clients"
	"crmbackend/models"
	"crmbackend/services/actions"
)

// systemPrompt instructs the model on the action block contract. The
// vocabulary is rendered from the single source of truth in models so a new
// action type is advertised automatically.
var systemPrompt = fmt.Sprintf(`You are a CRM assistant. You help the user manage contacts, companies, pipelines and opportunities.

When the user asks you to perform an operation, reply with a short confirmation sentence followed by exactly one fenced action block:

`+"```"+`action
{"action": "<action_type>", "params": {...}}
`+"```"+`

Supported action types: %s.

Pipelines and stages may be referenced by name; the system resolves names to identifiers. If the user is only asking a question, reply in plain text without an action block.`,
	joinActionTypes())

func joinActionTypes() string {
	names := make([]string, 0, len(models.AllActionTypes))
	for _, actionType := range models.AllActionTypes {
		names = append(names, string(actionType))
	}
	return strings.Join(names, ", ")
}

// ChatOutcome is the result of one assistant conversation turn. At most one
// of Result and PendingCommand is set: a destructive command is returned for
// confirmation instead of being executed.
type ChatOutcome struct {
	Reply          string               `json:"reply"`
	Result         *models.ActionResult `json:"result,omitempty"`
	PendingCommand *models.Command      `json:"pending_command,omitempty"`
}

type AssistantAPIHandler struct {
	assistantClient clients.AssistantClient
	actionsService  *actions.ActionsService
}

func NewAssistantAPIHandler(
	assistantClient clients.AssistantClient,
	actionsService *actions.ActionsService,
) *AssistantAPIHandler {
	return &AssistantAPIHandler{
		assistantClient: assistantClient,
		actionsService:  actionsService,
	}
}

// Chat runs one conversation turn: generate the assistant's reply, extract
// an embedded action command if present, and either execute it or hand it
// back for confirmation when it is destructive.
func (h *AssistantAPIHandler) Chat(
	ctx context.Context,
	workspaceID, message string,
	history []clients.ChatMessage,
) (*ChatOutcome, error) {
	log.Printf("📋 Starting to process chat turn for workspace: %s", workspaceID)

	conversation := append(history, clients.ChatMessage{
		Role:    clients.ChatRoleUser,
		Content: message,
	})
	reply, err := h.assistantClient.GenerateReply(ctx, systemPrompt, conversation)
	if err != nil {
		return nil, fmt.Errorf("failed to generate assistant reply: %w", err)
	}

	outcome := &ChatOutcome{Reply: reply}

	command, parseErr := actions.ParseActionBlock(reply)
	if parseErr != nil {
		outcome.Result = &models.ActionResult{
			Success: false,
			Message: "Failed to parse action",
			Error:   parseErr.Error(),
		}
		return outcome, nil
	}
	if command == nil {
		log.Printf("📋 Completed successfully - plain chat reply, no action")
		return outcome, nil
	}

	if command.RequiresConfirmation {
		log.Printf("📋 Completed successfully - %s held for confirmation", command.Type)
		outcome.PendingCommand = command
		return outcome, nil
	}

	outcome.Result = h.actionsService.Execute(ctx, workspaceID, command)
	log.Printf("📋 Completed successfully - action %s finished with success=%t",
		command.Type, outcome.Result.Success)
	return outcome, nil
}

// ExecuteCommand runs a previously returned pending command. Confirmed must
// be true for destructive commands; this is where the confirmation gate is
// enforced.
//
// The command arrives over the wire, so its confirmation flag and
// description are untrusted and recomputed from the command type before the
// gate is applied.
func (h *AssistantAPIHandler) ExecuteCommand(
	ctx context.Context,
	workspaceID string,
	command *models.Command,
	confirmed bool,
) (*models.ActionResult, error) {
	command.RequiresConfirmation = models.ActionRequiresConfirmation(command.Type)
	command.Description = actions.DescribeCommand(command.Type, command.Params)

	if command.RequiresConfirmation && !confirmed {
		return nil, fmt.Errorf("action %s requires confirmation", command.Type)
	}

	return h.actionsService.Execute(ctx, workspaceID, command), nil
}

// ExportContacts produces the CSV download for the workspace's contacts
func (h *AssistantAPIHandler) ExportContacts(
	ctx context.Context,
	workspaceID string,
) (*models.ExportFile, error) {
	return h.runExport(ctx, workspaceID, models.ActionExportContacts)
}

// ExportCompanies produces the CSV download for the workspace's companies
func (h *AssistantAPIHandler) ExportCompanies(
	ctx context.Context,
	workspaceID string,
) (*models.ExportFile, error) {
	return h.runExport(ctx, workspaceID, models.ActionExportCompanies)
}

func (h *AssistantAPIHandler) runExport(
	ctx context.Context,
	workspaceID string,
	actionType models.ActionType,
) (*models.ExportFile, error) {
	result := h.actionsService.Execute(ctx, workspaceID, &models.Command{
		Type:   actionType,
		Params: models.Params{},
	})
	if !result.Success {
		return nil, fmt.Errorf("export failed: %s", result.Error)
	}

	file, ok := result.Data.(*models.ExportFile)
	if !ok {
		return nil, fmt.Errorf("export returned unexpected payload")
	}
	return file, nil
}
