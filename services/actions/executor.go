package actions

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"crmbackend/core"
	"crmbackend/models"
)

// Execute dispatches one validated command to the backing CRM services and
// returns the uniform outcome. It never panics and never returns nil: a
// panicking handler is converted into a failed ActionResult so one bad
// command cannot take down the caller's request loop.
//
// Execute re-validates the command before dispatch. Parsing and validation
// may have happened in an earlier request (the confirmation round-trip for
// destructive commands), so the command is not trusted to still be valid.
func (s *ActionsService) Execute(
	ctx context.Context,
	workspaceID string,
	command *models.Command,
) (result *models.ActionResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Panic while executing action %s: %v", command.Type, r)
			result = &models.ActionResult{
				Success: false,
				Message: "Failed to execute action",
				Error:   fmt.Sprintf("panic: %v", r),
			}
		}
	}()

	log.Printf("📋 Starting to execute action %s for workspace: %s", command.Type, workspaceID)

	if !models.IsKnownActionType(command.Type) {
		return &models.ActionResult{
			Success: false,
			Message: "Action not implemented",
			Error:   fmt.Sprintf("unsupported action type: %s", command.Type),
		}
	}

	validation := ValidateCommand(command)
	if !validation.Valid {
		return &models.ActionResult{
			Success: false,
			Message: "Invalid action parameters",
			Error:   strings.Join(validation.Errors, "; "),
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.actionTimeout)
	defer cancel()

	params := command.Params

	switch command.Type {
	case models.ActionCreateContact:
		return s.createContact(ctx, workspaceID, params)
	case models.ActionUpdateContact:
		return s.updateContact(ctx, workspaceID, params)
	case models.ActionDeleteContact:
		return s.deleteContact(ctx, workspaceID, params)
	case models.ActionBulkUpdateContacts:
		return s.bulkUpdateContacts(ctx, workspaceID, params)
	case models.ActionBulkDeleteContacts:
		return s.bulkDeleteContacts(ctx, workspaceID, params)
	case models.ActionLinkContactToCompany:
		return s.linkContactToCompany(ctx, workspaceID, params)
	case models.ActionCreateCompany:
		return s.createCompany(ctx, workspaceID, params)
	case models.ActionUpdateCompany:
		return s.updateCompany(ctx, workspaceID, params)
	case models.ActionDeleteCompany:
		return s.deleteCompany(ctx, workspaceID, params)
	case models.ActionSendEmail:
		return s.sendEmail(ctx, workspaceID, params)
	case models.ActionSendBulkEmail:
		return s.sendBulkEmail(ctx, workspaceID, params)
	case models.ActionExportContacts:
		return s.exportContacts(ctx, workspaceID)
	case models.ActionExportCompanies:
		return s.exportCompanies(ctx, workspaceID)
	case models.ActionAnalyzeContacts:
		return s.analyzeContacts(ctx, workspaceID)
	case models.ActionGetContactStats:
		return s.getContactStats(ctx, workspaceID)
	case models.ActionCreatePipeline:
		return s.createPipeline(ctx, workspaceID, params)
	case models.ActionUpdatePipeline:
		return s.updatePipeline(ctx, workspaceID, params)
	case models.ActionDeletePipeline:
		return s.deletePipeline(ctx, workspaceID, params)
	case models.ActionAddStage:
		return s.addStage(ctx, workspaceID, params)
	case models.ActionUpdateStage:
		return s.updateStage(ctx, workspaceID, params)
	case models.ActionDeleteStage:
		return s.deleteStage(ctx, workspaceID, params)
	case models.ActionReorderStages:
		return s.reorderStages(ctx, workspaceID, params)
	case models.ActionSetDefaultPipeline:
		return s.setDefaultPipeline(ctx, workspaceID, params)
	case models.ActionCreateOpportunity:
		return s.createOpportunity(ctx, workspaceID, params)
	case models.ActionUpdateOpportunity:
		return s.updateOpportunity(ctx, workspaceID, params)
	case models.ActionMoveOpportunity:
		return s.moveOpportunity(ctx, workspaceID, params)
	case models.ActionDeleteOpportunity:
		return s.deleteOpportunity(ctx, workspaceID, params)
	case models.ActionBulkUpdateOpportunities:
		return s.bulkUpdateOpportunities(ctx, workspaceID, params)
	case models.ActionBulkDeleteOpportunities:
		return s.bulkDeleteOpportunities(ctx, workspaceID, params)
	default:
		// Reached only when a type joins the vocabulary without a handler
		return &models.ActionResult{
			Success: false,
			Message: "Action not implemented",
			Error:   fmt.Sprintf("no handler for action type: %s", command.Type),
		}
	}
}

// Contact actions

func (s *ActionsService) createContact(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	input := models.ContactInput{
		FirstName: params.String("firstName"),
		LastName:  params.String("lastName"),
		Email:     params.String("email"),
		Phone:     params.String("phone"),
		CompanyID: optionalString(params, "companyId"),
		Status:    params.String("status"),
		Source:    params.String("source"),
	}

	contact, err := s.contactsService.CreateContact(ctx, workspaceID, input)
	if err != nil {
		return failureResult("Failed to create contact", err)
	}

	return successResult(fmt.Sprintf("✅ Contact created: %s", contact.FullName()), contact)
}

func (s *ActionsService) updateContact(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	contact, err := s.contactsService.UpdateContact(
		ctx, workspaceID, params.String("id"), updatePatch(params))
	if err != nil {
		return failureResult("Failed to update contact", err)
	}

	return successResult(fmt.Sprintf("✅ Contact updated: %s", contact.FullName()), contact)
}

func (s *ActionsService) deleteContact(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	if err := s.contactsService.DeleteContact(ctx, workspaceID, params.String("id")); err != nil {
		return failureResult("Failed to delete contact", err)
	}

	return successResult("✅ Contact deleted", nil)
}

func (s *ActionsService) bulkUpdateContacts(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	updates := params.Map("updates")
	outcome := runBulk(params.StringSlice("contactIds"), func(id string) error {
		_, err := s.contactsService.UpdateContact(ctx, workspaceID, id, updates)
		return err
	})

	return bulkResult("Updated", "contact", outcome)
}

func (s *ActionsService) bulkDeleteContacts(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	outcome := runBulk(params.StringSlice("contactIds"), func(id string) error {
		return s.contactsService.DeleteContact(ctx, workspaceID, id)
	})

	return bulkResult("Deleted", "contact", outcome)
}

func (s *ActionsService) linkContactToCompany(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	companyID := params.String("companyId")
	maybeCompany, err := s.companiesService.GetCompanyByID(ctx, workspaceID, companyID)
	if err != nil {
		return failureResult("Failed to link contact to company", err)
	}
	company, ok := maybeCompany.Get()
	if !ok {
		return failureResult("Failed to link contact to company",
			fmt.Errorf("company %s not found", companyID))
	}

	contact, err := s.contactsService.UpdateContact(
		ctx, workspaceID, params.String("contactId"), map[string]any{"companyId": companyID})
	if err != nil {
		return failureResult("Failed to link contact to company", err)
	}

	return successResult(
		fmt.Sprintf("✅ Linked %s to %s", contact.FullName(), company.Name), contact)
}

// Company actions

func (s *ActionsService) createCompany(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	input := models.CompanyInput{
		Name:     params.String("name"),
		Domain:   params.String("domain"),
		Industry: params.String("industry"),
	}

	company, err := s.companiesService.CreateCompany(ctx, workspaceID, input)
	if err != nil {
		return failureResult("Failed to create company", err)
	}

	return successResult(fmt.Sprintf("✅ Company created: %s", company.Name), company)
}

func (s *ActionsService) updateCompany(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	company, err := s.companiesService.UpdateCompany(
		ctx, workspaceID, params.String("id"), updatePatch(params))
	if err != nil {
		return failureResult("Failed to update company", err)
	}

	return successResult(fmt.Sprintf("✅ Company updated: %s", company.Name), company)
}

func (s *ActionsService) deleteCompany(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	if err := s.companiesService.DeleteCompany(ctx, workspaceID, params.String("id")); err != nil {
		return failureResult("Failed to delete company", err)
	}

	return successResult("✅ Company deleted", nil)
}

// Email actions

func (s *ActionsService) sendEmail(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	message, err := s.emailService.SendEmail(
		ctx, workspaceID, params.String("to"), params.String("subject"), params.String("body"))
	if err != nil {
		return failureResult("Failed to send email", err)
	}

	return successResult(fmt.Sprintf("✅ Email queued to %s", message.To), message)
}

func (s *ActionsService) sendBulkEmail(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	subject := params.String("subject")
	body := params.String("body")

	outcome := runBulk(params.StringSlice("contactIds"), func(id string) error {
		maybeContact, err := s.contactsService.GetContactByID(ctx, workspaceID, id)
		if err != nil {
			return err
		}
		contact, ok := maybeContact.Get()
		if !ok {
			return fmt.Errorf("contact %s not found", id)
		}
		if contact.Email == "" {
			return fmt.Errorf("contact %s has no email address", contact.FullName())
		}
		_, err = s.emailService.SendEmail(ctx, workspaceID, contact.Email, subject, body)
		return err
	})

	return bulkResult("Queued email to", "contact", outcome)
}

// Export and reporting actions

func (s *ActionsService) exportContacts(ctx context.Context, workspaceID string) *models.ActionResult {
	contacts, err := s.contactsService.ListContacts(ctx, workspaceID)
	if err != nil {
		return failureResult("Failed to export contacts", err)
	}

	content, err := buildContactsCSV(contacts)
	if err != nil {
		return failureResult("Failed to export contacts", err)
	}

	file := &models.ExportFile{
		Filename:    fmt.Sprintf("contacts-%s.csv", time.Now().Format("2006-01-02")),
		ContentType: "text/csv",
		Content:     content,
	}
	return successResult(fmt.Sprintf("✅ Exported %s", countNoun(len(contacts), "contact")), file)
}

func (s *ActionsService) exportCompanies(ctx context.Context, workspaceID string) *models.ActionResult {
	companies, err := s.companiesService.ListCompanies(ctx, workspaceID)
	if err != nil {
		return failureResult("Failed to export companies", err)
	}

	content, err := buildCompaniesCSV(companies)
	if err != nil {
		return failureResult("Failed to export companies", err)
	}

	file := &models.ExportFile{
		Filename:    fmt.Sprintf("companies-%s.csv", time.Now().Format("2006-01-02")),
		ContentType: "text/csv",
		Content:     content,
	}
	return successResult(fmt.Sprintf("✅ Exported %s", countNoun(len(companies), "company")), file)
}

func (s *ActionsService) analyzeContacts(ctx context.Context, workspaceID string) *models.ActionResult {
	contacts, err := s.contactsService.ListContacts(ctx, workspaceID)
	if err != nil {
		return failureResult("Failed to analyze contacts", err)
	}

	stats := computeContactStats(contacts)
	message := fmt.Sprintf("✅ Analyzed %s. By status: %s. By source: %s",
		countNoun(stats.Total, "contact"),
		summarizeBreakdown(stats.ByStatus),
		summarizeBreakdown(stats.BySource))
	return successResult(message, stats)
}

func (s *ActionsService) getContactStats(ctx context.Context, workspaceID string) *models.ActionResult {
	contacts, err := s.contactsService.ListContacts(ctx, workspaceID)
	if err != nil {
		return failureResult("Failed to compute contact statistics", err)
	}

	stats := computeContactStats(contacts)
	message := fmt.Sprintf("✅ %s total: %d with email, %d with phone, %d linked to a company",
		countNoun(stats.Total, "contact"), stats.WithEmail, stats.WithPhone, stats.WithCompany)
	return successResult(message, stats)
}

// Pipeline actions

func (s *ActionsService) createPipeline(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	definitions := stageDefinitionsFromParams(params)

	pipeline, err := s.pipelinesService.CreatePipeline(ctx, workspaceID, params.String("name"), definitions)
	if err != nil {
		return failureResult("Failed to create pipeline", err)
	}

	message := fmt.Sprintf("✅ Pipeline created: %s with %s",
		pipeline.Name, countNoun(len(pipeline.Stages), "stage"))
	return successResult(message, pipeline)
}

func (s *ActionsService) updatePipeline(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	pipelineID, err := s.resolvePipeline(ctx, workspaceID, params.String("pipelineId"))
	if err != nil {
		return failureResult("Failed to update pipeline", err)
	}

	patch := map[string]any{}
	if name := strings.TrimSpace(params.String("name")); name != "" {
		patch["name"] = name
	}
	if len(patch) == 0 {
		return failureResult("Failed to update pipeline",
			fmt.Errorf("no updatable fields in patch"))
	}

	pipeline, err := s.pipelinesService.UpdatePipeline(ctx, workspaceID, pipelineID, patch)
	if err != nil {
		return failureResult("Failed to update pipeline", err)
	}

	return successResult(fmt.Sprintf("✅ Pipeline updated: %s", pipeline.Name), pipeline)
}

func (s *ActionsService) deletePipeline(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	pipelineID, err := s.resolvePipeline(ctx, workspaceID, params.String("pipelineId"))
	if err != nil {
		return failureResult("Failed to delete pipeline", err)
	}

	if err := s.pipelinesService.DeletePipeline(ctx, workspaceID, pipelineID); err != nil {
		return failureResult("Failed to delete pipeline", err)
	}

	return successResult("✅ Pipeline deleted", nil)
}

func (s *ActionsService) addStage(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	pipelineID, err := s.resolvePipeline(ctx, workspaceID, params.String("pipelineId"))
	if err != nil {
		return failureResult("Failed to add stage", err)
	}

	definition := models.StageDefinition{
		Name:  params.String("stageName"),
		Color: NormalizeStageColor(params.String("stageColor")),
	}
	stage, err := s.pipelinesService.AddStage(ctx, workspaceID, pipelineID, definition)
	if err != nil {
		return failureResult("Failed to add stage", err)
	}

	return successResult(fmt.Sprintf("✅ Stage added: %s", stage.Name), stage)
}

func (s *ActionsService) updateStage(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	pipelineID, err := s.resolvePipeline(ctx, workspaceID, params.String("pipelineId"))
	if err != nil {
		return failureResult("Failed to update stage", err)
	}

	patch := map[string]any{}
	if name := params.String("stageName"); name != "" {
		patch["stageName"] = name
	}
	if color := params.String("stageColor"); color != "" {
		patch["stageColor"] = NormalizeStageColor(color)
	}

	stage, err := s.pipelinesService.UpdateStage(
		ctx, workspaceID, pipelineID, params.String("stageId"), patch)
	if err != nil {
		return failureResult("Failed to update stage", err)
	}

	return successResult(fmt.Sprintf("✅ Stage updated: %s", stage.Name), stage)
}

func (s *ActionsService) deleteStage(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	pipelineID, err := s.resolvePipeline(ctx, workspaceID, params.String("pipelineId"))
	if err != nil {
		return failureResult("Failed to delete stage", err)
	}

	if err := s.pipelinesService.DeleteStage(ctx, workspaceID, pipelineID, params.String("stageId")); err != nil {
		return failureResult("Failed to delete stage", err)
	}

	return successResult("✅ Stage deleted", nil)
}

func (s *ActionsService) reorderStages(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	pipelineID, err := s.resolvePipeline(ctx, workspaceID, params.String("pipelineId"))
	if err != nil {
		return failureResult("Failed to reorder stages", err)
	}

	maybePipeline, err := s.pipelinesService.GetPipelineByID(ctx, workspaceID, pipelineID)
	if err != nil {
		return failureResult("Failed to reorder stages", err)
	}
	pipeline, ok := maybePipeline.Get()
	if !ok {
		return failureResult("Failed to reorder stages",
			fmt.Errorf("pipeline %s not found", pipelineID))
	}

	stageIDs := params.StringSlice("stageIds")
	if err := checkStagePermutation(pipeline.Stages, stageIDs); err != nil {
		return failureResult("Failed to reorder stages", err)
	}

	if err := s.pipelinesService.ReorderStages(ctx, workspaceID, pipelineID, stageIDs); err != nil {
		return failureResult("Failed to reorder stages", err)
	}

	return successResult(
		fmt.Sprintf("✅ Reordered %s in %s", countNoun(len(stageIDs), "stage"), pipeline.Name), nil)
}

func (s *ActionsService) setDefaultPipeline(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	pipelineID, err := s.resolvePipeline(ctx, workspaceID, params.String("pipelineId"))
	if err != nil {
		return failureResult("Failed to set default pipeline", err)
	}

	if err := s.pipelinesService.SetDefaultPipeline(ctx, workspaceID, pipelineID); err != nil {
		return failureResult("Failed to set default pipeline", err)
	}

	return successResult("✅ Default pipeline updated", nil)
}

// Opportunity actions

func (s *ActionsService) createOpportunity(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	pipelineID, stageID, err := s.resolvePipelineAndStage(
		ctx, workspaceID, params.String("pipelineId"), params.String("stageId"))
	if err != nil {
		return failureResult("Failed to create opportunity", err)
	}

	value, _ := params.Float("value")
	input := models.OpportunityInput{
		Title:      params.String("title"),
		Value:      decimal.NewFromFloat(value),
		PipelineID: pipelineID,
		StageID:    stageID,
		ContactID:  optionalString(params, "contactId"),
		CompanyID:  optionalString(params, "companyId"),
	}

	opportunity, err := s.opportunitiesService.CreateOpportunity(ctx, workspaceID, input)
	if err != nil {
		return failureResult("Failed to create opportunity", err)
	}

	return successResult(fmt.Sprintf("✅ Opportunity created: %s", opportunity.Title), opportunity)
}

func (s *ActionsService) updateOpportunity(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	opportunity, err := s.opportunitiesService.UpdateOpportunity(
		ctx, workspaceID, params.String("id"), updatePatch(params))
	if err != nil {
		return failureResult("Failed to update opportunity", err)
	}

	return successResult(fmt.Sprintf("✅ Opportunity updated: %s", opportunity.Title), opportunity)
}

func (s *ActionsService) moveOpportunity(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	id := params.String("id")

	// Without an explicit pipeline reference the stage is resolved within
	// the opportunity's current pipeline
	pipelineRef := params.String("pipelineId")
	if pipelineRef == "" {
		maybeOpportunity, err := s.opportunitiesService.GetOpportunityByID(ctx, workspaceID, id)
		if err != nil {
			return failureResult("Failed to move opportunity", err)
		}
		opportunity, ok := maybeOpportunity.Get()
		if !ok {
			return failureResult("Failed to move opportunity",
				fmt.Errorf("opportunity %s not found", id))
		}
		pipelineRef = opportunity.PipelineID
	}

	pipelineID, stageID, err := s.resolvePipelineAndStage(
		ctx, workspaceID, pipelineRef, params.String("stageId"))
	if err != nil {
		return failureResult("Failed to move opportunity", err)
	}

	opportunity, err := s.opportunitiesService.MoveOpportunity(ctx, workspaceID, id, pipelineID, stageID)
	if err != nil {
		return failureResult("Failed to move opportunity", err)
	}

	return successResult(fmt.Sprintf("✅ Opportunity moved: %s", opportunity.Title), opportunity)
}

func (s *ActionsService) deleteOpportunity(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	if err := s.opportunitiesService.DeleteOpportunity(ctx, workspaceID, params.String("id")); err != nil {
		return failureResult("Failed to delete opportunity", err)
	}

	return successResult("✅ Opportunity deleted", nil)
}

func (s *ActionsService) bulkUpdateOpportunities(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	updates := params.Map("updates")
	outcome := runBulk(params.StringSlice("opportunityIds"), func(id string) error {
		_, err := s.opportunitiesService.UpdateOpportunity(ctx, workspaceID, id, updates)
		return err
	})

	return bulkResult("Updated", "opportunity", outcome)
}

func (s *ActionsService) bulkDeleteOpportunities(
	ctx context.Context, workspaceID string, params models.Params,
) *models.ActionResult {
	outcome := runBulk(params.StringSlice("opportunityIds"), func(id string) error {
		return s.opportunitiesService.DeleteOpportunity(ctx, workspaceID, id)
	})

	return bulkResult("Deleted", "opportunity", outcome)
}

// Helpers

func successResult(message string, data any) *models.ActionResult {
	return &models.ActionResult{Success: true, Message: message, Data: data}
}

func failureResult(message string, err error) *models.ActionResult {
	return &models.ActionResult{
		Success: false,
		Message: message,
		Error:   translateBackendError(err),
	}
}

// translateBackendError rewrites the backend error phrasings that would read
// poorly in a chat surface. Anything unrecognized passes through verbatim.
func translateBackendError(err error) string {
	message := err.Error()
	switch {
	case strings.Contains(message, "firstName"):
		return "First name is required"
	case strings.Contains(message, "lastName"):
		return "Last name is required"
	case strings.Contains(message, "no updatable fields"):
		return "No valid fields to update"
	default:
		return message
	}
}

// updatePatch extracts the field changes of an update command. The explicit
// "updates" object wins; otherwise every parameter except the target id is
// treated as a field change.
func updatePatch(params models.Params) map[string]any {
	if updates := params.Map("updates"); updates != nil {
		return updates
	}

	patch := make(map[string]any, len(params))
	for key, value := range params {
		if key == "id" {
			continue
		}
		patch[key] = value
	}
	return patch
}

func optionalString(params models.Params, key string) *string {
	value := strings.TrimSpace(params.String(key))
	if value == "" {
		return nil
	}
	return &value
}

// stageDefinitionsFromParams accepts both element shapes the assistant emits
// for create_pipeline stages: plain names and {name, color} objects. Colors
// are normalized to their canonical hex form either way.
func stageDefinitionsFromParams(params models.Params) []models.StageDefinition {
	raw, ok := params["stages"].([]any)
	if !ok {
		names := params.StringSlice("stages")
		raw = make([]any, len(names))
		for i, name := range names {
			raw[i] = name
		}
	}

	definitions := make([]models.StageDefinition, 0, len(raw))
	for _, item := range raw {
		switch value := item.(type) {
		case string:
			definitions = append(definitions, models.StageDefinition{
				Name:  value,
				Color: defaultStageColor,
			})
		case map[string]any:
			stage := models.Params(value)
			definitions = append(definitions, models.StageDefinition{
				Name:  stage.String("name"),
				Color: NormalizeStageColor(stage.String("color")),
			})
		}
	}
	return definitions
}

// checkStagePermutation verifies the requested ordering covers exactly the
// pipeline's current stages, no more and no less
func checkStagePermutation(stages []models.Stage, stageIDs []string) error {
	if len(stageIDs) != len(stages) {
		return fmt.Errorf("expected %s, got %d", countNoun(len(stages), "stage id"), len(stageIDs))
	}

	known := make(map[string]bool, len(stages))
	for _, stage := range stages {
		known[stage.ID] = true
	}

	seen := make(map[string]bool, len(stageIDs))
	for _, id := range stageIDs {
		if !core.IsValidEntityID(id) {
			return fmt.Errorf("invalid stage id: %s", id)
		}
		if !known[id] {
			return fmt.Errorf("stage %s does not belong to this pipeline", id)
		}
		if seen[id] {
			return fmt.Errorf("duplicate stage id: %s", id)
		}
		seen[id] = true
	}
	return nil
}
