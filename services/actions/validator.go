package actions

import (
	"fmt"
	"regexp"
	"strings"

	"crmbackend/models"
)

// emailRegex is a deliberately permissive local@domain.tld shape check - the
// goal is to catch obviously broken addresses, not to implement RFC 5322
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateCommand checks required-field presence and field-format constraints
// for one command. It performs no I/O and is deterministic: the same command
// always yields the same result. Valid is true iff Errors is empty.
func ValidateCommand(command *models.Command) models.ValidationResult {
	errors := []string{}
	params := command.Params

	switch command.Type {
	case models.ActionCreateContact:
		requireNonBlank(params, "firstName", "First name is required", &errors)
		requireNonBlank(params, "lastName", "Last name is required", &errors)

	case models.ActionUpdateContact, models.ActionDeleteContact:
		requireNonBlank(params, "id", "Contact id is required", &errors)

	case models.ActionBulkUpdateContacts:
		requireList(params, "contactIds", "At least one contact id is required", &errors)
		if len(params.Map("updates")) == 0 {
			errors = append(errors, "Updates object is required")
		}

	case models.ActionBulkDeleteContacts:
		requireList(params, "contactIds", "At least one contact id is required", &errors)

	case models.ActionLinkContactToCompany:
		requireNonBlank(params, "contactId", "Contact id is required", &errors)
		requireNonBlank(params, "companyId", "Company id is required", &errors)

	case models.ActionCreateCompany:
		requireNonBlank(params, "name", "Company name is required", &errors)

	case models.ActionUpdateCompany, models.ActionDeleteCompany:
		requireNonBlank(params, "id", "Company id is required", &errors)

	case models.ActionSendEmail:
		requireNonBlank(params, "to", "Recipient is required", &errors)
		requireNonBlank(params, "subject", "Subject is required", &errors)
		requireNonBlank(params, "body", "Body is required", &errors)

	case models.ActionSendBulkEmail:
		requireList(params, "contactIds", "At least one contact id is required", &errors)
		requireNonBlank(params, "subject", "Subject is required", &errors)
		requireNonBlank(params, "body", "Body is required", &errors)

	case models.ActionExportContacts, models.ActionExportCompanies,
		models.ActionAnalyzeContacts, models.ActionGetContactStats:
		// No required parameters

	case models.ActionCreatePipeline:
		requireNonBlank(params, "name", "Pipeline name is required", &errors)
		if stageDefinitionCount(params) == 0 {
			errors = append(errors, "At least one stage is required")
		}

	case models.ActionUpdatePipeline, models.ActionDeletePipeline, models.ActionSetDefaultPipeline:
		requireNonBlank(params, "pipelineId", "Pipeline id is required", &errors)

	case models.ActionAddStage:
		requireNonBlank(params, "pipelineId", "Pipeline id is required", &errors)
		requireNonBlank(params, "stageName", "Stage name is required", &errors)

	case models.ActionUpdateStage, models.ActionDeleteStage:
		requireNonBlank(params, "pipelineId", "Pipeline id is required", &errors)
		requireNonBlank(params, "stageId", "Stage id is required", &errors)

	case models.ActionReorderStages:
		requireNonBlank(params, "pipelineId", "Pipeline id is required", &errors)
		requireList(params, "stageIds", "At least one stage id is required", &errors)

	case models.ActionCreateOpportunity:
		requireNonBlank(params, "title", "Opportunity title is required", &errors)
		if _, ok := params.Float("value"); !ok {
			errors = append(errors, "Opportunity value must be a number")
		}
		requireNonBlank(params, "pipelineId", "Pipeline id is required", &errors)
		requireNonBlank(params, "stageId", "Stage id is required", &errors)

	case models.ActionUpdateOpportunity, models.ActionDeleteOpportunity:
		requireNonBlank(params, "id", "Opportunity id is required", &errors)

	case models.ActionMoveOpportunity:
		requireNonBlank(params, "id", "Opportunity id is required", &errors)
		requireNonBlank(params, "stageId", "Stage id is required", &errors)

	case models.ActionBulkUpdateOpportunities:
		requireList(params, "opportunityIds", "At least one opportunity id is required", &errors)
		if len(params.Map("updates")) == 0 {
			errors = append(errors, "Updates object is required")
		}

	case models.ActionBulkDeleteOpportunities:
		requireList(params, "opportunityIds", "At least one opportunity id is required", &errors)

	default:
		errors = append(errors, fmt.Sprintf("Unknown action type: %s", command.Type))
	}

	// Email-shaped fields are format checked independently of the presence
	// checks above
	for _, key := range []string{"email", "to"} {
		value := strings.TrimSpace(params.String(key))
		if value != "" && !emailRegex.MatchString(value) {
			errors = append(errors, fmt.Sprintf("Invalid email address: %s", value))
		}
	}

	return models.ValidationResult{Valid: len(errors) == 0, Errors: errors}
}

func requireNonBlank(params models.Params, key, message string, errors *[]string) {
	if strings.TrimSpace(params.String(key)) == "" {
		*errors = append(*errors, message)
	}
}

func requireList(params models.Params, key, message string, errors *[]string) {
	if len(params.StringSlice(key)) == 0 {
		*errors = append(*errors, message)
	}
}
