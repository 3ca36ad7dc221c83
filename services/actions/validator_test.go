package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crmbackend/models"
)

// minimalValidParams holds, for every action type in the vocabulary, a
// parameter bag that passes validation
var minimalValidParams = map[models.ActionType]models.Params{
	models.ActionCreateContact:        {"firstName": "Ada", "lastName": "Lovelace"},
	models.ActionUpdateContact:        {"id": "c1"},
	models.ActionDeleteContact:        {"id": "c1"},
	models.ActionBulkUpdateContacts:   {"contactIds": []any{"c1"}, "updates": map[string]any{"status": "won"}},
	models.ActionBulkDeleteContacts:   {"contactIds": []any{"c1"}},
	models.ActionLinkContactToCompany: {"contactId": "c1", "companyId": "co1"},
	models.ActionCreateCompany:        {"name": "Acme"},
	models.ActionUpdateCompany:        {"id": "co1"},
	models.ActionDeleteCompany:        {"id": "co1"},
	models.ActionSendEmail:            {"to": "ada@example.com", "subject": "Hi", "body": "Hello"},
	models.ActionSendBulkEmail:        {"contactIds": []any{"c1"}, "subject": "Hi", "body": "Hello"},
	models.ActionExportContacts:       {},
	models.ActionExportCompanies:      {},
	models.ActionAnalyzeContacts:      {},
	models.ActionGetContactStats:      {},
	models.ActionCreatePipeline:       {"name": "Sales", "stages": []any{"Lead", "Won"}},
	models.ActionUpdatePipeline:       {"pipelineId": "p1", "name": "Sales EU"},
	models.ActionDeletePipeline:       {"pipelineId": "p1"},
	models.ActionAddStage:             {"pipelineId": "p1", "stageName": "Negotiation"},
	models.ActionUpdateStage:          {"pipelineId": "p1", "stageId": "s1"},
	models.ActionDeleteStage:          {"pipelineId": "p1", "stageId": "s1"},
	models.ActionReorderStages:        {"pipelineId": "p1", "stageIds": []any{"s1", "s2"}},
	models.ActionSetDefaultPipeline:   {"pipelineId": "p1"},
	models.ActionCreateOpportunity:    {"title": "Big deal", "value": 5000.0, "pipelineId": "p1", "stageId": "s1"},
	models.ActionUpdateOpportunity:    {"id": "o1"},
	models.ActionMoveOpportunity:      {"id": "o1", "stageId": "s2"},
	models.ActionDeleteOpportunity:    {"id": "o1"},
	models.ActionBulkUpdateOpportunities: {
		"opportunityIds": []any{"o1"}, "updates": map[string]any{"status": "won"},
	},
	models.ActionBulkDeleteOpportunities: {"opportunityIds": []any{"o1"}},
}

func TestValidateCommand(t *testing.T) {
	t.Run("EveryActionTypeHasAValidShape", func(t *testing.T) {
		for _, actionType := range models.AllActionTypes {
			params, ok := minimalValidParams[actionType]
			assert.True(t, ok, "missing minimal params for %s", actionType)

			result := ValidateCommand(&models.Command{Type: actionType, Params: params})
			assert.True(t, result.Valid, "%s: %v", actionType, result.Errors)
			assert.Empty(t, result.Errors, string(actionType))
		}
	})

	t.Run("UnknownActionTypeIsInvalid", func(t *testing.T) {
		result := ValidateCommand(&models.Command{
			Type:   models.ActionType("launch_rocket"),
			Params: models.Params{},
		})

		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Unknown action type: launch_rocket")
	})

	t.Run("MissingRequiredFieldsAreAllReported", func(t *testing.T) {
		result := ValidateCommand(&models.Command{
			Type:   models.ActionCreateContact,
			Params: models.Params{},
		})

		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "First name is required")
		assert.Contains(t, result.Errors, "Last name is required")
	})

	t.Run("BlankStringsCountAsMissing", func(t *testing.T) {
		result := ValidateCommand(&models.Command{
			Type:   models.ActionCreateContact,
			Params: models.Params{"firstName": "   ", "lastName": "Lovelace"},
		})

		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "First name is required")
	})

	t.Run("EmptyTargetListIsInvalid", func(t *testing.T) {
		result := ValidateCommand(&models.Command{
			Type:   models.ActionBulkDeleteContacts,
			Params: models.Params{"contactIds": []any{}},
		})

		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "At least one contact id is required")
	})

	t.Run("BulkUpdateRequiresUpdatesObject", func(t *testing.T) {
		result := ValidateCommand(&models.Command{
			Type:   models.ActionBulkUpdateContacts,
			Params: models.Params{"contactIds": []any{"c1"}},
		})

		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Updates object is required")
	})

	t.Run("OpportunityValueMustBeNumeric", func(t *testing.T) {
		result := ValidateCommand(&models.Command{
			Type: models.ActionCreateOpportunity,
			Params: models.Params{
				"title": "Deal", "value": "5000", "pipelineId": "p1", "stageId": "s1",
			},
		})

		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Opportunity value must be a number")
	})

	t.Run("MalformedEmailAddressIsRejected", func(t *testing.T) {
		result := ValidateCommand(&models.Command{
			Type:   models.ActionSendEmail,
			Params: models.Params{"to": "not-an-email", "subject": "Hi", "body": "Hello"},
		})

		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Invalid email address: not-an-email")
	})

	t.Run("EmailFormatCheckedOnCreateContactToo", func(t *testing.T) {
		result := ValidateCommand(&models.Command{
			Type:   models.ActionCreateContact,
			Params: models.Params{"firstName": "Ada", "lastName": "Lovelace", "email": "ada@@broken"},
		})

		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Invalid email address: ada@@broken")
	})

	t.Run("CreatePipelineNeedsAtLeastOneStage", func(t *testing.T) {
		result := ValidateCommand(&models.Command{
			Type:   models.ActionCreatePipeline,
			Params: models.Params{"name": "Sales", "stages": []any{}},
		})

		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "At least one stage is required")
	})

	t.Run("ValidationIsDeterministic", func(t *testing.T) {
		command := &models.Command{
			Type:   models.ActionSendEmail,
			Params: models.Params{"to": "bad address", "body": "Hello"},
		}

		first := ValidateCommand(command)
		second := ValidateCommand(command)

		assert.Equal(t, first, second)
	})
}
