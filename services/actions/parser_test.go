package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmbackend/models"
)

func TestParseActionBlock(t *testing.T) {
	t.Run("ParsesEmbeddedActionBlock", func(t *testing.T) {
		text := "Sure, creating that contact now.\n\n" +
			"```action\n" +
			`{"action": "create_contact", "params": {"firstName": "Ada", "lastName": "Lovelace"}}` +
			"\n```\n\nDone!"

		command, err := ParseActionBlock(text)

		require.NoError(t, err)
		require.NotNil(t, command)
		assert.Equal(t, models.ActionCreateContact, command.Type)
		assert.Equal(t, "Ada", command.Params.String("firstName"))
		assert.Equal(t, "Lovelace", command.Params.String("lastName"))
		assert.False(t, command.RequiresConfirmation)
		assert.Equal(t, "Create contact Ada Lovelace", command.Description)
	})

	t.Run("ReturnsNilNilWhenNoBlockPresent", func(t *testing.T) {
		command, err := ParseActionBlock("Just a normal chat reply with no commands.")

		assert.NoError(t, err)
		assert.Nil(t, command)
	})

	t.Run("IgnoresNonActionFencedBlocks", func(t *testing.T) {
		text := "Here is some code:\n```go\nfmt.Println(\"hi\")\n```\n"

		command, err := ParseActionBlock(text)

		assert.NoError(t, err)
		assert.Nil(t, command)
	})

	t.Run("ReturnsErrorForMalformedJSON", func(t *testing.T) {
		text := "```action\n{\"action\": \"create_contact\", \"params\": {\n```"

		command, err := ParseActionBlock(text)

		assert.Error(t, err)
		assert.Nil(t, command)
	})

	t.Run("ReturnsErrorWhenActionNameMissing", func(t *testing.T) {
		text := "```action\n{\"params\": {\"firstName\": \"Ada\"}}\n```"

		command, err := ParseActionBlock(text)

		assert.Error(t, err)
		assert.Nil(t, command)
	})

	t.Run("OnlyFirstBlockIsParsed", func(t *testing.T) {
		text := "```action\n{\"action\": \"export_contacts\"}\n```\n" +
			"```action\n{\"action\": \"export_companies\"}\n```"

		command, err := ParseActionBlock(text)

		require.NoError(t, err)
		require.NotNil(t, command)
		assert.Equal(t, models.ActionExportContacts, command.Type)
	})

	t.Run("MissingParamsDefaultsToEmptyBag", func(t *testing.T) {
		command, err := ParseActionBlock("```action\n{\"action\": \"analyze_contacts\"}\n```")

		require.NoError(t, err)
		require.NotNil(t, command)
		assert.NotNil(t, command.Params)
		assert.Empty(t, command.Params)
	})

	t.Run("FlagsDestructiveActions", func(t *testing.T) {
		text := "```action\n{\"action\": \"delete_contact\", \"params\": {\"id\": \"abc\"}}\n```"

		command, err := ParseActionBlock(text)

		require.NoError(t, err)
		require.NotNil(t, command)
		assert.True(t, command.RequiresConfirmation)
	})
}

func TestDescribeCommand(t *testing.T) {
	t.Run("BulkDescriptionsCountTargets", func(t *testing.T) {
		params := models.Params{"contactIds": []any{"a", "b", "c"}}
		assert.Equal(t, "Delete 3 contacts",
			DescribeCommand(models.ActionBulkDeleteContacts, params))
	})

	t.Run("SingularNounForOneTarget", func(t *testing.T) {
		params := models.Params{"opportunityIds": []any{"a"}}
		assert.Equal(t, "Update 1 opportunity",
			DescribeCommand(models.ActionBulkUpdateOpportunities, params))
	})

	t.Run("UnknownTypeGetsGenericPhrase", func(t *testing.T) {
		assert.Equal(t, "Execute: defragment moon base",
			DescribeCommand(models.ActionType("defragment_moon_base"), models.Params{}))
	})
}

func TestActionRequiresConfirmation(t *testing.T) {
	t.Run("AllDeleteActionsAreDestructive", func(t *testing.T) {
		destructive := []models.ActionType{
			models.ActionDeleteContact,
			models.ActionBulkDeleteContacts,
			models.ActionDeleteCompany,
			models.ActionDeletePipeline,
			models.ActionDeleteStage,
			models.ActionDeleteOpportunity,
			models.ActionBulkDeleteOpportunities,
		}
		for _, actionType := range destructive {
			assert.True(t, models.ActionRequiresConfirmation(actionType), string(actionType))
		}
	})

	t.Run("MutationsAndReadsAreNot", func(t *testing.T) {
		benign := []models.ActionType{
			models.ActionCreateContact,
			models.ActionBulkUpdateContacts,
			models.ActionSendBulkEmail,
			models.ActionExportContacts,
			models.ActionReorderStages,
		}
		for _, actionType := range benign {
			assert.False(t, models.ActionRequiresConfirmation(actionType), string(actionType))
		}
	})

	t.Run("DependsOnTypeAloneNotParams", func(t *testing.T) {
		// The same params cannot make a non-destructive type destructive
		text := "```action\n{\"action\": \"update_contact\", \"params\": {\"id\": \"x\", \"status\": \"deleted\"}}\n```"
		command, err := ParseActionBlock(text)
		require.NoError(t, err)
		assert.False(t, command.RequiresConfirmation)
	})
}
