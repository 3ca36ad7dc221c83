package handlers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crmbackend/clients/anthropic"
	"crmbackend/core"
	"crmbackend/models"
	"crmbackend/services/actions"
	"crmbackend/services/companies"
	"crmbackend/services/contacts"
	"crmbackend/services/email"
	"crmbackend/services/opportunities"
	"crmbackend/services/pipelines"
)

type handlerFixture struct {
	handler   *AssistantAPIHandler
	assistant *anthropic.MockAssistantClient
	contacts  *contacts.MockContactsService
}

func newHandlerFixture() *handlerFixture {
	assistantClient := anthropic.NewMockAssistantClient()
	contactsMock := new(contacts.MockContactsService)
	actionsService := actions.NewActionsService(
		contactsMock,
		new(companies.MockCompaniesService),
		new(pipelines.MockPipelinesService),
		new(opportunities.MockOpportunitiesService),
		new(email.MockEmailService),
		30*time.Second)

	return &handlerFixture{
		handler:   NewAssistantAPIHandler(assistantClient, actionsService),
		assistant: assistantClient,
		contacts:  contactsMock,
	}
}

func TestChat(t *testing.T) {
	workspaceID := core.NewID("ws")
	ctx := context.Background()

	t.Run("PlainReplyCarriesNoResult", func(t *testing.T) {
		fixture := newHandlerFixture()
		fixture.assistant.WithReply("You have 12 contacts in the lead stage.")

		outcome, err := fixture.handler.Chat(ctx, workspaceID, "how many leads?", nil)

		require.NoError(t, err)
		assert.Equal(t, "You have 12 contacts in the lead stage.", outcome.Reply)
		assert.Nil(t, outcome.Result)
		assert.Nil(t, outcome.PendingCommand)
	})

	t.Run("NonDestructiveActionExecutesImmediately", func(t *testing.T) {
		fixture := newHandlerFixture()
		created := &models.Contact{FirstName: "Ada", LastName: "Lovelace"}
		fixture.contacts.On("CreateContact", mock.Anything, workspaceID, mock.Anything).
			Return(created, nil)
		fixture.assistant.WithReply("Creating now.\n```action\n" +
			`{"action": "create_contact", "params": {"firstName": "Ada", "lastName": "Lovelace"}}` +
			"\n```")

		outcome, err := fixture.handler.Chat(ctx, workspaceID, "add Ada Lovelace", nil)

		require.NoError(t, err)
		require.NotNil(t, outcome.Result)
		assert.True(t, outcome.Result.Success)
		assert.Nil(t, outcome.PendingCommand)
		fixture.contacts.AssertExpectations(t)
	})

	t.Run("DestructiveActionIsHeldForConfirmation", func(t *testing.T) {
		fixture := newHandlerFixture()
		fixture.assistant.WithReply("Deleting.\n```action\n" +
			`{"action": "delete_contact", "params": {"id": "c1"}}` +
			"\n```")

		outcome, err := fixture.handler.Chat(ctx, workspaceID, "delete that contact", nil)

		require.NoError(t, err)
		assert.Nil(t, outcome.Result)
		require.NotNil(t, outcome.PendingCommand)
		assert.Equal(t, models.ActionDeleteContact, outcome.PendingCommand.Type)
		assert.Equal(t, "Delete contact c1", outcome.PendingCommand.Description)
		fixture.contacts.AssertNotCalled(t, "DeleteContact",
			mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MalformedBlockIsReportedNotFatal", func(t *testing.T) {
		fixture := newHandlerFixture()
		fixture.assistant.WithReply("```action\n{broken\n```")

		outcome, err := fixture.handler.Chat(ctx, workspaceID, "do something", nil)

		require.NoError(t, err)
		require.NotNil(t, outcome.Result)
		assert.False(t, outcome.Result.Success)
		assert.Equal(t, "Failed to parse action", outcome.Result.Message)
	})
}

func TestExecuteCommand(t *testing.T) {
	workspaceID := core.NewID("ws")
	ctx := context.Background()

	t.Run("UnconfirmedDestructiveCommandIsRefused", func(t *testing.T) {
		fixture := newHandlerFixture()
		command := &models.Command{
			Type:                 models.ActionDeleteContact,
			Params:               models.Params{"id": "c1"},
			RequiresConfirmation: true,
		}

		result, err := fixture.handler.ExecuteCommand(ctx, workspaceID, command, false)

		assert.Error(t, err)
		assert.Nil(t, result)
		fixture.contacts.AssertNotCalled(t, "DeleteContact",
			mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ForgedConfirmationFlagIsIgnored", func(t *testing.T) {
		fixture := newHandlerFixture()

		// A client can send any flag value it likes; the gate must be
		// recomputed from the command type
		var req ExecuteRequest
		payload := `{"command": {"type": "delete_contact", "params": {"id": "c1"},` +
			` "requires_confirmation": false}, "confirmed": false}`
		require.NoError(t, json.Unmarshal([]byte(payload), &req))
		require.False(t, req.Command.RequiresConfirmation)

		result, err := fixture.handler.ExecuteCommand(ctx, workspaceID, req.Command, false)

		assert.Error(t, err)
		assert.Nil(t, result)
		fixture.contacts.AssertNotCalled(t, "DeleteContact",
			mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ConfirmedDestructiveCommandExecutes", func(t *testing.T) {
		fixture := newHandlerFixture()
		fixture.contacts.On("DeleteContact", mock.Anything, workspaceID, "c1").Return(nil)
		command := &models.Command{
			Type:                 models.ActionDeleteContact,
			Params:               models.Params{"id": "c1"},
			RequiresConfirmation: true,
		}

		result, err := fixture.handler.ExecuteCommand(ctx, workspaceID, command, true)

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "✅ Contact deleted", result.Message)
		fixture.contacts.AssertExpectations(t)
	})
}
