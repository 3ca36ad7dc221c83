package actions

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crmbackend/core"
	"crmbackend/models"
)

func TestResolvePipeline(t *testing.T) {
	workspaceID := core.NewID("ws")
	ctx := context.Background()

	t.Run("CanonicalIDShortCircuitsTheLookup", func(t *testing.T) {
		service, mocks := newTestService()
		pipelineID := core.NewEntityID()

		resolved, err := service.resolvePipeline(ctx, workspaceID, pipelineID)

		require.NoError(t, err)
		assert.Equal(t, pipelineID, resolved)
		mocks.pipelines.AssertNotCalled(t, "ListPipelines", mock.Anything, mock.Anything)
	})

	t.Run("ExactMatchWinsOverSubstringMatch", func(t *testing.T) {
		service, mocks := newTestService()
		salesQ2 := testPipeline(workspaceID, "Sales Q2", "Lead")
		sales := testPipeline(workspaceID, "Sales", "Lead")
		mocks.pipelines.On("ListPipelines", mock.Anything, workspaceID).
			Return([]*models.Pipeline{salesQ2, sales}, nil)

		resolved, err := service.resolvePipeline(ctx, workspaceID, "sales")

		require.NoError(t, err)
		assert.Equal(t, sales.ID, resolved)
	})

	t.Run("SubstringMatchesInEitherDirection", func(t *testing.T) {
		service, mocks := newTestService()
		pipeline := testPipeline(workspaceID, "Enterprise Sales", "Lead")
		mocks.pipelines.On("ListPipelines", mock.Anything, workspaceID).
			Return([]*models.Pipeline{pipeline}, nil)

		resolved, err := service.resolvePipeline(ctx, workspaceID, "enterprise")

		require.NoError(t, err)
		assert.Equal(t, pipeline.ID, resolved)
	})

	t.Run("MissListsAvailablePipelines", func(t *testing.T) {
		service, mocks := newTestService()
		mocks.pipelines.On("ListPipelines", mock.Anything, workspaceID).
			Return([]*models.Pipeline{
				testPipeline(workspaceID, "Sales", "Lead"),
				testPipeline(workspaceID, "Renewals", "Lead"),
			}, nil)

		_, err := service.resolvePipeline(ctx, workspaceID, "Marketing")

		require.Error(t, err)
		assert.Contains(t, err.Error(), `pipeline "Marketing" not found`)
		assert.Contains(t, err.Error(), "Sales, Renewals")
	})

	t.Run("ListFailurePropagates", func(t *testing.T) {
		service, mocks := newTestService()
		mocks.pipelines.On("ListPipelines", mock.Anything, workspaceID).
			Return(nil, fmt.Errorf("connection refused"))

		_, err := service.resolvePipeline(ctx, workspaceID, "Sales")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch pipelines")
	})
}

func TestResolvePipelineAndStage(t *testing.T) {
	workspaceID := core.NewID("ws")
	ctx := context.Background()

	t.Run("BothIDsSkipTheLookupEntirely", func(t *testing.T) {
		service, mocks := newTestService()
		pipelineID := core.NewEntityID()
		stageID := core.NewEntityID()

		resolvedPipeline, resolvedStage, err := service.resolvePipelineAndStage(
			ctx, workspaceID, pipelineID, stageID)

		require.NoError(t, err)
		assert.Equal(t, pipelineID, resolvedPipeline)
		assert.Equal(t, stageID, resolvedStage)
		mocks.pipelines.AssertNotCalled(t, "ListPipelines", mock.Anything, mock.Anything)
	})

	t.Run("OneIDDoesNotImplyTheOther", func(t *testing.T) {
		service, mocks := newTestService()
		pipeline := testPipeline(workspaceID, "Sales", "Lead", "Won")
		mocks.pipelines.On("ListPipelines", mock.Anything, workspaceID).
			Return([]*models.Pipeline{pipeline}, nil)

		resolvedPipeline, resolvedStage, err := service.resolvePipelineAndStage(
			ctx, workspaceID, pipeline.ID, "won")

		require.NoError(t, err)
		assert.Equal(t, pipeline.ID, resolvedPipeline)
		assert.Equal(t, pipeline.Stages[1].ID, resolvedStage)
		mocks.pipelines.AssertExpectations(t)
	})

	t.Run("StageNameResolvesWithinMatchedPipeline", func(t *testing.T) {
		service, mocks := newTestService()
		pipeline := testPipeline(workspaceID, "Sales", "Lead", "Negotiation", "Won")
		mocks.pipelines.On("ListPipelines", mock.Anything, workspaceID).
			Return([]*models.Pipeline{pipeline}, nil)

		resolvedPipeline, resolvedStage, err := service.resolvePipelineAndStage(
			ctx, workspaceID, "Sales", "Negotiation")

		require.NoError(t, err)
		assert.Equal(t, pipeline.ID, resolvedPipeline)
		assert.Equal(t, pipeline.Stages[1].ID, resolvedStage)
	})

	t.Run("UnmatchedStageFallsBackToFirstStage", func(t *testing.T) {
		service, mocks := newTestService()
		pipeline := testPipeline(workspaceID, "Sales", "Lead", "Won")
		mocks.pipelines.On("ListPipelines", mock.Anything, workspaceID).
			Return([]*models.Pipeline{pipeline}, nil)

		_, resolvedStage, err := service.resolvePipelineAndStage(
			ctx, workspaceID, "Sales", "Quarantine")

		require.NoError(t, err)
		assert.Equal(t, pipeline.Stages[0].ID, resolvedStage)
	})

	t.Run("PipelineWithNoStagesIsAnError", func(t *testing.T) {
		service, mocks := newTestService()
		pipeline := testPipeline(workspaceID, "Empty")
		mocks.pipelines.On("ListPipelines", mock.Anything, workspaceID).
			Return([]*models.Pipeline{pipeline}, nil)

		_, _, err := service.resolvePipelineAndStage(ctx, workspaceID, "Empty", "Lead")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "has no stages")
	})
}
