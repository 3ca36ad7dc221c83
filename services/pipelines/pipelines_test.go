package pipelines

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmbackend/db"
	"crmbackend/models"
	"crmbackend/testutils"
)

func setupTestService(t *testing.T) (*PipelinesService, *db.PostgresPipelinesRepository, string) {
	cfg, err := testutils.LoadTestConfig()
	require.NoError(t, err, "Failed to load test config")

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	require.NoError(t, err, "Failed to connect to database")
	t.Cleanup(func() { dbConn.Close() })

	repo := db.NewPostgresPipelinesRepository(dbConn, cfg.DatabaseSchema)
	return NewPipelinesService(repo), repo, testutils.NewTestWorkspaceID()
}

func TestPipelinesService(t *testing.T) {
	service, repo, workspaceID := setupTestService(t)
	ctx := context.Background()

	t.Run("CreateEmbedsStagesInOrder", func(t *testing.T) {
		pipeline, err := service.CreatePipeline(ctx, workspaceID, "Sales", []models.StageDefinition{
			{Name: "Lead", Color: "#3b82f6"},
			{Name: "Won", Color: "#22c55e"},
		})
		require.NoError(t, err)
		require.Len(t, pipeline.Stages, 2)
		assert.Equal(t, "Lead", pipeline.Stages[0].Name)
		assert.Equal(t, 0, pipeline.Stages[0].Position)
		assert.Equal(t, "Won", pipeline.Stages[1].Name)
		assert.Equal(t, 1, pipeline.Stages[1].Position)
	})

	t.Run("AddStageAppendsAtTheEnd", func(t *testing.T) {
		pipeline := testutils.CreateTestPipeline(t, repo, workspaceID)

		stage, err := service.AddStage(ctx, workspaceID, pipeline.ID, models.StageDefinition{
			Name:  "Closed Lost",
			Color: "#ef4444",
		})
		require.NoError(t, err)
		assert.Equal(t, len(pipeline.Stages), stage.Position)
	})

	t.Run("ReorderStagesPersistsNewPositions", func(t *testing.T) {
		pipeline := testutils.CreateTestPipeline(t, repo, workspaceID)
		require.Len(t, pipeline.Stages, 3)

		reordered := []string{
			pipeline.Stages[2].ID,
			pipeline.Stages[0].ID,
			pipeline.Stages[1].ID,
		}
		err := service.ReorderStages(ctx, workspaceID, pipeline.ID, reordered)
		require.NoError(t, err)

		maybePipeline, err := service.GetPipelineByID(ctx, workspaceID, pipeline.ID)
		require.NoError(t, err)
		refreshed, ok := maybePipeline.Get()
		require.True(t, ok)
		assert.Equal(t, reordered[0], refreshed.Stages[0].ID)
		assert.Equal(t, reordered[1], refreshed.Stages[1].ID)
		assert.Equal(t, reordered[2], refreshed.Stages[2].ID)
	})

	t.Run("SetDefaultPipelineIsExclusive", func(t *testing.T) {
		first := testutils.CreateTestPipeline(t, repo, workspaceID)
		second := testutils.CreateTestPipeline(t, repo, workspaceID)

		require.NoError(t, service.SetDefaultPipeline(ctx, workspaceID, first.ID))
		require.NoError(t, service.SetDefaultPipeline(ctx, workspaceID, second.ID))

		pipelines, err := service.ListPipelines(ctx, workspaceID)
		require.NoError(t, err)

		defaults := 0
		for _, pipeline := range pipelines {
			if pipeline.IsDefault {
				defaults++
				assert.Equal(t, second.ID, pipeline.ID)
			}
		}
		assert.Equal(t, 1, defaults)
	})

	t.Run("DeletePipelineRemovesItsStages", func(t *testing.T) {
		pipeline := testutils.CreateTestPipeline(t, repo, workspaceID)

		require.NoError(t, service.DeletePipeline(ctx, workspaceID, pipeline.ID))

		maybePipeline, err := service.GetPipelineByID(ctx, workspaceID, pipeline.ID)
		require.NoError(t, err)
		assert.True(t, maybePipeline.IsAbsent())
	})
}
