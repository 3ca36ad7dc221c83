package actions

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmbackend/models"
)

func TestRunBulk(t *testing.T) {
	t.Run("CountsAlwaysSumToInputSize", func(t *testing.T) {
		ids := []string{"a", "b", "c", "d", "e"}
		outcome := runBulk(ids, func(id string) error {
			if id == "b" || id == "d" {
				return fmt.Errorf("boom")
			}
			return nil
		})

		assert.Equal(t, 3, outcome.SuccessCount)
		assert.Equal(t, 2, outcome.FailCount)
		assert.Equal(t, len(ids), outcome.SuccessCount+outcome.FailCount)
	})

	t.Run("ItemsKeepInputOrder", func(t *testing.T) {
		ids := []string{"x", "y", "z"}
		outcome := runBulk(ids, func(id string) error { return nil })

		require.Len(t, outcome.Items, 3)
		for i, item := range outcome.Items {
			assert.Equal(t, ids[i], item.ID)
			assert.True(t, item.Success)
		}
	})

	t.Run("FailedItemsCarryTheirError", func(t *testing.T) {
		outcome := runBulk([]string{"a"}, func(id string) error {
			return fmt.Errorf("contact %s not found", id)
		})

		require.Len(t, outcome.Items, 1)
		assert.False(t, outcome.Items[0].Success)
		assert.Equal(t, "contact a not found", outcome.Items[0].Error)
	})

	t.Run("OneFailureNeverStopsTheRest", func(t *testing.T) {
		var mu sync.Mutex
		called := map[string]bool{}

		outcome := runBulk([]string{"a", "b", "c"}, func(id string) error {
			mu.Lock()
			called[id] = true
			mu.Unlock()
			if id == "a" {
				return fmt.Errorf("boom")
			}
			return nil
		})

		assert.Len(t, called, 3)
		assert.Equal(t, 2, outcome.SuccessCount)
	})

	t.Run("PanickingOpCountsAsFailedItem", func(t *testing.T) {
		outcome := runBulk([]string{"a", "b"}, func(id string) error {
			if id == "a" {
				panic("nil dereference somewhere deep")
			}
			return nil
		})

		assert.Equal(t, 1, outcome.SuccessCount)
		assert.Equal(t, 1, outcome.FailCount)
		assert.Contains(t, outcome.Items[0].Error, "panic")
	})

	t.Run("EmptyInputSettlesImmediately", func(t *testing.T) {
		outcome := runBulk(nil, func(id string) error { return nil })

		assert.Equal(t, 0, outcome.SuccessCount)
		assert.Equal(t, 0, outcome.FailCount)
		assert.Empty(t, outcome.Items)
	})

	t.Run("ConcurrencyStaysBounded", func(t *testing.T) {
		var mu sync.Mutex
		inFlight, peak := 0, 0

		ids := make([]string, 50)
		for i := range ids {
			ids[i] = fmt.Sprintf("id-%d", i)
		}
		runBulk(ids, func(id string) error {
			mu.Lock()
			inFlight++
			if inFlight > peak {
				peak = inFlight
			}
			mu.Unlock()
			defer func() {
				mu.Lock()
				inFlight--
				mu.Unlock()
			}()
			return nil
		})

		assert.LessOrEqual(t, peak, bulkConcurrency)
	})
}

func TestBulkMessage(t *testing.T) {
	t.Run("AllSucceeded", func(t *testing.T) {
		outcome := models.BulkOutcome{SuccessCount: 4}
		assert.Equal(t, "Updated 4 contacts", bulkMessage("Updated", "contact", outcome))
	})

	t.Run("PartialFailure", func(t *testing.T) {
		outcome := models.BulkOutcome{SuccessCount: 4, FailCount: 1}
		assert.Equal(t, "Updated 4 contacts, 1 failed", bulkMessage("Updated", "contact", outcome))
	})

	t.Run("SingularAndIrregularPlurals", func(t *testing.T) {
		assert.Equal(t, "Deleted 1 opportunity",
			bulkMessage("Deleted", "opportunity", models.BulkOutcome{SuccessCount: 1}))
		assert.Equal(t, "Deleted 2 opportunities",
			bulkMessage("Deleted", "opportunity", models.BulkOutcome{SuccessCount: 2}))
	})
}

func TestBulkResult(t *testing.T) {
	t.Run("CleanRunIsSuccessWithCheckmark", func(t *testing.T) {
		result := bulkResult("Deleted", "contact", models.BulkOutcome{SuccessCount: 3})

		assert.True(t, result.Success)
		assert.Equal(t, "✅ Deleted 3 contacts", result.Message)
	})

	t.Run("AnyFailureMakesTheWholeActionFail", func(t *testing.T) {
		result := bulkResult("Deleted", "contact",
			models.BulkOutcome{SuccessCount: 9, FailCount: 1})

		assert.False(t, result.Success)
		assert.Equal(t, "Deleted 9 contacts, 1 failed", result.Message)
	})
}
