package actions

import (
	"fmt"
	"sync"

	"github.com/gammazero/workerpool"

	"crmbackend/models"
)

// bulkConcurrency bounds the number of in-flight CRUD calls per bulk action
const bulkConcurrency = 8

// runBulk applies op to every target ID concurrently and independently.
// Every call settles regardless of the others: one failure never cancels or
// blocks the rest of the batch. A panicking op counts as a failed item.
// SuccessCount + FailCount always equals len(ids).
func runBulk(ids []string, op func(id string) error) models.BulkOutcome {
	pool := workerpool.New(bulkConcurrency)
	items := make([]models.BulkItemOutcome, len(ids))
	var mu sync.Mutex

	for i, id := range ids {
		i, id := i, id
		pool.Submit(func() {
			outcome := models.BulkItemOutcome{ID: id, Success: true}
			if err := runBulkOp(op, id); err != nil {
				outcome.Success = false
				outcome.Error = err.Error()
			}
			mu.Lock()
			items[i] = outcome
			mu.Unlock()
		})
	}
	pool.StopWait()

	successCount := 0
	for _, item := range items {
		if item.Success {
			successCount++
		}
	}

	return models.BulkOutcome{
		SuccessCount: successCount,
		FailCount:    len(ids) - successCount,
		Items:        items,
	}
}

func runBulkOp(op func(id string) error, id string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return op(id)
}

// bulkMessage renders the natural language outcome of a bulk action, e.g.
// "Updated 4 contacts, 1 failed" or "Deleted 1 contact"
func bulkMessage(verb, noun string, outcome models.BulkOutcome) string {
	message := fmt.Sprintf("%s %s", verb, countNoun(outcome.SuccessCount, noun))
	if outcome.FailCount > 0 {
		message = fmt.Sprintf("%s, %d failed", message, outcome.FailCount)
	}
	return message
}

// bulkResult assembles the uniform ActionResult for a settled bulk action.
// Overall success requires every item to have succeeded.
func bulkResult(verb, noun string, outcome models.BulkOutcome) *models.ActionResult {
	message := bulkMessage(verb, noun, outcome)
	if outcome.FailCount == 0 {
		message = "✅ " + message
	}
	return &models.ActionResult{
		Success: outcome.FailCount == 0,
		Message: message,
		Data:    outcome,
	}
}
