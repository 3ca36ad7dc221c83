package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crmbackend/models"
)

func TestComputeContactStats(t *testing.T) {
	t.Run("GroupsByStatusAndSource", func(t *testing.T) {
		companyID := "co1"
		contacts := []*models.Contact{
			{Status: "lead", Source: "website", Email: "a@example.com"},
			{Status: "lead", Source: "referral", Phone: "+1 555"},
			{Status: "customer", Source: "website", Email: "b@example.com", CompanyID: &companyID},
		}

		stats := computeContactStats(contacts)

		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, map[string]int{"lead": 2, "customer": 1}, stats.ByStatus)
		assert.Equal(t, map[string]int{"website": 2, "referral": 1}, stats.BySource)
		assert.Equal(t, 2, stats.WithEmail)
		assert.Equal(t, 1, stats.WithPhone)
		assert.Equal(t, 1, stats.WithCompany)
	})

	t.Run("BlankStatusAndSourceGroupAsUnknown", func(t *testing.T) {
		stats := computeContactStats([]*models.Contact{{}, {Status: "lead"}})

		assert.Equal(t, 1, stats.ByStatus["unknown"])
		assert.Equal(t, 2, stats.BySource["unknown"])
	})

	t.Run("EmptyWorkspace", func(t *testing.T) {
		stats := computeContactStats(nil)

		assert.Equal(t, 0, stats.Total)
		assert.Empty(t, stats.ByStatus)
		assert.Empty(t, stats.BySource)
	})
}

func TestSummarizeBreakdown(t *testing.T) {
	t.Run("LargestGroupsFirst", func(t *testing.T) {
		summary := summarizeBreakdown(map[string]int{"lost": 1, "won": 3, "open": 2})

		assert.Equal(t, "won: 3, open: 2, lost: 1", summary)
	})

	t.Run("TiesBreakAlphabetically", func(t *testing.T) {
		summary := summarizeBreakdown(map[string]int{"b": 2, "a": 2})

		assert.Equal(t, "a: 2, b: 2", summary)
	})

	t.Run("EmptyBreakdown", func(t *testing.T) {
		assert.Equal(t, "(none)", summarizeBreakdown(nil))
	})
}
