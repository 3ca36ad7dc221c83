package actions

import (
	"fmt"
	"sort"
	"strings"

	"crmbackend/models"
)

// ContactStats is the aggregate breakdown of a workspace's contacts,
// computed entirely client-side from one list fetch
type ContactStats struct {
	Total       int            `json:"total"`
	ByStatus    map[string]int `json:"byStatus"`
	BySource    map[string]int `json:"bySource"`
	WithEmail   int            `json:"withEmail"`
	WithPhone   int            `json:"withPhone"`
	WithCompany int            `json:"withCompany"`
}

func computeContactStats(contacts []*models.Contact) *ContactStats {
	stats := &ContactStats{
		Total:    len(contacts),
		ByStatus: map[string]int{},
		BySource: map[string]int{},
	}

	for _, contact := range contacts {
		status := contact.Status
		if status == "" {
			status = "unknown"
		}
		stats.ByStatus[status]++

		source := contact.Source
		if source == "" {
			source = "unknown"
		}
		stats.BySource[source]++

		if contact.Email != "" {
			stats.WithEmail++
		}
		if contact.Phone != "" {
			stats.WithPhone++
		}
		if contact.CompanyID != nil && *contact.CompanyID != "" {
			stats.WithCompany++
		}
	}

	return stats
}

// summarizeBreakdown renders a grouped count map as "won: 3, lost: 1" with
// the largest groups first
func summarizeBreakdown(breakdown map[string]int) string {
	if len(breakdown) == 0 {
		return "(none)"
	}

	keys := make([]string, 0, len(breakdown))
	for key := range breakdown {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if breakdown[keys[i]] != breakdown[keys[j]] {
			return breakdown[keys[i]] > breakdown[keys[j]]
		}
		return keys[i] < keys[j]
	})

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %d", key, breakdown[key]))
	}
	return strings.Join(parts, ", ")
}
