package actions

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmbackend/models"
)

func TestBuildContactsCSV(t *testing.T) {
	t.Run("WritesHeaderAndRows", func(t *testing.T) {
		createdAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
		contacts := []*models.Contact{
			{
				FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
				Phone: "+44 20 1234", Status: "customer", Source: "referral",
				CreatedAt: createdAt,
			},
		}

		content, err := buildContactsCSV(contacts)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "First Name,Last Name,Email,Phone,Status,Source,Created At", lines[0])
		assert.Equal(t, "Ada,Lovelace,ada@example.com,+44 20 1234,customer,referral,2025-03-14 09:30:00", lines[1])
	})

	t.Run("QuotesFieldsContainingCommas", func(t *testing.T) {
		contacts := []*models.Contact{{FirstName: "Ada", LastName: "Lovelace, Countess"}}

		content, err := buildContactsCSV(contacts)

		require.NoError(t, err)
		assert.Contains(t, string(content), `"Lovelace, Countess"`)
	})

	t.Run("EmptyListProducesHeaderOnly", func(t *testing.T) {
		content, err := buildContactsCSV(nil)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		assert.Len(t, lines, 1)
	})
}

func TestBuildCompaniesCSV(t *testing.T) {
	t.Run("WritesHeaderAndRows", func(t *testing.T) {
		companies := []*models.Company{
			{
				Name: "Acme", Domain: "acme.com", Industry: "Manufacturing",
				CreatedAt: time.Date(2025, 1, 2, 15, 0, 0, 0, time.UTC),
			},
		}

		content, err := buildCompaniesCSV(companies)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "Name,Domain,Industry,Created At", lines[0])
		assert.Equal(t, "Acme,acme.com,Manufacturing,2025-01-02 15:00:00", lines[1])
	})
}
