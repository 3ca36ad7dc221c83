package actions

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"crmbackend/models"
)

// buildContactsCSV serializes the workspace's contacts to a comma-separated
// document with a human-readable header row, suitable for opening in a
// spreadsheet tool
func buildContactsCSV(contacts []*models.Contact) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"First Name", "Last Name", "Email", "Phone", "Status", "Source", "Created At"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, contact := range contacts {
		record := []string{
			contact.FirstName,
			contact.LastName,
			contact.Email,
			contact.Phone,
			contact.Status,
			contact.Source,
			contact.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// buildCompaniesCSV serializes the workspace's companies to CSV
func buildCompaniesCSV(companies []*models.Company) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"Name", "Domain", "Industry", "Created At"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, company := range companies {
		record := []string{
			company.Name,
			company.Domain,
			company.Industry,
			company.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}
