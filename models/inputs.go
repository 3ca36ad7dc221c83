package models

import (
	"github.com/shopspring/decimal"
)

// ContactInput carries the fields for creating a contact
type ContactInput struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	CompanyID *string `json:"company_id,omitempty"`
	Status    string  `json:"status"`
	Source    string  `json:"source"`
}

// CompanyInput carries the fields for creating a company
type CompanyInput struct {
	Name     string `json:"name"`
	Domain   string `json:"domain"`
	Industry string `json:"industry"`
}

// OpportunityInput carries the fields for creating an opportunity
type OpportunityInput struct {
	Title      string          `json:"title"`
	Value      decimal.Decimal `json:"value"`
	PipelineID string          `json:"pipeline_id"`
	StageID    string          `json:"stage_id"`
	ContactID  *string         `json:"contact_id,omitempty"`
	CompanyID  *string         `json:"company_id,omitempty"`
}
