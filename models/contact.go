package models

import (
	"strings"
	"time"
)

type Contact struct {
	ID          string    `db:"id"           json:"id"`
	WorkspaceID string    `db:"workspace_id" json:"workspace_id"`
	FirstName   string    `db:"first_name"   json:"first_name"`
	LastName    string    `db:"last_name"    json:"last_name"`
	Email       string    `db:"email"        json:"email"`
	Phone       string    `db:"phone"        json:"phone"`
	CompanyID   *string   `db:"company_id"   json:"company_id,omitempty"`
	Status      string    `db:"status"       json:"status"`
	Source      string    `db:"source"       json:"source"`
	CreatedAt   time.Time `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"   json:"updated_at"`
}

// FullName returns the contact's display name
func (c *Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
