package models

import (
	"time"
)

type Company struct {
	ID          string    `db:"id"           json:"id"`
	WorkspaceID string    `db:"workspace_id" json:"workspace_id"`
	Name        string    `db:"name"         json:"name"`
	Domain      string    `db:"domain"       json:"domain"`
	Industry    string    `db:"industry"     json:"industry"`
	CreatedAt   time.Time `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"   json:"updated_at"`
}
