package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Opportunity struct {
	ID          string          `db:"id"           json:"id"`
	WorkspaceID string          `db:"workspace_id" json:"workspace_id"`
	Title       string          `db:"title"        json:"title"`
	Value       decimal.Decimal `db:"value"        json:"value"`
	PipelineID  string          `db:"pipeline_id"  json:"pipeline_id"`
	StageID     string          `db:"stage_id"     json:"stage_id"`
	ContactID   *string         `db:"contact_id"   json:"contact_id,omitempty"`
	CompanyID   *string         `db:"company_id"   json:"company_id,omitempty"`
	Status      string          `db:"status"       json:"status"`
	CreatedAt   time.Time       `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"   json:"updated_at"`
}
