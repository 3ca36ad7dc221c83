package models

import (
	"time"
)

type EmailStatus string

const (
	EmailStatusQueued EmailStatus = "QUEUED"
	EmailStatusSent   EmailStatus = "SENT"
)

// EmailMessage is an outbox row - the delivery itself happens out of band
type EmailMessage struct {
	ID          string      `db:"id"           json:"id"`
	WorkspaceID string      `db:"workspace_id" json:"workspace_id"`
	To          string      `db:"recipient"    json:"to"`
	Subject     string      `db:"subject"      json:"subject"`
	Body        string      `db:"body"         json:"body"`
	Status      EmailStatus `db:"status"       json:"status"`
	CreatedAt   time.Time   `db:"created_at"   json:"created_at"`
}
