package models

import (
	"time"
)

type Pipeline struct {
	ID          string    `db:"id"           json:"id"`
	WorkspaceID string    `db:"workspace_id" json:"workspace_id"`
	Name        string    `db:"name"         json:"name"`
	IsDefault   bool      `db:"is_default"   json:"is_default"`
	CreatedAt   time.Time `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"   json:"updated_at"`

	// Stages are always embedded on read, ordered by position
	Stages []Stage `json:"stages"`
}

type Stage struct {
	ID         string `db:"id"          json:"id"`
	PipelineID string `db:"pipeline_id" json:"pipeline_id"`
	Name       string `db:"name"        json:"name"`
	Color      string `db:"color"       json:"color"`
	Position   int    `db:"position"    json:"position"`
}

// StageDefinition describes a stage to be created as part of a pipeline
// or via add_stage
type StageDefinition struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
