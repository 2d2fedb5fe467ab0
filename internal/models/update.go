package models

import (
	"time"
)

// Источники и типы записей журнала событий по обращению
const (
	UpdateSourceSystem = "system"
	UpdateSourceHelper = "helper"

	UpdateTypeCaseCreated         = "case_created"
	UpdateTypeStatusChange        = "status_change"
	UpdateTypeGroupFormed         = "group_formed"
	UpdateTypeAssignmentCreated   = "assignment_created"
	UpdateTypeAssignmentCompleted = "assignment_completed"
)

// Update - запись журнала событий (аудита) по обращению
type Update struct {
	ID           int64     `json:"id"`
	CaseID       int64     `json:"case_id"`
	AssignmentID *int64    `json:"assignment_id,omitempty"`
	UpdateSource string    `json:"update_source"`
	UpdateType   string    `json:"update_type"`
	UpdateText   string    `json:"update_text"`
	CreatedAt    time.Time `json:"created_at"`
}
