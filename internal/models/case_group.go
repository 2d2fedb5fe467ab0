package models

import (
	"time"
)

// CaseGroup - кластер обращений, признанных одним инцидентом по близости
type CaseGroup struct {
	ID        int64     `json:"case_group_id"`
	Label     string    `json:"label"`
	CaseIDs   []int64   `json:"case_ids"`
	CreatedAt time.Time `json:"created_at"`
}
