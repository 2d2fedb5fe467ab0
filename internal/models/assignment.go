package models

import (
	"time"
)

// Assignment - взятие обращения хелпером в работу
type Assignment struct {
	ID           int64      `json:"assignment_id"`
	CaseID       int64      `json:"case_id"`
	HelperUserID int64      `json:"helper_user_id"`
	AssignedAt   time.Time  `json:"assigned_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Outcome      string     `json:"outcome,omitempty"`
}

// AssignmentWithCase - назначение вместе с краткой информацией об обращении
// (для списка назначений хелпера)
type AssignmentWithCase struct {
	Assignment
	CaseLatitude    float64 `json:"case_latitude"`
	CaseLongitude   float64 `json:"case_longitude"`
	CaseDescription string  `json:"case_description,omitempty"`
	CaseUrgency     string  `json:"case_urgency"`
	CaseDangerLevel string  `json:"case_danger_level"`
	CaseStatus      string  `json:"case_status"`
}
