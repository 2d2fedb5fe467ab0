package models

import (
	"time"
)

// Статусы жизненного цикла обращения. Переходы только вперед,
// из resolved обращение заново не открывается.
const (
	CaseStatusOpen       = "open"
	CaseStatusAssigned   = "assigned"
	CaseStatusInProgress = "in_progress"
	CaseStatusResolved   = "resolved"
	CaseStatusClosed     = "closed"
)

type Case struct {
	ID                    int64      `json:"case_id"`
	CallerUserID          *int64     `json:"caller_user_id,omitempty"`
	CaseGroupID           *int64     `json:"case_group_id,omitempty"`
	Latitude              float64    `json:"latitude"`
	Longitude             float64    `json:"longitude"`
	Description           string     `json:"description,omitempty"`
	RawProblemDescription string     `json:"raw_problem_description"`
	Urgency               string     `json:"urgency"`
	DangerLevel           string     `json:"danger_level"`
	Status                string     `json:"status"`
	CreatedAt             time.Time  `json:"created_at"`
	ResolvedAt            *time.Time `json:"resolved_at,omitempty"`
}

// NearbyCase - обращение с расстоянием до точки запроса (для карты хелпера)
type NearbyCase struct {
	Case
	DistanceKm float64 `json:"distance_km"`
}

// RouteEstimate - прямой маршрут от хелпера до обращения: расстояние
// по дуге большого круга и грубая оценка времени прибытия
type RouteEstimate struct {
	CaseID        int64   `json:"case_id"`
	FromLatitude  float64 `json:"from_latitude"`
	FromLongitude float64 `json:"from_longitude"`
	ToLatitude    float64 `json:"to_latitude"`
	ToLongitude   float64 `json:"to_longitude"`
	DistanceKm    float64 `json:"distance_km"`
	ETAMinutes    int     `json:"eta_minutes"`
}

// GroupingResult - результат решения о группировке нового обращения.
// Отсутствие группы не является ошибкой: CasesFound возвращается
// информационно, чтобы вызывающая сторона могла повторить попытку позже.
type GroupingResult struct {
	GroupCreated bool    `json:"group_created"`
	CaseGroupID  *int64  `json:"case_group_id,omitempty"`
	Cases        []int64 `json:"cases,omitempty"`
	CasesFound   []int64 `json:"cases_found,omitempty"`
}
