package v1

import (
	"time"
)

// LocationConsentRequest DTO согласия на передачу местоположения
// @Description DTO согласия на передачу местоположения
type LocationConsentRequest struct {
	UserID         *int64   `json:"user_id,omitempty"`
	Latitude       float64  `json:"latitude" validate:"latitude"`
	Longitude      float64  `json:"longitude" validate:"longitude"`
	Name           string   `json:"name,omitempty" validate:"omitempty,max=255"`
	ContactInfo    string   `json:"contact_info,omitempty" validate:"omitempty,max=255"`
	IsHelper       bool     `json:"is_helper,omitempty"`
	HelperSkills   []string `json:"helper_skills,omitempty" validate:"omitempty,dive,min=1,max=64"`
	HelperMaxRange *int     `json:"helper_max_range,omitempty" validate:"omitempty,gt=0"`
}

// UserResponse DTO для ответа с информацией о пользователе
// @Description DTO для ответа с информацией о пользователе
type UserResponse struct {
	UserID         int64     `json:"user_id"`
	Name           string    `json:"name"`
	ContactInfo    string    `json:"contact_info,omitempty"`
	IsHelper       bool      `json:"is_helper"`
	HelperSkills   []string  `json:"helper_skills,omitempty"`
	HelperMaxRange *int      `json:"helper_max_range,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// LocationSampleResponse DTO записи истории перемещений
// @Description DTO записи истории перемещений
type LocationSampleResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// CreateCaseRequest DTO для создания обращения
// @Description DTO для создания обращения
type CreateCaseRequest struct {
	CallerUserID          *int64  `json:"caller_user_id,omitempty"`
	Latitude              float64 `json:"latitude" validate:"latitude"`
	Longitude             float64 `json:"longitude" validate:"longitude"`
	RawProblemDescription string  `json:"raw_problem_description" validate:"required,min=1,max=4000"`
	Description           string  `json:"description,omitempty" validate:"omitempty,max=4000"`
}

// UpdateCaseStatusRequest DTO для смены статуса обращения
// @Description DTO для смены статуса обращения
type UpdateCaseStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open assigned in_progress resolved closed"`
}

// CaseResponse DTO для ответа с информацией об обращении
// @Description DTO для ответа с информацией об обращении
type CaseResponse struct {
	CaseID                int64      `json:"case_id"`
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

// NearbyCaseResponse DTO обращения с расстоянием до точки запроса
// @Description DTO обращения с расстоянием до точки запроса
type NearbyCaseResponse struct {
	CaseResponse
	DistanceKm float64 `json:"distance_km"`
}

// GroupingResponse DTO результата группировки
// @Description DTO результата группировки
type GroupingResponse struct {
	GroupCreated bool    `json:"group_created"`
	CaseGroupID  *int64  `json:"case_group_id,omitempty"`
	Cases        []int64 `json:"cases,omitempty"`
	CasesFound   []int64 `json:"cases_found,omitempty"`
}

// RouteEstimateResponse DTO прямого маршрута до обращения с оценкой времени прибытия
// @Description DTO прямого маршрута до обращения с оценкой времени прибытия
type RouteEstimateResponse struct {
	CaseID     int64             `json:"case_id"`
	From       LocationSampleDTO `json:"from"`
	To         LocationSampleDTO `json:"to"`
	DistanceKm float64           `json:"distance_km"`
	ETAMinutes int               `json:"eta_minutes"`
}

// CaseGroupResponse DTO группы обращений с составом участников
// @Description DTO группы обращений с составом участников
type CaseGroupResponse struct {
	CaseGroupID int64     `json:"case_group_id"`
	Label       string    `json:"label"`
	CaseIDs     []int64   `json:"case_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

// HelperMatchResponse DTO хелпера с расстоянием до точки запроса
// @Description DTO хелпера с расстоянием до точки запроса
type HelperMatchResponse struct {
	UserID       int64             `json:"user_id"`
	Name         string            `json:"name"`
	ContactInfo  string            `json:"contact_info,omitempty"`
	Skills       []string          `json:"skills"`
	MaxRange     *int              `json:"max_range,omitempty"`
	DistanceKm   float64           `json:"distance_km"`
	LastLocation LocationSampleDTO `json:"last_location"`
	LastUpdated  time.Time         `json:"last_updated"`
}

// LocationSampleDTO координаты точки
// @Description Координаты точки
type LocationSampleDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearbyHelpersResponse DTO списка подобранных хелперов
// @Description DTO списка подобранных хелперов
type NearbyHelpersResponse struct {
	Helpers []*HelperMatchResponse `json:"helpers"`
	Count   int                    `json:"count"`
}

// CreateAssignmentRequest DTO для взятия обращения в работу
// @Description DTO для взятия обращения в работу
type CreateAssignmentRequest struct {
	CaseID       int64  `json:"case_id" validate:"required,gt=0"`
	HelperUserID int64  `json:"helper_user_id" validate:"required,gt=0"`
	Notes        string `json:"notes,omitempty" validate:"omitempty,max=4000"`
}

// CompleteAssignmentRequest DTO для завершения назначения
// @Description DTO для завершения назначения
type CompleteAssignmentRequest struct {
	Outcome string `json:"outcome" validate:"required,min=1,max=255"`
	Notes   string `json:"notes,omitempty" validate:"omitempty,max=4000"`
}

// AssignmentResponse DTO для ответа с информацией о назначении
// @Description DTO для ответа с информацией о назначении
type AssignmentResponse struct {
	AssignmentID int64      `json:"assignment_id"`
	CaseID       int64      `json:"case_id"`
	HelperUserID int64      `json:"helper_user_id"`
	AssignedAt   time.Time  `json:"assigned_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Outcome      string     `json:"outcome,omitempty"`
}

// AssignmentWithCaseResponse DTO назначения с краткой информацией об обращении
// @Description DTO назначения с краткой информацией об обращении
type AssignmentWithCaseResponse struct {
	AssignmentResponse
	Case AssignmentCaseSummary `json:"case"`
}

// AssignmentCaseSummary краткая информация об обращении в списке назначений
// @Description Краткая информация об обращении в списке назначений
type AssignmentCaseSummary struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description,omitempty"`
	Urgency     string  `json:"urgency"`
	DangerLevel string  `json:"danger_level"`
	Status      string  `json:"status"`
}

// CreateMessageRequest DTO для отправки сообщения
// @Description DTO для отправки сообщения
type CreateMessageRequest struct {
	AssignmentID int64  `json:"assignment_id" validate:"required,gt=0"`
	CaseID       int64  `json:"case_id" validate:"required,gt=0"`
	Sender       string `json:"sender" validate:"required,oneof=helper_user victim_user"`
	MessageType  string `json:"message_type" validate:"required,oneof=question answer status_update"`
	MessageText  string `json:"message_text" validate:"required,min=1,max=4000"`
	InResponseTo *int64 `json:"in_response_to,omitempty" validate:"omitempty,gt=0"`
}

// MessageResponse DTO для ответа с сообщением
// @Description DTO для ответа с сообщением
type MessageResponse struct {
	MessageID    int64     `json:"message_id"`
	AssignmentID int64     `json:"assignment_id"`
	CaseID       int64     `json:"case_id"`
	Sender       string    `json:"sender"`
	MessageType  string    `json:"message_type"`
	MessageText  string    `json:"message_text"`
	InResponseTo *int64    `json:"in_response_to,omitempty"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
}

// MarkMessagesReadRequest DTO для пометки сообщений прочитанными
// @Description DTO для пометки сообщений прочитанными
type MarkMessagesReadRequest struct {
	MessageIDs []int64 `json:"message_ids" validate:"required,min=1,dive,gt=0"`
}

// MarkMessagesReadResponse DTO с числом прочитанных сообщений
// @Description DTO с числом прочитанных сообщений
type MarkMessagesReadResponse struct {
	MarkedRead int64 `json:"marked_read"`
}
