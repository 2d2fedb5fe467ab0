package models

import (
	"time"
)

// Отправители и типы сообщений между хелпером и пострадавшим
const (
	MessageSenderHelper = "helper_user"
	MessageSenderVictim = "victim_user"

	MessageTypeQuestion     = "question"
	MessageTypeAnswer       = "answer"
	MessageTypeStatusUpdate = "status_update"
)

// Message - сообщение в переписке по назначению. InResponseTo связывает
// ответ с вопросом; вопрос без ссылающегося на него сообщения считается
// неотвеченным.
type Message struct {
	ID           int64     `json:"message_id"`
	AssignmentID int64     `json:"assignment_id"`
	CaseID       int64     `json:"case_id"`
	Sender       string    `json:"sender"`
	MessageType  string    `json:"message_type"`
	MessageText  string    `json:"message_text"`
	InResponseTo *int64    `json:"in_response_to,omitempty"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
}
