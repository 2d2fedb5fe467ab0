package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmalyshev/beacon_response_system/internal/models"
	"github.com/kmalyshev/beacon_response_system/internal/service"
)

type MessageRepository struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) service.MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

// CreateMessage сохраняет сообщение в бд
func (r *MessageRepository) CreateMessage(ctx context.Context, m *models.Message) error {
	query := `
		INSERT INTO messages (assignment_id, case_id, sender, message_type, message_text, in_response_to)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		m.AssignmentID,
		m.CaseID,
		m.Sender,
		m.MessageType,
		m.MessageText,
		m.InResponseTo,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// ListMessagesForAssignment возвращает переписку по назначению (старые первыми)
func (r *MessageRepository) ListMessagesForAssignment(ctx context.Context, assignmentID int64, limit int) ([]*models.Message, error) {
	query := `
		SELECT id, assignment_id, case_id, sender, message_type, message_text, in_response_to, is_read, created_at
		FROM messages
		WHERE assignment_id = $1
		ORDER BY created_at ASC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, assignmentID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// ListUnreadMessages возвращает непрочитанные сообщения назначения,
// отправленные не recipient'ом
func (r *MessageRepository) ListUnreadMessages(ctx context.Context, assignmentID int64, recipient string) ([]*models.Message, error) {
	query := `
		SELECT id, assignment_id, case_id, sender, message_type, message_text, in_response_to, is_read, created_at
		FROM messages
		WHERE assignment_id = $1 AND is_read = FALSE AND sender <> $2
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, assignmentID, recipient)
	if err != nil {
		return nil, fmt.Errorf("failed to list unread messages: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// FindLatestUnansweredQuestion возвращает последний вопрос от другой стороны,
// на который никто не сослался через in_response_to. Отсутствие такого
// вопроса не является ошибкой.
func (r *MessageRepository) FindLatestUnansweredQuestion(ctx context.Context, assignmentID int64, recipient string) (*models.Message, error) {
	query := `
		SELECT id, assignment_id, case_id, sender, message_type, message_text, in_response_to, is_read, created_at
		FROM messages
		WHERE assignment_id = $1
		  AND sender <> $2
		  AND message_type = 'question'
		  AND id NOT IN (
		      SELECT in_response_to FROM messages
		      WHERE assignment_id = $1 AND in_response_to IS NOT NULL
		  )
		ORDER BY created_at DESC
		LIMIT 1;
	`
	m := &models.Message{}
	err := r.db.QueryRow(ctx, query, assignmentID, recipient).Scan(
		&m.ID,
		&m.AssignmentID,
		&m.CaseID,
		&m.Sender,
		&m.MessageType,
		&m.MessageText,
		&m.InResponseTo,
		&m.IsRead,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest unanswered question: %w", err)
	}
	return m, nil
}

// MarkMessagesRead помечает сообщения прочитанными
func (r *MessageRepository) MarkMessagesRead(ctx context.Context, ids []int64) (int64, error) {
	query := `
		UPDATE messages SET is_read = TRUE
		WHERE id = ANY($1) AND is_read = FALSE;
	`
	cmdTag, err := r.db.Exec(ctx, query, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// scanMessages читает строки курсора в слайс сообщений
func scanMessages(rows pgx.Rows) ([]*models.Message, error) {
	messages := make([]*models.Message, 0)
	for rows.Next() {
		m := &models.Message{}
		err := rows.Scan(
			&m.ID,
			&m.AssignmentID,
			&m.CaseID,
			&m.Sender,
			&m.MessageType,
			&m.MessageText,
			&m.InResponseTo,
			&m.IsRead,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error message list iteration: %w", err)
	}
	return messages, nil
}
