package service

import (
	"context"
	"fmt"

	"github.com/kmalyshev/beacon_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// MessageRepository определяет контракт для работы с бд сообщений
type MessageRepository interface {
	CreateMessage(ctx context.Context, m *models.Message) error
	ListMessagesForAssignment(ctx context.Context, assignmentID int64, limit int) ([]*models.Message, error)
	// ListUnreadMessages возвращает непрочитанные сообщения назначения,
	// отправленные не recipient'ом
	ListUnreadMessages(ctx context.Context, assignmentID int64, recipient string) ([]*models.Message, error)
	// FindLatestUnansweredQuestion возвращает nil без ошибки,
	// если открытых вопросов нет
	FindLatestUnansweredQuestion(ctx context.Context, assignmentID int64, recipient string) (*models.Message, error)
	MarkMessagesRead(ctx context.Context, ids []int64) (int64, error)
}

// MessageService определяет контракт обмена сообщениями по назначению
type MessageService interface {
	CreateMessage(ctx context.Context, m *models.Message) error
	ListForAssignment(ctx context.Context, assignmentID int64, limit int) ([]*models.Message, error)
	UnreadForAssignment(ctx context.Context, assignmentID int64, recipient string) ([]*models.Message, error)
	LatestQuestion(ctx context.Context, assignmentID int64, recipient string) (*models.Message, error)
	MarkRead(ctx context.Context, ids []int64) (int64, error)
}

type messageService struct {
	repo        MessageRepository
	assignments AssignmentRepository
	logger      *logrus.Logger
}

func NewMessageService(repo MessageRepository, assignments AssignmentRepository, logger *logrus.Logger) MessageService {
	return &messageService{
		repo:        repo,
		assignments: assignments,
		logger:      logger,
	}
}

// CreateMessage сохраняет сообщение в переписке по назначению
func (s *messageService) CreateMessage(ctx context.Context, m *models.Message) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "message",
		"method":        "CreateMessage",
		"assignment_id": m.AssignmentID,
		"sender":        m.Sender,
	})

	if _, err := s.assignments.GetAssignmentByID(ctx, m.AssignmentID); err != nil {
		log.WithError(err).Warn("Message for unknown assignment")
		return fmt.Errorf("service: could not load assignment %d: %w", m.AssignmentID, err)
	}

	if err := s.repo.CreateMessage(ctx, m); err != nil {
		log.WithError(err).Error("Failed to create message in repository")
		return fmt.Errorf("service: could not create message: %w", err)
	}

	log.WithField("message_id", m.ID).Info("Message created")
	return nil
}

// ListForAssignment возвращает переписку по назначению (старые первыми)
func (s *messageService) ListForAssignment(ctx context.Context, assignmentID int64, limit int) ([]*models.Message, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}

	messages, err := s.repo.ListMessagesForAssignment(ctx, assignmentID, limit)
	if err != nil {
		return nil, fmt.Errorf("service: could not list messages for assignment %d: %w", assignmentID, err)
	}
	return messages, nil
}

// UnreadForAssignment возвращает непрочитанные сообщения для получателя
func (s *messageService) UnreadForAssignment(ctx context.Context, assignmentID int64, recipient string) ([]*models.Message, error) {
	messages, err := s.repo.ListUnreadMessages(ctx, assignmentID, recipient)
	if err != nil {
		return nil, fmt.Errorf("service: could not list unread messages for assignment %d: %w", assignmentID, err)
	}
	return messages, nil
}

// LatestQuestion возвращает последний неотвеченный вопрос от другой стороны
// переписки; nil без ошибки, когда открытых вопросов нет
func (s *messageService) LatestQuestion(ctx context.Context, assignmentID int64, recipient string) (*models.Message, error) {
	question, err := s.repo.FindLatestUnansweredQuestion(ctx, assignmentID, recipient)
	if err != nil {
		return nil, fmt.Errorf("service: could not find latest question for assignment %d: %w", assignmentID, err)
	}
	return question, nil
}

// MarkRead помечает сообщения прочитанными, возвращает число обновленных
func (s *messageService) MarkRead(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	count, err := s.repo.MarkMessagesRead(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("service: could not mark messages read: %w", err)
	}
	return count, nil
}
