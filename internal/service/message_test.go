package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/kmalyshev/beacon_response_system/internal/models"
	"github.com/kmalyshev/beacon_response_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestMessageService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestMessageService(t *testing.T) (*messageService, *mocks.MockMessageRepository, *mocks.MockAssignmentRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockMessageRepository(ctrl)
	assignmentsMock := mocks.NewMockAssignmentRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewMessageService(repoMock, assignmentsMock, logger)
	return service.(*messageService), repoMock, assignmentsMock
}

func TestCreateMessage_Success(t *testing.T) {
	// Подготовка
	service, repoMock, assignmentsMock := newTestMessageService(t)
	ctx := context.Background()

	questionID := int64(40)
	msg := &models.Message{
		AssignmentID: 100,
		CaseID:       5,
		Sender:       models.MessageSenderVictim,
		MessageType:  models.MessageTypeAnswer,
		MessageText:  "Вода поднялась до второй ступеньки",
		InResponseTo: &questionID,
	}

	// Ожидания
	assignmentsMock.EXPECT().GetAssignmentByID(ctx, int64(100)).
		Return(&models.Assignment{ID: 100, CaseID: 5}, nil).
		Times(1)
	repoMock.EXPECT().CreateMessage(ctx, msg).
		DoAndReturn(func(_ context.Context, m *models.Message) error {
			m.ID = 200
			return nil
		}).
		Times(1)

	// Действие
	err := service.CreateMessage(ctx, msg)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(200), msg.ID)
	require.NotNil(t, msg.InResponseTo)
	assert.Equal(t, questionID, *msg.InResponseTo)
}

func TestCreateMessage_UnknownAssignment(t *testing.T) {
	// Подготовка
	service, repoMock, assignmentsMock := newTestMessageService(t)
	ctx := context.Background()

	msg := &models.Message{
		AssignmentID: 404,
		CaseID:       5,
		Sender:       models.MessageSenderHelper,
		MessageType:  models.MessageTypeQuestion,
		MessageText:  "Кто-нибудь пострадал?",
	}

	// Ожидания
	assignmentsMock.EXPECT().GetAssignmentByID(ctx, int64(404)).
		Return(nil, fmt.Errorf("assignment with id 404: %w", ErrAssignmentNotFound)).
		Times(1)
	repoMock.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.CreateMessage(ctx, msg)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestLatestQuestion_Found(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestMessageService(t)
	ctx := context.Background()

	question := &models.Message{
		ID:           41,
		AssignmentID: 100,
		CaseID:       5,
		Sender:       models.MessageSenderVictim,
		MessageType:  models.MessageTypeQuestion,
		MessageText:  "Когда вы будете на месте?",
	}

	// Ожидания
	repoMock.EXPECT().
		FindLatestUnansweredQuestion(ctx, int64(100), models.MessageSenderHelper).
		Return(question, nil).
		Times(1)

	// Действие
	got, err := service.LatestQuestion(ctx, 100, models.MessageSenderHelper)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(41), got.ID)
	assert.Equal(t, models.MessageTypeQuestion, got.MessageType)
}

func TestLatestQuestion_NoneIsNotError(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestMessageService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		FindLatestUnansweredQuestion(ctx, int64(100), models.MessageSenderVictim).
		Return(nil, nil).
		Times(1)

	// Действие
	got, err := service.LatestQuestion(ctx, 100, models.MessageSenderVictim)

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMarkRead_EmptyInput(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestMessageService(t)
	ctx := context.Background()

	// Ожидания: пустой список не трогает репозиторий
	repoMock.EXPECT().MarkMessagesRead(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	count, err := service.MarkRead(ctx, nil)

	// Проверки
	require.NoError(t, err)
	assert.Zero(t, count)
}
