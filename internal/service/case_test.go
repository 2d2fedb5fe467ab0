package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/kmalyshev/beacon_response_system/internal/config"
	dispatch_mocks "github.com/kmalyshev/beacon_response_system/internal/dispatch/mocks"
	"github.com/kmalyshev/beacon_response_system/internal/models"
	"github.com/kmalyshev/beacon_response_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestCaseService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestCaseService(t *testing.T) (*caseService, *mocks.MockCaseRepository, *dispatch_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockCaseRepository(ctrl)
	publisherMock := dispatch_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		GroupingRadiusMeters:  500,
		GroupingMinGroupSize:  3,
		DefaultSearchRadiusKm: 10,
	}

	service := NewCaseService(repoMock, publisherMock, logger, cfg)
	return service.(*caseService), repoMock, publisherMock
}

func TestCreateCase_Success(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestCaseService(t)
	ctx := context.Background()
	newCase := &models.Case{
		Latitude:              55.7558,
		Longitude:             37.6173,
		RawProblemDescription: "Прорыв трубы, вода заливает подвал",
	}

	// Ожидания
	repoMock.EXPECT().
		CreateCase(ctx, newCase).
		DoAndReturn(func(_ context.Context, c *models.Case) error {
			c.ID = 42
			return nil
		}).
		Times(1)
	repoMock.EXPECT().AppendUpdate(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().PublishCaseCreated(ctx, int64(42)).Return(nil).Times(1)

	// Действие
	err := service.CreateCase(ctx, newCase)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.CaseStatusOpen, newCase.Status)
	assert.Equal(t, "high", newCase.Urgency)
	assert.Equal(t, "severe", newCase.DangerLevel)
}

func TestCreateCase_InvalidCoordinates(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestCaseService(t)
	ctx := context.Background()
	newCase := &models.Case{
		Latitude:              120.0,
		Longitude:             37.6173,
		RawProblemDescription: "Плохие координаты",
	}

	// Ожидания
	repoMock.EXPECT().CreateCase(gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().PublishCaseCreated(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.CreateCase(ctx, newCase)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestCreateCase_PublishFailureDoesNotFail(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestCaseService(t)
	ctx := context.Background()
	newCase := &models.Case{
		Latitude:              55.7558,
		Longitude:             37.6173,
		RawProblemDescription: "Пожар на складе",
	}

	// Ожидания
	repoMock.EXPECT().
		CreateCase(ctx, newCase).
		DoAndReturn(func(_ context.Context, c *models.Case) error {
			c.ID = 7
			return nil
		}).
		Times(1)
	repoMock.EXPECT().AppendUpdate(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().
		PublishCaseCreated(ctx, int64(7)).
		Return(fmt.Errorf("redis down")).
		Times(1)

	// Действие
	err := service.CreateCase(ctx, newCase)

	// Проверки
	// Обращение сохранено, потеря события очереди не фатальна
	require.NoError(t, err)
}

func TestGetCase_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCaseService(t)
	ctx := context.Background()
	expected := &models.Case{ID: 5, Status: models.CaseStatusOpen}

	// Ожидания
	repoMock.EXPECT().GetCaseFromCache(ctx, int64(5)).Return(expected, nil).Times(1)
	repoMock.EXPECT().GetCaseByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	c, err := service.GetCase(ctx, 5)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, c)
}

func TestGetCase_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCaseService(t)
	ctx := context.Background()
	expected := &models.Case{ID: 5, Status: models.CaseStatusOpen}

	// Ожидания
	repoMock.EXPECT().GetCaseFromCache(ctx, int64(5)).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetCaseByID(ctx, int64(5)).Return(expected, nil).Times(1)
	repoMock.EXPECT().SetCaseCache(ctx, expected).Return(nil).Times(1)

	// Действие
	c, err := service.GetCase(ctx, 5)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, c)
}

func TestNearbyCases_FiltersAndSorts(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCaseService(t)
	ctx := context.Background()

	older := &models.Case{ID: 1, Latitude: 55.7560, Longitude: 37.6175, Status: models.CaseStatusOpen, CreatedAt: time.Now().Add(-time.Hour)}
	newer := &models.Case{ID: 2, Latitude: 55.7650, Longitude: 37.6173, Status: models.CaseStatusOpen, CreatedAt: time.Now()}
	far := &models.Case{ID: 3, Latitude: 55.90, Longitude: 37.6173, Status: models.CaseStatusOpen, CreatedAt: time.Now()}

	// Ожидания
	repoMock.EXPECT().
		ListCasesByStatus(ctx, []string{models.CaseStatusOpen}).
		Return([]*models.Case{older, newer, far}, nil).
		Times(1)

	// Действие
	// Статусы не заданы, по умолчанию берутся открытые
	nearby, err := service.NearbyCases(ctx, 55.7558, 37.6173, 10, nil)

	// Проверки
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	// Свежие первыми
	assert.Equal(t, int64(2), nearby[0].ID)
	assert.Equal(t, int64(1), nearby[1].ID)
	assert.Greater(t, nearby[0].DistanceKm, nearby[1].DistanceKm)
}

func TestNearbyCases_InvalidRadius(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCaseService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().ListCasesByStatus(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	nearby, err := service.NearbyCases(ctx, 55.7558, 37.6173, -1, nil)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRadius)
	assert.Nil(t, nearby)
}

func TestUpdateCaseStatus_ForwardTransition(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCaseService(t)
	ctx := context.Background()

	existing := &models.Case{ID: 5, Status: models.CaseStatusOpen}
	updated := &models.Case{ID: 5, Status: models.CaseStatusAssigned}

	// Ожидания
	repoMock.EXPECT().GetCaseByID(ctx, int64(5)).Return(existing, nil).Times(1)
	repoMock.EXPECT().UpdateCaseStatus(ctx, int64(5), models.CaseStatusAssigned, false).Return(nil).Times(1)
	repoMock.EXPECT().AppendUpdate(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateCaseCache(ctx, int64(5)).Return(nil).Times(1)
	repoMock.EXPECT().GetCaseByID(ctx, int64(5)).Return(updated, nil).Times(1)

	// Действие
	c, err := service.UpdateCaseStatus(ctx, 5, models.CaseStatusAssigned)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.CaseStatusAssigned, c.Status)
}

func TestUpdateCaseStatus_ResolvedSetsTimestamp(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCaseService(t)
	ctx := context.Background()

	existing := &models.Case{ID: 5, Status: models.CaseStatusInProgress}
	resolvedAt := time.Now()
	updated := &models.Case{ID: 5, Status: models.CaseStatusResolved, ResolvedAt: &resolvedAt}

	// Ожидания
	repoMock.EXPECT().GetCaseByID(ctx, int64(5)).Return(existing, nil).Times(1)
	repoMock.EXPECT().UpdateCaseStatus(ctx, int64(5), models.CaseStatusResolved, true).Return(nil).Times(1)
	repoMock.EXPECT().AppendUpdate(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateCaseCache(ctx, int64(5)).Return(nil).Times(1)
	repoMock.EXPECT().GetCaseByID(ctx, int64(5)).Return(updated, nil).Times(1)

	// Действие
	c, err := service.UpdateCaseStatus(ctx, 5, models.CaseStatusResolved)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, c.ResolvedAt)
}

func TestUpdateCaseStatus_BackwardTransitionRejected(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCaseService(t)
	ctx := context.Background()

	existing := &models.Case{ID: 5, Status: models.CaseStatusResolved}

	// Ожидания
	repoMock.EXPECT().GetCaseByID(ctx, int64(5)).Return(existing, nil).Times(1)
	repoMock.EXPECT().UpdateCaseStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	c, err := service.UpdateCaseStatus(ctx, 5, models.CaseStatusOpen)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Nil(t, c)
}

func TestUpdateCaseStatus_UnknownStatus(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCaseService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetCaseByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	c, err := service.UpdateCaseStatus(ctx, 5, "vanished")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Nil(t, c)
}

func TestRouteToCase_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCaseService(t)
	ctx := context.Background()

	c := &models.Case{
		ID:        5,
		Latitude:  55.7558,
		Longitude: 37.6173,
		Status:    models.CaseStatusOpen,
	}

	// Ожидания
	repoMock.EXPECT().GetCaseFromCache(ctx, int64(5)).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetCaseByID(ctx, int64(5)).Return(c, nil).Times(1)
	repoMock.EXPECT().SetCaseCache(ctx, c).Return(nil).Times(1)

	// Действие: хелпер примерно в километре к северу
	estimate, err := service.RouteToCase(ctx, 5, 55.7650, 37.6173)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(5), estimate.CaseID)
	assert.Equal(t, 55.7650, estimate.FromLatitude)
	assert.Equal(t, c.Latitude, estimate.ToLatitude)
	assert.InDelta(t, 1.02, estimate.DistanceKm, 0.05)
	assert.Equal(t, 2, estimate.ETAMinutes)
}

func TestRouteToCase_InvalidCoordinates(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCaseService(t)
	ctx := context.Background()

	// Ожидания: до репозитория дело не доходит
	repoMock.EXPECT().GetCaseFromCache(gomock.Any(), gomock.Any()).Times(0)
	repoMock.EXPECT().GetCaseByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	estimate, err := service.RouteToCase(ctx, 5, 95.0, 37.6173)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, estimate)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestRouteToCase_CaseNotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestCaseService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetCaseFromCache(ctx, int64(404)).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetCaseByID(ctx, int64(404)).
		Return(nil, fmt.Errorf("case with id 404: %w", ErrCaseNotFound)).
		Times(1)

	// Действие
	estimate, err := service.RouteToCase(ctx, 404, 55.7558, 37.6173)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, estimate)
	assert.ErrorIs(t, err, ErrCaseNotFound)
}
