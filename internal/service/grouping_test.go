package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/kmalyshev/beacon_response_system/internal/config"
	"github.com/kmalyshev/beacon_response_system/internal/models"
	"github.com/kmalyshev/beacon_response_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestGroupingService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestGroupingService(t *testing.T) (*groupingService, *mocks.MockCaseRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockCaseRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		GroupingRadiusMeters: 500,
		GroupingMinGroupSize: 3,
	}

	service := NewGroupingService(repoMock, logger, cfg)
	return service.(*groupingService), repoMock
}

// openCase — тестовое открытое обращение без группы
func openCase(id int64, lat, lon float64) *models.Case {
	return &models.Case{
		ID:        id,
		Latitude:  lat,
		Longitude: lon,
		Status:    models.CaseStatusOpen,
	}
}

func TestEvaluateGrouping_GroupCreated(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGroupingService(t)
	ctx := context.Background()

	// Три обращения в пределах 500 метров друг от друга
	newCase := openCase(10, 55.7558, 37.6173)
	near1 := openCase(11, 55.7560, 37.6175) // ~25 м
	near2 := openCase(12, 55.7570, 37.6180) // ~140 м

	// Ожидания
	repoMock.EXPECT().GetCaseByID(ctx, int64(10)).Return(newCase, nil).Times(1)
	repoMock.EXPECT().ListOpenUngroupedCases(ctx, int64(10)).
		Return([]*models.Case{near1, near2}, nil).
		Times(1)
	repoMock.EXPECT().
		CreateGroupWithMembers(ctx, "Proximity group", []int64{10, 11, 12}).
		Return(int64(7), nil).
		Times(1)
	repoMock.EXPECT().AppendUpdate(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateCaseCache(ctx, int64(10)).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateCaseCache(ctx, int64(11)).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateCaseCache(ctx, int64(12)).Return(nil).Times(1)

	// Действие
	result, err := service.EvaluateGrouping(ctx, 10)

	// Проверки
	require.NoError(t, err)
	assert.True(t, result.GroupCreated)
	require.NotNil(t, result.CaseGroupID)
	assert.Equal(t, int64(7), *result.CaseGroupID)
	assert.Equal(t, []int64{10, 11, 12}, result.Cases)
	assert.Empty(t, result.CasesFound)
}

func TestEvaluateGrouping_NotEnoughNearby(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGroupingService(t)
	ctx := context.Background()

	newCase := openCase(10, 55.7558, 37.6173)
	near := openCase(11, 55.7560, 37.6175) // единственный сосед, порог не достигнут

	// Ожидания
	repoMock.EXPECT().GetCaseByID(ctx, int64(10)).Return(newCase, nil).Times(1)
	repoMock.EXPECT().ListOpenUngroupedCases(ctx, int64(10)).
		Return([]*models.Case{near}, nil).
		Times(1)
	repoMock.EXPECT().CreateGroupWithMembers(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.EvaluateGrouping(ctx, 10)

	// Проверки
	require.NoError(t, err)
	assert.False(t, result.GroupCreated)
	assert.Nil(t, result.CaseGroupID)
	assert.Equal(t, []int64{10, 11}, result.CasesFound)
}

func TestEvaluateGrouping_FarCasesExcluded(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGroupingService(t)
	ctx := context.Background()

	newCase := openCase(10, 55.7558, 37.6173)
	near := openCase(11, 55.7560, 37.6175)
	// Примерно 1.2 км к северу, за пределами радиуса
	far := openCase(12, 55.7668, 37.6173)

	// Ожидания
	repoMock.EXPECT().GetCaseByID(ctx, int64(10)).Return(newCase, nil).Times(1)
	repoMock.EXPECT().ListOpenUngroupedCases(ctx, int64(10)).
		Return([]*models.Case{near, far}, nil).
		Times(1)

	// Действие
	result, err := service.EvaluateGrouping(ctx, 10)

	// Проверки
	// Дальнее обращение не в счет: соседей двое не набирается
	require.NoError(t, err)
	assert.False(t, result.GroupCreated)
	assert.Equal(t, []int64{10, 11}, result.CasesFound)
}

func TestEvaluateGrouping_NoNeighbors(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGroupingService(t)
	ctx := context.Background()

	newCase := openCase(10, 55.7558, 37.6173)

	// Ожидания
	repoMock.EXPECT().GetCaseByID(ctx, int64(10)).Return(newCase, nil).Times(1)
	repoMock.EXPECT().ListOpenUngroupedCases(ctx, int64(10)).
		Return([]*models.Case{}, nil).
		Times(1)

	// Действие
	result, err := service.EvaluateGrouping(ctx, 10)

	// Проверки
	require.NoError(t, err)
	assert.False(t, result.GroupCreated)
	assert.Equal(t, []int64{10}, result.CasesFound)
}

func TestEvaluateGrouping_CaseNotOpen(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGroupingService(t)
	ctx := context.Background()

	resolved := openCase(10, 55.7558, 37.6173)
	resolved.Status = models.CaseStatusResolved

	// Ожидания
	repoMock.EXPECT().GetCaseByID(ctx, int64(10)).Return(resolved, nil).Times(1)
	repoMock.EXPECT().ListOpenUngroupedCases(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.EvaluateGrouping(ctx, 10)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCaseNotOpen)
	assert.Nil(t, result)
}

func TestEvaluateGrouping_AlreadyGrouped(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGroupingService(t)
	ctx := context.Background()

	groupID := int64(3)
	grouped := openCase(10, 55.7558, 37.6173)
	grouped.CaseGroupID = &groupID

	// Ожидания
	repoMock.EXPECT().GetCaseByID(ctx, int64(10)).Return(grouped, nil).Times(1)
	repoMock.EXPECT().ListOpenUngroupedCases(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.EvaluateGrouping(ctx, 10)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCaseAlreadyGrouped)
	assert.Nil(t, result)
}

func TestEvaluateGrouping_CaseNotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGroupingService(t)
	ctx := context.Background()
	repoErr := fmt.Errorf("repository: %w", ErrCaseNotFound)

	// Ожидания
	repoMock.EXPECT().GetCaseByID(ctx, int64(99)).Return(nil, repoErr).Times(1)

	// Действие
	result, err := service.EvaluateGrouping(ctx, 99)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCaseNotFound)
	assert.Nil(t, result)
}

func TestEvaluateGrouping_GroupCreateConflict(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGroupingService(t)
	ctx := context.Background()

	newCase := openCase(10, 55.7558, 37.6173)
	near1 := openCase(11, 55.7560, 37.6175)
	near2 := openCase(12, 55.7570, 37.6180)
	conflictErr := fmt.Errorf("repository: grouping conflict: expected 3 members, updated 2")

	// Ожидания
	repoMock.EXPECT().GetCaseByID(ctx, int64(10)).Return(newCase, nil).Times(1)
	repoMock.EXPECT().ListOpenUngroupedCases(ctx, int64(10)).
		Return([]*models.Case{near1, near2}, nil).
		Times(1)
	repoMock.EXPECT().
		CreateGroupWithMembers(ctx, "Proximity group", []int64{10, 11, 12}).
		Return(int64(0), conflictErr).
		Times(1)

	// Действие
	result, err := service.EvaluateGrouping(ctx, 10)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestEvaluateGrouping_MinGroupSizeFromConfig(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGroupingService(t)
	service.cfg.GroupingMinGroupSize = 2 // порог снижен конфигурацией
	ctx := context.Background()

	newCase := openCase(10, 55.7558, 37.6173)
	near := openCase(11, 55.7560, 37.6175)

	// Ожидания
	repoMock.EXPECT().GetCaseByID(ctx, int64(10)).Return(newCase, nil).Times(1)
	repoMock.EXPECT().ListOpenUngroupedCases(ctx, int64(10)).
		Return([]*models.Case{near}, nil).
		Times(1)
	repoMock.EXPECT().
		CreateGroupWithMembers(ctx, "Proximity group", []int64{10, 11}).
		Return(int64(5), nil).
		Times(1)
	repoMock.EXPECT().AppendUpdate(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateCaseCache(ctx, gomock.Any()).Return(nil).Times(2)

	// Действие
	result, err := service.EvaluateGrouping(ctx, 10)

	// Проверки
	require.NoError(t, err)
	assert.True(t, result.GroupCreated)
	assert.Equal(t, []int64{10, 11}, result.Cases)
}

func TestEvaluateGrouping_AcrossAntimeridian(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGroupingService(t)
	ctx := context.Background()

	// Три открытых обращения в ~22 м друг от друга по обе стороны
	// меридиана ±180°
	newCase := openCase(10, 0.0, 179.9999)
	near1 := openCase(11, 0.0, -179.9999)
	near2 := openCase(12, 0.0001, -179.9998)

	// Ожидания
	repoMock.EXPECT().GetCaseByID(ctx, int64(10)).Return(newCase, nil).Times(1)
	repoMock.EXPECT().ListOpenUngroupedCases(ctx, int64(10)).
		Return([]*models.Case{near1, near2}, nil).
		Times(1)
	repoMock.EXPECT().
		CreateGroupWithMembers(ctx, "Proximity group", []int64{10, 11, 12}).
		Return(int64(3), nil).
		Times(1)
	repoMock.EXPECT().AppendUpdate(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateCaseCache(ctx, gomock.Any()).Return(nil).Times(3)

	// Действие
	result, err := service.EvaluateGrouping(ctx, 10)

	// Проверки
	require.NoError(t, err)
	assert.True(t, result.GroupCreated)
	assert.Equal(t, []int64{10, 11, 12}, result.Cases)
}

func TestEvaluateGrouping_ResolvedNeighborExcluded(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGroupingService(t)
	ctx := context.Background()

	newCase := openCase(10, 55.7558, 37.6173)
	near := openCase(11, 55.7560, 37.6175)
	resolved := openCase(12, 55.7559, 37.6174)
	resolved.Status = models.CaseStatusResolved

	// Ожидания: разрешенное обращение рядом не добирает порог,
	// группа не создается
	repoMock.EXPECT().GetCaseByID(ctx, int64(10)).Return(newCase, nil).Times(1)
	repoMock.EXPECT().ListOpenUngroupedCases(ctx, int64(10)).
		Return([]*models.Case{near, resolved}, nil).
		Times(1)
	repoMock.EXPECT().CreateGroupWithMembers(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.EvaluateGrouping(ctx, 10)

	// Проверки
	require.NoError(t, err)
	assert.False(t, result.GroupCreated)
	assert.Equal(t, []int64{10, 11}, result.CasesFound)
}

func TestGetGroup_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGroupingService(t)
	ctx := context.Background()

	group := &models.CaseGroup{
		ID:      7,
		Label:   "Proximity group",
		CaseIDs: []int64{10, 11, 12},
	}

	// Ожидания
	repoMock.EXPECT().GetCaseGroup(ctx, int64(7)).Return(group, nil).Times(1)

	// Действие
	got, err := service.GetGroup(ctx, 7)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, []int64{10, 11, 12}, got.CaseIDs)
}

func TestGetGroup_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestGroupingService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetCaseGroup(ctx, int64(404)).
		Return(nil, fmt.Errorf("case group with id 404: %w", ErrGroupNotFound)).
		Times(1)

	// Действие
	got, err := service.GetGroup(ctx, 404)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}
