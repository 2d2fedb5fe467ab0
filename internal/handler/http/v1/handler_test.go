package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kmalyshev/beacon_response_system/internal/config"
	"github.com/kmalyshev/beacon_response_system/internal/models"
	"github.com/kmalyshev/beacon_response_system/internal/service"
	"github.com/kmalyshev/beacon_response_system/internal/handler/http/v1/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testMocks собирает все мокированные сервисы хэндлера
type testMocks struct {
	cases       *mocks.MockCaseService
	grouping    *mocks.MockGroupingService
	matching    *mocks.MockMatchingService
	users       *mocks.MockUserService
	assignments *mocks.MockAssignmentService
	messages    *mocks.MockMessageService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		cases:       mocks.NewMockCaseService(ctrl),
		grouping:    mocks.NewMockGroupingService(ctrl),
		matching:    mocks.NewMockMatchingService(ctrl),
		users:       mocks.NewMockUserService(ctrl),
		assignments: mocks.NewMockAssignmentService(ctrl),
		messages:    mocks.NewMockMessageService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DefaultSearchRadiusKm: 10,
	}

	handler := NewHandler(m.cases, m.grouping, m.matching, m.users, m.assignments, m.messages, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateCase_Handler_Success(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	reqBody := CreateCaseRequest{
		Latitude:              55.7558,
		Longitude:             37.6173,
		RawProblemDescription: "Дерево упало на дорогу",
	}
	body, _ := json.Marshal(reqBody)

	// Ожидания
	m.cases.EXPECT().
		CreateCase(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, c *models.Case) error {
			c.ID = 42
			c.Status = models.CaseStatusOpen
			return nil
		}).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/cases", bytes.NewReader(body))

	// Проверки
	require.Equal(t, http.StatusCreated, w.Code)
	var resp CaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.CaseID)
	assert.Equal(t, models.CaseStatusOpen, resp.Status)
}

func TestCreateCase_Handler_InvalidBody(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания
	m.cases.EXPECT().CreateCase(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/cases", bytes.NewReader([]byte(`{bad json`)))

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCase_Handler_MissingDescription(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	body, _ := json.Marshal(CreateCaseRequest{Latitude: 55.7558, Longitude: 37.6173})

	// Ожидания
	m.cases.EXPECT().CreateCase(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/cases", bytes.NewReader(body))

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCase_Handler_Success(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	expected := &models.Case{ID: 5, Status: models.CaseStatusOpen, RawProblemDescription: "Пожар", CreatedAt: time.Now()}

	// Ожидания
	m.cases.EXPECT().GetCase(gomock.Any(), int64(5)).Return(expected, nil).Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/cases/5", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp CaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.CaseID)
}

func TestGetCase_Handler_NotFound(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	notFound := fmt.Errorf("service: %w", service.ErrCaseNotFound)

	// Ожидания
	m.cases.EXPECT().GetCase(gomock.Any(), int64(99)).Return(nil, notFound).Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/cases/99", nil)

	// Проверки
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCase_Handler_InvalidID(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания
	m.cases.EXPECT().GetCase(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/cases/abc", nil)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCaseStatus_Handler_Conflict(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	body, _ := json.Marshal(UpdateCaseStatusRequest{Status: models.CaseStatusOpen})
	transitionErr := fmt.Errorf("service: transition resolved -> open: %w", service.ErrInvalidStatusTransition)

	// Ожидания
	m.cases.EXPECT().
		UpdateCaseStatus(gomock.Any(), int64(5), models.CaseStatusOpen).
		Return(nil, transitionErr).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodPatch, "/api/v1/cases/5/status", bytes.NewReader(body))

	// Проверки
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestEvaluateGrouping_Handler_GroupCreated(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	groupID := int64(7)
	result := &models.GroupingResult{
		GroupCreated: true,
		CaseGroupID:  &groupID,
		Cases:        []int64{10, 11, 12},
	}

	// Ожидания
	m.grouping.EXPECT().EvaluateGrouping(gomock.Any(), int64(10)).Return(result, nil).Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/cases/10/grouping", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp GroupingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.GroupCreated)
	require.NotNil(t, resp.CaseGroupID)
	assert.Equal(t, int64(7), *resp.CaseGroupID)
	assert.Equal(t, []int64{10, 11, 12}, resp.Cases)
}

func TestEvaluateGrouping_Handler_AlreadyGrouped(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	groupedErr := fmt.Errorf("service: case 10 already in group 3: %w", service.ErrCaseAlreadyGrouped)

	// Ожидания
	m.grouping.EXPECT().EvaluateGrouping(gomock.Any(), int64(10)).Return(nil, groupedErr).Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/cases/10/grouping", nil)

	// Проверки
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetNearbyCases_Handler_Success(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	nearby := []*models.NearbyCase{
		{Case: models.Case{ID: 1, Status: models.CaseStatusOpen}, DistanceKm: 0.42},
	}

	// Ожидания
	// Радиус не передан, берется значение из конфигурации
	m.cases.EXPECT().
		NearbyCases(gomock.Any(), 55.7558, 37.6173, float64(10), []string(nil)).
		Return(nearby, nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/cases/nearby?lat=55.7558&lon=37.6173", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp []*NearbyCaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 0.42, resp[0].DistanceKm)
}

func TestGetNearbyCases_Handler_BadCoordinates(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания
	m.cases.EXPECT().NearbyCases(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/cases/nearby?lat=abc&lon=37.6", nil)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNearbyHelpers_Handler_Success(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	matches := []*models.HelperMatch{
		{
			HelperCandidate: models.HelperCandidate{UserID: 1, Name: "Helper 1", Skills: []string{"first_aid"}},
			DistanceKm:      1.25,
		},
	}

	// Ожидания
	m.matching.EXPECT().
		FindNearbyHelpers(gomock.Any(), 55.7558, 37.6173, float64(5), []string{"first_aid", "cpr"}).
		Return(matches, nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/helpers/nearby?lat=55.7558&lon=37.6173&radius=5&skills=first_aid,cpr", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp NearbyHelpersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Helpers, 1)
	assert.Equal(t, int64(1), resp.Helpers[0].UserID)
	assert.Equal(t, 1.25, resp.Helpers[0].DistanceKm)
}

func TestGetNearbyHelpers_Handler_InvalidRadius(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	radiusErr := fmt.Errorf("service: radius -1.00 km: %w", service.ErrInvalidRadius)

	// Ожидания
	m.matching.EXPECT().
		FindNearbyHelpers(gomock.Any(), 55.7558, 37.6173, float64(-1), []string(nil)).
		Return(nil, radiusErr).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/helpers/nearby?lat=55.7558&lon=37.6173&radius=-1", nil)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLocationConsent_Handler_Success(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	reqBody := LocationConsentRequest{
		Latitude:     55.7558,
		Longitude:    37.6173,
		Name:         "Мария",
		IsHelper:     true,
		HelperSkills: []string{"first_aid"},
	}
	body, _ := json.Marshal(reqBody)
	created := &models.User{ID: 3, Name: "Мария", HelperSkills: []string{"first_aid"}}

	// Ожидания
	m.users.EXPECT().
		LocationConsent(gomock.Any(), gomock.Any()).
		Return(created, nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/users/location-consent", bytes.NewReader(body))

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.UserID)
	assert.True(t, resp.IsHelper)
}

func TestCreateAssignment_Handler_Conflict(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	body, _ := json.Marshal(CreateAssignmentRequest{CaseID: 5, HelperUserID: 9})
	assignedErr := fmt.Errorf("service: helper 9, case 5: %w", service.ErrAlreadyAssigned)

	// Ожидания
	m.assignments.EXPECT().
		CreateAssignment(gomock.Any(), int64(5), int64(9), "").
		Return(nil, assignedErr).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/assignments", bytes.NewReader(body))

	// Проверки
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateAssignment_Handler_Success(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	body, _ := json.Marshal(CreateAssignmentRequest{CaseID: 5, HelperUserID: 9, Notes: "еду"})
	created := &models.Assignment{ID: 100, CaseID: 5, HelperUserID: 9, Notes: "еду", AssignedAt: time.Now()}

	// Ожидания
	m.assignments.EXPECT().
		CreateAssignment(gomock.Any(), int64(5), int64(9), "еду").
		Return(created, nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/assignments", bytes.NewReader(body))

	// Проверки
	require.Equal(t, http.StatusCreated, w.Code)
	var resp AssignmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.AssignmentID)
}

func TestCompleteAssignment_Handler_Success(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	body, _ := json.Marshal(CompleteAssignmentRequest{Outcome: "resolved"})
	completedAt := time.Now()
	completed := &models.Assignment{ID: 100, CaseID: 5, HelperUserID: 9, CompletedAt: &completedAt, Outcome: "resolved"}

	// Ожидания
	m.assignments.EXPECT().
		CompleteAssignment(gomock.Any(), int64(100), "resolved", "").
		Return(completed, nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodPatch, "/api/v1/assignments/100/complete", bytes.NewReader(body))

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp AssignmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "resolved", resp.Outcome)
	assert.NotNil(t, resp.CompletedAt)
}

func TestGetHelperAssignments_Handler_IncludeCompleted(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	assignments := []*models.AssignmentWithCase{
		{
			Assignment:   models.Assignment{ID: 1, CaseID: 5, HelperUserID: 9},
			CaseLatitude: 55.7558,
			CaseStatus:   models.CaseStatusAssigned,
		},
	}

	// Ожидания
	m.assignments.EXPECT().
		ListForHelper(gomock.Any(), int64(9), true).
		Return(assignments, nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/assignments/helper/9?include_completed=true", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp []*AssignmentWithCaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, models.CaseStatusAssigned, resp[0].Case.Status)
}

func TestCreateMessage_Handler_Success(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	reqBody := CreateMessageRequest{
		AssignmentID: 100,
		CaseID:       5,
		Sender:       models.MessageSenderHelper,
		MessageType:  models.MessageTypeQuestion,
		MessageText:  "Сколько человек на месте?",
	}
	body, _ := json.Marshal(reqBody)

	// Ожидания
	m.messages.EXPECT().
		CreateMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, msg *models.Message) error {
			msg.ID = 200
			return nil
		}).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/messages", bytes.NewReader(body))

	// Проверки
	require.Equal(t, http.StatusCreated, w.Code)
	var resp MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(200), resp.MessageID)
	assert.Equal(t, models.MessageSenderHelper, resp.Sender)
}

func TestCreateMessage_Handler_InvalidSender(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	reqBody := CreateMessageRequest{
		AssignmentID: 100,
		CaseID:       5,
		Sender:       "operator",
		MessageType:  models.MessageTypeQuestion,
		MessageText:  "hi",
	}
	body, _ := json.Marshal(reqBody)

	// Ожидания
	m.messages.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/messages", bytes.NewReader(body))

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkMessagesRead_Handler_Success(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	body, _ := json.Marshal(MarkMessagesReadRequest{MessageIDs: []int64{1, 2, 3}})

	// Ожидания
	m.messages.EXPECT().
		MarkRead(gomock.Any(), []int64{1, 2, 3}).
		Return(int64(2), nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/messages/mark-read", bytes.NewReader(body))

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp MarkMessagesReadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.MarkedRead)
}

func TestGetUnreadMessages_Handler_MissingRecipient(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания
	m.messages.EXPECT().UnreadForAssignment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/assignments/100/messages/unread", nil)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck_Handler(t *testing.T) {
	// Подготовка
	_, _, router := newTestHandler(t)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAPIKeyAuthMiddleware_Unauthorized(t *testing.T) {
	// Подготовка
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{APIKeys: []string{"secret-key"}}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	protected := router.Group("/api/v1", APIKeyAuthMiddleware(cfg, logger))
	protected.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Действие: без ключа
	w := makeRequest(router, http.MethodGet, "/api/v1/ping", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Действие: с неверным ключом
	w = makeRequest(router, http.MethodGet, "/api/v1/ping", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Действие: с верным ключом
	w = makeRequest(router, http.MethodGet, "/api/v1/ping", nil, map[string]string{"X-API-Key": "secret-key"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Действие: Bearer-токен тоже принимается
	w = makeRequest(router, http.MethodGet, "/api/v1/ping", nil, map[string]string{"Authorization": "Bearer secret-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetCaseRoute_Handler_Success(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	estimate := &models.RouteEstimate{
		CaseID:        5,
		FromLatitude:  55.7650,
		FromLongitude: 37.6173,
		ToLatitude:    55.7558,
		ToLongitude:   37.6173,
		DistanceKm:    1.02,
		ETAMinutes:    2,
	}

	// Ожидания
	m.cases.EXPECT().
		RouteToCase(gomock.Any(), int64(5), 55.7650, 37.6173).
		Return(estimate, nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/cases/5/route?lat=55.7650&lon=37.6173", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp RouteEstimateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.CaseID)
	assert.Equal(t, 1.02, resp.DistanceKm)
	assert.Equal(t, 2, resp.ETAMinutes)
	assert.Equal(t, 55.7558, resp.To.Latitude)
}

func TestGetCaseRoute_Handler_MissingCoordinates(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания
	m.cases.EXPECT().RouteToCase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/cases/5/route?lat=55.7650", nil)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCaseGroup_Handler_Success(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	group := &models.CaseGroup{
		ID:      7,
		Label:   "Proximity group",
		CaseIDs: []int64{10, 11, 12},
	}

	// Ожидания
	m.grouping.EXPECT().GetGroup(gomock.Any(), int64(7)).Return(group, nil).Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/groups/7", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp CaseGroupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.CaseGroupID)
	assert.Equal(t, []int64{10, 11, 12}, resp.CaseIDs)
}

func TestGetCaseGroup_Handler_NotFound(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания
	m.grouping.EXPECT().GetGroup(gomock.Any(), int64(404)).
		Return(nil, fmt.Errorf("service: %w", service.ErrGroupNotFound)).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/groups/404", nil)

	// Проверки
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLatestQuestion_Handler_Success(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	question := &models.Message{
		ID:           41,
		AssignmentID: 100,
		CaseID:       5,
		Sender:       models.MessageSenderVictim,
		MessageType:  models.MessageTypeQuestion,
		MessageText:  "Когда вы будете на месте?",
	}

	// Ожидания
	m.messages.EXPECT().
		LatestQuestion(gomock.Any(), int64(100), models.MessageSenderHelper).
		Return(question, nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/assignments/100/messages/latest-question?recipient=helper_user", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(41), resp.MessageID)
	assert.Equal(t, models.MessageTypeQuestion, resp.MessageType)
}

func TestGetLatestQuestion_Handler_NoContent(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания
	m.messages.EXPECT().
		LatestQuestion(gomock.Any(), int64(100), models.MessageSenderVictim).
		Return(nil, nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/assignments/100/messages/latest-question?recipient=victim_user", nil)

	// Проверки
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestGetLatestQuestion_Handler_InvalidRecipient(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания
	m.messages.EXPECT().LatestQuestion(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/assignments/100/messages/latest-question?recipient=operator", nil)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
