package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/kmalyshev/beacon_response_system/internal/config"
	"github.com/kmalyshev/beacon_response_system/internal/models"
	"github.com/kmalyshev/beacon_response_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	caseService       service.CaseService
	groupingService   service.GroupingService
	matchingService   service.MatchingService
	userService       service.UserService
	assignmentService service.AssignmentService
	messageService    service.MessageService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(
	caseService service.CaseService,
	groupingService service.GroupingService,
	matchingService service.MatchingService,
	userService service.UserService,
	assignmentService service.AssignmentService,
	messageService service.MessageService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		caseService:       caseService,
		groupingService:   groupingService,
		matchingService:   matchingService,
		userService:       userService,
		assignmentService: assignmentService,
		messageService:    messageService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// respondServiceError сопоставляет ошибки бизнес-логики с HTTP-кодами.
// Неузнанная ошибка считается внутренней.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCaseNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrAssignmentNotFound),
		errors.Is(err, service.ErrGroupNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrCaseNotOpen),
		errors.Is(err, service.ErrCaseAlreadyGrouped),
		errors.Is(err, service.ErrCaseUnavailable),
		errors.Is(err, service.ErrAlreadyAssigned),
		errors.Is(err, service.ErrInvalidStatusTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidRadius),
		errors.Is(err, service.ErrInvalidCoordinates):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseIDParam читает положительный целочисленный параметр пути
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// @Summary Record location consent
// @Description Create or update a user with location consent and append a location sample. Entry point for both callers and helpers.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param consent body LocationConsentRequest true "Location consent request"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/location-consent [post]
func (h *Handler) locationConsent(c *gin.Context) {
	var input LocationConsentRequest
	log := h.logger.WithField("method", "locationConsent")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.LocationConsent(c.Request.Context(), service.LocationConsentInput{
		UserID:         input.UserID,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Name:           input.Name,
		ContactInfo:    input.ContactInfo,
		IsHelper:       input.IsHelper,
		HelperSkills:   input.HelperSkills,
		HelperMaxRange: input.HelperMaxRange,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to record location consent")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Get user by ID
// @Description Get a single user by ID.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id} [get]
func (h *Handler) getUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getUser").WithField("user_id", id)

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get user from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Get user location history
// @Description Get recent location samples of a user, newest first.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Param limit query int false "Max samples to return" default(100)
// @Success 200 {array} LocationSampleResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id}/location-history [get]
func (h *Handler) getLocationHistory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getLocationHistory").WithField("user_id", id)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	samples, err := h.userService.LocationHistory(c.Request.Context(), id, limit)
	if err != nil {
		log.WithError(err).Warn("Failed to get location history from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToLocationSampleResponses(samples))
}

// @Summary Create a new case
// @Description Create a new emergency case. Grouping is evaluated asynchronously after creation.
// @Tags Cases
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param case body CreateCaseRequest true "Case creation request"
// @Success 201 {object} CaseResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cases [post]
func (h *Handler) createCase(c *gin.Context) {
	var input CreateCaseRequest
	log := h.logger.WithField("method", "createCase")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToCaseModel(input)
	if err := h.caseService.CreateCase(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create case in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToCaseResponse(model))
}

// @Summary Get cases near a point
// @Description Get cases within radius of a point, with distance to each. For the helper map view.
// @Tags Cases
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius query number false "Radius in km" default(10)
// @Param status query string false "Comma-separated statuses" default(open)
// @Success 200 {array} NearbyCaseResponse
// @Failure 400 {object} map[string]string "Invalid coordinates or radius"
// @Router /cases/nearby [get]
func (h *Handler) getNearbyCases(c *gin.Context) {
	log := h.logger.WithField("method", "getNearbyCases")

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}

	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", strconv.FormatFloat(h.cfg.DefaultSearchRadiusKm, 'f', -1, 64)), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
		return
	}

	var statuses []string
	if raw := c.Query("status"); raw != "" {
		statuses = strings.Split(raw, ",")
	}

	cases, err := h.caseService.NearbyCases(c.Request.Context(), lat, lon, radius, statuses)
	if err != nil {
		log.WithError(err).Warn("Failed to list nearby cases from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToNearbyCaseResponses(cases))
}

// @Summary Get case by ID
// @Description Get a single case by its ID.
// @Tags Cases
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Case ID"
// @Success 200 {object} CaseResponse
// @Failure 400 {object} map[string]string "Invalid case ID"
// @Failure 404 {object} map[string]string "Case not found"
// @Router /cases/{id} [get]
func (h *Handler) getCase(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getCase").WithField("case_id", id)

	caseModel, err := h.caseService.GetCase(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get case from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToCaseResponse(caseModel))
}

// @Summary Estimate route to case
// @Description Direct distance from the given point to the case location with a rough ETA. Road network is not taken into account.
// @Tags Cases
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Case ID"
// @Param lat query number true "Origin latitude"
// @Param lon query number true "Origin longitude"
// @Success 200 {object} RouteEstimateResponse
// @Failure 400 {object} map[string]string "Invalid case ID or coordinates"
// @Failure 404 {object} map[string]string "Case not found"
// @Router /cases/{id}/route [get]
func (h *Handler) getCaseRoute(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getCaseRoute").WithField("case_id", id)

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}

	estimate, err := h.caseService.RouteToCase(c.Request.Context(), id, lat, lon)
	if err != nil {
		log.WithError(err).Warn("Failed to estimate route from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToRouteResponse(estimate))
}

// @Summary Update case status
// @Description Move a case forward through its lifecycle. Backward transitions are rejected; a resolved case never reopens.
// @Tags Cases
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Case ID"
// @Param status body UpdateCaseStatusRequest true "New status"
// @Success 200 {object} CaseResponse
// @Failure 400 {object} map[string]string "Invalid case ID or request body"
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 409 {object} map[string]string "Invalid status transition"
// @Router /cases/{id}/status [patch]
func (h *Handler) updateCaseStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateCaseStatus").WithField("case_id", id)

	var input UpdateCaseStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	caseModel, err := h.caseService.UpdateCaseStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		log.WithError(err).Warn("Failed to update case status in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToCaseResponse(caseModel))
}

// @Summary Evaluate case grouping
// @Description Run the proximity grouping decision for an open case and return the result.
// @Tags Cases
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Case ID"
// @Success 200 {object} GroupingResponse
// @Failure 400 {object} map[string]string "Invalid case ID"
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 409 {object} map[string]string "Case is not open or already grouped"
// @Router /cases/{id}/grouping [post]
func (h *Handler) evaluateGrouping(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "evaluateGrouping").WithField("case_id", id)

	result, err := h.groupingService.EvaluateGrouping(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to evaluate grouping in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToGroupingResponse(result))
}

// @Summary Get case group
// @Description Get a case group with the IDs of its member cases.
// @Tags Cases
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Case group ID"
// @Success 200 {object} CaseGroupResponse
// @Failure 400 {object} map[string]string "Invalid group ID"
// @Failure 404 {object} map[string]string "Group not found"
// @Router /groups/{id} [get]
func (h *Handler) getCaseGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getCaseGroup").WithField("case_group_id", id)

	group, err := h.groupingService.GetGroup(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get case group from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToCaseGroupResponse(group))
}

// @Summary Find helpers near a point
// @Description Rank active helpers by distance from a point, with optional OR-semantics skill filter. Nearest first.
// @Tags Helpers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius query number false "Radius in km" default(10)
// @Param skills query string false "Comma-separated skills"
// @Success 200 {object} NearbyHelpersResponse
// @Failure 400 {object} map[string]string "Invalid coordinates or radius"
// @Router /helpers/nearby [get]
func (h *Handler) getNearbyHelpers(c *gin.Context) {
	log := h.logger.WithField("method", "getNearbyHelpers")

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}

	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", strconv.FormatFloat(h.cfg.DefaultSearchRadiusKm, 'f', -1, 64)), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
		return
	}

	var skills []string
	if raw := c.Query("skills"); raw != "" {
		for _, skill := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(skill); trimmed != "" {
				skills = append(skills, trimmed)
			}
		}
	}

	matches, err := h.matchingService.FindNearbyHelpers(c.Request.Context(), lat, lon, radius, skills)
	if err != nil {
		log.WithError(err).Warn("Failed to find nearby helpers in service")
		respondServiceError(c, err)
		return
	}

	responses := ModelsToHelperMatchResponses(matches)
	c.JSON(http.StatusOK, NearbyHelpersResponse{Helpers: responses, Count: len(responses)})
}

// @Summary Create an assignment
// @Description Helper claims a case. The case must be open or already assigned.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param assignment body CreateAssignmentRequest true "Assignment creation request"
// @Success 201 {object} AssignmentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 409 {object} map[string]string "Case unavailable or helper already assigned"
// @Router /assignments [post]
func (h *Handler) createAssignment(c *gin.Context) {
	var input CreateAssignmentRequest
	log := h.logger.WithField("method", "createAssignment")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.CreateAssignment(c.Request.Context(), input.CaseID, input.HelperUserID, input.Notes)
	if err != nil {
		log.WithError(err).Warn("Failed to create assignment in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAssignmentResponse(assignment))
}

// @Summary Get assignment by ID
// @Description Get a single assignment by its ID.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} AssignmentResponse
// @Failure 400 {object} map[string]string "Invalid assignment ID"
// @Failure 404 {object} map[string]string "Assignment not found"
// @Router /assignments/{id} [get]
func (h *Handler) getAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getAssignment").WithField("assignment_id", id)

	assignment, err := h.assignmentService.GetAssignment(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get assignment from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAssignmentResponse(assignment))
}

// @Summary List assignments for a case
// @Description Get all assignments of a case, newest first.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param caseID path int true "Case ID"
// @Success 200 {array} AssignmentResponse
// @Failure 400 {object} map[string]string "Invalid case ID"
// @Router /assignments/case/{caseID} [get]
func (h *Handler) getCaseAssignments(c *gin.Context) {
	caseID, ok := parseIDParam(c, "caseID")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getCaseAssignments").WithField("case_id", caseID)

	assignments, err := h.assignmentService.ListForCase(c.Request.Context(), caseID)
	if err != nil {
		log.WithError(err).Error("Failed to list case assignments from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAssignmentResponses(assignments))
}

// @Summary List assignments for a helper
// @Description Get assignments of a helper with case summaries, newest first.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param helperID path int true "Helper user ID"
// @Param include_completed query bool false "Include completed assignments" default(false)
// @Success 200 {array} AssignmentWithCaseResponse
// @Failure 400 {object} map[string]string "Invalid helper ID"
// @Router /assignments/helper/{helperID} [get]
func (h *Handler) getHelperAssignments(c *gin.Context) {
	helperID, ok := parseIDParam(c, "helperID")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getHelperAssignments").WithField("helper_user_id", helperID)
	includeCompleted := c.DefaultQuery("include_completed", "false") == "true"

	assignments, err := h.assignmentService.ListForHelper(c.Request.Context(), helperID, includeCompleted)
	if err != nil {
		log.WithError(err).Error("Failed to list helper assignments from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAssignmentWithCaseResponses(assignments))
}

// @Summary Complete an assignment
// @Description Mark an assignment completed. When every assignment of the case is completed the case is resolved.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assignment ID"
// @Param completion body CompleteAssignmentRequest true "Completion request"
// @Success 200 {object} AssignmentResponse
// @Failure 400 {object} map[string]string "Invalid assignment ID or request body"
// @Failure 404 {object} map[string]string "Assignment not found"
// @Router /assignments/{id}/complete [patch]
func (h *Handler) completeAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "completeAssignment").WithField("assignment_id", id)

	var input CompleteAssignmentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.CompleteAssignment(c.Request.Context(), id, input.Outcome, input.Notes)
	if err != nil {
		log.WithError(err).Warn("Failed to complete assignment in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAssignmentResponse(assignment))
}

// @Summary Send a message
// @Description Create a message in the conversation of an assignment.
// @Tags Messages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param message body CreateMessageRequest true "Message creation request"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Assignment not found"
// @Router /messages [post]
func (h *Handler) createMessage(c *gin.Context) {
	var input CreateMessageRequest
	log := h.logger.WithField("method", "createMessage")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToMessageModel(input)
	if err := h.messageService.CreateMessage(c.Request.Context(), model); err != nil {
		log.WithError(err).Warn("Failed to create message in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToMessageResponse(model))
}

// @Summary List messages for an assignment
// @Description Get the conversation of an assignment, oldest first.
// @Tags Messages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assignment ID"
// @Param limit query int false "Max messages to return" default(100)
// @Success 200 {array} MessageResponse
// @Failure 400 {object} map[string]string "Invalid assignment ID"
// @Router /assignments/{id}/messages [get]
func (h *Handler) getAssignmentMessages(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getAssignmentMessages").WithField("assignment_id", id)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	messages, err := h.messageService.ListForAssignment(c.Request.Context(), id, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list messages from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToMessageResponses(messages))
}

// @Summary List unread messages
// @Description Get unread messages of an assignment addressed to the recipient.
// @Tags Messages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assignment ID"
// @Param recipient query string true "Recipient (helper_user or victim_user)"
// @Success 200 {array} MessageResponse
// @Failure 400 {object} map[string]string "Invalid assignment ID or recipient"
// @Router /assignments/{id}/messages/unread [get]
func (h *Handler) getUnreadMessages(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getUnreadMessages").WithField("assignment_id", id)

	recipient := c.Query("recipient")
	if recipient == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipient is required"})
		return
	}

	messages, err := h.messageService.UnreadForAssignment(c.Request.Context(), id, recipient)
	if err != nil {
		log.WithError(err).Error("Failed to list unread messages from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToMessageResponses(messages))
}

// @Summary Get latest unanswered question
// @Description Get the newest question from the other party that no message answers yet. 204 when there is none.
// @Tags Messages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assignment ID"
// @Param recipient query string true "Recipient (helper_user or victim_user)"
// @Success 200 {object} MessageResponse
// @Success 204 "No unanswered questions"
// @Failure 400 {object} map[string]string "Invalid assignment ID or recipient"
// @Router /assignments/{id}/messages/latest-question [get]
func (h *Handler) getLatestQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getLatestQuestion").WithField("assignment_id", id)

	recipient := c.Query("recipient")
	if recipient != models.MessageSenderHelper && recipient != models.MessageSenderVictim {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipient must be helper_user or victim_user"})
		return
	}

	question, err := h.messageService.LatestQuestion(c.Request.Context(), id, recipient)
	if err != nil {
		log.WithError(err).Error("Failed to find latest question in service")
		respondServiceError(c, err)
		return
	}
	if question == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ModelToMessageResponse(question))
}

// @Summary Mark messages read
// @Description Mark the given messages as read, returns the number updated.
// @Tags Messages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param ids body MarkMessagesReadRequest true "Message IDs"
// @Success 200 {object} MarkMessagesReadResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /messages/mark-read [post]
func (h *Handler) markMessagesRead(c *gin.Context) {
	var input MarkMessagesReadRequest
	log := h.logger.WithField("method", "markMessagesRead")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := h.messageService.MarkRead(c.Request.Context(), input.MessageIDs)
	if err != nil {
		log.WithError(err).Error("Failed to mark messages read in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MarkMessagesReadResponse{MarkedRead: count})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
