package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты пользователей и согласия на геолокацию
	users := api.Group("/users")
	{
		users.POST("/location-consent", h.locationConsent)
		users.GET("/:id", h.getUser)
		users.GET("/:id/location-history", h.getLocationHistory)
	}

	// Маршруты инцидентных кейсов и группировки
	cases := api.Group("/cases")
	{
		cases.POST("", h.createCase)
		cases.GET("/nearby", h.getNearbyCases)
		cases.GET("/:id", h.getCase)
		cases.GET("/:id/route", h.getCaseRoute)
		cases.PATCH("/:id/status", h.updateCaseStatus)
		cases.POST("/:id/grouping", h.evaluateGrouping)
	}

	// Маршрут групп обращений
	api.GET("/groups/:id", h.getCaseGroup)

	// Маршрут подбора помощников
	api.GET("/helpers/nearby", h.getNearbyHelpers)

	// Маршруты назначений
	assignments := api.Group("/assignments")
	{
		assignments.POST("", h.createAssignment)
		assignments.GET("/case/:caseID", h.getCaseAssignments)
		assignments.GET("/helper/:helperID", h.getHelperAssignments)
		assignments.GET("/:id", h.getAssignment)
		assignments.PATCH("/:id/complete", h.completeAssignment)
		assignments.GET("/:id/messages", h.getAssignmentMessages)
		assignments.GET("/:id/messages/unread", h.getUnreadMessages)
		assignments.GET("/:id/messages/latest-question", h.getLatestQuestion)
	}

	// Маршруты сообщений
	messages := api.Group("/messages")
	{
		messages.POST("", h.createMessage)
		messages.POST("/mark-read", h.markMessagesRead)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
