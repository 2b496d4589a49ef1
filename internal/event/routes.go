package event

import (
	"jaz-events-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, eventService *EventService) {
	eventController := &EventController{EventService: eventService}

	publicGroup := r.Group("/api/events")
	publicGroup.Use(middlewares.LocaleMiddleware())
	{
		publicGroup.GET("", eventController.GetEvents)
		publicGroup.GET("/:slug", eventController.GetEventBySlug)
	}

	adminGroup := r.Group("/api/admin/events")
	adminGroup.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		adminGroup.GET("", eventController.ListAllEvents)
		adminGroup.POST("", eventController.CreateEvent)
		adminGroup.PUT("/:id", eventController.UpdateEvent)
		adminGroup.DELETE("/:id", eventController.DeleteEvent)
		adminGroup.PUT("/:id/fields", eventController.UpdateRegistrationFields)
	}
}
