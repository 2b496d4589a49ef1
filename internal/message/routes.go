package message

import (
	"jaz-events-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, messageService *MessageService) {
	messageController := &MessageController{MessageService: messageService}

	publicGroup := r.Group("/api/messages")
	publicGroup.Use(middlewares.LocaleMiddleware())
	{
		publicGroup.POST("", messageController.CreateMessage)
	}

	adminGroup := r.Group("/api/admin/messages")
	adminGroup.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		adminGroup.GET("", messageController.ListMessages)
		adminGroup.GET("/:id", messageController.GetMessage)
		adminGroup.PATCH("/:id/status", messageController.UpdateStatus)
	}
}
