package logs

import (
	"jaz-events-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, logService *LogService) {
	logController := &LogController{LogService: logService}

	logGroup := r.Group("/api/admin/logs")
	logGroup.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		logGroup.POST("/search", logController.GetLogs)
	}
}
