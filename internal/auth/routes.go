package auth

import (
	"jaz-events-api/internal/logs"
	"jaz-events-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, authService *AuthService, logService *logs.LogService) {
	authController := &AuthController{AuthService: authService, LS: logService}

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/signup", authController.SignUp)
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/logout", authController.Logout)
		authGroup.POST("/refresh", authController.Refresh)
		authGroup.GET("/me", authController.Me)
	}

	adminGroup := r.Group("/api/admin/users")
	adminGroup.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		adminGroup.GET("", authController.ListUsers)
		adminGroup.PATCH("/:id/role", authController.UpdateUserRole)
	}
}
