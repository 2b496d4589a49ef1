package registration

import (
	"jaz-events-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, registrationService *RegistrationService, schemas map[string]SchemaResolverFunc) {
	registrationController := &RegistrationController{
		RegistrationService: registrationService,
		Schemas:             schemas,
	}

	publicGroup := r.Group("/api/registrations")
	publicGroup.Use(middlewares.LocaleMiddleware(), middlewares.OptionalAuthMiddleware())
	{
		publicGroup.GET("/form", registrationController.GetForm)
		publicGroup.POST("", registrationController.SubmitRegistration)
	}

	adminGroup := r.Group("/api/admin/registrations")
	adminGroup.Use(middlewares.LocaleMiddleware(), middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		adminGroup.GET("", registrationController.ListRegistrations)
		adminGroup.GET("/export", registrationController.ExportRegistrations)
		adminGroup.GET("/:id", registrationController.GetRegistration)
		adminGroup.PATCH("/:id/status", registrationController.UpdateStatus)
	}
}
