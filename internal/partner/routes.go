package partner

import (
	"jaz-events-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, partnerService *PartnerService) {
	partnerController := &PartnerController{PartnerService: partnerService}

	publicGroup := r.Group("/api/partners")
	publicGroup.Use(middlewares.LocaleMiddleware())
	{
		publicGroup.GET("", partnerController.GetCategories)
		publicGroup.GET("/:slug", partnerController.GetCategoryBySlug)
	}

	adminGroup := r.Group("/api/admin/partners")
	adminGroup.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		adminGroup.GET("", partnerController.ListAllCategories)
		adminGroup.POST("", partnerController.CreateCategory)
		adminGroup.PUT("/:id", partnerController.UpdateCategory)
		adminGroup.DELETE("/:id", partnerController.DeleteCategory)
		adminGroup.PUT("/:id/fields", partnerController.UpdateFields)
		adminGroup.POST("/:id/logo", partnerController.UploadLogo)
	}
}
