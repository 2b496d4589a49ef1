package sector

import (
	"jaz-events-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, sectorService *SectorService) {
	sectorController := &SectorController{SectorService: sectorService}

	publicGroup := r.Group("/api/sectors")
	publicGroup.Use(middlewares.LocaleMiddleware())
	{
		publicGroup.GET("", sectorController.GetSectors)
		publicGroup.GET("/:slug", sectorController.GetSectorBySlug)
	}

	adminGroup := r.Group("/api/admin/sectors")
	adminGroup.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		adminGroup.GET("", sectorController.ListAllSectors)
		adminGroup.POST("", sectorController.CreateSector)
		adminGroup.PUT("/:id", sectorController.UpdateSector)
		adminGroup.DELETE("/:id", sectorController.DeleteSector)
		adminGroup.PUT("/:id/fields", sectorController.UpdatePartnershipFields)
	}
}
