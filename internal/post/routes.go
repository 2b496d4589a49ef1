package post

import (
	"jaz-events-api/internal/middlewares"
	"jaz-events-api/internal/translate"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, postService *PostService, translateService *translate.TranslateService) {
	postController := &PostController{
		PostService:      postService,
		TranslateService: translateService,
	}

	publicGroup := r.Group("/api/posts")
	publicGroup.Use(middlewares.LocaleMiddleware())
	{
		publicGroup.GET("", postController.GetPosts)
		publicGroup.GET("/:slug", postController.GetPostBySlug)
	}

	adminGroup := r.Group("/api/admin/posts")
	adminGroup.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		adminGroup.GET("", postController.ListAllPosts)
		adminGroup.POST("", postController.CreatePost)
		adminGroup.POST("/translate", postController.TranslateDraft)
		adminGroup.PUT("/:id", postController.UpdatePost)
		adminGroup.DELETE("/:id", postController.DeletePost)
		adminGroup.POST("/:id/cover", postController.UploadCover)
	}
}
