package routes

import (
	"github.com/gin-gonic/gin"

	categoryhandlers "ticketdesk/internal/interfaces/http/handlers/category"
	"ticketdesk/internal/interfaces/http/middleware"
)

type CategoryRouteConfig struct {
	CategoryHandler *categoryhandlers.CategoryHandler
	AdminAuth       *middleware.AdminAuth
}

func SetupCategoryRoutes(engine *gin.Engine, config *CategoryRouteConfig) {
	categories := engine.Group("/categories")
	categories.Use(config.AdminAuth.RequireToken())
	{
		categories.GET("/:id", config.CategoryHandler.GetCategory)
		categories.POST("/:id/fields", config.CategoryHandler.AddField)
		categories.DELETE("/:id/fields/:field_id", config.CategoryHandler.RemoveField)
	}
}
