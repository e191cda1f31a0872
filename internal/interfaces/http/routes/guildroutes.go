package routes

import (
	"github.com/gin-gonic/gin"

	categoryhandlers "ticketdesk/internal/interfaces/http/handlers/category"
	guildhandlers "ticketdesk/internal/interfaces/http/handlers/guild"
	tickethandlers "ticketdesk/internal/interfaces/http/handlers/ticket"
	"ticketdesk/internal/interfaces/http/middleware"
)

type GuildRouteConfig struct {
	GuildHandler    *guildhandlers.GuildHandler
	CategoryHandler *categoryhandlers.CategoryHandler
	TicketHandler   *tickethandlers.TicketHandler
	AdminAuth       *middleware.AdminAuth
}

func SetupGuildRoutes(engine *gin.Engine, config *GuildRouteConfig) {
	guilds := engine.Group("/guilds")
	guilds.Use(config.AdminAuth.RequireToken())
	{
		guilds.GET("", config.GuildHandler.ListGuilds)

		guilds.GET("/:guild_id/config", config.GuildHandler.GetConfig)
		guilds.PUT("/:guild_id/config", config.GuildHandler.UpsertConfig)

		guilds.GET("/:guild_id/categories", config.CategoryHandler.ListCategories)
		guilds.POST("/:guild_id/categories", config.CategoryHandler.CreateCategory)
		guilds.DELETE("/:guild_id/categories/:id", config.CategoryHandler.DeactivateCategory)

		guilds.GET("/:guild_id/tickets", config.TicketHandler.ListTickets)
		guilds.POST("/:guild_id/reconcile", config.TicketHandler.Reconcile)
	}
}
