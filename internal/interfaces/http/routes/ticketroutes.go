package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "ticketdesk/internal/interfaces/http/handlers/ticket"
	"ticketdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
	AdminAuth     *middleware.AdminAuth
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AdminAuth.RequireToken())
	{
		tickets.POST("", config.TicketHandler.OpenTicket)

		// Specific action endpoints must come BEFORE /:id to avoid conflicts
		tickets.POST("/:id/solve", config.TicketHandler.MarkSolved)
		tickets.POST("/:id/close", config.TicketHandler.ConfirmClose)
		tickets.PATCH("/:id/priority", config.TicketHandler.SetPriority)
		tickets.POST("/:id/messages", config.TicketHandler.AppendMessage)
		tickets.GET("/:id/export", config.TicketHandler.ExportTranscript)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
	}
}
