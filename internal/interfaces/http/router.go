package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	categoryUC "ticketdesk/internal/application/category/usecases"
	guildUC "ticketdesk/internal/application/guild/usecases"
	ticketUC "ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/infrastructure/config"
	platformInfra "ticketdesk/internal/infrastructure/platform"
	"ticketdesk/internal/infrastructure/repository"
	"ticketdesk/internal/infrastructure/services"
	"ticketdesk/internal/infrastructure/throttle"
	categoryhandlers "ticketdesk/internal/interfaces/http/handlers/category"
	guildhandlers "ticketdesk/internal/interfaces/http/handlers/guild"
	tickethandlers "ticketdesk/internal/interfaces/http/handlers/ticket"
	"ticketdesk/internal/interfaces/http/middleware"
	"ticketdesk/internal/interfaces/http/routes"
	"ticketdesk/internal/shared/db"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

// Router wires the repositories, services and use cases behind the console's
// HTTP surface.
type Router struct {
	engine          *gin.Engine
	ticketHandler   *tickethandlers.TicketHandler
	categoryHandler *categoryhandlers.CategoryHandler
	guildHandler    *guildhandlers.GuildHandler
	adminAuth       *middleware.AdminAuth

	antiSpam *throttle.AntiSpam
	sweeper  *ticketUC.ReconcileSweeper

	logger logger.Interface
}

// NewRouter creates the HTTP router with all dependencies.
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(database)
	messageRepo := repository.NewTicketMessageRepository(database)
	categoryRepo := repository.NewCategoryRepository(database)
	guildRepo := repository.NewGuildConfigRepository(database)

	txManager := db.NewTransactionManager(database)
	allocator := services.NewTicketNumberAllocator(txManager, ticketRepo, log)
	antiSpam := throttle.NewAntiSpam(cfg.Tickets.GateWindow, cfg.Tickets.Cooldown)

	restClient := platformInfra.NewRESTClient(&cfg.Platform)
	gateway := platformInfra.NewGateway(restClient, cfg.Tickets.PlatformTimeout, log)

	openTicketUC := ticketUC.NewOpenTicketUseCase(
		ticketRepo, messageRepo, categoryRepo, guildRepo,
		allocator, antiSpam, gateway, cfg.Tickets.MaxOpenPerUser, log)
	markSolvedUC := ticketUC.NewMarkSolvedUseCase(ticketRepo, gateway, log)
	confirmCloseUC := ticketUC.NewConfirmCloseUseCase(ticketRepo, guildRepo, gateway, cfg.Tickets.DeleteDelay, log)
	setPriorityUC := ticketUC.NewSetPriorityUseCase(ticketRepo, gateway, log)
	reconcileUC := ticketUC.NewReconcileUseCase(ticketRepo, gateway, log)
	appendMessageUC := ticketUC.NewAppendMessageUseCase(ticketRepo, messageRepo, log)
	getTicketUC := ticketUC.NewGetTicketUseCase(ticketRepo, log)
	exportTranscriptUC := ticketUC.NewExportTranscriptUseCase(ticketRepo, messageRepo, log)
	listTicketsUC := ticketUC.NewListTicketsUseCase(ticketRepo, log)

	createCategoryUC := categoryUC.NewCreateCategoryUseCase(categoryRepo, log)
	deactivateCategoryUC := categoryUC.NewDeactivateCategoryUseCase(categoryRepo, log)
	listCategoriesUC := categoryUC.NewListCategoriesUseCase(categoryRepo, log)
	getCategoryUC := categoryUC.NewGetCategoryUseCase(categoryRepo, log)
	addFieldUC := categoryUC.NewAddFieldUseCase(categoryRepo, log)
	removeFieldUC := categoryUC.NewRemoveFieldUseCase(categoryRepo, log)

	upsertConfigUC := guildUC.NewUpsertConfigUseCase(guildRepo, log)
	getConfigUC := guildUC.NewGetConfigUseCase(guildRepo, log)
	listGuildsUC := guildUC.NewListGuildsUseCase(guildRepo, categoryRepo, ticketRepo, log)

	return &Router{
		engine: engine,
		ticketHandler: tickethandlers.NewTicketHandler(
			openTicketUC, markSolvedUC, confirmCloseUC, setPriorityUC,
			reconcileUC, appendMessageUC, getTicketUC, exportTranscriptUC, listTicketsUC),
		categoryHandler: categoryhandlers.NewCategoryHandler(
			createCategoryUC, deactivateCategoryUC, listCategoriesUC,
			getCategoryUC, addFieldUC, removeFieldUC),
		guildHandler: guildhandlers.NewGuildHandler(upsertConfigUC, getConfigUC, listGuildsUC),
		adminAuth:    middleware.NewAdminAuth(cfg.Console.AdminToken, log),
		antiSpam:     antiSpam,
		sweeper:      ticketUC.NewReconcileSweeper(guildRepo, reconcileUC, log),
		logger:       log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "", gin.H{"status": "ok"})
	})

	routes.SetupGuildRoutes(r.engine, &routes.GuildRouteConfig{
		GuildHandler:    r.guildHandler,
		CategoryHandler: r.categoryHandler,
		TicketHandler:   r.ticketHandler,
		AdminAuth:       r.adminAuth,
	})
	routes.SetupCategoryRoutes(r.engine, &routes.CategoryRouteConfig{
		CategoryHandler: r.categoryHandler,
		AdminAuth:       r.adminAuth,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler: r.ticketHandler,
		AdminAuth:     r.adminAuth,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// ReconcileSweeper exposes the periodic sweep job for the scheduler.
func (r *Router) ReconcileSweeper() *ticketUC.ReconcileSweeper {
	return r.sweeper
}

// PruneThrottle exposes the throttle cleanup for the scheduler.
func (r *Router) PruneThrottle() {
	r.antiSpam.Prune()
}
