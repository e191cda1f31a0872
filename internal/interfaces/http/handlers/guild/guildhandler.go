package guild

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/guild/usecases"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

type GuildHandler struct {
	upsertConfigUC usecases.UpsertConfigExecutor
	getConfigUC    usecases.GetConfigExecutor
	listGuildsUC   usecases.ListGuildsExecutor
	logger         logger.Interface
}

func NewGuildHandler(
	upsertConfigUC usecases.UpsertConfigExecutor,
	getConfigUC usecases.GetConfigExecutor,
	listGuildsUC usecases.ListGuildsExecutor,
) *GuildHandler {
	return &GuildHandler{
		upsertConfigUC: upsertConfigUC,
		getConfigUC:    getConfigUC,
		listGuildsUC:   listGuildsUC,
		logger:         logger.NewLogger(),
	}
}

type UpsertConfigRequest struct {
	SupportChannelRef *string `json:"support_channel_ref"`
	TicketParentRef   *string `json:"ticket_parent_ref"`
	StaffRoleRef      *string `json:"staff_role_ref"`
	PanelTitle        *string `json:"panel_title"`
	PanelDescription  *string `json:"panel_description"`
	ContactName       *string `json:"contact_name"`
	AllowUserClose    *bool   `json:"allow_user_close"`
}

func (h *GuildHandler) UpsertConfig(c *gin.Context) {
	var req UpsertConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for upsert guild config", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.upsertConfigUC.Execute(c.Request.Context(), usecases.UpsertConfigCommand{
		GuildID:           c.Param("guild_id"),
		SupportChannelRef: req.SupportChannelRef,
		TicketParentRef:   req.TicketParentRef,
		StaffRoleRef:      req.StaffRoleRef,
		PanelTitle:        req.PanelTitle,
		PanelDescription:  req.PanelDescription,
		ContactName:       req.ContactName,
		AllowUserClose:    req.AllowUserClose,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Guild config saved", result)
}

func (h *GuildHandler) GetConfig(c *gin.Context) {
	result, err := h.getConfigUC.Execute(c.Request.Context(), usecases.GetConfigQuery{
		GuildID: c.Param("guild_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *GuildHandler) ListGuilds(c *gin.Context) {
	result, err := h.listGuildsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
