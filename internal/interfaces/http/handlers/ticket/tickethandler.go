package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

type TicketHandler struct {
	openTicketUC       usecases.OpenTicketExecutor
	markSolvedUC       usecases.MarkSolvedExecutor
	confirmCloseUC     usecases.ConfirmCloseExecutor
	setPriorityUC      usecases.SetPriorityExecutor
	reconcileUC        usecases.ReconcileExecutor
	appendMessageUC    usecases.AppendMessageExecutor
	getTicketUC        usecases.GetTicketExecutor
	exportTranscriptUC usecases.ExportTranscriptExecutor
	listTicketsUC      usecases.ListTicketsExecutor
	logger             logger.Interface
}

func NewTicketHandler(
	openTicketUC usecases.OpenTicketExecutor,
	markSolvedUC usecases.MarkSolvedExecutor,
	confirmCloseUC usecases.ConfirmCloseExecutor,
	setPriorityUC usecases.SetPriorityExecutor,
	reconcileUC usecases.ReconcileExecutor,
	appendMessageUC usecases.AppendMessageExecutor,
	getTicketUC usecases.GetTicketExecutor,
	exportTranscriptUC usecases.ExportTranscriptExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
) *TicketHandler {
	return &TicketHandler{
		openTicketUC:       openTicketUC,
		markSolvedUC:       markSolvedUC,
		confirmCloseUC:     confirmCloseUC,
		setPriorityUC:      setPriorityUC,
		reconcileUC:        reconcileUC,
		appendMessageUC:    appendMessageUC,
		getTicketUC:        getTicketUC,
		exportTranscriptUC: exportTranscriptUC,
		listTicketsUC:      listTicketsUC,
		logger:             logger.NewLogger(),
	}
}

// ActorRequest identifies who is acting. The bot gateway resolves platform
// roles before calling in; the console sets admin directly.
type ActorRequest struct {
	ActorID    string `json:"actor_id" binding:"required"`
	ActorName  string `json:"actor_name"`
	ActorStaff bool   `json:"actor_staff"`
	ActorAdmin bool   `json:"actor_admin"`
}

func (r ActorRequest) toActor() usecases.Actor {
	return usecases.Actor{
		ID:    r.ActorID,
		Name:  r.ActorName,
		Staff: r.ActorStaff,
		Admin: r.ActorAdmin,
	}
}

type OpenTicketRequest struct {
	GuildID    string            `json:"guild_id" binding:"required"`
	OpenerID   string            `json:"opener_id" binding:"required"`
	OpenerName string            `json:"opener_name"`
	CategoryID uint              `json:"category_id" binding:"required"`
	Priority   string            `json:"priority"`
	Answers    map[string]string `json:"answers"`
}

func (h *TicketHandler) OpenTicket(c *gin.Context) {
	var req OpenTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for open ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.openTicketUC.Execute(c.Request.Context(), usecases.OpenTicketCommand{
		GuildID:    req.GuildID,
		OpenerID:   req.OpenerID,
		OpenerName: req.OpenerName,
		CategoryID: req.CategoryID,
		Priority:   req.Priority,
		Answers:    req.Answers,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket opened successfully")
}

func (h *TicketHandler) MarkSolved(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.markSolvedUC.Execute(c.Request.Context(), usecases.MarkSolvedCommand{
		TicketID: ticketID,
		Actor:    req.toActor(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TicketHandler) ConfirmClose(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.confirmCloseUC.Execute(c.Request.Context(), usecases.ConfirmCloseCommand{
		TicketID: ticketID,
		Actor:    req.toActor(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type SetPriorityRequest struct {
	ActorRequest
	Priority string `json:"priority" binding:"required"`
}

func (h *TicketHandler) SetPriority(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetPriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.setPriorityUC.Execute(c.Request.Context(), usecases.SetPriorityCommand{
		TicketID: ticketID,
		Priority: req.Priority,
		Actor:    req.toActor(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type AttachmentRequest struct {
	Ref         string `json:"ref"`
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

type AppendMessageRequest struct {
	MessageRef  string              `json:"message_ref"`
	AuthorID    string              `json:"author_id" binding:"required"`
	Content     string              `json:"content"`
	Attachments []AttachmentRequest `json:"attachments"`
}

func (h *TicketHandler) AppendMessage(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AppendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.AppendMessageCommand{
		TicketID:   ticketID,
		MessageRef: req.MessageRef,
		AuthorID:   req.AuthorID,
		Content:    req.Content,
	}
	for _, a := range req.Attachments {
		cmd.Attachments = append(cmd.Attachments, usecases.AttachmentInput{
			Ref:         a.Ref,
			Filename:    a.Filename,
			URL:         a.URL,
			Size:        a.Size,
			ContentType: a.ContentType,
		})
	}

	result, err := h.appendMessageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message recorded")
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TicketHandler) ExportTranscript(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.exportTranscriptUC.Execute(c.Request.Context(), usecases.ExportTranscriptQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		GuildID:   c.Param("guild_id"),
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		OpenerID:  c.Query("opener_id"),
		Page:      page,
		PageSize:  pageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, page, pageSize)
}

type ReconcileRequest struct {
	ActorRequest
	Purge bool `json:"purge"`
}

func (h *TicketHandler) Reconcile(c *gin.Context) {
	var req ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.reconcileUC.Execute(c.Request.Context(), usecases.ReconcileCommand{
		GuildID: c.Param("guild_id"),
		Purge:   req.Purge,
		Actor:   req.toActor(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
