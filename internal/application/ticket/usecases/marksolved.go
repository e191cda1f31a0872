package usecases

import (
	"context"

	"ticketdesk/internal/domain/platform"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type MarkSolvedCommand struct {
	TicketID uint
	Actor    Actor
}

type MarkSolvedResult struct {
	TicketID uint
	Status   string
	// Changed is false when the ticket was already pending close.
	Changed bool
}

// MarkSolvedUseCase moves a ticket from open to pending_close. Only the
// opener may declare their own ticket solved. The store transition is applied
// as soon as authorization passes; the external rename to the solved glyph is
// best-effort afterwards, because "solved" is a fact the opener states, not
// something the platform mutation could falsify.
type MarkSolvedUseCase struct {
	ticketRepo ticket.Repository
	gateway    platform.Gateway
	logger     logger.Interface
}

func NewMarkSolvedUseCase(
	ticketRepo ticket.Repository,
	gateway platform.Gateway,
	logger logger.Interface,
) *MarkSolvedUseCase {
	return &MarkSolvedUseCase{
		ticketRepo: ticketRepo,
		gateway:    gateway,
		logger:     logger,
	}
}

func (uc *MarkSolvedUseCase) Execute(ctx context.Context, cmd MarkSolvedCommand) (*MarkSolvedResult, error) {
	uc.logger.Infow("executing mark solved use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !t.IsOpenedBy(cmd.Actor.ID) {
		return nil, errors.NewPermissionError("only the ticket opener can mark it as solved")
	}

	if t.Status().IsPendingClose() {
		return &MarkSolvedResult{TicketID: t.ID(), Status: t.Status().String(), Changed: false}, nil
	}

	if err := t.MarkSolved(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist solved status", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.refreshDisplay(ctx, t)

	uc.logger.Infow("ticket marked solved", "ticket_id", t.ID())

	return &MarkSolvedResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
		Changed:  true,
	}, nil
}

// refreshDisplay swaps the channel's glyph and topic to the solved variant.
// Failures are logged only; the stored status already reflects the opener's
// declaration.
func (uc *MarkSolvedUseCase) refreshDisplay(ctx context.Context, t *ticket.Ticket) {
	info, err := uc.gateway.GetChannel(ctx, t.ChannelRef())
	if err != nil {
		uc.logger.Warnw("failed to read channel for solved refresh", "ticket_id", t.ID(), "error", err)
		return
	}

	newName := ticket.ApplyGlyph(info.Name, ticket.DisplayGlyph(t.Priority(), t.Status()))
	newTopic := ticket.ChannelTopic(t.DisplayNumber(), t.Priority(), t.Status())

	err = uc.gateway.EditChannel(ctx, t.GuildID(), t.ChannelRef(), platform.ChannelEdit{
		Name:  &newName,
		Topic: &newTopic,
	})
	if err != nil {
		uc.logger.Warnw("failed to refresh solved display", "ticket_id", t.ID(), "error", err)
	}
}
