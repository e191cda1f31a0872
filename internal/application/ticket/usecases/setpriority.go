package usecases

import (
	"context"

	"ticketdesk/internal/domain/platform"
	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type SetPriorityCommand struct {
	TicketID uint
	Priority string
	Actor    Actor
}

type SetPriorityResult struct {
	TicketID uint
	Priority string
	// Changed is false when the requested priority equals the current one;
	// no external call is made in that case.
	Changed bool
}

// SetPriorityUseCase updates a ticket's priority. The external display is
// mutated first and the store only written on success, so a throttled or
// timed-out platform call leaves the stored priority untouched.
type SetPriorityUseCase struct {
	ticketRepo ticket.Repository
	gateway    platform.Gateway
	logger     logger.Interface
}

func NewSetPriorityUseCase(
	ticketRepo ticket.Repository,
	gateway platform.Gateway,
	logger logger.Interface,
) *SetPriorityUseCase {
	return &SetPriorityUseCase{
		ticketRepo: ticketRepo,
		gateway:    gateway,
		logger:     logger,
	}
}

func (uc *SetPriorityUseCase) Execute(ctx context.Context, cmd SetPriorityCommand) (*SetPriorityResult, error) {
	uc.logger.Infow("executing set priority use case",
		"ticket_id", cmd.TicketID, "priority", cmd.Priority, "actor_id", cmd.Actor.ID)

	newPriority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !cmd.Actor.IsStaff() && !t.IsOpenedBy(cmd.Actor.ID) {
		return nil, errors.NewPermissionError("you are not allowed to change this ticket's priority")
	}

	if t.Priority().Equals(newPriority) {
		return &SetPriorityResult{TicketID: t.ID(), Priority: t.Priority().String(), Changed: false}, nil
	}

	// Display is computed for the current status: once the ticket has left
	// open, the solved glyph stays regardless of the requested priority.
	info, err := uc.gateway.GetChannel(ctx, t.ChannelRef())
	if err != nil {
		return nil, err
	}

	newName := ticket.ApplyGlyph(info.Name, ticket.DisplayGlyph(newPriority, t.Status()))
	newTopic := ticket.ChannelTopic(t.DisplayNumber(), newPriority, t.Status())

	err = uc.gateway.EditChannel(ctx, t.GuildID(), t.ChannelRef(), platform.ChannelEdit{
		Name:  &newName,
		Topic: &newTopic,
	})
	if err != nil {
		uc.logger.Warnw("priority display update failed, priority unchanged",
			"ticket_id", t.ID(), "error", err)
		return nil, err
	}

	if _, err := t.ChangePriority(newPriority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist priority", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.refreshIntroMessage(ctx, t)

	uc.logger.Infow("ticket priority changed", "ticket_id", t.ID(), "priority", newPriority.String())

	return &SetPriorityResult{
		TicketID: t.ID(),
		Priority: t.Priority().String(),
		Changed:  true,
	}, nil
}

// refreshIntroMessage keeps the pinned intro in step with the new priority.
// Best-effort.
func (uc *SetPriorityUseCase) refreshIntroMessage(ctx context.Context, t *ticket.Ticket) {
	if t.FirstMessageRef() == "" {
		return
	}

	content := ticket.ChannelTopic(t.DisplayNumber(), t.Priority(), t.Status())
	if err := uc.gateway.EditMessage(ctx, t.ChannelRef(), t.FirstMessageRef(), content); err != nil {
		uc.logger.Warnw("failed to refresh intro message", "ticket_id", t.ID(), "error", err)
	}
}
