package usecases

import (
	"context"
	"time"

	"ticketdesk/internal/domain/guild"
	"ticketdesk/internal/domain/platform"
	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/goroutine"
	"ticketdesk/internal/shared/logger"
)

type ConfirmCloseCommand struct {
	TicketID uint
	Actor    Actor
}

type ConfirmCloseResult struct {
	TicketID uint
	Status   string
	// Changed is false when the ticket was already closed.
	Changed bool
}

// ConfirmCloseUseCase moves a ticket to the terminal closed status. Unlike
// mark solved, the store write is gated on the external mutation: the channel
// must actually be locked and renamed before the ticket is recorded as
// closed. Channel deletion is deferred and fire-and-forget.
type ConfirmCloseUseCase struct {
	ticketRepo  ticket.Repository
	guildRepo   guild.Repository
	gateway     platform.Gateway
	deleteDelay time.Duration
	logger      logger.Interface
}

func NewConfirmCloseUseCase(
	ticketRepo ticket.Repository,
	guildRepo guild.Repository,
	gateway platform.Gateway,
	deleteDelay time.Duration,
	logger logger.Interface,
) *ConfirmCloseUseCase {
	return &ConfirmCloseUseCase{
		ticketRepo:  ticketRepo,
		guildRepo:   guildRepo,
		gateway:     gateway,
		deleteDelay: deleteDelay,
		logger:      logger,
	}
}

func (uc *ConfirmCloseUseCase) Execute(ctx context.Context, cmd ConfirmCloseCommand) (*ConfirmCloseResult, error) {
	uc.logger.Infow("executing confirm close use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if t.Status().IsClosed() {
		return &ConfirmCloseResult{TicketID: t.ID(), Status: t.Status().String(), Changed: false}, nil
	}

	if err := uc.authorize(ctx, t, cmd.Actor); err != nil {
		return nil, err
	}

	info, err := uc.gateway.GetChannel(ctx, t.ChannelRef())
	if err != nil {
		return nil, err
	}

	// Display is computed for the closed state, not the current one: a staff
	// close straight from open must still show the solved indicator.
	newName := ticket.ApplyGlyph(info.Name, ticket.DisplayGlyph(t.Priority(), vo.StatusClosed))
	newTopic := ticket.ChannelTopic(t.DisplayNumber(), t.Priority(), vo.StatusClosed)
	locked := true

	err = uc.gateway.EditChannel(ctx, t.GuildID(), t.ChannelRef(), platform.ChannelEdit{
		Name:   &newName,
		Topic:  &newTopic,
		Locked: &locked,
	})
	if err != nil {
		uc.logger.Warnw("channel lock failed, ticket stays open", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	if err := t.Close(cmd.Actor.ID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist closed status", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.scheduleDeletion(t)

	uc.logger.Infow("ticket closed", "ticket_id", t.ID(), "closer_id", cmd.Actor.ID)

	return &ConfirmCloseResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
		Changed:  true,
	}, nil
}

// authorize allows staff and admins always, and the opener only when the
// guild permits user closes and the ticket has already been marked solved.
func (uc *ConfirmCloseUseCase) authorize(ctx context.Context, t *ticket.Ticket, actor Actor) error {
	if actor.IsStaff() {
		return nil
	}
	if !t.IsOpenedBy(actor.ID) {
		return errors.NewPermissionError("you are not allowed to close this ticket")
	}

	guildCfg, err := uc.guildRepo.GetByGuildID(ctx, t.GuildID())
	if err != nil {
		return err
	}
	if !guildCfg.AllowUserClose() {
		return errors.NewPermissionError("ticket closing is restricted to staff in this guild")
	}
	if !t.Status().IsPendingClose() {
		return errors.NewPermissionError("mark the ticket as solved before closing it")
	}
	return nil
}

// scheduleDeletion removes the channel after a grace period. The ticket is
// already closed; deletion failures only leave a dead channel behind, which
// the reconcile pass tolerates.
func (uc *ConfirmCloseUseCase) scheduleDeletion(t *ticket.Ticket) {
	guildID := t.GuildID()
	channelRef := t.ChannelRef()
	ticketID := t.ID()

	goroutine.SafeGo(uc.logger, "ticket-channel-deletion", func() {
		time.Sleep(uc.deleteDelay)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := uc.gateway.DeleteChannel(ctx, guildID, channelRef); err != nil {
			uc.logger.Warnw("deferred channel deletion failed",
				"ticket_id", ticketID, "channel_ref", channelRef, "error", err)
		}
	})
}
