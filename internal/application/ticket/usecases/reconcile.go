package usecases

import (
	"context"

	"ticketdesk/internal/domain/guild"
	"ticketdesk/internal/domain/platform"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type ReconcileCommand struct {
	GuildID string
	// Purge additionally force-closes and deletes channels for tickets whose
	// channels still exist.
	Purge bool
	Actor Actor
}

type ReconcileResult struct {
	Checked int
	Closed  int
	Deleted int
}

// ReconcileUseCase resolves drift between the store and the platform.
// External channel existence is authoritative for status: a non-closed ticket
// whose channel is gone is force-closed store-only. The store stays
// authoritative for every other field.
type ReconcileUseCase struct {
	ticketRepo ticket.Repository
	gateway    platform.Gateway
	logger     logger.Interface
}

func NewReconcileUseCase(
	ticketRepo ticket.Repository,
	gateway platform.Gateway,
	logger logger.Interface,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		ticketRepo: ticketRepo,
		gateway:    gateway,
		logger:     logger,
	}
}

func (uc *ReconcileUseCase) Execute(ctx context.Context, cmd ReconcileCommand) (*ReconcileResult, error) {
	uc.logger.Infow("executing reconcile use case", "guild_id", cmd.GuildID, "purge", cmd.Purge)

	if cmd.GuildID == "" {
		return nil, errors.NewValidationError("guild ID is required")
	}
	if !cmd.Actor.Admin {
		return nil, errors.NewPermissionError("reconcile is restricted to administrators")
	}

	tickets, err := uc.ticketRepo.ListNotClosed(ctx, cmd.GuildID)
	if err != nil {
		return nil, err
	}

	result := &ReconcileResult{Checked: len(tickets)}

	for _, t := range tickets {
		exists, err := uc.gateway.ChannelExists(ctx, t.ChannelRef())
		if err != nil {
			uc.logger.Warnw("skipping ticket, channel check failed",
				"ticket_id", t.ID(), "error", err)
			continue
		}

		if !exists {
			// Channel already gone, nothing external left to mutate.
			if err := uc.forceClose(ctx, t, cmd.Actor.ID); err != nil {
				continue
			}
			result.Closed++
			continue
		}

		if cmd.Purge {
			if err := uc.forceClose(ctx, t, cmd.Actor.ID); err != nil {
				continue
			}
			result.Closed++

			if err := uc.gateway.DeleteChannel(ctx, t.GuildID(), t.ChannelRef()); err != nil {
				uc.logger.Warnw("purge channel deletion failed",
					"ticket_id", t.ID(), "error", err)
				continue
			}
			result.Deleted++
		}
	}

	uc.logger.Infow("reconcile completed",
		"guild_id", cmd.GuildID,
		"checked", result.Checked,
		"closed", result.Closed,
		"deleted", result.Deleted)

	return result, nil
}

func (uc *ReconcileUseCase) forceClose(ctx context.Context, t *ticket.Ticket, closerID string) error {
	if err := t.Close(closerID); err != nil {
		uc.logger.Errorw("failed to force close ticket", "ticket_id", t.ID(), "error", err)
		return err
	}
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist forced close", "ticket_id", t.ID(), "error", err)
		return err
	}
	return nil
}

// ReconcileSweeper adapts the reconcile use case to the scheduler: one sweep
// reconciles every configured guild without purging.
type ReconcileSweeper struct {
	guildRepo guild.Repository
	reconcile ReconcileExecutor
	logger    logger.Interface
}

func NewReconcileSweeper(
	guildRepo guild.Repository,
	reconcile ReconcileExecutor,
	logger logger.Interface,
) *ReconcileSweeper {
	return &ReconcileSweeper{
		guildRepo: guildRepo,
		reconcile: reconcile,
		logger:    logger,
	}
}

func (s *ReconcileSweeper) Execute(ctx context.Context) (int, error) {
	guildIDs, err := s.guildRepo.ListGuildIDs(ctx)
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, guildID := range guildIDs {
		result, err := s.reconcile.Execute(ctx, ReconcileCommand{
			GuildID: guildID,
			Actor:   Actor{ID: "system", Admin: true},
		})
		if err != nil {
			s.logger.Warnw("guild reconcile failed", "guild_id", guildID, "error", err)
			continue
		}
		closed += result.Closed
	}

	return closed, nil
}
