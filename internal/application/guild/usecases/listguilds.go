package usecases

import (
	"context"

	"ticketdesk/internal/application/guild/dto"
	"ticketdesk/internal/domain/category"
	"ticketdesk/internal/domain/guild"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/logger"
)

// ListGuildsUseCase builds the console overview: every configured guild with
// its category and ticket counts.
type ListGuildsUseCase struct {
	guildRepo    guild.Repository
	categoryRepo category.Repository
	ticketRepo   ticket.Repository
	logger       logger.Interface
}

func NewListGuildsUseCase(
	guildRepo guild.Repository,
	categoryRepo category.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ListGuildsUseCase {
	return &ListGuildsUseCase{
		guildRepo:    guildRepo,
		categoryRepo: categoryRepo,
		ticketRepo:   ticketRepo,
		logger:       logger,
	}
}

func (uc *ListGuildsUseCase) Execute(ctx context.Context) ([]dto.GuildSummaryDTO, error) {
	guildIDs, err := uc.guildRepo.ListGuildIDs(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.GuildSummaryDTO, 0, len(guildIDs))
	for _, guildID := range guildIDs {
		summary := dto.GuildSummaryDTO{GuildID: guildID}

		categories, err := uc.categoryRepo.ListByGuild(ctx, guildID)
		if err != nil {
			uc.logger.Warnw("failed to count categories", "guild_id", guildID, "error", err)
		} else {
			summary.Categories = len(categories)
		}

		openCount, err := uc.ticketRepo.CountNotClosed(ctx, guildID, "")
		if err != nil {
			uc.logger.Warnw("failed to count open tickets", "guild_id", guildID, "error", err)
		} else {
			summary.OpenTickets = openCount
		}

		_, total, err := uc.ticketRepo.List(ctx, ticket.Filter{GuildID: guildID, Page: 1, PageSize: 1})
		if err != nil {
			uc.logger.Warnw("failed to count tickets", "guild_id", guildID, "error", err)
		} else {
			summary.Tickets = total
		}

		out = append(out, summary)
	}
	return out, nil
}
