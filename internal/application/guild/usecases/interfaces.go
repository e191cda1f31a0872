package usecases

import (
	"context"

	"ticketdesk/internal/application/guild/dto"
)

type UpsertConfigExecutor interface {
	Execute(ctx context.Context, cmd UpsertConfigCommand) (*dto.ConfigDTO, error)
}

type GetConfigExecutor interface {
	Execute(ctx context.Context, query GetConfigQuery) (*dto.ConfigDTO, error)
}

type ListGuildsExecutor interface {
	Execute(ctx context.Context) ([]dto.GuildSummaryDTO, error)
}
