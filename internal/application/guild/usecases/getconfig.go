package usecases

import (
	"context"

	"ticketdesk/internal/application/guild/dto"
	"ticketdesk/internal/domain/guild"
	"ticketdesk/internal/shared/logger"
)

type GetConfigQuery struct {
	GuildID string
}

type GetConfigUseCase struct {
	guildRepo guild.Repository
	logger    logger.Interface
}

func NewGetConfigUseCase(guildRepo guild.Repository, logger logger.Interface) *GetConfigUseCase {
	return &GetConfigUseCase{
		guildRepo: guildRepo,
		logger:    logger,
	}
}

func (uc *GetConfigUseCase) Execute(ctx context.Context, query GetConfigQuery) (*dto.ConfigDTO, error) {
	cfg, err := uc.guildRepo.GetByGuildID(ctx, query.GuildID)
	if err != nil {
		return nil, err
	}
	return dto.ToConfigDTO(cfg), nil
}
