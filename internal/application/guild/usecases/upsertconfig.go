package usecases

import (
	"context"

	"ticketdesk/internal/application/guild/dto"
	"ticketdesk/internal/domain/guild"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type UpsertConfigCommand struct {
	GuildID           string
	SupportChannelRef *string
	TicketParentRef   *string
	StaffRoleRef      *string
	PanelTitle        *string
	PanelDescription  *string
	ContactName       *string
	AllowUserClose    *bool
}

// UpsertConfigUseCase creates or updates a guild's settings. Fields left nil
// in the command keep their stored value.
type UpsertConfigUseCase struct {
	guildRepo guild.Repository
	logger    logger.Interface
}

func NewUpsertConfigUseCase(guildRepo guild.Repository, logger logger.Interface) *UpsertConfigUseCase {
	return &UpsertConfigUseCase{
		guildRepo: guildRepo,
		logger:    logger,
	}
}

func (uc *UpsertConfigUseCase) Execute(ctx context.Context, cmd UpsertConfigCommand) (*dto.ConfigDTO, error) {
	if cmd.GuildID == "" {
		return nil, errors.NewValidationError("guild ID is required")
	}

	settings := guild.Settings{
		SupportChannelRef: cmd.SupportChannelRef,
		TicketParentRef:   cmd.TicketParentRef,
		StaffRoleRef:      cmd.StaffRoleRef,
		PanelTitle:        cmd.PanelTitle,
		PanelDescription:  cmd.PanelDescription,
		ContactName:       cmd.ContactName,
		AllowUserClose:    cmd.AllowUserClose,
	}

	cfg, err := uc.guildRepo.GetByGuildID(ctx, cmd.GuildID)
	switch {
	case err == nil:
		if err := cfg.UpdateSettings(settings); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.guildRepo.Update(ctx, cfg); err != nil {
			uc.logger.Errorw("failed to update guild config", "guild_id", cmd.GuildID, "error", err)
			return nil, err
		}

	case errors.IsNotFoundError(err):
		cfg, err = guild.NewConfig(cmd.GuildID)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := cfg.UpdateSettings(settings); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.guildRepo.Save(ctx, cfg); err != nil {
			uc.logger.Errorw("failed to save guild config", "guild_id", cmd.GuildID, "error", err)
			return nil, err
		}
		uc.logger.Infow("guild config created", "guild_id", cmd.GuildID)

	default:
		return nil, err
	}

	return dto.ToConfigDTO(cfg), nil
}
