package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ticketdesk/internal/domain/guild"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/db"
	"ticketdesk/internal/shared/errors"
)

type GuildConfigRepository struct {
	db     *gorm.DB
	mapper mappers.GuildConfigMapper
}

func NewGuildConfigRepository(db *gorm.DB) *GuildConfigRepository {
	return &GuildConfigRepository{
		db:     db,
		mapper: mappers.NewGuildConfigMapper(),
	}
}

func (r *GuildConfigRepository) Save(ctx context.Context, c *guild.Config) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save guild config: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *GuildConfigRepository) Update(ctx context.Context, c *guild.Config) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.GuildConfigModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"support_channel_ref": model.SupportChannelRef,
			"ticket_parent_ref":   model.TicketParentRef,
			"staff_role_ref":      model.StaffRoleRef,
			"panel_title":         model.PanelTitle,
			"panel_description":   model.PanelDescription,
			"contact_name":        model.ContactName,
			"allow_user_close":    model.AllowUserClose,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update guild config: %w", result.Error)
	}

	return nil
}

func (r *GuildConfigRepository) GetByGuildID(ctx context.Context, guildID string) (*guild.Config, error) {
	var model models.GuildConfigModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("guild_id = ?", guildID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("guild config not found")
		}
		return nil, fmt.Errorf("failed to find guild config: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *GuildConfigRepository) ListGuildIDs(ctx context.Context) ([]string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var guildIDs []string
	if err := tx.
		Model(&models.GuildConfigModel{}).
		Order("guild_id ASC").
		Pluck("guild_id", &guildIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to list guild IDs: %w", err)
	}

	return guildIDs, nil
}
