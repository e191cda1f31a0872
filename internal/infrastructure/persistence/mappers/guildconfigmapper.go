package mappers

import (
	"fmt"

	"ticketdesk/internal/domain/guild"
	"ticketdesk/internal/infrastructure/persistence/models"
)

// GuildConfigMapper handles the conversion between guild Config entities and
// persistence models.
type GuildConfigMapper interface {
	ToModel(c *guild.Config) *models.GuildConfigModel
	ToDomain(model *models.GuildConfigModel) (*guild.Config, error)
}

type GuildConfigMapperImpl struct{}

func NewGuildConfigMapper() GuildConfigMapper {
	return &GuildConfigMapperImpl{}
}

func (m *GuildConfigMapperImpl) ToModel(c *guild.Config) *models.GuildConfigModel {
	return &models.GuildConfigModel{
		ID:                c.ID(),
		GuildID:           c.GuildID(),
		SupportChannelRef: c.SupportChannelRef(),
		TicketParentRef:   c.TicketParentRef(),
		StaffRoleRef:      c.StaffRoleRef(),
		PanelTitle:        c.PanelTitle(),
		PanelDescription:  c.PanelDescription(),
		ContactName:       c.ContactName(),
		AllowUserClose:    c.AllowUserClose(),
	}
}

func (m *GuildConfigMapperImpl) ToDomain(model *models.GuildConfigModel) (*guild.Config, error) {
	c, err := guild.ReconstructConfig(
		model.ID,
		model.GuildID,
		model.SupportChannelRef,
		model.TicketParentRef,
		model.StaffRoleRef,
		model.PanelTitle,
		model.PanelDescription,
		model.ContactName,
		model.AllowUserClose,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct guild config (id=%d): %w", model.ID, err)
	}
	return c, nil
}
