package dto

import (
	"ticketdesk/internal/domain/guild"
)

type ConfigDTO struct {
	ID                uint   `json:"id"`
	GuildID           string `json:"guild_id"`
	SupportChannelRef string `json:"support_channel_ref,omitempty"`
	TicketParentRef   string `json:"ticket_parent_ref,omitempty"`
	StaffRoleRef      string `json:"staff_role_ref,omitempty"`
	PanelTitle        string `json:"panel_title"`
	PanelDescription  string `json:"panel_description,omitempty"`
	ContactName       string `json:"contact_name,omitempty"`
	AllowUserClose    bool   `json:"allow_user_close"`
}

// GuildSummaryDTO is one row of the console's guild overview.
type GuildSummaryDTO struct {
	GuildID     string `json:"guild_id"`
	Categories  int    `json:"categories"`
	OpenTickets int64  `json:"open_tickets"`
	Tickets     int64  `json:"tickets"`
}

func ToConfigDTO(c *guild.Config) *ConfigDTO {
	if c == nil {
		return nil
	}

	return &ConfigDTO{
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
