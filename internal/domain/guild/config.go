package guild

import (
	"fmt"
)

// Config holds the per-guild ticket settings. One row per guild, upserted by
// administrators through the console.
type Config struct {
	id                uint
	guildID           string
	supportChannelRef string
	ticketParentRef   string
	staffRoleRef      string
	panelTitle        string
	panelDescription  string
	contactName       string
	allowUserClose    bool
}

func NewConfig(guildID string) (*Config, error) {
	if guildID == "" {
		return nil, fmt.Errorf("guild ID is required")
	}

	return &Config{
		guildID:    guildID,
		panelTitle: "Support Tickets",
	}, nil
}

func ReconstructConfig(
	id uint,
	guildID string,
	supportChannelRef string,
	ticketParentRef string,
	staffRoleRef string,
	panelTitle string,
	panelDescription string,
	contactName string,
	allowUserClose bool,
) (*Config, error) {
	if id == 0 {
		return nil, fmt.Errorf("config ID cannot be zero")
	}
	if guildID == "" {
		return nil, fmt.Errorf("guild ID is required")
	}

	return &Config{
		id:                id,
		guildID:           guildID,
		supportChannelRef: supportChannelRef,
		ticketParentRef:   ticketParentRef,
		staffRoleRef:      staffRoleRef,
		panelTitle:        panelTitle,
		panelDescription:  panelDescription,
		contactName:       contactName,
		allowUserClose:    allowUserClose,
	}, nil
}

func (c *Config) ID() uint {
	return c.id
}

func (c *Config) GuildID() string {
	return c.guildID
}

func (c *Config) SupportChannelRef() string {
	return c.supportChannelRef
}

func (c *Config) TicketParentRef() string {
	return c.ticketParentRef
}

func (c *Config) StaffRoleRef() string {
	return c.staffRoleRef
}

func (c *Config) PanelTitle() string {
	return c.panelTitle
}

func (c *Config) PanelDescription() string {
	return c.panelDescription
}

func (c *Config) ContactName() string {
	return c.contactName
}

func (c *Config) AllowUserClose() bool {
	return c.allowUserClose
}

func (c *Config) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("config ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("config ID cannot be zero")
	}
	c.id = id
	return nil
}

// Settings is a partial update; nil fields are left untouched so the console
// can change settings independently.
type Settings struct {
	SupportChannelRef *string
	TicketParentRef   *string
	StaffRoleRef      *string
	PanelTitle        *string
	PanelDescription  *string
	ContactName       *string
	AllowUserClose    *bool
}

func (c *Config) UpdateSettings(s Settings) error {
	if s.PanelTitle != nil && len(*s.PanelTitle) > 256 {
		return fmt.Errorf("panel title exceeds maximum length of 256 characters")
	}
	if s.SupportChannelRef != nil {
		c.supportChannelRef = *s.SupportChannelRef
	}
	if s.TicketParentRef != nil {
		c.ticketParentRef = *s.TicketParentRef
	}
	if s.StaffRoleRef != nil {
		c.staffRoleRef = *s.StaffRoleRef
	}
	if s.PanelTitle != nil {
		c.panelTitle = *s.PanelTitle
	}
	if s.PanelDescription != nil {
		c.panelDescription = *s.PanelDescription
	}
	if s.ContactName != nil {
		c.contactName = *s.ContactName
	}
	if s.AllowUserClose != nil {
		c.allowUserClose = *s.AllowUserClose
	}
	return nil
}
