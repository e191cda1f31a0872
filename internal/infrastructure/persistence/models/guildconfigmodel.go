package models

type GuildConfigModel struct {
	ID                uint   `gorm:"primaryKey"`
	GuildID           string `gorm:"size:32;not null;uniqueIndex"`
	SupportChannelRef string `gorm:"size:32"`
	TicketParentRef   string `gorm:"size:32"`
	StaffRoleRef      string `gorm:"size:32"`
	PanelTitle        string `gorm:"size:256"`
	PanelDescription  string `gorm:"type:text"`
	ContactName       string `gorm:"size:100"`
	AllowUserClose    bool   `gorm:"not null;default:false"`
	CreatedAt         int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (GuildConfigModel) TableName() string {
	return "guild_configs"
}
