package models

type TicketModel struct {
	ID              uint   `gorm:"primaryKey"`
	DisplayNumber   int    `gorm:"not null"`
	GuildID         string `gorm:"size:32;not null;index"`
	OpenerID        string `gorm:"size:32;not null;index"`
	ChannelRef      string `gorm:"size:32;not null;uniqueIndex"`
	CategoryID      uint   `gorm:"not null;index"`
	Status          string `gorm:"size:20;not null;index"`
	Priority        string `gorm:"size:20;not null;index"`
	FirstMessageRef string `gorm:"size:32"`
	CloserID        string `gorm:"size:32"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt        *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketMessageModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index"`
	MessageRef  string `gorm:"size:32;index"`
	AuthorID    string `gorm:"size:32;not null"`
	Content     string `gorm:"type:text"`
	Attachments string `gorm:"type:json"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketMessageModel) TableName() string {
	return "ticket_messages"
}
