package models

type TicketCategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	GuildID     string `gorm:"size:32;not null;index"`
	Name        string `gorm:"size:100;not null"`
	Placeholder string `gorm:"size:200"`
	Active      bool   `gorm:"not null;default:true;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketCategoryModel) TableName() string {
	return "ticket_categories"
}

type CategoryFieldModel struct {
	ID         uint   `gorm:"primaryKey"`
	CategoryID uint   `gorm:"not null;index"`
	Name       string `gorm:"size:45;not null"`
	Label      string `gorm:"size:45;not null"`
	Style      string `gorm:"size:20;not null"`
	Required   bool   `gorm:"not null;default:false"`
	MinLength  int    `gorm:"not null;default:0"`
	MaxLength  int    `gorm:"not null;default:1024"`
	SortOrder  int    `gorm:"not null;default:0"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CategoryFieldModel) TableName() string {
	return "category_fields"
}
