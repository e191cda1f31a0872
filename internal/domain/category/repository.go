package category

import "context"

type Repository interface {
	Save(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	// GetWithFields loads the category together with its intake fields in
	// form order.
	GetWithFields(ctx context.Context, id uint) (*Category, error)
	ListByGuild(ctx context.Context, guildID string) ([]*Category, error)
	ListActiveByGuild(ctx context.Context, guildID string) ([]*Category, error)
	SaveField(ctx context.Context, f *Field) error
	DeleteField(ctx context.Context, fieldID uint) error
	GetFieldByID(ctx context.Context, fieldID uint) (*Field, error)
}
