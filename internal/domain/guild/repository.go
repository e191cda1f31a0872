package guild

import "context"

type Repository interface {
	Save(ctx context.Context, c *Config) error
	Update(ctx context.Context, c *Config) error
	GetByGuildID(ctx context.Context, guildID string) (*Config, error)
	ListGuildIDs(ctx context.Context) ([]string, error)
}
