package usecases

import (
	"context"

	"ticketdesk/internal/domain/category"
	"ticketdesk/internal/domain/guild"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
)

type mockGuildRepository struct {
	SaveFunc         func(ctx context.Context, c *guild.Config) error
	UpdateFunc       func(ctx context.Context, c *guild.Config) error
	GetByGuildIDFunc func(ctx context.Context, guildID string) (*guild.Config, error)
	ListGuildIDsFunc func(ctx context.Context) ([]string, error)
}

func (m *mockGuildRepository) Save(ctx context.Context, c *guild.Config) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockGuildRepository) Update(ctx context.Context, c *guild.Config) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockGuildRepository) GetByGuildID(ctx context.Context, guildID string) (*guild.Config, error) {
	if m.GetByGuildIDFunc != nil {
		return m.GetByGuildIDFunc(ctx, guildID)
	}
	return nil, errors.NewNotFoundError("guild config not found")
}

func (m *mockGuildRepository) ListGuildIDs(ctx context.Context) ([]string, error) {
	if m.ListGuildIDsFunc != nil {
		return m.ListGuildIDsFunc(ctx)
	}
	return nil, nil
}

type mockCategoryRepository struct {
	category.Repository

	ListByGuildFunc func(ctx context.Context, guildID string) ([]*category.Category, error)
}

func (m *mockCategoryRepository) ListByGuild(ctx context.Context, guildID string) ([]*category.Category, error) {
	if m.ListByGuildFunc != nil {
		return m.ListByGuildFunc(ctx, guildID)
	}
	return nil, nil
}

type mockTicketRepository struct {
	ticket.Repository

	ListFunc           func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	CountNotClosedFunc func(ctx context.Context, guildID string, openerID string) (int64, error)
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountNotClosed(ctx context.Context, guildID string, openerID string) (int64, error) {
	if m.CountNotClosedFunc != nil {
		return m.CountNotClosedFunc(ctx, guildID, openerID)
	}
	return 0, nil
}
