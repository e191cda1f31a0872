package usecases

import (
	"context"

	"ticketdesk/internal/domain/category"
	"ticketdesk/internal/shared/errors"
)

type mockCategoryRepository struct {
	SaveFunc              func(ctx context.Context, c *category.Category) error
	UpdateFunc            func(ctx context.Context, c *category.Category) error
	GetByIDFunc           func(ctx context.Context, id uint) (*category.Category, error)
	GetWithFieldsFunc     func(ctx context.Context, id uint) (*category.Category, error)
	ListByGuildFunc       func(ctx context.Context, guildID string) ([]*category.Category, error)
	ListActiveByGuildFunc func(ctx context.Context, guildID string) ([]*category.Category, error)
	SaveFieldFunc         func(ctx context.Context, f *category.Field) error
	DeleteFieldFunc       func(ctx context.Context, fieldID uint) error
	GetFieldByIDFunc      func(ctx context.Context, fieldID uint) (*category.Field, error)

	savedFields []*category.Field
}

func (m *mockCategoryRepository) Save(ctx context.Context, c *category.Category) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("category not found")
}

func (m *mockCategoryRepository) GetWithFields(ctx context.Context, id uint) (*category.Category, error) {
	if m.GetWithFieldsFunc != nil {
		return m.GetWithFieldsFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("category not found")
}

func (m *mockCategoryRepository) ListByGuild(ctx context.Context, guildID string) ([]*category.Category, error) {
	if m.ListByGuildFunc != nil {
		return m.ListByGuildFunc(ctx, guildID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ListActiveByGuild(ctx context.Context, guildID string) ([]*category.Category, error) {
	if m.ListActiveByGuildFunc != nil {
		return m.ListActiveByGuildFunc(ctx, guildID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) SaveField(ctx context.Context, f *category.Field) error {
	if m.SaveFieldFunc != nil {
		return m.SaveFieldFunc(ctx, f)
	}
	m.savedFields = append(m.savedFields, f)
	return f.SetID(uint(len(m.savedFields)))
}

func (m *mockCategoryRepository) DeleteField(ctx context.Context, fieldID uint) error {
	if m.DeleteFieldFunc != nil {
		return m.DeleteFieldFunc(ctx, fieldID)
	}
	return nil
}

func (m *mockCategoryRepository) GetFieldByID(ctx context.Context, fieldID uint) (*category.Field, error) {
	if m.GetFieldByIDFunc != nil {
		return m.GetFieldByIDFunc(ctx, fieldID)
	}
	return nil, errors.NewNotFoundError("field not found")
}
