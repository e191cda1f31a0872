package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ticketdesk/internal/domain/category"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/db"
	"ticketdesk/internal/shared/errors"
)

type CategoryRepository struct {
	db     *gorm.DB
	mapper mappers.CategoryMapper
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		mapper: mappers.NewCategoryMapper(),
	}
}

func (r *CategoryRepository) Save(ctx context.Context, c *category.Category) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketCategoryModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"placeholder": model.Placeholder,
			"active":      model.Active,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}

	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	var model models.TicketCategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CategoryRepository) GetWithFields(ctx context.Context, id uint) (*category.Category, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	var rows []models.CategoryFieldModel
	if err := tx.
		Where("category_id = ?", id).
		Order("sort_order ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load category fields: %w", err)
	}

	for i := range rows {
		f, err := r.mapper.FieldToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		if err := c.AddField(f); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (r *CategoryRepository) ListByGuild(ctx context.Context, guildID string) ([]*category.Category, error) {
	return r.listByGuild(ctx, guildID, false)
}

func (r *CategoryRepository) ListActiveByGuild(ctx context.Context, guildID string) ([]*category.Category, error) {
	return r.listByGuild(ctx, guildID, true)
}

func (r *CategoryRepository) listByGuild(ctx context.Context, guildID string, activeOnly bool) ([]*category.Category, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Where("guild_id = ?", guildID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var rows []models.TicketCategoryModel
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*category.Category, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, nil
}

func (r *CategoryRepository) SaveField(ctx context.Context, f *category.Field) error {
	model := r.mapper.FieldToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save category field: %w", err)
	}

	if err := f.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *CategoryRepository) DeleteField(ctx context.Context, fieldID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.CategoryFieldModel{}, fieldID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category field: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("category field not found")
	}
	return nil
}

func (r *CategoryRepository) GetFieldByID(ctx context.Context, fieldID uint) (*category.Field, error) {
	var model models.CategoryFieldModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, fieldID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("category field not found")
		}
		return nil, fmt.Errorf("failed to find category field: %w", err)
	}

	return r.mapper.FieldToDomain(&model)
}
