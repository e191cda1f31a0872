package mappers

import (
	"fmt"

	"ticketdesk/internal/domain/category"
	"ticketdesk/internal/infrastructure/persistence/models"
)

// CategoryMapper handles the conversion between Category/Field domain
// entities and persistence models.
type CategoryMapper interface {
	ToModel(c *category.Category) *models.TicketCategoryModel
	ToDomain(model *models.TicketCategoryModel) (*category.Category, error)
	FieldToModel(f *category.Field) *models.CategoryFieldModel
	FieldToDomain(model *models.CategoryFieldModel) (*category.Field, error)
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToModel(c *category.Category) *models.TicketCategoryModel {
	return &models.TicketCategoryModel{
		ID:          c.ID(),
		GuildID:     c.GuildID(),
		Name:        c.Name(),
		Placeholder: c.Placeholder(),
		Active:      c.IsActive(),
	}
}

func (m *CategoryMapperImpl) ToDomain(model *models.TicketCategoryModel) (*category.Category, error) {
	c, err := category.ReconstructCategory(
		model.ID,
		model.GuildID,
		model.Name,
		model.Placeholder,
		model.Active,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct category (id=%d): %w", model.ID, err)
	}
	return c, nil
}

func (m *CategoryMapperImpl) FieldToModel(f *category.Field) *models.CategoryFieldModel {
	return &models.CategoryFieldModel{
		ID:         f.ID(),
		CategoryID: f.CategoryID(),
		Name:       f.Name(),
		Label:      f.Label(),
		Style:      string(f.Style()),
		Required:   f.IsRequired(),
		MinLength:  f.MinLength(),
		MaxLength:  f.MaxLength(),
		SortOrder:  f.SortOrder(),
	}
}

func (m *CategoryMapperImpl) FieldToDomain(model *models.CategoryFieldModel) (*category.Field, error) {
	f, err := category.ReconstructField(
		model.ID,
		model.CategoryID,
		model.Name,
		model.Label,
		category.FieldStyle(model.Style),
		model.Required,
		model.MinLength,
		model.MaxLength,
		model.SortOrder,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct category field (id=%d): %w", model.ID, err)
	}
	return f, nil
}
