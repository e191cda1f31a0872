package dto

import (
	"ticketdesk/internal/domain/category"
)

type FieldDTO struct {
	ID         uint   `json:"id"`
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
	Label      string `json:"label"`
	Style      string `json:"style"`
	Required   bool   `json:"required"`
	MinLength  int    `json:"min_length"`
	MaxLength  int    `json:"max_length"`
	SortOrder  int    `json:"sort_order"`
}

type CategoryDTO struct {
	ID          uint       `json:"id"`
	GuildID     string     `json:"guild_id"`
	Name        string     `json:"name"`
	Placeholder string     `json:"placeholder,omitempty"`
	Active      bool       `json:"active"`
	Fields      []FieldDTO `json:"fields,omitempty"`
}

func ToFieldDTO(f *category.Field) FieldDTO {
	return FieldDTO{
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

func ToCategoryDTO(c *category.Category) *CategoryDTO {
	if c == nil {
		return nil
	}

	fields := make([]FieldDTO, 0, len(c.Fields()))
	for _, f := range c.Fields() {
		fields = append(fields, ToFieldDTO(f))
	}

	return &CategoryDTO{
		ID:          c.ID(),
		GuildID:     c.GuildID(),
		Name:        c.Name(),
		Placeholder: c.Placeholder(),
		Active:      c.IsActive(),
		Fields:      fields,
	}
}
