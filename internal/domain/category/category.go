package category

import (
	"fmt"
)

// Category is an admin-defined ticket category. Categories are soft-deleted:
// deactivated categories keep their rows so historical tickets stay
// resolvable, but no longer accept new tickets.
type Category struct {
	id          uint
	guildID     string
	name        string
	placeholder string
	active      bool
	fields      []*Field
}

func NewCategory(guildID, name, placeholder string) (*Category, error) {
	if guildID == "" {
		return nil, fmt.Errorf("guild ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("category name exceeds maximum length of 100 characters")
	}

	return &Category{
		guildID:     guildID,
		name:        name,
		placeholder: placeholder,
		active:      true,
		fields:      []*Field{},
	}, nil
}

func ReconstructCategory(id uint, guildID, name, placeholder string, active bool) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if guildID == "" {
		return nil, fmt.Errorf("guild ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	return &Category{
		id:          id,
		guildID:     guildID,
		name:        name,
		placeholder: placeholder,
		active:      active,
		fields:      []*Field{},
	}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) GuildID() string {
	return c.guildID
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Placeholder() string {
	return c.placeholder
}

func (c *Category) IsActive() bool {
	return c.active
}

// Fields returns the category's intake fields in form order.
func (c *Category) Fields() []*Field {
	out := make([]*Field, len(c.fields))
	copy(out, c.fields)
	return out
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Category) AddField(f *Field) error {
	if f == nil {
		return fmt.Errorf("field cannot be nil")
	}
	if c.id != 0 && f.CategoryID() != c.id {
		return fmt.Errorf("field category ID mismatch")
	}
	c.fields = append(c.fields, f)
	return nil
}

// Deactivate soft-deletes the category.
func (c *Category) Deactivate() {
	c.active = false
}
