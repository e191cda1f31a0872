package category

import (
	"fmt"
)

// FieldStyle selects the intake form control used to collect the field.
type FieldStyle string

const (
	FieldStyleShort     FieldStyle = "short"
	FieldStyleParagraph FieldStyle = "paragraph"
)

func (s FieldStyle) IsValid() bool {
	return s == FieldStyleShort || s == FieldStyleParagraph
}

// Field is one question on a category's intake form.
type Field struct {
	id         uint
	categoryID uint
	name       string
	label      string
	style      FieldStyle
	required   bool
	minLength  int
	maxLength  int
	sortOrder  int
}

func NewField(categoryID uint, name, label string, style FieldStyle, required bool, minLength, maxLength, sortOrder int) (*Field, error) {
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("field name is required")
	}
	if label == "" {
		label = name
	}
	if len(label) > 45 {
		return nil, fmt.Errorf("field label exceeds maximum length of 45 characters")
	}
	if !style.IsValid() {
		return nil, fmt.Errorf("invalid field style: %s", style)
	}
	if minLength < 0 {
		minLength = 0
	}
	if maxLength <= 0 || maxLength > 1024 {
		maxLength = 1024
	}
	if minLength > maxLength {
		return nil, fmt.Errorf("field min length cannot exceed max length")
	}
	if sortOrder < 0 {
		return nil, fmt.Errorf("field sort order cannot be negative")
	}

	return &Field{
		categoryID: categoryID,
		name:       name,
		label:      label,
		style:      style,
		required:   required,
		minLength:  minLength,
		maxLength:  maxLength,
		sortOrder:  sortOrder,
	}, nil
}

func ReconstructField(id, categoryID uint, name, label string, style FieldStyle, required bool, minLength, maxLength, sortOrder int) (*Field, error) {
	if id == 0 {
		return nil, fmt.Errorf("field ID cannot be zero")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if !style.IsValid() {
		return nil, fmt.Errorf("invalid field style: %s", style)
	}

	return &Field{
		id:         id,
		categoryID: categoryID,
		name:       name,
		label:      label,
		style:      style,
		required:   required,
		minLength:  minLength,
		maxLength:  maxLength,
		sortOrder:  sortOrder,
	}, nil
}

func (f *Field) ID() uint {
	return f.id
}

func (f *Field) CategoryID() uint {
	return f.categoryID
}

func (f *Field) Name() string {
	return f.name
}

func (f *Field) Label() string {
	return f.label
}

func (f *Field) Style() FieldStyle {
	return f.style
}

func (f *Field) IsRequired() bool {
	return f.required
}

func (f *Field) MinLength() int {
	return f.minLength
}

func (f *Field) MaxLength() int {
	return f.maxLength
}

func (f *Field) SortOrder() int {
	return f.sortOrder
}

// ValidateAnswer checks a submitted intake value against the field's
// constraints.
func (f *Field) ValidateAnswer(value string) error {
	if value == "" {
		if f.required {
			return fmt.Errorf("field %q is required", f.label)
		}
		return nil
	}
	if len(value) < f.minLength {
		return fmt.Errorf("field %q must be at least %d characters", f.label, f.minLength)
	}
	if len(value) > f.maxLength {
		return fmt.Errorf("field %q must be at most %d characters", f.label, f.maxLength)
	}
	return nil
}

func (f *Field) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("field ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("field ID cannot be zero")
	}
	f.id = id
	return nil
}
