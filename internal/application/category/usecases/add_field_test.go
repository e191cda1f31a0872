package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/category"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

func categoryWithFields(t *testing.T, fieldNames ...string) *category.Category {
	t.Helper()
	cat, err := category.ReconstructCategory(3, "guild-1", "Support", "", true)
	require.NoError(t, err)
	for i, name := range fieldNames {
		f, err := category.ReconstructField(uint(i+1), 3, name, name, category.FieldStyleShort, false, 0, 100, i)
		require.NoError(t, err)
		require.NoError(t, cat.AddField(f))
	}
	return cat
}

func TestAddField_Success(t *testing.T) {
	cat := categoryWithFields(t, "issue")
	repo := &mockCategoryRepository{
		GetWithFieldsFunc: func(ctx context.Context, id uint) (*category.Category, error) { return cat, nil },
	}

	uc := NewAddFieldUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), AddFieldCommand{
		CategoryID: 3,
		Field:      FieldInput{Name: "steps", Label: "Steps to reproduce", Style: "paragraph", Required: true, SortOrder: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "steps", result.Name)
	assert.Equal(t, uint(3), result.CategoryID)
	require.Len(t, repo.savedFields, 1)
}

func TestAddField_FieldCapReached(t *testing.T) {
	cat := categoryWithFields(t, "a", "b", "c", "d", "e")
	repo := &mockCategoryRepository{
		GetWithFieldsFunc: func(ctx context.Context, id uint) (*category.Category, error) { return cat, nil },
	}

	uc := NewAddFieldUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), AddFieldCommand{
		CategoryID: 3,
		Field:      FieldInput{Name: "extra", Style: "short"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, repo.savedFields)
}

func TestAddField_DuplicateName(t *testing.T) {
	cat := categoryWithFields(t, "issue")
	repo := &mockCategoryRepository{
		GetWithFieldsFunc: func(ctx context.Context, id uint) (*category.Category, error) { return cat, nil },
	}

	uc := NewAddFieldUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), AddFieldCommand{
		CategoryID: 3,
		Field:      FieldInput{Name: "issue", Style: "short"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestRemoveField(t *testing.T) {
	field, err := category.ReconstructField(9, 3, "issue", "Issue", category.FieldStyleShort, true, 0, 100, 0)
	require.NoError(t, err)

	t.Run("removes field from its category", func(t *testing.T) {
		deleted := uint(0)
		repo := &mockCategoryRepository{
			GetFieldByIDFunc: func(ctx context.Context, fieldID uint) (*category.Field, error) { return field, nil },
			DeleteFieldFunc: func(ctx context.Context, fieldID uint) error {
				deleted = fieldID
				return nil
			},
		}

		uc := NewRemoveFieldUseCase(repo, logger.NewLogger())

		require.NoError(t, uc.Execute(context.Background(), RemoveFieldCommand{CategoryID: 3, FieldID: 9}))
		assert.Equal(t, uint(9), deleted)
	})

	t.Run("wrong category reported as not found", func(t *testing.T) {
		repo := &mockCategoryRepository{
			GetFieldByIDFunc: func(ctx context.Context, fieldID uint) (*category.Field, error) { return field, nil },
		}

		uc := NewRemoveFieldUseCase(repo, logger.NewLogger())

		err := uc.Execute(context.Background(), RemoveFieldCommand{CategoryID: 4, FieldID: 9})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
