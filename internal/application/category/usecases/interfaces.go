package usecases

import (
	"context"

	"ticketdesk/internal/application/category/dto"
)

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error)
}

type DeactivateCategoryExecutor interface {
	Execute(ctx context.Context, cmd DeactivateCategoryCommand) (*DeactivateCategoryResult, error)
}

type ListCategoriesExecutor interface {
	Execute(ctx context.Context, query ListCategoriesQuery) ([]*dto.CategoryDTO, error)
}

type GetCategoryExecutor interface {
	Execute(ctx context.Context, query GetCategoryQuery) (*dto.CategoryDTO, error)
}

type AddFieldExecutor interface {
	Execute(ctx context.Context, cmd AddFieldCommand) (*dto.FieldDTO, error)
}

type RemoveFieldExecutor interface {
	Execute(ctx context.Context, cmd RemoveFieldCommand) error
}
