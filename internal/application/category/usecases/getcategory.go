package usecases

import (
	"context"

	"ticketdesk/internal/application/category/dto"
	"ticketdesk/internal/domain/category"
	"ticketdesk/internal/shared/logger"
)

type GetCategoryQuery struct {
	CategoryID uint
}

type GetCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewGetCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *GetCategoryUseCase) Execute(ctx context.Context, query GetCategoryQuery) (*dto.CategoryDTO, error) {
	cat, err := uc.categoryRepo.GetWithFields(ctx, query.CategoryID)
	if err != nil {
		return nil, err
	}
	return dto.ToCategoryDTO(cat), nil
}
