package usecases

import (
	"context"

	"ticketdesk/internal/application/category/dto"
	"ticketdesk/internal/domain/category"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type ListCategoriesQuery struct {
	GuildID         string
	IncludeInactive bool
}

type ListCategoriesUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo category.Repository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, query ListCategoriesQuery) ([]*dto.CategoryDTO, error) {
	if query.GuildID == "" {
		return nil, errors.NewValidationError("guild ID is required")
	}

	var (
		categories []*category.Category
		err        error
	)
	if query.IncludeInactive {
		categories, err = uc.categoryRepo.ListByGuild(ctx, query.GuildID)
	} else {
		categories, err = uc.categoryRepo.ListActiveByGuild(ctx, query.GuildID)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.ToCategoryDTO(c))
	}
	return out, nil
}
