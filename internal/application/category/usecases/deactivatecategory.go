package usecases

import (
	"context"

	"ticketdesk/internal/domain/category"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type DeactivateCategoryCommand struct {
	GuildID    string
	CategoryID uint
}

type DeactivateCategoryResult struct {
	Changed bool
}

// DeactivateCategoryUseCase soft-deletes a category. Existing tickets keep
// their category reference; the category just stops accepting new tickets.
type DeactivateCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewDeactivateCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *DeactivateCategoryUseCase {
	return &DeactivateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *DeactivateCategoryUseCase) Execute(ctx context.Context, cmd DeactivateCategoryCommand) (*DeactivateCategoryResult, error) {
	cat, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat.GuildID() != cmd.GuildID {
		return nil, errors.NewNotFoundError("category not found in this guild")
	}

	if !cat.IsActive() {
		return &DeactivateCategoryResult{Changed: false}, nil
	}

	cat.Deactivate()
	if err := uc.categoryRepo.Update(ctx, cat); err != nil {
		uc.logger.Errorw("failed to deactivate category", "category_id", cat.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("category deactivated", "category_id", cat.ID(), "guild_id", cmd.GuildID)

	return &DeactivateCategoryResult{Changed: true}, nil
}
