package usecases

import (
	"context"

	"ticketdesk/internal/domain/category"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type RemoveFieldCommand struct {
	CategoryID uint
	FieldID    uint
}

type RemoveFieldUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewRemoveFieldUseCase(categoryRepo category.Repository, logger logger.Interface) *RemoveFieldUseCase {
	return &RemoveFieldUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *RemoveFieldUseCase) Execute(ctx context.Context, cmd RemoveFieldCommand) error {
	f, err := uc.categoryRepo.GetFieldByID(ctx, cmd.FieldID)
	if err != nil {
		return err
	}
	if f.CategoryID() != cmd.CategoryID {
		return errors.NewNotFoundError("field not found in this category")
	}

	if err := uc.categoryRepo.DeleteField(ctx, cmd.FieldID); err != nil {
		uc.logger.Errorw("failed to delete field", "field_id", cmd.FieldID, "error", err)
		return err
	}

	uc.logger.Infow("field removed", "category_id", cmd.CategoryID, "field_id", cmd.FieldID)
	return nil
}
