package usecases

import (
	"context"

	"ticketdesk/internal/application/category/dto"
	"ticketdesk/internal/domain/category"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type AddFieldCommand struct {
	CategoryID uint
	Field      FieldInput
}

type AddFieldUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewAddFieldUseCase(categoryRepo category.Repository, logger logger.Interface) *AddFieldUseCase {
	return &AddFieldUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *AddFieldUseCase) Execute(ctx context.Context, cmd AddFieldCommand) (*dto.FieldDTO, error) {
	cat, err := uc.categoryRepo.GetWithFields(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}

	if len(cat.Fields()) >= maxFieldsPerCategory {
		return nil, errors.NewValidationError("a category can have at most 5 intake fields")
	}
	for _, existing := range cat.Fields() {
		if existing.Name() == cmd.Field.Name {
			return nil, errors.NewValidationError("a field with this name already exists")
		}
	}

	f, err := category.NewField(cat.ID(), cmd.Field.Name, cmd.Field.Label,
		category.FieldStyle(cmd.Field.Style), cmd.Field.Required,
		cmd.Field.MinLength, cmd.Field.MaxLength, cmd.Field.SortOrder)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.SaveField(ctx, f); err != nil {
		uc.logger.Errorw("failed to save field", "category_id", cat.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("field added", "category_id", cat.ID(), "field_id", f.ID())

	out := dto.ToFieldDTO(f)
	return &out, nil
}
