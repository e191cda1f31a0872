package usecases

import (
	"context"

	"ticketdesk/internal/application/category/dto"
	"ticketdesk/internal/domain/category"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

// maxFieldsPerCategory matches the platform's intake form limit.
const maxFieldsPerCategory = 5

type FieldInput struct {
	Name      string
	Label     string
	Style     string
	Required  bool
	MinLength int
	MaxLength int
	SortOrder int
}

type CreateCategoryCommand struct {
	GuildID     string
	Name        string
	Placeholder string
	Fields      []FieldInput
}

type CreateCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error) {
	uc.logger.Infow("executing create category use case", "guild_id", cmd.GuildID, "name", cmd.Name)

	if len(cmd.Fields) > maxFieldsPerCategory {
		return nil, errors.NewValidationError(
			"a category can have at most 5 intake fields")
	}

	cat, err := category.NewCategory(cmd.GuildID, cmd.Name, cmd.Placeholder)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Save(ctx, cat); err != nil {
		uc.logger.Errorw("failed to save category", "guild_id", cmd.GuildID, "error", err)
		return nil, err
	}

	for _, in := range cmd.Fields {
		f, err := category.NewField(cat.ID(), in.Name, in.Label, category.FieldStyle(in.Style),
			in.Required, in.MinLength, in.MaxLength, in.SortOrder)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.categoryRepo.SaveField(ctx, f); err != nil {
			uc.logger.Errorw("failed to save category field",
				"category_id", cat.ID(), "field", in.Name, "error", err)
			return nil, err
		}
		if err := cat.AddField(f); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
	}

	uc.logger.Infow("category created", "category_id", cat.ID(), "guild_id", cmd.GuildID)

	return dto.ToCategoryDTO(cat), nil
}
