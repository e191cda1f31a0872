package category

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/category/usecases"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

type CategoryHandler struct {
	createCategoryUC     usecases.CreateCategoryExecutor
	deactivateCategoryUC usecases.DeactivateCategoryExecutor
	listCategoriesUC     usecases.ListCategoriesExecutor
	getCategoryUC        usecases.GetCategoryExecutor
	addFieldUC           usecases.AddFieldExecutor
	removeFieldUC        usecases.RemoveFieldExecutor
	logger               logger.Interface
}

func NewCategoryHandler(
	createCategoryUC usecases.CreateCategoryExecutor,
	deactivateCategoryUC usecases.DeactivateCategoryExecutor,
	listCategoriesUC usecases.ListCategoriesExecutor,
	getCategoryUC usecases.GetCategoryExecutor,
	addFieldUC usecases.AddFieldExecutor,
	removeFieldUC usecases.RemoveFieldExecutor,
) *CategoryHandler {
	return &CategoryHandler{
		createCategoryUC:     createCategoryUC,
		deactivateCategoryUC: deactivateCategoryUC,
		listCategoriesUC:     listCategoriesUC,
		getCategoryUC:        getCategoryUC,
		addFieldUC:           addFieldUC,
		removeFieldUC:        removeFieldUC,
		logger:               logger.NewLogger(),
	}
}

type FieldRequest struct {
	Name      string `json:"name" binding:"required"`
	Label     string `json:"label"`
	Style     string `json:"style" binding:"required,oneof=short paragraph"`
	Required  bool   `json:"required"`
	MinLength int    `json:"min_length"`
	MaxLength int    `json:"max_length"`
	SortOrder int    `json:"sort_order"`
}

func (r FieldRequest) toInput() usecases.FieldInput {
	return usecases.FieldInput{
		Name:      r.Name,
		Label:     r.Label,
		Style:     r.Style,
		Required:  r.Required,
		MinLength: r.MinLength,
		MaxLength: r.MaxLength,
		SortOrder: r.SortOrder,
	}
}

type CreateCategoryRequest struct {
	Name        string         `json:"name" binding:"required"`
	Placeholder string         `json:"placeholder"`
	Fields      []FieldRequest `json:"fields"`
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create category", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.CreateCategoryCommand{
		GuildID:     c.Param("guild_id"),
		Name:        req.Name,
		Placeholder: req.Placeholder,
	}
	for _, f := range req.Fields {
		cmd.Fields = append(cmd.Fields, f.toInput())
	}

	result, err := h.createCategoryUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

func (h *CategoryHandler) DeactivateCategory(c *gin.Context) {
	categoryID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deactivateCategoryUC.Execute(c.Request.Context(), usecases.DeactivateCategoryCommand{
		GuildID:    c.Param("guild_id"),
		CategoryID: categoryID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.listCategoriesUC.Execute(c.Request.Context(), usecases.ListCategoriesQuery{
		GuildID:         c.Param("guild_id"),
		IncludeInactive: c.Query("include_inactive") == "true",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCategoryUC.Execute(c.Request.Context(), usecases.GetCategoryQuery{CategoryID: categoryID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CategoryHandler) AddField(c *gin.Context) {
	categoryID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req FieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.addFieldUC.Execute(c.Request.Context(), usecases.AddFieldCommand{
		CategoryID: categoryID,
		Field:      req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Field added successfully")
}

func (h *CategoryHandler) RemoveField(c *gin.Context) {
	categoryID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	fieldID, err := utils.ParseUintParam(c, "field_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.removeFieldUC.Execute(c.Request.Context(), usecases.RemoveFieldCommand{
		CategoryID: categoryID,
		FieldID:    fieldID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
