package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contentory/publishing-api/internal/core/ports"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// Create adds a new category. The route is admin-only; the RBAC
// middleware rejects plain members before this handler runs.
//
// @Summary      Create a category
// @Tags         post
// @Accept       json
// @Produce      json
// @Param        body  body      createCategoryRequest  true  "Category details"
// @Success      201   {object}  categoryResponse
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /post/create_category [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.categoryService.CreateCategory(c.Request().Context(), req.Title, req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, categoryResponse{
		ID:          category.ID,
		Title:       category.Title,
		Description: category.Description,
	})
}
