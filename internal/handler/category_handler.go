package handler

import (
	"net/http"

	"shopapp/internal/usecase"
	"shopapp/internal/validator"

	"github.com/labstack/echo/v4"
)

// /categories のAPI
type CategoryHandler struct {
	uc *usecase.CategoryUsecase
}

// DI
func NewCategoryHandler(uc *usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/categories", h.list)
	g.POST("/categories", h.create)
	g.PUT("/categories/:id", h.update)
	g.DELETE("/categories/:id", h.delete)
}

func (h *CategoryHandler) list(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) create(c echo.Context) error {
	var req usecase.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if errs := validator.ValidateCategory(req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req usecase.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if errs := validator.ValidateCategory(req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
	}

	if err := h.uc.UpdateCategory(c.Request().Context(), id, req); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "category updated successfully"})
}

func (h *CategoryHandler) delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "category deleted successfully"})
}
