package usecase

import (
	"context"
	"net/http"

	"shopapp/internal/domain/model"
	repo "shopapp/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
}

// DI
func NewCategoryUsecase(categoryRepo repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

// POST /categories の入力DTO
type CategoryRequest struct {
	Name string `json:"name"`
}

func (u *CategoryUsecase) CreateCategory(ctx context.Context, req CategoryRequest) (model.Category, error) {
	c, err := u.categoryRepo.Create(ctx, model.Category{Name: req.Name})
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CategoryUsecase) GetCategoryByID(ctx context.Context, id int64) (model.Category, error) {
	c, err := u.categoryRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "category not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CategoryUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}

func (u *CategoryUsecase) UpdateCategory(ctx context.Context, id int64, req CategoryRequest) error {
	err := u.categoryRepo.Update(ctx, model.Category{ID: id, Name: req.Name})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "category not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CategoryUsecase) DeleteCategory(ctx context.Context, id int64) error {
	err := u.categoryRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "category not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
