package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"shopapp/internal/domain/model"
	repo "shopapp/internal/repository"
	"shopapp/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func assertHTTPStatus(t *testing.T, err error, status int) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "expected HTTPError, got %v", err) {
		assert.Equal(t, status, he.Status)
	}
}

func TestCategoryUsecase_Create(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("Create", mock.Anything, model.Category{Name: "Books"}).
		Return(model.Category{ID: 1, Name: "Books"}, nil)

	c, err := uc.CreateCategory(context.Background(), usecase.CategoryRequest{Name: "Books"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
	cRepo.AssertExpectations(t)
}

func TestCategoryUsecase_GetByID_NotFound(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("FindByID", mock.Anything, int64(99)).
		Return(model.Category{}, repo.ErrNotFound)

	_, err := uc.GetCategoryByID(context.Background(), 99)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestCategoryUsecase_Update_NotFound(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("Update", mock.Anything, model.Category{ID: 5, Name: "Games"}).
		Return(repo.ErrNotFound)

	err := uc.UpdateCategory(context.Background(), 5, usecase.CategoryRequest{Name: "Games"})
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestCategoryUsecase_Delete_NotFound(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("Delete", mock.Anything, int64(5)).Return(repo.ErrNotFound)

	// カテゴリ削除はハードデリートなので存在しないIDは404
	err := uc.DeleteCategory(context.Background(), 5)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestCategoryUsecase_List(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("FindAll", mock.Anything).
		Return([]model.Category{{ID: 1, Name: "Books"}, {ID: 2, Name: "Games"}}, nil)

	categories, err := uc.ListCategories(context.Background())
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
}
