package repository

import (
	"context"

	"shopapp/internal/domain/model"
)

// カテゴリの永続化だけを約束
type CategoryRepository interface {
	Create(ctx context.Context, c model.Category) (model.Category, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, c model.Category) error
	Delete(ctx context.Context, id int64) error
}
