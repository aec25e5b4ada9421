package repository

import (
	"context"
	"errors"

	"shopapp/internal/domain/model"
)

// 商品画像の上限超過
var ErrImageLimitExceeded = errors.New("image limit exceeded")

// 一覧のページング条件（pageは0始まり）
type ProductPageQuery struct {
	Page  int
	Limit int
}

// 商品の永続化（保存・取得）だけを約束
type ProductRepository interface {
	Create(ctx context.Context, p model.Product) (model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	// created_at降順でページを返す。総件数も返す
	FindPage(ctx context.Context, q ProductPageQuery) ([]model.Product, int64, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error
}

// 商品画像の永続化を約束
type ProductImageRepository interface {
	// 上限チェックと作成を1トランザクションで行う。
	// 上限超過は ErrImageLimitExceeded
	Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error)
	FindByProductID(ctx context.Context, productID int64) ([]model.ProductImage, error)
}
