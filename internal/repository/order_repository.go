package repository

import (
	"context"

	"shopapp/internal/domain/model"
)

// 注文の永続化を約束
type OrderRepository interface {
	Create(ctx context.Context, o model.Order) (model.Order, error)
	FindByID(ctx context.Context, id int64) (model.Order, error)
	FindByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	Update(ctx context.Context, o model.Order) error
	// ソフトデリート（active=falseにするだけ）
	SetActive(ctx context.Context, id int64, active bool) error
}

// 注文明細の永続化を約束
type OrderDetailRepository interface {
	Create(ctx context.Context, d model.OrderDetail) (model.OrderDetail, error)
	FindByID(ctx context.Context, id int64) (model.OrderDetail, error)
	FindByOrderID(ctx context.Context, orderID int64) ([]model.OrderDetail, error)
	Update(ctx context.Context, d model.OrderDetail) error
	// 存在しないIDでもエラーにしない（ハードデリート）
	Delete(ctx context.Context, id int64) error
}
