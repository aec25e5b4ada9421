package repository

import (
	"context"
	"errors"

	"shopapp/internal/domain/model"
	repo "shopapp/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 注文の作成
func (r *OrderGormRepository) Create(ctx context.Context, o model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// IDで注文を取得
func (r *OrderGormRepository) FindByID(ctx context.Context, id int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// ユーザーIDで注文一覧を取得
func (r *OrderGormRepository) FindByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("order_date desc").Order("id desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// 注文の更新（order_date・created_atは置き換えない）
func (r *OrderGormRepository) Update(ctx context.Context, o model.Order) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", o.ID).
		Updates(map[string]interface{}{
			"user_id":          o.UserID,
			"full_name":        o.FullName,
			"email":            o.Email,
			"phone_number":     o.PhoneNumber,
			"address":          o.Address,
			"note":             o.Note,
			"status":           o.Status,
			"total_money":      o.TotalMoney,
			"shipping_method":  o.ShippingMethod,
			"shipping_address": o.ShippingAddress,
			"shipping_date":    o.ShippingDate,
			"tracking_number":  o.TrackingNumber,
			"payment_method":   o.PaymentMethod,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// activeフラグの切り替え（ソフトデリート）
func (r *OrderGormRepository) SetActive(ctx context.Context, id int64, active bool) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type OrderDetailGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderDetailGormRepository(db *gorm.DB) *OrderDetailGormRepository {
	return &OrderDetailGormRepository{db: db}
}

// 注文明細の作成
func (r *OrderDetailGormRepository) Create(ctx context.Context, d model.OrderDetail) (model.OrderDetail, error) {
	if err := r.db.WithContext(ctx).Create(&d).Error; err != nil {
		return model.OrderDetail{}, err
	}
	return d, nil
}

// IDで注文明細を取得
func (r *OrderDetailGormRepository) FindByID(ctx context.Context, id int64) (model.OrderDetail, error) {
	var d model.OrderDetail
	err := r.db.WithContext(ctx).First(&d, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.OrderDetail{}, repo.ErrNotFound
	}
	if err != nil {
		return model.OrderDetail{}, err
	}
	return d, nil
}

// 注文IDで明細一覧を取得
func (r *OrderDetailGormRepository) FindByOrderID(ctx context.Context, orderID int64) ([]model.OrderDetail, error) {
	var details []model.OrderDetail
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

// 注文明細の更新（全フィールド置き換え）
func (r *OrderDetailGormRepository) Update(ctx context.Context, d model.OrderDetail) error {
	res := r.db.WithContext(ctx).Model(&model.OrderDetail{}).
		Where("id = ?", d.ID).
		Updates(map[string]interface{}{
			"order_id":           d.OrderID,
			"product_id":         d.ProductID,
			"price":              d.Price,
			"number_of_products": d.NumberOfProducts,
			"total_money":        d.TotalMoney,
			"color":              d.Color,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 注文明細の削除。存在しなくてもエラーにしない
func (r *OrderDetailGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.OrderDetail{}, id).Error
}
