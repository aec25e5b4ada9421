package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"shopapp/internal/domain/model"
	repo "shopapp/internal/repository"

	"github.com/shopspring/decimal"
)

// 現在時刻の供給。テストで固定できるようにする
type Clock interface {
	Now() time.Time
}

type OrderUsecase struct {
	orderRepo repo.OrderRepository
	userRepo  repo.UserRepository
	clock     Clock
}

// tのロケーション基準の当日0時
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DI
func NewOrderUsecase(orderRepo repo.OrderRepository, userRepo repo.UserRepository, clock Clock) *OrderUsecase {
	return &OrderUsecase{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		clock:     clock,
	}
}

// POST/PUT /orders の入力DTO
type OrderRequest struct {
	UserID          int64           `json:"user_id"`
	FullName        string          `json:"full_name"`
	Email           string          `json:"email"`
	PhoneNumber     string          `json:"phone_number"`
	Address         string          `json:"address"`
	Note            string          `json:"note"`
	TotalMoney      decimal.Decimal `json:"total_money"`
	ShippingMethod  string          `json:"shipping_method"`
	ShippingAddress string          `json:"shipping_address"`
	ShippingDate    *time.Time      `json:"shipping_date"`
	PaymentMethod   string          `json:"payment_method"`
}

func (u *OrderUsecase) CreateOrder(ctx context.Context, req OrderRequest) (model.Order, error) {
	// ユーザーの存在確認
	if _, err := u.userRepo.FindByID(ctx, req.UserID); err != nil {
		if err == repo.ErrNotFound {
			return model.Order{}, NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("cannot find user with id: %d", req.UserID))
		}
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := u.clock.Now()

	// 発送日の指定が無ければ翌日
	shippingDate := now.Add(24 * time.Hour)
	if req.ShippingDate != nil {
		shippingDate = *req.ShippingDate
	}

	// 発送日は注文日（当日0時）より前にできない
	if shippingDate.Before(startOfDay(now)) {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "shipping date must be at least today")
	}

	order, err := u.orderRepo.Create(ctx, model.Order{
		UserID:          req.UserID,
		FullName:        req.FullName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Address:         req.Address,
		Note:            req.Note,
		OrderDate:       now,
		Status:          model.OrderStatusPending,
		TotalMoney:      req.TotalMoney,
		ShippingMethod:  req.ShippingMethod,
		ShippingAddress: req.ShippingAddress,
		ShippingDate:    shippingDate,
		PaymentMethod:   req.PaymentMethod,
		Active:          true,
	})
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return order, nil
}

func (u *OrderUsecase) GetOrderByID(ctx context.Context, id int64) (model.Order, error) {
	o, err := u.orderRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound,
			fmt.Sprintf("cannot find order with id: %d", id))
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o, nil
}

func (u *OrderUsecase) ListOrdersByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	orders, err := u.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// 注文の更新。order_date・created_at・statusは保持する
func (u *OrderUsecase) UpdateOrder(ctx context.Context, id int64, req OrderRequest) (model.Order, error) {
	existing, err := u.orderRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound,
			fmt.Sprintf("cannot find order with id: %d", id))
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 注文者も差し替え対象なので存在確認する
	if _, err := u.userRepo.FindByID(ctx, req.UserID); err != nil {
		if err == repo.ErrNotFound {
			return model.Order{}, NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("cannot find user with id: %d", req.UserID))
		}
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	existing.UserID = req.UserID
	existing.FullName = req.FullName
	existing.Email = req.Email
	existing.PhoneNumber = req.PhoneNumber
	existing.Address = req.Address
	existing.Note = req.Note
	existing.TotalMoney = req.TotalMoney
	existing.ShippingMethod = req.ShippingMethod
	existing.ShippingAddress = req.ShippingAddress
	if req.ShippingDate != nil {
		existing.ShippingDate = *req.ShippingDate
	}
	existing.PaymentMethod = req.PaymentMethod

	// 比較の基準は注文日の当日0時（注文日のロケーション基準）
	orderDay := startOfDay(existing.OrderDate)
	if existing.ShippingDate.Before(orderDay) {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "shipping date must be at least the order date")
	}

	if err := u.orderRepo.Update(ctx, existing); err != nil {
		if err == repo.ErrNotFound {
			return model.Order{}, NewHTTPError(http.StatusNotFound,
				fmt.Sprintf("cannot find order with id: %d", id))
		}
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return existing, nil
}

// ソフトデリート。存在しないIDはエラーにしない
func (u *OrderUsecase) DeleteOrder(ctx context.Context, id int64) error {
	err := u.orderRepo.SetActive(ctx, id, false)
	if err != nil && err != repo.ErrNotFound {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
