package usecase

import (
	"context"
	"fmt"
	"net/http"

	"shopapp/internal/domain/model"
	repo "shopapp/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderDetailUsecase struct {
	detailRepo  repo.OrderDetailRepository
	orderRepo   repo.OrderRepository
	productRepo repo.ProductRepository
}

// DI
func NewOrderDetailUsecase(
	detailRepo repo.OrderDetailRepository,
	orderRepo repo.OrderRepository,
	productRepo repo.ProductRepository,
) *OrderDetailUsecase {
	return &OrderDetailUsecase{
		detailRepo:  detailRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// POST/PUT /order_details の入力DTO
type OrderDetailRequest struct {
	OrderID          int64           `json:"order_id"`
	ProductID        int64           `json:"product_id"`
	Price            decimal.Decimal `json:"price"`
	NumberOfProducts int             `json:"number_of_products"`
	TotalMoney       decimal.Decimal `json:"total_money"`
	Color            string          `json:"color"`
}

// 注文と商品の存在をまとめて確認する
func (u *OrderDetailUsecase) checkReferences(ctx context.Context, req OrderDetailRequest) error {
	if _, err := u.orderRepo.FindByID(ctx, req.OrderID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("cannot find order with id: %d", req.OrderID))
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if _, err := u.productRepo.FindByID(ctx, req.ProductID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("cannot find product with id: %d", req.ProductID))
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *OrderDetailUsecase) CreateOrderDetail(ctx context.Context, req OrderDetailRequest) (model.OrderDetail, error) {
	if err := u.checkReferences(ctx, req); err != nil {
		return model.OrderDetail{}, err
	}

	d, err := u.detailRepo.Create(ctx, model.OrderDetail{
		OrderID:          req.OrderID,
		ProductID:        req.ProductID,
		Price:            req.Price,
		NumberOfProducts: req.NumberOfProducts,
		TotalMoney:       req.TotalMoney,
		Color:            req.Color,
	})
	if err != nil {
		return model.OrderDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return d, nil
}

func (u *OrderDetailUsecase) GetOrderDetailByID(ctx context.Context, id int64) (model.OrderDetail, error) {
	d, err := u.detailRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.OrderDetail{}, NewHTTPError(http.StatusNotFound,
			fmt.Sprintf("cannot find order detail with id: %d", id))
	}
	if err != nil {
		return model.OrderDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return d, nil
}

// 注文の存在確認をしてから明細一覧を返す
func (u *OrderDetailUsecase) ListOrderDetailsByOrderID(ctx context.Context, orderID int64) ([]model.OrderDetail, error) {
	if _, err := u.orderRepo.FindByID(ctx, orderID); err != nil {
		if err == repo.ErrNotFound {
			return nil, NewHTTPError(http.StatusNotFound,
				fmt.Sprintf("cannot find order with id: %d", orderID))
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	details, err := u.detailRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if details == nil {
		details = []model.OrderDetail{}
	}
	return details, nil
}

func (u *OrderDetailUsecase) UpdateOrderDetail(ctx context.Context, id int64, req OrderDetailRequest) (model.OrderDetail, error) {
	existing, err := u.detailRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.OrderDetail{}, NewHTTPError(http.StatusNotFound,
			fmt.Sprintf("cannot find order detail with id: %d", id))
	}
	if err != nil {
		return model.OrderDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.checkReferences(ctx, req); err != nil {
		return model.OrderDetail{}, err
	}

	existing.OrderID = req.OrderID
	existing.ProductID = req.ProductID
	existing.Price = req.Price
	existing.NumberOfProducts = req.NumberOfProducts
	existing.TotalMoney = req.TotalMoney
	existing.Color = req.Color

	if err := u.detailRepo.Update(ctx, existing); err != nil {
		if err == repo.ErrNotFound {
			return model.OrderDetail{}, NewHTTPError(http.StatusNotFound,
				fmt.Sprintf("cannot find order detail with id: %d", id))
		}
		return model.OrderDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return existing, nil
}

// ハードデリート。存在チェックはしない
func (u *OrderDetailUsecase) DeleteOrderDetail(ctx context.Context, id int64) error {
	if err := u.detailRepo.Delete(ctx, id); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
