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

func newOrderDetailUsecase() (*usecase.OrderDetailUsecase, *OrderDetailRepoMock, *OrderRepoMock, *ProductRepoMock) {
	dRepo := new(OrderDetailRepoMock)
	oRepo := new(OrderRepoMock)
	pRepo := new(ProductRepoMock)
	return usecase.NewOrderDetailUsecase(dRepo, oRepo, pRepo), dRepo, oRepo, pRepo
}

func TestOrderDetailUsecase_Create_OrderNotFound(t *testing.T) {
	uc, _, oRepo, _ := newOrderDetailUsecase()

	oRepo.On("FindByID", mock.Anything, int64(9)).Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.CreateOrderDetail(context.Background(), usecase.OrderDetailRequest{
		OrderID:          9,
		ProductID:        1,
		NumberOfProducts: 1,
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)
	assert.Contains(t, err.Error(), "cannot find order with id: 9")
}

func TestOrderDetailUsecase_Create_ProductNotFound(t *testing.T) {
	uc, _, oRepo, pRepo := newOrderDetailUsecase()

	oRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Order{ID: 1}, nil)
	pRepo.On("FindByID", mock.Anything, int64(9)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.CreateOrderDetail(context.Background(), usecase.OrderDetailRequest{
		OrderID:          1,
		ProductID:        9,
		NumberOfProducts: 1,
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)
	assert.Contains(t, err.Error(), "cannot find product with id: 9")
}

func TestOrderDetailUsecase_Create_Success(t *testing.T) {
	uc, dRepo, oRepo, pRepo := newOrderDetailUsecase()

	oRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Order{ID: 1}, nil)
	pRepo.On("FindByID", mock.Anything, int64(2)).Return(model.Product{ID: 2}, nil)
	dRepo.On("Create", mock.Anything, mock.MatchedBy(func(d model.OrderDetail) bool {
		return d.OrderID == 1 && d.ProductID == 2 && d.NumberOfProducts == 3
	})).Return(model.OrderDetail{ID: 5, OrderID: 1, ProductID: 2, NumberOfProducts: 3}, nil)

	d, err := uc.CreateOrderDetail(context.Background(), usecase.OrderDetailRequest{
		OrderID:          1,
		ProductID:        2,
		NumberOfProducts: 3,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), d.ID)
}

func TestOrderDetailUsecase_GetByID_NotFound(t *testing.T) {
	uc, dRepo, _, _ := newOrderDetailUsecase()

	dRepo.On("FindByID", mock.Anything, int64(99)).Return(model.OrderDetail{}, repo.ErrNotFound)

	_, err := uc.GetOrderDetailByID(context.Background(), 99)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestOrderDetailUsecase_ListByOrderID_OrderNotFound(t *testing.T) {
	uc, _, oRepo, _ := newOrderDetailUsecase()

	oRepo.On("FindByID", mock.Anything, int64(9)).Return(model.Order{}, repo.ErrNotFound)

	// 一覧の前に注文の存在確認をする
	_, err := uc.ListOrderDetailsByOrderID(context.Background(), 9)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestOrderDetailUsecase_Delete_MissingIsNoop(t *testing.T) {
	uc, dRepo, _, _ := newOrderDetailUsecase()

	// 存在チェックなしの素通し削除
	dRepo.On("Delete", mock.Anything, int64(99)).Return(nil)

	assert.NoError(t, uc.DeleteOrderDetail(context.Background(), 99))
	dRepo.AssertExpectations(t)
}

func TestOrderDetailUsecase_Update_ReplacesAllFields(t *testing.T) {
	uc, dRepo, oRepo, pRepo := newOrderDetailUsecase()

	dRepo.On("FindByID", mock.Anything, int64(5)).
		Return(model.OrderDetail{ID: 5, OrderID: 1, ProductID: 2}, nil)
	oRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Order{ID: 1}, nil)
	pRepo.On("FindByID", mock.Anything, int64(3)).Return(model.Product{ID: 3}, nil)
	dRepo.On("Update", mock.Anything, mock.MatchedBy(func(d model.OrderDetail) bool {
		return d.ID == 5 && d.ProductID == 3 && d.Color == "red"
	})).Return(nil)

	d, err := uc.UpdateOrderDetail(context.Background(), 5, usecase.OrderDetailRequest{
		OrderID:          1,
		ProductID:        3,
		NumberOfProducts: 1,
		Color:            "red",
	})
	assert.NoError(t, err)
	assert.Equal(t, "red", d.Color)
}
