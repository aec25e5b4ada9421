package usecase_test

import (
	"context"
	"time"

	"shopapp/internal/domain/model"
	repo "shopapp/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Repositoryのモック
// =====================

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*model.User, error) {
	args := m.Called(ctx, phoneNumber)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error) {
	args := m.Called(ctx, phoneNumber)
	return args.Bool(0), args.Error(1)
}

type RoleRepoMock struct{ mock.Mock }

func (m *RoleRepoMock) FindByID(ctx context.Context, id int64) (*model.Role, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*model.Role)
	return r, args.Error(1)
}

func (m *RoleRepoMock) EnsureExists(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Category)
	return created, args.Error(1)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) FindAll(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]model.Category)
	return categories, args.Error(1)
}

func (m *CategoryRepoMock) Update(ctx context.Context, c model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CategoryRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindPage(ctx context.Context, q repo.ProductPageQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ProductImageRepoMock struct{ mock.Mock }

func (m *ProductImageRepoMock) Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error) {
	args := m.Called(ctx, img)
	created, _ := args.Get(0).(model.ProductImage)
	return created, args.Error(1)
}

func (m *ProductImageRepoMock) FindByProductID(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	args := m.Called(ctx, productID)
	images, _ := args.Get(0).([]model.ProductImage)
	return images, args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, o model.Order) (model.Order, error) {
	args := m.Called(ctx, o)
	created, _ := args.Get(0).(model.Order)
	return created, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, id int64) (model.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FindByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) Update(ctx context.Context, o model.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *OrderRepoMock) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

type OrderDetailRepoMock struct{ mock.Mock }

func (m *OrderDetailRepoMock) Create(ctx context.Context, d model.OrderDetail) (model.OrderDetail, error) {
	args := m.Called(ctx, d)
	created, _ := args.Get(0).(model.OrderDetail)
	return created, args.Error(1)
}

func (m *OrderDetailRepoMock) FindByID(ctx context.Context, id int64) (model.OrderDetail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(model.OrderDetail)
	return d, args.Error(1)
}

func (m *OrderDetailRepoMock) FindByOrderID(ctx context.Context, orderID int64) ([]model.OrderDetail, error) {
	args := m.Called(ctx, orderID)
	details, _ := args.Get(0).([]model.OrderDetail)
	return details, args.Error(1)
}

func (m *OrderDetailRepoMock) Update(ctx context.Context, d model.OrderDetail) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *OrderDetailRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =====================
// そのほかの部品
// =====================

type TokenIssuerMock struct{ mock.Mock }

func (m *TokenIssuerMock) Issue(user *model.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

// テスト用の固定時計
type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }
