package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"shopapp/internal/domain/model"
	repo "shopapp/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
	imageRepo    repo.ProductImageRepository
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	categoryRepo repo.CategoryRepository,
	imageRepo repo.ProductImageRepository,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		imageRepo:    imageRepo,
	}
}

// POST/PUT /products の入力DTO
type ProductRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Thumbnail   string          `json:"thumbnail"`
	Description string          `json:"description"`
	CategoryID  int64           `json:"category_id"`
}

// GET /products のレスポンス
type ProductPageResponse struct {
	Products   []model.Product `json:"products"`
	TotalPages int             `json:"total_pages"`
}

// GET /products/:id のレスポンス（画像付き）
type ProductDetailResponse struct {
	model.Product
	Images []model.ProductImage `json:"images"`
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, req ProductRequest) (model.Product, error) {
	// カテゴリの存在確認
	if _, err := u.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if err == repo.ErrNotFound {
			return model.Product{}, NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("cannot find category with id: %d", req.CategoryID))
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		Thumbnail:   req.Thumbnail,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) GetProductByID(ctx context.Context, id int64) (ProductDetailResponse, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return ProductDetailResponse{}, NewHTTPError(http.StatusNotFound,
			fmt.Sprintf("cannot find product with id: %d", id))
	}
	if err != nil {
		return ProductDetailResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	images, err := u.imageRepo.FindByProductID(ctx, id)
	if err != nil {
		return ProductDetailResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if images == nil {
		images = []model.ProductImage{}
	}

	return ProductDetailResponse{Product: p, Images: images}, nil
}

// pageは0始まり。created_at降順
func (u *ProductUsecase) ListProducts(ctx context.Context, page int, limit int) (ProductPageResponse, error) {
	if page < 0 {
		return ProductPageResponse{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return ProductPageResponse{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	products, total, err := u.productRepo.FindPage(ctx, repo.ProductPageQuery{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return ProductPageResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if products == nil {
		products = []model.Product{}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return ProductPageResponse{
		Products:   products,
		TotalPages: totalPages,
	}, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, id int64, req ProductRequest) (model.Product, error) {
	// 商品の存在確認
	existing, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound,
			fmt.Sprintf("cannot find product with id: %d", id))
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// カテゴリは更新時にも再確認する
	if _, err := u.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if err == repo.ErrNotFound {
			return model.Product{}, NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("cannot find category with id: %d", req.CategoryID))
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	existing.Name = strings.TrimSpace(req.Name)
	existing.Price = req.Price
	existing.Thumbnail = req.Thumbnail
	existing.Description = req.Description
	existing.CategoryID = req.CategoryID

	if err := u.productRepo.Update(ctx, existing); err != nil {
		if err == repo.ErrNotFound {
			return model.Product{}, NewHTTPError(http.StatusNotFound,
				fmt.Sprintf("cannot find product with id: %d", id))
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return existing, nil
}

// 存在しない商品の削除はエラーにしない
func (u *ProductUsecase) DeleteProduct(ctx context.Context, id int64) error {
	err := u.productRepo.Delete(ctx, id)
	if err != nil && err != repo.ErrNotFound {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 商品画像を1件登録する。上限5枚
func (u *ProductUsecase) CreateProductImage(ctx context.Context, productID int64, imageURL string) (model.ProductImage, error) {
	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return model.ProductImage{}, NewHTTPError(http.StatusNotFound,
				fmt.Sprintf("cannot find product with id: %d", productID))
		}
		return model.ProductImage{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	img, err := u.imageRepo.Create(ctx, model.ProductImage{
		ProductID: productID,
		ImageURL:  imageURL,
	})
	if err == repo.ErrImageLimitExceeded {
		return model.ProductImage{}, NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("number of images exceeded the limit of %d", model.MaxImagesPerProduct))
	}
	if err != nil {
		return model.ProductImage{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return img, nil
}
