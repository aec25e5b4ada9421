package repository

import (
	"context"
	"errors"

	"shopapp/internal/domain/model"
	repo "shopapp/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// created_at降順でページを返す（pageは0始まり）
func (r *ProductGormRepository) FindPage(ctx context.Context, q repo.ProductPageQuery) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Product{})

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := q.Page * q.Limit
	err := tx.Order("created_at desc").Order("id desc").
		Offset(offset).Limit(q.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// 商品の更新（全フィールド置き換え）
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":        p.Name,
			"price":       p.Price,
			"thumbnail":   p.Thumbnail,
			"description": p.Description,
			"category_id": p.CategoryID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除（ハードデリート）
func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type ProductImageGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductImageGormRepository(db *gorm.DB) *ProductImageGormRepository {
	return &ProductImageGormRepository{db: db}
}

// 上限チェックと作成を同一トランザクションで行う
func (r *ProductImageGormRepository) Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.ProductImage{}).
			Where("product_id = ?", img.ProductID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= model.MaxImagesPerProduct {
			return repo.ErrImageLimitExceeded
		}
		return tx.Create(&img).Error
	})
	if err != nil {
		return model.ProductImage{}, err
	}
	return img, nil
}

// 商品IDで画像一覧を取得
func (r *ProductImageGormRepository) FindByProductID(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	var images []model.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}
