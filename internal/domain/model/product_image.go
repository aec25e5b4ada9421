package model

// 商品1件あたりの画像上限
const MaxImagesPerProduct = 5

type ProductImage struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64  `gorm:"not null;index" json:"product_id"`
	ImageURL  string `gorm:"type:varchar(300);not null" json:"image_url"`
}
