package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(200);not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Thumbnail   string          `gorm:"type:varchar(300)" json:"thumbnail"`
	Description string          `gorm:"type:text" json:"description"`
	CategoryID  int64           `gorm:"not null;index" json:"category_id"`
	Category    Category        `gorm:"foreignKey:CategoryID" json:"-"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
