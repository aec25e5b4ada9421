package model

import "github.com/shopspring/decimal"

type OrderDetail struct {
	ID               int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID          int64           `gorm:"not null;index" json:"order_id"`
	Order            Order           `gorm:"foreignKey:OrderID" json:"-"`
	ProductID        int64           `gorm:"not null;index" json:"product_id"`
	Product          Product         `gorm:"foreignKey:ProductID" json:"-"`
	Price            decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	NumberOfProducts int             `gorm:"not null" json:"number_of_products"`
	TotalMoney       decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"total_money"`
	Color            string          `gorm:"type:varchar(50)" json:"color"`
}
