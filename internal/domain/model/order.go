package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

type Order struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int64           `gorm:"not null;index" json:"user_id"`
	User            User            `gorm:"foreignKey:UserID" json:"-"`
	FullName        string          `gorm:"type:varchar(100)" json:"full_name"`
	Email           string          `gorm:"type:varchar(100)" json:"email"`
	PhoneNumber     string          `gorm:"type:varchar(20);not null" json:"phone_number"`
	Address         string          `gorm:"type:varchar(200)" json:"address"`
	Note            string          `gorm:"type:varchar(300)" json:"note"`
	OrderDate       time.Time       `gorm:"not null" json:"order_date"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalMoney      decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"total_money"`
	ShippingMethod  string          `gorm:"type:varchar(100)" json:"shipping_method"`
	ShippingAddress string          `gorm:"type:varchar(200)" json:"shipping_address"`
	ShippingDate    time.Time       `gorm:"type:date" json:"shipping_date"`
	TrackingNumber  string          `gorm:"type:varchar(100)" json:"tracking_number"`
	PaymentMethod   string          `gorm:"type:varchar(100)" json:"payment_method"`
	Active          bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
