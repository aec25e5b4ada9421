package model

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type Role struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(20);not null;uniqueIndex" json:"name"`
}
