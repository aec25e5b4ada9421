package model

import "time"

type User struct {
	ID                int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName          string     `gorm:"type:varchar(100)" json:"full_name"`
	PhoneNumber       string     `gorm:"type:varchar(20);not null;uniqueIndex" json:"phone_number"`
	Address           string     `gorm:"type:varchar(200)" json:"address"`
	Password          string     `gorm:"type:varchar(255);not null" json:"-"`
	IsActive          bool       `gorm:"not null;default:true" json:"is_active"`
	DateOfBirth       *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	FacebookAccountID string     `gorm:"type:varchar(100)" json:"-"`
	GoogleAccountID   string     `gorm:"type:varchar(100)" json:"-"`
	RoleID            int64      `gorm:"not null" json:"role_id"`
	Role              Role       `gorm:"foreignKey:RoleID" json:"role"`
	CreatedAt         time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// SNS連携アカウントかどうか（パスワード照合をスキップする条件）
func (u *User) HasSocialAccount() bool {
	return u.FacebookAccountID != "" || u.GoogleAccountID != ""
}
