package model

import (
	"time"
)

type User struct {
	ID        uint64    `gorm:"primaryKey"`
	LoginID   string    `gorm:"type:varchar(50);not null;uniqueIndex:uk_users_login_id"`
	Password  string    `gorm:"type:varchar(255);not null"`
	Username  string    `gorm:"type:varchar(30);not null;uniqueIndex:uk_users_username"`
	Role      string    `gorm:"type:varchar(20);not null;default:USER"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
