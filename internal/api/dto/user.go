package dto

import "time"

type SignupDTO struct {
	LoginID  string `json:"loginId" binding:"required" validate:"required,notblank,max=50"`
	Password string `json:"password" binding:"required" validate:"required,min=4,max=72"`
	Username string `json:"username" binding:"required" validate:"required,notblank,max=30"`
}

type LoginDTO struct {
	LoginID  string `json:"loginId" binding:"required" validate:"required"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type TokenDTO struct {
	Token string `json:"token"`
}

type SignupResultDTO struct {
	UserID uint64 `json:"userId"`
}

type UserDTO struct {
	ID        uint64    `json:"id"`
	LoginID   string    `json:"loginId"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
