package models

import (
	"time"

	db "github.com/BitLeap/BitLeap-Backend/db/sqlc"
)

type RegisterUserParams struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password" binding:"required,min=8"`
}

type LoginParams struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}

type UserResponse struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u UserResponse) ToUserResponse(user *db.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		FirstName:   user.FirstName.String,
		LastName:    user.LastName.String,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        string(user.Role),
		CreatedAt:   user.CreatedAt,
	}
}

type UserWithToken struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
