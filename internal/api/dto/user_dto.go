package dto

import (
	"time"

	"github.com/spec-kit/blogging-platform/internal/domain"
)

// AddUserRequest payload for registration.
type AddUserRequest struct {
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// UpdateUserRequest carries the partial patch for a user: nil fields keep
// their current values.
type UpdateUserRequest struct {
	FullName    *string `json:"fullName"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber"`
	Role        *string `json:"role"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// UserResponse is the public projection of a user. The password hash is
// never included.
type UserResponse struct {
	ID          string     `json:"id"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email,omitempty"`
	PhoneNumber string     `json:"phoneNumber"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"isActive"`
	IsDeleted   bool       `json:"isDeleted"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// NewUserResponse projects a user entity.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        string(u.Role),
		IsActive:    u.IsActive,
		IsDeleted:   u.IsDeleted,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
