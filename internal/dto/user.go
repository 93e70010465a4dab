package dto

import (
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
)

// CreateUserRequest defines the data needed to create an operator account.
type CreateUserRequest struct {
	Name     string      `json:"name" binding:"required,max=255"`
	Email    string      `json:"email" binding:"required,email,max=255"`
	Password string      `json:"password" binding:"required,min=8,max=72"`
	Role     domain.Role `json:"role" binding:"required,oneof=admin empleado"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name     *string      `json:"name" binding:"omitempty,max=255"`
	Email    *string      `json:"email" binding:"omitempty,email,max=255"`
	Role     *domain.Role `json:"role" binding:"omitempty,oneof=admin empleado"`
	Password *string      `json:"password" binding:"omitempty,min=8,max=72"`
	IsActive *bool        `json:"isActive"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

type UserResponse struct {
	UserID      string      `json:"userID"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        domain.Role `json:"role"`
	IsActive    bool        `json:"isActive"`
	LastLoginAt *time.Time  `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}
