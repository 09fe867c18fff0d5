package dto

import (
	"github.com/vendorpay/vpa_backend/internal/core/domain"
)

// RegisterRequest defines the data needed to register a new user.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RegisterAdminRequest additionally carries the shared admin bootstrap secret.
type RegisterAdminRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	AdminToken string `json:"adminToken" binding:"required"`
}

// LoginRequest defines the credentials for a login attempt.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse defines the data returned for a user. The password hash is
// never serialised.
type UserResponse struct {
	UserID    string          `json:"userID"`
	Email     string          `json:"email"`
	Role      domain.UserRole `json:"role"`
	CreatedAt string          `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse is returned from register and login.
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// ValidateTokenRequest carries a token to be checked.
type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// ValidateTokenResponse reports the outcome of a token check. UserID, Role
// and ExpiresAt are only set when Valid is true.
type ValidateTokenResponse struct {
	Valid     bool            `json:"valid"`
	UserID    string          `json:"userID,omitempty"`
	Role      domain.UserRole `json:"role,omitempty"`
	ExpiresAt string          `json:"expiresAt,omitempty"`
}

// ListUsersResponse wraps a list of users.
type ListUsersResponse struct {
	Count int            `json:"count"`
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to the list DTO.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = ToUserResponse(&u)
	}
	return ListUsersResponse{Count: len(res), Users: res}
}
