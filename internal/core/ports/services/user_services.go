package services

import (
	"context"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
	"github.com/vendorpay/vpa_backend/internal/dto"
	"github.com/vendorpay/vpa_backend/internal/utils"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a specific user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// AuthSvcFacade handles registration, admin bootstrap and login.
type AuthSvcFacade interface {
	UserReaderSvc

	// Register creates a new user with the "user" role and returns it with a
	// signed token.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error)

	// RegisterAdmin creates a new admin user; the request must carry the
	// configured admin bootstrap secret.
	RegisterAdmin(ctx context.Context, req dto.RegisterAdminRequest) (*domain.User, string, error)

	// Login verifies credentials and returns the user with a signed token.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error)

	// ValidateToken checks a raw token and returns its claims, or
	// apperrors.ErrUnauthorized if the token is invalid or expired.
	ValidateToken(ctx context.Context, tokenString string) (*utils.AppClaims, error)

	// ListNonAdminUsers returns every user except admins, newest first.
	ListNonAdminUsers(ctx context.Context) ([]domain.User, error)
}
