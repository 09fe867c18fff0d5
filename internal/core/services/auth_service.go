package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vendorpay/vpa_backend/internal/apperrors"
	"github.com/vendorpay/vpa_backend/internal/core/domain"
	portsrepo "github.com/vendorpay/vpa_backend/internal/core/ports/repositories"
	"github.com/vendorpay/vpa_backend/internal/dto"
	"github.com/vendorpay/vpa_backend/internal/middleware"
	"github.com/vendorpay/vpa_backend/internal/platform/config"
	"github.com/vendorpay/vpa_backend/internal/utils"
	"github.com/vendorpay/vpa_backend/internal/utils/timeutils"
)

// AuthService implements user registration, admin bootstrap and login.
type AuthService struct {
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

func NewAuthService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, cfg: cfg}
}

func (s *AuthService) register(ctx context.Context, email, password string, role domain.UserRole) (*domain.User, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, "", err
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    timeutils.FormatIST(timeutils.NowIST()),
	}

	// The unique email constraint is the authority on duplicates; no
	// pre-check, so concurrent registrations cannot race past each other.
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, "", fmt.Errorf("%w: user with this email already exists", apperrors.ErrDuplicate)
		}
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return nil, "", err
	}

	logger.Info("User registered", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, token, nil
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error) {
	return s.register(ctx, req.Email, req.Password, domain.RoleUser)
}

func (s *AuthService) RegisterAdmin(ctx context.Context, req dto.RegisterAdminRequest) (*domain.User, string, error) {
	if s.cfg.AdminSecret == "" {
		return nil, "", fmt.Errorf("%w: admin registration is disabled", apperrors.ErrForbidden)
	}
	if subtle.ConstantTimeCompare([]byte(req.AdminToken), []byte(s.cfg.AdminSecret)) != 1 {
		return nil, "", fmt.Errorf("%w: invalid admin token", apperrors.ErrForbidden)
	}
	return s.register(ctx, req.Email, req.Password, domain.RoleAdmin)
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Unknown email and bad password look identical to callers.
			return nil, "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		logger.Error("Failed to find user by email", slog.String("error", err.Error()))
		return nil, "", err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return nil, "", err
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	return user, token, nil
}

// ValidateToken checks a raw token's signature and standard claims. It does
// not hit storage; the claims alone decide validity, as they do on every
// authenticated request.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*utils.AppClaims, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid or expired token", apperrors.ErrUnauthorized)
	}
	return claims, nil
}

// ListNonAdminUsers returns every user except admins, newest first.
func (s *AuthService) ListNonAdminUsers(ctx context.Context) ([]domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	users, err := s.userRepo.ListUsersExcludingRole(ctx, domain.RoleAdmin)
	if err != nil {
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		return nil, err
	}
	return users, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find user", slog.String("error", err.Error()), slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}
