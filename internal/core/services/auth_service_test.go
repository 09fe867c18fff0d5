package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vendorpay/vpa_backend/internal/apperrors"
	"github.com/vendorpay/vpa_backend/internal/core/domain"
	"github.com/vendorpay/vpa_backend/internal/core/services"
	"github.com/vendorpay/vpa_backend/internal/dto"
	"github.com/vendorpay/vpa_backend/internal/platform/config"
	"github.com/vendorpay/vpa_backend/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      *services.AuthService
	cfg          *config.Config
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "vendor-payment-app",
		AdminSecret:       "bootstrap-secret",
	}
	suite.service = services.NewAuthService(suite.mockUserRepo, suite.cfg)
}

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: "site@vendor.example", Password: "s3cretpass"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.Role == domain.RoleUser &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()

	user, token, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(token)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal(string(domain.RoleUser), claims.Role)
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: "dup@vendor.example", Password: "s3cretpass"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, token, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(user)
	suite.Empty(token)
}

func (suite *AuthServiceTestSuite) TestRegisterAdmin_Success() {
	ctx := context.Background()
	req := dto.RegisterAdminRequest{
		Email:      "admin@vendor.example",
		Password:   "s3cretpass",
		AdminToken: "bootstrap-secret",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleAdmin
	})).Return(nil).Once()

	user, token, err := suite.service.RegisterAdmin(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, user.Role)
	suite.NotEmpty(token)
}

func (suite *AuthServiceTestSuite) TestRegisterAdmin_BadToken() {
	ctx := context.Background()
	req := dto.RegisterAdminRequest{
		Email:      "admin@vendor.example",
		Password:   "s3cretpass",
		AdminToken: "wrong",
	}

	user, _, err := suite.service.RegisterAdmin(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegisterAdmin_DisabledWithoutSecret() {
	ctx := context.Background()
	suite.cfg.AdminSecret = ""
	req := dto.RegisterAdminRequest{
		Email:      "admin@vendor.example",
		Password:   "s3cretpass",
		AdminToken: "",
	}

	_, _, err := suite.service.RegisterAdmin(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	password := "s3cretpass"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "site@vendor.example",
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	suite.mockUserRepo.On("FindUserByEmail", ctx, stored.Email).Return(stored, nil).Once()

	user, token, err := suite.service.Login(ctx, dto.LoginRequest{Email: stored.Email, Password: password})

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.NotEmpty(token)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("rightpass")
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "site@vendor.example",
		PasswordHash: hash,
	}
	suite.mockUserRepo.On("FindUserByEmail", ctx, stored.Email).Return(stored, nil).Once()

	user, token, err := suite.service.Login(ctx, dto.LoginRequest{Email: stored.Email, Password: "wrongpass"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
	suite.Empty(token)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmailLooksLikeBadPassword() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@vendor.example").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.Login(ctx, dto.LoginRequest{Email: "ghost@vendor.example", Password: "whatever"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AuthServiceTestSuite) TestValidateToken_Valid() {
	ctx := context.Background()
	userID := uuid.NewString()
	token, err := utils.GenerateJWT(userID, string(domain.RoleUser), suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	claims, err := suite.service.ValidateToken(ctx, token)

	suite.Require().NoError(err)
	suite.Equal(userID, claims.Subject)
	suite.Equal(string(domain.RoleUser), claims.Role)
}

func (suite *AuthServiceTestSuite) TestValidateToken_Garbage() {
	ctx := context.Background()

	claims, err := suite.service.ValidateToken(ctx, "not-a-token")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(claims)
}

func (suite *AuthServiceTestSuite) TestValidateToken_Expired() {
	ctx := context.Background()
	token, err := utils.GenerateJWT(uuid.NewString(), string(domain.RoleUser), suite.cfg.JWTSecret, -time.Minute, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	_, err = suite.service.ValidateToken(ctx, token)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestListNonAdminUsers_ExcludesAdmins() {
	ctx := context.Background()
	users := []domain.User{
		{UserID: uuid.NewString(), Email: "a@vendor.example", Role: domain.RoleUser},
		{UserID: uuid.NewString(), Email: "b@vendor.example", Role: domain.RoleUser},
	}

	suite.mockUserRepo.On("ListUsersExcludingRole", ctx, domain.RoleAdmin).Return(users, nil).Once()

	got, err := suite.service.ListNonAdminUsers(ctx)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
