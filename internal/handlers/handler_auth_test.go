package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vendorpay/vpa_backend/internal/apperrors"
	"github.com/vendorpay/vpa_backend/internal/core/domain"
	"github.com/vendorpay/vpa_backend/internal/dto"
	"github.com/vendorpay/vpa_backend/internal/handlers"
	"github.com/vendorpay/vpa_backend/internal/middleware"
	"github.com/vendorpay/vpa_backend/internal/platform/config"
	"github.com/vendorpay/vpa_backend/internal/utils"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) RegisterAdmin(ctx context.Context, req dto.RegisterAdminRequest) (*domain.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, tokenString string) (*utils.AppClaims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*utils.AppClaims), args.Error(1)
}

func (m *MockAuthService) ListNonAdminUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockAuthService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockAuthService *MockAuthService
	jwtSecret       string
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockAuthService = new(MockAuthService)

	cfg := &config.Config{
		JWTSecret:     suite.jwtSecret,
		AuthRateLimit: "1000-M",
	}

	suite.router = gin.New()
	handlers.RegisterAuthRoutes(suite.router, cfg, suite.mockAuthService)
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterUserRoutes(v1, suite.mockAuthService)
}

func (suite *AuthHandlerTestSuite) tokenFor(role domain.UserRole) string {
	token, err := utils.GenerateJWT(uuid.NewString(), string(role), suite.jwtSecret, time.Hour, "test")
	suite.Require().NoError(err)
	return token
}

func (suite *AuthHandlerTestSuite) doRequest(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestRegister_RequiresToken() {
	w := suite.doRequest(http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "password123",
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAuthService.AssertNotCalled(suite.T(), "Register", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestRegister_RequiresAdmin() {
	w := suite.doRequest(http.MethodPost, "/api/v1/auth/register", suite.tokenFor(domain.RoleUser), dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "password123",
	})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockAuthService.AssertNotCalled(suite.T(), "Register", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestRegister_AdminSuccess() {
	user := &domain.User{UserID: uuid.NewString(), Email: "new@example.com", Role: domain.RoleUser}
	suite.mockAuthService.On("Register", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).
		Return(user, "signed-token", nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/auth/register", suite.tokenFor(domain.RoleAdmin), dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "password123",
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestValidateToken_Valid() {
	claims := &utils.AppClaims{
		Role: string(domain.RoleUser),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	suite.mockAuthService.On("ValidateToken", mock.Anything, "some-token").Return(claims, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/auth/validate", "", dto.ValidateTokenRequest{Token: "some-token"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ValidateTokenResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Valid)
	suite.Equal(claims.Subject, resp.UserID)
	suite.Equal(domain.RoleUser, resp.Role)
	suite.NotEmpty(resp.ExpiresAt)
}

func (suite *AuthHandlerTestSuite) TestValidateToken_Invalid() {
	suite.mockAuthService.On("ValidateToken", mock.Anything, "garbage").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/auth/validate", "", dto.ValidateTokenRequest{Token: "garbage"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	var resp dto.ValidateTokenResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Valid)
}

func (suite *AuthHandlerTestSuite) TestListUsers_RequiresAdmin() {
	w := suite.doRequest(http.MethodGet, "/api/v1/users", suite.tokenFor(domain.RoleUser), nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockAuthService.AssertNotCalled(suite.T(), "ListNonAdminUsers", mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestListUsers_AdminSuccess() {
	users := []domain.User{
		{UserID: uuid.NewString(), Email: "a@example.com", Role: domain.RoleUser},
		{UserID: uuid.NewString(), Email: "b@example.com", Role: domain.RoleUser},
	}
	suite.mockAuthService.On("ListNonAdminUsers", mock.Anything).Return(users, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/users", suite.tokenFor(domain.RoleAdmin), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListUsersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2, resp.Count)
	suite.Len(resp.Users, 2)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
