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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vendorpay/vpa_backend/internal/apperrors"
	"github.com/vendorpay/vpa_backend/internal/core/domain"
	"github.com/vendorpay/vpa_backend/internal/dto"
	"github.com/vendorpay/vpa_backend/internal/handlers"
	"github.com/vendorpay/vpa_backend/internal/middleware"
	"github.com/vendorpay/vpa_backend/internal/utils"
)

// --- Mock BillService ---
type MockBillService struct {
	mock.Mock
}

func (m *MockBillService) CreateBill(ctx context.Context, req dto.CreateBillRequest) (*domain.Bill, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) DeleteBill(ctx context.Context, billID string) error {
	args := m.Called(ctx, billID)
	return args.Error(0)
}

func (m *MockBillService) ListBillsByProject(ctx context.Context, projectID string) ([]domain.Bill, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

type BillHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockBillService *MockBillService
	jwtSecret       string
}

func (suite *BillHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockBillService = new(MockBillService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterBillRoutes(v1, suite.mockBillService)
}

func (suite *BillHandlerTestSuite) tokenFor(role domain.UserRole) string {
	token, err := utils.GenerateJWT(uuid.NewString(), string(role), suite.jwtSecret, time.Hour, "test")
	suite.Require().NoError(err)
	return token
}

func (suite *BillHandlerTestSuite) doRequest(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *BillHandlerTestSuite) TestCreateBill_Success() {
	projectID := uuid.NewString()
	reqBody := dto.CreateBillRequest{
		ProjectID:   projectID,
		Description: "Steel delivery",
		Amount:      decimal.NewFromInt(5000),
	}
	created := &domain.Bill{
		BillID:      uuid.NewString(),
		ProjectID:   projectID,
		Description: reqBody.Description,
		Amount:      reqBody.Amount,
		CreatedAt:   "2025-09-01T10:00:00.000Z",
	}

	suite.mockBillService.On("CreateBill", mock.Anything, mock.AnythingOfType("dto.CreateBillRequest")).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/bills", suite.tokenFor(domain.RoleUser), reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.BillResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.BillID, resp.BillID)
}

func (suite *BillHandlerTestSuite) TestCreateBill_MissingToken() {
	w := suite.doRequest(http.MethodPost, "/api/v1/bills", "not-a-token", dto.CreateBillRequest{})
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *BillHandlerTestSuite) TestDeleteBill_RequiresAdmin() {
	billID := uuid.NewString()

	w := suite.doRequest(http.MethodDelete, "/api/v1/bills/"+billID, suite.tokenFor(domain.RoleUser), nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockBillService.AssertNotCalled(suite.T(), "DeleteBill", mock.Anything, mock.Anything)
}

func (suite *BillHandlerTestSuite) TestDeleteBill_AdminSuccess() {
	billID := uuid.NewString()
	suite.mockBillService.On("DeleteBill", mock.Anything, billID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/bills/"+billID, suite.tokenFor(domain.RoleAdmin), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockBillService.AssertExpectations(suite.T())
}

func (suite *BillHandlerTestSuite) TestDeleteBill_NotFound() {
	billID := uuid.NewString()
	suite.mockBillService.On("DeleteBill", mock.Anything, billID).Return(apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/bills/"+billID, suite.tokenFor(domain.RoleAdmin), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestBillHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BillHandlerTestSuite))
}
