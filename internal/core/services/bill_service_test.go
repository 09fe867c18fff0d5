package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vendorpay/vpa_backend/internal/apperrors"
	"github.com/vendorpay/vpa_backend/internal/core/domain"
	"github.com/vendorpay/vpa_backend/internal/core/services"
	"github.com/vendorpay/vpa_backend/internal/dto"
)

type BillServiceTestSuite struct {
	suite.Suite
	mockBillRepo   *MockBillRepository
	mockLedgerRepo *MockLedgerRepository
	service        *services.BillService
	projectID      string
}

func (suite *BillServiceTestSuite) SetupTest() {
	suite.mockBillRepo = new(MockBillRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewBillService(suite.mockBillRepo, suite.mockLedgerRepo)
	suite.projectID = uuid.NewString()
}

func (suite *BillServiceTestSuite) TestCreateBill_Success() {
	ctx := context.Background()
	req := dto.CreateBillRequest{
		ProjectID:   suite.projectID,
		Description: "Steel delivery",
		Amount:      decimal.NewFromInt(5000),
	}

	suite.mockLedgerRepo.On("ApplyBillCreated", ctx, mock.MatchedBy(func(b domain.Bill) bool {
		return b.ProjectID == suite.projectID && b.Amount.Equal(req.Amount) && b.BillID != ""
	})).Return(nil).Once()

	bill, err := suite.service.CreateBill(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(bill)
	suite.Equal(req.Description, bill.Description)
	suite.NotEmpty(bill.CreatedAt)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestCreateBill_RejectsNonPositiveAmount() {
	ctx := context.Background()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		req := dto.CreateBillRequest{
			ProjectID:   suite.projectID,
			Description: "Bad bill",
			Amount:      amount,
		}

		bill, err := suite.service.CreateBill(ctx, req)

		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(bill)
	}
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "ApplyBillCreated", mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestCreateBill_ProjectMissing() {
	ctx := context.Background()
	req := dto.CreateBillRequest{
		ProjectID:   suite.projectID,
		Description: "Orphan bill",
		Amount:      decimal.NewFromInt(100),
	}

	suite.mockLedgerRepo.On("ApplyBillCreated", ctx, mock.AnythingOfType("domain.Bill")).Return(apperrors.ErrNotFound).Once()

	bill, err := suite.service.CreateBill(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(bill)
}

func (suite *BillServiceTestSuite) TestCreateBill_ConflictPropagates() {
	ctx := context.Background()
	req := dto.CreateBillRequest{
		ProjectID:   suite.projectID,
		Description: "Raced bill",
		Amount:      decimal.NewFromInt(100),
	}

	// A ledger transaction that loses a race surfaces unchanged so the
	// caller can decide to retry.
	suite.mockLedgerRepo.On("ApplyBillCreated", ctx, mock.AnythingOfType("domain.Bill")).Return(apperrors.ErrConflict).Once()

	bill, err := suite.service.CreateBill(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(bill)
}

func (suite *BillServiceTestSuite) TestDeleteBill_ReversesExactAmount() {
	ctx := context.Background()
	billID := uuid.NewString()
	amount := decimal.RequireFromString("1234.56")

	suite.mockBillRepo.On("FindBillByID", ctx, billID).Return(&domain.Bill{
		BillID:    billID,
		ProjectID: suite.projectID,
		Amount:    amount,
	}, nil).Once()
	suite.mockLedgerRepo.On("ApplyBillDeleted", ctx, billID, suite.projectID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(amount)
	})).Return(nil).Once()

	err := suite.service.DeleteBill(ctx, billID)

	suite.Require().NoError(err)
	suite.mockBillRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestDeleteBill_NotFound() {
	ctx := context.Background()
	billID := uuid.NewString()

	suite.mockBillRepo.On("FindBillByID", ctx, billID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteBill(ctx, billID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "ApplyBillDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillServiceTestSuite))
}
