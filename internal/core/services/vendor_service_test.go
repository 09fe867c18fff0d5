package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vendorpay/vpa_backend/internal/apperrors"
	"github.com/vendorpay/vpa_backend/internal/core/domain"
	"github.com/vendorpay/vpa_backend/internal/core/services"
	"github.com/vendorpay/vpa_backend/internal/dto"
)

type VendorServiceTestSuite struct {
	suite.Suite
	mockVendorRepo  *MockVendorRepository
	mockProjectRepo *MockProjectRepository
	mockBillRepo    *MockBillRepository
	mockPaymentRepo *MockPaymentRepository
	service         *services.VendorService
}

func (suite *VendorServiceTestSuite) SetupTest() {
	suite.mockVendorRepo = new(MockVendorRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockBillRepo = new(MockBillRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.service = services.NewVendorService(suite.mockVendorRepo, suite.mockProjectRepo, suite.mockBillRepo, suite.mockPaymentRepo)
}

func (suite *VendorServiceTestSuite) TestCreateVendor_Success() {
	ctx := context.Background()
	req := dto.CreateVendorRequest{
		Name:    "Acme Traders",
		Phone:   "9876543210",
		Address: "Market Road",
		PAN:     "ABCDE1234F",
	}

	suite.mockVendorRepo.On("SaveVendor", ctx, mock.MatchedBy(func(v domain.Vendor) bool {
		return v.Name == req.Name && v.PAN == req.PAN && v.VendorID != "" && v.CreatedAt != ""
	})).Return(nil).Once()

	vendor, err := suite.service.CreateVendor(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(vendor)
	suite.Empty(vendor.GSTIN)
	suite.mockVendorRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestDeleteVendorCascade_RemovesEverything() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	projects := []domain.Project{
		{ProjectID: uuid.NewString(), VendorID: vendorID},
		{ProjectID: uuid.NewString(), VendorID: vendorID},
	}

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendorID).Return(&domain.Vendor{VendorID: vendorID}, nil).Once()
	suite.mockProjectRepo.On("ListProjectsByVendor", ctx, vendorID).Return(projects, nil).Once()

	for _, p := range projects {
		suite.mockPaymentRepo.On("DeleteAllPaymentsByProject", ctx, p.ProjectID).Return(int64(3), nil).Once()
		suite.mockBillRepo.On("DeleteAllBillsByProject", ctx, p.ProjectID).Return(int64(2), nil).Once()
		suite.mockProjectRepo.On("DeleteProject", ctx, p.ProjectID).Return(nil).Once()
	}
	suite.mockPaymentRepo.On("DeleteAllPaymentsByVendor", ctx, vendorID).Return(int64(1), nil).Once()
	suite.mockVendorRepo.On("DeleteVendor", ctx, vendorID).Return(nil).Once()

	deleted, err := suite.service.DeleteVendorCascade(ctx, vendorID)

	suite.Require().NoError(err)
	suite.Equal(2, deleted)
	suite.mockVendorRepo.AssertExpectations(suite.T())
	suite.mockProjectRepo.AssertExpectations(suite.T())
	suite.mockBillRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestDeleteVendorCascade_VendorMissing() {
	ctx := context.Background()
	vendorID := uuid.NewString()

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendorID).Return(nil, apperrors.ErrNotFound).Once()

	deleted, err := suite.service.DeleteVendorCascade(ctx, vendorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Zero(deleted)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "ListProjectsByVendor", mock.Anything, mock.Anything)
}

func (suite *VendorServiceTestSuite) TestDeleteVendorCascade_StopsOnChildFailure() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	projectID := uuid.NewString()

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendorID).Return(&domain.Vendor{VendorID: vendorID}, nil).Once()
	suite.mockProjectRepo.On("ListProjectsByVendor", ctx, vendorID).Return([]domain.Project{{ProjectID: projectID, VendorID: vendorID}}, nil).Once()
	suite.mockPaymentRepo.On("DeleteAllPaymentsByProject", ctx, projectID).Return(int64(0), errRepoFailure).Once()

	deleted, err := suite.service.DeleteVendorCascade(ctx, vendorID)

	suite.Require().Error(err)
	suite.Zero(deleted)
	// The vendor row must survive a partial cascade so a retry can finish it.
	suite.mockVendorRepo.AssertNotCalled(suite.T(), "DeleteVendor", mock.Anything, mock.Anything)
}

func TestVendorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VendorServiceTestSuite))
}
