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

type ProjectServiceTestSuite struct {
	suite.Suite
	mockProjectRepo *MockProjectRepository
	mockVendorRepo  *MockVendorRepository
	mockBillRepo    *MockBillRepository
	mockPaymentRepo *MockPaymentRepository
	service         *services.ProjectService
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockVendorRepo = new(MockVendorRepository)
	suite.mockBillRepo = new(MockBillRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.service = services.NewProjectService(suite.mockProjectRepo, suite.mockVendorRepo, suite.mockBillRepo, suite.mockPaymentRepo)
}

func (suite *ProjectServiceTestSuite) TestCreateProject_StartsWithZeroLedger() {
	ctx := context.Background()
	req := dto.CreateProjectRequest{
		VendorID:    uuid.NewString(),
		ProjectName: "Warehouse",
		CompanyName: "Shree Constructions",
		Estimated:   decimal.NewFromInt(200000),
	}

	suite.mockProjectRepo.On("SaveProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.Billed.IsZero() && p.Paid.IsZero() && p.Balance.IsZero() &&
			p.Estimated.Equal(req.Estimated) && p.ProjectID != ""
	})).Return(nil).Once()

	project, err := suite.service.CreateProject(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(project)
	suite.Equal(req.VendorID, project.VendorID)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestListProjectsByVendor_VendorMissing() {
	ctx := context.Background()
	vendorID := uuid.NewString()

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendorID).Return(nil, apperrors.ErrNotFound).Once()

	projects, err := suite.service.ListProjectsByVendor(ctx, vendorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(projects)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "ListProjectsByVendor", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestDeleteProjectCascade_RemovesChildrenFirst() {
	ctx := context.Background()
	projectID := uuid.NewString()

	suite.mockProjectRepo.On("FindProjectByID", ctx, projectID).Return(&domain.Project{ProjectID: projectID}, nil).Once()
	suite.mockPaymentRepo.On("DeleteAllPaymentsByProject", ctx, projectID).Return(int64(4), nil).Once()
	suite.mockBillRepo.On("DeleteAllBillsByProject", ctx, projectID).Return(int64(7), nil).Once()
	suite.mockProjectRepo.On("DeleteProject", ctx, projectID).Return(nil).Once()

	err := suite.service.DeleteProjectCascade(ctx, projectID)

	suite.Require().NoError(err)
	suite.mockProjectRepo.AssertExpectations(suite.T())
	suite.mockBillRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestDeleteProjectCascade_KeepsProjectWhenBillsFail() {
	ctx := context.Background()
	projectID := uuid.NewString()

	suite.mockProjectRepo.On("FindProjectByID", ctx, projectID).Return(&domain.Project{ProjectID: projectID}, nil).Once()
	suite.mockPaymentRepo.On("DeleteAllPaymentsByProject", ctx, projectID).Return(int64(0), nil).Once()
	suite.mockBillRepo.On("DeleteAllBillsByProject", ctx, projectID).Return(int64(0), errRepoFailure).Once()

	err := suite.service.DeleteProjectCascade(ctx, projectID)

	suite.Require().Error(err)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "DeleteProject", mock.Anything, mock.Anything)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
