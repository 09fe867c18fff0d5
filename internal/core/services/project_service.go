package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendorpay/vpa_backend/internal/apperrors"
	"github.com/vendorpay/vpa_backend/internal/core/domain"
	portsrepo "github.com/vendorpay/vpa_backend/internal/core/ports/repositories"
	"github.com/vendorpay/vpa_backend/internal/dto"
	"github.com/vendorpay/vpa_backend/internal/middleware"
	"github.com/vendorpay/vpa_backend/internal/utils/timeutils"
)

// ProjectService implements project creation, lookup and cascade removal.
type ProjectService struct {
	projectRepo portsrepo.ProjectRepositoryFacade
	vendorRepo  portsrepo.VendorRepositoryFacade
	billRepo    portsrepo.BillRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
}

func NewProjectService(
	projectRepo portsrepo.ProjectRepositoryFacade,
	vendorRepo portsrepo.VendorRepositoryFacade,
	billRepo portsrepo.BillRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		vendorRepo:  vendorRepo,
		billRepo:    billRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *ProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	project := domain.Project{
		ProjectID:   uuid.NewString(),
		VendorID:    req.VendorID,
		ProjectName: req.ProjectName,
		CompanyName: req.CompanyName,
		Billed:      decimal.Zero,
		Paid:        decimal.Zero,
		Balance:     decimal.Zero,
		Estimated:   req.Estimated,
		CreatedAt:   timeutils.FormatIST(timeutils.NowIST()),
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		logger.Error("Failed to save project", slog.String("error", err.Error()), slog.String("project_id", project.ProjectID))
		return nil, err
	}

	logger.Info("Project created", slog.String("project_id", project.ProjectID), slog.String("vendor_id", project.VendorID))
	return &project, nil
}

func (s *ProjectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find project", slog.String("error", err.Error()), slog.String("project_id", projectID))
		}
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) ListProjectsByVendor(ctx context.Context, vendorID string) ([]domain.Project, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Listing for an unknown vendor is a 404, not an empty list.
	if _, err := s.vendorRepo.FindVendorByID(ctx, vendorID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to verify vendor before listing projects", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
		}
		return nil, err
	}

	projects, err := s.projectRepo.ListProjectsByVendor(ctx, vendorID)
	if err != nil {
		logger.Error("Failed to list projects", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
		return nil, err
	}
	return projects, nil
}

// DeleteProjectCascade removes one project's payments, then its bills, then
// the project record. The bulk child deletes bypass the ledger on purpose:
// the ledger row being torn down is deleted in the same sequence.
func (s *ProjectService) DeleteProjectCascade(ctx context.Context, projectID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load project for cascade delete", slog.String("error", err.Error()), slog.String("project_id", projectID))
		}
		return err
	}

	paymentCount, err := s.paymentRepo.DeleteAllPaymentsByProject(ctx, projectID)
	if err != nil {
		logger.Error("Cascade delete failed removing payments", slog.String("error", err.Error()), slog.String("project_id", projectID))
		return fmt.Errorf("failed to delete payments for project %s: %w", projectID, err)
	}

	billCount, err := s.billRepo.DeleteAllBillsByProject(ctx, projectID)
	if err != nil {
		logger.Error("Cascade delete failed removing bills", slog.String("error", err.Error()), slog.String("project_id", projectID))
		return fmt.Errorf("failed to delete bills for project %s: %w", projectID, err)
	}

	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		logger.Error("Cascade delete failed removing project", slog.String("error", err.Error()), slog.String("project_id", projectID))
		return fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}

	logger.Info("Project cascade delete complete",
		slog.String("project_id", projectID),
		slog.Int64("payments_deleted", paymentCount),
		slog.Int64("bills_deleted", billCount))
	return nil
}
