package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vendorpay/vpa_backend/internal/apperrors"
	"github.com/vendorpay/vpa_backend/internal/core/domain"
	portsrepo "github.com/vendorpay/vpa_backend/internal/core/ports/repositories"
	"github.com/vendorpay/vpa_backend/internal/dto"
	"github.com/vendorpay/vpa_backend/internal/middleware"
	"github.com/vendorpay/vpa_backend/internal/utils/timeutils"
)

// VendorService implements vendor registration, lookup and cascade removal.
type VendorService struct {
	vendorRepo  portsrepo.VendorRepositoryFacade
	projectRepo portsrepo.ProjectRepositoryFacade
	billRepo    portsrepo.BillRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
}

func NewVendorService(
	vendorRepo portsrepo.VendorRepositoryFacade,
	projectRepo portsrepo.ProjectRepositoryFacade,
	billRepo portsrepo.BillRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
) *VendorService {
	return &VendorService{
		vendorRepo:  vendorRepo,
		projectRepo: projectRepo,
		billRepo:    billRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *VendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Name == "" || req.Phone == "" || req.Address == "" || req.PAN == "" {
		return nil, fmt.Errorf("%w: name, phone, address and pan are required", apperrors.ErrValidation)
	}

	vendor := domain.Vendor{
		VendorID:  uuid.NewString(),
		Name:      req.Name,
		Phone:     req.Phone,
		Address:   req.Address,
		PAN:       req.PAN,
		GSTIN:     req.GSTIN,
		CreatedAt: timeutils.FormatIST(timeutils.NowIST()),
	}

	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		logger.Error("Failed to save vendor", slog.String("error", err.Error()), slog.String("vendor_id", vendor.VendorID))
		return nil, err
	}

	logger.Info("Vendor created", slog.String("vendor_id", vendor.VendorID))
	return &vendor, nil
}

func (s *VendorService) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find vendor", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
		}
		return nil, err
	}
	return vendor, nil
}

func (s *VendorService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	vendors, err := s.vendorRepo.ListVendors(ctx)
	if err != nil {
		logger.Error("Failed to list vendors", slog.String("error", err.Error()))
		return nil, err
	}
	return vendors, nil
}

// DeleteVendorCascade tears down a vendor and everything hanging off it:
// for each project its payments, then its bills, then the project record;
// then vendor-scoped payments; then the vendor itself.
//
// The cascade is not one transaction. Every step is idempotent, so a failed
// run can be retried and will finish the remaining work.
func (s *VendorService) DeleteVendorCascade(ctx context.Context, vendorID string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.vendorRepo.FindVendorByID(ctx, vendorID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load vendor for cascade delete", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
		}
		return 0, err
	}

	projects, err := s.projectRepo.ListProjectsByVendor(ctx, vendorID)
	if err != nil {
		logger.Error("Failed to list projects for cascade delete", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
		return 0, err
	}

	for _, project := range projects {
		paymentCount, err := s.paymentRepo.DeleteAllPaymentsByProject(ctx, project.ProjectID)
		if err != nil {
			logger.Error("Cascade delete failed removing project payments", slog.String("error", err.Error()), slog.String("project_id", project.ProjectID))
			return 0, fmt.Errorf("failed to delete payments for project %s: %w", project.ProjectID, err)
		}
		billCount, err := s.billRepo.DeleteAllBillsByProject(ctx, project.ProjectID)
		if err != nil {
			logger.Error("Cascade delete failed removing project bills", slog.String("error", err.Error()), slog.String("project_id", project.ProjectID))
			return 0, fmt.Errorf("failed to delete bills for project %s: %w", project.ProjectID, err)
		}
		if err := s.projectRepo.DeleteProject(ctx, project.ProjectID); err != nil {
			logger.Error("Cascade delete failed removing project", slog.String("error", err.Error()), slog.String("project_id", project.ProjectID))
			return 0, fmt.Errorf("failed to delete project %s: %w", project.ProjectID, err)
		}
		logger.Info("Cascade removed project",
			slog.String("project_id", project.ProjectID),
			slog.Int64("payments_deleted", paymentCount),
			slog.Int64("bills_deleted", billCount))
	}

	vendorPaymentCount, err := s.paymentRepo.DeleteAllPaymentsByVendor(ctx, vendorID)
	if err != nil {
		logger.Error("Cascade delete failed removing vendor payments", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
		return 0, fmt.Errorf("failed to delete vendor payments: %w", err)
	}

	if err := s.vendorRepo.DeleteVendor(ctx, vendorID); err != nil {
		logger.Error("Cascade delete failed removing vendor", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
		return 0, fmt.Errorf("failed to delete vendor %s: %w", vendorID, err)
	}

	logger.Info("Vendor cascade delete complete",
		slog.String("vendor_id", vendorID),
		slog.Int("projects_deleted", len(projects)),
		slog.Int64("vendor_payments_deleted", vendorPaymentCount))
	return len(projects), nil
}
