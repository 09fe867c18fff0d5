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

// BillService implements bill creation and deletion on top of the ledger
// primitives, so a bill row can never exist without its project ledger effect.
type BillService struct {
	billRepo   portsrepo.BillRepositoryFacade
	ledgerRepo portsrepo.LedgerRepository
}

func NewBillService(billRepo portsrepo.BillRepositoryFacade, ledgerRepo portsrepo.LedgerRepository) *BillService {
	return &BillService{billRepo: billRepo, ledgerRepo: ledgerRepo}
}

func (s *BillService) CreateBill(ctx context.Context, req dto.CreateBillRequest) (*domain.Bill, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	bill := domain.Bill{
		BillID:      uuid.NewString(),
		ProjectID:   req.ProjectID,
		Description: req.Description,
		Amount:      req.Amount,
		CreatedAt:   timeutils.FormatIST(timeutils.NowIST()),
	}

	// One transaction: bill insert + billed/balance increment. A missing
	// project surfaces as ErrNotFound and nothing is written.
	if err := s.ledgerRepo.ApplyBillCreated(ctx, bill); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to apply bill creation", slog.String("error", err.Error()), slog.String("project_id", bill.ProjectID))
		}
		return nil, err
	}

	logger.Info("Bill created",
		slog.String("bill_id", bill.BillID),
		slog.String("project_id", bill.ProjectID),
		slog.String("amount", bill.Amount.String()))
	return &bill, nil
}

func (s *BillService) DeleteBill(ctx context.Context, billID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load bill for deletion", slog.String("error", err.Error()), slog.String("bill_id", billID))
		}
		return err
	}

	if err := s.ledgerRepo.ApplyBillDeleted(ctx, bill.BillID, bill.ProjectID, bill.Amount); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to apply bill deletion", slog.String("error", err.Error()), slog.String("bill_id", billID))
		}
		return err
	}

	logger.Info("Bill deleted",
		slog.String("bill_id", bill.BillID),
		slog.String("project_id", bill.ProjectID),
		slog.String("amount", bill.Amount.String()))
	return nil
}

func (s *BillService) ListBillsByProject(ctx context.Context, projectID string) ([]domain.Bill, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	bills, err := s.billRepo.ListBillsByProject(ctx, projectID)
	if err != nil {
		logger.Error("Failed to list bills", slog.String("error", err.Error()), slog.String("project_id", projectID))
		return nil, err
	}
	return bills, nil
}
