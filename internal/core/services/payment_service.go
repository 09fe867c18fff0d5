package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/vendorpay/vpa_backend/internal/apperrors"
	"github.com/vendorpay/vpa_backend/internal/core/domain"
	portsrepo "github.com/vendorpay/vpa_backend/internal/core/ports/repositories"
	"github.com/vendorpay/vpa_backend/internal/dto"
	"github.com/vendorpay/vpa_backend/internal/middleware"
	"github.com/vendorpay/vpa_backend/internal/platform/company"
	"github.com/vendorpay/vpa_backend/internal/utils/paymentid"
	"github.com/vendorpay/vpa_backend/internal/utils/timeutils"
)

// PaymentService implements both payment variants: project-scoped vouchers
// that move the owning project's ledger, and vendor-scoped vouchers that
// bypass every ledger.
type PaymentService struct {
	paymentRepo   portsrepo.PaymentRepositoryFacade
	projectRepo   portsrepo.ProjectRepositoryFacade
	vendorRepo    portsrepo.VendorRepositoryFacade
	ledgerRepo    portsrepo.LedgerRepository
	companyMaster company.Master
}

func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	projectRepo portsrepo.ProjectRepositoryFacade,
	vendorRepo portsrepo.VendorRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepository,
	companyMaster company.Master,
) *PaymentService {
	return &PaymentService{
		paymentRepo:   paymentRepo,
		projectRepo:   projectRepo,
		vendorRepo:    vendorRepo,
		ledgerRepo:    ledgerRepo,
		companyMaster: companyMaster,
	}
}

func validatePaymentCommon(items []dto.LineItemRequest, itemsTotal, total decimal.Decimal, summary dto.PaymentSummaryRequest) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: at least one line item is required", apperrors.ErrValidation)
	}
	if !itemsTotal.IsPositive() {
		return fmt.Errorf("%w: itemsTotal must be greater than zero", apperrors.ErrValidation)
	}
	if !total.IsPositive() {
		return fmt.Errorf("%w: total must be greater than zero", apperrors.ErrValidation)
	}
	if summary.Mode == domain.PaymentModeCheque && (summary.BankName == "" || summary.ChequeNumber == "") {
		return fmt.Errorf("%w: bankName and chequeNumber are required for cheque payments", apperrors.ErrValidation)
	}
	return nil
}

func snapshotVendor(v *domain.Vendor) domain.VendorSnapshot {
	return domain.VendorSnapshot{
		Name:    v.Name,
		GSTIN:   v.GSTIN,
		Address: v.Address,
		PAN:     v.PAN,
		Phone:   v.Phone,
	}
}

func snapshotCompany(c domain.Company) domain.CompanySnapshot {
	return domain.CompanySnapshot{
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
	}
}

func toLineItems(items []dto.LineItemRequest) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, item := range items {
		out[i] = domain.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
		}
	}
	return out
}

func (s *PaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validatePaymentCommon(req.Items, req.ItemsTotal, req.Total, req.Summary); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, req.ProjectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load project for payment", slog.String("error", err.Error()), slog.String("project_id", req.ProjectID))
		}
		return nil, err
	}

	vendor, err := s.vendorRepo.FindVendorByID(ctx, project.VendorID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load vendor for payment", slog.String("error", err.Error()), slog.String("vendor_id", project.VendorID))
		}
		return nil, err
	}

	companyEntry, ok := s.companyMaster.Resolve(project.CompanyName)
	if !ok {
		return nil, fmt.Errorf("%w: no company master entry for %q", apperrors.ErrValidation, project.CompanyName)
	}

	payment := domain.Payment{
		PaymentID: paymentid.New(),
		ProjectID: project.ProjectID,
		Vendor:    snapshotVendor(vendor),
		Company:   snapshotCompany(companyEntry),
		Summary: domain.PaymentSummary{
			Mode:         req.Summary.Mode,
			BankName:     req.Summary.BankName,
			ChequeNumber: req.Summary.ChequeNumber,
		},
		Items:     toLineItems(req.Items),
		ItemsTot:  req.ItemsTotal,
		GST:       req.GST,
		Total:     req.Total,
		CreatedAt: timeutils.FormatIST(timeutils.NowIST()),
	}

	// One transaction: payment insert + paid/balance update on the project.
	if err := s.ledgerRepo.ApplyPaymentCreated(ctx, payment); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to apply payment creation", slog.String("error", err.Error()), slog.String("project_id", project.ProjectID))
		}
		return nil, err
	}

	logger.Info("Payment created",
		slog.String("payment_id", payment.PaymentID),
		slog.String("project_id", project.ProjectID),
		slog.String("total", payment.Total.String()))
	return &payment, nil
}

func (s *PaymentService) CreatePaymentV2(ctx context.Context, req dto.CreatePaymentV2Request) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validatePaymentCommon(req.Items, req.ItemsTotal, req.Total, req.Summary); err != nil {
		return nil, err
	}

	vendor, err := s.vendorRepo.FindVendorByID(ctx, req.VendorID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load vendor for payment", slog.String("error", err.Error()), slog.String("vendor_id", req.VendorID))
		}
		return nil, err
	}

	companyName := req.CompanyName
	if companyName == "" {
		companyName = company.DefaultKey
	}
	companyEntry, ok := s.companyMaster.Resolve(companyName)
	if !ok {
		return nil, fmt.Errorf("%w: no company master entry for %q", apperrors.ErrValidation, companyName)
	}

	payment := domain.Payment{
		PaymentID: paymentid.New(),
		VendorID:  vendor.VendorID,
		Vendor:    snapshotVendor(vendor),
		Company:   snapshotCompany(companyEntry),
		Summary: domain.PaymentSummary{
			Mode:         req.Summary.Mode,
			BankName:     req.Summary.BankName,
			ChequeNumber: req.Summary.ChequeNumber,
		},
		Items:     toLineItems(req.Items),
		ItemsTot:  req.ItemsTotal,
		GST:       req.GST,
		Total:     req.Total,
		CreatedAt: timeutils.FormatIST(timeutils.NowIST()),
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		logger.Error("Failed to save vendor payment", slog.String("error", err.Error()), slog.String("vendor_id", vendor.VendorID))
		return nil, err
	}

	logger.Info("Vendor payment created",
		slog.String("payment_id", payment.PaymentID),
		slog.String("vendor_id", vendor.VendorID),
		slog.String("total", payment.Total.String()))
	return &payment, nil
}

func (s *PaymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find payment", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		}
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) ListPaymentsByProject(ctx context.Context, projectID string) ([]domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	payments, err := s.paymentRepo.ListPaymentsByProject(ctx, projectID)
	if err != nil {
		logger.Error("Failed to list project payments", slog.String("error", err.Error()), slog.String("project_id", projectID))
		return nil, err
	}
	return payments, nil
}

func (s *PaymentService) ListPaymentsByVendor(ctx context.Context, vendorID string) ([]domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	payments, err := s.paymentRepo.ListPaymentsByVendor(ctx, vendorID)
	if err != nil {
		logger.Error("Failed to list vendor payments", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
		return nil, err
	}
	return payments, nil
}

// DeletePayment reverses a project-scoped payment's ledger effect atomically,
// or plainly deletes a vendor-scoped payment.
func (s *PaymentService) DeletePayment(ctx context.Context, paymentID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load payment for deletion", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		}
		return err
	}

	if payment.IsProjectScoped() {
		err = s.ledgerRepo.ApplyPaymentDeleted(ctx, payment.PaymentID, payment.ProjectID, payment.Total)
	} else {
		err = s.paymentRepo.DeletePayment(ctx, payment.PaymentID)
	}
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete payment", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		}
		return err
	}

	logger.Info("Payment deleted",
		slog.String("payment_id", payment.PaymentID),
		slog.Bool("project_scoped", payment.IsProjectScoped()))
	return nil
}

func (s *PaymentService) DeleteAllPaymentsByVendor(ctx context.Context, vendorID string) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.vendorRepo.FindVendorByID(ctx, vendorID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load vendor before bulk payment delete", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
		}
		return 0, err
	}

	count, err := s.paymentRepo.DeleteAllPaymentsByVendor(ctx, vendorID)
	if err != nil {
		logger.Error("Failed to delete vendor payments", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
		return 0, err
	}

	logger.Info("Vendor payments deleted", slog.String("vendor_id", vendorID), slog.Int64("count", count))
	return count, nil
}
