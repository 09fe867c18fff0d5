package repositories

import (
	"context"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its ID.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByProject retrieves all project-scoped payments for a
	// project, newest first.
	ListPaymentsByProject(ctx context.Context, projectID string) ([]domain.Payment, error)

	// ListPaymentsByVendor retrieves all vendor-scoped payments for a vendor,
	// newest first.
	ListPaymentsByVendor(ctx context.Context, vendorID string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data. Project-scoped
// creation and deletion go through LedgerRepository; the operations here
// never touch a project ledger.
type PaymentWriter interface {
	// SavePayment persists a vendor-scoped payment. Returns
	// apperrors.ErrDuplicate if the ID already exists.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// DeletePayment removes a vendor-scoped payment. Returns
	// apperrors.ErrNotFound if no such payment exists.
	DeletePayment(ctx context.Context, paymentID string) error

	// DeleteAllPaymentsByProject removes every payment for a project WITHOUT
	// adjusting the project ledger. Teardown only.
	DeleteAllPaymentsByProject(ctx context.Context, projectID string) (int64, error)

	// DeleteAllPaymentsByVendor removes every vendor-scoped payment for a
	// vendor. Teardown only.
	DeleteAllPaymentsByVendor(ctx context.Context, vendorID string) (int64, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
