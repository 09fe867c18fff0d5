package services

import (
	"context"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
	"github.com/vendorpay/vpa_backend/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a specific payment by its ID.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByProject retrieves all payments for a project, newest first.
	ListPaymentsByProject(ctx context.Context, projectID string) ([]domain.Payment, error)

	// ListPaymentsByVendor retrieves all vendor-scoped payments for a vendor,
	// newest first.
	ListPaymentsByVendor(ctx context.Context, vendorID string) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	// CreatePayment creates a project-scoped payment: resolves the project,
	// its vendor and the company master entry, snapshots them, and atomically
	// applies paid += total, balance -= total to the project.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)

	// CreatePaymentV2 creates a vendor-scoped payment with no ledger effect.
	CreatePaymentV2(ctx context.Context, req dto.CreatePaymentV2Request) (*domain.Payment, error)

	// DeletePayment removes a payment. Project-scoped payments have their
	// ledger effect reversed atomically; vendor-scoped payments are simply
	// deleted.
	DeletePayment(ctx context.Context, paymentID string) error

	// DeleteAllPaymentsByVendor removes every vendor-scoped payment for a
	// vendor, returning the number removed.
	DeleteAllPaymentsByVendor(ctx context.Context, vendorID string) (int64, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
