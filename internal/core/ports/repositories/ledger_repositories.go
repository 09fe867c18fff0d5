package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
)

// LedgerRepository performs the atomic, invariant-preserving mutations that
// pair a bill/payment row write with the owning project's (billed, paid,
// balance) update. Each method is exactly one storage transaction: either
// both writes land or neither does.
//
// Preconditions are conditional: the child write requires the ID to be
// absent (create) or present (delete), and the project update requires the
// project row to exist. A failed precondition rolls back the whole
// transaction and surfaces apperrors.ErrNotFound / ErrDuplicate.
//
// These four methods are the only code paths in the system that write a
// project's ledger triple.
type LedgerRepository interface {
	// ApplyBillCreated inserts the bill and adds its amount to the project's
	// billed and balance.
	ApplyBillCreated(ctx context.Context, bill domain.Bill) error

	// ApplyBillDeleted deletes the bill and subtracts its amount from the
	// project's billed and balance.
	ApplyBillDeleted(ctx context.Context, billID, projectID string, amount decimal.Decimal) error

	// ApplyPaymentCreated inserts a project-scoped payment and applies
	// paid += total, balance -= total to the project.
	ApplyPaymentCreated(ctx context.Context, payment domain.Payment) error

	// ApplyPaymentDeleted deletes a project-scoped payment and applies the
	// exact inverse: paid -= total, balance += total.
	ApplyPaymentDeleted(ctx context.Context, paymentID, projectID string, total decimal.Decimal) error
}
