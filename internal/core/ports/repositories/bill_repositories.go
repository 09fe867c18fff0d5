package repositories

import (
	"context"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
)

// BillReader defines read operations for bill data
type BillReader interface {
	// FindBillByID retrieves a specific bill by its ID.
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// ListBillsByProject retrieves all bills for a project, newest first.
	ListBillsByProject(ctx context.Context, projectID string) ([]domain.Bill, error)
}

// BillWriter defines the bulk write operation for bill data. Single bill
// creation and deletion go through LedgerRepository so they can never bypass
// the project ledger update.
type BillWriter interface {
	// DeleteAllBillsByProject removes every bill for a project WITHOUT
	// adjusting the project ledger. Only valid during whole-project teardown,
	// where the project row itself is deleted in the same sequence.
	DeleteAllBillsByProject(ctx context.Context, projectID string) (int64, error)
}

// BillRepositoryFacade combines all bill-related repository interfaces
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}
