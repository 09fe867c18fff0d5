package services

import (
	"context"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
	"github.com/vendorpay/vpa_backend/internal/dto"
)

// BillReaderSvc defines read operations for bill data
type BillReaderSvc interface {
	// ListBillsByProject retrieves all bills for a project, newest first.
	ListBillsByProject(ctx context.Context, projectID string) ([]domain.Bill, error)
}

// BillWriterSvc defines write operations for bill data
type BillWriterSvc interface {
	// CreateBill raises a bill against a project, atomically adding its
	// amount to the project's billed and balance.
	CreateBill(ctx context.Context, req dto.CreateBillRequest) (*domain.Bill, error)

	// DeleteBill removes a bill, atomically reversing its ledger effect.
	DeleteBill(ctx context.Context, billID string) error
}

// BillSvcFacade combines all bill-related service interfaces
type BillSvcFacade interface {
	BillReaderSvc
	BillWriterSvc
}
