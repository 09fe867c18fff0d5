package services

import (
	"context"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
	"github.com/vendorpay/vpa_backend/internal/dto"
)

// VendorReaderSvc defines read operations for vendor data
type VendorReaderSvc interface {
	// GetVendorByID retrieves a specific vendor by its ID.
	GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)

	// ListVendors retrieves all vendors.
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
}

// VendorWriterSvc defines write operations for vendor data
type VendorWriterSvc interface {
	// CreateVendor registers a new vendor.
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error)

	// DeleteVendorCascade removes a vendor together with all its projects,
	// bills and payments, then vendor-scoped payments, then the vendor.
	// Returns the number of projects removed.
	DeleteVendorCascade(ctx context.Context, vendorID string) (int, error)
}

// VendorSvcFacade combines all vendor-related service interfaces
type VendorSvcFacade interface {
	VendorReaderSvc
	VendorWriterSvc
}
