package repositories

import (
	"context"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
)

// VendorReader defines read operations for vendor data
type VendorReader interface {
	// FindVendorByID retrieves a specific vendor by its ID.
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)

	// ListVendors retrieves all vendors.
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
}

// VendorWriter defines write operations for vendor data
type VendorWriter interface {
	// SaveVendor persists a new vendor. Returns apperrors.ErrDuplicate if a
	// vendor with the same ID already exists.
	SaveVendor(ctx context.Context, vendor domain.Vendor) error

	// DeleteVendor removes a vendor record. Idempotent: deleting an absent
	// vendor is not an error, so a partially failed cascade can be retried.
	DeleteVendor(ctx context.Context, vendorID string) error
}

// VendorRepositoryFacade combines all vendor-related repository interfaces
type VendorRepositoryFacade interface {
	VendorReader
	VendorWriter
}
