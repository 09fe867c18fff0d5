package mapping

import (
	"github.com/vendorpay/vpa_backend/internal/core/domain"
	"github.com/vendorpay/vpa_backend/internal/models"
)

// ToModelVendor converts a domain Vendor to a model Vendor
func ToModelVendor(d domain.Vendor) models.Vendor {
	return models.Vendor{
		VendorID:  d.VendorID,
		Name:      d.Name,
		Phone:     d.Phone,
		Address:   d.Address,
		PAN:       d.PAN,
		GSTIN:     d.GSTIN,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainVendor converts a model Vendor to a domain Vendor
func ToDomainVendor(m models.Vendor) domain.Vendor {
	return domain.Vendor{
		VendorID:  m.VendorID,
		Name:      m.Name,
		Phone:     m.Phone,
		Address:   m.Address,
		PAN:       m.PAN,
		GSTIN:     m.GSTIN,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainVendorSlice converts a slice of model Vendors to a slice of domain Vendors
func ToDomainVendorSlice(ms []models.Vendor) []domain.Vendor {
	ds := make([]domain.Vendor, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVendor(m)
	}
	return ds
}
