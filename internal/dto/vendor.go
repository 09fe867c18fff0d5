package dto

import (
	"github.com/vendorpay/vpa_backend/internal/core/domain"
)

// CreateVendorRequest defines the data needed to register a new vendor.
type CreateVendorRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
	PAN     string `json:"pan" binding:"required,pan"`
	GSTIN   string `json:"gstin" binding:"omitempty,gstin"` // optional
}

// VendorResponse defines the data returned for a vendor.
type VendorResponse struct {
	VendorID  string `json:"vendorID"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	PAN       string `json:"pan"`
	GSTIN     string `json:"gstin,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// ToVendorResponse converts a domain.Vendor to VendorResponse DTO
func ToVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:  v.VendorID,
		Name:      v.Name,
		Phone:     v.Phone,
		Address:   v.Address,
		PAN:       v.PAN,
		GSTIN:     v.GSTIN,
		CreatedAt: v.CreatedAt,
	}
}

// ListVendorsResponse wraps the list of vendors.
type ListVendorsResponse struct {
	Count   int              `json:"count"`
	Vendors []VendorResponse `json:"vendors"`
}

// ToListVendorsResponse converts a slice of domain.Vendor to the list DTO.
func ToListVendorsResponse(vendors []domain.Vendor) ListVendorsResponse {
	res := make([]VendorResponse, len(vendors))
	for i, v := range vendors {
		res[i] = ToVendorResponse(&v)
	}
	return ListVendorsResponse{Count: len(res), Vendors: res}
}

// DeleteVendorResponse reports the outcome of a vendor cascade delete.
type DeleteVendorResponse struct {
	VendorID        string `json:"vendorID"`
	DeletedProjects int    `json:"deletedProjects"`
}
