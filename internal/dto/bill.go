package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
)

// CreateBillRequest defines the data needed to raise a bill against a project.
// Amount positivity is validated in the service, where decimal semantics live.
type CreateBillRequest struct {
	ProjectID   string          `json:"projectID" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// BillResponse defines the data returned for a bill.
type BillResponse struct {
	BillID      string          `json:"billID"`
	ProjectID   string          `json:"projectID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   string          `json:"createdAt"`
}

// ToBillResponse converts a domain.Bill to BillResponse DTO
func ToBillResponse(b *domain.Bill) BillResponse {
	return BillResponse{
		BillID:      b.BillID,
		ProjectID:   b.ProjectID,
		Description: b.Description,
		Amount:      b.Amount,
		CreatedAt:   b.CreatedAt,
	}
}

// ListBillsResponse wraps the list of bills for a project.
type ListBillsResponse struct {
	Count int            `json:"count"`
	Bills []BillResponse `json:"bills"`
}

// ToListBillsResponse converts a slice of domain.Bill to the list DTO.
func ToListBillsResponse(bills []domain.Bill) ListBillsResponse {
	res := make([]BillResponse, len(bills))
	for i, b := range bills {
		res[i] = ToBillResponse(&b)
	}
	return ListBillsResponse{Count: len(res), Bills: res}
}
