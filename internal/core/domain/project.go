package domain

import (
	"github.com/shopspring/decimal"
)

// Project is the aggregate root whose ledger triple (billed, paid, balance)
// the core protects. The triple starts at zero and is mutated exclusively by
// the ledger primitives; no service or handler writes these fields directly.
//
// balance tracks the outstanding amount owed: billed minus paid.
type Project struct {
	ProjectID   string          `json:"projectID"`
	VendorID    string          `json:"vendorID"`
	ProjectName string          `json:"projectName"`
	CompanyName string          `json:"companyName"`
	Billed      decimal.Decimal `json:"billed"`
	Paid        decimal.Decimal `json:"paid"`
	Balance     decimal.Decimal `json:"balance"`
	Estimated   decimal.Decimal `json:"estimated"`
	CreatedAt   string          `json:"createdAt"`
}
