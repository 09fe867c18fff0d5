package models

import (
	"github.com/shopspring/decimal"
)

// Project is the database representation of a project aggregate.
// billed, paid and balance are written only by the ledger repository.
type Project struct {
	ProjectID   string          `db:"project_id"`
	VendorID    string          `db:"vendor_id"`
	ProjectName string          `db:"project_name"`
	CompanyName string          `db:"company_name"`
	Billed      decimal.Decimal `db:"billed"`
	Paid        decimal.Decimal `db:"paid"`
	Balance     decimal.Decimal `db:"balance"`
	Estimated   decimal.Decimal `db:"estimated"`
	CreatedAt   string          `db:"created_at"`
}
