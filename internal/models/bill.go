package models

import (
	"github.com/shopspring/decimal"
)

// Bill is the database representation of a project bill.
type Bill struct {
	BillID      string          `db:"bill_id"`
	ProjectID   string          `db:"project_id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	CreatedAt   string          `db:"created_at"`
}
