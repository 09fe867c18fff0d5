package domain

import (
	"github.com/shopspring/decimal"
)

// Bill is a charge raised against a project. Creating one adds its amount to
// the project's billed and balance; deleting one reverses that exactly.
type Bill struct {
	BillID      string          `json:"billID"`
	ProjectID   string          `json:"projectID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // always > 0
	CreatedAt   string          `json:"createdAt"`
}
