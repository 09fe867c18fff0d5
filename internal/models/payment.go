package models

import (
	"github.com/shopspring/decimal"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
)

// Payment is the database representation of a payment voucher. The vendor and
// company snapshots, the payment summary and the line items are stored as
// JSONB documents since they are immutable value objects, never queried by
// field.
type Payment struct {
	PaymentID string                 `db:"payment_id"`
	ProjectID string                 `db:"project_id"` // empty for vendor-scoped payments
	VendorID  string                 `db:"vendor_id"`  // empty for project-scoped payments
	Vendor    domain.VendorSnapshot  `db:"vendor"`
	Company   domain.CompanySnapshot `db:"company"`
	Summary   domain.PaymentSummary  `db:"payment_summary"`
	Items     []domain.LineItem      `db:"items"`
	ItemsTot  decimal.Decimal        `db:"items_total"`
	GST       decimal.Decimal        `db:"gst"`
	Total     decimal.Decimal        `db:"total"`
	CreatedAt string                 `db:"created_at"`
}
