package domain

import (
	"github.com/shopspring/decimal"
)

// PaymentModeCheque is the payment mode that additionally requires bank
// details on the payment summary.
const PaymentModeCheque = "Cheque"

// VendorSnapshot is the vendor's identity as it existed when the payment was
// created. It is never re-synced with the live vendor record.
type VendorSnapshot struct {
	Name    string `json:"name"`
	GSTIN   string `json:"gstin"`
	Address string `json:"address"`
	PAN     string `json:"pan"`
	Phone   string `json:"phone"`
}

// CompanySnapshot is the paying company's master data as it existed when the
// payment was created.
type CompanySnapshot struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// PaymentSummary describes how the payment was made. BankName and
// ChequeNumber are only set for cheque payments.
type PaymentSummary struct {
	Mode         string `json:"mode"`
	BankName     string `json:"bankName,omitempty"`
	ChequeNumber string `json:"chequeNumber,omitempty"`
}

// LineItem is a single billed line on a payment voucher.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// Payment is a payment voucher. Two variants exist:
//
//   - project-scoped: ProjectID set, VendorID empty; creation and deletion
//     adjust the owning project's ledger.
//   - vendor-scoped: VendorID set, ProjectID empty; no ledger effect.
//
// Vendor and Company are snapshots taken at creation time.
type Payment struct {
	PaymentID string          `json:"paymentID"` // PV-<6 digits>-<4 chars>
	ProjectID string          `json:"projectID,omitempty"`
	VendorID  string          `json:"vendorID,omitempty"`
	Vendor    VendorSnapshot  `json:"vendor"`
	Company   CompanySnapshot `json:"company"`
	Summary   PaymentSummary  `json:"paymentSummary"`
	Items     []LineItem      `json:"items"`
	ItemsTot  decimal.Decimal `json:"itemsTotal"`
	GST       decimal.Decimal `json:"gst"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt string          `json:"createdAt"`
}

// IsProjectScoped reports whether the payment affects a project ledger.
func (p Payment) IsProjectScoped() bool {
	return p.ProjectID != ""
}
