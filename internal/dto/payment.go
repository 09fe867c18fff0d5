package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
)

// PaymentSummaryRequest describes how a payment was made. BankName and
// ChequeNumber are required when Mode is "Cheque"; the service enforces that.
type PaymentSummaryRequest struct {
	Mode         string `json:"mode" binding:"required"`
	BankName     string `json:"bankName"`
	ChequeNumber string `json:"chequeNumber"`
}

// LineItemRequest is a single line on a payment voucher.
type LineItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// CreatePaymentRequest defines the data needed to create a project-scoped
// payment. Vendor and company data are resolved and snapshotted server-side.
type CreatePaymentRequest struct {
	ProjectID  string                `json:"projectID" binding:"required"`
	Items      []LineItemRequest     `json:"items" binding:"required,min=1,dive"`
	ItemsTotal decimal.Decimal       `json:"itemsTotal" binding:"required"`
	GST        decimal.Decimal       `json:"gst"`
	Total      decimal.Decimal       `json:"total" binding:"required"`
	Summary    PaymentSummaryRequest `json:"paymentSummary" binding:"required"`
}

// CreatePaymentV2Request defines the data needed to create a vendor-scoped
// payment, which bypasses every project ledger. VendorID comes from the
// route path, never the body.
type CreatePaymentV2Request struct {
	VendorID    string                `json:"-"`
	CompanyName string                `json:"companyName"` // defaults to the DEFAULT company master entry
	Items       []LineItemRequest     `json:"items" binding:"required,min=1,dive"`
	ItemsTotal  decimal.Decimal       `json:"itemsTotal" binding:"required"`
	GST         decimal.Decimal       `json:"gst"`
	Total       decimal.Decimal       `json:"total" binding:"required"`
	Summary     PaymentSummaryRequest `json:"paymentSummary" binding:"required"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID string                 `json:"paymentID"`
	ProjectID string                 `json:"projectID,omitempty"`
	VendorID  string                 `json:"vendorID,omitempty"`
	Vendor    domain.VendorSnapshot  `json:"vendor"`
	Company   domain.CompanySnapshot `json:"company"`
	Summary   domain.PaymentSummary  `json:"paymentSummary"`
	Items     []domain.LineItem      `json:"items"`
	ItemsTot  decimal.Decimal        `json:"itemsTotal"`
	GST       decimal.Decimal        `json:"gst"`
	Total     decimal.Decimal        `json:"total"`
	CreatedAt string                 `json:"createdAt"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID: p.PaymentID,
		ProjectID: p.ProjectID,
		VendorID:  p.VendorID,
		Vendor:    p.Vendor,
		Company:   p.Company,
		Summary:   p.Summary,
		Items:     p.Items,
		ItemsTot:  p.ItemsTot,
		GST:       p.GST,
		Total:     p.Total,
		CreatedAt: p.CreatedAt,
	}
}

// ListPaymentsResponse wraps a list of payments.
type ListPaymentsResponse struct {
	Count    int               `json:"count"`
	Payments []PaymentResponse `json:"payments"`
}

// ToListPaymentsResponse converts a slice of domain.Payment to the list DTO.
func ToListPaymentsResponse(payments []domain.Payment) ListPaymentsResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(&p)
	}
	return ListPaymentsResponse{Count: len(res), Payments: res}
}
